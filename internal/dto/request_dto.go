package dto

// AnswerRequest is one (question id, answer text) pair of a submission.
// QuestionID is a pointer so a missing id can be told apart from zero.
type AnswerRequest struct {
	QuestionID *int64 `json:"questionId" validate:"required,gt=0" example:"3"`
	Answer     string `json:"answer" validate:"notblank" example:"Photosynthesis converts light into chemical energy."`
}

// SubmitAnswersRequest is the body of POST /students/{id}/exams/{id}/answers.
// A nil Answers slice is rejected; an empty one is accepted.
type SubmitAnswersRequest struct {
	Answers []AnswerRequest `json:"answers" validate:"required,dive"`
}

type CreateStudentRequest struct {
	Name           string `json:"name" validate:"notblank" example:"Antonio"`
	EnrollmentCode string `json:"enrollment_code" validate:"notblank" example:"AE13"`
}
