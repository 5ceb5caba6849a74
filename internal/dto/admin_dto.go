package dto

type CreateQuestionRequest struct {
	Prompt          string   `json:"prompt" validate:"notblank" example:"What is photosynthesis?"`
	ReferenceAnswer string   `json:"reference_answer" validate:"notblank" example:"The process by which plants convert light into chemical energy."`
	Weight          *float64 `json:"weight" validate:"required,gte=0" example:"2.5"`
}

// CreateExamRequest lists the questions that make up the exam. Repeated ids
// collapse into a single membership.
type CreateExamRequest struct {
	Title       string  `json:"title,omitempty" example:"Biology - midterm"`
	QuestionIDs []int64 `json:"question_ids" validate:"required,min=1,dive,gt=0" example:"1,2,3"`
}
