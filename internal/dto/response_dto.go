package dto

import "time"

type ErrorResponse struct {
	Error string `json:"error"`
}

// CreatedResponse is returned alongside the Location header of created resources.
type CreatedResponse struct {
	ID uint `json:"id"`
}

type StudentResponse struct {
	ID             uint      `json:"id"`
	Name           string    `json:"name"`
	EnrollmentCode string    `json:"enrollment_code"`
	RegisteredOn   time.Time `json:"registered_on"`
}

type QuestionResponse struct {
	ID              uint    `json:"id"`
	Prompt          string  `json:"prompt"`
	ReferenceAnswer string  `json:"reference_answer"`
	Weight          float64 `json:"weight"`
}

type ExamResponse struct {
	ID        uint               `json:"id"`
	Title     string             `json:"title,omitempty"`
	Questions []QuestionResponse `json:"questions"`
	CreatedAt time.Time          `json:"created_at"`
}

type AnsweredQuestionResponse struct {
	ID         uint   `json:"id"`
	QuestionID uint   `json:"question_id"`
	Answer     string `json:"answer"`
}

type ExamAnswerResponse struct {
	ID          uint                       `json:"id"`
	StudentID   uint                       `json:"student_id"`
	ExamID      uint                       `json:"exam_id"`
	SubmittedAt time.Time                  `json:"submitted_at"`
	Answers     []AnsweredQuestionResponse `json:"answers"`
}
