package model

import "time"

// Exam is a fixed set of questions. A question may belong to many exams.
type Exam struct {
	ID        uint       `gorm:"primarykey" json:"id"`
	Title     string     `json:"title,omitempty"`
	Questions []Question `json:"questions,omitempty" gorm:"many2many:exam_questions;"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// QuestionByID looks questionID up among the exam's questions, which must be
// preloaded.
func (e *Exam) QuestionByID(questionID uint) (Question, bool) {
	for _, q := range e.Questions {
		if q.ID == questionID {
			return q, true
		}
	}
	return Question{}, false
}
