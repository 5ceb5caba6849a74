package model

import "time"

// AnsweredQuestion is one student's answer to one question. It only exists
// as a member of an ExamAnswer.
type AnsweredQuestion struct {
	ID           uint      `gorm:"primarykey" json:"id"`
	ExamAnswerID uint      `json:"exam_answer_id" gorm:"not null;index"`
	StudentID    uint      `json:"student_id" gorm:"not null;index"`
	QuestionID   uint      `json:"question_id" gorm:"not null;index"`
	Question     Question  `json:"question,omitempty" gorm:"foreignKey:QuestionID"`
	Answer       string    `json:"answer" gorm:"type:text;not null"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
