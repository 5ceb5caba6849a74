package model

import "time"

type ExamAnswer struct {
	ID          uint               `gorm:"primarykey" json:"id"`
	StudentID   uint               `json:"student_id" gorm:"not null;index"`
	Student     Student            `json:"student,omitempty" gorm:"foreignKey:StudentID"`
	ExamID      uint               `json:"exam_id" gorm:"not null;index"`
	Exam        Exam               `json:"exam,omitempty" gorm:"foreignKey:ExamID"`
	SubmittedAt time.Time          `json:"submitted_at" gorm:"autoCreateTime"`
	Answers     []AnsweredQuestion `json:"answers,omitempty" gorm:"foreignKey:ExamAnswerID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	CreatedAt   time.Time          `json:"created_at"`
	UpdatedAt   time.Time          `json:"updated_at"`
}
