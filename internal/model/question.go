package model

import "time"

type Question struct {
	ID              uint      `gorm:"primarykey" json:"id"`
	Prompt          string    `json:"prompt" gorm:"type:text;not null"`
	ReferenceAnswer string    `json:"reference_answer" gorm:"type:text;not null"`
	Weight          float64   `json:"weight" gorm:"not null;default:0"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}
