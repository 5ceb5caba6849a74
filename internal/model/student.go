package model

import "time"

type Student struct {
	ID             uint      `gorm:"primarykey" json:"id"`
	Name           string    `json:"name" gorm:"not null"`
	EnrollmentCode string    `json:"enrollment_code" gorm:"not null;index"`
	RegisteredOn   time.Time `json:"registered_on" gorm:"type:date;not null"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}
