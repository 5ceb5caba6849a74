package repository

import (
	"context"

	"github.com/lshigami/university/internal/model"
	"gorm.io/gorm"
)

type StudentRepository interface {
	WithTx(tx *gorm.DB) StudentRepository
	Create(ctx context.Context, student *model.Student) error
	FindByID(ctx context.Context, id uint) (*model.Student, error)
	Delete(ctx context.Context, id uint) error
}

type studentRepository struct {
	db *gorm.DB
}

func NewStudentRepository(db *gorm.DB) StudentRepository {
	return &studentRepository{db: db}
}

func (r *studentRepository) WithTx(tx *gorm.DB) StudentRepository {
	return &studentRepository{db: tx}
}

func (r *studentRepository) Create(ctx context.Context, student *model.Student) error {
	return r.db.WithContext(ctx).Create(student).Error
}

func (r *studentRepository) FindByID(ctx context.Context, id uint) (*model.Student, error) {
	var student model.Student
	if err := r.db.WithContext(ctx).First(&student, id).Error; err != nil {
		return nil, err
	}
	return &student, nil
}

// Delete removes the student row only. Dependent exam answers must be
// deleted first.
func (r *studentRepository) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&model.Student{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
