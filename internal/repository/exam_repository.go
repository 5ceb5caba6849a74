package repository

import (
	"context"

	"github.com/lshigami/university/internal/model"
	"gorm.io/gorm"
)

type ExamRepository interface {
	WithTx(tx *gorm.DB) ExamRepository
	Create(ctx context.Context, exam *model.Exam) error
	FindByIDWithQuestions(ctx context.Context, id uint) (*model.Exam, error)
}

type examRepository struct {
	db *gorm.DB
}

func NewExamRepository(db *gorm.DB) ExamRepository {
	return &examRepository{db: db}
}

func (r *examRepository) WithTx(tx *gorm.DB) ExamRepository {
	return &examRepository{db: tx}
}

// Create inserts the exam and its exam_questions rows. The questions
// themselves must already exist and are not updated.
func (r *examRepository) Create(ctx context.Context, exam *model.Exam) error {
	return r.db.WithContext(ctx).Omit("Questions.*").Create(exam).Error
}

func (r *examRepository) FindByIDWithQuestions(ctx context.Context, id uint) (*model.Exam, error) {
	var exam model.Exam
	err := r.db.WithContext(ctx).Preload("Questions", func(db *gorm.DB) *gorm.DB {
		return db.Order("questions.id ASC")
	}).First(&exam, id).Error
	if err != nil {
		return nil, err
	}
	return &exam, nil
}
