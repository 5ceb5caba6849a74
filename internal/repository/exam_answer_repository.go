package repository

import (
	"context"

	"github.com/lshigami/university/internal/model"
	"gorm.io/gorm"
)

type ExamAnswerRepository interface {
	WithTx(tx *gorm.DB) ExamAnswerRepository
	Create(ctx context.Context, examAnswer *model.ExamAnswer) error
	FindByIDWithAnswers(ctx context.Context, id uint) (*model.ExamAnswer, error)
	FindIDsByStudent(ctx context.Context, studentID uint) ([]uint, error)
	DeleteByIDs(ctx context.Context, ids []uint) error
}

type examAnswerRepository struct {
	db *gorm.DB
}

func NewExamAnswerRepository(db *gorm.DB) ExamAnswerRepository {
	return &examAnswerRepository{db: db}
}

func (r *examAnswerRepository) WithTx(tx *gorm.DB) ExamAnswerRepository {
	return &examAnswerRepository{db: tx}
}

// Create inserts the exam answer and, through the Answers association, every
// answered question it owns. Only foreign keys are used for the student,
// exam and questions; those rows are never written here.
func (r *examAnswerRepository) Create(ctx context.Context, examAnswer *model.ExamAnswer) error {
	return r.db.WithContext(ctx).
		Omit("Student", "Exam").
		Create(examAnswer).Error
}

func (r *examAnswerRepository) FindByIDWithAnswers(ctx context.Context, id uint) (*model.ExamAnswer, error) {
	var examAnswer model.ExamAnswer
	err := r.db.WithContext(ctx).
		Preload("Answers", func(db *gorm.DB) *gorm.DB {
			return db.Order("answered_questions.id ASC")
		}).
		First(&examAnswer, id).Error
	if err != nil {
		return nil, err
	}
	return &examAnswer, nil
}

func (r *examAnswerRepository) FindIDsByStudent(ctx context.Context, studentID uint) ([]uint, error) {
	var ids []uint
	err := r.db.WithContext(ctx).
		Model(&model.ExamAnswer{}).
		Where("student_id = ?", studentID).
		Order("id ASC").
		Pluck("id", &ids).Error
	return ids, err
}

// DeleteByIDs removes the exam answers only; their answered questions must be
// removed first.
func (r *examAnswerRepository) DeleteByIDs(ctx context.Context, ids []uint) error {
	if len(ids) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Where("id IN ?", ids).Delete(&model.ExamAnswer{}).Error
}
