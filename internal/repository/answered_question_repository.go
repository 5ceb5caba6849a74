package repository

import (
	"context"

	"github.com/lshigami/university/internal/model"
	"gorm.io/gorm"
)

type AnsweredQuestionRepository interface {
	WithTx(tx *gorm.DB) AnsweredQuestionRepository
	DeleteByExamAnswerIDs(ctx context.Context, examAnswerIDs []uint) error
}

type answeredQuestionRepository struct {
	db *gorm.DB
}

func NewAnsweredQuestionRepository(db *gorm.DB) AnsweredQuestionRepository {
	return &answeredQuestionRepository{db: db}
}

func (r *answeredQuestionRepository) WithTx(tx *gorm.DB) AnsweredQuestionRepository {
	return &answeredQuestionRepository{db: tx}
}

func (r *answeredQuestionRepository) DeleteByExamAnswerIDs(ctx context.Context, examAnswerIDs []uint) error {
	if len(examAnswerIDs) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).
		Where("exam_answer_id IN ?", examAnswerIDs).
		Delete(&model.AnsweredQuestion{}).Error
}
