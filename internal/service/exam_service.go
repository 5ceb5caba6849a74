package service

import (
	"context"
	"strings"

	"github.com/lshigami/university/internal/apperror"
	"github.com/lshigami/university/internal/dto"
	"github.com/lshigami/university/internal/model"
	"github.com/lshigami/university/internal/repository"
	"github.com/lshigami/university/internal/validation"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

type ExamService interface {
	// CreateExam defines an exam from existing questions. Repeated ids are
	// stored once.
	CreateExam(ctx context.Context, req dto.CreateExamRequest, locale string) (*dto.ExamResponse, error)
	GetExam(ctx context.Context, id uint) (*dto.ExamResponse, error)
}

type examService struct {
	examRepo     repository.ExamRepository
	questionRepo repository.QuestionRepository
	validator    *validation.Validator
	db           *gorm.DB
}

func NewExamService(examRepo repository.ExamRepository, questionRepo repository.QuestionRepository, validator *validation.Validator, db *gorm.DB) ExamService {
	return &examService{examRepo: examRepo, questionRepo: questionRepo, validator: validator, db: db}
}

func (s *examService) CreateExam(ctx context.Context, req dto.CreateExamRequest, locale string) (*dto.ExamResponse, error) {
	if err := s.validator.Validate(req, locale); err != nil {
		return nil, err
	}

	// Keep first-seen order so the first unknown id is reported.
	seen := make(map[uint]bool, len(req.QuestionIDs))
	ids := make([]uint, 0, len(req.QuestionIDs))
	for _, id := range req.QuestionIDs {
		if !seen[uint(id)] {
			seen[uint(id)] = true
			ids = append(ids, uint(id))
		}
	}

	exam := model.Exam{Title: strings.TrimSpace(req.Title)}
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		questions, err := s.questionRepo.WithTx(tx).FindByIDs(ctx, ids)
		if err != nil {
			return errors.Wrap(err, "find questions")
		}
		found := make(map[uint]bool, len(questions))
		for _, q := range questions {
			found[q.ID] = true
		}
		for _, id := range ids {
			if !found[id] {
				return apperror.Unprocessable("no question registered with id %d", id)
			}
		}

		exam.Questions = questions
		if err := s.examRepo.WithTx(tx).Create(ctx, &exam); err != nil {
			return errors.Wrap(err, "create exam")
		}
		return nil
	})
	if err != nil {
		if _, ok := apperror.As(err); !ok {
			log.Error().Err(err).Msg("CreateExam: transaction failed")
		}
		return nil, err
	}

	log.Info().Uint("examID", exam.ID).Int("questionCount", len(exam.Questions)).Msg("CreateExam: exam created")
	return toExamResponse(&exam)
}

func (s *examService) GetExam(ctx context.Context, id uint) (*dto.ExamResponse, error) {
	exam, err := s.examRepo.FindByIDWithQuestions(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NotFound(apperror.ReasonExamNotFound)
		}
		return nil, errors.Wrapf(err, "find exam %d", id)
	}
	return toExamResponse(exam)
}
