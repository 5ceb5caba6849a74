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

type QuestionService interface {
	CreateQuestion(ctx context.Context, req dto.CreateQuestionRequest, locale string) (*dto.QuestionResponse, error)
	GetQuestion(ctx context.Context, id uint) (*dto.QuestionResponse, error)
}

type questionService struct {
	repo      repository.QuestionRepository
	validator *validation.Validator
}

func NewQuestionService(repo repository.QuestionRepository, validator *validation.Validator) QuestionService {
	return &questionService{repo: repo, validator: validator}
}

func (s *questionService) CreateQuestion(ctx context.Context, req dto.CreateQuestionRequest, locale string) (*dto.QuestionResponse, error) {
	if err := s.validator.Validate(req, locale); err != nil {
		return nil, err
	}

	question := model.Question{
		Prompt:          strings.TrimSpace(req.Prompt),
		ReferenceAnswer: strings.TrimSpace(req.ReferenceAnswer),
		Weight:          *req.Weight,
	}
	if err := s.repo.Create(ctx, &question); err != nil {
		log.Error().Err(err).Msg("CreateQuestion: failed to create question")
		return nil, errors.Wrap(err, "create question")
	}
	return toQuestionResponse(&question)
}

func (s *questionService) GetQuestion(ctx context.Context, id uint) (*dto.QuestionResponse, error) {
	question, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NotFound(apperror.ReasonQuestionNotFound)
		}
		return nil, errors.Wrapf(err, "find question %d", id)
	}
	return toQuestionResponse(question)
}
