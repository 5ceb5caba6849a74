package service

import (
	"context"
	"strings"
	"time"

	"github.com/lshigami/university/internal/apperror"
	"github.com/lshigami/university/internal/dto"
	"github.com/lshigami/university/internal/model"
	"github.com/lshigami/university/internal/repository"
	"github.com/lshigami/university/internal/validation"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

type StudentService interface {
	RegisterStudent(ctx context.Context, req dto.CreateStudentRequest, locale string) (*dto.StudentResponse, error)
	GetStudent(ctx context.Context, id uint) (*dto.StudentResponse, error)
	// RemoveStudent deletes the student together with every exam answer it
	// submitted and their answered questions, in one transaction.
	RemoveStudent(ctx context.Context, id uint) error
}

type studentService struct {
	studentRepo          repository.StudentRepository
	examAnswerRepo       repository.ExamAnswerRepository
	answeredQuestionRepo repository.AnsweredQuestionRepository
	validator            *validation.Validator
	db                   *gorm.DB
	now                  func() time.Time
}

func NewStudentService(
	studentRepo repository.StudentRepository,
	examAnswerRepo repository.ExamAnswerRepository,
	answeredQuestionRepo repository.AnsweredQuestionRepository,
	validator *validation.Validator,
	db *gorm.DB,
) StudentService {
	return &studentService{
		studentRepo:          studentRepo,
		examAnswerRepo:       examAnswerRepo,
		answeredQuestionRepo: answeredQuestionRepo,
		validator:            validator,
		db:                   db,
		now:                  time.Now,
	}
}

func (s *studentService) RegisterStudent(ctx context.Context, req dto.CreateStudentRequest, locale string) (*dto.StudentResponse, error) {
	if err := s.validator.Validate(req, locale); err != nil {
		return nil, err
	}

	now := s.now().UTC()
	student := model.Student{
		Name:           strings.TrimSpace(req.Name),
		EnrollmentCode: strings.TrimSpace(req.EnrollmentCode),
		RegisteredOn:   time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC),
	}
	if err := s.studentRepo.Create(ctx, &student); err != nil {
		log.Error().Err(err).Msg("RegisterStudent: failed to create student")
		return nil, errors.Wrap(err, "create student")
	}

	log.Info().Uint("studentID", student.ID).Str("enrollmentCode", student.EnrollmentCode).Msg("RegisterStudent: student registered")
	return toStudentResponse(&student)
}

func (s *studentService) GetStudent(ctx context.Context, id uint) (*dto.StudentResponse, error) {
	student, err := s.studentRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NotFound(apperror.ReasonStudentNotFound)
		}
		return nil, errors.Wrapf(err, "find student %d", id)
	}
	return toStudentResponse(student)
}

func (s *studentService) RemoveStudent(ctx context.Context, id uint) error {
	var removedExamAnswers int
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		students := s.studentRepo.WithTx(tx)
		if _, err := students.FindByID(ctx, id); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperror.NotFound(apperror.ReasonStudentNotFound)
			}
			return errors.Wrapf(err, "find student %d", id)
		}

		examAnswers := s.examAnswerRepo.WithTx(tx)
		examAnswerIDs, err := examAnswers.FindIDsByStudent(ctx, id)
		if err != nil {
			return errors.Wrap(err, "list exam answers of student")
		}
		if err := s.answeredQuestionRepo.WithTx(tx).DeleteByExamAnswerIDs(ctx, examAnswerIDs); err != nil {
			return errors.Wrap(err, "delete answered questions")
		}
		if err := examAnswers.DeleteByIDs(ctx, examAnswerIDs); err != nil {
			return errors.Wrap(err, "delete exam answers")
		}
		if err := students.Delete(ctx, id); err != nil {
			return errors.Wrapf(err, "delete student %d", id)
		}
		removedExamAnswers = len(examAnswerIDs)
		return nil
	})
	if err != nil {
		if apperror.Is(err, apperror.KindNotFound) {
			log.Warn().Uint("studentID", id).Msg("RemoveStudent: student not found")
		} else {
			log.Error().Err(err).Uint("studentID", id).Msg("RemoveStudent: transaction failed")
		}
		return err
	}

	log.Info().Uint("studentID", id).Int("examAnswers", removedExamAnswers).Msg("RemoveStudent: student removed")
	return nil
}
