package service

import (
	"context"

	"github.com/lshigami/university/internal/apperror"
	"github.com/lshigami/university/internal/dto"
	"github.com/lshigami/university/internal/model"
	"github.com/lshigami/university/internal/repository"
	"github.com/lshigami/university/internal/validation"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// AnswerSubmissionService records a student's answers to an exam.
type AnswerSubmissionService interface {
	// SubmitAnswers validates the request, checks that the student and exam
	// exist and that every answered question belongs to the exam, then stores
	// one exam answer owning one answered question per request entry. It
	// returns the new exam answer id.
	SubmitAnswers(ctx context.Context, studentID, examID uint, req dto.SubmitAnswersRequest, locale string) (uint, error)
	GetExamAnswer(ctx context.Context, studentID, examID, examAnswerID uint) (*dto.ExamAnswerResponse, error)
}

type answerSubmissionService struct {
	studentRepo    repository.StudentRepository
	examRepo       repository.ExamRepository
	examAnswerRepo repository.ExamAnswerRepository
	validator      *validation.Validator
	db             *gorm.DB // Used for transactions within service methods
}

func NewAnswerSubmissionService(
	studentRepo repository.StudentRepository,
	examRepo repository.ExamRepository,
	examAnswerRepo repository.ExamAnswerRepository,
	validator *validation.Validator,
	db *gorm.DB,
) AnswerSubmissionService {
	return &answerSubmissionService{
		studentRepo:    studentRepo,
		examRepo:       examRepo,
		examAnswerRepo: examAnswerRepo,
		validator:      validator,
		db:             db,
	}
}

func (s *answerSubmissionService) SubmitAnswers(ctx context.Context, studentID, examID uint, req dto.SubmitAnswersRequest, locale string) (uint, error) {
	if err := s.validator.Validate(req, locale); err != nil {
		log.Warn().Err(err).Uint("studentID", studentID).Uint("examID", examID).Msg("SubmitAnswers: invalid request")
		return 0, err
	}

	var examAnswerID uint
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		student, err := s.studentRepo.WithTx(tx).FindByID(ctx, studentID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperror.NotFound(apperror.ReasonStudentNotFound)
			}
			return errors.Wrapf(err, "find student %d", studentID)
		}

		exam, err := s.examRepo.WithTx(tx).FindByIDWithQuestions(ctx, examID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperror.NotFound(apperror.ReasonExamNotFound)
			}
			return errors.Wrapf(err, "find exam %d", examID)
		}

		examAnswer, err := buildExamAnswer(student, exam, req.Answers)
		if err != nil {
			return err
		}

		if err := s.examAnswerRepo.WithTx(tx).Create(ctx, examAnswer); err != nil {
			return errors.Wrap(err, "create exam answer")
		}
		examAnswerID = examAnswer.ID
		return nil
	})
	if err != nil {
		if _, ok := apperror.As(err); ok {
			log.Warn().Err(err).Uint("studentID", studentID).Uint("examID", examID).Msg("SubmitAnswers: submission rejected")
		} else {
			log.Error().Err(err).Uint("studentID", studentID).Uint("examID", examID).Msg("SubmitAnswers: transaction failed")
		}
		return 0, err
	}

	log.Info().
		Uint("studentID", studentID).
		Uint("examID", examID).
		Uint("examAnswerID", examAnswerID).
		Int("answerCount", len(req.Answers)).
		Msg("SubmitAnswers: exam answer stored")
	return examAnswerID, nil
}

// buildExamAnswer resolves every answer against the exam's questions. The
// first question id, in request order, that is not part of the exam fails
// the whole submission. Repeated ids each produce their own answered question.
func buildExamAnswer(student *model.Student, exam *model.Exam, answers []dto.AnswerRequest) (*model.ExamAnswer, error) {
	examAnswer := &model.ExamAnswer{
		StudentID: student.ID,
		ExamID:    exam.ID,
		Answers:   make([]model.AnsweredQuestion, 0, len(answers)),
	}
	for _, a := range answers {
		question, ok := exam.QuestionByID(uint(*a.QuestionID))
		if !ok {
			return nil, apperror.Unprocessable("no question registered with id %d for exam %d", *a.QuestionID, exam.ID)
		}
		examAnswer.Answers = append(examAnswer.Answers, model.AnsweredQuestion{
			StudentID:  student.ID,
			QuestionID: question.ID,
			Answer:     a.Answer,
		})
	}
	return examAnswer, nil
}

func (s *answerSubmissionService) GetExamAnswer(ctx context.Context, studentID, examID, examAnswerID uint) (*dto.ExamAnswerResponse, error) {
	examAnswer, err := s.examAnswerRepo.FindByIDWithAnswers(ctx, examAnswerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperror.NotFound(apperror.ReasonExamAnswerNotFound)
		}
		log.Error().Err(err).Uint("examAnswerID", examAnswerID).Msg("GetExamAnswer: failed to load exam answer")
		return nil, errors.Wrapf(err, "find exam answer %d", examAnswerID)
	}
	if examAnswer.StudentID != studentID || examAnswer.ExamID != examID {
		return nil, apperror.NotFound(apperror.ReasonExamAnswerNotFound)
	}
	return toExamAnswerResponse(examAnswer)
}
