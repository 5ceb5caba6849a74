package service

import (
	"testing"
	"time"

	"github.com/lshigami/university/database"
	"github.com/lshigami/university/internal/apperror"
	"github.com/lshigami/university/internal/model"
	"github.com/lshigami/university/internal/repository"
	"github.com/lshigami/university/internal/validation"
	"gorm.io/gorm"
)

type testEnv struct {
	db                   *gorm.DB
	studentRepo          repository.StudentRepository
	questionRepo         repository.QuestionRepository
	examRepo             repository.ExamRepository
	examAnswerRepo       repository.ExamAnswerRepository
	answeredQuestionRepo repository.AnsweredQuestionRepository
	validator            *validation.Validator
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	db, err := database.OpenInMemory()
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})

	v, err := validation.New(validation.LocaleEnglish)
	if err != nil {
		t.Fatalf("new validator: %v", err)
	}
	return &testEnv{
		db:                   db,
		studentRepo:          repository.NewStudentRepository(db),
		questionRepo:         repository.NewQuestionRepository(db),
		examRepo:             repository.NewExamRepository(db),
		examAnswerRepo:       repository.NewExamAnswerRepository(db),
		answeredQuestionRepo: repository.NewAnsweredQuestionRepository(db),
		validator:            v,
	}
}

func (e *testEnv) submissionService() AnswerSubmissionService {
	return NewAnswerSubmissionService(e.studentRepo, e.examRepo, e.examAnswerRepo, e.validator, e.db)
}

func (e *testEnv) studentService() StudentService {
	return NewStudentService(e.studentRepo, e.examAnswerRepo, e.answeredQuestionRepo, e.validator, e.db)
}

func (e *testEnv) seedStudent(t *testing.T, name string) *model.Student {
	t.Helper()
	student := &model.Student{Name: name, EnrollmentCode: "AE13", RegisteredOn: time.Now().UTC().Truncate(24 * time.Hour)}
	if err := e.db.Create(student).Error; err != nil {
		t.Fatalf("seed student: %v", err)
	}
	return student
}

func (e *testEnv) seedQuestion(t *testing.T, prompt string, weight float64) model.Question {
	t.Helper()
	q := model.Question{Prompt: prompt, ReferenceAnswer: "reference " + prompt, Weight: weight}
	if err := e.db.Create(&q).Error; err != nil {
		t.Fatalf("seed question: %v", err)
	}
	return q
}

func (e *testEnv) seedExam(t *testing.T, questions ...model.Question) *model.Exam {
	t.Helper()
	exam := &model.Exam{Title: "exam", Questions: questions}
	if err := e.db.Omit("Questions.*").Create(exam).Error; err != nil {
		t.Fatalf("seed exam: %v", err)
	}
	return exam
}

func (e *testEnv) count(t *testing.T, m any) int64 {
	t.Helper()
	var n int64
	if err := e.db.Model(m).Count(&n).Error; err != nil {
		t.Fatalf("count %T: %v", m, err)
	}
	return n
}

func int64Ptr(v int64) *int64 { return &v }

func float64Ptr(v float64) *float64 { return &v }

func requireAppError(t *testing.T, err error, kind apperror.Kind) *apperror.Error {
	t.Helper()
	appErr, ok := apperror.As(err)
	if !ok {
		t.Fatalf("expected %s error, got %v", kind, err)
	}
	if appErr.Kind != kind {
		t.Fatalf("expected %s error, got %s: %v", kind, appErr.Kind, appErr)
	}
	return appErr
}

func requireMessages(t *testing.T, got []string, want ...string) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("expected %d messages %v, got %v", len(want), want, got)
	}
	for _, w := range want {
		found := false
		for _, g := range got {
			if g == w {
				found = true
				break
			}
		}
		if !found {
			t.Fatalf("missing message %q in %v", w, got)
		}
	}
}
