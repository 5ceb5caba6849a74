package service

import (
	"context"
	"math"
	"testing"
	"time"

	"github.com/lshigami/university/internal/apperror"
	"github.com/lshigami/university/internal/dto"
	"github.com/lshigami/university/internal/model"
)

func TestRemoveStudent_NotRegistered(t *testing.T) {
	env := newTestEnv(t)
	kept := env.seedStudent(t, "Kept")

	err := env.studentService().RemoveStudent(context.Background(), math.MaxInt32)

	appErr := requireAppError(t, err, apperror.KindNotFound)
	if appErr.Reason != "student not registered" {
		t.Fatalf("unexpected reason %q", appErr.Reason)
	}
	if _, err := env.studentRepo.FindByID(context.Background(), kept.ID); err != nil {
		t.Fatalf("unrelated student must survive: %v", err)
	}
}

func TestRemoveStudent_CascadesExamAnswers(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	submissions := env.submissionService()

	student := env.seedStudent(t, "Antonio")
	other := env.seedStudent(t, "Maria")
	qA := env.seedQuestion(t, "Question A", 0)
	qB := env.seedQuestion(t, "Question B", 1)
	exam := env.seedExam(t, qA, qB)

	answers := dto.SubmitAnswersRequest{Answers: []dto.AnswerRequest{
		{QuestionID: int64Ptr(int64(qA.ID)), Answer: "A"},
		{QuestionID: int64Ptr(int64(qB.ID)), Answer: "B"},
	}}
	firstID, err := submissions.SubmitAnswers(ctx, student.ID, exam.ID, answers, "en")
	if err != nil {
		t.Fatalf("submit first: %v", err)
	}
	secondID, err := submissions.SubmitAnswers(ctx, student.ID, exam.ID, answers, "en")
	if err != nil {
		t.Fatalf("submit second: %v", err)
	}
	otherID, err := submissions.SubmitAnswers(ctx, other.ID, exam.ID, answers, "en")
	if err != nil {
		t.Fatalf("submit other: %v", err)
	}

	first, err := env.examAnswerRepo.FindByIDWithAnswers(ctx, firstID)
	if err != nil {
		t.Fatalf("load first exam answer: %v", err)
	}

	if err := env.studentService().RemoveStudent(ctx, student.ID); err != nil {
		t.Fatalf("remove student: %v", err)
	}

	if _, err := env.studentRepo.FindByID(ctx, student.ID); err == nil {
		t.Fatalf("student still retrievable")
	}
	for _, id := range []uint{firstID, secondID} {
		if err := env.db.First(&model.ExamAnswer{}, id).Error; err == nil {
			t.Fatalf("exam answer %d still retrievable", id)
		}
	}
	for _, aq := range first.Answers {
		if err := env.db.First(&model.AnsweredQuestion{}, aq.ID).Error; err == nil {
			t.Fatalf("answered question %d still retrievable", aq.ID)
		}
	}

	// other students, questions and exams are untouched
	if stored, err := env.examAnswerRepo.FindByIDWithAnswers(ctx, otherID); err != nil || len(stored.Answers) != 2 {
		t.Fatalf("other student's exam answer affected: %v", err)
	}
	if n := env.count(t, &model.Question{}); n != 2 {
		t.Fatalf("expected questions untouched, got %d", n)
	}
	if _, err := env.examRepo.FindByIDWithQuestions(ctx, exam.ID); err != nil {
		t.Fatalf("exam must survive: %v", err)
	}

	err = env.studentService().RemoveStudent(ctx, student.ID)
	requireAppError(t, err, apperror.KindNotFound)
}

func TestRegisterStudent(t *testing.T) {
	env := newTestEnv(t)
	svc := env.studentService().(*studentService)
	svc.now = func() time.Time { return time.Date(2026, 10, 18, 15, 4, 5, 0, time.UTC) }

	resp, err := svc.RegisterStudent(context.Background(), dto.CreateStudentRequest{Name: " Antonio ", EnrollmentCode: "AE13"}, "en")
	if err != nil {
		t.Fatalf("register student: %v", err)
	}
	if resp.ID == 0 || resp.Name != "Antonio" || resp.EnrollmentCode != "AE13" {
		t.Fatalf("unexpected response: %+v", resp)
	}
	if y, m, d := resp.RegisteredOn.Date(); y != 2026 || m != time.October || d != 18 {
		t.Fatalf("unexpected registration date %v", resp.RegisteredOn)
	}

	got, err := svc.GetStudent(context.Background(), resp.ID)
	if err != nil || got.Name != "Antonio" {
		t.Fatalf("get student: %+v, %v", got, err)
	}
}

func TestRegisterStudent_Validation(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.studentService().RegisterStudent(context.Background(), dto.CreateStudentRequest{Name: " "}, "en")

	appErr := requireAppError(t, err, apperror.KindValidation)
	requireMessages(t, appErr.Messages, "name must not be blank", "enrollment_code must not be blank")
	if n := env.count(t, &model.Student{}); n != 0 {
		t.Fatalf("expected no student stored, got %d", n)
	}
}

func TestGetStudent_NotRegistered(t *testing.T) {
	env := newTestEnv(t)
	_, err := env.studentService().GetStudent(context.Background(), 42)
	appErr := requireAppError(t, err, apperror.KindNotFound)
	if appErr.Reason != apperror.ReasonStudentNotFound {
		t.Fatalf("unexpected reason %q", appErr.Reason)
	}
}
