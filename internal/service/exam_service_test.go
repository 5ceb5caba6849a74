package service

import (
	"context"
	"strings"
	"testing"

	"github.com/lshigami/university/internal/apperror"
	"github.com/lshigami/university/internal/dto"
	"github.com/lshigami/university/internal/model"
)

func TestCreateExam(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	svc := NewExamService(env.examRepo, env.questionRepo, env.validator, env.db)

	qA := env.seedQuestion(t, "Question A", 1)
	qB := env.seedQuestion(t, "Question B", 2)

	resp, err := svc.CreateExam(ctx, dto.CreateExamRequest{
		Title:       "Midterm",
		QuestionIDs: []int64{int64(qB.ID), int64(qA.ID), int64(qB.ID)},
	}, "en")
	if err != nil {
		t.Fatalf("create exam: %v", err)
	}
	if resp.ID == 0 || resp.Title != "Midterm" {
		t.Fatalf("unexpected response: %+v", resp)
	}
	if len(resp.Questions) != 2 {
		t.Fatalf("repeated ids must collapse, got %d questions", len(resp.Questions))
	}

	got, err := svc.GetExam(ctx, resp.ID)
	if err != nil {
		t.Fatalf("get exam: %v", err)
	}
	if len(got.Questions) != 2 || got.Questions[0].ID != qA.ID || got.Questions[1].Weight != 2 {
		t.Fatalf("unexpected exam: %+v", got)
	}
}

func TestCreateExam_SharedQuestion(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	svc := NewExamService(env.examRepo, env.questionRepo, env.validator, env.db)
	q := env.seedQuestion(t, "Shared", 1)

	for i := 0; i < 2; i++ {
		if _, err := svc.CreateExam(ctx, dto.CreateExamRequest{QuestionIDs: []int64{int64(q.ID)}}, "en"); err != nil {
			t.Fatalf("create exam %d: %v", i, err)
		}
	}
	if n := env.count(t, &model.Question{}); n != 1 {
		t.Fatalf("questions must not be duplicated, got %d", n)
	}
}

func TestCreateExam_Rejections(t *testing.T) {
	env := newTestEnv(t)
	svc := NewExamService(env.examRepo, env.questionRepo, env.validator, env.db)
	q := env.seedQuestion(t, "Question A", 1)

	_, err := svc.CreateExam(context.Background(), dto.CreateExamRequest{QuestionIDs: []int64{int64(q.ID), 777, 888}}, "en")
	appErr := requireAppError(t, err, apperror.KindUnprocessable)
	if !strings.Contains(appErr.Reason, "777") {
		t.Fatalf("expected first unknown id in reason, got %q", appErr.Reason)
	}

	_, err = svc.CreateExam(context.Background(), dto.CreateExamRequest{QuestionIDs: []int64{}}, "en")
	appErr = requireAppError(t, err, apperror.KindValidation)
	requireMessages(t, appErr.Messages, "question_ids must contain at least 1 item(s)")

	_, err = svc.CreateExam(context.Background(), dto.CreateExamRequest{QuestionIDs: []int64{0}}, "en")
	appErr = requireAppError(t, err, apperror.KindValidation)
	requireMessages(t, appErr.Messages, "question_ids[0] must be greater than 0")

	if n := env.count(t, &model.Exam{}); n != 0 {
		t.Fatalf("expected no exam stored, got %d", n)
	}
}

func TestGetExam_NotRegistered(t *testing.T) {
	env := newTestEnv(t)
	svc := NewExamService(env.examRepo, env.questionRepo, env.validator, env.db)

	_, err := svc.GetExam(context.Background(), 99)
	appErr := requireAppError(t, err, apperror.KindNotFound)
	if appErr.Reason != "exam not registered" {
		t.Fatalf("unexpected reason %q", appErr.Reason)
	}
}

func TestQuestionService(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	svc := NewQuestionService(env.questionRepo, env.validator)

	resp, err := svc.CreateQuestion(ctx, dto.CreateQuestionRequest{Prompt: "Prompt", ReferenceAnswer: "Ref", Weight: float64Ptr(0)}, "en")
	if err != nil {
		t.Fatalf("create question: %v", err)
	}
	got, err := svc.GetQuestion(ctx, resp.ID)
	if err != nil || got.Prompt != "Prompt" || got.Weight != 0 {
		t.Fatalf("get question: %+v, %v", got, err)
	}

	_, err = svc.CreateQuestion(ctx, dto.CreateQuestionRequest{Prompt: "", ReferenceAnswer: "Ref", Weight: float64Ptr(-1)}, "en")
	appErr := requireAppError(t, err, apperror.KindValidation)
	requireMessages(t, appErr.Messages, "prompt must not be blank", "weight must be greater than or equal to 0")

	_, err = svc.CreateQuestion(ctx, dto.CreateQuestionRequest{Prompt: "p", ReferenceAnswer: "r"}, "en")
	appErr = requireAppError(t, err, apperror.KindValidation)
	requireMessages(t, appErr.Messages, "weight must not be null")

	_, err = svc.GetQuestion(ctx, 12345)
	requireAppError(t, err, apperror.KindNotFound)
}
