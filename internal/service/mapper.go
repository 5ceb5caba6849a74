package service

import (
	"github.com/jinzhu/copier"
	"github.com/lshigami/university/internal/dto"
	"github.com/lshigami/university/internal/model"
	"github.com/pkg/errors"
)

func toStudentResponse(student *model.Student) (*dto.StudentResponse, error) {
	var resp dto.StudentResponse
	if err := copier.Copy(&resp, student); err != nil {
		return nil, errors.Wrap(err, "copy student to response")
	}
	return &resp, nil
}

func toQuestionResponse(question *model.Question) (*dto.QuestionResponse, error) {
	var resp dto.QuestionResponse
	if err := copier.Copy(&resp, question); err != nil {
		return nil, errors.Wrap(err, "copy question to response")
	}
	return &resp, nil
}

func toExamResponse(exam *model.Exam) (*dto.ExamResponse, error) {
	resp := dto.ExamResponse{
		ID:        exam.ID,
		Title:     exam.Title,
		CreatedAt: exam.CreatedAt,
		Questions: make([]dto.QuestionResponse, 0, len(exam.Questions)),
	}
	for i := range exam.Questions {
		q, err := toQuestionResponse(&exam.Questions[i])
		if err != nil {
			return nil, err
		}
		resp.Questions = append(resp.Questions, *q)
	}
	return &resp, nil
}

func toExamAnswerResponse(examAnswer *model.ExamAnswer) (*dto.ExamAnswerResponse, error) {
	resp := dto.ExamAnswerResponse{
		ID:          examAnswer.ID,
		StudentID:   examAnswer.StudentID,
		ExamID:      examAnswer.ExamID,
		SubmittedAt: examAnswer.SubmittedAt,
		Answers:     make([]dto.AnsweredQuestionResponse, len(examAnswer.Answers)),
	}
	for i := range examAnswer.Answers {
		if err := copier.Copy(&resp.Answers[i], &examAnswer.Answers[i]); err != nil {
			return nil, errors.Wrap(err, "copy answered question to response")
		}
	}
	return &resp, nil
}
