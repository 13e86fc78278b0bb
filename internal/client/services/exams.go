package services

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/dmitrijs2005/lectureportal/internal/client/client"
	"github.com/dmitrijs2005/lectureportal/internal/client/models"
	"github.com/dmitrijs2005/lectureportal/internal/i18n"
)

type ExamService struct {
	api *client.HTTPClient
	loc *i18n.Localizer
}

func NewExamService(api *client.HTTPClient, loc *i18n.Localizer) *ExamService {
	return &ExamService{api: api, loc: loc}
}

func (s *ExamService) fail(err error) error {
	return describe(err, s.loc.T(i18n.MsgExamRequestFailed))
}

func (s *ExamService) LectureExams(ctx context.Context, lectureID int64) ([]models.Exam, error) {
	var out []models.Exam
	if err := s.api.Get(ctx, fmt.Sprintf("/api/exams/lecture/%d", lectureID), nil, &out); err != nil {
		return nil, s.fail(err)
	}
	return out, nil
}

// AvailableExams lists the exams of a lecture open to the signed-in student.
func (s *ExamService) AvailableExams(ctx context.Context, lectureID int64) ([]models.Exam, error) {
	var out []models.Exam
	if err := s.api.Get(ctx, fmt.Sprintf("/api/exams/lecture/%d/available", lectureID), nil, &out); err != nil {
		return nil, s.fail(err)
	}
	return out, nil
}

func (s *ExamService) CreateExam(ctx context.Context, exam models.Exam) (*models.Exam, error) {
	if err := validate.Struct(exam); err != nil {
		return nil, validationError(err, func(field string) string { return s.loc.T(i18n.MsgInvalidInput, field) })
	}
	var out models.Exam
	if err := s.api.Post(ctx, "/api/exams", exam, &out); err != nil {
		return nil, s.fail(err)
	}
	return &out, nil
}

func (s *ExamService) UpdateExam(ctx context.Context, examID int64, exam models.Exam) (*models.Exam, error) {
	var out models.Exam
	if err := s.api.Put(ctx, fmt.Sprintf("/api/exams/%d", examID), exam, &out); err != nil {
		return nil, s.fail(err)
	}
	return &out, nil
}

func (s *ExamService) StartAttempt(ctx context.Context, examID int64) (*models.ExamAttempt, error) {
	var out models.ExamAttempt
	if err := s.api.Post(ctx, fmt.Sprintf("/api/exams/%d/attempts", examID), nil, &out); err != nil {
		return nil, s.fail(err)
	}
	return &out, nil
}

// SubmitAttempt sends answers, an arbitrary JSON document, for grading.
func (s *ExamService) SubmitAttempt(ctx context.Context, examID, attemptID int64, answers json.RawMessage) (*models.ExamAttempt, error) {
	body := struct {
		Answers json.RawMessage `json:"answers"`
	}{Answers: answers}

	var out models.ExamAttempt
	if err := s.api.Post(ctx, fmt.Sprintf("/api/exams/%d/attempts/%d/submit", examID, attemptID), body, &out); err != nil {
		return nil, s.fail(err)
	}
	return &out, nil
}

func (s *ExamService) Attempt(ctx context.Context, examID, attemptID int64) (*models.ExamAttempt, error) {
	var out models.ExamAttempt
	if err := s.api.Get(ctx, fmt.Sprintf("/api/exams/%d/attempts/%d", examID, attemptID), nil, &out); err != nil {
		return nil, s.fail(err)
	}
	return &out, nil
}
