package models

import "encoding/json"

type Exam struct {
	ID              int64           `json:"id,omitempty"`
	LectureID       int64           `json:"lectureId" validate:"gt=0"`
	Title           string          `json:"title" validate:"required"`
	StartsAt        string          `json:"startsAt,omitempty"`
	EndsAt          string          `json:"endsAt,omitempty"`
	DurationMinutes int             `json:"durationMinutes,omitempty"`
	Questions       json.RawMessage `json:"questions,omitempty"`
}

type ExamAttempt struct {
	ID          int64           `json:"id"`
	ExamID      int64           `json:"examId"`
	Status      string          `json:"status,omitempty"`
	StartedAt   string          `json:"startedAt,omitempty"`
	SubmittedAt string          `json:"submittedAt,omitempty"`
	Score       *float64        `json:"score,omitempty"`
	Answers     json.RawMessage `json:"answers,omitempty"`
}
