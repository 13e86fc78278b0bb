package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/lectureportal/internal/client/navigation"
	"github.com/dmitrijs2005/lectureportal/internal/client/models"
	"github.com/dmitrijs2005/lectureportal/internal/common"
)

var getMultiline = GetMultiline

var errInvalidAnswers = errors.New("answers must be valid JSON")

// Exams lists the exams of a lecture. Students see only the exams open to
// them.
func (a *App) Exams(ctx context.Context, lectureID string) error {
	if !a.guard(navigation.Lectures) {
		return nil
	}

	id, err := parseID(lectureID)
	if err != nil {
		return err
	}

	var exams []models.Exam
	if a.store.HasRole(common.RoleStudent) {
		exams, err = a.exams.AvailableExams(ctx, id)
	} else {
		exams, err = a.exams.LectureExams(ctx, id)
	}
	if err != nil {
		return err
	}

	tw := newTable(a.out)
	fmt.Fprintln(tw, "ID\tTITLE\tSTARTS\tENDS\tMINUTES")
	for _, e := range exams {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%d\n", e.ID, e.Title, orDash(e.StartsAt), orDash(e.EndsAt), e.DurationMinutes)
	}
	return tw.Flush()
}

func (a *App) StartExam(ctx context.Context, examID string) error {
	if !a.guard(navigation.Lectures) {
		return nil
	}

	id, err := parseID(examID)
	if err != nil {
		return err
	}

	attempt, err := a.exams.StartAttempt(ctx, id)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Attempt %d started for exam %d\n", attempt.ID, id)
	return nil
}

// SubmitExam reads the answers as a JSON document and submits the attempt.
func (a *App) SubmitExam(ctx context.Context, examID, attemptID string) error {
	if !a.guard(navigation.Lectures) {
		return nil
	}

	eid, err := parseID(examID)
	if err != nil {
		return err
	}
	aid, err := parseID(attemptID)
	if err != nil {
		return err
	}

	answers, err := getMultiline(a.reader, "Enter answers as JSON", a.out)
	if err != nil {
		return err
	}
	if !json.Valid([]byte(answers)) {
		return errInvalidAnswers
	}

	attempt, err := a.exams.SubmitAttempt(ctx, eid, aid, json.RawMessage(answers))
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Attempt %d %s, score %s\n", attempt.ID, orDash(attempt.Status), formatGrade(attempt.Score))
	return nil
}
