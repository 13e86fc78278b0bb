package dashboard

import (
	"context"
	"net/http"
	"testing"

	"github.com/dmitrijs2005/lectureportal/internal/client/client"
	"github.com/dmitrijs2005/lectureportal/internal/client/models"
	"github.com/dmitrijs2005/lectureportal/internal/i18n"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const studentID = 7

func studentSource() *fakeSource {
	return &fakeSource{
		byStudent: func(id int64) ([]models.Enrollment, error) {
			return []models.Enrollment{
				{ID: 1, LectureID: 1, StudentID: id, Status: models.StatusActive},
				{ID: 2, LectureID: 2, StudentID: id, Status: models.StatusWaiting},
				{ID: 3, LectureID: 99, StudentID: id, Status: models.StatusDropped},
			}, nil
		},
		lectures: func(context.Context) (models.Page[models.Lecture], error) {
			var lectures []models.Lecture
			for id := int64(1); id <= 8; id++ {
				lectures = append(lectures, models.Lecture{ID: id, Name: "L"})
			}
			return pageOf(lectures...), nil
		},
		schedules: func() (models.Page[models.Schedule], error) {
			return pageOf(
				models.Schedule{ID: 1, LectureID: 1, StartDate: "2025-04-10"},
				models.Schedule{ID: 2, LectureID: 3, StartDate: "2025-04-01"},
				models.Schedule{ID: 3, LectureID: 2, StartDate: "2025-04-02"},
				models.Schedule{ID: 4, LectureID: 1, StartDate: "2025-04-05"},
				models.Schedule{ID: 5, LectureID: 2},
				models.Schedule{ID: 6, LectureID: 1, StartDate: "2025-05-01"},
			), nil
		},
	}
}

func TestStudent_Refresh(t *testing.T) {
	d := NewStudent(studentSource())
	d.Bind(context.Background(), studentID, true)

	s := d.Snapshot()
	require.Empty(t, s.Error)
	assert.Len(t, s.Enrollments, 3)
	assert.Len(t, s.Catalog, 8)
	assert.Len(t, s.Schedules, 5, "schedules of lecture 3 are dropped")

	var upcoming []int64
	for _, sch := range d.UpcomingSessions() {
		upcoming = append(upcoming, sch.ID)
	}
	assert.Equal(t, []int64{5, 3, 4, 1}, upcoming)

	var available []int64
	for _, l := range d.AvailableLectures() {
		available = append(available, l.ID)
	}
	assert.Equal(t, []int64{3, 4, 5, 6}, available)

	counts := d.StatusCounts()
	assert.Equal(t, int64(1), counts[models.StatusActive])
	assert.Equal(t, int64(1), counts[models.StatusWaiting])
	assert.Equal(t, int64(0), counts[models.StatusPendingApproval])
	assert.Equal(t, int64(1), counts[models.StatusDropped])

	cards := d.MetricCards()
	require.Len(t, cards, 4)
	assert.Equal(t, i18n.LabelActiveCourses, cards[0].Label)
	assert.Equal(t, int64(1), cards[0].Value)

	detailed := d.EnrollmentsDetailed()
	require.Len(t, detailed, 3)
	require.NotNil(t, detailed[0].Lecture)
	assert.Equal(t, int64(1), detailed[0].Lecture.ID)
	assert.Nil(t, detailed[2].Lecture)
}

func TestStudent_EnrollmentFailureAbortsRefresh(t *testing.T) {
	src := studentSource()
	src.byStudent = func(int64) ([]models.Enrollment, error) {
		return nil, &client.APIError{Status: http.StatusInternalServerError, Message: "enrollment service down"}
	}
	d := NewStudent(src)
	d.Bind(context.Background(), studentID, true)

	s := d.Snapshot()
	assert.Equal(t, "enrollment service down", s.Error)
	assert.Empty(t, s.Catalog)
	assert.Empty(t, s.Schedules)
	assert.Empty(t, s.Enrollments)
}

func TestStudent_ScheduleFailureAbortsRefresh(t *testing.T) {
	src := studentSource()
	src.schedules = func() (models.Page[models.Schedule], error) {
		return models.Page[models.Schedule]{}, &client.APIError{Status: http.StatusBadGateway}
	}
	d := NewStudent(src)
	d.Bind(context.Background(), studentID, true)

	s := d.Snapshot()
	assert.Equal(t, i18n.MsgStudentDataFailed, s.Error)
	assert.Empty(t, s.Catalog)
	assert.Empty(t, s.Schedules)
	assert.Len(t, s.Enrollments, 3)
}

func TestStudent_NoEnrollmentsSkipsSchedules(t *testing.T) {
	src := studentSource()
	src.byStudent = func(int64) ([]models.Enrollment, error) { return nil, nil }
	d := NewStudent(src)
	d.Bind(context.Background(), studentID, true)

	assert.Zero(t, src.scheduleCalls.Load())
	assert.Len(t, d.Snapshot().Catalog, 8)
	assert.Len(t, d.AvailableLectures(), 4)
}

func TestStudent_EnsureLoadedAndUnbind(t *testing.T) {
	src := studentSource()
	d := NewStudent(src)
	ctx := context.Background()

	d.EnsureLoaded(ctx)
	assert.Zero(t, src.lectureCalls.Load(), "no identity, nothing to load")

	d.Bind(ctx, studentID, true)
	d.EnsureLoaded(ctx)
	assert.Equal(t, int32(1), src.lectureCalls.Load())

	d.Bind(ctx, 0, true)
	assert.Empty(t, d.Snapshot().Enrollments)
}
