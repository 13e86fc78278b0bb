package dashboard

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/dmitrijs2005/lectureportal/internal/client/client"
	"github.com/dmitrijs2005/lectureportal/internal/client/models"
	"github.com/dmitrijs2005/lectureportal/internal/i18n"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

func clock() time.Time { return fixedNow }

func newAdminWith(lectures []models.Lecture, enrollments []models.Enrollment) (*Admin, *fakeSource) {
	src := &fakeSource{
		lectures: func(context.Context) (models.Page[models.Lecture], error) {
			return pageOf(lectures...), nil
		},
		enrollments: func() (models.Page[models.Enrollment], error) {
			return pageOf(enrollments...), nil
		},
	}
	return NewAdmin(src, WithClock(clock)), src
}

func TestAdmin_CapacityAlertWhenOverCapacity(t *testing.T) {
	d, _ := newAdminWith(
		[]models.Lecture{{ID: 1, Name: "Algebra", Capacity: 2}},
		[]models.Enrollment{
			{ID: 1, LectureID: 1, Status: models.StatusActive},
			{ID: 2, LectureID: 1, Status: models.StatusActive},
			{ID: 3, LectureID: 1, Status: models.StatusActive},
		},
	)
	d.Refresh(context.Background())

	want := []Alert{{LectureID: 1, LectureName: "Algebra", Type: AlertCapacity, Message: i18n.MsgCapacityFull}}
	if diff := cmp.Diff(want, d.Alerts()); diff != "" {
		t.Fatalf("alerts mismatch (-want +got):\n%s", diff)
	}
}

func TestCapacityLevel(t *testing.T) {
	assert.Equal(t, capacityFull, capacityLevel(2, 2))
	assert.Equal(t, capacityOK, capacityLevel(2, 1), "threshold is max(capacity-1, 0.9*capacity)")
	assert.Equal(t, capacityNear, capacityLevel(20, 19))
	assert.Equal(t, capacityOK, capacityLevel(20, 18), "capacity-1 dominates from capacity 10 up")
	assert.Equal(t, capacityOK, capacityLevel(5, 4), "0.9*capacity dominates below 10")
	assert.Equal(t, capacityNear, capacityLevel(10, 9))
	assert.Equal(t, capacityOK, capacityLevel(10, 8))
	assert.Equal(t, capacityNear, capacityLevel(30, 29))
	assert.Equal(t, capacityOK, capacityLevel(30, 27))
	assert.Equal(t, capacityOK, capacityLevel(0, 50))
}

func TestAdmin_WaitlistAlert(t *testing.T) {
	d, _ := newAdminWith(
		[]models.Lecture{{ID: 4, Name: "Biology", Capacity: 40}},
		[]models.Enrollment{{ID: 9, LectureID: 4, Status: models.StatusWaiting}},
	)
	d.Refresh(context.Background())

	alerts := d.Alerts()
	require.Len(t, alerts, 1)
	assert.Equal(t, AlertWaitlist, alerts[0].Type)
	assert.Equal(t, "1 students waiting", alerts[0].Message)
}

func TestAdmin_PendingAlertThreshold(t *testing.T) {
	at := func(hours int) string {
		return fixedNow.Add(-time.Duration(hours) * time.Hour).Format(time.RFC3339)
	}
	d, _ := newAdminWith(nil, []models.Enrollment{
		{ID: 50, LectureID: 1, Status: models.StatusPendingApproval, EnrolledAt: at(50)},
		{ID: 49, LectureID: 1, Status: models.StatusPendingApproval, EnrolledAt: at(49)},
		{ID: 47, LectureID: 1, Status: models.StatusPendingApproval, EnrolledAt: at(47)},
		{ID: 48, LectureID: 1, Status: models.StatusPendingApproval},
		{ID: 51, LectureID: 1, Status: models.StatusActive, EnrolledAt: at(100)},
	})
	d.Refresh(context.Background())

	var names []string
	for _, a := range d.Alerts() {
		assert.Equal(t, AlertPending, a.Type)
		assert.Equal(t, i18n.MsgAwaitingApproval, a.Message)
		names = append(names, a.LectureName)
	}
	assert.Equal(t, []string{"Enrollment #50", "Enrollment #49"}, names)
}

func TestAdmin_AlertFilter(t *testing.T) {
	d, _ := newAdminWith(
		[]models.Lecture{{ID: 1, Name: "Algebra", Capacity: 1}},
		[]models.Enrollment{
			{ID: 1, LectureID: 1, Status: models.StatusActive},
			{ID: 2, LectureID: 1, Status: models.StatusWaiting},
		},
	)
	d.Refresh(context.Background())

	assert.Len(t, d.FilteredAlerts(), 2)

	f, err := ParseAlertFilter("waitlist")
	require.NoError(t, err)
	d.SetAlertFilter(f)
	got := d.FilteredAlerts()
	require.Len(t, got, 1)
	assert.Equal(t, AlertWaitlist, got[0].Type)

	d.SetAlertFilter(AlertFilter(AlertPending))
	assert.Empty(t, d.FilteredAlerts())

	_, err = ParseAlertFilter("urgent")
	assert.Error(t, err)
}

func TestAdmin_PartialFailure(t *testing.T) {
	src := &fakeSource{
		lectures: func(context.Context) (models.Page[models.Lecture], error) {
			return models.Page[models.Lecture]{Content: []models.Lecture{{ID: 1, Name: "Algebra"}}, TotalElements: 40}, nil
		},
		enrollments: func() (models.Page[models.Enrollment], error) {
			return models.Page[models.Enrollment]{}, &client.APIError{Status: http.StatusInternalServerError, Message: "database down"}
		},
		classrooms: func() (models.Page[models.Classroom], error) {
			return models.Page[models.Classroom]{}, errors.New("dial tcp: refused")
		},
		summary: func() (*models.AnalyticsSummary, error) {
			return nil, &client.APIError{Status: http.StatusBadGateway}
		},
		workload: func() ([]models.TeacherWorkload, error) {
			return []models.TeacherWorkload{{TeacherID: 1}, {TeacherID: 2}, {TeacherID: 3}, {TeacherID: 4}, {TeacherID: 5}, {TeacherID: 6}}, nil
		},
		funnel: func() (map[string]int64, error) {
			return nil, &client.APIError{Status: http.StatusForbidden, Message: "analytics disabled"}
		},
	}
	d := NewAdmin(src, WithClock(clock))
	d.Refresh(context.Background())

	s := d.Snapshot()
	assert.False(t, s.Loading)
	assert.Equal(t, []string{
		"enrollments could not be loaded: database down",
		"classrooms could not be loaded: dial tcp: refused",
		i18n.MsgSummaryFailed,
		"analytics disabled",
	}, s.Errors)

	assert.Equal(t, int64(40), s.Totals.Lectures)
	assert.Empty(t, s.Enrollments)
	assert.Zero(t, s.Totals.Enrollments)
	assert.Nil(t, d.SummaryMetrics())
	assert.Len(t, d.TeacherWorkload(), 5)

	metrics := d.Metrics()
	assert.Equal(t, "1 records shown", metrics[0].Helper)
	assert.Equal(t, int64(40), metrics[0].Value)

	funnel := d.EnrollmentFunnel()
	require.Len(t, funnel, 5)
	assert.Equal(t, models.StatusPendingApproval, funnel[0].Status)
	assert.Equal(t, models.StatusDropped, funnel[4].Status)
	for _, step := range funnel {
		assert.Zero(t, step.Total)
	}
}

func TestAdmin_EnrollmentFunnelOrder(t *testing.T) {
	src := &fakeSource{funnel: func() (map[string]int64, error) {
		return map[string]int64{models.StatusActive: 12, models.StatusDropped: 2, "UNKNOWN": 9}, nil
	}}
	d := NewAdmin(src)
	d.Refresh(context.Background())

	want := []FunnelStep{
		{Status: models.StatusPendingApproval},
		{Status: models.StatusActive, Total: 12},
		{Status: models.StatusWaiting},
		{Status: models.StatusCompleted},
		{Status: models.StatusDropped, Total: 2},
	}
	assert.Equal(t, want, d.EnrollmentFunnel())
}

func TestAdmin_UpcomingSchedules(t *testing.T) {
	day := func(n int) string { return fixedNow.AddDate(0, 0, n).Format(time.RFC3339) }
	src := &fakeSource{schedules: func() (models.Page[models.Schedule], error) {
		return pageOf(
			models.Schedule{ID: 1, StartDate: day(3)},
			models.Schedule{ID: 2, StartDate: day(10)},
			models.Schedule{ID: 3},
			models.Schedule{ID: 4, StartDate: day(-2)},
			models.Schedule{ID: 5, StartDate: day(29)},
			models.Schedule{ID: 6, StartDate: day(31)},
			models.Schedule{ID: 7, StartDate: day(1)},
		), nil
	}}
	d := NewAdmin(src, WithClock(clock))
	d.Refresh(context.Background())

	ids := func() []int64 {
		var out []int64
		for _, s := range d.UpcomingSchedules() {
			out = append(out, s.ID)
		}
		return out
	}

	assert.Equal(t, []int64{1, 3, 4}, ids())
	require.NoError(t, d.SetUpcomingRange(14))
	assert.Equal(t, []int64{1, 2, 3, 4}, ids())
	require.NoError(t, d.SetUpcomingRange(30))
	assert.Equal(t, []int64{1, 2, 3, 4, 5}, ids(), "only the first six schedules are considered")
	assert.Error(t, d.SetUpcomingRange(5))
	assert.Equal(t, 30, d.UpcomingRange())
}

func TestAdmin_EnsureLoadedOnce(t *testing.T) {
	d, src := newAdminWith([]models.Lecture{{ID: 1}}, nil)
	ctx := context.Background()

	d.EnsureLoaded(ctx)
	d.EnsureLoaded(ctx)
	assert.Equal(t, int32(1), src.lectureCalls.Load())
	assert.Equal(t, int32(adminPageSize), src.lastPageSize.Load())

	d.Reset()
	assert.Empty(t, d.Snapshot().Lectures)
	d.EnsureLoaded(ctx)
	assert.Equal(t, int32(2), src.lectureCalls.Load())
}

func TestAdmin_ResetDropsInFlightLoad(t *testing.T) {
	started := make(chan struct{})
	release := make(chan struct{})
	src := &fakeSource{lectures: func(context.Context) (models.Page[models.Lecture], error) {
		close(started)
		<-release
		return pageOf(models.Lecture{ID: 1}), nil
	}}
	d := NewAdmin(src)

	done := make(chan struct{})
	go func() {
		d.Refresh(context.Background())
		close(done)
	}()

	<-started
	assert.True(t, d.Snapshot().Loading)
	d.Reset()
	close(release)
	<-done

	s := d.Snapshot()
	assert.False(t, s.Loading)
	assert.Empty(t, s.Lectures)
}

func TestAdmin_LocalizedMessages(t *testing.T) {
	src := &fakeSource{
		lectures: func(context.Context) (models.Page[models.Lecture], error) {
			return pageOf(models.Lecture{ID: 1, Name: "Fizik", Capacity: 1}), nil
		},
		enrollments: func() (models.Page[models.Enrollment], error) {
			return pageOf(models.Enrollment{ID: 1, LectureID: 1, Status: models.StatusActive}), nil
		},
	}
	d := NewAdmin(src, WithLocalizer(i18n.New("tr")))
	d.Refresh(context.Background())

	alerts := d.Alerts()
	require.Len(t, alerts, 1)
	assert.Equal(t, "Kontenjan dolu", alerts[0].Message)
	assert.Equal(t, "Aktif Ders", d.Metrics()[0].Label)
}
