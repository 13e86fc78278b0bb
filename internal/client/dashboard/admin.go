package dashboard

import (
	"context"
	"fmt"
	"math"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/dmitrijs2005/lectureportal/internal/client/client"
	"github.com/dmitrijs2005/lectureportal/internal/client/models"
	"github.com/dmitrijs2005/lectureportal/internal/i18n"
	"golang.org/x/sync/errgroup"
)

const (
	adminPageSize     = 6
	recentLimit       = 5
	workloadLimit     = 5
	upcomingWindow    = 6
	pendingAlertAfter = 48 * time.Hour
)

// AdminSource is the data the admin dashboard reads.
type AdminSource interface {
	Lectures(ctx context.Context, page, pageSize int) (models.Page[models.Lecture], error)
	Schedules(ctx context.Context, page, pageSize int) (models.Page[models.Schedule], error)
	Enrollments(ctx context.Context, page, pageSize int) (models.Page[models.Enrollment], error)
	Classrooms(ctx context.Context, page, pageSize int) (models.Page[models.Classroom], error)
	GradeComponents(ctx context.Context, page, pageSize int) (models.Page[models.GradeComponent], error)
	AnalyticsSummary(ctx context.Context) (*models.AnalyticsSummary, error)
	TeacherWorkload(ctx context.Context) ([]models.TeacherWorkload, error)
	EnrollmentFunnel(ctx context.Context) (map[string]int64, error)
}

// Totals are the totalElements reported for each collection.
type Totals struct {
	Lectures        int64
	Schedules       int64
	Enrollments     int64
	Classrooms      int64
	GradeComponents int64
}

type AdminState struct {
	Loading bool
	Errors  []string

	Summary  *models.AnalyticsSummary
	Workload []models.TeacherWorkload
	Funnel   map[string]int64

	Lectures        []models.Lecture
	Schedules       []models.Schedule
	Enrollments     []models.Enrollment
	Classrooms      []models.Classroom
	GradeComponents []models.GradeComponent
	Totals          Totals
}

type AlertType string

const (
	AlertCapacity AlertType = "CAPACITY"
	AlertWaitlist AlertType = "WAITLIST"
	AlertPending  AlertType = "PENDING"
)

// AlertFilter selects alerts by type; AlertAll keeps every alert.
type AlertFilter string

const AlertAll AlertFilter = "ALL"

var AlertFilters = []AlertFilter{AlertAll, AlertFilter(AlertCapacity), AlertFilter(AlertWaitlist), AlertFilter(AlertPending)}

// ParseAlertFilter accepts a filter name in any case.
func ParseAlertFilter(s string) (AlertFilter, error) {
	f := AlertFilter(strings.ToUpper(strings.TrimSpace(s)))
	if !slices.Contains(AlertFilters, f) {
		return "", fmt.Errorf("unknown alert filter %q", s)
	}
	return f, nil
}

// UpcomingRanges are the day horizons offered for upcoming schedules.
var UpcomingRanges = []int{7, 14, 30}

type Alert struct {
	LectureID   int64
	LectureName string
	Type        AlertType
	Message     string
}

// FunnelStep is the enrollment count of one status.
type FunnelStep struct {
	Status string
	Total  int64
}

var funnelOrder = []string{
	models.StatusPendingApproval,
	models.StatusActive,
	models.StatusWaiting,
	models.StatusCompleted,
	models.StatusDropped,
}

type Admin struct {
	src AdminSource
	opt options

	mu            sync.Mutex
	state         AdminState
	generation    uint64
	alertFilter   AlertFilter
	upcomingRange int
}

func NewAdmin(src AdminSource, opts ...Option) *Admin {
	return &Admin{
		src:           src,
		opt:           buildOptions(opts),
		alertFilter:   AlertAll,
		upcomingRange: UpcomingRanges[0],
	}
}

// Refresh reloads every collection and analytics summary. Failures are
// collected in AdminState.Errors and never abort the load.
func (d *Admin) Refresh(ctx context.Context) {
	d.mu.Lock()
	d.generation++
	gen := d.generation
	d.state.Loading = true
	d.state.Errors = nil
	d.mu.Unlock()

	next := d.load(ctx)

	d.mu.Lock()
	defer d.mu.Unlock()
	if gen != d.generation {
		return
	}
	d.state = next
}

// EnsureLoaded refreshes unless a load is running or lectures are present.
func (d *Admin) EnsureLoaded(ctx context.Context) {
	d.mu.Lock()
	skip := d.state.Loading || len(d.state.Lectures) > 0
	d.mu.Unlock()
	if skip {
		return
	}
	d.Refresh(ctx)
}

func (d *Admin) Reset() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.generation++
	d.state = AdminState{}
}

func (d *Admin) Snapshot() AdminState {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.state
}

func (d *Admin) load(ctx context.Context) AdminState {
	var (
		next AdminState
		errs [5]error
		g    errgroup.Group
	)

	g.Go(func() error {
		page, err := d.src.Lectures(ctx, 0, adminPageSize)
		next.Lectures, next.Totals.Lectures, errs[0] = page.Items(), page.TotalElements, err
		return nil
	})
	g.Go(func() error {
		page, err := d.src.Schedules(ctx, 0, adminPageSize)
		next.Schedules, next.Totals.Schedules, errs[1] = page.Items(), page.TotalElements, err
		return nil
	})
	g.Go(func() error {
		page, err := d.src.Enrollments(ctx, 0, adminPageSize)
		next.Enrollments, next.Totals.Enrollments, errs[2] = page.Items(), page.TotalElements, err
		return nil
	})
	g.Go(func() error {
		page, err := d.src.Classrooms(ctx, 0, adminPageSize)
		next.Classrooms, next.Totals.Classrooms, errs[3] = page.Items(), page.TotalElements, err
		return nil
	})
	g.Go(func() error {
		page, err := d.src.GradeComponents(ctx, 0, adminPageSize)
		next.GradeComponents, next.Totals.GradeComponents, errs[4] = page.Items(), page.TotalElements, err
		return nil
	})
	_ = g.Wait()

	keys := [5]string{"lectures", "schedules", "enrollments", "classrooms", "gradeComponents"}
	for i, err := range errs {
		if err == nil {
			continue
		}
		d.opt.logger.Warn(ctx, "dashboard collection failed", "collection", keys[i], "error", err)
		next.Errors = append(next.Errors, d.opt.loc.T(i18n.MsgCollectionFailed, keys[i], client.Message(err, err.Error())))
	}

	d.loadAnalytics(ctx, &next)
	return next
}

func (d *Admin) loadAnalytics(ctx context.Context, next *AdminState) {
	var (
		errs [3]error
		g    errgroup.Group
	)

	g.Go(func() error {
		next.Summary, errs[0] = d.src.AnalyticsSummary(ctx)
		return nil
	})
	g.Go(func() error {
		next.Workload, errs[1] = d.src.TeacherWorkload(ctx)
		return nil
	})
	g.Go(func() error {
		next.Funnel, errs[2] = d.src.EnrollmentFunnel(ctx)
		return nil
	})
	_ = g.Wait()

	fallbacks := [3]string{i18n.MsgSummaryFailed, i18n.MsgWorkloadFailed, i18n.MsgFunnelFailed}
	for i, err := range errs {
		if err == nil {
			continue
		}
		d.opt.logger.Warn(ctx, "dashboard analytics failed", "error", err)
		next.Errors = append(next.Errors, client.Message(err, d.opt.loc.T(fallbacks[i])))
	}
	if errs[0] != nil {
		next.Summary = nil
	}
	if errs[1] != nil {
		next.Workload = nil
	}
	if errs[2] != nil || next.Funnel == nil {
		next.Funnel = map[string]int64{}
	}
}

// Metrics are the collection totals with the number of records shown.
func (d *Admin) Metrics() []Metric {
	s := d.Snapshot()
	loc := d.opt.loc
	return []Metric{
		{Key: "lectures", Label: loc.T(i18n.LabelActiveLectures), Value: s.Totals.Lectures, Helper: loc.T(i18n.MsgRecordsShown, len(s.Lectures))},
		{Key: "schedules", Label: loc.T(i18n.LabelPlannedSessions), Value: s.Totals.Schedules, Helper: loc.T(i18n.MsgRecords, len(s.Schedules))},
		{Key: "enrollments", Label: loc.T(i18n.LabelStudentEnrollment), Value: s.Totals.Enrollments, Helper: loc.T(i18n.MsgRecentOperations, len(s.Enrollments))},
		{Key: "classrooms", Label: loc.T(i18n.LabelClassrooms), Value: s.Totals.Classrooms, Helper: loc.T(i18n.MsgRecords, len(s.Classrooms))},
		{Key: "gradeComponents", Label: loc.T(i18n.LabelGradeComponents), Value: s.Totals.GradeComponents, Helper: loc.T(i18n.MsgRecords, len(s.GradeComponents))},
	}
}

// SummaryMetrics renders the analytics summary; empty when it failed.
func (d *Admin) SummaryMetrics() []Metric {
	s := d.Snapshot()
	if s.Summary == nil {
		return nil
	}
	loc := d.opt.loc
	return []Metric{
		{Key: "totalLectures", Label: loc.T(i18n.LabelTotalLectures), Value: s.Summary.TotalLectures, Helper: loc.T(i18n.HelpTotalLectures)},
		{Key: "activeEnrollments", Label: loc.T(i18n.LabelActiveEnrollments), Value: s.Summary.ActiveEnrollments, Helper: loc.T(i18n.HelpActiveEnrollments)},
		{Key: "waitlistedEnrollments", Label: loc.T(i18n.LabelWaitlisted), Value: s.Summary.WaitlistedEnrollments, Helper: loc.T(i18n.HelpWaitlisted)},
		{Key: "classroomsInUse", Label: loc.T(i18n.LabelClassroomsInUse), Value: s.Summary.ClassroomsInUse, Helper: loc.T(i18n.HelpClassroomsInUse)},
		{Key: "upcomingSessions", Label: loc.T(i18n.LabelUpcomingSessions), Value: s.Summary.UpcomingSessions, Helper: loc.T(i18n.HelpUpcomingSessions)},
	}
}

func (d *Admin) TeacherWorkload() []models.TeacherWorkload {
	return head(d.Snapshot().Workload, workloadLimit)
}

func (d *Admin) RecentLectures() []models.Lecture {
	return head(d.Snapshot().Lectures, recentLimit)
}

func (d *Admin) RecentEnrollments() []models.Enrollment {
	return head(d.Snapshot().Enrollments, recentLimit)
}

// EnrollmentFunnel lists every status in funnel order, zero when missing.
func (d *Admin) EnrollmentFunnel() []FunnelStep {
	counts := d.Snapshot().Funnel
	steps := make([]FunnelStep, 0, len(funnelOrder))
	for _, status := range funnelOrder {
		steps = append(steps, FunnelStep{Status: status, Total: counts[status]})
	}
	return steps
}

func (d *Admin) SetAlertFilter(f AlertFilter) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.alertFilter = f
}

func (d *Admin) AlertFilter() AlertFilter {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.alertFilter
}

// SetUpcomingRange selects the horizon in days; only UpcomingRanges are
// accepted.
func (d *Admin) SetUpcomingRange(days int) error {
	if !slices.Contains(UpcomingRanges, days) {
		return fmt.Errorf("unsupported range %d, expected one of %v", days, UpcomingRanges)
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	d.upcomingRange = days
	return nil
}

func (d *Admin) UpcomingRange() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.upcomingRange
}

// Alerts returns every alert derived from the loaded lectures and
// enrollments.
func (d *Admin) Alerts() []Alert {
	s := d.Snapshot()
	return buildAlerts(s.Lectures, s.Enrollments, d.opt.now(), d.opt.loc)
}

// FilteredAlerts applies the selected alert filter.
func (d *Admin) FilteredAlerts() []Alert {
	return filterAlerts(d.Alerts(), d.AlertFilter())
}

// UpcomingSchedules returns the first loaded schedules that start within the
// selected horizon. Schedules without a start date are always kept.
func (d *Admin) UpcomingSchedules() []models.Schedule {
	s := d.Snapshot()
	return upcomingWithin(head(s.Schedules, upcomingWindow), d.UpcomingRange(), d.opt.now())
}

type lectureStats struct {
	active  int
	waiting int
}

func buildAlerts(lectures []models.Lecture, enrollments []models.Enrollment, now time.Time, loc *i18n.Localizer) []Alert {
	stats := make(map[int64]lectureStats)
	for _, e := range enrollments {
		st := stats[e.LectureID]
		switch e.Status {
		case models.StatusActive:
			st.active++
		case models.StatusWaiting:
			st.waiting++
		}
		stats[e.LectureID] = st
	}

	var alerts []Alert
	for _, l := range lectures {
		st := stats[l.ID]
		switch capacityLevel(l.Capacity, st.active) {
		case capacityFull:
			alerts = append(alerts, Alert{LectureID: l.ID, LectureName: l.Name, Type: AlertCapacity, Message: loc.T(i18n.MsgCapacityFull)})
		case capacityNear:
			alerts = append(alerts, Alert{LectureID: l.ID, LectureName: l.Name, Type: AlertCapacity, Message: loc.T(i18n.MsgCapacityAlmostFull)})
		}
		if st.waiting > 0 {
			alerts = append(alerts, Alert{LectureID: l.ID, LectureName: l.Name, Type: AlertWaitlist, Message: loc.T(i18n.MsgStudentsWaiting, st.waiting)})
		}
	}

	for _, e := range enrollments {
		if e.Status != models.StatusPendingApproval {
			continue
		}
		enrolledAt, ok := models.ParseTimestamp(e.EnrolledAt)
		if !ok || now.Sub(enrolledAt) < pendingAlertAfter {
			continue
		}
		alerts = append(alerts, Alert{
			LectureID:   e.LectureID,
			LectureName: loc.T(i18n.MsgEnrollmentRef, e.ID),
			Type:        AlertPending,
			Message:     loc.T(i18n.MsgAwaitingApproval),
		})
	}
	return alerts
}

type capacityState int

const (
	capacityOK capacityState = iota
	capacityNear
	capacityFull
)

// capacityLevel: full at capacity, near-full from max(capacity-1,
// 0.9*capacity). A zero capacity is unlimited.
func capacityLevel(capacity, active int) capacityState {
	if capacity <= 0 {
		return capacityOK
	}
	if active >= capacity {
		return capacityFull
	}
	threshold := math.Max(float64(capacity-1), 0.9*float64(capacity))
	if float64(active) >= threshold {
		return capacityNear
	}
	return capacityOK
}

func filterAlerts(alerts []Alert, f AlertFilter) []Alert {
	if f == AlertAll || f == "" {
		return alerts
	}
	var out []Alert
	for _, a := range alerts {
		if AlertFilter(a.Type) == f {
			out = append(out, a)
		}
	}
	return out
}

func upcomingWithin(schedules []models.Schedule, days int, now time.Time) []models.Schedule {
	horizon := time.Duration(days) * 24 * time.Hour
	var out []models.Schedule
	for _, s := range schedules {
		start, ok := models.ParseTimestamp(s.StartDate)
		if !ok || start.Sub(now) <= horizon {
			out = append(out, s)
		}
	}
	return out
}

func head[T any](items []T, n int) []T {
	if len(items) > n {
		return items[:n]
	}
	return items
}
