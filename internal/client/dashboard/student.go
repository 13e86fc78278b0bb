package dashboard

import (
	"context"
	"sort"
	"sync"

	"github.com/dmitrijs2005/lectureportal/internal/client/client"
	"github.com/dmitrijs2005/lectureportal/internal/client/models"
	"github.com/dmitrijs2005/lectureportal/internal/i18n"
	"golang.org/x/sync/errgroup"
)

const (
	studentUpcoming  = 4
	studentAvailable = 4
)

type StudentSource interface {
	EnrollmentsByStudent(ctx context.Context, studentID int64) ([]models.Enrollment, error)
	Lectures(ctx context.Context, page, pageSize int) (models.Page[models.Lecture], error)
	Schedules(ctx context.Context, page, pageSize int) (models.Page[models.Schedule], error)
}

type StudentState struct {
	Loading     bool
	Error       string
	Enrollments []models.Enrollment
	Catalog     []models.Lecture
	Schedules   []models.Schedule
}

// EnrollmentDetail joins an enrollment with its catalog lecture; Lecture is
// nil when the lecture is not in the catalog page.
type EnrollmentDetail struct {
	models.Enrollment
	Lecture *models.Lecture
}

// Student aggregates one student's enrollments, the catalog and the
// schedules of the enrolled lectures. Any failed fetch fails the refresh.
type Student struct {
	src StudentSource
	opt options

	mu         sync.Mutex
	state      StudentState
	generation uint64
	identity   int64
	active     bool
}

func NewStudent(src StudentSource, opts ...Option) *Student {
	return &Student{src: src, opt: buildOptions(opts), active: true}
}

// Bind sets the student identity and visibility. Losing either clears the
// state; otherwise the dashboard reloads.
func (d *Student) Bind(ctx context.Context, identity int64, active bool) {
	d.mu.Lock()
	d.identity = identity
	d.active = active
	d.mu.Unlock()

	if !active || identity == 0 {
		d.Reset()
		return
	}
	d.Refresh(ctx)
}

func (d *Student) Refresh(ctx context.Context) {
	d.mu.Lock()
	identity := d.identity
	if identity == 0 {
		d.mu.Unlock()
		d.Reset()
		return
	}
	d.generation++
	gen := d.generation
	d.state.Loading = true
	d.state.Error = ""
	d.mu.Unlock()

	next := d.load(ctx, identity)

	d.mu.Lock()
	defer d.mu.Unlock()
	if gen != d.generation {
		return
	}
	d.state = next
}

func (d *Student) EnsureLoaded(ctx context.Context) {
	d.mu.Lock()
	skip := d.state.Loading || d.identity == 0 || !d.active || len(d.state.Enrollments) > 0
	d.mu.Unlock()
	if skip {
		return
	}
	d.Refresh(ctx)
}

func (d *Student) Reset() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.generation++
	d.state = StudentState{}
}

func (d *Student) Snapshot() StudentState {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.state
}

func (d *Student) load(ctx context.Context, identity int64) StudentState {
	var (
		next        StudentState
		enrollments []models.Enrollment
		catalog     models.Page[models.Lecture]
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		enrollments, err = d.src.EnrollmentsByStudent(gctx, identity)
		return err
	})
	g.Go(func() error {
		var err error
		catalog, err = d.src.Lectures(gctx, 0, catalogPageSize)
		return err
	})
	if err := g.Wait(); err != nil {
		return d.failed(ctx, next, err)
	}
	next.Enrollments = enrollments

	if len(enrollments) > 0 {
		page, err := d.src.Schedules(ctx, 0, catalogPageSize)
		if err != nil {
			return d.failed(ctx, next, err)
		}
		enrolled := enrolledLectures(enrollments)
		for _, s := range page.Items() {
			if enrolled[s.LectureID] {
				next.Schedules = append(next.Schedules, s)
			}
		}
	}

	next.Catalog = catalog.Items()
	return next
}

// failed records err; catalog and schedules stay empty.
func (d *Student) failed(ctx context.Context, next StudentState, err error) StudentState {
	d.opt.logger.Warn(ctx, "student dashboard failed", "error", err)
	next.Error = client.Message(err, d.opt.loc.T(i18n.MsgStudentDataFailed))
	next.Catalog = nil
	next.Schedules = nil
	return next
}

func enrolledLectures(enrollments []models.Enrollment) map[int64]bool {
	ids := make(map[int64]bool, len(enrollments))
	for _, e := range enrollments {
		ids[e.LectureID] = true
	}
	return ids
}

// StatusCounts counts enrollments per status. ACTIVE, PENDING_APPROVAL,
// WAITING and COMPLETED are always present.
func (d *Student) StatusCounts() map[string]int64 {
	counts := map[string]int64{
		models.StatusActive:          0,
		models.StatusPendingApproval: 0,
		models.StatusWaiting:         0,
		models.StatusCompleted:       0,
	}
	for status, n := range countByStatus(d.Snapshot().Enrollments) {
		counts[status] = n
	}
	return counts
}

func (d *Student) MetricCards() []Metric {
	counts := d.StatusCounts()
	loc := d.opt.loc
	return []Metric{
		{Key: models.StatusActive, Label: loc.T(i18n.LabelActiveCourses), Value: counts[models.StatusActive], Helper: loc.T(i18n.HelpActiveCourses)},
		{Key: models.StatusPendingApproval, Label: loc.T(i18n.LabelPendingApproval), Value: counts[models.StatusPendingApproval], Helper: loc.T(i18n.HelpPendingApproval)},
		{Key: models.StatusWaiting, Label: loc.T(i18n.LabelWaitlist), Value: counts[models.StatusWaiting], Helper: loc.T(i18n.HelpWaitlist)},
		{Key: models.StatusCompleted, Label: loc.T(i18n.LabelCompleted), Value: counts[models.StatusCompleted], Helper: loc.T(i18n.HelpCompletedFinalGrade)},
	}
}

func (d *Student) EnrollmentsDetailed() []EnrollmentDetail {
	s := d.Snapshot()
	byID := make(map[int64]*models.Lecture, len(s.Catalog))
	for i := range s.Catalog {
		byID[s.Catalog[i].ID] = &s.Catalog[i]
	}
	out := make([]EnrollmentDetail, 0, len(s.Enrollments))
	for _, e := range s.Enrollments {
		out = append(out, EnrollmentDetail{Enrollment: e, Lecture: byID[e.LectureID]})
	}
	return out
}

// UpcomingSessions returns the first sessions by start date. Sessions
// without a start date sort first.
func (d *Student) UpcomingSessions() []models.Schedule {
	sessions := append([]models.Schedule(nil), d.Snapshot().Schedules...)
	sort.SliceStable(sessions, func(i, j int) bool {
		ti, _ := models.ParseTimestamp(sessions[i].StartDate)
		tj, _ := models.ParseTimestamp(sessions[j].StartDate)
		return ti.Before(tj)
	})
	return head(sessions, studentUpcoming)
}

// AvailableLectures lists catalog lectures the student is not enrolled in.
func (d *Student) AvailableLectures() []models.Lecture {
	s := d.Snapshot()
	enrolled := enrolledLectures(s.Enrollments)
	var out []models.Lecture
	for _, l := range s.Catalog {
		if enrolled[l.ID] {
			continue
		}
		out = append(out, l)
		if len(out) == studentAvailable {
			break
		}
	}
	return out
}
