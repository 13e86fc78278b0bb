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
	catalogPageSize = 100
	teacherRecent   = 6
)

type TeacherSource interface {
	Lectures(ctx context.Context, page, pageSize int) (models.Page[models.Lecture], error)
	EnrollmentsByLecture(ctx context.Context, lectureID int64) ([]models.Enrollment, error)
}

type TeacherState struct {
	Loading              bool
	Error                string
	Lectures             []models.Lecture
	EnrollmentsByLecture map[int64][]models.Enrollment
}

// LectureCard summarizes the seats of one lecture.
type LectureCard struct {
	ID        int64
	Name      string
	Capacity  int
	Active    int
	Waiting   int
	Available int
}

// Teacher aggregates the lectures taught by one teacher and their
// enrollments.
type Teacher struct {
	src TeacherSource
	opt options

	mu         sync.Mutex
	state      TeacherState
	generation uint64
	identity   int64
	active     bool
}

func NewTeacher(src TeacherSource, opts ...Option) *Teacher {
	return &Teacher{src: src, opt: buildOptions(opts), active: true}
}

// Bind sets the teacher identity and visibility. Losing either clears the
// state; otherwise the dashboard reloads.
func (d *Teacher) Bind(ctx context.Context, identity int64, active bool) {
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

func (d *Teacher) Refresh(ctx context.Context) {
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
	d.state.EnrollmentsByLecture = nil
	d.mu.Unlock()

	next := d.load(ctx, identity)

	d.mu.Lock()
	defer d.mu.Unlock()
	if gen != d.generation {
		return
	}
	d.state = next
}

// EnsureLoaded refreshes a bound, visible dashboard that has no lectures yet
// and is not already loading.
func (d *Teacher) EnsureLoaded(ctx context.Context) {
	d.mu.Lock()
	skip := d.state.Loading || d.identity == 0 || !d.active || len(d.state.Lectures) > 0
	d.mu.Unlock()
	if skip {
		return
	}
	d.Refresh(ctx)
}

func (d *Teacher) Reset() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.generation++
	d.state = TeacherState{}
}

func (d *Teacher) Snapshot() TeacherState {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.state
}

func (d *Teacher) load(ctx context.Context, identity int64) TeacherState {
	next := TeacherState{EnrollmentsByLecture: map[int64][]models.Enrollment{}}

	page, err := d.src.Lectures(ctx, 0, catalogPageSize)
	if err != nil {
		d.opt.logger.Warn(ctx, "teacher lectures failed", "error", err)
		next.Error = client.Message(err, d.opt.loc.T(i18n.MsgTeacherDataFailed))
		return next
	}
	for _, l := range page.Items() {
		if l.TeacherID == identity {
			next.Lectures = append(next.Lectures, l)
		}
	}
	if len(next.Lectures) == 0 {
		return next
	}

	lists := make([][]models.Enrollment, len(next.Lectures))
	errs := make([]error, len(next.Lectures))
	var g errgroup.Group
	g.SetLimit(maxParallel)
	for i, l := range next.Lectures {
		g.Go(func() error {
			lists[i], errs[i] = d.src.EnrollmentsByLecture(ctx, l.ID)
			return nil
		})
	}
	_ = g.Wait()

	for i, l := range next.Lectures {
		if errs[i] != nil {
			d.opt.logger.Warn(ctx, "lecture enrollments failed", "lecture", l.ID, "error", errs[i])
			next.EnrollmentsByLecture[l.ID] = []models.Enrollment{}
			if next.Error == "" {
				next.Error = client.Message(errs[i], d.opt.loc.T(i18n.MsgLectureEnrollFailed))
			}
			continue
		}
		next.EnrollmentsByLecture[l.ID] = lists[i]
	}
	return next
}

// Enrollments flattens the per-lecture lists, newest first. Enrollments
// without a readable date sort last.
func (d *Teacher) Enrollments() []models.Enrollment {
	s := d.Snapshot()
	var flat []models.Enrollment
	for _, l := range s.Lectures {
		flat = append(flat, s.EnrollmentsByLecture[l.ID]...)
	}
	sort.SliceStable(flat, func(i, j int) bool {
		ti, okI := models.ParseTimestamp(flat[i].EnrolledAt)
		tj, okJ := models.ParseTimestamp(flat[j].EnrolledAt)
		if okI != okJ {
			return okI
		}
		return ti.After(tj)
	})
	return flat
}

func (d *Teacher) HeadlineStats() []Metric {
	lectures := len(d.Snapshot().Lectures)
	counts := countByStatus(d.Enrollments())
	loc := d.opt.loc
	return []Metric{
		{Key: "lectures", Label: loc.T(i18n.LabelLectureCount), Value: int64(lectures), Helper: loc.T(i18n.HelpLectureCount)},
		{Key: models.StatusActive, Label: loc.T(i18n.LabelActiveStudents), Value: counts[models.StatusActive], Helper: loc.T(i18n.HelpActiveStudents)},
		{Key: models.StatusWaiting, Label: loc.T(i18n.LabelWaitlisted), Value: counts[models.StatusWaiting], Helper: loc.T(i18n.HelpWaitingStudents)},
		{Key: models.StatusCompleted, Label: loc.T(i18n.LabelCompleted), Value: counts[models.StatusCompleted], Helper: loc.T(i18n.HelpCompletedGrading)},
	}
}

func (d *Teacher) LectureCards() []LectureCard {
	s := d.Snapshot()
	cards := make([]LectureCard, 0, len(s.Lectures))
	for _, l := range s.Lectures {
		counts := countByStatus(s.EnrollmentsByLecture[l.ID])
		active := int(counts[models.StatusActive])
		cards = append(cards, LectureCard{
			ID:        l.ID,
			Name:      l.Name,
			Capacity:  l.Capacity,
			Active:    active,
			Waiting:   int(counts[models.StatusWaiting]),
			Available: max(l.Capacity-active, 0),
		})
	}
	return cards
}

func (d *Teacher) RecentEnrollments() []models.Enrollment {
	return head(d.Enrollments(), teacherRecent)
}

func (d *Teacher) PendingApprovals() []models.Enrollment {
	var out []models.Enrollment
	for _, e := range d.Enrollments() {
		if e.Status == models.StatusPendingApproval {
			out = append(out, e)
		}
	}
	return out
}

// GradingQueue lists active enrollments that have no grade yet.
func (d *Teacher) GradingQueue() []models.Enrollment {
	var out []models.Enrollment
	for _, e := range d.Enrollments() {
		if e.Status == models.StatusActive && e.Grade == nil {
			out = append(out, e)
		}
	}
	return out
}

// LectureNames maps lecture id to name.
func (d *Teacher) LectureNames() map[int64]string {
	s := d.Snapshot()
	names := make(map[int64]string, len(s.Lectures))
	for _, l := range s.Lectures {
		names[l.ID] = l.Name
	}
	return names
}
