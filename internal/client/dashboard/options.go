package dashboard

import (
	"time"

	"github.com/dmitrijs2005/lectureportal/internal/client/models"
	"github.com/dmitrijs2005/lectureportal/internal/i18n"
	"github.com/dmitrijs2005/lectureportal/internal/logging"
)

// maxParallel caps the per-lecture enrollment fetches in flight.
const maxParallel = 8

type options struct {
	loc    *i18n.Localizer
	logger logging.Logger
	now    func() time.Time
}

type Option func(*options)

func WithLocalizer(loc *i18n.Localizer) Option {
	return func(o *options) { o.loc = loc }
}

func WithLogger(l logging.Logger) Option {
	return func(o *options) { o.logger = l }
}

// WithClock replaces time.Now for the time-dependent views.
func WithClock(now func() time.Time) Option {
	return func(o *options) { o.now = now }
}

func buildOptions(opts []Option) options {
	o := options{
		loc:    i18n.Default(),
		logger: logging.Discard(),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// Metric is one headline number of a dashboard.
type Metric struct {
	Key    string
	Label  string
	Value  int64
	Helper string
}

func countByStatus(enrollments []models.Enrollment) map[string]int64 {
	counts := make(map[string]int64)
	for _, e := range enrollments {
		counts[e.Status]++
	}
	return counts
}
