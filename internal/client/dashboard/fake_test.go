package dashboard

import (
	"context"
	"sync/atomic"

	"github.com/dmitrijs2005/lectureportal/internal/client/models"
)

// fakeSource serves canned data to every aggregator. A nil func field
// returns an empty result.
type fakeSource struct {
	lectures        func(ctx context.Context) (models.Page[models.Lecture], error)
	schedules       func() (models.Page[models.Schedule], error)
	enrollments     func() (models.Page[models.Enrollment], error)
	classrooms      func() (models.Page[models.Classroom], error)
	gradeComponents func() (models.Page[models.GradeComponent], error)
	summary         func() (*models.AnalyticsSummary, error)
	workload        func() ([]models.TeacherWorkload, error)
	funnel          func() (map[string]int64, error)
	byLecture       func(id int64) ([]models.Enrollment, error)
	byStudent       func(id int64) ([]models.Enrollment, error)

	lectureCalls  atomic.Int32
	scheduleCalls atomic.Int32
	lastPageSize  atomic.Int32
}

func (f *fakeSource) Lectures(ctx context.Context, page, pageSize int) (models.Page[models.Lecture], error) {
	f.lectureCalls.Add(1)
	f.lastPageSize.Store(int32(pageSize))
	if f.lectures == nil {
		return models.Page[models.Lecture]{}, nil
	}
	return f.lectures(ctx)
}

func (f *fakeSource) Schedules(ctx context.Context, page, pageSize int) (models.Page[models.Schedule], error) {
	f.scheduleCalls.Add(1)
	if f.schedules == nil {
		return models.Page[models.Schedule]{}, nil
	}
	return f.schedules()
}

func (f *fakeSource) Enrollments(ctx context.Context, page, pageSize int) (models.Page[models.Enrollment], error) {
	if f.enrollments == nil {
		return models.Page[models.Enrollment]{}, nil
	}
	return f.enrollments()
}

func (f *fakeSource) Classrooms(ctx context.Context, page, pageSize int) (models.Page[models.Classroom], error) {
	if f.classrooms == nil {
		return models.Page[models.Classroom]{}, nil
	}
	return f.classrooms()
}

func (f *fakeSource) GradeComponents(ctx context.Context, page, pageSize int) (models.Page[models.GradeComponent], error) {
	if f.gradeComponents == nil {
		return models.Page[models.GradeComponent]{}, nil
	}
	return f.gradeComponents()
}

func (f *fakeSource) AnalyticsSummary(ctx context.Context) (*models.AnalyticsSummary, error) {
	if f.summary == nil {
		return &models.AnalyticsSummary{}, nil
	}
	return f.summary()
}

func (f *fakeSource) TeacherWorkload(ctx context.Context) ([]models.TeacherWorkload, error) {
	if f.workload == nil {
		return nil, nil
	}
	return f.workload()
}

func (f *fakeSource) EnrollmentFunnel(ctx context.Context) (map[string]int64, error) {
	if f.funnel == nil {
		return map[string]int64{}, nil
	}
	return f.funnel()
}

func (f *fakeSource) EnrollmentsByLecture(ctx context.Context, id int64) ([]models.Enrollment, error) {
	if f.byLecture == nil {
		return nil, nil
	}
	return f.byLecture(id)
}

func (f *fakeSource) EnrollmentsByStudent(ctx context.Context, id int64) ([]models.Enrollment, error) {
	if f.byStudent == nil {
		return nil, nil
	}
	return f.byStudent(id)
}

func pageOf[T any](items ...T) models.Page[T] {
	return models.Page[T]{Content: items, TotalElements: int64(len(items))}
}
