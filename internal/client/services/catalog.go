package services

import (
	"context"
	"strconv"

	"github.com/dmitrijs2005/lectureportal/internal/client/client"
	"github.com/dmitrijs2005/lectureportal/internal/client/models"
)

// CatalogService reads the portal collections and analytics. Errors are
// returned as they come from the client; callers decide the wording.
type CatalogService struct {
	api *client.HTTPClient
}

func NewCatalogService(api *client.HTTPClient) *CatalogService {
	return &CatalogService{api: api}
}

func (s *CatalogService) Lectures(ctx context.Context, page, pageSize int) (models.Page[models.Lecture], error) {
	return client.GetPage[models.Lecture](ctx, s.api, "/api/lectures", page, pageSize)
}

func (s *CatalogService) Schedules(ctx context.Context, page, pageSize int) (models.Page[models.Schedule], error) {
	return client.GetPage[models.Schedule](ctx, s.api, "/api/lecture-schedules", page, pageSize)
}

func (s *CatalogService) Enrollments(ctx context.Context, page, pageSize int) (models.Page[models.Enrollment], error) {
	return client.GetPage[models.Enrollment](ctx, s.api, "/api/enrollments", page, pageSize)
}

func (s *CatalogService) Classrooms(ctx context.Context, page, pageSize int) (models.Page[models.Classroom], error) {
	return client.GetPage[models.Classroom](ctx, s.api, "/api/classrooms", page, pageSize)
}

func (s *CatalogService) ScheduleSlots(ctx context.Context, page, pageSize int) (models.Page[models.ScheduleSlot], error) {
	return client.GetPage[models.ScheduleSlot](ctx, s.api, "/api/schedule-slots", page, pageSize)
}

func (s *CatalogService) GradeComponents(ctx context.Context, page, pageSize int) (models.Page[models.GradeComponent], error) {
	return client.GetPage[models.GradeComponent](ctx, s.api, "/api/grade-components", page, pageSize)
}

func (s *CatalogService) EnrollmentsByStudent(ctx context.Context, studentID int64) ([]models.Enrollment, error) {
	return s.enrollmentList(ctx, "/api/enrollments/student/"+strconv.FormatInt(studentID, 10))
}

func (s *CatalogService) EnrollmentsByLecture(ctx context.Context, lectureID int64) ([]models.Enrollment, error) {
	return s.enrollmentList(ctx, "/api/enrollments/lecture/"+strconv.FormatInt(lectureID, 10))
}

// enrollmentList accepts a bare array or a paginated envelope.
func (s *CatalogService) enrollmentList(ctx context.Context, path string) ([]models.Enrollment, error) {
	var page models.Page[models.Enrollment]
	if err := s.api.Get(ctx, path, nil, &page); err != nil {
		return nil, err
	}
	return page.Items(), nil
}

func (s *CatalogService) AnalyticsSummary(ctx context.Context) (*models.AnalyticsSummary, error) {
	var out models.AnalyticsSummary
	if err := s.api.Get(ctx, "/api/analytics/summary", nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *CatalogService) TeacherWorkload(ctx context.Context) ([]models.TeacherWorkload, error) {
	var out []models.TeacherWorkload
	if err := s.api.Get(ctx, "/api/analytics/teacher-workload", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// EnrollmentFunnel returns the enrollment count per status.
func (s *CatalogService) EnrollmentFunnel(ctx context.Context) (map[string]int64, error) {
	var out models.EnrollmentFunnel
	if err := s.api.Get(ctx, "/api/analytics/enrollment-funnel", nil, &out); err != nil {
		return nil, err
	}
	if out.StatusCounts == nil {
		return map[string]int64{}, nil
	}
	return out.StatusCounts, nil
}
