package services

import (
	"context"
	"errors"
	"strconv"

	"github.com/dmitrijs2005/lectureportal/internal/client/client"
	"github.com/dmitrijs2005/lectureportal/internal/client/models"
	"github.com/dmitrijs2005/lectureportal/internal/i18n"
	"golang.org/x/sync/errgroup"
)

const adminPageSize = 50

var errScheduleDates = errors.New("end date precedes start date")

// Lookups are the options offered when planning a schedule.
type Lookups struct {
	Lectures   []models.Lecture
	Classrooms []models.Classroom
	Slots      []models.ScheduleSlot
}

// DefaultForm preselects the first option of every lookup.
func (l Lookups) DefaultForm() models.ScheduleForm {
	var f models.ScheduleForm
	if len(l.Lectures) > 0 {
		f.LectureID = l.Lectures[0].ID
	}
	if len(l.Classrooms) > 0 {
		f.ClassroomID = l.Classrooms[0].ID
	}
	if len(l.Slots) > 0 {
		f.ScheduleSlotID = l.Slots[0].ID
	}
	return f
}

type ScheduleService struct {
	catalog *CatalogService
	api     *client.HTTPClient
	loc     *i18n.Localizer
}

func NewScheduleService(api *client.HTTPClient, loc *i18n.Localizer) *ScheduleService {
	return &ScheduleService{catalog: NewCatalogService(api), api: api, loc: loc}
}

func (s *ScheduleService) FetchSchedules(ctx context.Context) ([]models.Schedule, error) {
	page, err := s.catalog.Schedules(ctx, 0, adminPageSize)
	if err != nil {
		return nil, describe(err, s.loc.T(i18n.MsgSchedulesFailed))
	}
	return page.Items(), nil
}

// FetchLookups loads lectures, classrooms and slots concurrently; any
// failure fails the whole lookup.
func (s *ScheduleService) FetchLookups(ctx context.Context) (Lookups, error) {
	var out Lookups
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		page, err := s.catalog.Lectures(gctx, 0, adminPageSize)
		out.Lectures = page.Items()
		return err
	})
	g.Go(func() error {
		page, err := s.catalog.Classrooms(gctx, 0, adminPageSize)
		out.Classrooms = page.Items()
		return err
	})
	g.Go(func() error {
		page, err := s.catalog.ScheduleSlots(gctx, 0, adminPageSize)
		out.Slots = page.Items()
		return err
	})

	if err := g.Wait(); err != nil {
		return Lookups{}, describe(err, s.loc.T(i18n.MsgLookupsFailed))
	}
	return out, nil
}

// CreateSchedule plans a lecture into a classroom and slot for a date range.
func (s *ScheduleService) CreateSchedule(ctx context.Context, form models.ScheduleForm) (*models.Schedule, error) {
	invalid := func(field string) string { return s.loc.T(i18n.MsgInvalidInput, field) }
	if err := validate.Struct(form); err != nil {
		return nil, validationError(err, invalid)
	}
	if form.EndDate < form.StartDate {
		return nil, validationError(errScheduleDates, invalid)
	}

	var out models.Schedule
	if err := s.api.Post(ctx, "/api/lecture-schedules", form, &out); err != nil {
		return nil, describe(err, s.loc.T(i18n.MsgScheduleCreateFailed))
	}
	return &out, nil
}

func (s *ScheduleService) DeleteSchedule(ctx context.Context, id int64) error {
	if err := s.api.Delete(ctx, "/api/lecture-schedules/"+strconv.FormatInt(id, 10)); err != nil {
		return describe(err, s.loc.T(i18n.MsgScheduleDeleteFailed))
	}
	return nil
}

// MySchedules returns the sessions of the signed-in student or teacher.
func (s *ScheduleService) MySchedules(ctx context.Context) ([]models.Schedule, error) {
	var page models.Page[models.Schedule]
	if err := s.api.Get(ctx, "/api/lecture-schedules/my", nil, &page); err != nil {
		return nil, describe(err, s.loc.T(i18n.MsgMySchedulesFailed))
	}
	return page.Items(), nil
}
