package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/dmitrijs2005/lectureportal/internal/client/navigation"
	"github.com/dmitrijs2005/lectureportal/internal/client/timetable"
	"github.com/dmitrijs2005/lectureportal/internal/common"
)

// AddSchedule walks an admin through planning a lecture schedule. Every
// choice defaults to the first available option.
func (a *App) AddSchedule(ctx context.Context) error {
	if !a.guard(navigation.Schedules) || !a.requireRole(common.RoleAdmin) {
		return nil
	}

	lookups, err := a.schedules.FetchLookups(ctx)
	if err != nil {
		return err
	}

	tw := newTable(a.out)
	for _, l := range lookups.Lectures {
		fmt.Fprintf(tw, "lecture\t%d\t%s\n", l.ID, l.Name)
	}
	for _, c := range lookups.Classrooms {
		fmt.Fprintf(tw, "classroom\t%d\t%s\n", c.ID, c.Name)
	}
	for _, s := range lookups.Slots {
		fmt.Fprintf(tw, "slot\t%d\t%s %s\n", s.ID,
			timetable.DayLabel(a.loc, s.DayOfWeek),
			timetable.SlotLabel(a.loc, timetable.Slot{Start: s.StartTime, End: s.EndTime}))
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	form := lookups.DefaultForm()
	fields := []struct {
		prompt string
		dst    *int64
	}{
		{"Lecture id", &form.LectureID},
		{"Classroom id", &form.ClassroomID},
		{"Slot id", &form.ScheduleSlotID},
	}
	for _, f := range fields {
		def := ""
		if *f.dst > 0 {
			def = strconv.FormatInt(*f.dst, 10)
		}
		s, err := GetWithDefault(a.reader, f.prompt, def, a.out)
		if err != nil {
			return err
		}
		if *f.dst, err = parseID(s); err != nil {
			return err
		}
	}

	if form.StartDate, err = getSimpleText(a.reader, "Start date (YYYY-MM-DD)", a.out); err != nil {
		return err
	}
	if form.EndDate, err = getSimpleText(a.reader, "End date (YYYY-MM-DD)", a.out); err != nil {
		return err
	}

	created, err := a.schedules.CreateSchedule(ctx, form)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Schedule %d created\n", created.ID)
	return nil
}

func (a *App) RemoveSchedule(ctx context.Context, id string) error {
	if !a.guard(navigation.Schedules) || !a.requireRole(common.RoleAdmin) {
		return nil
	}

	sid, err := parseID(id)
	if err != nil {
		return err
	}
	if err := a.schedules.DeleteSchedule(ctx, sid); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Schedule %d deleted\n", sid)
	return nil
}
