package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/lectureportal/internal/client/navigation"
	"github.com/dmitrijs2005/lectureportal/internal/client/timetable"
	"github.com/dmitrijs2005/lectureportal/internal/i18n"
)

const (
	listPageSize   = 20
	lookupPageSize = 100
)

// Lectures prints one page of the catalog; pages are numbered from 1.
func (a *App) Lectures(ctx context.Context, page string) error {
	if !a.guard(navigation.Lectures) {
		return nil
	}

	n, err := strconv.Atoi(page)
	if err != nil || n < 1 {
		return fmt.Errorf("invalid page %q", page)
	}

	p, err := a.catalog.Lectures(ctx, n-1, listPageSize)
	if err != nil {
		return err
	}
	if err := a.printLectures(p.Items()); err != nil {
		return err
	}
	fmt.Fprintf(a.out, "%s / %d\n", a.loc.T(i18n.MsgRecordsShown, len(p.Items())), p.TotalElements)
	return nil
}

func (a *App) Schedules(ctx context.Context) error {
	if !a.guard(navigation.Schedules) {
		return nil
	}

	schedules, err := a.schedules.FetchSchedules(ctx)
	if err != nil {
		return err
	}
	return a.printSchedules(schedules)
}

func (a *App) Classrooms(ctx context.Context) error {
	if !a.guard(navigation.Classrooms) {
		return nil
	}

	p, err := a.catalog.Classrooms(ctx, 0, lookupPageSize)
	if err != nil {
		return err
	}

	tw := newTable(a.out)
	fmt.Fprintln(tw, "ID\tNAME\tBUILDING\tCAPACITY")
	for _, c := range p.Items() {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%d\n", c.ID, c.Name, orDash(c.Building), c.Capacity)
	}
	return tw.Flush()
}

func (a *App) Slots(ctx context.Context) error {
	if !a.guard(navigation.Slots) {
		return nil
	}

	p, err := a.catalog.ScheduleSlots(ctx, 0, lookupPageSize)
	if err != nil {
		return err
	}

	tw := newTable(a.out)
	fmt.Fprintln(tw, "ID\tDAY\tTIME")
	for _, s := range p.Items() {
		fmt.Fprintf(tw, "%d\t%s\t%s\n", s.ID,
			timetable.DayLabel(a.loc, s.DayOfWeek),
			timetable.SlotLabel(a.loc, timetable.Slot{Start: s.StartTime, End: s.EndTime}))
	}
	return tw.Flush()
}

func (a *App) Grades(ctx context.Context) error {
	if !a.guard(navigation.GradeComponents) {
		return nil
	}

	p, err := a.catalog.GradeComponents(ctx, 0, lookupPageSize)
	if err != nil {
		return err
	}

	tw := newTable(a.out)
	fmt.Fprintln(tw, "ID\tLECTURE\tNAME\tWEIGHT")
	for _, g := range p.Items() {
		fmt.Fprintf(tw, "%d\t%d\t%s\t%s\n", g.ID, g.LectureID, g.Name, strconv.FormatFloat(g.Weight, 'f', -1, 64))
	}
	return tw.Flush()
}

func (a *App) Enrollments(ctx context.Context) error {
	if !a.guard(navigation.Enrollments) {
		return nil
	}

	p, err := a.catalog.Enrollments(ctx, 0, lookupPageSize)
	if err != nil {
		return err
	}
	return a.printEnrollments(p.Items(), nil)
}

// Timetable prints the signed-in user's weekly sessions as a grid followed by
// the same sessions in day order.
func (a *App) Timetable(ctx context.Context) error {
	if !a.guard(navigation.Schedules) {
		return nil
	}

	sessions, err := a.schedules.MySchedules(ctx)
	if err != nil {
		return err
	}

	grid := timetable.Build(sessions)
	if grid.Empty() {
		fmt.Fprintln(a.out, "No sessions")
		return nil
	}

	tw := newTable(a.out)
	header := []string{""}
	for _, day := range grid.Days {
		header = append(header, timetable.DayLabel(a.loc, day))
	}
	fmt.Fprintln(tw, strings.Join(header, "\t"))

	for _, slot := range grid.Slots {
		row := []string{timetable.SlotLabel(a.loc, slot)}
		for _, day := range grid.Days {
			var cell []string
			for _, s := range grid.Cell(day, slot.Key) {
				cell = append(cell, lectureLabel(s))
			}
			row = append(row, orDash(strings.Join(cell, ", ")))
		}
		fmt.Fprintln(tw, strings.Join(row, "\t"))
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	section(a.out, "Sessions")
	tw = newTable(a.out)
	for _, s := range timetable.Sort(sessions) {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n",
			timetable.DayLabel(a.loc, s.DayOfWeek),
			timetable.SlotLabel(a.loc, timetable.Slot{Start: s.StartTime, End: s.EndTime}),
			lectureLabel(s),
			classroomLabel(s))
	}
	return tw.Flush()
}
