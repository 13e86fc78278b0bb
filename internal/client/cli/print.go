package cli

import (
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"

	"github.com/dmitrijs2005/lectureportal/internal/client/dashboard"
	"github.com/dmitrijs2005/lectureportal/internal/client/models"
	"github.com/dmitrijs2005/lectureportal/internal/client/timetable"
)

func newTable(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

func formatGrade(g *float64) string {
	if g == nil {
		return "-"
	}
	return strconv.FormatFloat(*g, 'f', -1, 64)
}

func section(w io.Writer, title string) {
	fmt.Fprintf(w, "\n== %s ==\n", title)
}

func (a *App) printMetrics(metrics []dashboard.Metric) error {
	tw := newTable(a.out)
	for _, m := range metrics {
		fmt.Fprintf(tw, "%s\t%d\t%s\n", m.Label, m.Value, m.Helper)
	}
	return tw.Flush()
}

func (a *App) printSchedules(schedules []models.Schedule) error {
	tw := newTable(a.out)
	fmt.Fprintln(tw, "ID\tLECTURE\tCLASSROOM\tSTART\tEND\tDAY\tTIME")
	for _, s := range schedules {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%s\t%s\n",
			s.ID,
			lectureLabel(s),
			classroomLabel(s),
			orDash(s.StartDate),
			orDash(s.EndDate),
			timetable.DayLabel(a.loc, s.DayOfWeek),
			timetable.SlotLabel(a.loc, timetable.Slot{Start: s.StartTime, End: s.EndTime}),
		)
	}
	return tw.Flush()
}

func (a *App) printEnrollments(enrollments []models.Enrollment, names map[int64]string) error {
	tw := newTable(a.out)
	fmt.Fprintln(tw, "ID\tLECTURE\tSTUDENT\tSTATUS\tGRADE\tENROLLED")
	for _, e := range enrollments {
		lecture := strconv.FormatInt(e.LectureID, 10)
		if name, ok := names[e.LectureID]; ok {
			lecture = name
		}
		fmt.Fprintf(tw, "%d\t%s\t%d\t%s\t%s\t%s\n", e.ID, lecture, e.StudentID, e.Status, formatGrade(e.Grade), orDash(e.EnrolledAt))
	}
	return tw.Flush()
}

func (a *App) printLectures(lectures []models.Lecture) error {
	tw := newTable(a.out)
	fmt.Fprintln(tw, "ID\tCODE\tNAME\tCAPACITY")
	for _, l := range lectures {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%d\n", l.ID, orDash(l.Code), l.Name, l.Capacity)
	}
	return tw.Flush()
}

func lectureLabel(s models.Schedule) string {
	if s.LectureName != "" {
		return s.LectureName
	}
	return "#" + strconv.FormatInt(s.LectureID, 10)
}

func classroomLabel(s models.Schedule) string {
	if s.ClassroomName != "" {
		return s.ClassroomName
	}
	if s.ClassroomID == 0 {
		return "-"
	}
	return "#" + strconv.FormatInt(s.ClassroomID, 10)
}
