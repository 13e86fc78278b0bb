package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/dmitrijs2005/lectureportal/internal/client/dashboard"
	"github.com/dmitrijs2005/lectureportal/internal/client/navigation"
	"github.com/dmitrijs2005/lectureportal/internal/common"
	"github.com/dmitrijs2005/lectureportal/internal/i18n"
)

// Dashboard shows the dashboard of the session's role, loading it on first
// use.
func (a *App) Dashboard(ctx context.Context) error {
	return a.showDashboard(ctx, false)
}

// Refresh reloads and shows the dashboard.
func (a *App) Refresh(ctx context.Context) error {
	return a.showDashboard(ctx, true)
}

func (a *App) showDashboard(ctx context.Context, force bool) error {
	if !a.guard(navigation.Dashboard) {
		return nil
	}

	switch {
	case a.store.HasRole(common.RoleAdmin):
		if force {
			a.admin.Refresh(ctx)
		} else {
			a.admin.EnsureLoaded(ctx)
		}
		return a.printAdmin()

	case a.store.HasRole(common.RoleTeacher):
		if err := a.bind(ctx); err != nil {
			return err
		}
		if force {
			a.teacher.Refresh(ctx)
		} else {
			a.teacher.EnsureLoaded(ctx)
		}
		return a.printTeacher()

	case a.store.HasRole(common.RoleStudent):
		if err := a.bind(ctx); err != nil {
			return err
		}
		if force {
			a.student.Refresh(ctx)
		} else {
			a.student.EnsureLoaded(ctx)
		}
		return a.printStudent()
	}

	fmt.Fprintf(a.out, "No dashboard for role %q\n", a.store.PrimaryRole())
	return nil
}

// bind hands the profile id to the teacher and student dashboards; only the
// one matching the session's role stays active.
func (a *App) bind(ctx context.Context) error {
	p, err := a.auth.EnsureProfile(ctx)
	if err != nil {
		return err
	}
	if a.boundID.Swap(p.ID) == p.ID {
		return nil
	}
	a.teacher.Bind(ctx, p.ID, a.store.HasRole(common.RoleTeacher))
	a.student.Bind(ctx, p.ID, a.store.HasRole(common.RoleStudent))
	return nil
}

// unbind drops every dashboard. It runs on each logout, including the one a
// failed token refresh triggers.
func (a *App) unbind(ctx context.Context) {
	a.boundID.Store(0)
	a.admin.Reset()
	a.teacher.Bind(ctx, 0, false)
	a.student.Bind(ctx, 0, false)
}

// Alerts lists the admin alerts, optionally switching the filter first.
func (a *App) Alerts(ctx context.Context, filter string) error {
	if !a.guard(navigation.Dashboard) || !a.requireRole(common.RoleAdmin) {
		return nil
	}

	if filter != "" {
		f, err := dashboard.ParseAlertFilter(filter)
		if err != nil {
			return err
		}
		a.admin.SetAlertFilter(f)
	}

	a.admin.EnsureLoaded(ctx)
	return a.printAlerts()
}

// Upcoming selects the horizon of the admin's upcoming schedules.
func (a *App) Upcoming(ctx context.Context, days string) error {
	if !a.guard(navigation.Dashboard) || !a.requireRole(common.RoleAdmin) {
		return nil
	}

	n, err := strconv.Atoi(days)
	if err != nil {
		return fmt.Errorf("invalid number of days %q", days)
	}
	if err := a.admin.SetUpcomingRange(n); err != nil {
		return err
	}

	a.admin.EnsureLoaded(ctx)
	return a.printUpcoming()
}

func (a *App) printAdmin() error {
	s := a.admin.Snapshot()
	for _, msg := range s.Errors {
		fmt.Fprintln(a.out, "!", msg)
	}

	section(a.out, "Collections")
	if err := a.printMetrics(a.admin.Metrics()); err != nil {
		return err
	}

	if summary := a.admin.SummaryMetrics(); len(summary) > 0 {
		section(a.out, "Summary")
		if err := a.printMetrics(summary); err != nil {
			return err
		}
	}

	section(a.out, "Teacher workload")
	tw := newTable(a.out)
	fmt.Fprintln(tw, "TEACHER\tLECTURES\tSTUDENTS\tSESSIONS")
	for _, w := range a.admin.TeacherWorkload() {
		fmt.Fprintf(tw, "%s\t%d\t%d\t%d\n", orDash(w.TeacherName), w.LectureCount, w.StudentCount, w.WeeklySessions)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	section(a.out, "Enrollment funnel")
	tw = newTable(a.out)
	for _, step := range a.admin.EnrollmentFunnel() {
		fmt.Fprintf(tw, "%s\t%d\n", step.Status, step.Total)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	if err := a.printAlerts(); err != nil {
		return err
	}
	if err := a.printUpcoming(); err != nil {
		return err
	}

	section(a.out, "Recent lectures")
	if err := a.printLectures(a.admin.RecentLectures()); err != nil {
		return err
	}

	section(a.out, "Recent enrollments")
	return a.printEnrollments(a.admin.RecentEnrollments(), nil)
}

func (a *App) printAlerts() error {
	section(a.out, fmt.Sprintf("Alerts (%s)", a.admin.AlertFilter()))
	alerts := a.admin.FilteredAlerts()
	if len(alerts) == 0 {
		fmt.Fprintln(a.out, "No alerts")
		return nil
	}
	tw := newTable(a.out)
	for _, al := range alerts {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", al.Type, orDash(al.LectureName), al.Message)
	}
	return tw.Flush()
}

func (a *App) printUpcoming() error {
	section(a.out, fmt.Sprintf("Upcoming (%d days)", a.admin.UpcomingRange()))
	return a.printSchedules(a.admin.UpcomingSchedules())
}

func (a *App) printTeacher() error {
	s := a.teacher.Snapshot()
	if s.Error != "" {
		fmt.Fprintln(a.out, "!", s.Error)
	}

	if err := a.printMetrics(a.teacher.HeadlineStats()); err != nil {
		return err
	}

	section(a.out, "Lectures")
	tw := newTable(a.out)
	fmt.Fprintln(tw, "ID\tNAME\tCAPACITY\tACTIVE\tWAITING\tAVAILABLE")
	for _, c := range a.teacher.LectureCards() {
		fmt.Fprintf(tw, "%d\t%s\t%d\t%d\t%d\t%d\n", c.ID, c.Name, c.Capacity, c.Active, c.Waiting, c.Available)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	names := a.teacher.LectureNames()

	section(a.out, a.loc.T(i18n.LabelPendingApproval))
	if err := a.printEnrollments(a.teacher.PendingApprovals(), names); err != nil {
		return err
	}

	section(a.out, "Grading queue")
	if err := a.printEnrollments(a.teacher.GradingQueue(), names); err != nil {
		return err
	}

	section(a.out, "Recent enrollments")
	return a.printEnrollments(a.teacher.RecentEnrollments(), names)
}

func (a *App) printStudent() error {
	s := a.student.Snapshot()
	if s.Error != "" {
		fmt.Fprintln(a.out, "!", s.Error)
	}

	if err := a.printMetrics(a.student.MetricCards()); err != nil {
		return err
	}

	section(a.out, "My enrollments")
	tw := newTable(a.out)
	fmt.Fprintln(tw, "ID\tLECTURE\tSTATUS\tGRADE")
	for _, e := range a.student.EnrollmentsDetailed() {
		lecture := "#" + strconv.FormatInt(e.LectureID, 10)
		if e.Lecture != nil {
			lecture = e.Lecture.Name
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\n", e.ID, lecture, e.Status, formatGrade(e.Grade))
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	section(a.out, a.loc.T(i18n.LabelUpcomingSessions))
	if err := a.printSchedules(a.student.UpcomingSessions()); err != nil {
		return err
	}

	section(a.out, "Available lectures")
	return a.printLectures(a.student.AvailableLectures())
}
