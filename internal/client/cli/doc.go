// Package cli provides the interactive lecture portal shell.
//
// It wires configuration, the local session database, the API services and
// the dashboards behind a read–eval–print loop. Every command is checked by
// the navigation guard before it runs, so a signed-out user is sent to login
// and a missing role falls back to the dashboard.
//
// Commands by area:
//   - Session: login (with MFA), logout, whoami, mfa, sessions, revoke
//   - Dashboards: dashboard, refresh, alerts, upcoming
//   - Catalog: lectures, schedules, classrooms, slots, grades, enrollments
//   - Timetable: timetable
//   - Exams: exams, exam-start, exam-submit
//   - Planning: schedule-add, schedule-rm
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
package cli
