package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/dmitrijs2005/lectureportal/internal/client/client"
	"github.com/dmitrijs2005/lectureportal/internal/client/services"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	Whoami(ctx context.Context) error
	MFA(ctx context.Context, mode string) error
	Sessions(ctx context.Context) error
	Revoke(ctx context.Context, deviceID string) error
	Dashboard(ctx context.Context) error
	Refresh(ctx context.Context) error
	Alerts(ctx context.Context, filter string) error
	Upcoming(ctx context.Context, days string) error
	Timetable(ctx context.Context) error
	Lectures(ctx context.Context, page string) error
	Schedules(ctx context.Context) error
	Classrooms(ctx context.Context) error
	Slots(ctx context.Context) error
	Grades(ctx context.Context) error
	Enrollments(ctx context.Context) error
	Exams(ctx context.Context, lectureID string) error
	StartExam(ctx context.Context, examID string) error
	SubmitExam(ctx context.Context, examID, attemptID string) error
	AddSchedule(ctx context.Context) error
	RemoveSchedule(ctx context.Context, id string) error
}

const (
	guestHelp  = "Available commands: login, help, exit"
	memberHelp = "Available commands: dashboard, refresh, alerts [ALL|CAPACITY|WAITLIST|PENDING], upcoming <7|14|30>, " +
		"timetable, lectures [page], schedules, classrooms, slots, grades, enrollments, " +
		"exams <lectureId>, exam-start <examId>, exam-submit <examId> <attemptId>, " +
		"schedule-add, schedule-rm <id>, whoami, mfa on|off, sessions, revoke <deviceId>, logout, exit"
)

// runREPL starts a simple read–eval–print loop for the portal shell.
//
// It reads a line from reader, parses the first token as the command, and
// dispatches to methods on 'a' with the remaining tokens as arguments.
// Commands that need an argument print their usage when it is missing.
// Unknown commands are reported back to the user. The loop exits on EOF or
// when the user types "exit" or "quit".
//
// Errors returned by command handlers are printed; the loop keeps running.
func runREPL(ctx context.Context, a execIface, statusFn func() string, reader *bufio.Reader) {
	for {
		printlnFn(fmt.Sprintf("portal (%s) > ", statusFn()))
		line, err := reader.ReadString('\n')
		if err != nil && (!errors.Is(err, io.EOF) || line == "") {
			return
		}
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd, args := parts[0], parts[1:]

		var cmdErr error
		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn(memberHelp)
			} else {
				printlnFn(guestHelp)
			}

		case "login":
			cmdErr = a.Login(ctx)

		case "logout":
			cmdErr = a.Logout(ctx)

		case "whoami":
			cmdErr = a.Whoami(ctx)

		case "mfa":
			if len(args) == 0 {
				printlnFn("Usage: mfa on|off")
				continue
			}
			cmdErr = a.MFA(ctx, args[0])

		case "sessions":
			cmdErr = a.Sessions(ctx)

		case "revoke":
			if len(args) == 0 {
				printlnFn("Usage: revoke <deviceId>")
				continue
			}
			cmdErr = a.Revoke(ctx, args[0])

		case "d", "dashboard":
			cmdErr = a.Dashboard(ctx)

		case "refresh":
			cmdErr = a.Refresh(ctx)

		case "alerts":
			cmdErr = a.Alerts(ctx, argOr(args, ""))

		case "upcoming":
			if len(args) == 0 {
				printlnFn("Usage: upcoming <7|14|30>")
				continue
			}
			cmdErr = a.Upcoming(ctx, args[0])

		case "timetable":
			cmdErr = a.Timetable(ctx)

		case "l", "lectures":
			cmdErr = a.Lectures(ctx, argOr(args, "1"))

		case "schedules":
			cmdErr = a.Schedules(ctx)

		case "classrooms":
			cmdErr = a.Classrooms(ctx)

		case "slots":
			cmdErr = a.Slots(ctx)

		case "grades":
			cmdErr = a.Grades(ctx)

		case "enrollments":
			cmdErr = a.Enrollments(ctx)

		case "exams":
			if len(args) == 0 {
				printlnFn("Usage: exams <lectureId>")
				continue
			}
			cmdErr = a.Exams(ctx, args[0])

		case "exam-start":
			if len(args) == 0 {
				printlnFn("Usage: exam-start <examId>")
				continue
			}
			cmdErr = a.StartExam(ctx, args[0])

		case "exam-submit":
			if len(args) < 2 {
				printlnFn("Usage: exam-submit <examId> <attemptId>")
				continue
			}
			cmdErr = a.SubmitExam(ctx, args[0], args[1])

		case "schedule-add":
			cmdErr = a.AddSchedule(ctx)

		case "schedule-rm":
			if len(args) == 0 {
				printlnFn("Usage: schedule-rm <id>")
				continue
			}
			cmdErr = a.RemoveSchedule(ctx, args[0])

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}

		if cmdErr != nil {
			printlnFn("Error:", userMessage(cmdErr))
		}
	}
}

func argOr(args []string, def string) string {
	if len(args) == 0 {
		return def
	}
	return args[0]
}

// userMessage prefers the localized message carried by service errors, then
// the server's own message.
func userMessage(err error) string {
	var svcErr *services.Error
	if errors.As(err, &svcErr) && svcErr.Message != "" {
		return svcErr.Message
	}
	return client.Message(err, err.Error())
}
