package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync/atomic"

	"github.com/dmitrijs2005/lectureportal/internal/client/client"
	"github.com/dmitrijs2005/lectureportal/internal/client/config"
	"github.com/dmitrijs2005/lectureportal/internal/client/dashboard"
	"github.com/dmitrijs2005/lectureportal/internal/client/services"
	"github.com/dmitrijs2005/lectureportal/internal/client/session"
	"github.com/dmitrijs2005/lectureportal/internal/filex"
	"github.com/dmitrijs2005/lectureportal/internal/i18n"
	"github.com/dmitrijs2005/lectureportal/internal/logging"
)

type App struct {
	config *config.Config
	loc    *i18n.Localizer
	logger logging.Logger
	db     *sql.DB

	store     *session.Store
	auth      *services.AuthService
	catalog   *services.CatalogService
	schedules *services.ScheduleService
	exams     *services.ExamService

	admin   *dashboard.Admin
	teacher *dashboard.Teacher
	student *dashboard.Student
	boundID atomic.Int64

	reader *bufio.Reader
	out    io.Writer
}

// NewApp opens the local database under the configured data directory and
// wires the services for the portal at c.APIBaseURL.
func NewApp(ctx context.Context, c *config.Config, logger logging.Logger) (*App, error) {
	dir, err := filex.EnsureDir(c.DataDir)
	if err != nil {
		return nil, err
	}

	db, err := client.InitDatabase(ctx, filepath.Join(dir, c.DatabaseFile))
	if err != nil {
		logger.Error(ctx, "error initializing database", "error", err)
		return nil, err
	}

	app, err := newApp(ctx, c, db, logger, os.Stdin, os.Stdout)
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	return app, nil
}

func newApp(ctx context.Context, c *config.Config, db *sql.DB, logger logging.Logger, in io.Reader, out io.Writer) (*App, error) {
	store, err := session.Open(ctx, db, logger)
	if err != nil {
		return nil, fmt.Errorf("open session: %w", err)
	}

	loc := i18n.New(c.Locale)

	authAPI := client.NewHTTPClient(c.APIBaseURL, c.RequestTimeout, client.WithLogger(logger))
	auth := services.NewAuthService(authAPI, store, logger, loc)

	api := client.NewHTTPClient(c.APIBaseURL, c.RequestTimeout,
		client.WithSession(auth),
		client.WithLogger(logger),
	)
	catalog := services.NewCatalogService(api)

	opts := []dashboard.Option{dashboard.WithLocalizer(loc), dashboard.WithLogger(logger)}

	a := &App{
		config:    c,
		loc:       loc,
		logger:    logger,
		db:        db,
		store:     store,
		auth:      auth,
		catalog:   catalog,
		schedules: services.NewScheduleService(api, loc),
		exams:     services.NewExamService(api, loc),
		admin:     dashboard.NewAdmin(catalog, opts...),
		teacher:   dashboard.NewTeacher(catalog, opts...),
		student:   dashboard.NewStudent(catalog, opts...),
		reader:    bufio.NewReader(in),
		out:       out,
	}
	store.OnLogout(func() { a.unbind(context.WithoutCancel(ctx)) })
	return a, nil
}

// Run greets the user and serves commands until exit or end of input.
func (a *App) Run(ctx context.Context) {
	defer a.Close(ctx)

	fmt.Fprintf(a.out, "Lecture portal shell, %s (type 'help' for commands)\n", a.config.APIBaseURL)
	runREPL(ctx, a, a.status, a.reader)
}

// Close waits for background work and closes the database.
func (a *App) Close(ctx context.Context) {
	if err := a.auth.Close(ctx); err != nil {
		a.logger.Warn(ctx, "background work interrupted", "error", err)
	}
	if err := a.db.Close(); err != nil {
		a.logger.Warn(ctx, "close database", "error", err)
	}
}

func (a *App) isLoggedIn() bool {
	return a.store.IsAuthenticated()
}

// status is shown in the prompt: the role when signed in, "guest" otherwise.
func (a *App) status() string {
	if !a.isLoggedIn() {
		return "guest"
	}
	if p := a.store.Profile(); p != nil && p.IdentityNo != "" {
		return fmt.Sprintf("%s %s", p.IdentityNo, a.store.PrimaryRole())
	}
	return a.store.PrimaryRole()
}
