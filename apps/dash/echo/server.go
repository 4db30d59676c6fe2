// Package echodash serves the dashboard UI. Views are server-rendered
// projections of view-model state; all backend data flows through the
// gateway facade.
package echodash

import (
	"context"
	"net/http"
	"sync"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"

	"github.com/dhamakuldeep-lab/sukhverse-core/core"
	"github.com/dhamakuldeep-lab/sukhverse-core/core/session"
	"github.com/dhamakuldeep-lab/sukhverse-core/core/workshop"
	"github.com/dhamakuldeep-lab/sukhverse-core/services/gateway"
)

type (
	Options struct {
		Addr           string
		DisableReqLogs bool
		Debug          bool
		Session        *session.Store
		Gateway        *gateway.Facade
		Logger         core.Logger
	}

	Server interface {
		http.Handler
		Start()
		Stop(context.Context) error
	}

	server struct {
		opts *Options
		app  *echo.Echo

		// the mounted workshop view; nil once navigated away
		mu    sync.Mutex
		wvm   *workshop.ViewModel
		wvmID int
	}
)

var _ Server = (*server)(nil)

func NewServer(opts *Options) Server {
	s := &server{
		opts: opts,
		app:  echo.New(),
	}
	s.setup()
	return s
}

func (s *server) setup() {
	s.app.Pre(middleware.RemoveTrailingSlash())
	if !s.opts.DisableReqLogs {
		s.app.Use(middleware.Logger())
	}
	if !s.opts.Debug {
		s.app.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{LogLevel: log.ERROR}))
	}

	s.app.Renderer = newRenderer()
	s.app.HTTPErrorHandler = newAppHTTPErrorHandler(s.opts.Logger)
	s.app.Debug = s.opts.Debug

	s.app.GET("/", func(ctx echo.Context) error {
		return ctx.Redirect(http.StatusFound, "/login")
	})

	s.app.GET("/login", s.loginPage)
	s.app.POST("/login", s.login)
	s.app.GET("/register", s.registerPage)
	s.app.POST("/register", s.register)
	s.app.POST("/logout", s.logout)

	// protected views
	guard := s.loginRequired
	s.app.GET("/student/dashboard", s.studentDashboard, guard)
	s.app.GET("/trainer/dashboard", s.trainerDashboard, guard)
	s.app.GET("/admin/dashboard", s.adminDashboard, guard)
	s.app.POST("/admin/roles", s.assignRole, guard)
	s.app.GET("/workshops/:id", s.workshopPage, guard)
	s.app.POST("/workshops/:id/steps/:index", s.selectStep, guard)
	s.app.POST("/workshops/:id/substeps/:index", s.selectSubstep, guard)
	s.app.POST("/workshops/:id/complete", s.markComplete, guard)
}

func (s *server) Start() {
	s.app.Logger.Fatal(s.app.Start(s.opts.Addr))
}

func (s *server) Stop(ctx context.Context) error {
	return s.app.Shutdown(ctx)
}

func (s *server) ServeHTTP(w http.ResponseWriter, r *http.Request) { // for tests
	s.app.ServeHTTP(w, r)
}

// unmountWorkshop discards the workshop view state; nothing survives
// navigation away.
func (s *server) unmountWorkshop() {
	s.mu.Lock()
	s.wvm = nil
	s.wvmID = 0
	s.mu.Unlock()
}
