package echodash

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/dhamakuldeep-lab/sukhverse-core/core/dashboard"
)

// Dashboard views fetch their snapshots on every mount; fetch failures go
// to the diagnostic channel and render as empty state.

func (s *server) studentDashboard(ctx echo.Context) error {
	s.unmountWorkshop()
	vm := dashboard.NewStudentViewModel(
		s.opts.Gateway.Analytics,
		s.opts.Gateway.Certificate,
		s.opts.Logger,
		s.opts.Session.UserID(),
	)
	vm.Refresh(ctx.Request().Context())
	return ctx.Render(http.StatusOK, "student_dashboard.html", vm)
}

func (s *server) trainerDashboard(ctx echo.Context) error {
	s.unmountWorkshop()
	vm := dashboard.NewTrainerViewModel(s.opts.Gateway.Analytics, s.opts.Logger)
	vm.Refresh(ctx.Request().Context())
	return ctx.Render(http.StatusOK, "trainer_dashboard.html", vm)
}

type adminPageData struct {
	Alert string
	VM    *dashboard.AdminViewModel
}

func (s *server) adminDashboard(ctx echo.Context) error {
	s.unmountWorkshop()
	vm := s.newAdminViewModel()
	vm.Refresh(ctx.Request().Context())
	return ctx.Render(http.StatusOK, "admin_dashboard.html", adminPageData{VM: vm})
}

func (s *server) assignRole(ctx echo.Context) error {
	userID, err := strconv.Atoi(ctx.FormValue("user_id"))
	if err != nil {
		return s.renderAdmin(ctx, "invalid user id")
	}
	roleID, err := strconv.Atoi(ctx.FormValue("role_id"))
	if err != nil {
		return s.renderAdmin(ctx, "invalid role id")
	}

	vm := s.newAdminViewModel()
	if err := vm.AssignRole(ctx.Request().Context(), userID, roleID); err != nil {
		return s.renderAdmin(ctx, alertText(err))
	}
	return s.renderAdmin(ctx, "Role assigned")
}

func (s *server) newAdminViewModel() *dashboard.AdminViewModel {
	return dashboard.NewAdminViewModel(
		s.opts.Gateway.Analytics,
		s.opts.Gateway.User,
		s.opts.Logger,
		s.opts.Session.UserID(),
	)
}

func (s *server) renderAdmin(ctx echo.Context, alert string) error {
	vm := s.newAdminViewModel()
	vm.Refresh(ctx.Request().Context())
	return ctx.Render(http.StatusOK, "admin_dashboard.html", adminPageData{Alert: alert, VM: vm})
}
