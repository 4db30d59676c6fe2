package echodash

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/dhamakuldeep-lab/sukhverse-core/core/session"
)

type authPageData struct {
	Alert string
	Roles []string
}

func (s *server) loginPage(ctx echo.Context) error {
	s.unmountWorkshop()
	return ctx.Render(http.StatusOK, "login.html", authPageData{})
}

func (s *server) login(ctx echo.Context) error {
	email := ctx.FormValue("email")
	password := ctx.FormValue("password")

	if err := s.opts.Session.Login(ctx.Request().Context(), email, password); err != nil {
		return ctx.Render(http.StatusBadRequest, "login.html", authPageData{Alert: alertText(err)})
	}
	// the token is never decoded, so every login lands on the student portal
	return ctx.Redirect(http.StatusFound, "/student/dashboard")
}

func (s *server) registerPage(ctx echo.Context) error {
	s.unmountWorkshop()
	return ctx.Render(http.StatusOK, "register.html", authPageData{Roles: session.AllRoles})
}

func (s *server) register(ctx echo.Context) error {
	email := ctx.FormValue("email")
	password := ctx.FormValue("password")
	confirm := ctx.FormValue("confirm")
	role := ctx.FormValue("role")

	renderErr := func(alert string) error {
		return ctx.Render(http.StatusBadRequest, "register.html", authPageData{Alert: alert, Roles: session.AllRoles})
	}

	if password != confirm {
		return renderErr("Passwords do not match")
	}
	if err := s.opts.Session.Register(ctx.Request().Context(), email, password, role); err != nil {
		return renderErr(alertText(err))
	}
	// registration never logs in; a separate login is required
	return ctx.Redirect(http.StatusFound, "/login")
}

func (s *server) logout(ctx echo.Context) error {
	s.unmountWorkshop()
	s.opts.Session.Logout()
	return ctx.Redirect(http.StatusFound, "/login")
}
