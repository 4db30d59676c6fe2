package echodash

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/dhamakuldeep-lab/sukhverse-core/core/session"
)

// CanEnter is the route guard predicate: a pure function of session state,
// evaluated on every protected request so a logout elsewhere is observed
// immediately.
func CanEnter(sess *session.Store) bool {
	return sess.Authenticated()
}

// loginRequired gates protected views; unauthenticated visitors are
// redirected to the login page.
func (s *server) loginRequired(next echo.HandlerFunc) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		if !CanEnter(s.opts.Session) {
			return ctx.Redirect(http.StatusFound, "/login")
		}
		return next(ctx)
	}
}
