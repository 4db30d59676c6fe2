package echodash

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/dhamakuldeep-lab/sukhverse-core/core/workshop"
)

type workshopPageData struct {
	Alert string
	VM    *workshop.ViewModel
}

// The workshop handlers hold s.mu for their whole body: echo serves
// requests concurrently, and the mounted view-model is the one piece of
// state shared between them. The client is single-user, so serializing
// the view is free.

// workshopPage mounts the workshop view: a fresh view-model and a fresh
// fetch every time, even for the workshop already shown.
func (s *server) workshopPage(ctx echo.Context) error {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "workshop not found")
	}

	vm := workshop.NewViewModel(s.opts.Gateway.Workshop, s.opts.Logger, s.opts.Session.UserID())
	// a failed load leaves the view in its loading state
	_ = vm.Load(ctx.Request().Context(), id)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.wvm = vm
	s.wvmID = id
	return ctx.Render(http.StatusOK, "workshop.html", workshopPageData{VM: vm})
}

func (s *server) selectStep(ctx echo.Context) error {
	id, index, err := s.cursorParams(ctx)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.wvm == nil || s.wvmID != id {
		// cursor action against an unmounted view falls back to a remount
		return ctx.Redirect(http.StatusFound, "/workshops/"+strconv.Itoa(id))
	}
	s.wvm.SelectStep(index)
	return ctx.Render(http.StatusOK, "workshop.html", workshopPageData{VM: s.wvm})
}

func (s *server) selectSubstep(ctx echo.Context) error {
	id, index, err := s.cursorParams(ctx)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.wvm == nil || s.wvmID != id {
		return ctx.Redirect(http.StatusFound, "/workshops/"+strconv.Itoa(id))
	}
	s.wvm.SelectSubstep(index) // locked substeps are a no-op
	return ctx.Render(http.StatusOK, "workshop.html", workshopPageData{VM: s.wvm})
}

func (s *server) markComplete(ctx echo.Context) error {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusNotFound, "workshop not found")
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.wvm == nil || s.wvmID != id || !s.wvm.Ready() {
		return ctx.Redirect(http.StatusFound, "/workshops/"+strconv.Itoa(id))
	}

	alert := "Progress updated"
	if err := s.wvm.MarkComplete(ctx.Request().Context()); err != nil {
		alert = alertText(err)
	}
	return ctx.Render(http.StatusOK, "workshop.html", workshopPageData{Alert: alert, VM: s.wvm})
}

func (s *server) cursorParams(ctx echo.Context) (id, index int, err error) {
	id, err = strconv.Atoi(ctx.Param("id"))
	if err != nil {
		return 0, 0, echo.NewHTTPError(http.StatusNotFound, "workshop not found")
	}
	index, err = strconv.Atoi(ctx.Param("index"))
	if err != nil {
		return 0, 0, echo.NewHTTPError(http.StatusNotFound, "not found")
	}
	return id, index, nil
}
