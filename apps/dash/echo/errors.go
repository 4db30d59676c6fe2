package echodash

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/dhamakuldeep-lab/sukhverse-core/core"
)

// newAppHTTPErrorHandler returns an echo.HTTPErrorHandler for errors that
// escape the page handlers (the handlers render expected failures inline).
func newAppHTTPErrorHandler(logger core.Logger) echo.HTTPErrorHandler {
	return func(err error, ctx echo.Context) {
		code := http.StatusInternalServerError
		message := http.StatusText(code)

		switch origErr := errors.Cause(err).(type) {
		case *echo.HTTPError:
			code = origErr.Code
			if msg, ok := origErr.Message.(string); ok {
				message = msg
			}
		case validator.ValidationErrors:
			code = http.StatusBadRequest
			message = origErr.Error()
		case *core.ValidationError:
			code = http.StatusBadRequest
			message = origErr.Error()
		default:
			logger.Error(message, errors.Wrap(err, message))
		}

		if ctx.Echo().Debug {
			message = err.Error()
		}
		if !ctx.Response().Committed {
			_ = ctx.String(code, message)
		}
	}
}

// alertText flattens an error into the user-visible alert shown by the
// login/register/workshop pages.
func alertText(err error) string {
	switch origErr := errors.Cause(err).(type) {
	case validator.ValidationErrors:
		for _, vErr := range origErr {
			return vErr.Translate(core.Translator)
		}
		return origErr.Error()
	case *core.ValidationError:
		if len(origErr.Fields) > 0 {
			return origErr.Fields[0].Error
		}
		return origErr.Error()
	default:
		return err.Error()
	}
}
