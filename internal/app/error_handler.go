package app

import (
	"database/sql"
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"
	"htmxtodo/internal/logger"
	"htmxtodo/internal/view"
	errorviews "htmxtodo/views/errors"
)

func newErrorHandler(log *logger.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		// Status code defaults to 500
		code := http.StatusInternalServerError

		// Retrieve the custom status code if it's a *fiber.Error
		var e *fiber.Error
		if errors.As(err, &e) {
			code = e.Code
		}

		if errors.Is(err, sql.ErrNoRows) {
			code = http.StatusNotFound
		}

		// Page requests get the layout, fragment requests get the bare error.
		if code == http.StatusNotFound {
			return view.Render(c, code, "Not Found", errorviews.Error404())
		}

		if code < http.StatusInternalServerError {
			return view.Render(c, code, http.StatusText(code), errorviews.GenericError(code, err.Error()))
		}

		log.Error(err, "request failed", "method", c.Method(), "path", c.Path(), "status", code)
		return view.Render(c, code, "Error", errorviews.Error500())
	}
}
