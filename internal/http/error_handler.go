package http

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	apperrors "github.com/Perfectmodels/perfect-model-hub-sub001/pkg/errors"
)

// CustomHTTPErrorHandler maps sentinel errors to status codes and keeps
// internal error details out of responses.
func CustomHTTPErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	code := http.StatusInternalServerError
	message := "Internal server error"

	var httpErr *echo.HTTPError
	var appErr *apperrors.AppError

	switch {
	case errors.As(err, &httpErr):
		code = httpErr.Code
		message = fmt.Sprintf("%v", httpErr.Message)
	case errors.Is(err, apperrors.ErrDuplicateModel):
		code = http.StatusConflict
		message = err.Error()
	case errors.Is(err, apperrors.ErrNotFound):
		code = http.StatusNotFound
		message = "Resource not found"
	case errors.Is(err, apperrors.ErrUnauthorized):
		code = http.StatusUnauthorized
		message = "Unauthorized"
	case errors.Is(err, apperrors.ErrForbidden):
		code = http.StatusForbidden
		message = "Forbidden"
	case errors.Is(err, apperrors.ErrValidation), errors.Is(err, apperrors.ErrBadRequest):
		code = http.StatusBadRequest
		message = err.Error()
	case errors.Is(err, apperrors.ErrConflict):
		code = http.StatusConflict
		message = err.Error()
	}

	if code == http.StatusInternalServerError {
		c.Logger().Error(err)
		if errors.As(err, &appErr) && appErr.Message != "" {
			message = appErr.Message
		}
	}

	if err := c.JSON(code, map[string]string{"error": message}); err != nil {
		c.Logger().Error(err)
	}
}
