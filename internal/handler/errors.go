package handler

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"sampleapp/internal/apperror"
	"sampleapp/internal/locale"
)

const genericErrorName = "Internal Server Error"

type errorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Stack   string `json:"stack,omitempty"`
}

// HandleError is the terminal error handler: every error a route returns
// ends up here and becomes exactly one JSON response.
func (h *Handler) HandleError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	var he *echo.HTTPError
	if errors.As(err, &he) {
		err = fromHTTPError(he)
	}

	req := c.Request()
	h.errors.Handle(req.Context(), err)

	status := http.StatusInternalServerError
	name := genericErrorName
	message := err.Error()
	var stack string

	if appErr, ok := apperror.As(err); ok {
		name = appErr.Name()
		message = appErr.Message()
		stack = appErr.Stack()
		if apperror.IsErrorStatus(appErr.Status()) {
			status = int(appErr.Status())
		}
		if !apperror.IsKnownStatus(appErr.Status()) {
			h.logger.Debug("error status outside the recognised set",
				slog.String("name", name), slog.Int("status", int(appErr.Status())))
		}
	} else {
		stack = fmt.Sprintf("%+v", err)
	}

	resp := errorResponse{Error: name, Message: message}
	if h.app.IsProduction() {
		resp.Message = h.translator.Translate(req.Header.Get(headerAcceptLanguage), locale.InternalServerError)
	} else {
		resp.Stack = stack
	}

	var writeErr error
	if req.Method == http.MethodHead {
		writeErr = c.NoContent(status)
	} else {
		writeErr = c.JSON(status, resp)
	}
	if writeErr != nil {
		h.logger.Error("failed to write error response", slog.String("error", writeErr.Error()))
	}
}

// fromHTTPError turns router-level failures (405, 413, ...) into operational
// application errors carrying the router's status.
func fromHTTPError(he *echo.HTTPError) *apperror.Error {
	message := http.StatusText(he.Code)
	if m, ok := he.Message.(string); ok && m != "" {
		message = m
	}
	if he.Code >= http.StatusInternalServerError {
		return apperror.New(apperror.NameHTTPException, apperror.HTTPCode(he.Code), message, false)
	}
	return apperror.New(apperror.NameHTTPException, apperror.HTTPCode(he.Code), message, true)
}
