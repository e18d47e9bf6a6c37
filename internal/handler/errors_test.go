package handler_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"sampleapp/internal/apperror"
	"sampleapp/internal/config"
)

func TestHandleError(t *testing.T) {
	tests := []struct {
		name        string
		env         string
		err         error
		wantStatus  int
		wantName    string
		wantMessage string
		wantStack   bool
	}{
		{
			name:        "operational error in production gets generic message",
			env:         config.EnvProduction,
			err:         apperror.NotFound("user 7 not found"),
			wantStatus:  http.StatusNotFound,
			wantName:    apperror.NameResourceNotFound,
			wantMessage: "서버 내부 오류가 발생했습니다",
		},
		{
			name:        "defect in production hides message",
			env:         config.EnvProduction,
			err:         apperror.Internal("시뮬레이션된 에러입니다"),
			wantStatus:  http.StatusInternalServerError,
			wantName:    apperror.NameInternalServerError,
			wantMessage: "서버 내부 오류가 발생했습니다",
		},
		{
			name:        "defect outside production exposes message and stack",
			env:         config.EnvDevelopment,
			err:         apperror.Internal("시뮬레이션된 에러입니다"),
			wantStatus:  http.StatusInternalServerError,
			wantName:    apperror.NameInternalServerError,
			wantMessage: "시뮬레이션된 에러입니다",
			wantStack:   true,
		},
		{
			name:        "plain error becomes 500",
			env:         config.EnvStaging,
			err:         errors.New("boom"),
			wantStatus:  http.StatusInternalServerError,
			wantName:    "Internal Server Error",
			wantMessage: "boom",
			wantStack:   true,
		},
		{
			name:        "plain error in production",
			env:         config.EnvProduction,
			err:         errors.New("boom"),
			wantStatus:  http.StatusInternalServerError,
			wantName:    "Internal Server Error",
			wantMessage: "서버 내부 오류가 발생했습니다",
		},
		{
			name:        "non-error status falls back to 500",
			env:         config.EnvStaging,
			err:         apperror.New("WEIRD", apperror.StatusOK, "odd", true),
			wantStatus:  http.StatusInternalServerError,
			wantName:    "WEIRD",
			wantMessage: "odd",
			wantStack:   true,
		},
		{
			name:        "router error keeps its status",
			env:         config.EnvProduction,
			err:         echo.ErrMethodNotAllowed,
			wantStatus:  http.StatusMethodNotAllowed,
			wantName:    apperror.NameHTTPException,
			wantMessage: "서버 내부 오류가 발생했습니다",
		},
		{
			name:        "oversized body",
			env:         config.EnvStaging,
			err:         echo.ErrStatusRequestEntityTooLarge,
			wantStatus:  http.StatusRequestEntityTooLarge,
			wantName:    apperror.NameHTTPException,
			wantMessage: "Request Entity Too Large",
			wantStack:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, d := newTestHandler(t, tt.env)
			d.errors.EXPECT().Handle(mock.Anything, mock.Anything).Return().Once()
			c, rec := newContext(http.MethodGet, "/api/error")

			h.HandleError(tt.err, c)

			assert.Equal(t, tt.wantStatus, rec.Code)
			body := decode(t, rec)
			assert.Equal(t, tt.wantName, body["error"])
			assert.Equal(t, tt.wantMessage, body["message"])
			if tt.wantStack {
				assert.NotEmpty(t, body["stack"])
			} else {
				assert.NotContains(t, body, "stack")
			}
		})
	}
}

func TestHandleError_ReportsConvertedRouterError(t *testing.T) {
	h, d := newTestHandler(t, config.EnvStaging)
	d.errors.EXPECT().Handle(mock.Anything, mock.Anything).Run(func(_ context.Context, err error) {
		appErr, ok := apperror.As(err)
		require.True(t, ok)
		assert.Equal(t, apperror.NameHTTPException, appErr.Name())
		assert.True(t, appErr.IsOperational())
	}).Return().Once()
	c, _ := newContext(http.MethodPost, "/health")

	h.HandleError(echo.ErrMethodNotAllowed, c)
}

func TestHandleError_EnglishGenericMessage(t *testing.T) {
	h, d := newTestHandler(t, config.EnvProduction)
	d.errors.EXPECT().Handle(mock.Anything, mock.Anything).Return().Once()
	c, rec := newContext(http.MethodGet, "/api/error")
	c.Request().Header.Set("Accept-Language", "en")

	h.HandleError(apperror.Internal("db down"), c)

	assert.Equal(t, "An internal server error occurred", decode(t, rec)["message"])
}

func TestHandleError_HeadRequestHasNoBody(t *testing.T) {
	h, d := newTestHandler(t, config.EnvStaging)
	d.errors.EXPECT().Handle(mock.Anything, mock.Anything).Return().Once()
	c, rec := newContext(http.MethodHead, "/api/error")

	h.HandleError(apperror.Internal("x"), c)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Zero(t, rec.Body.Len())
}

func TestHandleError_SkipsCommittedResponse(t *testing.T) {
	h, _ := newTestHandler(t, config.EnvStaging)
	c, rec := newContext(http.MethodGet, "/api/users")
	require.NoError(t, c.String(http.StatusOK, "partial"))

	h.HandleError(errors.New("late failure"), c)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "partial", rec.Body.String())
}
