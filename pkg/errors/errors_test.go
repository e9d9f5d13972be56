package errors

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
	"google.golang.org/grpc/codes"
)

func TestGetCodeMapping(t *testing.T) {
	tests := []struct {
		code       string
		wantStatus int
		wantGRPC   codes.Code
	}{
		{ErrInvalidArgument, http.StatusBadRequest, codes.InvalidArgument},
		{ErrNotFound, http.StatusNotFound, codes.NotFound},
		{ErrInternal, http.StatusInternalServerError, codes.Internal},
		{ErrUnavailable, http.StatusServiceUnavailable, codes.Unavailable},
		{"SOMETHING_ELSE", http.StatusInternalServerError, codes.Internal},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			status, grpcCode := GetCodeMapping(tt.code)
			assert.Equal(t, tt.wantStatus, status)
			assert.Equal(t, tt.wantGRPC, grpcCode)
		})
	}
}

func TestWrapKeepsCode(t *testing.T) {
	base := NewAppError(ErrNotFound, "request missing", nil)
	wrapped := Wrap(fmt.Errorf("lookup: %w", base), "reply failed")

	require.Error(t, wrapped)
	assert.Equal(t, ErrNotFound, CodeOf(wrapped))
	assert.Equal(t, http.StatusNotFound, StatusOf(wrapped))
	assert.Contains(t, wrapped.Error(), "reply failed")
	assert.True(t, Is(wrapped, base))

	assert.Nil(t, Wrap(nil, "noop"))
	assert.Equal(t, ErrInternal, CodeOf(Wrap(New("boom"), "x")))
}

func TestToHTTPError(t *testing.T) {
	httpErr := ToHTTPError(NewAppError(ErrInvalidArgument, "bad input", nil))
	assert.Equal(t, http.StatusBadRequest, httpErr.Code)
	assert.Equal(t, "bad input", httpErr.Message)

	passthrough := echo.NewHTTPError(http.StatusTeapot, "tea")
	assert.Same(t, passthrough, ToHTTPError(passthrough))

	assert.Equal(t, http.StatusInternalServerError, ToHTTPError(New("plain")).Code)
	assert.Nil(t, ToHTTPError(nil))
}

func TestFromHTTPError(t *testing.T) {
	err := FromHTTPError(echo.NewHTTPError(http.StatusNotFound, "gone"))
	assert.Equal(t, ErrNotFound, CodeOf(err))
	assert.Equal(t, "gone", err.Error())

	assert.Equal(t, ErrInternal, CodeOf(FromHTTPError(New("plain"))))
}

func TestLogErrorAddsCode(t *testing.T) {
	core, logs := observer.New(zap.ErrorLevel)
	logger := zap.New(core)

	LogError(logger, NewAppError(ErrConflict, "dup", nil), "save failed", zap.String("si_number", "SI00000001"))
	LogError(logger, nil, "ignored")

	require.Equal(t, 1, logs.Len())
	entry := logs.All()[0]
	assert.Equal(t, "save failed", entry.Message)
	fields := entry.ContextMap()
	assert.Equal(t, ErrConflict, fields["error_code"])
	assert.Equal(t, "SI00000001", fields["si_number"])
}
