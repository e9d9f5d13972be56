package errors

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// ToHTTPStatus converts an error code to an HTTP status.
func ToHTTPStatus(code string) int {
	httpStatus, _ := GetCodeMapping(code)
	return httpStatus
}

// StatusOf returns the HTTP status for err.
func StatusOf(err error) int {
	var echoErr *echo.HTTPError
	if As(err, &echoErr) {
		return echoErr.Code
	}
	return ToHTTPStatus(CodeOf(err))
}

// ToHTTPError converts err to an echo HTTP error.
func ToHTTPError(err error) *echo.HTTPError {
	if err == nil {
		return nil
	}

	var coded Error
	if As(err, &coded) {
		return echo.NewHTTPError(ToHTTPStatus(coded.Code()), coded.Error())
	}

	if echoErr, ok := err.(*echo.HTTPError); ok {
		return echoErr
	}

	return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
}

// FromHTTPError converts an echo HTTP error back to an AppError.
func FromHTTPError(err error) error {
	if err == nil {
		return nil
	}

	var coded Error
	if As(err, &coded) {
		return err
	}

	if echoErr, ok := err.(*echo.HTTPError); ok {
		msg := "HTTP error"
		if m, ok := echoErr.Message.(string); ok {
			msg = m
		}
		return NewAppError(httpStatusToCode(echoErr.Code), msg, nil)
	}

	return NewAppError(ErrInternal, err.Error(), err)
}

func httpStatusToCode(status int) string {
	switch status {
	case http.StatusNotFound:
		return ErrNotFound
	case http.StatusBadRequest:
		return ErrInvalidArgument
	case http.StatusUnauthorized:
		return ErrUnauthenticated
	case http.StatusForbidden:
		return ErrUnauthorized
	case http.StatusConflict:
		return ErrConflict
	case http.StatusGatewayTimeout:
		return ErrTimeout
	case http.StatusServiceUnavailable:
		return ErrUnavailable
	case http.StatusNotImplemented:
		return ErrNotImplemented
	default:
		return ErrInternal
	}
}
