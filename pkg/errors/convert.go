package errors

import (
	"net/http"

	"google.golang.org/grpc/codes"
)

// CodePair maps an error code to its transport equivalents.
type CodePair struct {
	HTTPStatus int
	GRPCCode   codes.Code
}

var codeMapping = map[string]CodePair{
	ErrInternal:        {http.StatusInternalServerError, codes.Internal},
	ErrNotFound:        {http.StatusNotFound, codes.NotFound},
	ErrInvalidArgument: {http.StatusBadRequest, codes.InvalidArgument},
	ErrUnauthenticated: {http.StatusUnauthorized, codes.Unauthenticated},
	ErrUnauthorized:    {http.StatusForbidden, codes.PermissionDenied},
	ErrConflict:        {http.StatusConflict, codes.AlreadyExists},
	ErrTimeout:         {http.StatusGatewayTimeout, codes.DeadlineExceeded},
	ErrUnavailable:     {http.StatusServiceUnavailable, codes.Unavailable},
	ErrNotImplemented:  {http.StatusNotImplemented, codes.Unimplemented},
}

// GetCodeMapping returns the HTTP status and gRPC code for code.
// Unknown codes map to 500 / INTERNAL.
func GetCodeMapping(code string) (int, codes.Code) {
	if pair, ok := codeMapping[code]; ok {
		return pair.HTTPStatus, pair.GRPCCode
	}
	return http.StatusInternalServerError, codes.Internal
}
