package server

import (
	"errors"
	"net/http"

	"github.com/gogpu/maestro"
)

// statusFor maps a render error to an HTTP status code.
func statusFor(err error) int {
	switch {
	case errors.Is(err, errBadRequest), errors.Is(err, maestro.ErrUnknownFrameType):
		return http.StatusBadRequest
	case errors.Is(err, maestro.ErrAssetNotFound):
		return http.StatusNotFound
	case errors.Is(err, maestro.ErrTimeout):
		return http.StatusGatewayTimeout
	default:
		// ErrAssetCorrupt, ErrCompositionFailure and encoder failures.
		return http.StatusInternalServerError
	}
}
