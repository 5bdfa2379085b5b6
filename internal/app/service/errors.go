package service

import (
	"fmt"
	"net/http"

	"github.com/amopromo/roundtrip-flight-service/internal/pkg/exception"
)

// ErrUnknownAirport names the offending code. A truly unknown airport
// and an expired directory look the same here: the cache masks store
// failures as misses.
func ErrUnknownAirport(iata string) exception.ApplicationError {
	return exception.ApplicationError{
		Message:    fmt.Sprintf("invalid airport code: %s", iata),
		StatusCode: http.StatusBadRequest,
	}
}

func ErrAirportNotFound(iata string) exception.ApplicationError {
	return exception.ApplicationError{
		Message:    fmt.Sprintf("airport %s not found", iata),
		StatusCode: http.StatusNotFound,
	}
}

var ErrImportFailed = exception.ApplicationError{
	Message:    "airport import failed",
	StatusCode: http.StatusBadGateway,
}
