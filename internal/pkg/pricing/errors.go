package pricing

import (
	"net/http"

	"github.com/amopromo/roundtrip-flight-service/internal/pkg/exception"
)

// ErrPricingUnavailable is the single failure every provider problem
// collapses to: network errors, non-2xx statuses, undecodable or
// wrong-shape payloads. The specific cause is logged, never returned.
var ErrPricingUnavailable = exception.ApplicationError{
	StatusCode: http.StatusBadGateway,
	Message:    "flight pricing service unavailable",
}

var ErrRateLimitExceeded = exception.ApplicationError{
	StatusCode: http.StatusTooManyRequests,
	Message:    "pricing rate limit exceeded",
}
