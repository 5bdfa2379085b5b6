package http

import (
	"context"
	"net/http"

	"github.com/amopromo/roundtrip-flight-service/internal/pkg/exception"
	"github.com/go-chi/render"
	"github.com/go-kit/kit/endpoint"
)

type DecodeRequestFunc func(ctx context.Context, r *http.Request) (interface{}, error)

type EncodeResponseFunc func(ctx context.Context, w http.ResponseWriter, response interface{}) error

// QueryDecoder is implemented by request types populated from URL
// query or path parameters rather than a JSON body.
type QueryDecoder interface {
	FromQuery(r *http.Request) error
}

// MakeHandlerFunc glues a decoder, an endpoint and an encoder into a
// plain http.HandlerFunc. Any error from the chain goes through
// ErrorResponse.
func MakeHandlerFunc(
	endpt endpoint.Endpoint,
	decoder DecodeRequestFunc,
	encoder EncodeResponseFunc,
) http.HandlerFunc {
	return func(respWriter http.ResponseWriter, req *http.Request) {
		ctx := req.Context()

		request, err := decoder(ctx, req)
		if err != nil {
			ErrorResponse(ctx, err, respWriter)

			return
		}

		response, err := endpt(ctx, request)
		if err != nil {
			ErrorResponse(ctx, err, respWriter)

			return
		}

		if err := encoder(ctx, respWriter, response); err != nil {
			ErrorResponse(ctx, err, respWriter)
		}
	}
}

// DecodeRequest decodes a JSON body into T. An empty body yields the
// zero value so endpoints with all-optional fields accept bare posts.
func DecodeRequest[T any](_ context.Context, req *http.Request) (interface{}, error) {
	request := new(T)

	if req.ContentLength == 0 {
		return request, nil
	}

	binder, ok := any(request).(render.Binder)
	if !ok {
		return request, nil
	}

	if err := render.Bind(req, binder); err != nil {
		return nil, exception.ApplicationError{
			StatusCode: http.StatusBadRequest,
			Message:    err.Error(),
		}
	}

	return request, nil
}

// DecodeQueryRequest populates T from query or path parameters.
func DecodeQueryRequest[T any](_ context.Context, req *http.Request) (interface{}, error) {
	request := new(T)

	decoder, ok := any(request).(QueryDecoder)
	if !ok {
		return request, nil
	}

	if err := decoder.FromQuery(req); err != nil {
		return nil, exception.ApplicationError{
			StatusCode: http.StatusBadRequest,
			Message:    err.Error(),
		}
	}

	return request, nil
}

// EmptyRequest is the decoder for endpoints that take no input.
func EmptyRequest(_ context.Context, _ *http.Request) (interface{}, error) {
	return nil, nil
}
