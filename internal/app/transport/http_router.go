package transport

import (
	"log/slog"
	"net/http"

	"github.com/amopromo/roundtrip-flight-service/internal/app/dto"
	"github.com/amopromo/roundtrip-flight-service/internal/app/endpoints"
	httptransport "github.com/amopromo/roundtrip-flight-service/internal/pkg/transport/http"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
)

// MakeHTTPRouter builds the HTTP router with all the service endpoints.
func MakeHTTPRouter(endpts endpoints.Endpoints) *chi.Mux {
	// Initialize Router
	router := chi.NewRouter()

	router.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	router.Route("/api/v1", func(router chi.Router) {
		router.Use(
			httptransport.RequestID(),
			httptransport.CORSMiddleware(),
			httptransport.Recoverer(slog.Default()),
			render.SetContentType(render.ContentTypeJSON),
		)

		router.Get("/flights/search", httptransport.MakeHandlerFunc(
			endpts.SearchFlights,
			httptransport.DecodeQueryRequest[dto.SearchRequest],
			httptransport.ResponseWithBody,
		))

		router.Route("/airports", func(router chi.Router) {
			router.Post("/sync", httptransport.MakeHandlerFunc(
				endpts.SyncAirports,
				httptransport.DecodeRequest[dto.SyncRequest],
				httptransport.ResponseWithBody,
			))

			router.Delete("/cache", httptransport.MakeHandlerFunc(
				endpts.ClearCache,
				httptransport.EmptyRequest,
				httptransport.NoContentResponse,
			))

			router.Get("/{iata}", httptransport.MakeHandlerFunc(
				endpts.GetAirport,
				httptransport.DecodeQueryRequest[dto.AirportLookupRequest],
				httptransport.ResponseWithBody,
			))
		})
	})

	return router
}
