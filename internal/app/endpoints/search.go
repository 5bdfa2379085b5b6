package endpoints

import (
	"context"
	"errors"
	"fmt"

	"github.com/amopromo/roundtrip-flight-service/internal/app/dto"
	"github.com/go-kit/kit/endpoint"
)

type SearchService interface {
	Search(ctx context.Context, req dto.SearchRequest) (dto.SearchResponse, error)
}

type SearchEndpoint struct {
	SearchFlights endpoint.Endpoint
}

func MakeSearchEndpoint(service SearchService) SearchEndpoint {
	return SearchEndpoint{
		SearchFlights: makeSearchFlightsEndpoint(service),
	}
}

func makeSearchFlightsEndpoint(service SearchService) endpoint.Endpoint {
	return func(ctx context.Context, req interface{}) (interface{}, error) {
		request, ok := req.(*dto.SearchRequest)
		if !ok || request == nil {
			return nil, errors.New("invalid type")
		}

		result, err := service.Search(ctx, *request)
		if err != nil {
			return nil, fmt.Errorf("search service: %w", err)
		}

		return result, nil
	}
}
