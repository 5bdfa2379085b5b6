package endpoints

import (
	"context"
	"errors"
	"fmt"

	"github.com/amopromo/roundtrip-flight-service/internal/app/dto"
	"github.com/go-kit/kit/endpoint"
)

type DirectoryService interface {
	Import(ctx context.Context, req dto.SyncRequest) (dto.SyncResult, error)
	ClearCache(ctx context.Context) error
	GetAirport(ctx context.Context, iata string) (dto.AirportInfo, error)
}

type DirectoryEndpoint struct {
	SyncAirports endpoint.Endpoint
	ClearCache   endpoint.Endpoint
	GetAirport   endpoint.Endpoint
}

func MakeDirectoryEndpoint(service DirectoryService) DirectoryEndpoint {
	return DirectoryEndpoint{
		SyncAirports: makeSyncAirportsEndpoint(service),
		ClearCache:   makeClearCacheEndpoint(service),
		GetAirport:   makeGetAirportEndpoint(service),
	}
}

func makeSyncAirportsEndpoint(service DirectoryService) endpoint.Endpoint {
	return func(ctx context.Context, req interface{}) (interface{}, error) {
		request, ok := req.(*dto.SyncRequest)
		if !ok || request == nil {
			return nil, errors.New("invalid type")
		}

		result, err := service.Import(ctx, *request)
		if err != nil {
			return nil, fmt.Errorf("directory service: %w", err)
		}

		return result, nil
	}
}

func makeClearCacheEndpoint(service DirectoryService) endpoint.Endpoint {
	return func(ctx context.Context, _ interface{}) (interface{}, error) {
		if err := service.ClearCache(ctx); err != nil {
			return nil, fmt.Errorf("directory service: %w", err)
		}

		return nil, nil
	}
}

func makeGetAirportEndpoint(service DirectoryService) endpoint.Endpoint {
	return func(ctx context.Context, req interface{}) (interface{}, error) {
		request, ok := req.(*dto.AirportLookupRequest)
		if !ok || request == nil {
			return nil, errors.New("invalid type")
		}

		result, err := service.GetAirport(ctx, request.IATA)
		if err != nil {
			return nil, fmt.Errorf("directory service: %w", err)
		}

		return result, nil
	}
}
