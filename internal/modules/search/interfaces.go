package search

import (
	"context"

	"tripdesk/internal/domain"
	"tripdesk/internal/repository"
)

type FlightReader interface {
	Search(ctx context.Context, f repository.FlightSearchFilters) ([]domain.Flight, error)
	GetByID(ctx context.Context, id int64) (*domain.Flight, error)
}

type HotelReader interface {
	SearchByCity(ctx context.Context, city string) ([]domain.Hotel, error)
	GetByID(ctx context.Context, id int64) (*domain.Hotel, error)
}
