package catalog

import (
	"context"
	"errors"
	"strings"

	"tripdesk/internal/domain"
)

var ErrValidation = errors.New("missing required search criteria")

type FlightCatalogReader interface {
	GetAllAirlines(ctx context.Context) ([]domain.Airline, error)
	GetAllAirports(ctx context.Context) ([]domain.Airport, error)
}

type TransitReader interface {
	SearchBusRoutes(ctx context.Context, from, to string) ([]domain.BusRoute, error)
	SearchTrainRoutes(ctx context.Context, from, to string) ([]domain.TrainRoute, error)
}

type PackageReader interface {
	GetAll(ctx context.Context) ([]domain.HolidayPackage, error)
}

// Service serves the read-only reference catalogs: airlines, airports,
// bus/train routes and holiday packages.
type Service struct {
	flights  FlightCatalogReader
	transit  TransitReader
	packages PackageReader
}

func NewService(flights FlightCatalogReader, transit TransitReader, packages PackageReader) *Service {
	return &Service{flights: flights, transit: transit, packages: packages}
}

func (s *Service) Airlines(ctx context.Context) ([]domain.Airline, error) {
	return s.flights.GetAllAirlines(ctx)
}

func (s *Service) Airports(ctx context.Context) ([]domain.Airport, error) {
	return s.flights.GetAllAirports(ctx)
}

func (s *Service) SearchBuses(ctx context.Context, from, to string) ([]domain.BusRoute, error) {
	if strings.TrimSpace(from) == "" || strings.TrimSpace(to) == "" {
		return nil, ErrValidation
	}
	return s.transit.SearchBusRoutes(ctx, strings.TrimSpace(from), strings.TrimSpace(to))
}

func (s *Service) SearchTrains(ctx context.Context, from, to string) ([]domain.TrainRoute, error) {
	if strings.TrimSpace(from) == "" || strings.TrimSpace(to) == "" {
		return nil, ErrValidation
	}
	return s.transit.SearchTrainRoutes(ctx, strings.TrimSpace(from), strings.TrimSpace(to))
}

func (s *Service) Packages(ctx context.Context) ([]domain.HolidayPackage, error) {
	return s.packages.GetAll(ctx)
}
