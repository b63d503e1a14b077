package search

import (
	"context"
	"errors"
	"strings"
	"time"

	"tripdesk/internal/domain"
	"tripdesk/internal/repository"

	"gorm.io/gorm"
)

type Service struct {
	flights FlightReader
	hotels  HotelReader
}

func NewService(flights FlightReader, hotels HotelReader) *Service {
	return &Service{flights: flights, hotels: hotels}
}

// SearchFlights filters by route cities and calendar day of departure.
func (s *Service) SearchFlights(ctx context.Context, q FlightSearchQuery) ([]domain.Flight, error) {
	if strings.TrimSpace(q.From) == "" || strings.TrimSpace(q.To) == "" || strings.TrimSpace(q.DepartureDate) == "" {
		return nil, ErrValidation
	}

	day, err := time.Parse("2006-01-02", q.DepartureDate)
	if err != nil {
		return nil, ErrValidation
	}

	return s.flights.Search(ctx, repository.FlightSearchFilters{
		FromCity:      strings.TrimSpace(q.From),
		ToCity:        strings.TrimSpace(q.To),
		DepartureDate: day,
	})
}

func (s *Service) GetFlight(ctx context.Context, id int64) (*domain.Flight, error) {
	flight, err := s.flights.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return flight, nil
}

// SearchHotels filters by city substring. Check-in/check-out and guest counts
// are required but do not narrow results; room availability is not modeled
// per date.
func (s *Service) SearchHotels(ctx context.Context, q HotelSearchQuery) ([]domain.Hotel, error) {
	if strings.TrimSpace(q.City) == "" || strings.TrimSpace(q.CheckIn) == "" || strings.TrimSpace(q.CheckOut) == "" {
		return nil, ErrValidation
	}
	if _, err := time.Parse("2006-01-02", q.CheckIn); err != nil {
		return nil, ErrValidation
	}
	if _, err := time.Parse("2006-01-02", q.CheckOut); err != nil {
		return nil, ErrValidation
	}

	return s.hotels.SearchByCity(ctx, strings.TrimSpace(q.City))
}

func (s *Service) GetHotel(ctx context.Context, id int64) (*domain.Hotel, error) {
	hotel, err := s.hotels.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return hotel, nil
}
