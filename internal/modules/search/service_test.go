package search

import (
	"context"
	"testing"
	"time"

	"tripdesk/internal/domain"
	"tripdesk/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

type MockFlightReader struct {
	mock.Mock
}

func (m *MockFlightReader) Search(ctx context.Context, f repository.FlightSearchFilters) ([]domain.Flight, error) {
	args := m.Called(ctx, f)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Flight), args.Error(1)
}

func (m *MockFlightReader) GetByID(ctx context.Context, id int64) (*domain.Flight, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Flight), args.Error(1)
}

type MockHotelReader struct {
	mock.Mock
}

func (m *MockHotelReader) SearchByCity(ctx context.Context, city string) ([]domain.Hotel, error) {
	args := m.Called(ctx, city)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Hotel), args.Error(1)
}

func (m *MockHotelReader) GetByID(ctx context.Context, id int64) (*domain.Hotel, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Hotel), args.Error(1)
}

func TestSearchFlights_RequiresRouteAndDate(t *testing.T) {
	svc := NewService(new(MockFlightReader), new(MockHotelReader))

	cases := []FlightSearchQuery{
		{To: "Mumbai", DepartureDate: "2026-09-15"},
		{From: "Delhi", DepartureDate: "2026-09-15"},
		{From: "Delhi", To: "Mumbai"},
		{From: "Delhi", To: "Mumbai", DepartureDate: "15-09-2026"},
	}
	for _, q := range cases {
		_, err := svc.SearchFlights(context.Background(), q)
		assert.ErrorIs(t, err, ErrValidation)
	}
}

func TestSearchFlights_TrimsAndForwardsFilters(t *testing.T) {
	flights := new(MockFlightReader)
	svc := NewService(flights, new(MockHotelReader))

	day, _ := time.Parse("2006-01-02", "2026-09-15")
	flights.On("Search", mock.Anything, repository.FlightSearchFilters{
		FromCity:      "Delhi",
		ToCity:        "Mumbai",
		DepartureDate: day,
	}).Return([]domain.Flight{{ID: 1}, {ID: 2}}, nil)

	got, err := svc.SearchFlights(context.Background(), FlightSearchQuery{
		From:          "  Delhi ",
		To:            "Mumbai",
		DepartureDate: "2026-09-15",
	})

	assert.NoError(t, err)
	assert.Len(t, got, 2)
	flights.AssertExpectations(t)
}

func TestGetFlight_NotFound(t *testing.T) {
	flights := new(MockFlightReader)
	svc := NewService(flights, new(MockHotelReader))

	flights.On("GetByID", mock.Anything, int64(404)).Return(nil, gorm.ErrRecordNotFound)

	_, err := svc.GetFlight(context.Background(), 404)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSearchHotels_RequiresCityAndDates(t *testing.T) {
	svc := NewService(new(MockFlightReader), new(MockHotelReader))

	cases := []HotelSearchQuery{
		{CheckIn: "2026-09-10", CheckOut: "2026-09-12"},
		{City: "Goa", CheckOut: "2026-09-12"},
		{City: "Goa", CheckIn: "2026-09-10"},
		{City: "Goa", CheckIn: "10/09/2026", CheckOut: "2026-09-12"},
	}
	for _, q := range cases {
		_, err := svc.SearchHotels(context.Background(), q)
		assert.ErrorIs(t, err, ErrValidation)
	}
}

func TestSearchHotels_ForwardsCity(t *testing.T) {
	hotels := new(MockHotelReader)
	svc := NewService(new(MockFlightReader), hotels)

	hotels.On("SearchByCity", mock.Anything, "Goa").Return([]domain.Hotel{{ID: 4}}, nil)

	got, err := svc.SearchHotels(context.Background(), HotelSearchQuery{
		City:     " Goa ",
		CheckIn:  "2026-09-10",
		CheckOut: "2026-09-12",
	})

	assert.NoError(t, err)
	assert.Len(t, got, 1)
}

func TestGetHotel_NotFound(t *testing.T) {
	hotels := new(MockHotelReader)
	svc := NewService(new(MockFlightReader), hotels)

	hotels.On("GetByID", mock.Anything, int64(404)).Return(nil, gorm.ErrRecordNotFound)

	_, err := svc.GetHotel(context.Background(), 404)
	assert.ErrorIs(t, err, ErrNotFound)
}
