package catalog

import (
	"context"
	"testing"

	"tripdesk/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockTransitReader struct {
	mock.Mock
}

func (m *MockTransitReader) SearchBusRoutes(ctx context.Context, from, to string) ([]domain.BusRoute, error) {
	args := m.Called(ctx, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.BusRoute), args.Error(1)
}

func (m *MockTransitReader) SearchTrainRoutes(ctx context.Context, from, to string) ([]domain.TrainRoute, error) {
	args := m.Called(ctx, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.TrainRoute), args.Error(1)
}

func TestSearchBuses_RequiresBothCities(t *testing.T) {
	svc := NewService(nil, new(MockTransitReader), nil)

	_, err := svc.SearchBuses(context.Background(), "Delhi", "  ")
	assert.ErrorIs(t, err, ErrValidation)

	_, err = svc.SearchBuses(context.Background(), "", "Jaipur")
	assert.ErrorIs(t, err, ErrValidation)
}

func TestSearchBuses_TrimsCities(t *testing.T) {
	transit := new(MockTransitReader)
	svc := NewService(nil, transit, nil)

	transit.On("SearchBusRoutes", mock.Anything, "Delhi", "Jaipur").Return([]domain.BusRoute{{ID: 1}}, nil)

	got, err := svc.SearchBuses(context.Background(), " Delhi ", "Jaipur ")

	assert.NoError(t, err)
	assert.Len(t, got, 1)
	transit.AssertExpectations(t)
}

func TestSearchTrains_RequiresBothStations(t *testing.T) {
	svc := NewService(nil, new(MockTransitReader), nil)

	_, err := svc.SearchTrains(context.Background(), "Mumbai Central", "")
	assert.ErrorIs(t, err, ErrValidation)
}
