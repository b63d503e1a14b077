package repository

import (
	"context"
	"strings"
	"time"

	"tripdesk/internal/domain"

	"gorm.io/gorm"
)

type FlightSearchFilters struct {
	FromCity      string
	ToCity        string
	DepartureDate time.Time // calendar day, midnight UTC
}

type FlightRepository struct {
	db *gorm.DB
}

func NewFlightRepository(db *gorm.DB) *FlightRepository {
	return &FlightRepository{db: db}
}

// Search matches flights whose departure/arrival airport cities contain the
// given substrings (case-insensitive) and whose departure falls within the
// requested calendar day. Ordered by ascending departure time.
func (r *FlightRepository) Search(ctx context.Context, f FlightSearchFilters) ([]domain.Flight, error) {
	dayStart := f.DepartureDate
	dayEnd := dayStart.Add(24 * time.Hour)

	var flights []domain.Flight
	err := r.db.WithContext(ctx).
		Model(&domain.Flight{}).
		Joins("JOIN airports AS dep ON dep.id = flights.departure_airport_id").
		Joins("JOIN airports AS arr ON arr.id = flights.arrival_airport_id").
		Where("LOWER(dep.city) LIKE ?", "%"+strings.ToLower(f.FromCity)+"%").
		Where("LOWER(arr.city) LIKE ?", "%"+strings.ToLower(f.ToCity)+"%").
		Where("flights.departure_time >= ? AND flights.departure_time < ?", dayStart, dayEnd).
		Where("flights.is_active = ?", true).
		Order("flights.departure_time ASC").
		Preload("Airline").
		Preload("DepartureAirport").
		Preload("ArrivalAirport").
		Find(&flights).Error
	return flights, err
}

func (r *FlightRepository) GetByID(ctx context.Context, id int64) (*domain.Flight, error) {
	var flight domain.Flight
	err := r.db.WithContext(ctx).
		Preload("Airline").
		Preload("DepartureAirport").
		Preload("ArrivalAirport").
		First(&flight, id).Error
	if err != nil {
		return nil, err
	}
	return &flight, nil
}

func (r *FlightRepository) GetAllAirlines(ctx context.Context) ([]domain.Airline, error) {
	var airlines []domain.Airline
	err := r.db.WithContext(ctx).Where("is_active = ?", true).Find(&airlines).Error
	return airlines, err
}

func (r *FlightRepository) GetAllAirports(ctx context.Context) ([]domain.Airport, error) {
	var airports []domain.Airport
	err := r.db.WithContext(ctx).Where("is_active = ?", true).Find(&airports).Error
	return airports, err
}
