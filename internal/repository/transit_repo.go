package repository

import (
	"context"
	"strings"

	"tripdesk/internal/domain"

	"gorm.io/gorm"
)

type TransitRepository struct {
	db *gorm.DB
}

func NewTransitRepository(db *gorm.DB) *TransitRepository {
	return &TransitRepository{db: db}
}

func (r *TransitRepository) SearchBusRoutes(ctx context.Context, from, to string) ([]domain.BusRoute, error) {
	var routes []domain.BusRoute
	err := r.db.WithContext(ctx).
		Where("LOWER(from_city) LIKE ?", "%"+strings.ToLower(from)+"%").
		Where("LOWER(to_city) LIKE ?", "%"+strings.ToLower(to)+"%").
		Where("is_active = ?", true).
		Order("departure_time ASC").
		Preload("Operator").
		Find(&routes).Error
	return routes, err
}

func (r *TransitRepository) SearchTrainRoutes(ctx context.Context, from, to string) ([]domain.TrainRoute, error) {
	var routes []domain.TrainRoute
	err := r.db.WithContext(ctx).
		Where("LOWER(from_station) LIKE ?", "%"+strings.ToLower(from)+"%").
		Where("LOWER(to_station) LIKE ?", "%"+strings.ToLower(to)+"%").
		Where("is_active = ?", true).
		Order("departure_time ASC").
		Find(&routes).Error
	return routes, err
}
