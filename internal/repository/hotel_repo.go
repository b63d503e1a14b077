package repository

import (
	"context"
	"strings"

	"tripdesk/internal/domain"

	"gorm.io/gorm"
)

type HotelRepository struct {
	db *gorm.DB
}

func NewHotelRepository(db *gorm.DB) *HotelRepository {
	return &HotelRepository{db: db}
}

// SearchByCity matches hotels whose city contains the given substring
// (case-insensitive), ordered by descending star rating.
func (r *HotelRepository) SearchByCity(ctx context.Context, city string) ([]domain.Hotel, error) {
	var hotels []domain.Hotel
	err := r.db.WithContext(ctx).
		Where("LOWER(city) LIKE ?", "%"+strings.ToLower(city)+"%").
		Where("is_active = ?", true).
		Order("star_rating DESC").
		Find(&hotels).Error
	return hotels, err
}

func (r *HotelRepository) GetByID(ctx context.Context, id int64) (*domain.Hotel, error) {
	var hotel domain.Hotel
	if err := r.db.WithContext(ctx).First(&hotel, id).Error; err != nil {
		return nil, err
	}
	return &hotel, nil
}
