package repository

import (
	"context"

	"tripdesk/internal/domain"

	"gorm.io/gorm"
)

type PackageRepository struct {
	db *gorm.DB
}

func NewPackageRepository(db *gorm.DB) *PackageRepository {
	return &PackageRepository{db: db}
}

func (r *PackageRepository) GetAll(ctx context.Context) ([]domain.HolidayPackage, error) {
	var packages []domain.HolidayPackage
	err := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Order("created_at DESC").
		Find(&packages).Error
	return packages, err
}
