package domain

import (
	"time"

	"gorm.io/datatypes"
)

type Hotel struct {
	ID            int64          `json:"id"`
	Name          string         `json:"name" validate:"required"`
	Description   string         `json:"description,omitempty" gorm:"type:text"`
	Address       string         `json:"address" gorm:"type:text"`
	City          string         `json:"city"`
	Country       string         `json:"country"`
	Latitude      *float64       `json:"latitude,omitempty"`
	Longitude     *float64       `json:"longitude,omitempty"`
	StarRating    *int           `json:"starRating,omitempty" validate:"omitempty,gte=1,lte=5"`
	Amenities     datatypes.JSON `json:"amenities,omitempty"`
	Images        datatypes.JSON `json:"images,omitempty"`
	CheckInTime   string         `json:"checkInTime,omitempty" gorm:"size:10"`
	CheckOutTime  string         `json:"checkOutTime,omitempty" gorm:"size:10"`
	PricePerNight float64        `json:"pricePerNight"`
	TotalRooms    int            `json:"totalRooms"`
	IsActive      bool           `json:"isActive" gorm:"default:true"`
	CreatedAt     time.Time      `json:"createdAt"`
}
