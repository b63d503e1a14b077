package domain

import (
	"time"

	"gorm.io/datatypes"
)

type HolidayPackage struct {
	ID            int64          `json:"id"`
	Title         string         `json:"title"`
	Description   string         `json:"description,omitempty" gorm:"type:text"`
	Destination   string         `json:"destination"`
	Duration      string         `json:"duration,omitempty" gorm:"size:50"`
	PackageType   string         `json:"packageType,omitempty" gorm:"size:50"` // domestic, international
	Inclusions    datatypes.JSON `json:"inclusions,omitempty"`
	Itinerary     datatypes.JSON `json:"itinerary,omitempty"`
	Images        datatypes.JSON `json:"images,omitempty"`
	Price         float64        `json:"price"`
	OriginalPrice float64        `json:"originalPrice,omitempty"`
	Discount      int            `json:"discount"`
	IsActive      bool           `json:"isActive" gorm:"default:true"`
	CreatedAt     time.Time      `json:"createdAt"`
}
