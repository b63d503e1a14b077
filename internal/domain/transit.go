package domain

import "gorm.io/datatypes"

type BusOperator struct {
	ID       int64    `json:"id"`
	Name     string   `json:"name"`
	Logo     string   `json:"logo,omitempty"`
	Rating   *float64 `json:"rating,omitempty"`
	IsActive bool     `json:"isActive" gorm:"default:true"`
}

type BusRoute struct {
	ID            int64          `json:"id"`
	OperatorID    int64          `json:"operatorId"`
	FromCity      string         `json:"fromCity"`
	ToCity        string         `json:"toCity"`
	DepartureTime string         `json:"departureTime" gorm:"size:10"`
	ArrivalTime   string         `json:"arrivalTime" gorm:"size:10"`
	Duration      string         `json:"duration,omitempty" gorm:"size:20"`
	BusType       string         `json:"busType,omitempty" gorm:"size:50"`
	TotalSeats    int            `json:"totalSeats"`
	Price         float64        `json:"price"`
	Amenities     datatypes.JSON `json:"amenities,omitempty"`
	IsActive      bool           `json:"isActive" gorm:"default:true"`

	Operator *BusOperator `json:"operator,omitempty" gorm:"foreignKey:OperatorID"`
}

type TrainRoute struct {
	ID            int64          `json:"id"`
	TrainNumber   string         `json:"trainNumber" gorm:"size:20"`
	TrainName     string         `json:"trainName"`
	FromStation   string         `json:"fromStation"`
	ToStation     string         `json:"toStation"`
	DepartureTime string         `json:"departureTime" gorm:"size:10"`
	ArrivalTime   string         `json:"arrivalTime" gorm:"size:10"`
	Duration      string         `json:"duration,omitempty" gorm:"size:20"`
	SleeperPrice  float64        `json:"sleeperPrice"`
	ACPrice       float64        `json:"acPrice" gorm:"column:ac_price"`
	Classes       datatypes.JSON `json:"classes,omitempty"`
	RunsOn        datatypes.JSON `json:"runsOn,omitempty"`
	IsActive      bool           `json:"isActive" gorm:"default:true"`
}
