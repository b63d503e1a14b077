package domain

import "time"

type CabinClass string

const (
	CabinEconomy  CabinClass = "economy"
	CabinBusiness CabinClass = "business"
)

func (c CabinClass) Valid() bool {
	return c == CabinEconomy || c == CabinBusiness
}

type Airline struct {
	ID       int64  `json:"id"`
	Code     string `json:"code" gorm:"uniqueIndex;size:10"`
	Name     string `json:"name"`
	Logo     string `json:"logo,omitempty"`
	Country  string `json:"country,omitempty"`
	IsActive bool   `json:"isActive" gorm:"default:true"`
}

type Airport struct {
	ID       int64  `json:"id"`
	Code     string `json:"code" gorm:"uniqueIndex;size:10"`
	Name     string `json:"name"`
	City     string `json:"city"`
	Country  string `json:"country"`
	Timezone string `json:"timezone,omitempty"`
	IsActive bool   `json:"isActive" gorm:"default:true"`
}

type Flight struct {
	ID                 int64     `json:"id"`
	FlightNumber       string    `json:"flightNumber" validate:"required"`
	AirlineID          int64     `json:"airlineId"`
	DepartureAirportID int64     `json:"departureAirportId"`
	ArrivalAirportID   int64     `json:"arrivalAirportId"`
	DepartureTime      time.Time `json:"departureTime"`
	ArrivalTime        time.Time `json:"arrivalTime"`
	Duration           int       `json:"duration,omitempty"` // minutes
	Aircraft           string    `json:"aircraft,omitempty"`
	EconomyPrice       float64   `json:"economyPrice"`
	BusinessPrice      float64   `json:"businessPrice"`
	EconomySeats       int       `json:"economySeats"`
	BusinessSeats      int       `json:"businessSeats"`
	IsActive           bool      `json:"isActive" gorm:"default:true"`
	CreatedAt          time.Time `json:"createdAt"`

	Airline          *Airline `json:"airline,omitempty" gorm:"foreignKey:AirlineID"`
	DepartureAirport *Airport `json:"departureAirport,omitempty" gorm:"foreignKey:DepartureAirportID"`
	ArrivalAirport   *Airport `json:"arrivalAirport,omitempty" gorm:"foreignKey:ArrivalAirportID"`
}

// PriceFor returns the fare for the given cabin class.
func (f *Flight) PriceFor(class CabinClass) float64 {
	if class == CabinBusiness {
		return f.BusinessPrice
	}
	return f.EconomyPrice
}

// SeatsFor returns the remaining seat count for the given cabin class.
func (f *Flight) SeatsFor(class CabinClass) int {
	if class == CabinBusiness {
		return f.BusinessSeats
	}
	return f.EconomySeats
}
