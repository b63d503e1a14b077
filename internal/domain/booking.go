package domain

import (
	"time"

	"gorm.io/datatypes"
)

type BookingStatus string

const (
	BookingPending   BookingStatus = "pending"
	BookingConfirmed BookingStatus = "confirmed"
	BookingCancelled BookingStatus = "cancelled"
)

type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "pending"
	PaymentCompleted PaymentStatus = "completed"
	PaymentFailed    PaymentStatus = "failed"
)

func (s PaymentStatus) Terminal() bool {
	return s == PaymentCompleted || s == PaymentFailed
}

// BookingCategory selects one of the three booking tables. It doubles as the
// category segment in booking URLs.
type BookingCategory string

const (
	CategoryFlight BookingCategory = "flight"
	CategoryHotel  BookingCategory = "hotel"
	CategoryCab    BookingCategory = "cab"
)

func (c BookingCategory) Valid() bool {
	return c == CategoryFlight || c == CategoryHotel || c == CategoryCab
}

type TripType string

const (
	TripOutstation TripType = "outstation"
	TripLocal      TripType = "local"
)

// BookingReference is the claim table behind reference uniqueness across all
// three booking categories: every booking insert claims its reference here in
// the same transaction, so a collision in any category surfaces as a
// duplicate-key error. Claims are never released; references are not reused.
type BookingReference struct {
	Reference string          `json:"reference" gorm:"primaryKey;size:20"`
	Category  BookingCategory `json:"category" gorm:"size:10"`
}

type FlightBooking struct {
	ID               int64          `json:"id"`
	BookingReference string         `json:"bookingReference" gorm:"uniqueIndex;size:20"`
	UserID           int64          `json:"userId"`
	FlightID         int64          `json:"flightId"`
	Passengers       datatypes.JSON `json:"passengers"`
	Class            CabinClass     `json:"class" gorm:"column:class;size:20"`
	TotalAmount      float64        `json:"totalAmount"`
	PaymentStatus    PaymentStatus  `json:"paymentStatus" gorm:"size:20;default:pending"`
	BookingStatus    BookingStatus  `json:"bookingStatus" gorm:"size:20;default:confirmed"`
	BookingDate      time.Time      `json:"bookingDate" gorm:"autoCreateTime"`
	TravelDate       time.Time      `json:"travelDate"`

	Flight *Flight `json:"flight,omitempty" gorm:"foreignKey:FlightID"`
}

type HotelBooking struct {
	ID               int64         `json:"id"`
	BookingReference string        `json:"bookingReference" gorm:"uniqueIndex;size:20"`
	UserID           int64         `json:"userId"`
	HotelID          int64         `json:"hotelId"`
	CheckInDate      time.Time     `json:"checkInDate"`
	CheckOutDate     time.Time     `json:"checkOutDate"`
	Nights           int           `json:"nights"`
	Rooms            int           `json:"rooms" gorm:"default:1"`
	Guests           int           `json:"guests" gorm:"default:1"`
	TotalAmount      float64       `json:"totalAmount"`
	PaymentStatus    PaymentStatus `json:"paymentStatus" gorm:"size:20;default:pending"`
	BookingStatus    BookingStatus `json:"bookingStatus" gorm:"size:20;default:confirmed"`
	SpecialRequests  string        `json:"specialRequests,omitempty" gorm:"type:text"`
	BookingDate      time.Time     `json:"bookingDate" gorm:"autoCreateTime"`

	Hotel *Hotel `json:"hotel,omitempty" gorm:"foreignKey:HotelID"`
}

type CabBooking struct {
	ID               int64         `json:"id"`
	BookingReference string        `json:"bookingReference" gorm:"uniqueIndex;size:20"`
	UserID           int64         `json:"userId"`
	TripType         TripType      `json:"tripType" gorm:"size:20"`
	FromLocation     string        `json:"fromLocation"`
	ToLocation       string        `json:"toLocation,omitempty"`
	PickupDate       time.Time     `json:"pickupDate"`
	ReturnDate       *time.Time    `json:"returnDate,omitempty"`
	CabType          string        `json:"cabType,omitempty" gorm:"size:50"`
	TotalAmount      float64       `json:"totalAmount"`
	PaymentStatus    PaymentStatus `json:"paymentStatus" gorm:"size:20;default:pending"`
	BookingStatus    BookingStatus `json:"bookingStatus" gorm:"size:20;default:confirmed"`
	BookingDate      time.Time     `json:"bookingDate" gorm:"autoCreateTime"`
}
