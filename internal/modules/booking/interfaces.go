package booking

import (
	"context"

	"tripdesk/internal/domain"
)

type BookingRepository interface {
	CreateFlightBooking(ctx context.Context, b *domain.FlightBooking, seats int) error
	CancelFlightBooking(ctx context.Context, b *domain.FlightBooking, seats int) error
	CreateHotelBooking(ctx context.Context, b *domain.HotelBooking) error
	CreateCabBooking(ctx context.Context, b *domain.CabBooking) error
	ListByUser(ctx context.Context, userID int64) ([]domain.FlightBooking, []domain.HotelBooking, []domain.CabBooking, error)
	GetFlightBookingByRef(ctx context.Context, ref string) (*domain.FlightBooking, error)
	GetHotelBookingByRef(ctx context.Context, ref string) (*domain.HotelBooking, error)
	GetCabBookingByRef(ctx context.Context, ref string) (*domain.CabBooking, error)
	SetBookingStatus(ctx context.Context, category domain.BookingCategory, id int64, status domain.BookingStatus) error
	SetPaymentStatus(ctx context.Context, category domain.BookingCategory, id int64, status domain.PaymentStatus) error
}

type FlightReader interface {
	GetByID(ctx context.Context, id int64) (*domain.Flight, error)
}

type HotelReader interface {
	GetByID(ctx context.Context, id int64) (*domain.Hotel, error)
}
