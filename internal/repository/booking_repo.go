package repository

import (
	"context"
	"errors"

	"tripdesk/internal/domain"

	"gorm.io/gorm"
)

// ErrSeatsUnavailable is returned when the requested cabin no longer has
// enough seats for the booking.
var ErrSeatsUnavailable = errors.New("not enough seats available")

type BookingRepository struct {
	db *gorm.DB
}

func NewBookingRepository(db *gorm.DB) *BookingRepository {
	return &BookingRepository{db: db}
}

// claimReference inserts the reference into the cross-category claim table.
// Its primary key is what makes references globally unique: a collision with
// any booking category fails here as a duplicate key.
func claimReference(tx *gorm.DB, ref string, category domain.BookingCategory) error {
	return tx.Create(&domain.BookingReference{Reference: ref, Category: category}).Error
}

func seatColumn(class domain.CabinClass) string {
	if class == domain.CabinBusiness {
		return "business_seats"
	}
	return "economy_seats"
}

// CreateFlightBooking claims the reference, reserves seats and inserts the
// booking in a single transaction. The seat decrement is conditional, so two
// concurrent bookings cannot drive the pool negative; zero rows affected means
// the cabin sold out between search and booking and nothing is inserted.
func (r *BookingRepository) CreateFlightBooking(ctx context.Context, b *domain.FlightBooking, seats int) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := claimReference(tx, b.BookingReference, domain.CategoryFlight); err != nil {
			return err
		}

		col := seatColumn(b.Class)
		res := tx.Model(&domain.Flight{}).
			Where("id = ? AND "+col+" >= ?", b.FlightID, seats).
			UpdateColumn(col, gorm.Expr(col+" - ?", seats))
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrSeatsUnavailable
		}

		return tx.Create(b).Error
	})
}

// CancelFlightBooking flips the booking to cancelled and gives the reserved
// seats back in one transaction, so a failed release also rolls back the
// status change and the cancellation can be retried.
func (r *BookingRepository) CancelFlightBooking(ctx context.Context, b *domain.FlightBooking, seats int) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&domain.FlightBooking{}).
			Where("id = ?", b.ID).
			UpdateColumn("booking_status", domain.BookingCancelled).Error; err != nil {
			return err
		}

		if seats <= 0 {
			return nil
		}
		col := seatColumn(b.Class)
		return tx.Model(&domain.Flight{}).
			Where("id = ?", b.FlightID).
			UpdateColumn(col, gorm.Expr(col+" + ?", seats)).Error
	})
}

func (r *BookingRepository) CreateHotelBooking(ctx context.Context, b *domain.HotelBooking) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := claimReference(tx, b.BookingReference, domain.CategoryHotel); err != nil {
			return err
		}
		return tx.Create(b).Error
	})
}

func (r *BookingRepository) CreateCabBooking(ctx context.Context, b *domain.CabBooking) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := claimReference(tx, b.BookingReference, domain.CategoryCab); err != nil {
			return err
		}
		return tx.Create(b).Error
	})
}

// ListByUser returns the user's bookings in all three categories, each list
// ordered by descending booking date.
func (r *BookingRepository) ListByUser(ctx context.Context, userID int64) ([]domain.FlightBooking, []domain.HotelBooking, []domain.CabBooking, error) {
	var flights []domain.FlightBooking
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("booking_date DESC").
		Preload("Flight").
		Preload("Flight.Airline").
		Preload("Flight.DepartureAirport").
		Preload("Flight.ArrivalAirport").
		Find(&flights).Error; err != nil {
		return nil, nil, nil, err
	}

	var hotels []domain.HotelBooking
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("booking_date DESC").
		Preload("Hotel").
		Find(&hotels).Error; err != nil {
		return nil, nil, nil, err
	}

	var cabs []domain.CabBooking
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("booking_date DESC").
		Find(&cabs).Error; err != nil {
		return nil, nil, nil, err
	}

	return flights, hotels, cabs, nil
}

func (r *BookingRepository) GetFlightBookingByRef(ctx context.Context, ref string) (*domain.FlightBooking, error) {
	var b domain.FlightBooking
	if err := r.db.WithContext(ctx).Where("booking_reference = ?", ref).First(&b).Error; err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *BookingRepository) GetHotelBookingByRef(ctx context.Context, ref string) (*domain.HotelBooking, error) {
	var b domain.HotelBooking
	if err := r.db.WithContext(ctx).Where("booking_reference = ?", ref).First(&b).Error; err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *BookingRepository) GetCabBookingByRef(ctx context.Context, ref string) (*domain.CabBooking, error) {
	var b domain.CabBooking
	if err := r.db.WithContext(ctx).Where("booking_reference = ?", ref).First(&b).Error; err != nil {
		return nil, err
	}
	return &b, nil
}

func modelFor(category domain.BookingCategory) any {
	switch category {
	case domain.CategoryHotel:
		return &domain.HotelBooking{}
	case domain.CategoryCab:
		return &domain.CabBooking{}
	default:
		return &domain.FlightBooking{}
	}
}

func (r *BookingRepository) SetBookingStatus(ctx context.Context, category domain.BookingCategory, id int64, status domain.BookingStatus) error {
	return r.db.WithContext(ctx).Model(modelFor(category)).
		Where("id = ?", id).
		UpdateColumn("booking_status", status).Error
}

func (r *BookingRepository) SetPaymentStatus(ctx context.Context, category domain.BookingCategory, id int64, status domain.PaymentStatus) error {
	return r.db.WithContext(ctx).Model(modelFor(category)).
		Where("id = ?", id).
		UpdateColumn("payment_status", status).Error
}
