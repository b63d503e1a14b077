package booking

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"tripdesk/internal/domain"
	"tripdesk/internal/pkg/bookingref"
	"tripdesk/internal/repository"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// Reference collisions are structurally unlikely; more retries than this
// means something other than bad luck is wrong.
const maxRefAttempts = 3

type Service struct {
	bookings BookingRepository
	flights  FlightReader
	hotels   HotelReader
}

func NewService(bookings BookingRepository, flights FlightReader, hotels HotelReader) *Service {
	return &Service{bookings: bookings, flights: flights, hotels: hotels}
}

// BookFlight validates the flight, prices the booking server-side, reserves
// seats and persists the record under a fresh unique reference.
func (s *Service) BookFlight(ctx context.Context, userID int64, req BookFlightRequest) (*domain.FlightBooking, error) {
	class := domain.CabinClass(req.Class)
	if !class.Valid() || len(req.Passengers) == 0 {
		return nil, ErrValidation
	}

	travelDate, err := time.Parse("2006-01-02", req.TravelDate)
	if err != nil {
		return nil, ErrValidation
	}

	flight, err := s.flights.GetByID(ctx, req.FlightID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if !flight.IsActive {
		return nil, ErrNotFound
	}

	fare := flight.PriceFor(class)
	if fare <= 0 {
		return nil, ErrValidation
	}
	total := fare * float64(len(req.Passengers))

	passengersJSON, err := json.Marshal(req.Passengers)
	if err != nil {
		return nil, err
	}

	b := &domain.FlightBooking{
		UserID:        userID,
		FlightID:      flight.ID,
		Passengers:    passengersJSON,
		Class:         class,
		TotalAmount:   total,
		PaymentStatus: domain.PaymentPending,
		BookingStatus: domain.BookingConfirmed,
		TravelDate:    travelDate,
	}

	for attempt := 0; attempt < maxRefAttempts; attempt++ {
		ref, err := bookingref.New()
		if err != nil {
			return nil, err
		}
		b.BookingReference = ref

		err = s.bookings.CreateFlightBooking(ctx, b, len(req.Passengers))
		if err == nil {
			return b, nil
		}
		if errors.Is(err, repository.ErrSeatsUnavailable) {
			return nil, ErrSeatsUnavailable
		}
		if isDuplicateKey(err) {
			continue
		}
		return nil, err
	}
	return nil, errors.New("could not allocate a unique booking reference")
}

func (s *Service) BookHotel(ctx context.Context, userID int64, req BookHotelRequest) (*domain.HotelBooking, error) {
	checkIn, err := time.Parse("2006-01-02", req.CheckIn)
	if err != nil {
		return nil, ErrValidation
	}
	checkOut, err := time.Parse("2006-01-02", req.CheckOut)
	if err != nil {
		return nil, ErrValidation
	}
	if !checkOut.After(checkIn) {
		return nil, ErrValidation
	}

	rooms := req.Rooms
	if rooms < 1 {
		rooms = 1
	}
	guests := req.Guests
	if guests < 1 {
		guests = 1
	}

	hotel, err := s.hotels.GetByID(ctx, req.HotelID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if !hotel.IsActive {
		return nil, ErrNotFound
	}
	if hotel.TotalRooms > 0 && rooms > hotel.TotalRooms {
		return nil, ErrRoomsUnavailable
	}
	if hotel.PricePerNight <= 0 {
		return nil, ErrValidation
	}

	nights := int(checkOut.Sub(checkIn).Hours() / 24)
	total := hotel.PricePerNight * float64(nights) * float64(rooms)

	b := &domain.HotelBooking{
		UserID:          userID,
		HotelID:         hotel.ID,
		CheckInDate:     checkIn,
		CheckOutDate:    checkOut,
		Nights:          nights,
		Rooms:           rooms,
		Guests:          guests,
		TotalAmount:     total,
		PaymentStatus:   domain.PaymentPending,
		BookingStatus:   domain.BookingConfirmed,
		SpecialRequests: req.SpecialRequests,
	}

	for attempt := 0; attempt < maxRefAttempts; attempt++ {
		ref, err := bookingref.New()
		if err != nil {
			return nil, err
		}
		b.BookingReference = ref

		err = s.bookings.CreateHotelBooking(ctx, b)
		if err == nil {
			return b, nil
		}
		if isDuplicateKey(err) {
			continue
		}
		return nil, err
	}
	return nil, errors.New("could not allocate a unique booking reference")
}

func (s *Service) BookCab(ctx context.Context, userID int64, req BookCabRequest) (*domain.CabBooking, error) {
	tripType := domain.TripType(req.TripType)
	if tripType == domain.TripOutstation && req.ToLocation == "" {
		return nil, ErrValidation
	}

	pickup, err := time.Parse("2006-01-02", req.PickupDate)
	if err != nil {
		return nil, ErrValidation
	}

	var ret *time.Time
	if req.ReturnDate != "" {
		t, err := time.Parse("2006-01-02", req.ReturnDate)
		if err != nil {
			return nil, ErrValidation
		}
		if t.Before(pickup) {
			return nil, ErrValidation
		}
		ret = &t
	}

	cabType := req.CabType
	if cabType == "" {
		cabType = defaultCabType
	}

	b := &domain.CabBooking{
		UserID:        userID,
		TripType:      tripType,
		FromLocation:  req.FromLocation,
		ToLocation:    req.ToLocation,
		PickupDate:    pickup,
		ReturnDate:    ret,
		CabType:       cabType,
		TotalAmount:   cabFare(tripType, cabType, pickup, ret),
		PaymentStatus: domain.PaymentPending,
		BookingStatus: domain.BookingConfirmed,
	}

	for attempt := 0; attempt < maxRefAttempts; attempt++ {
		ref, err := bookingref.New()
		if err != nil {
			return nil, err
		}
		b.BookingReference = ref

		err = s.bookings.CreateCabBooking(ctx, b)
		if err == nil {
			return b, nil
		}
		if isDuplicateKey(err) {
			continue
		}
		return nil, err
	}
	return nil, errors.New("could not allocate a unique booking reference")
}

// MyTrips returns all bookings committed for the user, newest first within
// each category.
func (s *Service) MyTrips(ctx context.Context, userID int64) (*TripsResponse, error) {
	flights, hotels, cabs, err := s.bookings.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if flights == nil {
		flights = []domain.FlightBooking{}
	}
	if hotels == nil {
		hotels = []domain.HotelBooking{}
	}
	if cabs == nil {
		cabs = []domain.CabBooking{}
	}
	return &TripsResponse{Flights: flights, Hotels: hotels, Cabs: cabs}, nil
}

// bookingState is the common status slice of the three booking tables.
type bookingState struct {
	id            int64
	userID        int64
	bookingStatus domain.BookingStatus
	paymentStatus domain.PaymentStatus
}

func (s *Service) getState(ctx context.Context, category domain.BookingCategory, ref string) (*bookingState, any, error) {
	switch category {
	case domain.CategoryFlight:
		b, err := s.bookings.GetFlightBookingByRef(ctx, ref)
		if err != nil {
			return nil, nil, err
		}
		return &bookingState{b.ID, b.UserID, b.BookingStatus, b.PaymentStatus}, b, nil
	case domain.CategoryHotel:
		b, err := s.bookings.GetHotelBookingByRef(ctx, ref)
		if err != nil {
			return nil, nil, err
		}
		return &bookingState{b.ID, b.UserID, b.BookingStatus, b.PaymentStatus}, b, nil
	case domain.CategoryCab:
		b, err := s.bookings.GetCabBookingByRef(ctx, ref)
		if err != nil {
			return nil, nil, err
		}
		return &bookingState{b.ID, b.UserID, b.BookingStatus, b.PaymentStatus}, b, nil
	}
	return nil, nil, ErrValidation
}

// Cancel transitions a booking to cancelled. Repeating the call is a no-op;
// flight cancellations give the reserved seats back.
func (s *Service) Cancel(ctx context.Context, userID int64, category domain.BookingCategory, ref string) (any, error) {
	if !category.Valid() {
		return nil, ErrValidation
	}

	state, record, err := s.getState(ctx, category, ref)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if state.userID != userID {
		return nil, ErrForbidden
	}
	if state.bookingStatus == domain.BookingCancelled {
		return record, nil
	}

	// Flight cancellation releases seats, and the release must commit with
	// the status flip or not at all: a partial cancel would leak inventory.
	if category == domain.CategoryFlight {
		fb := record.(*domain.FlightBooking)
		seats := 0
		var passengers []json.RawMessage
		if err := json.Unmarshal(fb.Passengers, &passengers); err == nil {
			seats = len(passengers)
		}
		if err := s.bookings.CancelFlightBooking(ctx, fb, seats); err != nil {
			return nil, err
		}
		fb.BookingStatus = domain.BookingCancelled
		return fb, nil
	}

	if err := s.bookings.SetBookingStatus(ctx, category, state.id, domain.BookingCancelled); err != nil {
		return nil, err
	}

	switch b := record.(type) {
	case *domain.HotelBooking:
		b.BookingStatus = domain.BookingCancelled
	case *domain.CabBooking:
		b.BookingStatus = domain.BookingCancelled
	}
	return record, nil
}

// SetPayment moves the payment state machine: pending → completed | failed.
// Repeating the transition already applied is a no-op; moving out of a
// terminal state is rejected.
func (s *Service) SetPayment(ctx context.Context, userID int64, category domain.BookingCategory, ref string, target domain.PaymentStatus) (any, error) {
	if !category.Valid() || !target.Terminal() {
		return nil, ErrValidation
	}

	state, record, err := s.getState(ctx, category, ref)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if state.userID != userID {
		return nil, ErrForbidden
	}
	if state.paymentStatus == target {
		return record, nil
	}
	if state.paymentStatus.Terminal() {
		return nil, ErrInvalidStatusTransition
	}

	if err := s.bookings.SetPaymentStatus(ctx, category, state.id, target); err != nil {
		return nil, err
	}

	switch b := record.(type) {
	case *domain.FlightBooking:
		b.PaymentStatus = target
	case *domain.HotelBooking:
		b.PaymentStatus = target
	case *domain.CabBooking:
		b.PaymentStatus = target
	}
	return record, nil
}

func isDuplicateKey(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	return false
}
