package booking

import "tripdesk/internal/domain"

type Passenger struct {
	FirstName string `json:"firstName" binding:"required"`
	LastName  string `json:"lastName"`
	Age       int    `json:"age"`
	Gender    string `json:"gender"`
}

type BookFlightRequest struct {
	FlightID   int64       `json:"flightId" binding:"required"`
	Passengers []Passenger `json:"passengers" binding:"required,min=1,dive"`
	Class      string      `json:"class" binding:"required,oneof=economy business"`
	TravelDate string      `json:"travelDate" binding:"required"`
}

type BookHotelRequest struct {
	HotelID         int64  `json:"hotelId" binding:"required"`
	CheckIn         string `json:"checkIn" binding:"required"`
	CheckOut        string `json:"checkOut" binding:"required"`
	// zero values fall back to 1 in the service
	Rooms           int    `json:"rooms"`
	Guests          int    `json:"guests"`
	SpecialRequests string `json:"specialRequests"`
}

type BookCabRequest struct {
	TripType     string `json:"tripType" binding:"required,oneof=outstation local"`
	FromLocation string `json:"fromLocation" binding:"required"`
	ToLocation   string `json:"toLocation"`
	PickupDate   string `json:"pickupDate" binding:"required"`
	ReturnDate   string `json:"returnDate"`
	CabType      string `json:"cabType"`
}

type PaymentRequest struct {
	Status string `json:"status" binding:"required,oneof=completed failed"`
}

type BookingResponse struct {
	Message string `json:"message"`
	Booking any    `json:"booking"`
}

// TripsResponse groups a user's bookings per category; each list is ordered
// by descending booking date. Callers merge the lists if they want a single
// timeline.
type TripsResponse struct {
	Flights []domain.FlightBooking `json:"flights"`
	Hotels  []domain.HotelBooking  `json:"hotels"`
	Cabs    []domain.CabBooking    `json:"cabs"`
}
