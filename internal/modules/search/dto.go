package search

// FlightSearchQuery carries the raw query parameters of
// GET /api/flights/search. Passengers and Class do not filter results; they
// only select which fare the caller displays.
type FlightSearchQuery struct {
	From          string `form:"from"`
	To            string `form:"to"`
	DepartureDate string `form:"departureDate"`
	ReturnDate    string `form:"returnDate"`
	Passengers    int    `form:"passengers,default=1"`
	Class         string `form:"class,default=economy"`
}

type HotelSearchQuery struct {
	City     string `form:"city"`
	CheckIn  string `form:"checkIn"`
	CheckOut string `form:"checkOut"`
	Rooms    int    `form:"rooms,default=1"`
	Guests   int    `form:"guests,default=1"`
}
