package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"tripdesk/internal/database"
	"tripdesk/internal/domain"
	"tripdesk/internal/pkg/validator"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/datatypes"
)

func main() {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		dsn = "tripdesk.db"
	}

	db, err := database.Connect(dsn)
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	log.Println("Running AutoMigrate...")
	if err := database.Migrate(db); err != nil {
		log.Fatal("AutoMigrate failed:", err)
	}

	// Cleanup old data (in safe order to avoid foreign key errors)
	log.Println("Cleaning old data...")
	db.Exec("DELETE FROM booking_references")
	db.Exec("DELETE FROM flight_bookings")
	db.Exec("DELETE FROM hotel_bookings")
	db.Exec("DELETE FROM cab_bookings")
	db.Exec("DELETE FROM flights")
	db.Exec("DELETE FROM airlines")
	db.Exec("DELETE FROM airports")
	db.Exec("DELETE FROM hotels")
	db.Exec("DELETE FROM bus_routes")
	db.Exec("DELETE FROM bus_operators")
	db.Exec("DELETE FROM train_routes")
	db.Exec("DELETE FROM holiday_packages")
	db.Exec("DELETE FROM users")

	// ================== USERS ==================
	log.Println("Creating demo user...")
	hash, _ := bcrypt.GenerateFromPassword([]byte("demo123"), bcrypt.DefaultCost)
	demo := domain.User{
		Email:        "demo@tripdesk.in",
		PasswordHash: string(hash),
		FirstName:    "Demo",
		LastName:     "Traveller",
		Phone:        "+91 98100 00000",
		IsVerified:   true,
	}
	db.Create(&demo)
	log.Println("Demo user: demo@tripdesk.in / demo123")

	// ================== AIRLINES & AIRPORTS ==================
	log.Println("Creating airlines and airports...")
	airlines := []domain.Airline{
		{Code: "6E", Name: "IndiGo", Country: "India", IsActive: true},
		{Code: "AI", Name: "Air India", Country: "India", IsActive: true},
		{Code: "UK", Name: "Vistara", Country: "India", IsActive: true},
		{Code: "SG", Name: "SpiceJet", Country: "India", IsActive: true},
	}
	for i := range airlines {
		db.Create(&airlines[i])
	}

	airports := []domain.Airport{
		{Code: "DEL", Name: "Indira Gandhi International Airport", City: "Delhi", Country: "India", Timezone: "Asia/Kolkata", IsActive: true},
		{Code: "BOM", Name: "Chhatrapati Shivaji Maharaj International Airport", City: "Mumbai", Country: "India", Timezone: "Asia/Kolkata", IsActive: true},
		{Code: "BLR", Name: "Kempegowda International Airport", City: "Bengaluru", Country: "India", Timezone: "Asia/Kolkata", IsActive: true},
		{Code: "MAA", Name: "Chennai International Airport", City: "Chennai", Country: "India", Timezone: "Asia/Kolkata", IsActive: true},
		{Code: "CCU", Name: "Netaji Subhas Chandra Bose International Airport", City: "Kolkata", Country: "India", Timezone: "Asia/Kolkata", IsActive: true},
		{Code: "GOI", Name: "Goa International Airport", City: "Goa", Country: "India", Timezone: "Asia/Kolkata", IsActive: true},
	}
	for i := range airports {
		db.Create(&airports[i])
	}

	// ================== FLIGHTS ==================
	log.Println("Creating flights...")
	day := time.Now().AddDate(0, 0, 7).Truncate(24 * time.Hour)
	routes := []struct {
		dep, arr int
		hour     int
		economy  float64
		business float64
	}{
		{0, 1, 6, 4299, 12999},
		{0, 1, 9, 4799, 13499},
		{0, 1, 18, 3999, 11999},
		{1, 0, 7, 4499, 12499},
		{0, 2, 8, 5299, 14999},
		{2, 1, 11, 3899, 10999},
		{1, 5, 10, 2999, 8999},
		{3, 4, 15, 4099, 11499},
	}
	for i, rt := range routes {
		dep := day.Add(time.Duration(rt.hour) * time.Hour)
		arr := dep.Add(2*time.Hour + 15*time.Minute)
		airline := airlines[i%len(airlines)]
		flight := domain.Flight{
			FlightNumber:       fmt.Sprintf("%s-%d", airline.Code, 200+i*17),
			AirlineID:          airline.ID,
			DepartureAirportID: airports[rt.dep].ID,
			ArrivalAirportID:   airports[rt.arr].ID,
			DepartureTime:      dep,
			ArrivalTime:        arr,
			Duration:           135,
			Aircraft:           "Airbus A320neo",
			EconomyPrice:       rt.economy,
			BusinessPrice:      rt.business,
			EconomySeats:       150,
			BusinessSeats:      12,
			IsActive:           true,
		}
		if errs := validator.Validate(flight); errs != nil {
			log.Fatalf("invalid seed flight %s: %v", flight.FlightNumber, errs)
		}
		db.Create(&flight)
	}

	// ================== HOTELS ==================
	log.Println("Creating hotels...")
	five, four, three := 5, 4, 3
	hotels := []domain.Hotel{
		{
			Name: "The Grand Palace", Description: "Heritage luxury in the heart of the capital.",
			Address: "1 Rajpath Marg", City: "Delhi", Country: "India",
			StarRating: &five, PricePerNight: 9500, TotalRooms: 220,
			CheckInTime: "14:00", CheckOutTime: "12:00",
			Amenities: datatypes.JSON([]byte(`["wifi","pool","spa","gym"]`)),
		},
		{
			Name: "Marine Drive Residency", Description: "Sea-facing rooms on the Queen's Necklace.",
			Address: "88 Marine Drive", City: "Mumbai", Country: "India",
			StarRating: &four, PricePerNight: 6200, TotalRooms: 140,
			CheckInTime: "13:00", CheckOutTime: "11:00",
			Amenities: datatypes.JSON([]byte(`["wifi","restaurant","bar"]`)),
		},
		{
			Name: "Garden City Suites", Description: "Business stays near the tech corridor.",
			Address: "12 MG Road", City: "Bengaluru", Country: "India",
			StarRating: &four, PricePerNight: 4800, TotalRooms: 90,
			Amenities: datatypes.JSON([]byte(`["wifi","gym","parking"]`)),
		},
		{
			Name: "Beachside Inn", Description: "Budget rooms a short walk from Baga beach.",
			Address: "Baga Road", City: "Goa", Country: "India",
			StarRating: &three, PricePerNight: 2000, TotalRooms: 35,
			Amenities: datatypes.JSON([]byte(`["wifi","breakfast"]`)),
		},
	}
	for i := range hotels {
		hotels[i].IsActive = true
		db.Create(&hotels[i])
	}

	// ================== BUS & TRAIN ROUTES ==================
	log.Println("Creating bus and train routes...")
	operator := domain.BusOperator{Name: "RedLine Travels", IsActive: true}
	db.Create(&operator)
	buses := []domain.BusRoute{
		{OperatorID: operator.ID, FromCity: "Delhi", ToCity: "Jaipur", DepartureTime: "22:30", ArrivalTime: "04:45", Duration: "6h 15m", BusType: "AC Sleeper", TotalSeats: 36, Price: 899, IsActive: true},
		{OperatorID: operator.ID, FromCity: "Mumbai", ToCity: "Pune", DepartureTime: "07:00", ArrivalTime: "10:30", Duration: "3h 30m", BusType: "AC Seater", TotalSeats: 45, Price: 450, IsActive: true},
		{OperatorID: operator.ID, FromCity: "Bengaluru", ToCity: "Chennai", DepartureTime: "23:00", ArrivalTime: "05:30", Duration: "6h 30m", BusType: "Volvo Multi-Axle", TotalSeats: 40, Price: 750, IsActive: true},
	}
	for i := range buses {
		db.Create(&buses[i])
	}

	trains := []domain.TrainRoute{
		{TrainNumber: "12951", TrainName: "Mumbai Rajdhani", FromStation: "Mumbai Central", ToStation: "New Delhi", DepartureTime: "17:00", ArrivalTime: "08:32", Duration: "15h 32m", SleeperPrice: 1855, ACPrice: 3245, IsActive: true},
		{TrainNumber: "12627", TrainName: "Karnataka Express", FromStation: "Bengaluru", ToStation: "New Delhi", DepartureTime: "19:20", ArrivalTime: "09:40", Duration: "38h 20m", SleeperPrice: 985, ACPrice: 2590, IsActive: true},
	}
	for i := range trains {
		db.Create(&trains[i])
	}

	// ================== HOLIDAY PACKAGES ==================
	log.Println("Creating holiday packages...")
	packages := []domain.HolidayPackage{
		{
			Title: "Goa Beach Getaway", Destination: "Goa", Duration: "4D/3N", PackageType: "domestic",
			Description: "Flights, beachside stay and north Goa sightseeing.",
			Inclusions:  datatypes.JSON([]byte(`["flights","hotel","breakfast","sightseeing"]`)),
			Price:       18999, OriginalPrice: 23999, Discount: 20, IsActive: true,
		},
		{
			Title: "Kerala Backwaters", Destination: "Alleppey", Duration: "5D/4N", PackageType: "domestic",
			Description: "Houseboat cruise with all meals included.",
			Inclusions:  datatypes.JSON([]byte(`["houseboat","meals","transfers"]`)),
			Price:       24999, OriginalPrice: 28999, Discount: 13, IsActive: true,
		},
		{
			Title: "Dubai City Break", Destination: "Dubai", Duration: "5D/4N", PackageType: "international",
			Description: "Desert safari, Burj Khalifa and marina cruise.",
			Inclusions:  datatypes.JSON([]byte(`["flights","hotel","visa","safari"]`)),
			Price:       56999, OriginalPrice: 64999, Discount: 12, IsActive: true,
		},
	}
	for i := range packages {
		db.Create(&packages[i])
	}

	// A couple of historical bookings so my-trips is not empty on first login.
	log.Println("Creating sample bookings...")
	var firstFlight domain.Flight
	db.First(&firstFlight)
	sampleRef := "MMT" + uuid.NewString()[:10]
	db.Create(&domain.BookingReference{Reference: sampleRef, Category: domain.CategoryFlight})
	db.Create(&domain.FlightBooking{
		BookingReference: sampleRef,
		UserID:           demo.ID,
		FlightID:         firstFlight.ID,
		Passengers:       datatypes.JSON([]byte(`[{"firstName":"Demo","lastName":"Traveller","age":30}]`)),
		Class:            domain.CabinEconomy,
		TotalAmount:      firstFlight.EconomyPrice,
		PaymentStatus:    domain.PaymentCompleted,
		BookingStatus:    domain.BookingConfirmed,
		TravelDate:       firstFlight.DepartureTime,
	})

	log.Println("Seed complete.")
}
