package validator

import (
	"testing"
	"time"

	"tripdesk/internal/domain"

	"github.com/stretchr/testify/assert"
)

func validFlight() domain.Flight {
	dep := time.Date(2026, 9, 15, 6, 0, 0, 0, time.UTC)
	return domain.Flight{
		FlightNumber:  "6E-234",
		DepartureTime: dep,
		ArrivalTime:   dep.Add(2 * time.Hour),
		EconomyPrice:  4300,
		EconomySeats:  150,
		BusinessPrice: 12999,
		BusinessSeats: 12,
	}
}

func TestValidate_FlightPasses(t *testing.T) {
	assert.Nil(t, Validate(validFlight()))
}

func TestValidate_ArrivalMustFollowDeparture(t *testing.T) {
	f := validFlight()
	f.ArrivalTime = f.DepartureTime.Add(-time.Hour)

	errs := Validate(f)
	assert.Equal(t, "afterdeparture", errs["ArrivalTime"])
}

func TestValidate_SellableCabinNeedsFare(t *testing.T) {
	f := validFlight()
	f.BusinessPrice = 0

	errs := Validate(f)
	assert.Equal(t, "pricedcabin", errs["BusinessPrice"])

	f = validFlight()
	f.BusinessSeats = 0
	f.BusinessPrice = 0
	assert.Nil(t, Validate(f), "an unsold cabin needs no fare")
}

func TestValidate_MissingFlightNumber(t *testing.T) {
	f := validFlight()
	f.FlightNumber = ""

	errs := Validate(f)
	assert.Equal(t, "required", errs["FlightNumber"])
}
