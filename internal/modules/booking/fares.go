package booking

import (
	"time"

	"tripdesk/internal/domain"
)

// Cab fares are computed server-side from a fixed per-day rate table; the
// amount in the request body is never trusted.
var cabDayRates = map[string]float64{
	"mini":   1500,
	"sedan":  2200,
	"suv":    3200,
	"luxury": 5500,
}

const defaultCabType = "sedan"

func cabFare(tripType domain.TripType, cabType string, pickup time.Time, ret *time.Time) float64 {
	rate, ok := cabDayRates[cabType]
	if !ok {
		rate = cabDayRates[defaultCabType]
	}

	days := 1
	if tripType == domain.TripOutstation && ret != nil && ret.After(pickup) {
		days = int(ret.Sub(pickup).Hours()/24) + 1
	}

	return rate * float64(days)
}
