// Package validator wraps go-playground struct validation and registers the
// cross-field travel rules that field tags alone cannot express.
package validator

import (
	"github.com/go-playground/validator/v10"

	"tripdesk/internal/domain"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
	validate.RegisterStructValidation(flightSchedule, domain.Flight{})
}

// flightSchedule: a flight must land after it takes off, and a sellable cabin
// must have a positive fare.
func flightSchedule(sl validator.StructLevel) {
	f := sl.Current().Interface().(domain.Flight)

	if !f.ArrivalTime.After(f.DepartureTime) {
		sl.ReportError(f.ArrivalTime, "ArrivalTime", "arrivalTime", "afterdeparture", "")
	}
	if f.EconomySeats > 0 && f.EconomyPrice <= 0 {
		sl.ReportError(f.EconomyPrice, "EconomyPrice", "economyPrice", "pricedcabin", "")
	}
	if f.BusinessSeats > 0 && f.BusinessPrice <= 0 {
		sl.ReportError(f.BusinessPrice, "BusinessPrice", "businessPrice", "pricedcabin", "")
	}
}

// Validate returns nil when the value passes, otherwise a field → failed-rule
// map.
func Validate(v any) map[string]string {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	errs := make(map[string]string)
	for _, fe := range err.(validator.ValidationErrors) {
		errs[fe.Field()] = fe.Tag()
	}
	return errs
}
