package service

import (
	"time"

	"github.com/anyulbade/park-booking-service/internal/model"
	"github.com/anyulbade/park-booking-service/internal/pricing"
)

func toPricingPerson(p model.BookingPerson, start, end time.Time) pricing.Person {
	return pricing.Person{
		DateOfBirth: p.DateOfBirth,
		Nationality: p.Nationality,
		Residence:   p.Residence,
		StartDate:   start,
		EndDate:     end,
	}
}

func toPricingVehicle(v model.BookingVehicle) pricing.Vehicle {
	return pricing.Vehicle{
		Type:                pricing.VehicleType(v.VehicleType),
		RegistrationCountry: v.RegistrationCountry,
		Count:               v.VehiclesCount,
	}
}

func toPricingRates(rates []model.ActivityRate) []pricing.ActivityRate {
	out := make([]pricing.ActivityRate, len(rates))
	for i, r := range rates {
		out[i] = pricing.ActivityRate{
			AgeRange:  pricing.AgeRange(r.AgeRange),
			AmountUSD: r.AmountUSD,
			AmountRWF: r.AmountRWF,
		}
	}
	return out
}

func toPricingActivity(a model.BookingActivity, rates []model.ActivityRate) pricing.BookingActivity {
	var defaultRate float64
	if a.DefaultRate != nil {
		defaultRate = *a.DefaultRate
	}
	return pricing.BookingActivity{
		Rates:            toPricingRates(rates),
		DefaultRate:      defaultRate,
		NumberOfAdults:   a.NumberOfAdults,
		NumberOfChildren: a.NumberOfChildren,
		NumberOfSeats:    a.NumberOfSeats,
	}
}
