// Package pricing computes park entry, stay, vehicle and activity fees from
// booking records and static rate tables. Every function is pure: malformed
// input degrades to a zero amount or to the most expensive category, never
// to an error.
package pricing

import (
	"math"
	"time"
)

const (
	freeUnderAge = 6
	adultFromAge = 13
)

type VehicleType string

const (
	VehicleTypeBus     VehicleType = "omnibus/bus/overlander"
	VehicleTypeMinibus VehicleType = "vehicle/minibus"
)

// Person is a visitor on a booking together with the booking's stay dates.
type Person struct {
	DateOfBirth time.Time
	Nationality string
	Residence   string
	StartDate   time.Time
	EndDate     time.Time
}

type Vehicle struct {
	Type                VehicleType
	RegistrationCountry string
	Count               int
}

type Engine struct {
	tables Tables
}

// NewEngine returns an engine pricing against t. The caller must not modify
// t afterwards.
func NewEngine(t Tables) *Engine {
	return &Engine{tables: t}
}

var std = NewEngine(DefaultTables())

// Default returns the engine backed by the built-in tables.
func Default() *Engine {
	return std
}

func (e *Engine) Tables() Tables {
	return e.tables
}

// Category resolves the stay price category. Nationality is checked before
// residence, so an EAC national is always a citizen.
func Category(nationality, residence string) PriceCategory {
	switch {
	case InEAC(nationality):
		return CategoryEACCitizen
	case InEAC(residence):
		return CategoryEACResident
	case InAfrica(nationality):
		return CategoryPanAfrican
	default:
		return CategoryInternational
	}
}

// tierIndex maps a stay length to its bucket. Anything that is not 1 or 2
// nights, including zero and negative counts, is billed as 3+.
func tierIndex(nights int) int {
	switch nights {
	case 1:
		return 0
	case 2:
		return 1
	default:
		return 2
	}
}

func (e *Engine) stayFee(c PriceCategory) StayFee {
	if fee, ok := e.tables.Stay[c]; ok {
		return fee
	}
	return e.tables.Stay[CategoryInternational]
}

// BookingPersonPrice is the USD stay fee for one person on a booking.
func (e *Engine) BookingPersonPrice(p Person, now time.Time) float64 {
	age := Age(p.DateOfBirth, now)
	if age < freeUnderAge {
		return 0
	}

	fee := e.stayFee(Category(p.Nationality, p.Residence))
	tiers := fee.Adults
	if age < adultFromAge {
		tiers = fee.Children
	}
	return tiers[tierIndex(Nights(p.StartDate, p.EndDate))]
}

// EntryPrice is the USD park entry fee for one person. It uses nationality
// only and, unlike BookingPersonPrice, ignores the stay length.
func (e *Engine) EntryPrice(p Person, now time.Time) float64 {
	age := Age(p.DateOfBirth, now)
	if age < freeUnderAge {
		return 0
	}

	var fee EntryFee
	switch {
	case InEAC(p.Nationality):
		fee = e.tables.Entry.EAC
	case InAfrica(p.Nationality):
		fee = e.tables.Entry.African
	default:
		return e.tables.Entry.International
	}
	if age >= adultFromAge {
		return fee.Adult
	}
	return fee.Child
}

// VehiclePrice is the USD entry fee for v.Count vehicles of one type.
func (e *Engine) VehiclePrice(v Vehicle) float64 {
	var unit float64
	if InEAC(v.RegistrationCountry) {
		unit = e.tables.Vehicle.EACOther
		if v.Type == VehicleTypeBus {
			unit = e.tables.Vehicle.EACBus
		}
	} else {
		unit = e.tables.Vehicle.ForeignOther
		if v.Type == VehicleTypeMinibus {
			unit = e.tables.Vehicle.ForeignMinibus
		}
	}
	return unit * float64(v.Count)
}

func (e *Engine) BehindTheScenesPrice(adults, children int) float64 {
	return float64(adults)*e.tables.BehindTheScenes.Adult +
		float64(children)*e.tables.BehindTheScenes.Child
}

func BookingPersonPrice(p Person, now time.Time) float64 {
	return std.BookingPersonPrice(p, now)
}

func EntryPrice(p Person, now time.Time) float64 {
	return std.EntryPrice(p, now)
}

func VehiclePrice(v Vehicle) float64 {
	return std.VehiclePrice(v)
}

func BehindTheScenesPrice(adults, children int) float64 {
	return std.BehindTheScenesPrice(adults, children)
}

// ToRWF mirrors a USD amount into whole Rwandan francs.
func ToRWF(usd, usdToRWF float64) float64 {
	return math.Round(usd * usdToRWF)
}
