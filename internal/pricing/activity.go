package pricing

// ActivityRate is one row of an activity's rate list.
type ActivityRate struct {
	AgeRange  AgeRange
	AmountUSD float64
	AmountRWF *float64
}

// BookingActivity is an activity selected on a booking. A non-zero
// DefaultRate is a flat total that replaces the per-head computation.
type BookingActivity struct {
	Rates            []ActivityRate
	DefaultRate      float64
	NumberOfAdults   int
	NumberOfChildren int
	NumberOfSeats    int
}

func (a BookingActivity) empty() bool {
	return a.NumberOfAdults == 0 && a.NumberOfChildren == 0 &&
		a.DefaultRate == 0 && a.NumberOfSeats == 0
}

// RateFor returns the USD amount of the first rate row for r.
func RateFor(rates []ActivityRate, r AgeRange) (float64, bool) {
	row, ok := findRate(rates, r)
	if !ok {
		return 0, false
	}
	return row.AmountUSD, true
}

func findRate(rates []ActivityRate, r AgeRange) (ActivityRate, bool) {
	for _, rate := range rates {
		if rate.AgeRange == r {
			return rate, true
		}
	}
	return ActivityRate{}, false
}

// ActivityPrice is the USD price of a booked activity. An age range without a
// rate row contributes nothing.
func ActivityPrice(a BookingActivity) float64 {
	if a.empty() {
		return 0
	}
	if a.DefaultRate != 0 {
		return a.DefaultRate
	}

	adultRate, _ := RateFor(a.Rates, AgeRangeAdults)
	childRate, _ := RateFor(a.Rates, AgeRangeChildren)
	return float64(a.NumberOfAdults)*adultRate + float64(a.NumberOfChildren)*childRate
}

// ActivityPriceRWF prices a in RWF. Rate rows carrying their own RWF amount
// use it; everything else is mirrored from USD with usdToRWF.
func ActivityPriceRWF(a BookingActivity, usdToRWF float64) float64 {
	if a.empty() {
		return 0
	}
	if a.DefaultRate != 0 {
		return ToRWF(a.DefaultRate, usdToRWF)
	}

	return float64(a.NumberOfAdults)*rateRWF(a.Rates, AgeRangeAdults, usdToRWF) +
		float64(a.NumberOfChildren)*rateRWF(a.Rates, AgeRangeChildren, usdToRWF)
}

func rateRWF(rates []ActivityRate, r AgeRange, usdToRWF float64) float64 {
	row, ok := findRate(rates, r)
	if !ok {
		return 0
	}
	if row.AmountRWF != nil {
		return *row.AmountRWF
	}
	return ToRWF(row.AmountUSD, usdToRWF)
}
