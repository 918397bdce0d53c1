package pricing

import "time"

// Age returns the whole calendar years between dob and now. A dob after now
// gives a negative age, truncated toward zero.
func Age(dob, now time.Time) int {
	if dob.After(now) {
		return -Age(now, dob)
	}
	years := now.Year() - dob.Year()
	if now.Month() < dob.Month() || (now.Month() == dob.Month() && now.Day() < dob.Day()) {
		years--
	}
	return years
}

// Nights returns end minus start in whole days. Reversed dates give a
// negative count.
func Nights(start, end time.Time) int {
	s := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, time.UTC)
	e := time.Date(end.Year(), end.Month(), end.Day(), 0, 0, 0, 0, time.UTC)
	return int(e.Sub(s).Hours() / 24)
}
