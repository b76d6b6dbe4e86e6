package models

import "time"

// DateLayout is the wire and storage format for calendar days
const DateLayout = "2006-01-02"

// Day truncates t to midnight UTC of its calendar date
func Day(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// ParseDay parses a YYYY-MM-DD string into a UTC calendar day
func ParseDay(s string) (time.Time, error) {
	return time.ParseInLocation(DateLayout, s, time.UTC)
}

// NightsBetween returns the number of whole nights in [checkIn, checkOut)
func NightsBetween(checkIn, checkOut time.Time) int {
	return int(Day(checkOut).Sub(Day(checkIn)).Hours() / 24)
}

// EachNight calls fn for every day in [checkIn, checkOut) until fn returns false
func EachNight(checkIn, checkOut time.Time, fn func(day time.Time) bool) {
	end := Day(checkOut)
	for d := Day(checkIn); d.Before(end); d = d.AddDate(0, 0, 1) {
		if !fn(d) {
			return
		}
	}
}
