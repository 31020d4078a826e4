package helper

import "time"

// Daterange returns the calendar dates in [start, end), exclusive of end.
// Zero dates are returned when end <= start.
// Times of day on the inputs are ignored; output dates are midnight UTC.
func Daterange(start, end time.Time) []time.Time {
	start = truncateToDay(start)
	end = truncateToDay(end)
	var dates []time.Time
	for d := start; d.Before(end); d = d.AddDate(0, 0, 1) {
		dates = append(dates, d)
	}
	return dates
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
