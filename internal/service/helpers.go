package service

import "time"

// cutoffDays returns the UTC instant marking the start of a rolling window of
// the given number of days. Zero or negative days return the zero time.
func cutoffDays(days int) time.Time {
	if days <= 0 {
		return time.Time{}
	}
	return time.Now().UTC().AddDate(0, 0, -days)
}
