package service

import "time"

// NextDailyRun returns the first moment strictly after now that falls on
// hour:minute in now's location. A time that has already passed today rolls
// over to tomorrow.
func NextDailyRun(now time.Time, hour, minute int) time.Time {
	next := time.Date(now.Year(), now.Month(), now.Day(), hour, minute, 0, 0, now.Location())
	if !next.After(now) {
		next = next.AddDate(0, 0, 1)
	}
	return next
}
