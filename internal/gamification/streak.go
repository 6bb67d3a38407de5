package gamification

import "time"

// Streak returns the new consecutive-day count after an entry made at now.
// Days are compared as calendar dates in now's location, so two entries
// 23 hours apart on different dates are consecutive.
func Streak(last *time.Time, previous int, now time.Time) int {
	if last == nil {
		return 1
	}
	switch daysBetween(last.In(now.Location()), now) {
	case 0:
		return previous
	case 1:
		return previous + 1
	default:
		return 1
	}
}

func daysBetween(a, b time.Time) int {
	da := time.Date(a.Year(), a.Month(), a.Day(), 0, 0, 0, 0, time.UTC)
	db := time.Date(b.Year(), b.Month(), b.Day(), 0, 0, 0, 0, time.UTC)
	return int(db.Sub(da).Hours() / 24)
}
