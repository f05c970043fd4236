package expiry

import (
	"math"
	"time"
)

// Status is the derived freshness of an inventory item. It is recomputed
// from dates on every read and never stored, so a row flips to expired on
// its own as time passes.
type Status string

const (
	StatusFresh        Status = "fresh"
	StatusExpiringSoon Status = "expiringSoon"
	StatusExpired      Status = "expired"
)

// statusPriority orders statuses most-urgent first for sorting.
func statusPriority(s Status) int {
	switch s {
	case StatusExpired:
		return 0
	case StatusExpiringSoon:
		return 1
	default:
		return 2
	}
}

func midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func daysBetween(from, to time.Time) int {
	diff := midnight(to).Sub(midnight(from))
	return int(math.Ceil(diff.Hours() / 24))
}

// DaysUntilExpiry counts calendar days from now's midnight to the expiry
// date's midnight: positive in the future, negative once past, nil when no
// expiry date is set.
func DaysUntilExpiry(now time.Time, expiryDate *time.Time) *int {
	if expiryDate == nil {
		return nil
	}
	d := daysBetween(now, *expiryDate)
	return &d
}

// ShelfLifeDays counts calendar days from purchase to expiry, nil when no
// expiry date is set.
func ShelfLifeDays(purchaseDate time.Time, expiryDate *time.Time) *int {
	if expiryDate == nil {
		return nil
	}
	d := daysBetween(purchaseDate, *expiryDate)
	return &d
}

// Classify maps the two day counts onto a freshness status. No expiry date
// means fresh. Past expiry means expired. Otherwise the item is expiring
// soon within the last 20% of its shelf life, with a floor of 2 days.
func Classify(daysUntilExpiry, shelfLifeDays *int) Status {
	if daysUntilExpiry == nil {
		return StatusFresh
	}
	if *daysUntilExpiry < 0 {
		return StatusExpired
	}
	threshold := 2
	if shelfLifeDays != nil {
		if t := int(math.Ceil(0.2 * float64(*shelfLifeDays))); t > threshold {
			threshold = t
		}
	}
	if *daysUntilExpiry <= threshold {
		return StatusExpiringSoon
	}
	return StatusFresh
}
