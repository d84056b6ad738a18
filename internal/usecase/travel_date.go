package usecase

import (
	"time"

	"safarsaga-backend/pkg/apperr"
)

const travelDateLayout = "2006-01-02"

var (
	ErrMalformedDate   = apperr.Validation("travel date must be a valid date in YYYY-MM-DD format")
	ErrPastDate        = apperr.Validation("travel date must be in the future")
	ErrHorizonExceeded = apperr.Validation("travel date cannot be more than 2 years from today")
)

// ValidateTravelDate checks a raw travel date against the booking policy:
// well-formed, strictly after now's calendar day, and at most maxHorizonDays
// ahead. The caller supplies now, so the check is deterministic.
func ValidateTravelDate(raw string, now time.Time, maxHorizonDays int) (time.Time, error) {
	date, err := time.Parse(travelDateLayout, raw)
	if err != nil {
		return time.Time{}, ErrMalformedDate
	}

	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	// Same-day travel counts as past: the date must be strictly in the future.
	if !date.After(today) {
		return time.Time{}, ErrPastDate
	}

	horizon := today.AddDate(0, 0, maxHorizonDays)
	if date.After(horizon) {
		return time.Time{}, ErrHorizonExceeded
	}

	return date, nil
}
