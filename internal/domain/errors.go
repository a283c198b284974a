package domain

import "errors"

var (
	ErrEventNotFound       = errors.New("event not found")
	ErrEntryNotFound       = errors.New("guest list entry not found")
	ErrReservationNotFound = errors.New("reservation not found")
	ErrSessionNotFound     = errors.New("enrollment session not found")
	ErrSettingsNotFound    = errors.New("admin settings not found")
)

var (
	ErrInvalidPhone          = errors.New("invalid phone number")
	ErrInvalidCode           = errors.New("invalid verification code")
	ErrReservationNotPending = errors.New("reservation is not in pending status")
)

var (
	ErrValidation = errors.New("validation error")
)
