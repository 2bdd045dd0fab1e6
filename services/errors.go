package services

import "errors"

// Sentinel errors returned by the services. Callers branch with errors.Is;
// the menu layer maps them to user-facing messages.
var (
	// not found
	ErrRoomNotFound    = errors.New("room_not_found")
	ErrProductNotFound = errors.New("product_not_found")
	ErrNoReservations  = errors.New("no_reservations_found")

	// conflict
	ErrRoomUnavailable    = errors.New("room_unavailable")
	ErrGuestHasActiveStay = errors.New("guest_already_has_reservation")

	// lifecycle
	ErrNoActiveReservation    = errors.New("no_active_reservation")
	ErrNoCheckedInReservation = errors.New("no_checked_in_reservation")

	// validation / integrity
	ErrInvalidQuantity = errors.New("invalid_quantity")
	ErrInvalidPeriod   = errors.New("invalid_period")
	ErrEmptyFilter     = errors.New("empty_filter")
)
