package models

import (
	"fmt"
	"time"
)

// DateLayout is the textual date format used in snapshots and at the prompt,
// matching prior snapshot files (day-month-year).
const DateLayout = "02-01-2006"

// ReservationStatus is the lifecycle state of a reservation, stored on disk
// as a single-letter code.
type ReservationStatus int

const (
	StatusActive ReservationStatus = iota
	StatusCheckedIn
	StatusCheckedOut
	StatusCancelled
)

func (s ReservationStatus) String() string {
	switch s {
	case StatusActive:
		return "Active"
	case StatusCheckedIn:
		return "Checked-In"
	case StatusCheckedOut:
		return "Checked-Out"
	case StatusCancelled:
		return "Cancelled"
	}
	return "Unknown"
}

// Code returns the snapshot wire code (A/I/O/C).
func (s ReservationStatus) Code() string {
	switch s {
	case StatusActive:
		return "A"
	case StatusCheckedIn:
		return "I"
	case StatusCheckedOut:
		return "O"
	case StatusCancelled:
		return "C"
	}
	return "?"
}

func ParseReservationStatus(code string) (ReservationStatus, error) {
	switch code {
	case "A":
		return StatusActive, nil
	case "I":
		return StatusCheckedIn, nil
	case "O":
		return StatusCheckedOut, nil
	case "C":
		return StatusCancelled, nil
	}
	return 0, fmt.Errorf("unknown reservation status code %q", code)
}

// Live reports whether the reservation still occupies its room for
// availability purposes.
func (s ReservationStatus) Live() bool {
	return s == StatusActive || s == StatusCheckedIn
}

// Reservation binds one guest to one room over an inclusive date range.
// ReferenceCode is assigned in memory and is not part of the snapshot format.
type Reservation struct {
	ReferenceCode string
	Guest         string
	Start         time.Time
	End           time.Time
	Status        ReservationStatus
	Room          *Room
}
