package services

import (
	"time"

	"github.com/google/uuid"

	"guesthouse-manager/models"
)

// ReservationFilter carries the optional criteria of a reservation query.
// Zero-valued fields are ignored; guest names match case-insensitively.
type ReservationFilter struct {
	Guest      string
	Start      *time.Time
	End        *time.Time
	RoomNumber int
}

// IsZero reports whether no criterion is set at all. An all-empty filter is
// rejected rather than matched against every record ("no criteria, no match").
func (f ReservationFilter) IsZero() bool {
	return f.Guest == "" && f.Start == nil && f.End == nil && f.RoomNumber == 0
}

func (f ReservationFilter) matches(res *models.Reservation) bool {
	if f.Guest != "" && !guestMatches(res, f.Guest) {
		return false
	}
	if f.Start != nil && !f.Start.Equal(res.Start) {
		return false
	}
	if f.End != nil && !f.End.Equal(res.End) {
		return false
	}
	if f.RoomNumber != 0 && f.RoomNumber != res.Room.Number {
		return false
	}
	return true
}

// ReservationService runs the reservation store: availability checks,
// filtered queries and the lifecycle transitions.
type ReservationService struct {
	GH *Guesthouse
}

func NewReservationService(gh *Guesthouse) *ReservationService {
	return &ReservationService{GH: gh}
}

// Query returns the reservations in the given status matching the filter,
// in insertion order. An empty filter yields ErrEmptyFilter and no matches
// yield ErrNoReservations; a successful call never returns an empty slice.
func (s *ReservationService) Query(f ReservationFilter, status models.ReservationStatus) ([]*models.Reservation, error) {
	if f.IsZero() {
		return nil, ErrEmptyFilter
	}

	s.GH.mu.Lock()
	defer s.GH.mu.Unlock()

	matches := s.queryLocked(f, status)
	if len(matches) == 0 {
		return nil, ErrNoReservations
	}
	return matches, nil
}

func (s *ReservationService) queryLocked(f ReservationFilter, status models.ReservationStatus) []*models.Reservation {
	var matches []*models.Reservation
	for _, res := range s.GH.Reservations {
		if res.Status == status && f.matches(res) {
			matches = append(matches, res)
		}
	}
	return matches
}

// IsAvailable reports whether the room is free over the inclusive date range.
// Two ranges conflict iff existing.Start <= end && start <= existing.End and
// the existing reservation still occupies the room (Active or Checked-In).
func (s *ReservationService) IsAvailable(roomNumber int, start, end time.Time) (bool, error) {
	s.GH.mu.Lock()
	defer s.GH.mu.Unlock()

	room := s.GH.findRoomLocked(roomNumber)
	if room == nil {
		return false, ErrRoomNotFound
	}
	return s.isAvailableLocked(room, start, end), nil
}

func (s *ReservationService) isAvailableLocked(room *models.Room, start, end time.Time) bool {
	for _, res := range s.GH.Reservations {
		if res.Room != room || !res.Status.Live() {
			continue
		}
		if !res.Start.After(end) && !start.After(res.End) {
			return false
		}
	}
	return true
}

// MakeReservation creates a new Active reservation for the guest. The room
// must exist and be free over the range, and the guest must not already hold
// an Active or Checked-In reservation (one active booking per guest).
func (s *ReservationService) MakeReservation(guest string, start, end time.Time, roomNumber int) (*models.Reservation, error) {
	if end.Before(start) {
		return nil, ErrInvalidPeriod
	}

	s.GH.mu.Lock()
	defer s.GH.mu.Unlock()

	room := s.GH.findRoomLocked(roomNumber)
	if room == nil {
		return nil, ErrRoomNotFound
	}
	for _, res := range s.GH.Reservations {
		if res.Status.Live() && guestMatches(res, guest) {
			return nil, ErrGuestHasActiveStay
		}
	}
	if !s.isAvailableLocked(room, start, end) {
		return nil, ErrRoomUnavailable
	}

	res := &models.Reservation{
		ReferenceCode: uuid.NewString(),
		Guest:         guest,
		Start:         start,
		End:           end,
		Status:        models.StatusActive,
		Room:          room,
	}
	s.GH.Reservations = append(s.GH.Reservations, res)
	return res, nil
}

// Cancel voids every Active reservation held by the guest and returns how
// many were cancelled. With creation enforcing one active booking per guest
// that is normally a single record; the loop also sweeps up duplicates from
// older snapshots.
func (s *ReservationService) Cancel(guest string) (int, error) {
	s.GH.mu.Lock()
	defer s.GH.mu.Unlock()

	matches := s.queryLocked(ReservationFilter{Guest: guest}, models.StatusActive)
	if len(matches) == 0 {
		return 0, ErrNoActiveReservation
	}
	for _, res := range matches {
		res.Status = models.StatusCancelled
	}
	return len(matches), nil
}

// CheckIn moves the guest's Active reservations to Checked-In and returns
// them for the arrival summary.
func (s *ReservationService) CheckIn(guest string) ([]*models.Reservation, error) {
	s.GH.mu.Lock()
	defer s.GH.mu.Unlock()

	matches := s.queryLocked(ReservationFilter{Guest: guest}, models.StatusActive)
	if len(matches) == 0 {
		return nil, ErrNoActiveReservation
	}
	for _, res := range matches {
		res.Status = models.StatusCheckedIn
	}
	return matches, nil
}

// CheckOut completes the guest's Checked-In reservations: a billing statement
// is produced for each, the status moves to Checked-Out and the room ledger
// is cleared. Statements are built before any mutation so a ledger integrity
// error leaves the store untouched.
func (s *ReservationService) CheckOut(guest string) ([]Statement, error) {
	s.GH.mu.Lock()
	defer s.GH.mu.Unlock()

	matches := s.queryLocked(ReservationFilter{Guest: guest}, models.StatusCheckedIn)
	if len(matches) == 0 {
		return nil, ErrNoCheckedInReservation
	}

	statements := make([]Statement, 0, len(matches))
	for _, res := range matches {
		stmt, err := buildStatement(s.GH, res)
		if err != nil {
			return nil, err
		}
		statements = append(statements, stmt)
	}

	for _, res := range matches {
		res.Status = models.StatusCheckedOut
		res.Room.Consumption = nil
	}
	return statements, nil
}
