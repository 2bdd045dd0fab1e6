package storage

import (
	"time"

	"guesthouse-manager/models"
)

// ReservationRecord is the flat persisted form of a reservation. Rooms are
// referenced by number; the core resolves them against the registry on import.
type ReservationRecord struct {
	Guest      string
	Start      time.Time
	End        time.Time
	Status     models.ReservationStatus
	RoomNumber int
}

// Snapshot carries the full persisted state as flat record sets. The core
// never touches files directly; it imports/exports snapshots through a Store.
type Snapshot struct {
	Property     models.Property
	Rooms        []*models.Room
	Reservations []ReservationRecord
	Products     []models.Product
}

// Store is the persistence port. Load and Save are all-or-nothing batch
// operations triggered by the operator, not by individual mutations.
type Store interface {
	Load() (*Snapshot, error)
	Save(*Snapshot) error
}
