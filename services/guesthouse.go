package services

import (
	"fmt"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"guesthouse-manager/models"
	"guesthouse-manager/storage"
)

// Guesthouse is the shared in-memory state handle passed into every service:
// the property identity plus the room registry, reservation store and product
// catalog. All collections are insertion-ordered slices scanned linearly.
// A single mutex keeps availability checks and status mutations atomic.
type Guesthouse struct {
	mu sync.Mutex

	Property     models.Property
	Rooms        []*models.Room
	Reservations []*models.Reservation
	Products     []models.Product
}

func NewGuesthouse() *Guesthouse {
	return &Guesthouse{}
}

// ImportSnapshot replaces the whole in-memory state with the given record
// sets. Reservation room numbers are resolved against the loaded registry;
// a dangling reference is a data-integrity error and aborts the import.
func (gh *Guesthouse) ImportSnapshot(snap *storage.Snapshot) error {
	gh.mu.Lock()
	defer gh.mu.Unlock()

	reservations := make([]*models.Reservation, 0, len(snap.Reservations))
	for _, rec := range snap.Reservations {
		room := findRoom(snap.Rooms, rec.RoomNumber)
		if room == nil {
			return fmt.Errorf("reservation for %q references unknown room %d: %w",
				rec.Guest, rec.RoomNumber, ErrRoomNotFound)
		}
		reservations = append(reservations, &models.Reservation{
			ReferenceCode: uuid.NewString(),
			Guest:         rec.Guest,
			Start:         rec.Start,
			End:           rec.End,
			Status:        rec.Status,
			Room:          room,
		})
	}

	gh.Property = snap.Property
	gh.Rooms = snap.Rooms
	gh.Reservations = reservations
	gh.Products = snap.Products
	return nil
}

// ExportSnapshot produces the persistable record sets from current state.
// Cancelled and checked-out reservations are omitted: completed history is
// archived by omission, never written back to the snapshot.
func (gh *Guesthouse) ExportSnapshot() *storage.Snapshot {
	gh.mu.Lock()
	defer gh.mu.Unlock()

	snap := &storage.Snapshot{
		Property: gh.Property,
		Rooms:    gh.Rooms,
		Products: gh.Products,
	}
	for _, res := range gh.Reservations {
		if res.Status == models.StatusCancelled || res.Status == models.StatusCheckedOut {
			continue
		}
		snap.Reservations = append(snap.Reservations, storage.ReservationRecord{
			Guest:      res.Guest,
			Start:      res.Start,
			End:        res.End,
			Status:     res.Status,
			RoomNumber: res.Room.Number,
		})
	}
	return snap
}

// unlocked helpers shared by the services; callers hold gh.mu.

func findRoom(rooms []*models.Room, number int) *models.Room {
	for _, room := range rooms {
		if room.Number == number {
			return room
		}
	}
	return nil
}

func (gh *Guesthouse) findRoomLocked(number int) *models.Room {
	return findRoom(gh.Rooms, number)
}

func (gh *Guesthouse) findProductLocked(code int) *models.Product {
	for i := range gh.Products {
		if gh.Products[i].Code == code {
			return &gh.Products[i]
		}
	}
	return nil
}

// consumptionValueLocked sums catalog prices over the room ledger. A ledger
// code missing from the catalog is surfaced, never defaulted to zero.
func (gh *Guesthouse) consumptionValueLocked(room *models.Room) (decimal.Decimal, error) {
	total := decimal.Zero
	for _, code := range room.Consumption {
		product := gh.findProductLocked(code)
		if product == nil {
			return decimal.Zero, fmt.Errorf("ledger of room %d references product %d: %w",
				room.Number, code, ErrProductNotFound)
		}
		total = total.Add(product.Price)
	}
	return total, nil
}

func guestMatches(res *models.Reservation, guest string) bool {
	return strings.EqualFold(res.Guest, guest)
}
