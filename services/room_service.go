package services

import (
	"github.com/shopspring/decimal"

	"guesthouse-manager/models"
)

// RoomService covers the room registry and the per-room consumption ledger.
type RoomService struct {
	GH *Guesthouse
}

func NewRoomService(gh *Guesthouse) *RoomService {
	return &RoomService{GH: gh}
}

func (s *RoomService) Find(number int) (*models.Room, error) {
	s.GH.mu.Lock()
	defer s.GH.mu.Unlock()

	room := s.GH.findRoomLocked(number)
	if room == nil {
		return nil, ErrRoomNotFound
	}
	return room, nil
}

// RecordConsumption appends qty units of the product to the ledger of the
// room the guest is checked into. Consumption can only accrue during a stay.
func (s *RoomService) RecordConsumption(guest string, productCode, qty int) (models.Product, error) {
	if qty <= 0 {
		return models.Product{}, ErrInvalidQuantity
	}

	s.GH.mu.Lock()
	defer s.GH.mu.Unlock()

	product := s.GH.findProductLocked(productCode)
	if product == nil {
		return models.Product{}, ErrProductNotFound
	}

	var room *models.Room
	for _, res := range s.GH.Reservations {
		if res.Status == models.StatusCheckedIn && guestMatches(res, guest) {
			room = res.Room
			break
		}
	}
	if room == nil {
		return models.Product{}, ErrNoCheckedInReservation
	}

	for i := 0; i < qty; i++ {
		room.Consumption = append(room.Consumption, productCode)
	}
	return *product, nil
}

// ConsumptionValue sums the catalog prices of every ledger entry on the room.
func (s *RoomService) ConsumptionValue(number int) (decimal.Decimal, error) {
	s.GH.mu.Lock()
	defer s.GH.mu.Unlock()

	room := s.GH.findRoomLocked(number)
	if room == nil {
		return decimal.Zero, ErrRoomNotFound
	}
	return s.GH.consumptionValueLocked(room)
}
