package services

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"guesthouse-manager/models"
)

// Statement is the bill for one reservation: room nights plus everything on
// the room's consumption ledger. Amounts stay unrounded; rounding to two
// digits happens only when formatting for display.
type Statement struct {
	Reservation       *models.Reservation
	Nights            int
	RoomCharge        decimal.Decimal
	Items             []models.Product
	ConsumptionCharge decimal.Decimal
	Total             decimal.Decimal
}

// BillingService prices stays. Both boundary days count, so a same-day stay
// is one night.
type BillingService struct {
	GH *Guesthouse
}

func NewBillingService(gh *Guesthouse) *BillingService {
	return &BillingService{GH: gh}
}

func (s *BillingService) Nights(start, end time.Time) int {
	return nights(start, end)
}

func nights(start, end time.Time) int {
	return int(end.Sub(start).Hours()/24) + 1
}

// RoomCharge is the nightly rate times the night count of the range.
func (s *BillingService) RoomCharge(room *models.Room, start, end time.Time) decimal.Decimal {
	return room.NightlyRate.Mul(decimal.NewFromInt(int64(nights(start, end))))
}

// Statement prices the reservation against current catalog and ledger state.
func (s *BillingService) Statement(res *models.Reservation) (Statement, error) {
	s.GH.mu.Lock()
	defer s.GH.mu.Unlock()
	return buildStatement(s.GH, res)
}

// buildStatement assumes gh.mu is held. It fails on a ledger code with no
// catalog entry rather than pricing it at zero.
func buildStatement(gh *Guesthouse, res *models.Reservation) (Statement, error) {
	stmt := Statement{
		Reservation: res,
		Nights:      nights(res.Start, res.End),
	}
	stmt.RoomCharge = res.Room.NightlyRate.Mul(decimal.NewFromInt(int64(stmt.Nights)))

	stmt.ConsumptionCharge = decimal.Zero
	for _, code := range res.Room.Consumption {
		product := gh.findProductLocked(code)
		if product == nil {
			return Statement{}, fmt.Errorf("ledger of room %d references product %d: %w",
				res.Room.Number, code, ErrProductNotFound)
		}
		stmt.Items = append(stmt.Items, *product)
		stmt.ConsumptionCharge = stmt.ConsumptionCharge.Add(product.Price)
	}

	stmt.Total = stmt.RoomCharge.Add(stmt.ConsumptionCharge)
	return stmt, nil
}
