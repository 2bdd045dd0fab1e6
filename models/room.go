package models

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// RoomCategory is the room class, stored on disk as a single-letter code.
type RoomCategory int

const (
	CategoryStandard RoomCategory = iota
	CategoryMaster
	CategoryPremium
)

func (c RoomCategory) String() string {
	switch c {
	case CategoryStandard:
		return "Standard"
	case CategoryMaster:
		return "Master"
	case CategoryPremium:
		return "Premium"
	}
	return "Unknown"
}

// Code returns the snapshot wire code (S/M/P).
func (c RoomCategory) Code() string {
	switch c {
	case CategoryStandard:
		return "S"
	case CategoryMaster:
		return "M"
	case CategoryPremium:
		return "P"
	}
	return "?"
}

func ParseRoomCategory(code string) (RoomCategory, error) {
	switch code {
	case "S":
		return CategoryStandard, nil
	case "M":
		return CategoryMaster, nil
	case "P":
		return CategoryPremium, nil
	}
	return 0, fmt.Errorf("unknown room category code %q", code)
}

type Room struct {
	Number      int
	Category    RoomCategory
	NightlyRate decimal.Decimal

	// Consumption is the running ledger for the current stay: product codes,
	// one entry per unit purchased. Cleared only at completed check-out.
	Consumption []int
}
