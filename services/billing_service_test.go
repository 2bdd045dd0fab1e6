package services_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"guesthouse-manager/models"
	"guesthouse-manager/services"
)

func TestNights_Inclusive(t *testing.T) {
	gh := newTestGuesthouse()
	billing := services.NewBillingService(gh)

	// a single-day stay counts as one night, not zero
	d := date(t, "10-01-2024")
	if got := billing.Nights(d, d); got != 1 {
		t.Fatalf("Nights(d, d) = %d; want 1", got)
	}
	if got := billing.Nights(date(t, "10-01-2024"), date(t, "12-01-2024")); got != 3 {
		t.Fatalf("Nights over 3 days = %d; want 3", got)
	}
	if got := billing.Nights(date(t, "28-02-2024"), date(t, "01-03-2024")); got != 3 {
		t.Fatalf("Nights across leap-month boundary = %d; want 3", got)
	}
}

func TestRoomCharge(t *testing.T) {
	gh := newTestGuesthouse()
	billing := services.NewBillingService(gh)

	charge := billing.RoomCharge(gh.Rooms[0], date(t, "10-01-2024"), date(t, "12-01-2024"))
	require.Equal(t, "450.00", charge.StringFixed(2))
}

func TestStatement(t *testing.T) {
	gh := newTestGuesthouse()
	billing := services.NewBillingService(gh)

	room := gh.Rooms[0]
	room.Consumption = []int{1, 4, 4}
	res := &models.Reservation{
		Guest:  "Ana",
		Start:  date(t, "10-01-2024"),
		End:    date(t, "12-01-2024"),
		Status: models.StatusCheckedIn,
		Room:   room,
	}

	stmt, err := billing.Statement(res)
	require.NoError(t, err)
	require.Equal(t, 3, stmt.Nights)
	require.Equal(t, "450.00", stmt.RoomCharge.StringFixed(2))
	require.Equal(t, "45.00", stmt.ConsumptionCharge.StringFixed(2))
	require.Equal(t, "495.00", stmt.Total.StringFixed(2))
	require.Len(t, stmt.Items, 3)
	require.Equal(t, "Agua", stmt.Items[0].Name)
}

func TestStatement_DanglingLedgerCode(t *testing.T) {
	gh := newTestGuesthouse()
	billing := services.NewBillingService(gh)

	room := gh.Rooms[0]
	room.Consumption = []int{99}
	res := &models.Reservation{
		Guest:  "Ana",
		Start:  date(t, "10-01-2024"),
		End:    date(t, "12-01-2024"),
		Status: models.StatusCheckedIn,
		Room:   room,
	}

	_, err := billing.Statement(res)
	require.ErrorIs(t, err, services.ErrProductNotFound)
}
