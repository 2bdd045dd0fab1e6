package storage_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"guesthouse-manager/models"
	"guesthouse-manager/storage"
)

func sampleSnapshot(t *testing.T) *storage.Snapshot {
	t.Helper()
	start, err := time.Parse(models.DateLayout, "10-01-2024")
	require.NoError(t, err)
	end, err := time.Parse(models.DateLayout, "12-01-2024")
	require.NoError(t, err)

	return &storage.Snapshot{
		Property: models.Property{Name: "Pousada Teste", Contact: "555-0100"},
		Rooms: []*models.Room{
			{Number: 101, Category: models.CategoryStandard, NightlyRate: decimal.NewFromFloat(150.00), Consumption: []int{1, 4, 4}},
			{Number: 201, Category: models.CategoryMaster, NightlyRate: decimal.NewFromFloat(250.00)},
		},
		Reservations: []storage.ReservationRecord{
			{Guest: "Ana", Start: start, End: end, Status: models.StatusActive, RoomNumber: 101},
		},
		Products: []models.Product{
			{Code: 1, Name: "Agua", Price: decimal.NewFromFloat(5.00)},
			{Code: 4, Name: "Sanduiche", Price: decimal.NewFromFloat(20.00)},
		},
	}
}

func TestCSVStore_RoundTrip(t *testing.T) {
	store := storage.NewCSVStore(t.TempDir())
	want := sampleSnapshot(t)

	require.NoError(t, store.Save(want))
	got, err := store.Load()
	require.NoError(t, err)

	require.Equal(t, want.Property, got.Property)
	require.Len(t, got.Rooms, 2)
	for i, room := range got.Rooms {
		require.Equal(t, want.Rooms[i].Number, room.Number)
		require.Equal(t, want.Rooms[i].Category, room.Category)
		require.True(t, want.Rooms[i].NightlyRate.Equal(room.NightlyRate))
		require.Equal(t, want.Rooms[i].Consumption, room.Consumption)
	}
	require.Len(t, got.Products, 2)
	for i, p := range got.Products {
		require.Equal(t, want.Products[i].Code, p.Code)
		require.Equal(t, want.Products[i].Name, p.Name)
		require.True(t, want.Products[i].Price.Equal(p.Price))
	}
	require.Len(t, got.Reservations, 1)
	rec := got.Reservations[0]
	require.Equal(t, "Ana", rec.Guest)
	require.True(t, rec.Start.Equal(want.Reservations[0].Start))
	require.True(t, rec.End.Equal(want.Reservations[0].End))
	require.Equal(t, models.StatusActive, rec.Status)
	require.Equal(t, 101, rec.RoomNumber)
}

func TestCSVStore_FileLayout(t *testing.T) {
	dir := t.TempDir()
	store := storage.NewCSVStore(dir)
	require.NoError(t, store.Save(sampleSnapshot(t)))

	// reserva.csv keeps the 5-field row with single-letter status codes
	data, err := os.ReadFile(filepath.Join(dir, storage.ReservationFile))
	require.NoError(t, err)
	require.Equal(t, "Ana,10-01-2024,12-01-2024,A,101", strings.TrimSpace(string(data)))

	// quarto.csv carries the ledger as a variable-length tail
	data, err = os.ReadFile(filepath.Join(dir, storage.RoomFile))
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 2)
	require.Equal(t, "101,S,150,1,4,4", lines[0])
	require.Equal(t, "201,M,250", lines[1])
}

func TestCSVStore_LoadErrors(t *testing.T) {
	store := storage.NewCSVStore(t.TempDir())

	// nothing saved yet
	_, err := store.Load()
	require.Error(t, err)

	dir := t.TempDir()
	store = storage.NewCSVStore(dir)
	require.NoError(t, store.Save(sampleSnapshot(t)))

	// corrupt a status code
	path := filepath.Join(dir, storage.ReservationFile)
	require.NoError(t, os.WriteFile(path, []byte("Ana,10-01-2024,12-01-2024,X,101\n"), 0o644))
	_, err = store.Load()
	require.ErrorContains(t, err, "unknown reservation status")
}
