package storage

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/shopspring/decimal"

	"guesthouse-manager/models"
)

// Snapshot file names, kept compatible with prior snapshots.
const (
	PropertyFile    = "pousada.csv"
	RoomFile        = "quarto.csv"
	ReservationFile = "reserva.csv"
	ProductFile     = "produto.csv"
)

// CSVStore persists snapshots as four CSV files inside Dir.
//
// Layouts:
//
//	pousada.csv: name,contact
//	quarto.csv:  number,categoryCode,rate[,productCode...]
//	reserva.csv: guest,start,end,statusCode,roomNumber (dates 02-01-2006)
//	produto.csv: code,name,price
type CSVStore struct {
	Dir string
}

func NewCSVStore(dir string) *CSVStore {
	return &CSVStore{Dir: dir}
}

func (s *CSVStore) path(name string) string {
	return filepath.Join(s.Dir, name)
}

func (s *CSVStore) readRows(name string) ([][]string, error) {
	f, err := os.Open(s.path(name))
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", name, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1 // quarto.csv rows have a variable-length tail
	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", name, err)
	}
	return rows, nil
}

func (s *CSVStore) writeRows(name string, rows [][]string) error {
	f, err := os.Create(s.path(name))
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", name, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.WriteAll(rows); err != nil {
		return fmt.Errorf("failed to write %s: %w", name, err)
	}
	return nil
}

func (s *CSVStore) Load() (*Snapshot, error) {
	snap := &Snapshot{}

	propRows, err := s.readRows(PropertyFile)
	if err != nil {
		return nil, err
	}
	if len(propRows) == 0 || len(propRows[0]) < 2 {
		return nil, fmt.Errorf("%s: expected a name,contact row", PropertyFile)
	}
	snap.Property = models.Property{Name: propRows[0][0], Contact: propRows[0][1]}

	prodRows, err := s.readRows(ProductFile)
	if err != nil {
		return nil, err
	}
	for i, row := range prodRows {
		if len(row) != 3 {
			return nil, fmt.Errorf("%s row %d: expected 3 fields, got %d", ProductFile, i+1, len(row))
		}
		code, err := strconv.Atoi(row[0])
		if err != nil {
			return nil, fmt.Errorf("%s row %d: bad product code: %w", ProductFile, i+1, err)
		}
		price, err := decimal.NewFromString(row[2])
		if err != nil {
			return nil, fmt.Errorf("%s row %d: bad price: %w", ProductFile, i+1, err)
		}
		snap.Products = append(snap.Products, models.Product{Code: code, Name: row[1], Price: price})
	}

	roomRows, err := s.readRows(RoomFile)
	if err != nil {
		return nil, err
	}
	for i, row := range roomRows {
		if len(row) < 3 {
			return nil, fmt.Errorf("%s row %d: expected at least 3 fields, got %d", RoomFile, i+1, len(row))
		}
		number, err := strconv.Atoi(row[0])
		if err != nil {
			return nil, fmt.Errorf("%s row %d: bad room number: %w", RoomFile, i+1, err)
		}
		category, err := models.ParseRoomCategory(row[1])
		if err != nil {
			return nil, fmt.Errorf("%s row %d: %w", RoomFile, i+1, err)
		}
		rate, err := decimal.NewFromString(row[2])
		if err != nil {
			return nil, fmt.Errorf("%s row %d: bad nightly rate: %w", RoomFile, i+1, err)
		}
		room := &models.Room{Number: number, Category: category, NightlyRate: rate}
		for _, field := range row[3:] {
			code, err := strconv.Atoi(field)
			if err != nil {
				return nil, fmt.Errorf("%s row %d: bad consumption code %q: %w", RoomFile, i+1, field, err)
			}
			room.Consumption = append(room.Consumption, code)
		}
		snap.Rooms = append(snap.Rooms, room)
	}

	resRows, err := s.readRows(ReservationFile)
	if err != nil {
		return nil, err
	}
	for i, row := range resRows {
		if len(row) != 5 {
			return nil, fmt.Errorf("%s row %d: expected 5 fields, got %d", ReservationFile, i+1, len(row))
		}
		start, err := time.Parse(models.DateLayout, row[1])
		if err != nil {
			return nil, fmt.Errorf("%s row %d: bad start date: %w", ReservationFile, i+1, err)
		}
		end, err := time.Parse(models.DateLayout, row[2])
		if err != nil {
			return nil, fmt.Errorf("%s row %d: bad end date: %w", ReservationFile, i+1, err)
		}
		status, err := models.ParseReservationStatus(row[3])
		if err != nil {
			return nil, fmt.Errorf("%s row %d: %w", ReservationFile, i+1, err)
		}
		roomNumber, err := strconv.Atoi(row[4])
		if err != nil {
			return nil, fmt.Errorf("%s row %d: bad room number: %w", ReservationFile, i+1, err)
		}
		snap.Reservations = append(snap.Reservations, ReservationRecord{
			Guest:      row[0],
			Start:      start,
			End:        end,
			Status:     status,
			RoomNumber: roomNumber,
		})
	}

	return snap, nil
}

func (s *CSVStore) Save(snap *Snapshot) error {
	if err := s.writeRows(PropertyFile, [][]string{{snap.Property.Name, snap.Property.Contact}}); err != nil {
		return err
	}

	prodRows := make([][]string, 0, len(snap.Products))
	for _, p := range snap.Products {
		prodRows = append(prodRows, []string{strconv.Itoa(p.Code), p.Name, p.Price.String()})
	}
	if err := s.writeRows(ProductFile, prodRows); err != nil {
		return err
	}

	roomRows := make([][]string, 0, len(snap.Rooms))
	for _, room := range snap.Rooms {
		row := []string{strconv.Itoa(room.Number), room.Category.Code(), room.NightlyRate.String()}
		for _, code := range room.Consumption {
			row = append(row, strconv.Itoa(code))
		}
		roomRows = append(roomRows, row)
	}
	if err := s.writeRows(RoomFile, roomRows); err != nil {
		return err
	}

	resRows := make([][]string, 0, len(snap.Reservations))
	for _, rec := range snap.Reservations {
		resRows = append(resRows, []string{
			rec.Guest,
			rec.Start.Format(models.DateLayout),
			rec.End.Format(models.DateLayout),
			rec.Status.Code(),
			strconv.Itoa(rec.RoomNumber),
		})
	}
	return s.writeRows(ReservationFile, resRows)
}
