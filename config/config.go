package config

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/shopspring/decimal"

	"guesthouse-manager/models"
	"guesthouse-manager/storage"
	"guesthouse-manager/utils"
)

// Config holds the runtime settings read from the environment.
type Config struct {
	DataDir string
}

func Load() Config {
	return Config{
		DataDir: utils.EnvOrDefault("GUESTHOUSE_DATA_DIR", "./data"),
	}
}

// SeedData creates the data directory and writes a starter snapshot on first
// run, so the program always has a property, rooms and a product catalog to
// work with. An existing snapshot is left untouched.
func SeedData(cfg Config) error {
	if err := os.MkdirAll(cfg.DataDir, 0o755); err != nil {
		return fmt.Errorf("failed to create data dir: %w", err)
	}

	if _, err := os.Stat(filepath.Join(cfg.DataDir, storage.PropertyFile)); err == nil {
		return nil
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("failed to stat snapshot: %w", err)
	}

	snap := &storage.Snapshot{
		Property: models.Property{Name: "Pousada do Vale", Contact: "(51) 3333-1234"},
		Rooms: []*models.Room{
			{Number: 101, Category: models.CategoryStandard, NightlyRate: decimal.NewFromFloat(150.00)},
			{Number: 102, Category: models.CategoryStandard, NightlyRate: decimal.NewFromFloat(150.00)},
			{Number: 201, Category: models.CategoryMaster, NightlyRate: decimal.NewFromFloat(250.00)},
			{Number: 202, Category: models.CategoryMaster, NightlyRate: decimal.NewFromFloat(250.00)},
			{Number: 301, Category: models.CategoryPremium, NightlyRate: decimal.NewFromFloat(400.00)},
		},
		Products: []models.Product{
			{Code: 1, Name: "Agua", Price: decimal.NewFromFloat(5.00)},
			{Code: 2, Name: "Refrigerante", Price: decimal.NewFromFloat(8.00)},
			{Code: 3, Name: "Suco", Price: decimal.NewFromFloat(10.00)},
			{Code: 4, Name: "Sanduiche", Price: decimal.NewFromFloat(20.00)},
			{Code: 5, Name: "Chocolate", Price: decimal.NewFromFloat(7.50)},
		},
	}

	if err := storage.NewCSVStore(cfg.DataDir).Save(snap); err != nil {
		return err
	}
	log.Println("Default snapshot seeded")
	return nil
}
