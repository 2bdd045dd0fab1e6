package main

import (
	"log"

	"github.com/joho/godotenv"

	"guesthouse-manager/config"
	"guesthouse-manager/controllers"
	"guesthouse-manager/services"
	"guesthouse-manager/storage"
)

func main() {
	// Load .env (optional)
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️  .env not found or couldn't load it; continuing with environment variables")
	}

	cfg := config.Load()
	if err := config.SeedData(cfg); err != nil {
		log.Fatalf("❌ Data seeding failed: %v", err)
	}

	store := storage.NewCSVStore(cfg.DataDir)
	snap, err := store.Load()
	if err != nil {
		log.Fatalf("❌ Snapshot load failed: %v", err)
	}

	gh := services.NewGuesthouse()
	if err := gh.ImportSnapshot(snap); err != nil {
		log.Fatalf("❌ Snapshot import failed: %v", err)
	}
	log.Printf("✅ Snapshot loaded from %s (%d rooms, %d reservations, %d products)",
		cfg.DataDir, len(gh.Rooms), len(gh.Reservations), len(gh.Products))

	// Initialize services
	roomService := services.NewRoomService(gh)
	productService := services.NewProductService(gh)
	reservationService := services.NewReservationService(gh)
	billingService := services.NewBillingService(gh)

	// Build the menu controller and hand over the terminal
	menu := controllers.NewMenuController(gh, roomService, productService, reservationService, billingService, store)
	menu.Run()
}
