package main

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"strings"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"

	"tanker-plan-service/internal/adapters/repositories"
	"tanker-plan-service/internal/config"
	"tanker-plan-service/internal/platform/db"
)

// dbtool loads the fuel-price table into a shared Postgres instance.
// Local runs use SQLite (see cmd/server); this loader exists for
// deployments where several planner instances read one price table.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	databaseURL := os.Getenv("DATABASE_URL")
	if strings.TrimSpace(databaseURL) == "" {
		log.Fatal("DATABASE_URL is required")
	}

	pg, err := db.Open(databaseURL)
	if err != nil {
		log.Fatal(err)
	}
	defer pg.Close()

	seedPath := config.Get("SEED_PATH", "data/seeds/prices.json")
	if err := loadPrices(pg, seedPath); err != nil {
		log.Fatal(err)
	}
}

func loadPrices(pg *sql.DB, seedPath string) error {
	log.Println("Initializing fuel_prices schema...")
	createQuery := `
	CREATE TABLE IF NOT EXISTS fuel_prices (
		airport TEXT PRIMARY KEY,
		price_per_gal REAL NOT NULL,
		fee_waiver_gal REAL NOT NULL DEFAULT 0,
		fee_waiver_usd REAL NOT NULL DEFAULT 0
	);
	`
	if _, err := pg.Exec(createQuery); err != nil {
		return fmt.Errorf("load prices: create table: %w", err)
	}
	log.Println("Schema ready.")

	bytes, err := os.ReadFile(seedPath)
	if err != nil {
		return fmt.Errorf("load prices: read %q: %w", seedPath, err)
	}

	var rows []repositories.PriceSeed
	if err := json.Unmarshal(bytes, &rows); err != nil {
		return fmt.Errorf("load prices: parse json: %w", err)
	}

	log.Printf("Loading %d fuel quotes...", len(rows))

	tx, err := pg.Begin()
	if err != nil {
		return fmt.Errorf("load prices: begin tx: %w", err)
	}
	defer tx.Rollback()

	upsertQuery := `
	INSERT INTO fuel_prices (airport, price_per_gal, fee_waiver_gal, fee_waiver_usd)
	VALUES ($1, $2, $3, $4)
	ON CONFLICT (airport) DO UPDATE SET
		price_per_gal = EXCLUDED.price_per_gal,
		fee_waiver_gal = EXCLUDED.fee_waiver_gal,
		fee_waiver_usd = EXCLUDED.fee_waiver_usd;
	`
	stmt, err := tx.Prepare(upsertQuery)
	if err != nil {
		return fmt.Errorf("load prices: prepare upsert: %w", err)
	}
	defer stmt.Close()

	for i, p := range rows {
		airport := strings.ToUpper(strings.TrimSpace(p.Airport))
		if airport == "" {
			return fmt.Errorf("load prices: item at index %d: airport cannot be empty", i+1)
		}

		if _, err := stmt.Exec(airport, p.PricePerGal, p.FeeWaiverGal, p.FeeWaiverUSD); err != nil {
			return fmt.Errorf("load prices: upsert airport=%q: %w", airport, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("load prices: commit tx: %w", err)
	}

	log.Println("Loading complete.")
	return nil
}
