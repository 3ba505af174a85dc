package repositories

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
)

// Initialize the SQLite database schema.
func InitSchema(db *sql.DB) error {
	if db == nil {
		return errors.New("init schema: DB is nil")
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("init schema: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	createPricesQuery := `
	CREATE TABLE IF NOT EXISTS fuel_prices (
		airport TEXT PRIMARY KEY,
		price_per_gal REAL NOT NULL,
		fee_waiver_gal REAL NOT NULL DEFAULT 0,
		fee_waiver_usd REAL NOT NULL DEFAULT 0
	);
	`

	if _, err := tx.Exec(createPricesQuery); err != nil {
		return fmt.Errorf("init schema: create fuel_prices: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("init schema: commit tx: %w", err)
	}

	return nil
}

type PriceSeed struct {
	Airport      string  `json:"airport"`
	PricePerGal  float64 `json:"price_per_gal"`
	FeeWaiverGal float64 `json:"fee_waiver_gal"`
	FeeWaiverUSD float64 `json:"fee_waiver_usd"`
}

// Populate the database with fuel quotes from a JSON file.
func SeedFromJSON(db *sql.DB, jsonPath string) error {
	bytes, err := os.ReadFile(jsonPath)
	if err != nil {
		return fmt.Errorf("seed prices: read %q: %w", jsonPath, err)
	}

	var data []PriceSeed
	if err := json.Unmarshal(bytes, &data); err != nil {
		return fmt.Errorf("seed prices: parse json: %w", err)
	}

	rows := make([]PriceSeed, 0, len(data))
	for i, item := range data {
		airport := strings.ToUpper(strings.TrimSpace(item.Airport))
		if airport == "" {
			return fmt.Errorf("seed prices: item at index %d: airport cannot be empty", i+1)
		}

		if item.PricePerGal <= 0 {
			return fmt.Errorf("seed prices: airport %q: price_per_gal must be positive, got %v", airport, item.PricePerGal)
		}

		item.Airport = airport
		rows = append(rows, item)
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("seed prices: begin tx: %w", err)
	}
	defer tx.Rollback()

	query := `
	INSERT OR REPLACE INTO fuel_prices (
		airport,
		price_per_gal,
		fee_waiver_gal,
		fee_waiver_usd
	)
	VALUES (?, ?, ?, ?);
	`
	stmt, err := tx.Prepare(query)
	if err != nil {
		return fmt.Errorf("seed prices: prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, p := range rows {
		if _, err := stmt.Exec(p.Airport, p.PricePerGal, p.FeeWaiverGal, p.FeeWaiverUSD); err != nil {
			return fmt.Errorf("seed prices: insert airport=%q: %w", p.Airport, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("seed prices: commit tx: %w", err)
	}

	return nil
}
