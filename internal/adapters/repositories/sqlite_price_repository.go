package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"tanker-plan-service/internal/domain"
	"tanker-plan-service/internal/platform/obs"
)

// SQLite-backed implementation of the PriceRepository port.
type SqlitePriceRepository struct{ DB *sql.DB }

func NewSqlitePriceRepository(db *sql.DB) *SqlitePriceRepository {
	return &SqlitePriceRepository{DB: db}
}

// Return all stored airport fuel quotes.
func (s *SqlitePriceRepository) ListPrices(ctx context.Context) (_ []domain.AirportPrice, err error) {
	defer obs.Time(ctx, "prices.repo.ListPrices")(&err)

	if s.DB == nil {
		return nil, errors.New("sqlite price repository: DB is nil")
	}

	query := `
	SELECT
		airport,
		price_per_gal,
		fee_waiver_gal,
		fee_waiver_usd
	FROM fuel_prices
	ORDER BY airport;
	`
	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list prices: query fuel_prices table: %w", err)
	}
	defer rows.Close()

	prices := make([]domain.AirportPrice, 0, 32)
	for rows.Next() {
		var p domain.AirportPrice
		if err := rows.Scan(&p.Airport, &p.PricePerGalUSD, &p.FeeWaiverGal, &p.FeeWaiverUSD); err != nil {
			return nil, fmt.Errorf("list prices: scan row: %w", err)
		}
		prices = append(prices, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list prices: row iteration: %w", err)
	}

	return prices, nil
}

// Look up one airport's quote by ident.
func (s *SqlitePriceRepository) GetPrice(ctx context.Context, airport string) (_ domain.AirportPrice, _ bool, err error) {
	defer obs.Time(ctx, "prices.repo.GetPrice")(&err)

	if s.DB == nil {
		return domain.AirportPrice{}, false, errors.New("sqlite price repository: DB is nil")
	}

	airport = strings.ToUpper(strings.TrimSpace(airport))
	if airport == "" {
		return domain.AirportPrice{}, false, errors.New("get price: airport must not be empty")
	}

	query := `
	SELECT
		airport,
		price_per_gal,
		fee_waiver_gal,
		fee_waiver_usd
	FROM fuel_prices
	WHERE airport = ?;
	`

	var p domain.AirportPrice
	err = s.DB.QueryRowContext(ctx, query, airport).Scan(&p.Airport, &p.PricePerGalUSD, &p.FeeWaiverGal, &p.FeeWaiverUSD)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.AirportPrice{}, false, nil
	}
	if err != nil {
		return domain.AirportPrice{}, false, fmt.Errorf("get price: query airport %q: %w", airport, err)
	}

	return p, true, nil
}
