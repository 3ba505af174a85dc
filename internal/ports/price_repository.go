package ports

import (
	"context"

	"tanker-plan-service/internal/domain"
)

// Port: a boundary for retrieving airport fuel quotes from a data source.
type PriceRepository interface {
	// Retrieve all known airport fuel quotes.
	ListPrices(ctx context.Context) ([]domain.AirportPrice, error)

	// Look up one airport's quote. The bool is false when the airport
	// has no stored quote.
	GetPrice(ctx context.Context, airport string) (domain.AirportPrice, bool, error)
}
