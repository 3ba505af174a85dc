package api

import (
	"net/http"

	"tanker-plan-service/internal/api/handlers"
	"tanker-plan-service/internal/ports"
)

// NewRouter wires HTTP handlers with their dependencies and returns an
// http.Handler. This is the API composition root (handlers stay
// unaware of concrete adapters).
func NewRouter(repo ports.PriceRepository, planCache ports.PlanCache) http.Handler {
	mux := http.NewServeMux()

	tankerHandler := &handlers.TankerHandler{
		Repo:  repo,
		Cache: planCache,
	}
	priceHandler := &handlers.PriceHandler{Repo: repo}

	mux.HandleFunc("/health", handlers.Health)
	mux.HandleFunc("/aircraft", handlers.ListAircraft)
	mux.HandleFunc("/prices", priceHandler.List)
	mux.HandleFunc("/tanker/single", tankerHandler.SingleLeg)
	mux.HandleFunc("/tanker/limits", tankerHandler.Limits)
	mux.HandleFunc("/tanker/route", tankerHandler.Route)

	return loggingMiddleware(mux)
}
