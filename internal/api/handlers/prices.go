package handlers

import (
	"log"
	"net/http"

	"tanker-plan-service/internal/api/dto"
	"tanker-plan-service/internal/ports"
)

// PriceHandler exposes read-only fuel quote retrieval endpoints.
type PriceHandler struct {
	Repo ports.PriceRepository
}

func (h *PriceHandler) List(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	prices, err := h.Repo.ListPrices(r.Context())
	if err != nil {
		log.Printf("list prices failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	res := dto.ListPricesResponse{Prices: make([]dto.AirportPriceResponse, 0, len(prices))}
	for _, p := range prices {
		res.Prices = append(res.Prices, dto.AirportPriceResponse{
			Airport:        p.Airport,
			PricePerGalUSD: p.PricePerGalUSD,
			FeeWaiverGal:   p.FeeWaiverGal,
			FeeWaiverUSD:   p.FeeWaiverUSD,
		})
	}

	writeJSON(w, r, http.StatusOK, res)
}
