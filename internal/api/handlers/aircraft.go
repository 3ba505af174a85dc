package handlers

import (
	"net/http"

	"tanker-plan-service/internal/api/dto"
	"tanker-plan-service/internal/domain"
)

// ListAircraft returns the supported aircraft types with their
// added-burn curves, for callers that render the curve or populate a
// type selector.
func ListAircraft(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	res := dto.ListAircraftResponse{Aircraft: make([]dto.AircraftResponse, 0, len(domain.AircraftTypes()))}
	for _, t := range domain.AircraftTypes() {
		curve, ok := domain.BurnCurveFor(t)
		if !ok {
			continue
		}

		points := make([]dto.BurnPointResponse, 0, len(curve))
		for _, p := range curve {
			points = append(points, dto.BurnPointResponse{ExtraLbs: p.ExtraLbs, BurnLbs: p.BurnLbs})
		}
		res.Aircraft = append(res.Aircraft, dto.AircraftResponse{Type: string(t), Curve: points})
	}

	writeJSON(w, r, http.StatusOK, res)
}
