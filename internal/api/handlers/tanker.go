package handlers

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"

	"tanker-plan-service/internal/api/dto"
	"tanker-plan-service/internal/domain"
	"tanker-plan-service/internal/ports"
	"tanker-plan-service/internal/services"
)

// TankerHandler exposes the tankering planners over HTTP. The planners
// themselves are pure; this layer only decodes inputs, fills missing
// leg prices from the repository, and consults the transparent plan
// cache.
type TankerHandler struct {
	Repo  ports.PriceRepository
	Cache ports.PlanCache
}

// SingleLeg computes the full single-leg result, honoring a manual
// tanker-out override when one is supplied.
func (h *TankerHandler) SingleLeg(w http.ResponseWriter, r *http.Request) {
	var req dto.SingleLegRequest
	if !decodeBody(w, r, &req) {
		return
	}

	res, err := services.ComputeSingleLeg(singleLegInputs(req), req.ManualTankerOutLbs)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	writeJSON(w, r, http.StatusOK, singleLegResponse(res))
}

// Limits returns the advisory optimum and feasibility ceiling for a
// leg without assembling the full result.
func (h *TankerHandler) Limits(w http.ResponseWriter, r *http.Request) {
	var req dto.SingleLegRequest
	if !decodeBody(w, r, &req) {
		return
	}

	in := singleLegInputs(req)

	optimum, err := services.OptimumTankerOut(in)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	ceiling, err := services.MaxFeasibleTankerOut(in)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	writeJSON(w, r, http.StatusOK, dto.LimitsResponse{
		OptimumTankerOutLbs: optimum,
		MaxTankerOutLbs:     ceiling,
	})
}

// Route plans a whole multi-leg trip. Legs without a fuel price are
// priced from the repository by departure airport before optimizing.
func (h *TankerHandler) Route(w http.ResponseWriter, r *http.Request) {
	var req dto.RouteRequest
	if !decodeBody(w, r, &req) {
		return
	}

	route, err := h.buildRoute(r.Context(), req)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error())
		return
	}

	plan, err := h.planRoute(r.Context(), route, req.StepLbs)
	if err != nil {
		log.Printf("plan route failed: %v", err)
		writeError(w, r, http.StatusInternalServerError, "internal server error")
		return
	}

	writeJSON(w, r, http.StatusOK, routeResponse(plan))
}

// buildRoute converts the request and fills missing leg prices from
// the fuel-price table.
func (h *TankerHandler) buildRoute(ctx context.Context, req dto.RouteRequest) (domain.Route, error) {
	route := domain.Route{
		ShutdownFuelLbs:     req.ShutdownFuelLbs,
		CarryCostPctPerHour: req.CarryCostPctPerHour,
		FuelTempC:           req.FuelTempC,
		ArrivalBufferLbs:    req.ArrivalBufferLbs,
		Legs:                make([]domain.Leg, 0, len(req.Legs)),
	}

	for i, l := range req.Legs {
		leg := domain.Leg{
			From:                 strings.ToUpper(strings.TrimSpace(l.From)),
			To:                   strings.ToUpper(strings.TrimSpace(l.To)),
			RequiredStartFuelLbs: l.RequiredStartFuelLbs,
			FuelToDestinationLbs: l.FuelToDestinationLbs,
			FlightTimeHours:      l.FlightTimeHours,
			MaxLandingWeightLbs:  l.MaxLandingWeightLbs,
			ZeroFuelWeightLbs:    l.ZeroFuelWeightLbs,
			FuelPricePerGalUSD:   l.FuelPricePerGalUSD,
			FeeWaiverGal:         l.FeeWaiverGal,
			FeeWaiverUSD:         l.FeeWaiverUSD,
		}

		if leg.FuelPricePerGalUSD == 0 {
			if h.Repo == nil {
				return domain.Route{}, fmt.Errorf("leg %d: no fuel price given and no price table available", i+1)
			}

			price, ok, err := h.Repo.GetPrice(ctx, leg.From)
			if err != nil {
				return domain.Route{}, fmt.Errorf("leg %d: look up fuel price for %q: %w", i+1, leg.From, err)
			}
			if !ok {
				return domain.Route{}, fmt.Errorf("leg %d: no fuel price on file for %q", i+1, leg.From)
			}

			leg.FuelPricePerGalUSD = price.PricePerGalUSD
			leg.FeeWaiverGal = price.FeeWaiverGal
			leg.FeeWaiverUSD = price.FeeWaiverUSD
		}

		route.Legs = append(route.Legs, leg)
	}

	return route, nil
}

// planRoute runs the optimizer behind the plan cache. The key is
// derived from the fully priced route, so repository price changes
// produce fresh keys. Cache errors only log; the computation always
// proceeds.
func (h *TankerHandler) planRoute(ctx context.Context, route domain.Route, stepLbs float64) (*domain.MultiLegPlan, error) {
	if h.Cache == nil {
		return services.OptimizeMultiLeg(route, stepLbs), nil
	}

	key, err := planKey(route, stepLbs)
	if err != nil {
		return nil, err
	}

	if plan, ok, err := h.Cache.GetPlan(ctx, key); err != nil {
		log.Printf("plan cache get failed: %v", err)
	} else if ok {
		return plan, nil
	}

	plan := services.OptimizeMultiLeg(route, stepLbs)

	if err := h.Cache.SetPlan(ctx, key, plan); err != nil {
		log.Printf("plan cache set failed: %v", err)
	}

	return plan, nil
}

func planKey(route domain.Route, stepLbs float64) (string, error) {
	b, err := json.Marshal(struct {
		Route   domain.Route
		StepLbs float64
	}{route, stepLbs})
	if err != nil {
		return "", fmt.Errorf("plan key: marshal route: %w", err)
	}
	sum := sha256.Sum256(b)
	return "tankerplan:" + hex.EncodeToString(sum[:]), nil
}

// decodeBody enforces POST, strict field checking, and a single JSON
// object per body.
func decodeBody(w http.ResponseWriter, r *http.Request, v any) bool {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return false
	}

	dec := json.NewDecoder(r.Body)
	defer r.Body.Close()
	dec.DisallowUnknownFields()

	if err := dec.Decode(v); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid json body")
		return false
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		writeError(w, r, http.StatusBadRequest, "body must contain only one JSON object")
		return false
	}

	return true
}

func singleLegInputs(req dto.SingleLegRequest) domain.SingleLegInputs {
	return domain.SingleLegInputs{
		Aircraft:               domain.AircraftType(strings.ToUpper(strings.TrimSpace(req.Aircraft))),
		LastLegShutdownFuelLbs: req.LastLegShutdownFuelLbs,
		StartFuelLbs:           req.StartFuelLbs,
		FuelToDestinationLbs:   req.FuelToDestinationLbs,
		FlightTimeHours:        req.FlightTimeHours,
		MaxLandingWeightLbs:    req.MaxLandingWeightLbs,
		ZeroFuelWeightLbs:      req.ZeroFuelWeightLbs,
		NextLegStartFuelLbs:    req.NextLegStartFuelLbs,
		FeeWaiverGal:           req.FeeWaiverGal,
		FeeWaiverUSD:           req.FeeWaiverUSD,
		DepartureFuelPriceUSD:  req.DepartureFuelPriceUSD,
		NextLegFuelPriceUSD:    req.NextLegFuelPriceUSD,
		FuelTempC:              req.FuelTempC,
		ArrivalBufferLbs:       req.ArrivalBufferLbs,
		NextLegBufferLbs:       req.NextLegBufferLbs,
	}
}

func singleLegResponse(res domain.SingleLegResult) dto.SingleLegResponse {
	return dto.SingleLegResponse{
		TankerOutLbs:            res.TankerOutLbs,
		TankerInLbs:             res.TankerInLbs,
		AddedBurnLbs:            res.AddedBurnLbs,
		NetSavingsUSD:           res.NetSavingsUSD,
		TankerSavingsUSD:        res.TankerSavingsUSD,
		CarryCostUSD:            res.CarryCostUSD,
		FeeImpactUSD:            res.FeeImpactUSD,
		LosesFeeWaiver:          res.LosesFeeWaiver,
		ExceedsMaxLandingWeight: res.ExceedsMaxLandingWeight,
		LandingFuelLbs:          res.LandingFuelLbs,
		MaxLandingFuelLbs:       res.MaxLandingFuelLbs,
		FuelToOrderLbs:          res.FuelToOrderLbs,
		FuelToOrderGal:          res.FuelToOrderGal,
		DensityPPG:              res.DensityPPG,
		PlannedArrivalFuelLbs:   res.PlannedArrivalFuelLbs,
	}
}

func routeResponse(plan *domain.MultiLegPlan) dto.RouteResponse {
	if plan == nil {
		return dto.RouteResponse{Feasible: false}
	}

	res := dto.RouteResponse{
		Feasible:         true,
		Legs:             make([]dto.RouteLegResponse, 0, len(plan.Legs)),
		TotalFuelCostUSD: plan.TotalFuelCostUSD,
		TotalFeesUSD:     plan.TotalFeesUSD,
		TotalCostUSD:     plan.TotalCostUSD,
	}

	for _, l := range plan.Legs {
		res.Legs = append(res.Legs, dto.RouteLegResponse{
			From:           l.From,
			To:             l.To,
			TankerOutLbs:   l.TankerOutLbs,
			TankerInLbs:    l.TankerInLbs,
			FuelToOrderLbs: l.FuelToOrderLbs,
			FuelToOrderGal: l.FuelToOrderGal,
			LandingFuelLbs: l.LandingFuelLbs,
			FuelCostUSD:    l.FuelCostUSD,
			FeePaidUSD:     l.FeePaidUSD,
		})
	}

	return res
}
