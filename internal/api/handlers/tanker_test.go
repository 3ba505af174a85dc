package handlers

import (
	"context"
	"encoding/json"
	"math"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"tanker-plan-service/internal/api/dto"
	"tanker-plan-service/internal/domain"
)

type fakePriceRepo struct {
	prices map[string]domain.AirportPrice
}

func (r *fakePriceRepo) ListPrices(ctx context.Context) ([]domain.AirportPrice, error) {
	out := make([]domain.AirportPrice, 0, len(r.prices))
	for _, p := range r.prices {
		out = append(out, p)
	}
	return out, nil
}

func (r *fakePriceRepo) GetPrice(ctx context.Context, airport string) (domain.AirportPrice, bool, error) {
	p, ok := r.prices[airport]
	return p, ok, nil
}

type fakePlanCache struct {
	store map[string]*domain.MultiLegPlan

	gets int
	sets int
}

func newFakePlanCache() *fakePlanCache {
	return &fakePlanCache{store: make(map[string]*domain.MultiLegPlan)}
}

func (c *fakePlanCache) GetPlan(ctx context.Context, key string) (*domain.MultiLegPlan, bool, error) {
	c.gets++
	plan, ok := c.store[key]
	return plan, ok, nil
}

func (c *fakePlanCache) SetPlan(ctx context.Context, key string, plan *domain.MultiLegPlan) error {
	c.sets++
	c.store[key] = plan
	return nil
}

func postJSON(t *testing.T, h http.HandlerFunc, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h(rec, req)
	return rec
}

const singleLegBody = `{
	"aircraft": "CE-750",
	"last_leg_shutdown_fuel_lbs": 1200,
	"start_fuel_lbs": 7000,
	"fuel_to_destination_lbs": 2500,
	"flight_time_hours": 2.0,
	"max_landing_weight_lbs": 33750,
	"zero_fuel_weight_lbs": 25500,
	"next_leg_start_fuel_lbs": 6500,
	"departure_fuel_price_usd": 6.25,
	"next_leg_fuel_price_usd": 8.75,
	"fuel_temp_c": 15
}`

func TestSingleLegEndpoint(t *testing.T) {
	h := &TankerHandler{}

	rec := postJSON(t, h.SingleLeg, "/tanker/single", singleLegBody)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}

	var res dto.SingleLegResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &res); err != nil {
		t.Fatalf("decode response: %v", err)
	}

	if res.TankerOutLbs <= 0 {
		t.Fatalf("tanker-out = %v, want > 0 with the price spread", res.TankerOutLbs)
	}
	if res.LandingFuelLbs > res.MaxLandingFuelLbs+0.001 {
		t.Fatalf("landing fuel %v exceeds ceiling %v", res.LandingFuelLbs, res.MaxLandingFuelLbs)
	}
	if res.ExceedsMaxLandingWeight {
		t.Fatal("planned optimum must not exceed max landing weight")
	}
	if res.NetSavingsUSD <= 0 {
		t.Fatalf("net savings = %v, want > 0 at the optimum", res.NetSavingsUSD)
	}
	if res.DensityPPG != 6.7 {
		t.Fatalf("density = %v, want 6.7 at 15C", res.DensityPPG)
	}
}

func TestSingleLegEndpointUnknownAircraft(t *testing.T) {
	h := &TankerHandler{}

	body := strings.Replace(singleLegBody, "CE-750", "B-747", 1)
	rec := postJSON(t, h.SingleLeg, "/tanker/single", body)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400 for an unknown aircraft", rec.Code)
	}
}

func TestSingleLegEndpointRejectsUnknownFields(t *testing.T) {
	h := &TankerHandler{}

	rec := postJSON(t, h.SingleLeg, "/tanker/single", `{"aircraft": "CE-750", "bogus": 1}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400 for an unknown field", rec.Code)
	}
}

func TestSingleLegEndpointMethodNotAllowed(t *testing.T) {
	h := &TankerHandler{}

	req := httptest.NewRequest(http.MethodGet, "/tanker/single", nil)
	rec := httptest.NewRecorder()
	h.SingleLeg(rec, req)
	if rec.Code != http.StatusMethodNotAllowed {
		t.Fatalf("status = %d, want 405", rec.Code)
	}
	if allow := rec.Header().Get("Allow"); allow != http.MethodPost {
		t.Fatalf("Allow = %q, want POST", allow)
	}
}

func TestLimitsEndpoint(t *testing.T) {
	h := &TankerHandler{}

	rec := postJSON(t, h.Limits, "/tanker/limits", singleLegBody)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}

	var res dto.LimitsResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &res); err != nil {
		t.Fatalf("decode response: %v", err)
	}

	if res.OptimumTankerOutLbs <= 0 {
		t.Fatalf("optimum = %v, want > 0", res.OptimumTankerOutLbs)
	}
	if res.OptimumTankerOutLbs > res.MaxTankerOutLbs {
		t.Fatalf("optimum %v exceeds max feasible %v", res.OptimumTankerOutLbs, res.MaxTankerOutLbs)
	}
}

const routeBody = `{
	"shutdown_fuel_lbs": 3000,
	"fuel_temp_c": 15,
	"legs": [
		{
			"from": "kteb",
			"to": "KAPA",
			"required_start_fuel_lbs": 5000,
			"fuel_to_destination_lbs": 1500,
			"flight_time_hours": 2.0,
			"max_landing_weight_lbs": 33750,
			"zero_fuel_weight_lbs": 25500
		}
	]
}`

func TestRouteEndpointFillsPriceFromRepository(t *testing.T) {
	repo := &fakePriceRepo{prices: map[string]domain.AirportPrice{
		"KTEB": {Airport: "KTEB", PricePerGalUSD: 8.75, FeeWaiverGal: 300, FeeWaiverUSD: 750},
	}}
	h := &TankerHandler{Repo: repo}

	rec := postJSON(t, h.Route, "/tanker/route", routeBody)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}

	var res dto.RouteResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &res); err != nil {
		t.Fatalf("decode response: %v", err)
	}

	if !res.Feasible {
		t.Fatal("expected a feasible plan")
	}
	if len(res.Legs) != 1 {
		t.Fatalf("got %d legs, want 1", len(res.Legs))
	}
	if res.Legs[0].From != "KTEB" {
		t.Fatalf("leg ident = %q, want normalized KTEB", res.Legs[0].From)
	}

	// The 2000 lb purchase is 298.5 gal at 6.7 ppg, just under the
	// repository's 300 gal waiver threshold: topping up wins.
	if math.Abs(res.Legs[0].FuelToOrderGal-300) > 1e-9 {
		t.Fatalf("fuel to order = %v gal, want top-up to 300", res.Legs[0].FuelToOrderGal)
	}
	if res.Legs[0].FeePaidUSD != 0 {
		t.Fatalf("fee paid = %v, want 0 after top-up", res.Legs[0].FeePaidUSD)
	}
	if math.Abs(res.TotalCostUSD-300*8.75) > 1e-6 {
		t.Fatalf("total cost = %v, want %v", res.TotalCostUSD, 300*8.75)
	}
}

func TestRouteEndpointUnknownAirport(t *testing.T) {
	h := &TankerHandler{Repo: &fakePriceRepo{prices: map[string]domain.AirportPrice{}}}

	rec := postJSON(t, h.Route, "/tanker/route", routeBody)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400 when no price is on file", rec.Code)
	}
}

func TestRouteEndpointUsesPlanCache(t *testing.T) {
	repo := &fakePriceRepo{prices: map[string]domain.AirportPrice{
		"KTEB": {Airport: "KTEB", PricePerGalUSD: 8.75, FeeWaiverGal: 300, FeeWaiverUSD: 750},
	}}
	cache := newFakePlanCache()
	h := &TankerHandler{Repo: repo, Cache: cache}

	first := postJSON(t, h.Route, "/tanker/route", routeBody)
	if first.Code != http.StatusOK {
		t.Fatalf("first call: status = %d", first.Code)
	}
	if cache.gets != 1 || cache.sets != 1 {
		t.Fatalf("after first call gets=%d sets=%d, want 1/1", cache.gets, cache.sets)
	}

	second := postJSON(t, h.Route, "/tanker/route", routeBody)
	if second.Code != http.StatusOK {
		t.Fatalf("second call: status = %d", second.Code)
	}
	if cache.gets != 2 || cache.sets != 1 {
		t.Fatalf("after second call gets=%d sets=%d, want a hit with no new set", cache.gets, cache.sets)
	}

	if first.Body.String() != second.Body.String() {
		t.Fatalf("cached response diverged:\n%s\n%s", first.Body.String(), second.Body.String())
	}
}
