package ports

import (
	"context"

	"tanker-plan-service/internal/domain"
)

// Port: a transparent cache for computed multi-leg plans.
//
// A nil plan (infeasible route) is a cacheable value like any other,
// so cached and uncached calls always agree. Implementations must
// never be relied on for correctness: a miss just recomputes.
type PlanCache interface {
	// Fetch a cached plan. The bool reports whether the key was
	// present at all; a present key may still hold a nil plan.
	GetPlan(ctx context.Context, key string) (*domain.MultiLegPlan, bool, error)

	// Store a computed plan (possibly nil) under the key.
	SetPlan(ctx context.Context, key string, plan *domain.MultiLegPlan) error
}
