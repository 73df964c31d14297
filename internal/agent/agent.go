// Package agent implements the goal-to-plan pipeline: decompose the
// goal via the completion model, enrich each step with a search
// snippet, attach weather when the goal names a location, assemble,
// and persist.
package agent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/planora/planora/internal/observability"
	"github.com/planora/planora/internal/plan"
)

// ErrEmptyGoal is returned when plan creation is requested with a
// blank goal.
var ErrEmptyGoal = errors.New("goal must not be empty")

// PlanStore is the persistence surface the agent depends on.
type PlanStore interface {
	Save(ctx context.Context, p plan.Plan) (string, error)
	Load(ctx context.Context, id string) (plan.Plan, error)
	ListAll(ctx context.Context) ([]plan.Summary, error)
	NewID() string
}

// Agent runs the planning pipeline end to end. One call, one plan;
// all external calls are sequential and individually time-bounded.
type Agent struct {
	Decomposer *Decomposer
	Enricher   *Enricher
	Augmenter  *Augmenter
	Store      PlanStore
	Logger     *observability.Logger

	// now is the clock; overridable in tests.
	now func() time.Time
}

func New(d *Decomposer, e *Enricher, a *Augmenter, store PlanStore, logger *observability.Logger) *Agent {
	return &Agent{
		Decomposer: d,
		Enricher:   e,
		Augmenter:  a,
		Store:      store,
		Logger:     logger,
		now:        time.Now,
	}
}

// CreatePlan runs decompose → enrich → augment → assemble → save.
// Upstream failures degrade to the component fallbacks; only a
// storage failure (or an empty goal) is surfaced to the caller.
func (a *Agent) CreatePlan(ctx context.Context, goalText string) (plan.Plan, error) {
	if goalText == "" {
		return plan.Plan{}, ErrEmptyGoal
	}

	steps := a.Decomposer.Decompose(ctx, goalText)
	a.Logger.LogStage(observability.EventTypeDecompose, "", map[string]any{
		"goal": goalText, "steps": len(steps),
	})

	for i := range steps {
		steps[i] = a.Enricher.Enrich(ctx, goalText, steps[i])
	}
	a.Logger.LogStage(observability.EventTypeEnrich, "", map[string]any{"steps": len(steps)})

	weather := a.Augmenter.Augment(ctx, goalText)
	a.Logger.LogStage(observability.EventTypeWeather, "", map[string]any{"attached": weather != nil})

	p := plan.Assemble(goalText, steps, weather, a.Store.NewID(), a.now())
	a.Logger.LogStage(observability.EventTypeAssemble, p.ID, map[string]any{
		"total_duration": p.TotalDuration, "days": p.Days(),
	})

	if _, err := a.Store.Save(ctx, p); err != nil {
		return plan.Plan{}, fmt.Errorf("save plan: %w", err)
	}
	a.Logger.LogStage(observability.EventTypeStore, p.ID, map[string]any{"saved": true})

	return p, nil
}

// GetPlan returns a stored plan; store.ErrNotFound passes through for
// the caller to distinguish.
func (a *Agent) GetPlan(ctx context.Context, id string) (plan.Plan, error) {
	return a.Store.Load(ctx, id)
}

// ListPlans returns summaries of all stored plans, most recent first.
func (a *Agent) ListPlans(ctx context.Context) ([]plan.Summary, error) {
	return a.Store.ListAll(ctx)
}
