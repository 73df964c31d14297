package agent

import (
	"context"
	"fmt"
	"time"

	"github.com/microcosm-cc/bluemonday"

	"github.com/planora/planora/internal/observability"
	"github.com/planora/planora/internal/plan"
	"github.com/planora/planora/internal/tools"
)

// EnrichPlaceholder is attached when no usable search result exists.
const EnrichPlaceholder = "No additional information found"

// maxSnippetLen bounds the external-info string for display.
const maxSnippetLen = 200

// Enricher attaches a web-search snippet to each step. Enrichment is
// best-effort and fire-once: one search per step, no retries.
type Enricher struct {
	Search   tools.Searcher
	Timeout  time.Duration
	Logger   *observability.Logger
	sanitize *bluemonday.Policy
}

func NewEnricher(search tools.Searcher, timeout time.Duration, logger *observability.Logger) *Enricher {
	return &Enricher{
		Search:   search,
		Timeout:  timeout,
		Logger:   logger,
		sanitize: bluemonday.StrictPolicy(),
	}
}

// Enrich populates the step's external-info field from the top search
// result. Any failure resolves to the placeholder string; the step is
// always returned with a non-empty external-info.
func (e *Enricher) Enrich(ctx context.Context, goalText string, step plan.Step) plan.Step {
	ctx, cancel := context.WithTimeout(ctx, e.Timeout)
	defer cancel()

	query := fmt.Sprintf("%s guide %s", step.Title, goalText)

	results, err := e.Search.Search(ctx, query)
	if err != nil {
		e.Logger.LogFallback("enrich", fmt.Sprintf("search for step %q failed: %v", step.Title, err))
		step.ExternalInfo = EnrichPlaceholder
		return step
	}
	if len(results) == 0 {
		step.ExternalInfo = EnrichPlaceholder
		return step
	}

	top := results[0]
	info := top.Snippet
	if info == "" {
		info = top.Title
	}
	info = e.sanitize.Sanitize(info)
	if info == "" {
		info = EnrichPlaceholder
	}
	step.ExternalInfo = truncate(info, maxSnippetLen)
	return step
}

// truncate cuts s to at most n runes, appending an ellipsis when
// anything was dropped.
func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n-1]) + "…"
}
