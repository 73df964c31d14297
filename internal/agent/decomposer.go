package agent

import (
	"context"
	"fmt"
	"time"

	"github.com/tmc/langchaingo/llms"

	"github.com/planora/planora/internal/observability"
	"github.com/planora/planora/internal/plan"
)

const decomposeSystemPrompt = "You are a helpful planning assistant. " +
	"Break goals into concrete, actionable steps grouped by day."

const decomposeTemplate = `Create a detailed step-by-step plan for the following goal: %q

Format the plan as plain text:
- Group steps under headers of the form "Day N:" when the goal spans multiple days. Omit the headers for a single-day goal.
- Number every step across the whole plan, like "1. Step title (estimated duration)".
- Put the estimated duration in parentheses after the title, e.g. (30 minutes) or (2 hours).
- Add one or two "-" sub-bullets under each step describing what it involves.`

// Decomposer turns a goal into an ordered step sequence via the
// completion model.
type Decomposer struct {
	Model   llms.Model
	Timeout time.Duration
	Logger  *observability.Logger
}

func NewDecomposer(model llms.Model, timeout time.Duration, logger *observability.Logger) *Decomposer {
	return &Decomposer{Model: model, Timeout: timeout, Logger: logger}
}

// Decompose asks the model for a day-grouped breakdown of the goal and
// parses the reply. It never fails: a dead model, a timeout, or an
// unparseable reply all yield the single fallback step, so plan
// creation is never blocked on the completion service.
func (d *Decomposer) Decompose(ctx context.Context, goalText string) []plan.Step {
	ctx, cancel := context.WithTimeout(ctx, d.Timeout)
	defer cancel()

	prompt := fmt.Sprintf(decomposeTemplate, goalText)
	messages := []llms.MessageContent{
		{
			Role:  llms.ChatMessageTypeSystem,
			Parts: []llms.ContentPart{llms.TextPart(decomposeSystemPrompt)},
		},
		{
			Role:  llms.ChatMessageTypeHuman,
			Parts: []llms.ContentPart{llms.TextPart(prompt)},
		},
	}

	resp, err := d.Model.GenerateContent(ctx, messages)
	if err != nil {
		d.Logger.LogFallback("decompose", fmt.Sprintf("completion call failed: %v", err))
		return []plan.Step{plan.PlaceholderStep}
	}
	if len(resp.Choices) == 0 {
		d.Logger.LogFallback("decompose", "completion returned no choices")
		return []plan.Step{plan.PlaceholderStep}
	}

	reply := resp.Choices[0].Content
	d.Logger.LogLLM(prompt, reply)

	steps := ParseBreakdown(reply)
	if len(steps) == 0 {
		d.Logger.LogFallback("decompose", "reply contained no parseable steps")
		return []plan.Step{plan.PlaceholderStep}
	}
	return steps
}
