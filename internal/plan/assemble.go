package plan

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// PlaceholderStep is substituted when assembly receives no steps at all.
var PlaceholderStep = Step{
	Day:      1,
	Title:    "Review your goal and break it into smaller tasks",
	Duration: "1 hour",
	Description: "The goal could not be broken down automatically. " +
		"Revisit it and split it into concrete, actionable tasks.",
}

// Assemble merges decomposed steps and optional weather into a Plan.
// It is pure: steps are renumbered 1..n in input order, day numbers
// are normalized to be non-decreasing, and the total-duration string
// is derived from the result. The caller supplies the id and clock.
func Assemble(goal string, steps []Step, weather *WeatherInfo, id string, now time.Time) Plan {
	if len(steps) == 0 {
		steps = []Step{PlaceholderStep}
	}

	out := make([]Step, len(steps))
	day := 1
	for i, s := range steps {
		if s.Day > day {
			day = s.Day
		}
		s.Number = i + 1
		s.Day = day
		out[i] = s
	}

	p := Plan{
		ID:        id,
		Goal:      goal,
		Steps:     out,
		Weather:   weather,
		CreatedAt: now,
	}
	p.TotalDuration = totalDuration(p)
	return p
}

var durationPat = regexp.MustCompile(`(?i)^\s*(\d+(?:\.\d+)?)\s*(minutes?|mins?|m|hours?|hrs?|h)\s*$`)

// totalDuration renders a human-readable duration for the whole plan.
// Multi-day plans report their day span; single-day plans report the
// summed step durations when every one parses as minutes or hours,
// and "Ongoing" otherwise.
func totalDuration(p Plan) string {
	if d := p.Days(); d > 1 {
		return fmt.Sprintf("%d days", d)
	}

	total := 0.0
	for _, s := range p.Steps {
		m, ok := parseMinutes(s.Duration)
		if !ok {
			return "Ongoing"
		}
		total += m
	}

	mins := int(total + 0.5)
	if mins >= 60 && mins%60 == 0 {
		h := mins / 60
		if h == 1 {
			return "1 hour"
		}
		return fmt.Sprintf("%d hours", h)
	}
	return fmt.Sprintf("%d minutes", mins)
}

func parseMinutes(s string) (float64, bool) {
	m := durationPat.FindStringSubmatch(s)
	if m == nil {
		return 0, false
	}
	n, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return 0, false
	}
	if strings.HasPrefix(strings.ToLower(m[2]), "h") {
		n *= 60
	}
	return n, true
}
