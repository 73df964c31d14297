// Package plan defines the core planning data types and the assembler
// that merges pipeline outputs into a Plan aggregate.
package plan

import "time"

// Step represents a single actionable unit within a plan.
type Step struct {
	Number       int    `json:"number"`
	Day          int    `json:"day"`
	Title        string `json:"title"`
	Duration     string `json:"duration"`
	Description  string `json:"description"`
	ExternalInfo string `json:"external_info,omitempty"`
}

// WeatherInfo is a weather summary attached to a plan when the goal
// names a resolvable location.
type WeatherInfo struct {
	Location  string  `json:"location"`
	TempC     float64 `json:"temp_c"`
	Condition string  `json:"condition"`
}

// Plan is the full aggregate produced for one goal.
type Plan struct {
	ID            string       `json:"id"`
	Goal          string       `json:"goal"`
	TotalDuration string       `json:"total_duration"`
	Steps         []Step       `json:"steps"`
	Weather       *WeatherInfo `json:"weather,omitempty"`
	CreatedAt     time.Time    `json:"created_at"`
}

// Summary is the listing projection of a stored plan.
type Summary struct {
	ID        string    `json:"id"`
	Goal      string    `json:"goal"`
	CreatedAt time.Time `json:"created_at"`
}

// Days returns the number of distinct days the plan's steps span.
func (p Plan) Days() int {
	seen := map[int]bool{}
	for _, s := range p.Steps {
		seen[s.Day] = true
	}
	return len(seen)
}
