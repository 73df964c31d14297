package agent

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/planora/planora/internal/observability"
	"github.com/planora/planora/internal/plan"
	"github.com/planora/planora/internal/tools"
)

// knownCities are matched case-insensitively anywhere in the goal.
var knownCities = []string{
	"jaipur", "hyderabad", "vizag", "visakhapatnam", "mumbai", "delhi",
	"bangalore", "chennai", "kolkata", "pune", "goa", "udaipur",
	"kerala", "rajasthan", "london", "paris", "tokyo", "new york",
	"singapore", "dubai",
}

// "in <Capitalized Phrase>" near the end of the goal, e.g.
// "a weekend trip in Lisbon".
var inLocationPat = regexp.MustCompile(`\bin ([A-Z][a-z]+(?: [A-Z][a-z]+)?)\s*[.!?]?$`)

// Augmenter attaches a weather summary when the goal names a
// resolvable location.
type Augmenter struct {
	Weather tools.WeatherClient
	Timeout time.Duration
	Logger  *observability.Logger
}

func NewAugmenter(weather tools.WeatherClient, timeout time.Duration, logger *observability.Logger) *Augmenter {
	return &Augmenter{Weather: weather, Timeout: timeout, Logger: logger}
}

// Augment extracts a location from the goal and looks up current
// conditions for it. No location, or a failed lookup, yields nil and
// never an error; the plan proceeds without weather.
func (a *Augmenter) Augment(ctx context.Context, goalText string) *plan.WeatherInfo {
	location := ExtractLocation(goalText)
	if location == "" {
		return nil
	}

	ctx, cancel := context.WithTimeout(ctx, a.Timeout)
	defer cancel()

	obs, err := a.Weather.Current(ctx, location)
	if err != nil {
		a.Logger.LogFallback("weather", fmt.Sprintf("lookup for %q failed: %v", location, err))
		return nil
	}

	return &plan.WeatherInfo{
		Location:  location,
		TempC:     obs.TempC,
		Condition: obs.Condition,
	}
}

// ExtractLocation finds a candidate location token in the goal text:
// first a known city name, then a trailing "in <Capitalized>" phrase.
// Returns "" when nothing matches. No NLP, keyword matching only.
func ExtractLocation(goalText string) string {
	lower := strings.ToLower(goalText)
	for _, city := range knownCities {
		if containsWord(lower, city) {
			return city
		}
	}

	if m := inLocationPat.FindStringSubmatch(goalText); m != nil {
		return strings.ToLower(m[1])
	}
	return ""
}

func containsWord(haystack, word string) bool {
	idx := strings.Index(haystack, word)
	for idx >= 0 {
		before := idx == 0 || !isLetter(haystack[idx-1])
		afterIdx := idx + len(word)
		after := afterIdx >= len(haystack) || !isLetter(haystack[afterIdx])
		if before && after {
			return true
		}
		next := strings.Index(haystack[idx+1:], word)
		if next < 0 {
			return false
		}
		idx += 1 + next
	}
	return false
}

func isLetter(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}
