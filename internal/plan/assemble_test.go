package plan

import (
	"testing"
	"time"
)

var testNow = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func TestAssembleRenumbersAcrossDays(t *testing.T) {
	steps := []Step{
		{Day: 1, Title: "Book tickets", Duration: "1 hour"},
		{Day: 1, Title: "Pack", Duration: "30 minutes"},
		{Day: 2, Title: "Street food walk", Duration: "3 hours"},
		{Day: 2, Title: "Visit old city", Duration: "2 hours"},
	}

	p := Assemble("Plan a 2-day vegetarian food tour in Hyderabad", steps, nil, "id1", testNow)

	if len(p.Steps) != 4 {
		t.Fatalf("expected 4 steps, got %d", len(p.Steps))
	}
	for i, s := range p.Steps {
		if s.Number != i+1 {
			t.Errorf("step %d: expected number %d, got %d", i, i+1, s.Number)
		}
	}
	for i := 1; i < len(p.Steps); i++ {
		if p.Steps[i].Day < p.Steps[i-1].Day {
			t.Errorf("day order violated at step %d: %d after %d", i, p.Steps[i].Day, p.Steps[i-1].Day)
		}
	}
	if p.TotalDuration != "2 days" {
		t.Errorf("expected total duration '2 days', got %q", p.TotalDuration)
	}
}

func TestAssembleNormalizesDecreasingDays(t *testing.T) {
	steps := []Step{
		{Day: 2, Title: "a"},
		{Day: 1, Title: "b"},
	}
	p := Assemble("goal", steps, nil, "id", testNow)
	if p.Steps[1].Day != 2 {
		t.Errorf("expected day kept at running max 2, got %d", p.Steps[1].Day)
	}
}

func TestAssembleSumsNumericDurations(t *testing.T) {
	steps := []Step{
		{Day: 1, Title: "a", Duration: "45 minutes"},
		{Day: 1, Title: "b", Duration: "1 hour"},
		{Day: 1, Title: "c", Duration: "15 mins"},
	}
	p := Assemble("goal", steps, nil, "id", testNow)
	if p.TotalDuration != "2 hours" {
		t.Errorf("expected '2 hours', got %q", p.TotalDuration)
	}
}

func TestAssembleFallsBackToOngoing(t *testing.T) {
	steps := []Step{
		{Day: 1, Title: "Review vocabulary", Duration: "daily"},
		{Day: 1, Title: "Practice exercises", Duration: "30 minutes"},
	}
	p := Assemble("Organize a 5-step daily study routine for learning Python", steps, nil, "id", testNow)
	if p.TotalDuration != "Ongoing" {
		t.Errorf("expected 'Ongoing', got %q", p.TotalDuration)
	}
}

func TestAssembleEmptyStepsGetsPlaceholder(t *testing.T) {
	p := Assemble("goal", nil, nil, "id", testNow)
	if len(p.Steps) != 1 {
		t.Fatalf("expected 1 placeholder step, got %d", len(p.Steps))
	}
	if p.Steps[0].Title != PlaceholderStep.Title {
		t.Errorf("unexpected placeholder title %q", p.Steps[0].Title)
	}
	if p.Steps[0].Number != 1 || p.Steps[0].Day != 1 {
		t.Errorf("placeholder not numbered: %+v", p.Steps[0])
	}
}

func TestAssembleAttachesWeather(t *testing.T) {
	w := &WeatherInfo{Location: "hyderabad", TempC: 28, Condition: "partly cloudy"}
	p := Assemble("goal", []Step{{Day: 1, Title: "a", Duration: "1 hour"}}, w, "id", testNow)
	if p.Weather == nil || p.Weather.TempC != 28 {
		t.Fatalf("weather not attached: %+v", p.Weather)
	}
}

func TestParseMinutes(t *testing.T) {
	cases := []struct {
		in   string
		want float64
		ok   bool
	}{
		{"30 minutes", 30, true},
		{"1 hour", 60, true},
		{"2 hrs", 120, true},
		{"45 min", 45, true},
		{"1.5 hours", 90, true},
		{"a few days", 0, false},
		{"", 0, false},
		{"daily", 0, false},
	}
	for _, c := range cases {
		got, ok := parseMinutes(c.in)
		if ok != c.ok || (ok && got != c.want) {
			t.Errorf("parseMinutes(%q) = %v,%v; want %v,%v", c.in, got, ok, c.want, c.ok)
		}
	}
}
