package agent

import "testing"

const sampleReply = `Here is a plan for your food tour:

Day 1: Arrival and Old City
1. Book tickets and accommodation (2 hours)
   - Compare fares across carriers.
   - Pick a hotel near Charminar.
2. Street food walk (3 hours)
   - Start at the old city market.

Day 2: Modern Hyderabad
3. Visit Hitech City cafes (4 hours)
4. Wrap-up dinner (90 minutes)
   - Reserve a table in advance.

Enjoy your trip!`

func TestParseBreakdownDayGrouping(t *testing.T) {
	steps := ParseBreakdown(sampleReply)

	if len(steps) != 4 {
		t.Fatalf("expected 4 steps, got %d: %+v", len(steps), steps)
	}

	if steps[0].Day != 1 || steps[1].Day != 1 {
		t.Errorf("expected first two steps on day 1, got days %d, %d", steps[0].Day, steps[1].Day)
	}
	if steps[2].Day != 2 || steps[3].Day != 2 {
		t.Errorf("expected last two steps on day 2, got days %d, %d", steps[2].Day, steps[3].Day)
	}

	if steps[0].Title != "Book tickets and accommodation" {
		t.Errorf("unexpected title %q", steps[0].Title)
	}
	if steps[0].Duration != "2 hours" {
		t.Errorf("unexpected duration %q", steps[0].Duration)
	}
	if steps[0].Description != "Compare fares across carriers. Pick a hotel near Charminar." {
		t.Errorf("unexpected description %q", steps[0].Description)
	}
	if steps[3].Duration != "90 minutes" {
		t.Errorf("unexpected duration %q", steps[3].Duration)
	}
}

func TestParseBreakdownNoDayHeaders(t *testing.T) {
	steps := ParseBreakdown(`1. Review vocabulary (30 minutes)
2. Practice exercises (1 hour)
3. Read documentation (45 minutes)`)

	if len(steps) != 3 {
		t.Fatalf("expected 3 steps, got %d", len(steps))
	}
	for i, s := range steps {
		if s.Day != 1 {
			t.Errorf("step %d: expected day 1, got %d", i, s.Day)
		}
	}
}

func TestParseBreakdownSkipsUnparseableLines(t *testing.T) {
	steps := ParseBreakdown(`Some preamble the model added.
1. Real step (1 hour)
this line is noise
2. Another step (30 minutes)
trailing commentary`)

	if len(steps) != 2 {
		t.Fatalf("expected 2 steps, got %d", len(steps))
	}
}

func TestParseBreakdownNoDuration(t *testing.T) {
	steps := ParseBreakdown("1. Just a title with no duration")
	if len(steps) != 1 {
		t.Fatalf("expected 1 step, got %d", len(steps))
	}
	if steps[0].Duration != "" {
		t.Errorf("expected empty duration, got %q", steps[0].Duration)
	}
	if steps[0].Title != "Just a title with no duration" {
		t.Errorf("unexpected title %q", steps[0].Title)
	}
}

func TestParseBreakdownMarkdownDayHeader(t *testing.T) {
	steps := ParseBreakdown("**Day 2: The second day**\n1. Something (1 hour)")
	if len(steps) != 1 || steps[0].Day != 2 {
		t.Fatalf("expected one step on day 2, got %+v", steps)
	}
}

func TestParseBreakdownEmptyReply(t *testing.T) {
	if steps := ParseBreakdown(""); len(steps) != 0 {
		t.Errorf("expected no steps, got %d", len(steps))
	}
	if steps := ParseBreakdown("nothing parseable here at all"); len(steps) != 0 {
		t.Errorf("expected no steps, got %d", len(steps))
	}
}
