package agent

import (
	"regexp"
	"strings"

	"github.com/planora/planora/internal/plan"
)

var (
	dayPat    = regexp.MustCompile(`(?i)^\s*(?:\*+\s*)?day\s+(\d+)\b`)
	stepPat   = regexp.MustCompile(`^\s*(\d+)[.)]\s+(.+)$`)
	durPat    = regexp.MustCompile(`^(.*?)\s*\(([^)]+)\)\s*[:.]?\s*$`)
	bulletPat = regexp.MustCompile(`^\s*[-*•]\s+(.+)$`)
)

// ParseBreakdown turns a free-form completion reply into ordered
// steps. It recognizes "Day N" headers and numbered entries of the
// form "1. Title (duration)", with sub-bullets folded into the
// preceding step's description. Lines that match nothing are skipped.
// Steps appearing before any day header land on day 1.
func ParseBreakdown(text string) []plan.Step {
	var steps []plan.Step
	day := 1

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimRight(line, " \t\r")
		if strings.TrimSpace(line) == "" {
			continue
		}

		if m := dayPat.FindStringSubmatch(line); m != nil {
			day = parseInt(m[1], day)
			continue
		}

		if m := stepPat.FindStringSubmatch(line); m != nil {
			title := strings.TrimSpace(m[2])
			duration := ""
			if d := durPat.FindStringSubmatch(title); d != nil && strings.TrimSpace(d[1]) != "" {
				title = strings.TrimSpace(d[1])
				duration = strings.TrimSpace(d[2])
			}
			steps = append(steps, plan.Step{
				Day:      day,
				Title:    strings.Trim(title, "*"),
				Duration: duration,
			})
			continue
		}

		if m := bulletPat.FindStringSubmatch(line); m != nil && len(steps) > 0 {
			last := &steps[len(steps)-1]
			if last.Description != "" {
				last.Description += " "
			}
			last.Description += strings.TrimSpace(m[1])
		}
	}

	return steps
}

func parseInt(s string, def int) int {
	n := 0
	for _, r := range s {
		if r < '0' || r > '9' {
			return def
		}
		n = n*10 + int(r-'0')
	}
	if n == 0 {
		return def
	}
	return n
}
