package messages

import "strings"

const (
	PriorityHigh    = "HIGH"
	PriorityNeutral = "NEUTRAL"
	PriorityLow     = "LOW"
)

// DefaultPriorities is used when the configuration lists none.
var DefaultPriorities = []string{PriorityHigh, PriorityNeutral, PriorityLow}

// Priorities is the configured set of priorities a message may carry.
type Priorities []string

// Normalize upper-cases p and reports whether it is one of the configured
// priorities. An empty p resolves to NEUTRAL when that is allowed.
func (ps Priorities) Normalize(p string) (string, bool) {
	p = strings.ToUpper(strings.TrimSpace(p))
	if p == "" {
		p = PriorityNeutral
	}
	for _, allowed := range ps {
		if strings.EqualFold(allowed, p) {
			return p, true
		}
	}
	return "", false
}
