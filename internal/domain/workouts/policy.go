package workouts

import (
	"strings"
	"time"
)

// HasStarted reports whether the session no longer accepts applications.
// A session starting exactly at now counts as started.
func (w WorkingOut) HasStarted(now time.Time) bool {
	return !w.StartMoment.After(now)
}

// OwnedBy reports whether trainerID authored the session.
func (w WorkingOut) OwnedBy(trainerID uint) bool {
	return trainerID != 0 && w.TrainerID == trainerID
}

// Finder narrows the public listing of working-outs.
type Finder struct {
	Keyword  string   `form:"keyword"`
	MinPrice *float64 `form:"minPrice"`
	MaxPrice *float64 `form:"maxPrice"`
}

// Matches applies the finder in memory; the store applies the same rules in SQL.
func (f Finder) Matches(w WorkingOut) bool {
	if kw := strings.ToLower(strings.TrimSpace(f.Keyword)); kw != "" {
		hay := strings.ToLower(w.Ticker + " " + w.Title + " " + w.Description)
		if !strings.Contains(hay, kw) {
			return false
		}
	}
	if f.MinPrice != nil && w.Price < *f.MinPrice {
		return false
	}
	if f.MaxPrice != nil && w.Price > *f.MaxPrice {
		return false
	}
	return true
}
