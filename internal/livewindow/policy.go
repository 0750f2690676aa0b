// Package livewindow decides whether an event is current enough to surface
// in live results. The policy is pure: callers supply the clock.
package livewindow

import (
	"time"

	"scoreboard-service/internal/domain"
)

// Mode selects how wide the inclusion window is around now.
type Mode int

const (
	// Standard balances showing "today's" games across US time zones
	// against staleness. Used by the plain scores and performer flows.
	Standard Mode = iota
	// Tight keeps the default live feed focused on truly current games.
	Tight
	// Broad covers everything a caller asked for by collection name,
	// regardless of recency.
	Broad
)

type bounds struct {
	finalAge  time.Duration // final games that started within this long ago
	scheduled time.Duration // scheduled games starting within this long
	// futureOnly requires scheduled games to not have started yet.
	futureOnly bool
}

func (m Mode) bounds() bounds {
	switch m {
	case Tight:
		return bounds{finalAge: 4 * time.Hour, scheduled: 6 * time.Hour}
	case Broad:
		return bounds{finalAge: 48 * time.Hour, scheduled: 48 * time.Hour}
	default:
		return bounds{finalAge: 12 * time.Hour, scheduled: 18 * time.Hour, futureOnly: true}
	}
}

// Contains reports whether an event with the given start time and status
// belongs in the live result set at the given instant.
func Contains(start time.Time, status string, now time.Time, mode Mode) bool {
	b := mode.bounds()

	switch domain.ClassifyStatus(status) {
	case domain.StatusLive:
		return true
	case domain.StatusFinal:
		return !start.Before(now.Add(-b.finalAge))
	case domain.StatusScheduled:
		if b.futureOnly {
			// now <= start < now+scheduled
			return !start.Before(now) && start.Before(now.Add(b.scheduled))
		}
		return !start.After(now.Add(b.scheduled))
	default:
		// Unknown statuses cannot be time-windowed safely.
		return false
	}
}
