package testutil

import (
	"time"

	"scoreboard-service/internal/domain"
)

// Event builds a minimal event for tests. Sport should be an upstream sport
// key such as "basketball/nba".
func Event(id, sport, status string, start time.Time) domain.Event {
	return domain.Event{
		ID:           id,
		Name:         "Home vs Away " + id,
		StartTime:    start,
		Status:       status,
		HomeTeam:     domain.TeamSide{Name: "Home " + id, Abbreviation: "HM"},
		AwayTeam:     domain.TeamSide{Name: "Away " + id, Abbreviation: "AW"},
		Venue:        "Test Arena",
		Sport:        sport,
		SportDisplay: domain.SportDisplay(sport),
	}
}

// EventWithPerformer attaches a single stat line to a test event.
func EventWithPerformer(id, sport, status string, start time.Time, p domain.Performer) domain.Event {
	ev := Event(id, sport, status, start)
	ev.TopPerformers = []domain.Performer{p}
	return ev
}
