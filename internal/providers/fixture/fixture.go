// Package fixture returns deterministic events for local runs and
// bootstrapping without hitting the upstream API.
package fixture

import (
	"context"
	"time"

	"scoreboard-service/internal/domain"
)

// Provider serves a static set of events relative to its clock.
type Provider struct {
	now func() time.Time
}

// New creates a fixture provider with a time source.
func New() *Provider {
	return &Provider{now: time.Now}
}

// NewAt creates a fixture provider pinned to a fixed clock, for tests.
func NewAt(now func() time.Time) *Provider {
	return &Provider{now: now}
}

// FetchScores returns a deterministic set of example events.
func (p *Provider) FetchScores(ctx context.Context, sport string, limit int) ([]domain.Event, error) {
	_ = ctx

	base := p.now().UTC().Truncate(time.Hour)
	events := []domain.Event{
		{
			ID:        "fixture-" + domain.SlugForKey(sport) + "-1",
			Name:      "Home Hawks at Away Owls",
			StartTime: base.Add(-90 * time.Minute),
			Status:    "In Progress",
			HomeTeam:  domain.TeamSide{Name: "Home Hawks", Nickname: "Hawks", Abbreviation: "HH", Score: "54"},
			AwayTeam:  domain.TeamSide{Name: "Away Owls", Nickname: "Owls", Abbreviation: "AO", Score: "51"},
			Venue:     "Fixture Fieldhouse",
			Sport:     sport,
			SportDisplay: domain.SportDisplay(sport),
			TopPerformers: []domain.Performer{
				{PlayerName: "Sam Example", Team: "Home Hawks", TeamAbbr: "HH", StatCategory: "Pts", Value: 21, Description: "21 points"},
			},
		},
		{
			ID:           "fixture-" + domain.SlugForKey(sport) + "-2",
			Name:         "River Cats at Harbor Seals",
			StartTime:    base.Add(3 * time.Hour),
			Status:       "Scheduled",
			HomeTeam:     domain.TeamSide{Name: "River Cats", Nickname: "Cats", Abbreviation: "RC", Score: "0", Rank: 12},
			AwayTeam:     domain.TeamSide{Name: "Harbor Seals", Nickname: "Seals", Abbreviation: "HS", Score: "0"},
			Venue:        "Fixture Arena",
			Sport:        sport,
			SportDisplay: domain.SportDisplay(sport),
			TopPerformers: []domain.Performer{},
		},
	}

	if limit > 0 && len(events) > limit {
		events = events[:limit]
	}
	return events, nil
}

// FetchGroupScores returns the same deterministic events for any group.
func (p *Provider) FetchGroupScores(ctx context.Context, sport string, groupID int) ([]domain.Event, error) {
	_ = groupID
	return p.FetchScores(ctx, sport, 0)
}

// FetchTop25Scores returns the fixture events with a ranked competitor.
func (p *Provider) FetchTop25Scores(ctx context.Context, sport string) ([]domain.Event, error) {
	events, err := p.FetchScores(ctx, sport, 0)
	if err != nil {
		return nil, err
	}
	var ranked []domain.Event
	for _, event := range events {
		if event.HomeTeam.Ranked() || event.AwayTeam.Ranked() {
			ranked = append(ranked, event)
		}
	}
	return ranked, nil
}

// FetchGameDetails returns static in-progress detail.
func (p *Provider) FetchGameDetails(ctx context.Context, sport, eventID string) (domain.GameDetails, error) {
	_ = ctx
	_ = sport
	_ = eventID
	return domain.GameDetails{
		Period:       "2nd",
		Clock:        "4:21",
		PeriodNumber: 2,
		TypeDetail:   "2nd Quarter",
	}, nil
}
