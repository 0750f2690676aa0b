package providers

import (
	"context"

	"scoreboard-service/internal/domain"
)

// ScoreProvider defines how upstream scoreboard data is fetched and
// normalized. Sport parameters are upstream partition keys in slash form
// ("basketball/nba").
type ScoreProvider interface {
	// FetchScores returns the general feed for one partition, deduplicated
	// by event ID and truncated to limit when limit > 0.
	FetchScores(ctx context.Context, sport string, limit int) ([]domain.Event, error)

	// FetchGroupScores returns the feed filtered to one upstream group id.
	FetchGroupScores(ctx context.Context, sport string, groupID int) ([]domain.Event, error)

	// FetchTop25Scores returns events with at least one ranked competitor.
	FetchTop25Scores(ctx context.Context, sport string) ([]domain.Event, error)

	// FetchGameDetails returns per-event in-progress detail (period, clock).
	FetchGameDetails(ctx context.Context, sport, eventID string) (domain.GameDetails, error)
}
