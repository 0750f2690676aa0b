package testutil

import (
	"context"

	"scoreboard-service/internal/domain"
	"scoreboard-service/internal/providers"
)

// StubProvider implements providers.ScoreProvider with per-call function
// hooks. Unset hooks return empty results.
type StubProvider struct {
	ScoresFn      func(ctx context.Context, sport string, limit int) ([]domain.Event, error)
	GroupScoresFn func(ctx context.Context, sport string, groupID int) ([]domain.Event, error)
	Top25Fn       func(ctx context.Context, sport string) ([]domain.Event, error)
	DetailsFn     func(ctx context.Context, sport, eventID string) (domain.GameDetails, error)
}

func (p *StubProvider) FetchScores(ctx context.Context, sport string, limit int) ([]domain.Event, error) {
	if p.ScoresFn == nil {
		return nil, nil
	}
	return p.ScoresFn(ctx, sport, limit)
}

func (p *StubProvider) FetchGroupScores(ctx context.Context, sport string, groupID int) ([]domain.Event, error) {
	if p.GroupScoresFn == nil {
		return nil, nil
	}
	return p.GroupScoresFn(ctx, sport, groupID)
}

func (p *StubProvider) FetchTop25Scores(ctx context.Context, sport string) ([]domain.Event, error) {
	if p.Top25Fn == nil {
		return nil, nil
	}
	return p.Top25Fn(ctx, sport)
}

func (p *StubProvider) FetchGameDetails(ctx context.Context, sport, eventID string) (domain.GameDetails, error) {
	if p.DetailsFn == nil {
		return domain.GameDetails{}, nil
	}
	return p.DetailsFn(ctx, sport, eventID)
}

// ErrProvider fails every call with the provided error.
type ErrProvider struct {
	Err error
}

func (p ErrProvider) FetchScores(ctx context.Context, sport string, limit int) ([]domain.Event, error) {
	return nil, p.Err
}

func (p ErrProvider) FetchGroupScores(ctx context.Context, sport string, groupID int) ([]domain.Event, error) {
	return nil, p.Err
}

func (p ErrProvider) FetchTop25Scores(ctx context.Context, sport string) ([]domain.Event, error) {
	return nil, p.Err
}

func (p ErrProvider) FetchGameDetails(ctx context.Context, sport, eventID string) (domain.GameDetails, error) {
	return domain.GameDetails{}, p.Err
}

// UnavailableProvider fails every call with providers.ErrProviderUnavailable.
func UnavailableProvider() ErrProvider {
	return ErrProvider{Err: providers.ErrProviderUnavailable}
}
