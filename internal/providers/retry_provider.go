package providers

import (
	"context"
	"log/slog"
	"time"

	"scoreboard-service/internal/domain"
	"scoreboard-service/internal/logging"
)

const (
	defaultRetryAttempts = 2
	defaultBackoff       = 150 * time.Millisecond
)

type backoffFunc func(attempt int) time.Duration

// retryingProvider wraps a ScoreProvider with retry/backoff behavior.
type retryingProvider struct {
	inner       ScoreProvider
	logger      *slog.Logger
	maxAttempts int
	backoffFn   backoffFunc
}

// NewRetryingProvider wraps the given provider with retries. If
// maxAttempts/backoff are <= 0, defaults are used. The defaults stay small:
// the aggregate layer already treats a failed partition as skippable, so
// long retry loops only add latency.
func NewRetryingProvider(inner ScoreProvider, logger *slog.Logger, maxAttempts int, backoff time.Duration) ScoreProvider {
	if maxAttempts <= 0 {
		maxAttempts = defaultRetryAttempts
	}
	if backoff <= 0 {
		backoff = defaultBackoff
	}
	return &retryingProvider{
		inner:       inner,
		logger:      logger,
		maxAttempts: maxAttempts,
		backoffFn: func(attempt int) time.Duration {
			return time.Duration(attempt) * backoff
		},
	}
}

func (r *retryingProvider) FetchScores(ctx context.Context, sport string, limit int) ([]domain.Event, error) {
	return retry(ctx, r, "scores", sport, func() ([]domain.Event, error) {
		return r.inner.FetchScores(ctx, sport, limit)
	})
}

func (r *retryingProvider) FetchGroupScores(ctx context.Context, sport string, groupID int) ([]domain.Event, error) {
	return retry(ctx, r, "group scores", sport, func() ([]domain.Event, error) {
		return r.inner.FetchGroupScores(ctx, sport, groupID)
	})
}

func (r *retryingProvider) FetchTop25Scores(ctx context.Context, sport string) ([]domain.Event, error) {
	return retry(ctx, r, "top-25 scores", sport, func() ([]domain.Event, error) {
		return r.inner.FetchTop25Scores(ctx, sport)
	})
}

func (r *retryingProvider) FetchGameDetails(ctx context.Context, sport, eventID string) (domain.GameDetails, error) {
	return retry(ctx, r, "game details", sport, func() (domain.GameDetails, error) {
		return r.inner.FetchGameDetails(ctx, sport, eventID)
	})
}

func retry[T any](ctx context.Context, r *retryingProvider, op, sport string, fn func() (T, error)) (T, error) {
	var (
		zero    T
		lastErr error
	)

	for attempt := 1; attempt <= r.maxAttempts; attempt++ {
		result, err := fn()
		if err == nil {
			return result, nil
		}
		lastErr = err

		if attempt == r.maxAttempts {
			break
		}

		r.logWarn(ctx, "provider fetch retry",
			"op", op, logging.FieldSport, sport,
			"attempt", attempt, "max_attempts", r.maxAttempts, "err", err)

		select {
		case <-ctx.Done():
			return zero, ctx.Err()
		case <-time.After(r.backoffFn(attempt)):
		}
	}

	r.logWarn(ctx, "provider fetch failed",
		"op", op, logging.FieldSport, sport,
		"attempts", r.maxAttempts, "err", lastErr)
	return zero, lastErr
}

func (r *retryingProvider) logWarn(ctx context.Context, msg string, args ...any) {
	logger := logging.FromContext(ctx, r.logger)
	if logger != nil {
		logger.Warn(msg, args...)
	}
}
