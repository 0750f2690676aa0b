package providers_test

import (
	"context"
	"errors"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"scoreboard-service/internal/domain"
	"scoreboard-service/internal/providers"
	"scoreboard-service/internal/testutil"
)

func TestRetrySucceedsAfterTransientFailure(t *testing.T) {
	var calls atomic.Int64
	stub := &testutil.StubProvider{
		ScoresFn: func(ctx context.Context, sport string, limit int) ([]domain.Event, error) {
			if calls.Add(1) == 1 {
				return nil, errors.New("transient")
			}
			return []domain.Event{{ID: "1", Sport: sport}}, nil
		},
	}

	logger, buf := testutil.NewBufferLogger()
	wrapped := providers.NewRetryingProvider(stub, logger, 3, time.Millisecond)
	events, err := wrapped.FetchScores(context.Background(), "basketball/nba", 10)
	if err != nil {
		t.Fatalf("expected recovery on the second attempt: %v", err)
	}
	if len(events) != 1 || calls.Load() != 2 {
		t.Fatalf("expected 2 calls and 1 event, got %d calls and %d events", calls.Load(), len(events))
	}
	if !strings.Contains(buf.String(), "provider fetch retry") {
		t.Fatalf("expected a retry log line, got %q", buf.String())
	}
}

func TestRetryExhaustsAttemptsAndKeepsLastError(t *testing.T) {
	var calls atomic.Int64
	lastErr := errors.New("still down")
	stub := &testutil.StubProvider{
		GroupScoresFn: func(ctx context.Context, sport string, groupID int) ([]domain.Event, error) {
			calls.Add(1)
			return nil, lastErr
		},
	}

	logger, _ := testutil.NewBufferLogger()
	wrapped := providers.NewRetryingProvider(stub, logger, 3, time.Millisecond)
	_, err := wrapped.FetchGroupScores(context.Background(), "football/college-football", 21)
	if !errors.Is(err, lastErr) {
		t.Fatalf("expected the last provider error, got %v", err)
	}
	if calls.Load() != 3 {
		t.Fatalf("expected exactly 3 attempts, got %d", calls.Load())
	}
}

func TestRetryStopsOnContextCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	stub := &testutil.StubProvider{
		Top25Fn: func(ctx context.Context, sport string) ([]domain.Event, error) {
			cancel()
			return nil, errors.New("failing while context dies")
		},
	}

	logger, _ := testutil.NewBufferLogger()
	wrapped := providers.NewRetryingProvider(stub, logger, 5, time.Hour)
	_, err := wrapped.FetchTop25Scores(ctx, "basketball/mens-college-basketball")
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled instead of waiting out the backoff, got %v", err)
	}
}

func TestRetryDefaultsApplyForZeroConfig(t *testing.T) {
	var calls atomic.Int64
	stub := &testutil.StubProvider{
		DetailsFn: func(ctx context.Context, sport, eventID string) (domain.GameDetails, error) {
			calls.Add(1)
			return domain.GameDetails{}, errors.New("down")
		},
	}

	logger, _ := testutil.NewBufferLogger()
	wrapped := providers.NewRetryingProvider(stub, logger, 0, 0)
	if _, err := wrapped.FetchGameDetails(context.Background(), "hockey/nhl", "9"); err == nil {
		t.Fatal("expected the provider error to surface")
	}
	if calls.Load() != 2 {
		t.Fatalf("expected the default 2 attempts, got %d", calls.Load())
	}
}
