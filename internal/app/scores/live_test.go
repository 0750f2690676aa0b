package scores

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"scoreboard-service/internal/domain"
	"scoreboard-service/internal/testutil"
)

func TestLiveSortsByPriorityThenStart(t *testing.T) {
	nba := "basketball/nba"
	college := "basketball/mens-college-basketball"
	nhl := "hockey/nhl"

	provider := &testutil.StubProvider{
		ScoresFn: func(ctx context.Context, sport string, limit int) ([]domain.Event, error) {
			switch sport {
			case nba:
				return []domain.Event{
					testutil.Event("nba-late", sport, "Final", fixedNow.Add(-time.Hour)),
					testutil.Event("nba-early", sport, "Final", fixedNow.Add(-2*time.Hour)),
				}, nil
			case college:
				return []domain.Event{testutil.Event("college", sport, "Final", fixedNow.Add(-time.Hour))}, nil
			case nhl:
				return []domain.Event{testutil.Event("nhl", sport, "Final", fixedNow.Add(-3*time.Hour))}, nil
			}
			return nil, nil
		},
	}
	svc := newTestService(provider)

	res, err := svc.Live(context.Background(), LiveQuery{})
	if err != nil {
		t.Fatalf("Live returned error: %v", err)
	}
	want := []string{"college", "nba-early", "nba-late", "nhl"}
	if len(res.Events) != len(want) {
		t.Fatalf("expected %d events, got %d", len(want), len(res.Events))
	}
	for i, id := range want {
		if res.Events[i].ID != id {
			t.Fatalf("position %d: expected %q, got %q", i, id, res.Events[i].ID)
		}
	}
}

func TestLiveWindowTightWithoutCollections(t *testing.T) {
	nba := "basketball/nba"
	provider := &testutil.StubProvider{
		ScoresFn: func(ctx context.Context, sport string, limit int) ([]domain.Event, error) {
			if sport != nba {
				return nil, nil
			}
			return []domain.Event{
				testutil.Event("in-progress", sport, "In Progress", fixedNow.Add(-10*time.Hour)),
				testutil.Event("recent-final", sport, "Final", fixedNow.Add(-3*time.Hour)),
				testutil.Event("old-final", sport, "Final", fixedNow.Add(-5*time.Hour)),
				testutil.Event("soon", sport, "Scheduled", fixedNow.Add(6*time.Hour)),
				testutil.Event("tomorrow", sport, "Scheduled", fixedNow.Add(7*time.Hour)),
				testutil.Event("postponed", sport, "Postponed", fixedNow),
			}, nil
		},
	}
	svc := newTestService(provider)

	res, err := svc.Live(context.Background(), LiveQuery{Sport: "basketball_nba"})
	if err != nil {
		t.Fatalf("Live returned error: %v", err)
	}
	got := make(map[string]bool, len(res.Events))
	for _, event := range res.Events {
		got[event.ID] = true
	}
	for _, id := range []string{"in-progress", "recent-final", "soon"} {
		if !got[id] {
			t.Errorf("expected %q inside the tight window", id)
		}
	}
	for _, id := range []string{"old-final", "tomorrow", "postponed"} {
		if got[id] {
			t.Errorf("expected %q outside the tight window", id)
		}
	}
}

func TestLiveCollectionEventsWinDedupe(t *testing.T) {
	basketball := "basketball/mens-college-basketball"

	provider := &testutil.StubProvider{
		GroupScoresFn: func(ctx context.Context, sport string, groupID int) ([]domain.Event, error) {
			if sport != basketball {
				return nil, nil
			}
			shared := testutil.Event("shared", sport, "Final", fixedNow.Add(-time.Hour))
			shared.Venue = "Collection Venue"
			return []domain.Event{shared}, nil
		},
		ScoresFn: func(ctx context.Context, sport string, limit int) ([]domain.Event, error) {
			if sport != basketball {
				return nil, nil
			}
			shared := testutil.Event("shared", sport, "Final", fixedNow.Add(-time.Hour))
			shared.Venue = "General Venue"
			return []domain.Event{shared}, nil
		},
	}
	svc := newTestService(provider)

	res, err := svc.Live(context.Background(), LiveQuery{Collections: []string{"big_sky"}})
	if err != nil {
		t.Fatalf("Live returned error: %v", err)
	}
	if len(res.Events) != 1 {
		t.Fatalf("expected 1 deduplicated event, got %d", len(res.Events))
	}
	if res.Events[0].Venue != "Collection Venue" {
		t.Fatalf("collection-sourced event must win the dedupe, got venue %q", res.Events[0].Venue)
	}
	if len(res.Filters) != 1 || res.Filters[0] != "big_sky" {
		t.Fatalf("expected recognized filter big_sky, got %v", res.Filters)
	}
}

func TestLiveSkipsGeneralFetchForLargeCollectionResult(t *testing.T) {
	var generalCalls atomic.Int64
	provider := &testutil.StubProvider{
		GroupScoresFn: func(ctx context.Context, sport string, groupID int) ([]domain.Event, error) {
			events := make([]domain.Event, 0, 26)
			for i := 0; i < 26; i++ {
				events = append(events, testutil.Event(fmt.Sprintf("e%d", i), sport, "Final", fixedNow.Add(-time.Hour)))
			}
			return events, nil
		},
		ScoresFn: func(ctx context.Context, sport string, limit int) ([]domain.Event, error) {
			generalCalls.Add(1)
			return nil, nil
		},
	}
	svc := newTestService(provider)

	res, err := svc.Live(context.Background(), LiveQuery{Collections: []string{"big_12"}})
	if err != nil {
		t.Fatalf("Live returned error: %v", err)
	}
	if got := generalCalls.Load(); got != 0 {
		t.Fatalf("substantial collection result must skip the general fetch, saw %d calls", got)
	}
	if len(res.Events) != 26 {
		t.Fatalf("expected 26 collection events, got %d", len(res.Events))
	}
}

func TestLiveSportFilterKeepsGeneralFetch(t *testing.T) {
	var generalCalls atomic.Int64
	provider := &testutil.StubProvider{
		GroupScoresFn: func(ctx context.Context, sport string, groupID int) ([]domain.Event, error) {
			events := make([]domain.Event, 0, 30)
			for i := 0; i < 30; i++ {
				events = append(events, testutil.Event(fmt.Sprintf("e%d", i), sport, "Final", fixedNow.Add(-time.Hour)))
			}
			return events, nil
		},
		ScoresFn: func(ctx context.Context, sport string, limit int) ([]domain.Event, error) {
			generalCalls.Add(1)
			return nil, nil
		},
	}
	svc := newTestService(provider)

	// An explicit sport filter always restricts and triggers the general
	// fetch, no matter how large the collection result is.
	_, err := svc.Live(context.Background(), LiveQuery{Sport: "basketball_nba", Collections: []string{"big_12"}})
	if err != nil {
		t.Fatalf("Live returned error: %v", err)
	}
	if got := generalCalls.Load(); got != 1 {
		t.Fatalf("expected 1 general fetch for the explicit sport filter, got %d", got)
	}
}

func TestLivePartitionFailuresDegrade(t *testing.T) {
	basketball := "basketball/mens-college-basketball"
	provider := &testutil.StubProvider{
		GroupScoresFn: func(ctx context.Context, sport string, groupID int) ([]domain.Event, error) {
			if sport == basketball {
				return []domain.Event{testutil.Event("bk", sport, "Final", fixedNow.Add(-time.Hour))}, nil
			}
			return nil, errors.New("upstream 502")
		},
		ScoresFn: func(ctx context.Context, sport string, limit int) ([]domain.Event, error) {
			return nil, errors.New("upstream 502")
		},
	}
	svc := newTestService(provider)

	res, err := svc.Live(context.Background(), LiveQuery{Collections: []string{"big_sky"}})
	if err != nil {
		t.Fatalf("partial failure must not fail the aggregate: %v", err)
	}
	if len(res.Events) != 1 || res.Events[0].ID != "bk" {
		t.Fatalf("expected the surviving partition's event, got %+v", res.Events)
	}
}

func TestLiveCacheKeyIncludesCollections(t *testing.T) {
	var scoresCalls atomic.Int64
	provider := &testutil.StubProvider{
		ScoresFn: func(ctx context.Context, sport string, limit int) ([]domain.Event, error) {
			scoresCalls.Add(1)
			return nil, nil
		},
	}
	svc := newTestService(provider)

	if _, err := svc.Live(context.Background(), LiveQuery{Sport: "basketball_nba"}); err != nil {
		t.Fatalf("first query: %v", err)
	}
	fetched := scoresCalls.Load()

	res, err := svc.Live(context.Background(), LiveQuery{Sport: "basketball_nba"})
	if err != nil {
		t.Fatalf("repeat query: %v", err)
	}
	if !res.FromCache {
		t.Fatal("repeat query should hit the cache")
	}
	if scoresCalls.Load() != fetched {
		t.Fatal("repeat query must not refetch")
	}

	other, err := svc.Live(context.Background(), LiveQuery{Sport: "basketball_nba", Collections: []string{"big_sky"}})
	if err != nil {
		t.Fatalf("collection query: %v", err)
	}
	if other.FromCache {
		t.Fatal("different collection set must miss the cache")
	}
}
