package scores

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"go.uber.org/goleak"

	"scoreboard-service/internal/cache"
	"scoreboard-service/internal/domain"
	"scoreboard-service/internal/providers"
	"scoreboard-service/internal/testutil"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

var fixedNow = testutil.MustParseRFC3339("2024-01-10T20:00:00Z")

func newTestService(p providers.ScoreProvider) *Service {
	return New(Config{
		Provider: p,
		Events:   cache.New[[]domain.Event](nil, cache.Config{}),
		Boards:   cache.New[PerformerBoard](nil, cache.Config{}),
		Now:      testutil.NowAt(fixedNow),
	})
}

func TestScoresFiltersStandardWindow(t *testing.T) {
	provider := &testutil.StubProvider{
		ScoresFn: func(ctx context.Context, sport string, limit int) ([]domain.Event, error) {
			return []domain.Event{
				testutil.Event("recent-final", sport, "Final", fixedNow.Add(-11*time.Hour)),
				testutil.Event("stale-final", sport, "Final", fixedNow.Add(-13*time.Hour)),
				testutil.Event("tonight", sport, "Scheduled", fixedNow.Add(5*time.Hour)),
				testutil.Event("next-week", sport, "Scheduled", fixedNow.Add(30*time.Hour)),
			}, nil
		},
	}
	svc := newTestService(provider)

	res, err := svc.Scores(context.Background(), ScoresQuery{Sport: "basketball_nba"})
	if err != nil {
		t.Fatalf("Scores returned error: %v", err)
	}
	if got := len(res.Events); got != 2 {
		t.Fatalf("expected 2 events inside the standard window, got %d", got)
	}
	if res.Events[0].ID != "recent-final" || res.Events[1].ID != "tonight" {
		t.Fatalf("unexpected events: %q, %q", res.Events[0].ID, res.Events[1].ID)
	}
}

func TestScoresCachesResult(t *testing.T) {
	var calls atomic.Int64
	provider := &testutil.StubProvider{
		ScoresFn: func(ctx context.Context, sport string, limit int) ([]domain.Event, error) {
			calls.Add(1)
			return []domain.Event{testutil.Event("g1", sport, "Final", fixedNow.Add(-time.Hour))}, nil
		},
	}
	svc := newTestService(provider)

	first, err := svc.Scores(context.Background(), ScoresQuery{Sport: "basketball_nba"})
	if err != nil {
		t.Fatalf("first call: %v", err)
	}
	if first.FromCache {
		t.Fatal("first call should not be served from cache")
	}

	second, err := svc.Scores(context.Background(), ScoresQuery{Sport: "basketball_nba"})
	if err != nil {
		t.Fatalf("second call: %v", err)
	}
	if !second.FromCache {
		t.Fatal("second call should be served from cache")
	}
	if got := calls.Load(); got != 1 {
		t.Fatalf("expected 1 upstream call, got %d", got)
	}

	forced, err := svc.Scores(context.Background(), ScoresQuery{Sport: "basketball_nba", ForceRefresh: true})
	if err != nil {
		t.Fatalf("forced call: %v", err)
	}
	if forced.FromCache {
		t.Fatal("force refresh must bypass the cache read")
	}
	if got := calls.Load(); got != 2 {
		t.Fatalf("expected 2 upstream calls after force refresh, got %d", got)
	}
}

func TestCollectionUnknownName(t *testing.T) {
	svc := newTestService(&testutil.StubProvider{})

	_, err := svc.Collection(context.Background(), CollectionQuery{Name: "pac_12"})
	if !errors.Is(err, ErrUnknownCollection) {
		t.Fatalf("expected ErrUnknownCollection, got %v", err)
	}
}

func TestCollectionUnsupportedSport(t *testing.T) {
	svc := newTestService(&testutil.StubProvider{})

	// Big 12 only has a basketball partition registered.
	_, err := svc.Collection(context.Background(), CollectionQuery{Name: "big_12", Sport: "football_college"})
	if !errors.Is(err, ErrUnsupportedSport) {
		t.Fatalf("expected ErrUnsupportedSport, got %v", err)
	}
}

func TestCollectionMergesPartitionsFirstSeenWins(t *testing.T) {
	basketball := "basketball/mens-college-basketball"
	football := "football/college-football"

	provider := &testutil.StubProvider{
		GroupScoresFn: func(ctx context.Context, sport string, groupID int) ([]domain.Event, error) {
			switch sport {
			case basketball:
				shared := testutil.Event("e2", sport, "Final", fixedNow.Add(-time.Hour))
				shared.Venue = "Basketball Arena"
				return []domain.Event{
					testutil.Event("e1", sport, "Final", fixedNow.Add(-2*time.Hour)),
					shared,
				}, nil
			case football:
				shared := testutil.Event("e2", sport, "Final", fixedNow.Add(-time.Hour))
				shared.Venue = "Football Stadium"
				return []domain.Event{
					shared,
					testutil.Event("e3", sport, "Final", fixedNow.Add(-30*time.Minute)),
				}, nil
			}
			t.Errorf("unexpected sport %q", sport)
			return nil, nil
		},
	}
	svc := newTestService(provider)

	res, err := svc.Collection(context.Background(), CollectionQuery{Name: "big_sky"})
	if err != nil {
		t.Fatalf("Collection returned error: %v", err)
	}
	if got := len(res.Events); got != 3 {
		t.Fatalf("expected 3 distinct events, got %d", got)
	}
	for _, event := range res.Events {
		if event.ID == "e2" && event.Venue != "Basketball Arena" {
			t.Fatalf("duplicate resolution should keep the first-seen event, got venue %q", event.Venue)
		}
	}
	if want := []int{5, 20}; len(res.GroupIDs) != 2 || res.GroupIDs[0] != want[0] || res.GroupIDs[1] != want[1] {
		t.Fatalf("expected group ids %v, got %v", want, res.GroupIDs)
	}
}

func TestCollectionPartitionFailureDegrades(t *testing.T) {
	basketball := "basketball/mens-college-basketball"

	provider := &testutil.StubProvider{
		GroupScoresFn: func(ctx context.Context, sport string, groupID int) ([]domain.Event, error) {
			if sport == basketball {
				return []domain.Event{testutil.Event("bk1", sport, "Final", fixedNow.Add(-time.Hour))}, nil
			}
			return nil, errors.New("upstream 503")
		},
	}
	svc := newTestService(provider)

	res, err := svc.Collection(context.Background(), CollectionQuery{Name: "big_sky"})
	if err != nil {
		t.Fatalf("partial failure must not fail the batch: %v", err)
	}
	if len(res.Events) != 1 || res.Events[0].ID != "bk1" {
		t.Fatalf("expected the surviving partition's event, got %+v", res.Events)
	}
}

func TestCollectionAllPartitionsFailedReturnsEmpty(t *testing.T) {
	svc := newTestService(testutil.UnavailableProvider())

	res, err := svc.Collection(context.Background(), CollectionQuery{Name: "big_sky", ForceRefresh: true})
	if err != nil {
		t.Fatalf("total upstream failure must degrade, not error: %v", err)
	}
	if len(res.Events) != 0 {
		t.Fatalf("expected empty result, got %d events", len(res.Events))
	}
}
