package handlers

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"testing"
	"time"

	"scoreboard-service/internal/app/scores"
	"scoreboard-service/internal/cache"
	"scoreboard-service/internal/domain"
	"scoreboard-service/internal/testutil"
)

var testNow = testutil.MustParseRFC3339("2024-01-10T20:00:00Z")

func newHandler(p *testutil.StubProvider) *Handler {
	svc := scores.New(scores.Config{
		Provider: p,
		Events:   cache.New[[]domain.Event](nil, cache.Config{}),
		Boards:   cache.New[scores.PerformerBoard](nil, cache.Config{}),
		Now:      testutil.NowAt(testNow),
	})
	return NewHandler(svc, nil)
}

func eventsProvider(n int) *testutil.StubProvider {
	return &testutil.StubProvider{
		ScoresFn: func(ctx context.Context, sport string, limit int) ([]domain.Event, error) {
			if sport != "basketball/nba" {
				return nil, nil
			}
			events := make([]domain.Event, 0, n)
			for i := 0; i < n; i++ {
				events = append(events, testutil.Event(fmt.Sprintf("g%d", i), sport, "Final", testNow.Add(-time.Hour)))
			}
			return events, nil
		},
	}
}

func TestHealthAndReady(t *testing.T) {
	h := newHandler(&testutil.StubProvider{})

	rr := testutil.Serve(h, http.MethodGet, "/health", nil)
	testutil.AssertStatus(t, rr, http.StatusOK)

	rr = testutil.Serve(h, http.MethodGet, "/ready", nil)
	testutil.AssertStatus(t, rr, http.StatusOK)

	rr = testutil.Serve(h, http.MethodPost, "/health", nil)
	testutil.AssertStatus(t, rr, http.StatusMethodNotAllowed)
}

func TestUnknownRouteIs404(t *testing.T) {
	h := newHandler(&testutil.StubProvider{})

	rr := testutil.Serve(h, http.MethodGet, "/api/nope", nil)
	testutil.AssertStatus(t, rr, http.StatusNotFound)
}

func TestScoresPagination(t *testing.T) {
	h := newHandler(eventsProvider(7))

	rr := testutil.Serve(h, http.MethodGet, "/api/scores?sport=basketball_nba&page=2&page_size=5", nil)
	testutil.AssertStatus(t, rr, http.StatusOK)

	var body struct {
		Data       []domain.Event `json:"data"`
		Pagination Pagination     `json:"pagination"`
	}
	testutil.DecodeJSON(t, rr, &body)

	if len(body.Data) != 2 {
		t.Fatalf("expected 2 events on page 2, got %d", len(body.Data))
	}
	if body.Pagination.TotalScores != 7 || body.Pagination.TotalPages != 2 {
		t.Fatalf("unexpected pagination: %+v", body.Pagination)
	}
	if body.Pagination.HasNext {
		t.Fatal("last page must not advertise a next page")
	}
	if body.Pagination.PreviousPageURL == nil || !strings.Contains(*body.Pagination.PreviousPageURL, "page=1") {
		t.Fatalf("expected a previous page URL, got %v", body.Pagination.PreviousPageURL)
	}
}

func TestScoresPagePastEndIs404(t *testing.T) {
	h := newHandler(eventsProvider(3))

	rr := testutil.Serve(h, http.MethodGet, "/api/scores?sport=basketball_nba&page=5&page_size=5", nil)
	testutil.AssertStatus(t, rr, http.StatusNotFound)
}

func TestScoresEmptyFirstPageIsOK(t *testing.T) {
	h := newHandler(&testutil.StubProvider{})

	rr := testutil.Serve(h, http.MethodGet, "/api/scores?sport=basketball_nba", nil)
	testutil.AssertStatus(t, rr, http.StatusOK)

	var body struct {
		Data []domain.Event `json:"data"`
	}
	testutil.DecodeJSON(t, rr, &body)
	if len(body.Data) != 0 {
		t.Fatalf("expected empty data, got %d events", len(body.Data))
	}
}

func TestLivePassesFilters(t *testing.T) {
	var sawGroups []int
	provider := &testutil.StubProvider{
		GroupScoresFn: func(ctx context.Context, sport string, groupID int) ([]domain.Event, error) {
			sawGroups = append(sawGroups, groupID)
			return nil, nil
		},
	}
	h := newHandler(provider)

	rr := testutil.Serve(h, http.MethodGet, "/api/live?collections=big_12", nil)
	testutil.AssertStatus(t, rr, http.StatusOK)

	if len(sawGroups) != 1 || sawGroups[0] != 21 {
		t.Fatalf("expected a single group 21 fetch, got %v", sawGroups)
	}

	var body struct {
		Info struct {
			FiltersApplied []string `json:"filters_applied"`
		} `json:"info"`
	}
	testutil.DecodeJSON(t, rr, &body)
	if len(body.Info.FiltersApplied) != 1 || body.Info.FiltersApplied[0] != "big_12" {
		t.Fatalf("expected filters_applied [big_12], got %v", body.Info.FiltersApplied)
	}
}

func TestConferenceUnknownIs404(t *testing.T) {
	h := newHandler(&testutil.StubProvider{})

	rr := testutil.Serve(h, http.MethodGet, "/api/conference/pac_12", nil)
	testutil.AssertStatus(t, rr, http.StatusNotFound)
}

func TestConferenceReturnsGroupInfo(t *testing.T) {
	provider := &testutil.StubProvider{
		GroupScoresFn: func(ctx context.Context, sport string, groupID int) ([]domain.Event, error) {
			return []domain.Event{testutil.Event(fmt.Sprintf("%s-%d", sport, groupID), sport, "Final", testNow.Add(-time.Hour))}, nil
		},
	}
	h := newHandler(provider)

	rr := testutil.Serve(h, http.MethodGet, "/api/conference/Big%20Sky", nil)
	testutil.AssertStatus(t, rr, http.StatusOK)

	var body struct {
		Data []domain.Event `json:"data"`
		Info struct {
			Conference   string `json:"conference"`
			GroupIDsUsed []int  `json:"group_ids_used"`
		} `json:"info"`
	}
	testutil.DecodeJSON(t, rr, &body)
	if body.Info.Conference != "big_sky" {
		t.Fatalf("expected conference big_sky, got %q", body.Info.Conference)
	}
	if len(body.Info.GroupIDsUsed) != 2 {
		t.Fatalf("expected two group ids, got %v", body.Info.GroupIDsUsed)
	}
	if len(body.Data) != 2 {
		t.Fatalf("expected one event per partition, got %d", len(body.Data))
	}
}

func TestTopPerformersRejectsBadTopN(t *testing.T) {
	h := newHandler(&testutil.StubProvider{})

	rr := testutil.Serve(h, http.MethodGet, "/api/top_performers?top_n=99", nil)
	testutil.AssertStatus(t, rr, http.StatusBadRequest)

	rr = testutil.Serve(h, http.MethodGet, "/api/top_performers?top_n=abc", nil)
	testutil.AssertStatus(t, rr, http.StatusBadRequest)
}

func TestSportsCatalog(t *testing.T) {
	h := newHandler(&testutil.StubProvider{})

	rr := testutil.Serve(h, http.MethodGet, "/api/sports", nil)
	testutil.AssertStatus(t, rr, http.StatusOK)

	var body struct {
		Sports map[string]map[string]string `json:"sports"`
	}
	testutil.DecodeJSON(t, rr, &body)
	if len(body.Sports) != 7 {
		t.Fatalf("expected 7 sport families, got %d", len(body.Sports))
	}
	if body.Sports["basketball"]["nba"] != "basketball_nba" {
		t.Fatalf("unexpected catalog entry: %v", body.Sports["basketball"])
	}
}
