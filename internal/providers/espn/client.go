// Package espn adapts the upstream scoreboard API into the domain Event
// model. All normalization (venue renames, rank handling, stat formatting)
// happens here; nothing downstream sees the upstream JSON shape.
package espn

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"scoreboard-service/internal/domain"
	"scoreboard-service/internal/providers"
)

// Config controls how the client reaches the upstream API.
type Config struct {
	BaseURL    string
	HTTPClient *http.Client
}

// Client fetches scoreboard data and maps it to domain events.
type Client struct {
	baseURL    string
	httpClient httpDoer
}

// NewClient constructs a client with the provided configuration.
func NewClient(cfg Config) *Client {
	return &Client{
		baseURL:    normalizeBaseURL(cfg.BaseURL),
		httpClient: resolveHTTPClient(cfg.HTTPClient),
	}
}

// FetchScores retrieves the general scoreboard feed for one partition.
func (c *Client) FetchScores(ctx context.Context, sport string, limit int) ([]domain.Event, error) {
	if limit <= 0 {
		limit = defaultLimit
	}

	payload, err := c.fetchScoreboard(ctx, sport, nil)
	if err != nil {
		return nil, err
	}

	events := mapEvents(payload.Events, sport)
	events = dedupeByID(events)
	if len(events) > limit {
		events = events[:limit]
	}
	return events, nil
}

// FetchGroupScores retrieves the scoreboard feed filtered to one group id.
func (c *Client) FetchGroupScores(ctx context.Context, sport string, groupID int) ([]domain.Event, error) {
	payload, err := c.fetchScoreboard(ctx, sport, map[string]string{"groups": strconv.Itoa(groupID)})
	if err != nil {
		return nil, err
	}
	return mapEvents(payload.Events, sport), nil
}

// FetchTop25Scores retrieves the scoreboard feed filtered to events with a
// ranked competitor. The upstream API has no server-side rank filter, so the
// general feed is filtered here.
func (c *Client) FetchTop25Scores(ctx context.Context, sport string) ([]domain.Event, error) {
	payload, err := c.fetchScoreboard(ctx, sport, nil)
	if err != nil {
		return nil, err
	}

	var ranked []domain.Event
	for _, event := range mapEvents(payload.Events, sport) {
		if event.HomeTeam.Ranked() || event.AwayTeam.Ranked() {
			ranked = append(ranked, event)
		}
	}
	return ranked, nil
}

// FetchGameDetails retrieves in-progress detail from the per-event summary
// feed. An event without competitions yields empty details, not an error.
func (c *Client) FetchGameDetails(ctx context.Context, sport, eventID string) (domain.GameDetails, error) {
	url := fmt.Sprintf("%s/%s/summary?event=%s", c.baseURL, sport, eventID)

	var payload summaryResponse
	if err := c.getJSON(ctx, sport, url, &payload); err != nil {
		return domain.GameDetails{}, err
	}

	if len(payload.Header.Competitions) == 0 {
		return domain.GameDetails{}, nil
	}
	status := payload.Header.Competitions[0].Status
	return domain.GameDetails{
		Period:       status.DisplayPeriod,
		Clock:        status.DisplayClock,
		PeriodNumber: status.Period,
		TypeDetail:   status.Type.Detail,
	}, nil
}

func (c *Client) fetchScoreboard(ctx context.Context, sport string, query map[string]string) (scoreboardResponse, error) {
	url := fmt.Sprintf("%s/%s/scoreboard", c.baseURL, sport)

	var payload scoreboardResponse
	if err := c.getJSON(ctx, sport, url+encodeQuery(query), &payload); err != nil {
		return scoreboardResponse{}, err
	}
	return payload, nil
}

func (c *Client) getJSON(ctx context.Context, sport, url string, payload any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", headerAccept)
	req.Header.Set("User-Agent", headerUserAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return &providers.StatusError{
			Sport:      sport,
			StatusCode: resp.StatusCode,
			Body:       strings.TrimSpace(string(body)),
		}
	}

	return json.NewDecoder(resp.Body).Decode(payload)
}

func encodeQuery(query map[string]string) string {
	if len(query) == 0 {
		return ""
	}
	parts := make([]string, 0, len(query))
	for k, v := range query {
		parts = append(parts, k+"="+v)
	}
	return "?" + strings.Join(parts, "&")
}

func dedupeByID(events []domain.Event) []domain.Event {
	seen := make(map[string]struct{}, len(events))
	unique := events[:0:0]
	for _, event := range events {
		if _, ok := seen[event.ID]; ok {
			continue
		}
		seen[event.ID] = struct{}{}
		unique = append(unique, event)
	}
	return unique
}
