// Package scores is the aggregation engine: it expands requests into
// upstream partition fetches, merges and deduplicates the results, applies
// the live-window policy, and memoizes whole result sets in the shared TTL
// cache. Pagination happens in the endpoint layer on top of cached slices.
package scores

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"scoreboard-service/internal/cache"
	"scoreboard-service/internal/collections"
	"scoreboard-service/internal/domain"
	"scoreboard-service/internal/livewindow"
	"scoreboard-service/internal/metrics"
	"scoreboard-service/internal/providers"
)

const (
	// liveTTL is short: the live feed is the most volatile surface.
	liveTTL        = 2 * time.Minute
	scoresTTL      = 5 * time.Minute
	collectionTTL  = 5 * time.Minute
	performersTTL  = 10 * time.Minute
	performersBack = 24 * time.Hour

	// collectionSkipThreshold bounds latency: when a pure collection
	// request already returned this many events, the supplemental
	// general fetch is skipped.
	collectionSkipThreshold = 25

	defaultFetchLimit   = 50
	defaultFetchTimeout = 8 * time.Second
)

// ErrUnknownCollection is returned when a requested collection name is not
// in the registry. Only the single-collection flow surfaces it; the live
// flow drops unknown names silently.
var ErrUnknownCollection = errors.New("unknown collection")

// ErrUnsupportedSport is returned when a collection exists but has no
// partitions for the requested sport.
var ErrUnsupportedSport = errors.New("sport not available for collection")

// Config wires the aggregation service.
type Config struct {
	Provider providers.ScoreProvider
	Events   *cache.Cache[[]domain.Event]
	Boards   *cache.Cache[PerformerBoard]
	Logger   *slog.Logger
	Metrics  *metrics.Recorder
	// FetchTimeout bounds each upstream partition call so one stalled
	// partition cannot block the whole aggregate. Zero means the default.
	FetchTimeout time.Duration
	// FetchLimit caps events requested per general partition fetch.
	FetchLimit int
	// Now overrides the clock, for tests.
	Now func() time.Time
}

// Service orchestrates concurrent partition fetches behind the TTL cache.
type Service struct {
	provider     providers.ScoreProvider
	events       *cache.Cache[[]domain.Event]
	boards       *cache.Cache[PerformerBoard]
	logger       *slog.Logger
	metrics      *metrics.Recorder
	fetchTimeout time.Duration
	fetchLimit   int
	now          func() time.Time
}

// New constructs a Service. Caches are required; a nil logger or recorder
// disables that concern.
func New(cfg Config) *Service {
	s := &Service{
		provider:     cfg.Provider,
		events:       cfg.Events,
		boards:       cfg.Boards,
		logger:       cfg.Logger,
		metrics:      cfg.Metrics,
		fetchTimeout: cfg.FetchTimeout,
		fetchLimit:   cfg.FetchLimit,
		now:          cfg.Now,
	}
	if s.fetchTimeout <= 0 {
		s.fetchTimeout = defaultFetchTimeout
	}
	if s.fetchLimit <= 0 {
		s.fetchLimit = defaultFetchLimit
	}
	if s.now == nil {
		s.now = time.Now
	}
	return s
}

// ScoresQuery selects the single-sport scores feed.
type ScoresQuery struct {
	Sport        string // request slug, e.g. "basketball_nba"
	ForceRefresh bool
}

// ScoresResult is the ordered feed for one partition.
type ScoresResult struct {
	Events    []domain.Event
	FromCache bool
}

// Scores returns the general feed for one sport, windowed to the standard
// policy and cached for five minutes.
func (s *Service) Scores(ctx context.Context, q ScoresQuery) (ScoresResult, error) {
	key := cache.ScoresKey(q.Sport)
	if !q.ForceRefresh {
		if cached, ok := s.events.Get(key); ok {
			s.metrics.RecordCacheLookup("scores", true)
			return ScoresResult{Events: cached, FromCache: true}, nil
		}
	}
	s.metrics.RecordCacheLookup("scores", false)

	sport := domain.KeyForSlug(q.Sport)
	fetched := s.fetchGeneral(ctx, []string{sport})

	now := s.now()
	events := make([]domain.Event, 0, len(fetched))
	for _, event := range fetched {
		if livewindow.Contains(event.StartTime, event.Status, now, livewindow.Standard) {
			events = append(events, event)
		}
	}

	events = s.enrich(ctx, events)
	s.events.SetTTL(key, events, scoresTTL)
	return ScoresResult{Events: events}, nil
}

// CollectionQuery selects one named collection's games.
type CollectionQuery struct {
	Name         string
	Sport        string // optional request slug restricting the partitions
	ForceRefresh bool
}

// CollectionResult is the merged, deduplicated result for one collection.
type CollectionResult struct {
	Events    []domain.Event
	Name      string
	GroupIDs  []int
	FromCache bool
}

// Collection returns every partition of one named collection, fetched
// concurrently and deduplicated by event ID (first occurrence wins).
func (s *Service) Collection(ctx context.Context, q CollectionQuery) (CollectionResult, error) {
	group, ok := collections.GroupByName(q.Name)
	if !ok {
		return CollectionResult{}, ErrUnknownCollection
	}

	partitions := group.Partitions
	if q.Sport != "" {
		sport := domain.KeyForSlug(q.Sport)
		partitions = nil
		for _, p := range group.Partitions {
			if p.Sport == sport {
				partitions = append(partitions, p)
			}
		}
		if len(partitions) == 0 {
			return CollectionResult{}, ErrUnsupportedSport
		}
	}

	groupIDs := make([]int, 0, len(partitions))
	for _, p := range partitions {
		groupIDs = append(groupIDs, p.Group)
	}

	key := cache.CollectionKey(q.Name, q.Sport)
	if !q.ForceRefresh {
		if cached, ok := s.events.Get(key); ok {
			s.metrics.RecordCacheLookup("collection", true)
			return CollectionResult{Events: cached, Name: group.Name, GroupIDs: groupIDs, FromCache: true}, nil
		}
	}
	s.metrics.RecordCacheLookup("collection", false)

	events := dedupeByID(s.fetchPartitions(ctx, partitions))
	events = s.enrich(ctx, events)

	s.events.SetTTL(key, events, collectionTTL)
	return CollectionResult{Events: events, Name: group.Name, GroupIDs: groupIDs}, nil
}
