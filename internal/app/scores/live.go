package scores

import (
	"context"
	"sort"

	"scoreboard-service/internal/cache"
	"scoreboard-service/internal/collections"
	"scoreboard-service/internal/domain"
	"scoreboard-service/internal/livewindow"
	"scoreboard-service/internal/logging"
)

// LiveQuery selects the live feed. Sport is a request slug; Collections are
// user-supplied collection names (conferences, "top 25", or sport slugs).
type LiveQuery struct {
	Sport        string
	Collections  []string
	ForceRefresh bool
}

// LiveResult is the merged live feed plus the request metadata the endpoint
// layer surfaces.
type LiveResult struct {
	Events        []domain.Event
	SportsChecked []string
	Filters       []string // recognized collection filters that applied
	FromCache     bool
}

// Live aggregates the live window across partitions:
//
//  1. Collection names expand to named-collection partitions plus sport
//     filters; unknown names drop silently.
//  2. Named-collection partitions are fetched concurrently.
//  3. The general (ungrouped) feed is fetched for the sport filters, or for
//     the default sport set when there are none. A pure collection request
//     that already produced a substantial result skips this supplemental
//     fetch. The window policy is tight without collections, broad with.
//  4. Collection events take priority in the merge; general events dedupe
//     against them by ID. The final order is (sport priority, start time).
//  5. In-progress events are enriched with period/clock detail.
//
// An explicit sport filter always wins: when both sport and collections are
// supplied, the sport restricts the general fetch while collections still
// expand to their partitions.
func (s *Service) Live(ctx context.Context, q LiveQuery) (LiveResult, error) {
	key := cache.LiveKey(q.Sport, q.Collections)

	resolution := collections.Resolve(q.Collections)
	sportFilters := resolution.SportFilters
	if q.Sport != "" {
		sportFilters = append([]string{domain.KeyForSlug(q.Sport)}, sportFilters...)
	}

	generalSports := sportFilters
	if len(generalSports) == 0 {
		generalSports = domain.DefaultLiveSports()
	}

	if !q.ForceRefresh {
		if cached, ok := s.events.Get(key); ok {
			s.metrics.RecordCacheLookup("live", true)
			return LiveResult{
				Events:        cached,
				SportsChecked: generalSports,
				Filters:       resolution.Recognized,
				FromCache:     true,
			}, nil
		}
	}
	s.metrics.RecordCacheLookup("live", false)

	mode := livewindow.Tight
	if len(q.Collections) > 0 {
		mode = livewindow.Broad
	}

	collectionEvents := s.fetchPartitions(ctx, resolution.Partitions)

	// A pure collection request with a substantial result skips the
	// supplemental general fetch to bound latency and upstream cost.
	fetchGeneral := true
	if len(resolution.Partitions) > 0 && len(sportFilters) == 0 && len(collectionEvents) > collectionSkipThreshold {
		fetchGeneral = false
		s.logInfo(ctx, "skipping general fetch, collection result is substantial",
			logging.FieldCount, len(collectionEvents))
	}

	var generalEvents []domain.Event
	if fetchGeneral {
		now := s.now()
		for _, event := range s.fetchGeneral(ctx, generalSports) {
			if livewindow.Contains(event.StartTime, event.Status, now, mode) {
				generalEvents = append(generalEvents, event)
			}
		}
	}

	// Collection-sourced events first: they win the dedupe.
	merged := dedupeByID(append(collectionEvents, generalEvents...))
	sortEvents(merged)
	merged = s.enrich(ctx, merged)

	s.events.SetTTL(key, merged, liveTTL)
	s.logInfo(ctx, "live aggregate refreshed",
		logging.FieldCacheKey, key, logging.FieldCount, len(merged))

	return LiveResult{
		Events:        merged,
		SportsChecked: generalSports,
		Filters:       resolution.Recognized,
	}, nil
}

// sortEvents orders a merged feed by league priority, then chronologically
// within each league. The sort is stable so equal keys keep merge order.
func sortEvents(events []domain.Event) {
	sort.SliceStable(events, func(i, j int) bool {
		pi, pj := domain.SportPriority(events[i].Sport), domain.SportPriority(events[j].Sport)
		if pi != pj {
			return pi < pj
		}
		return events[i].StartTime.Before(events[j].StartTime)
	})
}
