package scores

import (
	"context"
	"sync"
	"time"

	"scoreboard-service/internal/domain"
	"scoreboard-service/internal/logging"
)

// enrich attaches period/clock detail to in-progress events. The detail
// endpoint is sport-scoped, so lookups fan out one goroutine per sport. A
// failed lookup leaves that event unenriched and is logged, never surfaced.
// Details are set in place on the input slice.
func (s *Service) enrich(ctx context.Context, events []domain.Event) []domain.Event {
	bySport := make(map[string][]int)
	for i, event := range events {
		if domain.IsLiveStatus(event.Status) && event.ID != "" {
			bySport[event.Sport] = append(bySport[event.Sport], i)
		}
	}
	if len(bySport) == 0 {
		return events
	}

	var wg sync.WaitGroup
	for sport, indexes := range bySport {
		wg.Add(1)
		go func(sport string, indexes []int) {
			defer wg.Done()
			for _, idx := range indexes {
				s.enrichEvent(ctx, sport, &events[idx])
			}
		}(sport, indexes)
	}
	wg.Wait()

	return events
}

func (s *Service) enrichEvent(ctx context.Context, sport string, event *domain.Event) {
	fetchCtx, cancel := context.WithTimeout(ctx, s.fetchTimeout)
	defer cancel()

	start := time.Now()
	details, err := s.provider.FetchGameDetails(fetchCtx, sport, event.ID)
	s.metrics.RecordEnrichment(sport, time.Since(start), err)
	if err != nil {
		s.logWarn(ctx, "game detail fetch failed",
			logging.FieldSport, sport,
			logging.FieldEventID, event.ID, "err", err)
		return
	}
	if details == (domain.GameDetails{}) {
		return
	}
	event.Details = &details
}
