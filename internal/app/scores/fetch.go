package scores

import (
	"context"
	"sync"
	"time"

	"scoreboard-service/internal/collections"
	"scoreboard-service/internal/domain"
	"scoreboard-service/internal/logging"
)

// fetchPartitions fans out one upstream call per partition and flattens the
// results in partition order, so concurrency never leaks into result order.
// Failed partitions are logged and skipped; an all-failed fan-out yields an
// empty slice, not an error.
func (s *Service) fetchPartitions(ctx context.Context, partitions []collections.Partition) []domain.Event {
	if len(partitions) == 0 {
		return nil
	}

	results := make([][]domain.Event, len(partitions))
	var wg sync.WaitGroup
	for i, p := range partitions {
		wg.Add(1)
		go func(i int, p collections.Partition) {
			defer wg.Done()
			events, err := s.fetchPartition(ctx, p)
			if err != nil {
				s.logWarn(ctx, "partition fetch failed, skipping",
					logging.FieldSport, p.Sport, logging.FieldGroup, p.Group, "err", err)
				return
			}
			results[i] = events
		}(i, p)
	}
	wg.Wait()

	var merged []domain.Event
	for _, events := range results {
		merged = append(merged, events...)
	}
	return merged
}

func (s *Service) fetchPartition(ctx context.Context, p collections.Partition) ([]domain.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, s.fetchTimeout)
	defer cancel()

	start := time.Now()
	var (
		events []domain.Event
		err    error
	)
	if p.Group == collections.Top25 {
		events, err = s.provider.FetchTop25Scores(ctx, p.Sport)
	} else {
		events, err = s.provider.FetchGroupScores(ctx, p.Sport, p.Group)
	}
	s.metrics.RecordPartitionFetch(p.Sport, time.Since(start), err)
	return events, err
}

// fetchGeneral fans out the unfiltered feed for each sport and flattens the
// results in input order. Failures are logged and skipped like partitions.
func (s *Service) fetchGeneral(ctx context.Context, sports []string) []domain.Event {
	if len(sports) == 0 {
		return nil
	}

	results := make([][]domain.Event, len(sports))
	var wg sync.WaitGroup
	for i, sport := range sports {
		wg.Add(1)
		go func(i int, sport string) {
			defer wg.Done()

			fetchCtx, cancel := context.WithTimeout(ctx, s.fetchTimeout)
			defer cancel()

			start := time.Now()
			events, err := s.provider.FetchScores(fetchCtx, sport, s.fetchLimit)
			s.metrics.RecordPartitionFetch(sport, time.Since(start), err)
			if err != nil {
				s.logWarn(ctx, "general fetch failed, skipping",
					logging.FieldSport, sport, "err", err)
				return
			}
			results[i] = events
		}(i, sport)
	}
	wg.Wait()

	var merged []domain.Event
	for _, events := range results {
		merged = append(merged, events...)
	}
	return merged
}

// dedupeByID keeps the first occurrence of each event ID, preserving order.
func dedupeByID(events []domain.Event) []domain.Event {
	seen := make(map[string]struct{}, len(events))
	unique := make([]domain.Event, 0, len(events))
	for _, event := range events {
		if _, ok := seen[event.ID]; ok {
			continue
		}
		seen[event.ID] = struct{}{}
		unique = append(unique, event)
	}
	return unique
}

func (s *Service) logWarn(ctx context.Context, msg string, args ...any) {
	logger := logging.FromContext(ctx, s.logger)
	if logger != nil {
		logger.Warn(msg, args...)
	}
}

func (s *Service) logInfo(ctx context.Context, msg string, args ...any) {
	logger := logging.FromContext(ctx, s.logger)
	if logger != nil {
		logger.Info(msg, args...)
	}
}
