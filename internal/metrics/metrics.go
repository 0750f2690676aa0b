package metrics

import (
	"sync"
	"time"
)

type partitionStats struct {
	fetches          int
	errors           int
	lastFetchLatency time.Duration
}

type cacheStats struct {
	hits   int
	misses int
}

// Recorder captures lightweight, in-memory metrics about partition fetches
// and cache behavior. It is nil-safe so call sites never have to guard.
type Recorder struct {
	mu         sync.Mutex
	partitions map[string]*partitionStats
	caches     map[string]*cacheStats
	otel       *otelInstruments
}

func NewRecorder() *Recorder {
	return newRecorder(nil)
}

func newRecorder(otel *otelInstruments) *Recorder {
	return &Recorder{
		partitions: make(map[string]*partitionStats),
		caches:     make(map[string]*cacheStats),
		otel:       otel,
	}
}

// RecordPartitionFetch increments counters for one upstream partition call
// and stores the last observed latency.
func (r *Recorder) RecordPartitionFetch(sport string, duration time.Duration, err error) {
	if r == nil {
		return
	}

	r.mu.Lock()
	stats := r.ensurePartition(sport)
	stats.fetches++
	stats.lastFetchLatency = duration
	if err != nil {
		stats.errors++
	}
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordPartitionFetch(sport, duration, err)
	}
}

// RecordCacheLookup tracks a hit or miss for a cache-backed endpoint.
func (r *Recorder) RecordCacheLookup(endpoint string, hit bool) {
	if r == nil {
		return
	}

	r.mu.Lock()
	stats := r.ensureCache(endpoint)
	if hit {
		stats.hits++
	} else {
		stats.misses++
	}
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordCacheLookup(endpoint, hit)
	}
}

// RecordEnrichment tracks one per-event detail fetch.
func (r *Recorder) RecordEnrichment(sport string, duration time.Duration, err error) {
	if r == nil || r.otel == nil {
		return
	}
	r.otel.recordEnrichment(sport, duration, err)
}

// RecordHTTPRequest tracks basic HTTP metrics.
func (r *Recorder) RecordHTTPRequest(method, path string, status int, duration time.Duration) {
	if r == nil || r.otel == nil {
		return
	}
	r.otel.recordHTTPRequest(method, path, status, duration)
}

// Snapshot is a copy of the current counters for one partition.
type Snapshot struct {
	Fetches          int
	Errors           int
	LastFetchLatency time.Duration
}

// PartitionSnapshot returns a copy of the counters for the partition.
func (r *Recorder) PartitionSnapshot(sport string) Snapshot {
	if r == nil {
		return Snapshot{}
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	if stats, ok := r.partitions[sport]; ok && stats != nil {
		return Snapshot{
			Fetches:          stats.fetches,
			Errors:           stats.errors,
			LastFetchLatency: stats.lastFetchLatency,
		}
	}
	return Snapshot{}
}

// CacheHits returns the recorded hit count for an endpoint.
func (r *Recorder) CacheHits(endpoint string) int {
	if r == nil {
		return 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	if stats, ok := r.caches[endpoint]; ok {
		return stats.hits
	}
	return 0
}

// CacheMisses returns the recorded miss count for an endpoint.
func (r *Recorder) CacheMisses(endpoint string) int {
	if r == nil {
		return 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	if stats, ok := r.caches[endpoint]; ok {
		return stats.misses
	}
	return 0
}

// ensurePartition must be called with r.mu held.
func (r *Recorder) ensurePartition(sport string) *partitionStats {
	stats, ok := r.partitions[sport]
	if !ok {
		stats = &partitionStats{}
		r.partitions[sport] = stats
	}
	return stats
}

// ensureCache must be called with r.mu held.
func (r *Recorder) ensureCache(endpoint string) *cacheStats {
	stats, ok := r.caches[endpoint]
	if !ok {
		stats = &cacheStats{}
		r.caches[endpoint] = stats
	}
	return stats
}
