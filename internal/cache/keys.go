package cache

import (
	"fmt"
	"sort"
	"strings"

	"scoreboard-service/internal/collections"
)

// Cache keys are deterministic for a request's filter parameters and never
// include pagination: a single cached aggregate serves every page.

// LiveKey derives the cache key for the live feed. Collection names are
// normalized and sorted so equivalent requests share an entry.
func LiveKey(sportSlug string, collectionNames []string) string {
	key := "live_scores:" + sportOrAll(sportSlug)
	if len(collectionNames) > 0 {
		normalized := make([]string, 0, len(collectionNames))
		for _, name := range collectionNames {
			if n := collections.Normalize(name); n != "" {
				normalized = append(normalized, n)
			}
		}
		sort.Strings(normalized)
		key += ":conf:" + strings.Join(normalized, ",")
	}
	return key
}

// ScoresKey derives the cache key for the single-sport scores feed.
func ScoresKey(sportSlug string) string {
	return "scores:" + sportOrAll(sportSlug)
}

// CollectionKey derives the cache key for a named collection's games.
func CollectionKey(name, sportSlug string) string {
	return "conference:" + collections.Normalize(name) + ":" + sportOrAll(sportSlug)
}

// PerformersKey derives the cache key for the top-performers feed.
func PerformersKey(sportSlug, statCategory string, topN int) string {
	key := "top_performers:" + sportOrAll(sportSlug)
	if statCategory != "" {
		key += ":stat:" + strings.ToLower(statCategory)
	}
	return fmt.Sprintf("%s:top%d", key, topN)
}

func sportOrAll(slug string) string {
	slug = strings.ToLower(strings.TrimSpace(slug))
	if slug == "" {
		return "all"
	}
	// Dots collide with the filesystem backend's suffix handling.
	return strings.ReplaceAll(slug, ".", "_")
}
