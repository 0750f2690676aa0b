package collections

import (
	"strings"

	"scoreboard-service/internal/domain"
)

// Resolution is the outcome of expanding user-supplied collection names.
// Names matching a sport slug become sport filters; names matching the group
// registry expand to their partitions. Unknown names are dropped, not
// errors: the endpoint stays permissive and Recognized tells the caller
// which filters actually applied.
type Resolution struct {
	SportFilters []string    // upstream sport keys with no group restriction
	Partitions   []Partition // expanded named-collection partitions
	Recognized   []string    // input names that matched something
}

// Empty reports whether nothing resolved.
func (r Resolution) Empty() bool {
	return len(r.SportFilters) == 0 && len(r.Partitions) == 0
}

// Normalize lowercases a collection name and collapses spaces and hyphens
// to underscores, matching the registry's key form.
func Normalize(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	name = strings.ReplaceAll(name, " ", "_")
	name = strings.ReplaceAll(name, "-", "_")
	return name
}

// Resolve partitions the supplied names into sport filters and
// named-collection partitions.
func Resolve(names []string) Resolution {
	var res Resolution
	for _, raw := range names {
		// Sport slugs carry meaningful hyphens and dots, so they are
		// matched on the lowercased input before normalization.
		slug := strings.ToLower(strings.TrimSpace(raw))
		if sport, ok := domain.SportBySlug(slug); ok {
			res.SportFilters = append(res.SportFilters, sport.Key)
			res.Recognized = append(res.Recognized, slug)
			continue
		}
		name := Normalize(raw)
		if name == "" {
			continue
		}
		if g, ok := groups[name]; ok {
			res.Partitions = append(res.Partitions, g.Partitions...)
			res.Recognized = append(res.Recognized, g.Name)
		}
	}
	return res
}
