// Package collections maps user-facing collection names (conferences,
// divisions, "top 25") to the upstream partitions that serve them.
package collections

// Top25 is the partition sentinel meaning "apply the top-25 ranked filter
// instead of a group filter".
const Top25 = -1

// Partition is one upstream-queryable subdivision of a sport: a numeric
// group id, or the Top25 sentinel.
type Partition struct {
	Sport string // upstream sport key, e.g. "basketball/mens-college-basketball"
	Group int
}

// Group is a named collection resolving to one or more partitions.
type Group struct {
	Name       string
	Partitions []Partition
}

const (
	collegeBasketball = "basketball/mens-college-basketball"
	collegeFootball   = "football/college-football"
)

// groups is the static collection registry, built once at process start.
// Group ids are upstream identifiers: Big Sky is group 5 for basketball and
// 20 for football, MVFC is football group 21, FCS is football group 81, and
// group 90 is all of college football (FBS + FCS).
var groups = map[string]Group{
	"big_sky": {
		Name: "big_sky",
		Partitions: []Partition{
			{Sport: collegeBasketball, Group: 5},
			{Sport: collegeFootball, Group: 20},
		},
	},
	"big_12": {
		Name:       "big_12",
		Partitions: []Partition{{Sport: collegeBasketball, Group: 21}},
	},
	"mvfc": {
		Name:       "mvfc",
		Partitions: []Partition{{Sport: collegeFootball, Group: 21}},
	},
	"missouri_valley_football": {
		Name:       "mvfc",
		Partitions: []Partition{{Sport: collegeFootball, Group: 21}},
	},
	"fcs": {
		Name:       "fcs",
		Partitions: []Partition{{Sport: collegeFootball, Group: 81}},
	},
	"fcs_football": {
		Name:       "fcs",
		Partitions: []Partition{{Sport: collegeFootball, Group: 81}},
	},
	"all": {
		Name:       "all",
		Partitions: []Partition{{Sport: collegeFootball, Group: 90}},
	},
	"top_25": {
		Name:       "top_25",
		Partitions: []Partition{{Sport: collegeBasketball, Group: Top25}},
	},
}

// GroupByName looks up a collection by its normalized name.
func GroupByName(name string) (Group, bool) {
	g, ok := groups[Normalize(name)]
	return g, ok
}

// KnownGroups returns the distinct registered collection names, for error
// messages and discovery responses.
func KnownGroups() []string {
	seen := make(map[string]struct{}, len(groups))
	names := make([]string, 0, len(groups))
	for _, g := range groups {
		if _, ok := seen[g.Name]; ok {
			continue
		}
		seen[g.Name] = struct{}{}
		names = append(names, g.Name)
	}
	return names
}
