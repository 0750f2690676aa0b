package domain

import "strings"

// UnrankedPriority sorts unrecognized sports after every registered league.
const UnrankedPriority = 999

// Sport describes one upstream partition family. Key is the slash form the
// upstream API expects ("basketball/nba"); Slug is the underscore form used
// in request parameters ("basketball_nba").
type Sport struct {
	Key      string
	Slug     string
	Display  string
	Priority int
}

// registry is the closed set of leagues with an explicit feed ordering.
// Lower priority sorts first in merged feeds.
var registry = []Sport{
	{Key: "basketball/mens-college-basketball", Slug: "basketball_mens-college", Display: "Basketball Mens-College-Basketball", Priority: 1},
	{Key: "basketball/nba", Slug: "basketball_nba", Display: "Basketball NBA", Priority: 2},
	{Key: "football/college-football", Slug: "football_college", Display: "Football College-Football", Priority: 3},
	{Key: "football/nfl", Slug: "football_nfl", Display: "Football NFL", Priority: 4},
	{Key: "hockey/nhl", Slug: "hockey_nhl", Display: "Hockey NHL", Priority: 5},
	{Key: "baseball/mlb", Slug: "baseball_mlb", Display: "Baseball MLB", Priority: 6},
	{Key: "soccer/eng.1", Slug: "soccer_eng.1", Display: "Soccer Eng.1", Priority: 7},
	{Key: "soccer/usa.1", Slug: "soccer_usa.1", Display: "Soccer Usa.1", Priority: 8},
}

var (
	sportsByKey  = make(map[string]Sport, len(registry))
	sportsBySlug = make(map[string]Sport, len(registry))
)

func init() {
	for _, s := range registry {
		sportsByKey[s.Key] = s
		sportsBySlug[s.Slug] = s
	}
}

// SportByKey looks up a registered sport by its upstream key.
func SportByKey(key string) (Sport, bool) {
	s, ok := sportsByKey[key]
	return s, ok
}

// SportBySlug looks up a registered sport by its request slug.
func SportBySlug(slug string) (Sport, bool) {
	s, ok := sportsBySlug[slug]
	return s, ok
}

// SportPriority returns the feed ordering rank for an upstream key.
// Unknown sports sort last.
func SportPriority(key string) int {
	if s, ok := sportsByKey[key]; ok {
		return s.Priority
	}
	return UnrankedPriority
}

// KeyForSlug converts a request slug to the upstream key form. Registered
// sports use their canonical mapping (the college slugs do not round-trip
// mechanically); everything else swaps underscores for slashes.
func KeyForSlug(slug string) string {
	if s, ok := sportsBySlug[slug]; ok {
		return s.Key
	}
	return strings.ReplaceAll(slug, "_", "/")
}

// SlugForKey converts an upstream key back to the request slug form.
func SlugForKey(key string) string {
	if s, ok := sportsByKey[key]; ok {
		return s.Slug
	}
	return strings.ReplaceAll(key, "/", "_")
}

// SportDisplay renders a human-readable league label for an upstream key.
func SportDisplay(key string) string {
	if s, ok := sportsByKey[key]; ok {
		return s.Display
	}
	display := titleWords(strings.ReplaceAll(key, "/", " "))
	for _, fix := range [...][2]string{{"Nba", "NBA"}, {"Nfl", "NFL"}, {"Mlb", "MLB"}, {"Nhl", "NHL"}} {
		display = strings.ReplaceAll(display, fix[0], fix[1])
	}
	return display
}

func titleWords(s string) string {
	parts := strings.Fields(s)
	for i, p := range parts {
		parts[i] = strings.ToUpper(p[:1]) + p[1:]
	}
	return strings.Join(parts, " ")
}

// DefaultLiveSports is the partition set checked when no sport filter is
// supplied to the live feed.
func DefaultLiveSports() []string {
	return []string{
		"basketball/nba",
		"football/nfl",
		"baseball/mlb",
		"hockey/nhl",
		"soccer/eng.1",
		"soccer/usa.1",
		"basketball/mens-college-basketball",
		"football/college-football",
	}
}

// DefaultPerformerSports is the partition set scanned for top performers.
// Soccer leaders feeds are sparse upstream, so they are skipped.
func DefaultPerformerSports() []string {
	return []string{
		"basketball/nba",
		"football/nfl",
		"baseball/mlb",
		"hockey/nhl",
		"basketball/mens-college-basketball",
		"football/college-football",
	}
}

// Catalog lists the user-facing sport slugs grouped by family, for the
// discovery endpoint.
func Catalog() map[string]map[string]string {
	return map[string]map[string]string{
		"basketball": {
			"nba":     "basketball_nba",
			"college": "basketball_mens-college",
			"wnba":    "basketball_wnba",
		},
		"football": {
			"nfl":     "football_nfl",
			"college": "football_college",
		},
		"baseball": {
			"mlb":     "baseball_mlb",
			"college": "baseball_college-baseball",
		},
		"hockey": {
			"nhl": "hockey_nhl",
		},
		"soccer": {
			"premier_league":   "soccer_eng.1",
			"champions_league": "soccer_uefa.champions",
			"mls":              "soccer_usa.1",
			"la_liga":          "soccer_esp.1",
			"bundesliga":       "soccer_ger.1",
			"serie_a":          "soccer_ita.1",
			"ligue_1":          "soccer_fra.1",
		},
		"tennis": {
			"atp": "tennis_atp",
			"wta": "tennis_wta",
		},
		"golf": {
			"pga": "golf_pga",
		},
	}
}
