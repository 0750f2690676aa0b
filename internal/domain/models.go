package domain

import "time"

// TeamSide summarizes one competitor in an event.
type TeamSide struct {
	Name         string `json:"name"`
	Nickname     string `json:"nickname"`
	Abbreviation string `json:"abbreviation"`
	Score        string `json:"score"`
	// Rank is the poll rank (1-25); 0 means unranked.
	Rank int `json:"rank,omitempty"`
}

// Ranked reports whether the team carries a top-25 rank.
func (t TeamSide) Ranked() bool {
	return t.Rank >= 1 && t.Rank <= 25
}

// Performer is a single top-performer stat record attached to an event.
type Performer struct {
	PlayerName   string  `json:"player_name"`
	Team         string  `json:"team"`
	TeamAbbr     string  `json:"team_abbr"`
	StatCategory string  `json:"stat_category"`
	Value        float64 `json:"value"`
	Description  string  `json:"description"`
}

// GameDetails carries in-progress detail fetched from the per-event summary feed.
type GameDetails struct {
	Period       string `json:"period"`
	Clock        string `json:"clock"`
	PeriodNumber int    `json:"period_number"`
	TypeDetail   string `json:"type_detail"`
}

// Event is the canonical game shape exposed by the service. It is built
// exactly once at the provider boundary; downstream components never see
// raw upstream payloads.
type Event struct {
	ID            string       `json:"id"`
	Name          string       `json:"name"`
	StartTime     time.Time    `json:"date"`
	Status        string       `json:"status"`
	HomeTeam      TeamSide     `json:"home_team"`
	AwayTeam      TeamSide     `json:"away_team"`
	Venue         string       `json:"venue"`
	Sport         string       `json:"sport,omitempty"`
	SportDisplay  string       `json:"sport_display,omitempty"`
	TopPerformers []Performer  `json:"top_performers"`
	Details       *GameDetails `json:"game_details"`
}
