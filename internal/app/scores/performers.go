package scores

import (
	"context"
	"sort"
	"strings"
	"time"

	"scoreboard-service/internal/cache"
	"scoreboard-service/internal/domain"
	"scoreboard-service/internal/logging"
)

const (
	defaultTopN = 5
	maxTopN     = 20
)

// PerformersQuery selects the top-performers board. Sport is a request slug
// restricting the board to one sport; empty means the default sport set.
type PerformersQuery struct {
	Sport        string
	StatCategory string
	TopN         int
	ForceRefresh bool
}

// PerformerRecord is one stat line annotated with the game it came from.
type PerformerRecord struct {
	PlayerName   string  `json:"player_name"`
	Team         string  `json:"team"`
	TeamAbbr     string  `json:"team_abbr"`
	StatCategory string  `json:"stat_category"`
	Value        float64 `json:"value"`
	Description  string  `json:"description"`
	Sport        string  `json:"sport"`
	SportDisplay string  `json:"sport_display"`
	GameName     string  `json:"game_name"`
	GameDate     string  `json:"game_date"`
	GameStatus   string  `json:"game_status"`
}

// Summary describes the pool the board was built from.
type Summary struct {
	GamesAnalyzed    int      `json:"total_games_analyzed"`
	PerformerRecords int      `json:"total_performer_records"`
	UniquePlayers    int      `json:"unique_players"`
	Categories       []string `json:"stat_categories_found"`
	TopN             int      `json:"top_n_per_category"`
}

// PerformerBoard groups the best stat lines of the past day by category,
// each category sorted by value descending and truncated to the requested
// size.
type PerformerBoard struct {
	Categories    map[string][]PerformerRecord `json:"top_performers"`
	Summary       Summary                      `json:"summary"`
	SportsChecked []string                     `json:"sports_checked"`
	FromCache     bool                         `json:"-"`
}

// TopPerformers builds the board from events starting within the past 24
// hours. Per-sport fetches run concurrently; a failed sport is skipped and
// the board is built from whatever arrived.
func (s *Service) TopPerformers(ctx context.Context, q PerformersQuery) (PerformerBoard, error) {
	topN := q.TopN
	if topN <= 0 {
		topN = defaultTopN
	}
	if topN > maxTopN {
		topN = maxTopN
	}

	sports := domain.DefaultPerformerSports()
	if q.Sport != "" {
		sports = []string{domain.KeyForSlug(q.Sport)}
	}

	key := cache.PerformersKey(q.Sport, q.StatCategory, topN)
	if !q.ForceRefresh {
		if cached, ok := s.boards.Get(key); ok {
			s.metrics.RecordCacheLookup("performers", true)
			cached.FromCache = true
			return cached, nil
		}
	}
	s.metrics.RecordCacheLookup("performers", false)

	cutoff := s.now().Add(-performersBack)

	var records []PerformerRecord
	games := make(map[string]struct{})
	players := make(map[string]struct{})
	for _, event := range s.fetchGeneral(ctx, sports) {
		if event.StartTime.Before(cutoff) {
			continue
		}
		for _, p := range event.TopPerformers {
			records = append(records, PerformerRecord{
				PlayerName:   p.PlayerName,
				Team:         p.Team,
				TeamAbbr:     p.TeamAbbr,
				StatCategory: p.StatCategory,
				Value:        p.Value,
				Description:  p.Description,
				Sport:        event.Sport,
				SportDisplay: event.SportDisplay,
				GameName:     event.Name,
				GameDate:     event.StartTime.Format(time.RFC3339),
				GameStatus:   event.Status,
			})
			games[event.Sport+"_"+event.Name] = struct{}{}
			players[p.PlayerName] = struct{}{}
		}
	}

	byCategory := make(map[string][]PerformerRecord)
	for _, record := range records {
		if q.StatCategory != "" && !strings.EqualFold(record.StatCategory, q.StatCategory) {
			continue
		}
		byCategory[record.StatCategory] = append(byCategory[record.StatCategory], record)
	}

	categories := make([]string, 0, len(byCategory))
	for category, group := range byCategory {
		sort.SliceStable(group, func(i, j int) bool {
			return group[i].Value > group[j].Value
		})
		if len(group) > topN {
			group = group[:topN]
		}
		byCategory[category] = group
		categories = append(categories, category)
	}
	sort.Strings(categories)

	board := PerformerBoard{
		Categories: byCategory,
		Summary: Summary{
			GamesAnalyzed:    len(games),
			PerformerRecords: len(records),
			UniquePlayers:    len(players),
			Categories:       categories,
			TopN:             topN,
		},
		SportsChecked: sports,
	}

	s.boards.SetTTL(key, board, performersTTL)
	s.logInfo(ctx, "performer board refreshed",
		logging.FieldCacheKey, key, logging.FieldCount, len(records))

	return board, nil
}
