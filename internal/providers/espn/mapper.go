package espn

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"scoreboard-service/internal/domain"
)

// upstream timestamps come in RFC3339 or a minute-precision variant.
var dateLayouts = []string{time.RFC3339, "2006-01-02T15:04Z"}

func mapEvents(events []eventResponse, sport string) []domain.Event {
	mapped := make([]domain.Event, 0, len(events))
	for _, event := range events {
		if e, ok := mapEvent(event, sport); ok {
			mapped = append(mapped, e)
		}
	}
	return mapped
}

// mapEvent builds the one canonical Event value from an upstream event.
// Events without both a home and an away competitor are dropped.
func mapEvent(event eventResponse, sport string) (domain.Event, bool) {
	if len(event.Competitions) == 0 {
		return domain.Event{}, false
	}
	competition := event.Competitions[0]

	var homeTeam, awayTeam *domain.TeamSide
	for _, competitor := range competition.Competitors {
		side := mapTeam(competitor)
		switch competitor.HomeAway {
		case "home":
			homeTeam = &side
		case "away":
			awayTeam = &side
		}
	}
	if homeTeam == nil || awayTeam == nil {
		return domain.Event{}, false
	}

	name := event.Name
	if name == "" {
		name = "Unknown vs Unknown"
	}
	status := competition.Status.Type.Description
	if status == "" {
		status = "Unknown"
	}
	venue := competition.Venue.FullName
	if venue == "" {
		venue = "Unknown Venue"
	}

	return domain.Event{
		ID:            event.ID,
		Name:          name,
		StartTime:     parseDate(event.Date),
		Status:        status,
		HomeTeam:      *homeTeam,
		AwayTeam:      *awayTeam,
		Venue:         convertVenueName(venue),
		Sport:         sport,
		SportDisplay:  domain.SportDisplay(sport),
		TopPerformers: mapPerformers(competition.Competitors, sport),
	}, true
}

func mapTeam(competitor competitorResponse) domain.TeamSide {
	name := competitor.Team.DisplayName
	if name == "" {
		name = "Unknown"
	}
	nickname := competitor.Team.Name
	if nickname == "" {
		nickname = name
	}
	abbr := competitor.Team.Abbreviation
	if abbr == "" {
		abbr = "UNK"
	}
	score := competitor.Score
	if score == "" {
		score = "0"
	}

	// Rank 99 is the upstream sentinel for unranked.
	rank := 0
	if competitor.CuratedRank != nil && competitor.CuratedRank.Current != 99 {
		rank = competitor.CuratedRank.Current
	}

	return domain.TeamSide{
		Name:         name,
		Nickname:     nickname,
		Abbreviation: abbr,
		Score:        score,
		Rank:         rank,
	}
}

// mapPerformers takes the top leader per stat category from each
// competitor, skipping internal rating stats.
func mapPerformers(competitors []competitorResponse, sport string) []domain.Performer {
	performers := []domain.Performer{}
	for _, competitor := range competitors {
		teamName := competitor.Team.DisplayName
		if teamName == "" {
			teamName = "Unknown"
		}
		teamAbbr := competitor.Team.Abbreviation
		if teamAbbr == "" {
			teamAbbr = "UNK"
		}

		for _, category := range competitor.Leaders {
			if _, skip := skippedStatCategories[strings.ToUpper(category.Name)]; skip {
				continue
			}
			if len(category.Leaders) == 0 {
				continue
			}

			displayName := category.ShortDisplayName
			if displayName == "" {
				displayName = category.DisplayName
			}
			if displayName == "" {
				displayName = category.Name
			}

			leader := category.Leaders[0]
			playerName := leader.Athlete.DisplayName
			if playerName == "" {
				playerName = "Unknown Player"
			}

			performers = append(performers, domain.Performer{
				PlayerName:   playerName,
				Team:         teamName,
				TeamAbbr:     teamAbbr,
				StatCategory: displayName,
				Value:        leader.Value,
				Description:  formatStatDescription(sport, category.Name, displayName, leader.Value),
			})
		}
	}
	return performers
}

func convertVenueName(venue string) string {
	if converted, ok := venueConversions[venue]; ok {
		return converted
	}
	return venue
}

func parseDate(raw string) time.Time {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.UTC()
		}
	}
	return time.Time{}
}

// formatStatDescription renders a per-sport human description for a stat
// value, e.g. "31 points" or "142 passing yards".
func formatStatDescription(sport, category, displayName string, value float64) string {
	cat := strings.ToLower(category)
	sportLower := strings.ToLower(sport)
	v := formatStatValue(value)

	switch {
	case strings.Contains(sportLower, "basketball"):
		switch {
		case strings.Contains(cat, "point"), strings.Contains(cat, "scoring"):
			return v + " points"
		case strings.Contains(cat, "rebound"):
			return v + " rebounds"
		case strings.Contains(cat, "assist"):
			return v + " assists"
		case strings.Contains(cat, "steal"):
			return v + " steals"
		case strings.Contains(cat, "block"):
			return v + " blocks"
		}
	case strings.Contains(sportLower, "football"):
		switch {
		case strings.Contains(cat, "passing") && strings.Contains(cat, "yard"):
			return v + " passing yards"
		case strings.Contains(cat, "rushing") && strings.Contains(cat, "yard"):
			return v + " rushing yards"
		case strings.Contains(cat, "receiving") && strings.Contains(cat, "yard"):
			return v + " receiving yards"
		case strings.Contains(cat, "touchdown"), strings.Contains(cat, "td"):
			return v + " touchdowns"
		case strings.Contains(cat, "sack"):
			return v + " sacks"
		case strings.Contains(cat, "interception"):
			return v + " interceptions"
		}
	case strings.Contains(sportLower, "baseball"):
		switch {
		case strings.Contains(cat, "home run"), strings.Contains(cat, "hr"):
			return v + " home runs"
		case strings.Contains(cat, "hit"):
			return v + " hits"
		case strings.Contains(cat, "rbi"):
			return v + " RBIs"
		case strings.Contains(cat, "run"):
			return v + " runs"
		case strings.Contains(cat, "strikeout"):
			return v + " strikeouts"
		}
	case strings.Contains(sportLower, "hockey"), strings.Contains(sportLower, "soccer"):
		switch {
		case strings.Contains(cat, "goal"):
			return v + " goals"
		case strings.Contains(cat, "assist"):
			return v + " assists"
		case strings.Contains(cat, "save"):
			return v + " saves"
		case strings.Contains(cat, "shot"):
			return v + " shots"
		}
	}

	return v + " " + strings.ToLower(displayName)
}

// formatStatValue drops the fraction for whole values: 31, not 31.0.
func formatStatValue(value float64) string {
	if value == float64(int64(value)) {
		return strconv.FormatInt(int64(value), 10)
	}
	return fmt.Sprintf("%g", value)
}
