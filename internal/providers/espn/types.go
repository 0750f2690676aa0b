package espn

type scoreboardResponse struct {
	Events []eventResponse `json:"events"`
}

type eventResponse struct {
	ID           string                `json:"id"`
	Name         string                `json:"name"`
	Date         string                `json:"date"`
	Competitions []competitionResponse `json:"competitions"`
}

type competitionResponse struct {
	Status      statusResponse       `json:"status"`
	Venue       venueResponse        `json:"venue"`
	Competitors []competitorResponse `json:"competitors"`
}

type statusResponse struct {
	DisplayClock  string             `json:"displayClock"`
	DisplayPeriod string             `json:"displayPeriod"`
	Period        int                `json:"period"`
	Type          statusTypeResponse `json:"type"`
}

type statusTypeResponse struct {
	Description string `json:"description"`
	Detail      string `json:"detail"`
}

type venueResponse struct {
	FullName string `json:"fullName"`
}

type competitorResponse struct {
	HomeAway    string                   `json:"homeAway"`
	Score       string                   `json:"score"`
	CuratedRank *curatedRankResponse     `json:"curatedRank"`
	Team        teamResponse             `json:"team"`
	Leaders     []leaderCategoryResponse `json:"leaders"`
}

type curatedRankResponse struct {
	Current int `json:"current"`
}

type teamResponse struct {
	DisplayName  string `json:"displayName"`
	Name         string `json:"name"`
	Abbreviation string `json:"abbreviation"`
}

type leaderCategoryResponse struct {
	Name             string           `json:"name"`
	DisplayName      string           `json:"displayName"`
	ShortDisplayName string           `json:"shortDisplayName"`
	Leaders          []leaderResponse `json:"leaders"`
}

type leaderResponse struct {
	Value   float64         `json:"value"`
	Athlete athleteResponse `json:"athlete"`
}

type athleteResponse struct {
	DisplayName string `json:"displayName"`
}

type summaryResponse struct {
	Header summaryHeader `json:"header"`
}

type summaryHeader struct {
	Competitions []summaryCompetition `json:"competitions"`
}

type summaryCompetition struct {
	Status statusResponse `json:"status"`
}
