package espn

import "time"

const providerName = "espn"

const (
	defaultBaseURL     = "https://site.api.espn.com/apis/site/v2/sports"
	defaultHTTPTimeout = 10 * time.Second
	defaultLimit       = 10

	headerAccept    = "application/json"
	headerUserAgent = "Mozilla/5.0 (compatible; Sports-API/1.0)"
)

// venueConversions renames specific venues before they reach the domain
// model.
var venueConversions = map[string]string{
	"Washington-Grizzly Stadium": "Eastern Idaho Shithole",
}

// skippedStatCategories are internal rating stats that are not
// user-friendly and never surface as top performers.
var skippedStatCategories = map[string]struct{}{
	"RAT":    {},
	"RATING": {},
	"EFF":    {},
	"PER":    {},
}
