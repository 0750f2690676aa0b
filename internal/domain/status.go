package domain

import "strings"

// StatusClass buckets the free-form upstream status vocabulary into the
// three states the window policy can reason about. Anything that is not a
// recognized live, final, or scheduled token classifies as StatusUnknown
// and matches no inclusion rule.
type StatusClass int

const (
	StatusUnknown StatusClass = iota
	StatusLive
	StatusFinal
	StatusScheduled
)

var liveStatuses = map[string]struct{}{
	"in progress": {},
	"halftime":    {},
	"1st quarter": {},
	"2nd quarter": {},
	"3rd quarter": {},
	"4th quarter": {},
	"1st half":    {},
	"2nd half":    {},
	"overtime":    {},
	"live":        {},
	"active":      {},
}

// ClassifyStatus maps an upstream status string to its StatusClass.
func ClassifyStatus(status string) StatusClass {
	s := strings.ToLower(strings.TrimSpace(status))
	if _, ok := liveStatuses[s]; ok {
		return StatusLive
	}
	switch s {
	case "final":
		return StatusFinal
	case "scheduled":
		return StatusScheduled
	default:
		return StatusUnknown
	}
}

// IsLiveStatus reports whether the status is a live synonym.
func IsLiveStatus(status string) bool {
	return ClassifyStatus(status) == StatusLive
}
