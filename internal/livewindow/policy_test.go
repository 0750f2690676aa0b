package livewindow

import (
	"testing"
	"time"

	"scoreboard-service/internal/testutil"
)

var now = testutil.MustParseRFC3339("2024-01-10T20:00:00Z")

func TestContainsLiveStatusAlwaysIncluded(t *testing.T) {
	// A live game started long ago still belongs in every mode.
	start := now.Add(-30 * time.Hour)
	for _, mode := range []Mode{Standard, Tight, Broad} {
		for _, status := range []string{"In Progress", "Halftime", "3rd Quarter", "2nd Half", "Overtime"} {
			if !Contains(start, status, now, mode) {
				t.Errorf("mode %v: live status %q should be included", mode, status)
			}
		}
	}
}

func TestContainsFinalAgeBounds(t *testing.T) {
	tests := []struct {
		name  string
		mode  Mode
		start time.Time
		want  bool
	}{
		{"standard keeps 11h old final", Standard, now.Add(-11 * time.Hour), true},
		{"standard keeps final at exactly 12h", Standard, now.Add(-12 * time.Hour), true},
		{"standard drops 13h old final", Standard, now.Add(-13 * time.Hour), false},
		{"tight keeps 3h old final", Tight, now.Add(-3 * time.Hour), true},
		{"tight drops 5h old final", Tight, now.Add(-5 * time.Hour), false},
		{"broad keeps 47h old final", Broad, now.Add(-47 * time.Hour), true},
		{"broad drops 49h old final", Broad, now.Add(-49 * time.Hour), false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Contains(tc.start, "Final", now, tc.mode); got != tc.want {
				t.Fatalf("Contains = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestContainsScheduledBounds(t *testing.T) {
	tests := []struct {
		name  string
		mode  Mode
		start time.Time
		want  bool
	}{
		{"standard keeps game 17h ahead", Standard, now.Add(17 * time.Hour), true},
		{"standard drops game 18h ahead", Standard, now.Add(18 * time.Hour), false},
		{"standard drops scheduled game in the past", Standard, now.Add(-time.Hour), false},
		{"standard keeps game starting now", Standard, now, true},
		{"tight keeps game 6h ahead", Tight, now.Add(6 * time.Hour), true},
		{"tight drops game 7h ahead", Tight, now.Add(7 * time.Hour), false},
		{"tight keeps overdue scheduled game", Tight, now.Add(-time.Hour), true},
		{"broad keeps game 48h ahead", Broad, now.Add(48 * time.Hour), true},
		{"broad drops game 49h ahead", Broad, now.Add(49 * time.Hour), false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Contains(tc.start, "Scheduled", now, tc.mode); got != tc.want {
				t.Fatalf("Contains = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestContainsUnknownStatusExcluded(t *testing.T) {
	for _, status := range []string{"Postponed", "Canceled", "Suspended", ""} {
		for _, mode := range []Mode{Standard, Tight, Broad} {
			if Contains(now, status, now, mode) {
				t.Errorf("mode %v: status %q must be excluded", mode, status)
			}
		}
	}
}

// Three games around a Wednesday evening exercise all three modes at once.
func TestContainsModeComparison(t *testing.T) {
	finalElevenHoursAgo := testutil.MustParseRFC3339("2024-01-10T09:00:00Z")
	scheduledFiveHoursAhead := testutil.MustParseRFC3339("2024-01-11T01:00:00Z")
	finalSixtyHoursAgo := testutil.MustParseRFC3339("2024-01-08T09:00:00Z")

	if !Contains(finalElevenHoursAgo, "Final", now, Standard) {
		t.Error("11h old final belongs in standard")
	}
	if Contains(finalElevenHoursAgo, "Final", now, Tight) {
		t.Error("11h old final does not belong in tight")
	}
	for _, mode := range []Mode{Standard, Tight, Broad} {
		if !Contains(scheduledFiveHoursAhead, "Scheduled", now, mode) {
			t.Errorf("game 5h ahead belongs in mode %v", mode)
		}
	}
	if Contains(finalSixtyHoursAgo, "Final", now, Standard) || Contains(finalSixtyHoursAgo, "Final", now, Tight) {
		t.Error("60h old final is too stale for standard and tight")
	}
	if Contains(finalSixtyHoursAgo, "Final", now, Broad) {
		t.Error("60h old final is outside broad's 48h bound too")
	}
}
