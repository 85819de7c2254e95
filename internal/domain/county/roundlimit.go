package county

import (
	"encoding/json"
	"strconv"
	"strings"
)

// UnlimitedMarker is the literal stored by county configuration when a
// processing lane has no round cap. It is passed through to callers
// unchanged rather than being coerced to a numeric sentinel.
const UnlimitedMarker = "many"

// RoundLimit is the per-lane round cap for a county: either a finite count
// or unlimited.
type RoundLimit struct {
	unlimited bool
	count     int
}

// FiniteRounds returns a finite round limit.
func FiniteRounds(n int) RoundLimit {
	if n < 0 {
		n = 0
	}
	return RoundLimit{count: n}
}

// UnlimitedRounds returns the unlimited round limit.
func UnlimitedRounds() RoundLimit {
	return RoundLimit{unlimited: true}
}

// ParseRoundLimit parses the stored configuration value. The unlimited marker
// (and its legacy spelling "unlimited") map to UnlimitedRounds; anything else
// is parsed as a count, with unparseable values treated as zero.
func ParseRoundLimit(raw string) RoundLimit {
	trimmed := strings.TrimSpace(strings.ToLower(raw))
	if trimmed == UnlimitedMarker || trimmed == "unlimited" {
		return UnlimitedRounds()
	}
	n, err := strconv.Atoi(trimmed)
	if err != nil || n < 0 {
		return FiniteRounds(0)
	}
	return FiniteRounds(n)
}

// IsUnlimited reports whether the lane has no round cap.
func (l RoundLimit) IsUnlimited() bool {
	return l.unlimited
}

// Count returns the finite round count. Zero when unlimited.
func (l RoundLimit) Count() int {
	if l.unlimited {
		return 0
	}
	return l.count
}

// Allows reports whether another round may be created given the number of
// rounds already completed.
func (l RoundLimit) Allows(completed int) bool {
	if l.unlimited {
		return true
	}
	return completed < l.count
}

// Storage returns the configuration string form.
func (l RoundLimit) Storage() string {
	if l.unlimited {
		return UnlimitedMarker
	}
	return strconv.Itoa(l.count)
}

// MarshalJSON emits the unlimited marker as a string and finite limits as numbers.
func (l RoundLimit) MarshalJSON() ([]byte, error) {
	if l.unlimited {
		return json.Marshal(UnlimitedMarker)
	}
	return json.Marshal(l.count)
}

// UnmarshalJSON accepts either the marker string or a number.
func (l *RoundLimit) UnmarshalJSON(data []byte) error {
	var n int
	if err := json.Unmarshal(data, &n); err == nil {
		*l = FiniteRounds(n)
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	*l = ParseRoundLimit(s)
	return nil
}
