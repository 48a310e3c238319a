package usecase

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
	"time"
)

// dobLayouts are tried in order when parsing a date of birth.
var dobLayouts = []string{
	"2006-01-02",
	time.RFC3339,
}

// parseID converts a raw path id into a positive integer.
// Missing, empty, non-numeric, zero and negative ids all fail the same way.
func parseID(raw string) (uint, error) {
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return 0, ErrInvalidID
	}
	return uint(id), nil
}

// parseAge accepts a JSON number, a json.Number, a Go integer or a numeric
// string. The value must be finite and greater than zero. Fractional ages are
// rounded up so the stored age stays positive.
func parseAge(v any) (int, error) {
	var f float64
	switch a := v.(type) {
	case float64:
		f = a
	case float32:
		f = float64(a)
	case int:
		f = float64(a)
	case int64:
		f = float64(a)
	case uint:
		f = float64(a)
	case json.Number:
		n, err := a.Float64()
		if err != nil {
			return 0, ErrInvalidAge
		}
		f = n
	case string:
		n, err := strconv.ParseFloat(strings.TrimSpace(a), 64)
		if err != nil {
			return 0, ErrInvalidAge
		}
		f = n
	default:
		return 0, ErrInvalidAge
	}

	if math.IsNaN(f) || math.IsInf(f, 0) || f <= 0 || f > math.MaxInt32 {
		return 0, ErrInvalidAge
	}
	return int(math.Ceil(f)), nil
}

// parseDob parses a date of birth and normalizes it to UTC.
func parseDob(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	for _, layout := range dobLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, ErrInvalidDob
}
