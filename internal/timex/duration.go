// Package timex provides a time.Duration wrapper that decodes from JSON
// and environment text in a human-friendly form.
package timex

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Duration accepts Go duration strings ("90s", "168h"), a day suffix
// ("7d", "1d12h") or a bare JSON number of nanoseconds.
type Duration struct {
	time.Duration
}

// ParseDuration is time.ParseDuration extended with a leading whole-day
// component, e.g. "7d" or "2d6h".
func ParseDuration(s string) (time.Duration, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("empty duration")
	}

	days, rest, found := strings.Cut(s, "d")
	if !found {
		return time.ParseDuration(s)
	}

	n, err := strconv.Atoi(days)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("invalid day component in %q", s)
	}

	d := time.Duration(n) * 24 * time.Hour
	if rest == "" {
		return d, nil
	}

	extra, err := time.ParseDuration(rest)
	if err != nil {
		return 0, fmt.Errorf("invalid duration %q: %w", s, err)
	}
	return d + extra, nil
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		d.Duration = time.Duration(value)
		return nil
	case string:
		parsed, err := ParseDuration(value)
		if err != nil {
			return err
		}
		d.Duration = parsed
		return nil
	default:
		return fmt.Errorf("invalid duration: %s", string(b))
	}
}

// UnmarshalText lets env parsers decode Duration directly.
func (d *Duration) UnmarshalText(text []byte) error {
	parsed, err := ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = parsed
	return nil
}
