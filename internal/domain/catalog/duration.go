package catalog

import (
	"fmt"
	"strconv"
	"strings"

	"clipvault/internal/pkg/errs"
)

var ErrInvalidDuration = errs.New("duration must be M:SS, MM:SS or H:MM:SS")

// Duration is a clip length in whole seconds.
type Duration struct {
	seconds int
}

func DurationFromSeconds(s int) (Duration, error) {
	if s < 0 {
		return Duration{}, ErrInvalidDuration
	}
	return Duration{seconds: s}, nil
}

// ParseDuration accepts "M:SS", "MM:SS" and "H:MM:SS". The leading component is
// unbounded, every trailing component must be two digits below 60.
func ParseDuration(s string) (Duration, error) {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) < 2 || len(parts) > 3 {
		return Duration{}, ErrInvalidDuration
	}

	total := 0
	for i, p := range parts {
		if p == "" || !isDigits(p) {
			return Duration{}, ErrInvalidDuration
		}
		if i > 0 && len(p) != 2 {
			return Duration{}, ErrInvalidDuration
		}
		n, err := strconv.Atoi(p)
		if err != nil {
			return Duration{}, ErrInvalidDuration
		}
		if i > 0 && n >= 60 {
			return Duration{}, ErrInvalidDuration
		}
		total = total*60 + n
	}
	return Duration{seconds: total}, nil
}

func (d Duration) Seconds() int { return d.seconds }

// String renders the normalized display form: M:SS below an hour, H:MM:SS above.
func (d Duration) String() string {
	h := d.seconds / 3600
	m := (d.seconds % 3600) / 60
	s := d.seconds % 60
	if h > 0 {
		return fmt.Sprintf("%d:%02d:%02d", h, m, s)
	}
	return fmt.Sprintf("%d:%02d", m, s)
}

// DurationSeconds is the sort projection: anything unparseable orders as zero.
func DurationSeconds(display string) int {
	d, err := ParseDuration(display)
	if err != nil {
		return 0
	}
	return d.Seconds()
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
