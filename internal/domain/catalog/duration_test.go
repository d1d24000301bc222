//go:build unit

package catalog_test

import (
	"testing"

	"clipvault/internal/domain/catalog"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDuration(t *testing.T) {
	valid := []struct {
		in      string
		seconds int
		display string
	}{
		{in: "0:45", seconds: 45, display: "0:45"},
		{in: "1:30", seconds: 90, display: "1:30"},
		{in: "12:05", seconds: 725, display: "12:05"},
		{in: "90:00", seconds: 5400, display: "1:30:00"},
		{in: "1:00:00", seconds: 3600, display: "1:00:00"},
		{in: " 2:03:04 ", seconds: 7384, display: "2:03:04"},
	}
	for _, tc := range valid {
		t.Run("valid "+tc.in, func(t *testing.T) {
			d, err := catalog.ParseDuration(tc.in)
			require.NoError(t, err)
			assert.Equal(t, tc.seconds, d.Seconds())
			assert.Equal(t, tc.display, d.String())
		})
	}

	invalid := []string{"", "45", "1:5", "1:60", "1:2:3:4", "a:bc", "-1:00", "1:00:60", "1::00"}
	for _, in := range invalid {
		t.Run("invalid "+in, func(t *testing.T) {
			_, err := catalog.ParseDuration(in)
			assert.ErrorIs(t, err, catalog.ErrInvalidDuration)
		})
	}
}

func TestDurationSeconds(t *testing.T) {
	assert.Equal(t, 3600, catalog.DurationSeconds("1:00:00"))
	assert.Equal(t, 0, catalog.DurationSeconds("garbage"))
	assert.Equal(t, 0, catalog.DurationSeconds(""))
}

func TestDurationFromSeconds(t *testing.T) {
	d, err := catalog.DurationFromSeconds(61)
	require.NoError(t, err)
	assert.Equal(t, "1:01", d.String())

	_, err = catalog.DurationFromSeconds(-1)
	assert.ErrorIs(t, err, catalog.ErrInvalidDuration)
}
