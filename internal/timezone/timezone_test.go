package timezone

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocationFallsBackToDefault(t *testing.T) {
	assert.Equal(t, DefaultTimezone, Location("Not/AZone").String())
	assert.Equal(t, "UTC", Location("UTC").String())
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2024-05-01", "Europe/Brussels")
	require.NoError(t, err)
	assert.Equal(t, 2024, d.Year())
	assert.Equal(t, time.May, d.Month())
	assert.Equal(t, "Europe/Brussels", d.Location().String())

	d, err = ParseDate("2024-05-01T10:00:00Z", "Europe/Brussels")
	require.NoError(t, err)
	assert.Equal(t, 10, d.UTC().Hour())

	_, err = ParseDate("01/05/2024", "Europe/Brussels")
	assert.Error(t, err)
}
