// file: internals/helpers/dbtime/tod_test.go
package dbtime

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFormats(t *testing.T) {
	short, err := Parse("09:30")
	require.NoError(t, err)
	full, err := Parse("09:30:00")
	require.NoError(t, err)
	assert.Equal(t, short.Seconds(), full.Seconds())

	_, err = Parse("25:00")
	assert.Error(t, err)
	_, err = Parse("no-es-hora")
	assert.Error(t, err)
}

func TestSeconds(t *testing.T) {
	v, err := Parse("01:02:03")
	require.NoError(t, err)
	assert.Equal(t, 3723, v.Seconds())

	zero, err := Parse("00:00")
	require.NoError(t, err)
	assert.Equal(t, 0, zero.Seconds())
}

func TestJSONRoundTrip(t *testing.T) {
	v, err := Parse("14:45:30")
	require.NoError(t, err)

	b, err := v.MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, `"14:45:30"`, string(b))

	var back Tod
	require.NoError(t, back.UnmarshalJSON(b))
	assert.Equal(t, v.Seconds(), back.Seconds())
}

func TestScanAndValue(t *testing.T) {
	var v Tod
	require.NoError(t, v.Scan("08:15:00"))
	assert.Equal(t, 8*3600+15*60, v.Seconds())

	require.NoError(t, v.Scan([]byte("18:00")))
	assert.Equal(t, 18*3600, v.Seconds())

	require.NoError(t, v.Scan(time.Date(0, 1, 1, 7, 5, 0, 0, time.UTC)))
	assert.Equal(t, 7*3600+5*60, v.Seconds())

	out, err := v.Value()
	require.NoError(t, err)
	assert.Equal(t, "07:05:00", out)

	var empty Tod
	out, err = empty.Value()
	require.NoError(t, err)
	assert.Equal(t, "00:00:00", out)
}

func TestFrom(t *testing.T) {
	src := time.Date(2026, 5, 10, 9, 30, 15, 999, time.Local)
	v := From(src)
	assert.Equal(t, 9*3600+30*60+15, v.Seconds())
}
