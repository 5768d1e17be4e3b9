package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2025-03-31")
	require.NoError(t, err)
	assert.Equal(t, "2025-03-31", d.String())
	assert.Equal(t, time.UTC, d.Location())
	assert.Equal(t, 0, d.Hour())

	_, err = ParseDate("31/03/2025")
	assert.Error(t, err)
	_, err = ParseDate("2025-13-01")
	assert.Error(t, err)
}

func TestDateOfTruncates(t *testing.T) {
	d := DateOf(time.Date(2025, 3, 31, 23, 59, 59, 0, time.UTC))
	assert.Equal(t, "2025-03-31", d.String())
}

func TestDateJSONRoundTrip(t *testing.T) {
	d, err := ParseDate("2024-12-01")
	require.NoError(t, err)

	b, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, `"2024-12-01"`, string(b))

	var back Date
	require.NoError(t, json.Unmarshal(b, &back))
	assert.True(t, back.Equal(d.Time))
}

func TestDateUnmarshalEmptyAndNull(t *testing.T) {
	var d Date
	require.NoError(t, json.Unmarshal([]byte(`""`), &d))
	assert.True(t, d.IsZero())

	require.NoError(t, json.Unmarshal([]byte(`null`), &d))
	assert.True(t, d.IsZero())

	assert.Error(t, json.Unmarshal([]byte(`"not-a-date"`), &d))
}
