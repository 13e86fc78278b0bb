package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPage_UnmarshalEnvelope(t *testing.T) {
	var p Page[Lecture]
	require.NoError(t, json.Unmarshal([]byte(`{"content":[{"id":1,"name":"Math","capacity":30}],"totalElements":42}`), &p))

	assert.Equal(t, int64(42), p.TotalElements)
	require.Len(t, p.Content, 1)
	assert.Equal(t, "Math", p.Content[0].Name)
}

func TestPage_UnmarshalEnvelopeWithoutTotal(t *testing.T) {
	var p Page[Lecture]
	require.NoError(t, json.Unmarshal([]byte(`{"content":[{"id":1},{"id":2}]}`), &p))
	assert.Equal(t, int64(2), p.TotalElements)
}

func TestPage_UnmarshalBareArray(t *testing.T) {
	var p Page[Enrollment]
	require.NoError(t, json.Unmarshal([]byte(` [{"id":7,"lectureId":1,"status":"ACTIVE"}]`), &p))

	assert.Equal(t, int64(1), p.TotalElements)
	assert.Equal(t, StatusActive, p.Content[0].Status)
}

func TestPage_ItemsNeverNil(t *testing.T) {
	var p Page[Lecture]
	require.NoError(t, json.Unmarshal([]byte(`{}`), &p))
	assert.NotNil(t, p.Items())
	assert.Empty(t, p.Items())
}

func TestParseTimestamp(t *testing.T) {
	ts, ok := ParseTimestamp("2025-03-01T10:00:00Z")
	require.True(t, ok)
	assert.True(t, ts.Equal(time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)))

	ts, ok = ParseTimestamp("2025-03-01T10:30:00")
	require.True(t, ok)
	assert.Equal(t, 30, ts.Minute())
	assert.Equal(t, time.Local, ts.Location())

	ts, ok = ParseTimestamp("2025-03-01")
	require.True(t, ok)
	assert.Equal(t, 1, ts.Day())

	_, ok = ParseTimestamp("")
	assert.False(t, ok)
	_, ok = ParseTimestamp("yesterday")
	assert.False(t, ok)
}
