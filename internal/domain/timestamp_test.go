package domain

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTimestamp(t *testing.T) {
	ts, err := ParseTimestamp("2010/02/04 21:03:05 -0800")
	require.NoError(t, err)
	assert.Equal(t, 2010, ts.Year())
	assert.Equal(t, "2010/02/04 21:03:05 -0800", ts.String())

	ts, err = ParseTimestamp("2024-05-01T10:00:00Z")
	require.NoError(t, err)
	assert.Equal(t, "2024/05/01 10:00:00 +0000", ts.String())

	ts, err = ParseTimestamp("")
	require.NoError(t, err)
	assert.True(t, ts.IsZero())
	assert.Equal(t, "", ts.String())

	_, err = ParseTimestamp("yesterday")
	assert.Error(t, err)
}

func TestTimestamp_JSON(t *testing.T) {
	var v struct {
		Created Timestamp `json:"created_at"`
		Updated Timestamp `json:"updated_at"`
	}
	err := json.Unmarshal([]byte(`{"created_at":"2010/02/04 21:03:05 -0800","updated_at":null}`), &v)
	require.NoError(t, err)
	assert.Equal(t, "2010/02/04 21:03:05 -0800", v.Created.String())
	assert.True(t, v.Updated.IsZero())

	data, err := json.Marshal(v)
	require.NoError(t, err)
	assert.JSONEq(t, `{"created_at":"2010/02/04 21:03:05 -0800","updated_at":null}`, string(data))
}

func TestTimestamp_Equal(t *testing.T) {
	utc := NewTimestamp(time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC))
	other := NewTimestamp(time.Date(2024, 1, 1, 19, 4, 5, 0, time.FixedZone("PST", -8*3600)))
	assert.True(t, utc.Equal(other))
}

func TestIssue_HasBeenUpdated(t *testing.T) {
	created := NewTimestamp(time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC))

	issue := &Issue{CreatedAt: created, UpdatedAt: created}
	assert.False(t, issue.HasBeenUpdated())

	issue.UpdatedAt = Timestamp{}
	assert.False(t, issue.HasBeenUpdated())

	issue.UpdatedAt = NewTimestamp(created.Add(time.Hour))
	assert.True(t, issue.HasBeenUpdated())
}

func TestComment_DisplayTime(t *testing.T) {
	created := NewTimestamp(time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC))
	updated := NewTimestamp(created.Add(time.Minute))

	c := Comment{CreatedAt: created}
	assert.Equal(t, created, c.DisplayTime())

	c.UpdatedAt = updated
	assert.Equal(t, updated, c.DisplayTime())
}
