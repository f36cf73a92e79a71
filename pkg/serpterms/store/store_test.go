package store

import (
	"testing"
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewReport(t *testing.T) {
	now := time.Date(2026, 10, 19, 12, 0, 0, 0, time.FixedZone("CEST", 2*3600))

	r := NewReport("  Laufschuhe ", "DE", now, []string{"test"}, []byte(`{}`))

	assert.Equal(t, "laufschuhe", r.Keyword)
	assert.Equal(t, "de", r.Country)
	assert.Equal(t, time.UTC, r.CreatedAt.Location())
	assert.True(t, r.CreatedAt.Equal(now))

	id, err := ulid.ParseStrict(r.ID)
	require.NoError(t, err)
	assert.Equal(t, ulid.Timestamp(now), id.Time())
}

func TestNewReportIDsIncrease(t *testing.T) {
	now := time.Now()
	prev := NewReport("k", "", now, nil, nil).ID
	for i := 0; i < 100; i++ {
		id := NewReport("k", "", now, nil, nil).ID
		assert.Greater(t, id, prev)
		prev = id
	}
}
