package memstore

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cognicore/serpterms/pkg/serpterms/internalerr"
	"github.com/cognicore/serpterms/pkg/serpterms/store"
)

func TestSaveAndGet(t *testing.T) {
	ctx := context.Background()
	s := New()
	defer s.Close()

	r := store.NewReport("Laufschuhe", "de", time.Now(), []string{"test", "kaufen"}, []byte(`{"a":1}`))
	require.NoError(t, s.SaveReport(ctx, r))

	got, err := s.GetReport(ctx, r.ID)
	require.NoError(t, err)
	assert.Equal(t, r.Terms, got.Terms)
	assert.Equal(t, r.Payload, got.Payload)
	assert.Equal(t, "laufschuhe", got.Keyword)

	// returned copies must not alias stored data
	got.Terms[0] = "changed"
	again, err := s.GetReport(ctx, r.ID)
	require.NoError(t, err)
	assert.Equal(t, "test", again.Terms[0])
}

func TestSaveDuplicateAndInvalid(t *testing.T) {
	ctx := context.Background()
	s := New()

	r := store.NewReport("k", "", time.Now(), nil, nil)
	require.NoError(t, s.SaveReport(ctx, r))
	assert.ErrorIs(t, s.SaveReport(ctx, r), internalerr.ErrDuplicate)
	assert.ErrorIs(t, s.SaveReport(ctx, store.Report{}), internalerr.ErrInvalidInput)
}

func TestGetMissing(t *testing.T) {
	_, err := New().GetReport(context.Background(), "nope")
	assert.ErrorIs(t, err, internalerr.ErrNotFound)
}

func TestListNewestFirst(t *testing.T) {
	ctx := context.Background()
	s := New()
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	var ids []string
	for i := 0; i < 3; i++ {
		r := store.NewReport("Laufschuhe", "de", base.Add(time.Duration(i)*time.Hour), nil, nil)
		require.NoError(t, s.SaveReport(ctx, r))
		ids = append(ids, r.ID)
	}
	require.NoError(t, s.SaveReport(ctx, store.NewReport("Wanderschuhe", "de", base, nil, nil)))

	list, err := s.ListReports(ctx, " LAUFSCHUHE", 0)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, []string{ids[2], ids[1], ids[0]}, []string{list[0].ID, list[1].ID, list[2].ID})

	limited, err := s.ListReports(ctx, "laufschuhe", 2)
	require.NoError(t, err)
	assert.Len(t, limited, 2)
}

func TestClosed(t *testing.T) {
	ctx := context.Background()
	s := New()
	require.NoError(t, s.Close())

	assert.ErrorIs(t, s.SaveReport(ctx, store.NewReport("k", "", time.Now(), nil, nil)), internalerr.ErrStoreUnavailable)
	_, err := s.ListReports(ctx, "k", 0)
	assert.ErrorIs(t, err, internalerr.ErrStoreUnavailable)
}

var _ store.Store = (*Store)(nil)
