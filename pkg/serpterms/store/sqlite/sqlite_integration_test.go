package sqlite

import (
	"context"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cognicore/serpterms/pkg/serpterms/internalerr"
	"github.com/cognicore/serpterms/pkg/serpterms/store"
)

func openTestStore(t *testing.T) store.Store {
	t.Helper()
	st, err := OpenSQLite(context.Background(), filepath.Join(t.TempDir(), "reports.db"))
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })
	return st
}

func TestSQLiteSaveAndGet(t *testing.T) {
	ctx := context.Background()
	st := openTestStore(t)

	created := time.Date(2026, 10, 19, 8, 30, 0, 123000000, time.UTC)
	r := store.NewReport("Laufschuhe", "de", created, []string{"test", "kaufen"}, []byte(`{"serpTerms":{}}`))
	require.NoError(t, st.SaveReport(ctx, r))

	got, err := st.GetReport(ctx, r.ID)
	require.NoError(t, err)
	assert.Equal(t, r.ID, got.ID)
	assert.Equal(t, "laufschuhe", got.Keyword)
	assert.Equal(t, "de", got.Country)
	assert.True(t, created.Equal(got.CreatedAt), "created_at %v != %v", got.CreatedAt, created)
	assert.Equal(t, []string{"test", "kaufen"}, got.Terms)
	assert.Equal(t, `{"serpTerms":{}}`, string(got.Payload))
}

func TestSQLiteErrors(t *testing.T) {
	ctx := context.Background()
	st := openTestStore(t)

	_, err := st.GetReport(ctx, "missing")
	assert.ErrorIs(t, err, internalerr.ErrNotFound)

	r := store.NewReport("k", "", time.Now(), nil, nil)
	require.NoError(t, st.SaveReport(ctx, r))
	assert.ErrorIs(t, st.SaveReport(ctx, r), internalerr.ErrDuplicate)
	assert.ErrorIs(t, st.SaveReport(ctx, store.Report{}), internalerr.ErrInvalidInput)
}

func TestSQLiteListNewestFirst(t *testing.T) {
	ctx := context.Background()
	st := openTestStore(t)
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	var ids []string
	for i := 0; i < 4; i++ {
		r := store.NewReport("Laufschuhe", "de", base.Add(time.Duration(i)*24*time.Hour), []string{"t"}, nil)
		require.NoError(t, st.SaveReport(ctx, r))
		ids = append(ids, r.ID)
	}
	require.NoError(t, st.SaveReport(ctx, store.NewReport("Wanderschuhe", "de", base, nil, nil)))

	list, err := st.ListReports(ctx, "LAUFSCHUHE ", 0)
	require.NoError(t, err)
	require.Len(t, list, 4)
	for i := range list {
		assert.Equal(t, ids[len(ids)-1-i], list[i].ID)
	}

	limited, err := st.ListReports(ctx, "laufschuhe", 2)
	require.NoError(t, err)
	require.Len(t, limited, 2)
	assert.Equal(t, ids[3], limited[0].ID)

	none, err := st.ListReports(ctx, "unbekannt", 10)
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestSQLiteReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "reports.db")

	st, err := OpenSQLite(ctx, path)
	require.NoError(t, err)
	r := store.NewReport("Laufschuhe", "de", time.Now(), []string{"test"}, nil)
	require.NoError(t, st.SaveReport(ctx, r))
	require.NoError(t, st.Close())

	st, err = OpenSQLite(ctx, path)
	require.NoError(t, err)
	defer st.Close()

	got, err := st.GetReport(ctx, r.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{"test"}, got.Terms)
}

func TestSQLiteConcurrentSaves(t *testing.T) {
	ctx := context.Background()
	st := openTestStore(t)

	var wg sync.WaitGroup
	errs := make(chan error, 20)
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			errs <- st.SaveReport(ctx, store.NewReport("laufschuhe", "de", time.Now(), nil, nil))
		}()
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		assert.NoError(t, err)
	}
	list, err := st.ListReports(ctx, "laufschuhe", 0)
	require.NoError(t, err)
	assert.Len(t, list, 20)
}
