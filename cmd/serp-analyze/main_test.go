package main

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/cognicore/serpterms/pkg/serpterms"
	"github.com/cognicore/serpterms/pkg/serpterms/prompt"
	"github.com/cognicore/serpterms/pkg/serpterms/store/memstore"
)

const batch = `{
  "keyword": "Laufschuhe",
  "country": "de",
  "results": [
    {"position": 1, "title": "Laufschuhe <b>Test</b> 2024", "snippet": "Dämpfung im Vergleich", "url": "https://www.a.de/x"},
    {"position": 2, "title": "Laufschuhe Test Damen", "snippet": "Dämpfung und Passform", "url": "https://b.de/y"}
  ],
  "peopleAlsoAsk": ["Welche Laufschuhe sind gut?"]
}`

func writeBatch(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "batch.json")
	require.NoError(t, os.WriteFile(path, []byte(batch), 0644))
	return path
}

func TestRunPrintsResult(t *testing.T) {
	var out bytes.Buffer
	err := run(context.Background(), options{input: writeBatch(t)}, zap.NewNop(), &out)
	require.NoError(t, err)

	var res serpterms.Result
	require.NoError(t, json.Unmarshal(out.Bytes(), &res))
	assert.Contains(t, res.SerpTerms.MustHave, "test")
	assert.NotContains(t, res.SerpTerms.All, "laufschuhe")
	assert.Equal(t, "a.de", res.Competitors[0].Domain)
	assert.Equal(t, []string{"Welche Laufschuhe sind gut?"}, res.Questions.PeopleAlsoAsk)
}

func TestRunPromptOnly(t *testing.T) {
	var out bytes.Buffer
	err := run(context.Background(), options{input: writeBatch(t), prompt: true}, zap.NewNop(), &out)
	require.NoError(t, err)

	assert.Contains(t, out.String(), "PFLICHT-BEGRIFFE")
	assert.Contains(t, out.String(), "- test\n")
	assert.NotContains(t, out.String(), "{")
}

func TestRunKeywordOverride(t *testing.T) {
	var out bytes.Buffer
	err := run(context.Background(), options{input: writeBatch(t), keyword: "test"}, zap.NewNop(), &out)
	require.NoError(t, err)

	var res serpterms.Result
	require.NoError(t, json.Unmarshal(out.Bytes(), &res))
	assert.Contains(t, res.SerpTerms.All, "laufschuhe")
	assert.NotContains(t, res.SerpTerms.All, "test")
}

func TestRunArchivesAndListsHistory(t *testing.T) {
	ctx := context.Background()
	db := filepath.Join(t.TempDir(), "archive.db")
	input := writeBatch(t)

	for i := 0; i < 2; i++ {
		var out bytes.Buffer
		require.NoError(t, run(ctx, options{input: input, db: db}, zap.NewNop(), &out))
	}

	var out bytes.Buffer
	require.NoError(t, run(ctx, options{db: db, history: "LAUFSCHUHE", limit: 1}, zap.NewNop(), &out))

	var entries []historyEntry
	require.NoError(t, json.Unmarshal(out.Bytes(), &entries))
	require.Len(t, entries, 1)
	assert.Equal(t, "laufschuhe", entries[0].Keyword)
	assert.Equal(t, "de", entries[0].Country)
	assert.Contains(t, entries[0].Terms, "test")
}

func TestArchiveWithoutDB(t *testing.T) {
	ctx := context.Background()
	req := serpterms.Request{Keyword: "Laufschuhe", Country: "DE"}
	res := serpterms.Result{SerpTerms: serpterms.SerpTerms{All: []string{"test"}}}

	id, err := archive(ctx, "", req, res, []byte(`{}`))
	require.NoError(t, err)
	assert.Len(t, id, 26)

	st, err := openArchive(ctx, "")
	require.NoError(t, err)
	_, ok := st.(*memstore.Store)
	assert.True(t, ok, "empty path should open an in-memory archive")
	require.NoError(t, st.Close())
}

func TestArchiveToSQLite(t *testing.T) {
	ctx := context.Background()
	db := filepath.Join(t.TempDir(), "archive.db")
	req := serpterms.Request{Keyword: "Laufschuhe", Country: "DE"}
	res := serpterms.Result{SerpTerms: serpterms.SerpTerms{All: []string{"test", "kaufen"}}}

	id, err := archive(ctx, db, req, res, []byte(`{"ok":true}`))
	require.NoError(t, err)

	st, err := openArchive(ctx, db)
	require.NoError(t, err)
	defer st.Close()

	got, err := st.GetReport(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, "laufschuhe", got.Keyword)
	assert.Equal(t, "de", got.Country)
	assert.Equal(t, []string{"test", "kaufen"}, got.Terms)
	assert.JSONEq(t, `{"ok":true}`, string(got.Payload))
}

func TestRunErrors(t *testing.T) {
	ctx := context.Background()
	var out bytes.Buffer

	assert.Error(t, run(ctx, options{}, zap.NewNop(), &out))
	assert.Error(t, run(ctx, options{history: "x"}, zap.NewNop(), &out))
	assert.Error(t, run(ctx, options{input: filepath.Join(t.TempDir(), "missing.json")}, zap.NewNop(), &out))
	assert.Error(t, run(ctx, options{input: writeBatch(t), policy: filepath.Join(t.TempDir(), "missing.yaml")}, zap.NewNop(), &out))
}

func TestRunEmptyBatchPrompt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"keyword": "x", "results": []}`), 0644))

	var out bytes.Buffer
	require.NoError(t, run(context.Background(), options{input: path, prompt: true}, zap.NewNop(), &out))
	assert.Equal(t, 5, bytes.Count(out.Bytes(), []byte(prompt.Placeholder)))
}
