package kbsource

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/yanqian/support-qa/internal/domain/faq"
)

const sampleJSON = `[
  {"id": 1, "promptZh": "怎么退款", "promptTranslated": "怎么退款", "questionKeywordsZh": "退款", "questionKeywordsJa": "返金", "answerZh": "请联系客服", "answerJa": "サポートへ"},
  {"id": 2, "promptZh": "忘记密码", "questionKeywordsZh": "密码", "answerZh": "点击找回密码"}
]`

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestDataDirSourceReadsEntries(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, DataFileName, sampleJSON)

	entries, err := NewDataDirSource(dir).Load(context.Background())
	require.NoError(t, err)
	require.Len(t, entries, 2)
	require.Equal(t, faq.Entry{
		ID:         1,
		PromptZh:   "怎么退款",
		PromptJa:   "怎么退款",
		KeywordsZh: "退款",
		KeywordsJa: "返金",
		AnswerZh:   "请联系客服",
		AnswerJa:   "サポートへ",
	}, entries[0])
	require.Empty(t, entries[1].KeywordsJa)
}

func TestBundledFileMatchesDefaults(t *testing.T) {
	entries, err := NewFileSource("bundled", filepath.Join("..", "..", "..", "data", DataFileName)).Load(context.Background())
	require.NoError(t, err)
	require.Equal(t, faq.DefaultEntries(), entries)
}

func TestFileSourceMissing(t *testing.T) {
	_, err := NewDataDirSource("").Load(context.Background())
	require.ErrorIs(t, err, ErrNotFound)

	_, err = NewFileSource("bundled", filepath.Join(t.TempDir(), "nope.json")).Load(context.Background())
	require.ErrorIs(t, err, ErrNotFound)
}

func TestFileSourceInvalidJSON(t *testing.T) {
	path := writeFile(t, t.TempDir(), "bad.json", `{"id": 1}`)

	_, err := NewFileSource("bundled", path).Load(context.Background())
	require.Error(t, err)
	require.NotErrorIs(t, err, ErrNotFound)
}

func TestChainPrefersFirstUsableSource(t *testing.T) {
	dir := t.TempDir()
	bundled := writeFile(t, dir, "bundled.json", sampleJSON)

	chain := NewChain(newTestLogger(), time.Second,
		failingSource{name: "postgres", err: errors.New("connection refused")},
		NewDataDirSource(filepath.Join(dir, "missing")),
		NewFileSource("bundled", bundled),
	)

	kb, source, err := chain.LoadKnowledgeBase(context.Background())
	require.NoError(t, err)
	require.Equal(t, "bundled", source)
	require.Equal(t, 2, kb.Len())
}

func TestChainSkipsInvalidAndEmptySources(t *testing.T) {
	chain := NewChain(newTestLogger(), 0,
		faq.StaticSource{Label: "empty"},
		faq.StaticSource{Label: "duplicates", Items: []faq.Entry{{ID: 1, PromptZh: "a"}, {ID: 1, PromptZh: "b"}}},
		faq.StaticSource{Label: "good", Items: []faq.Entry{{ID: 5, PromptZh: "好"}}},
	)

	kb, source, err := chain.LoadKnowledgeBase(context.Background())
	require.NoError(t, err)
	require.Equal(t, "good", source)
	require.Equal(t, 1, kb.Len())
}

func TestChainSkipsInvalidEntriesWithinSource(t *testing.T) {
	chain := NewChain(newTestLogger(), 0,
		faq.StaticSource{Label: "custom", Items: []faq.Entry{
			{ID: 7, PromptJa: "日本語だけ", AnswerJa: "はい"},
			{ID: 0, PromptZh: "无效编号"},
			{ID: 8, PromptZh: "怎么退款", KeywordsZh: "退款", AnswerZh: "请联系客服"},
		}},
		faq.StaticSource{Label: "bundled", Items: faq.DefaultEntries()},
	)

	kb, source, err := chain.LoadKnowledgeBase(context.Background())
	require.NoError(t, err)
	require.Equal(t, "custom", source)
	require.Equal(t, 1, kb.Len())
	require.Equal(t, int64(8), kb.Entries()[0].ID)
}

func TestChainFallsBackToDefaults(t *testing.T) {
	chain := NewChain(newTestLogger(), time.Second, NewDataDirSource(""))

	kb, source, err := chain.LoadKnowledgeBase(context.Background())
	require.NoError(t, err)
	require.Equal(t, DefaultSourceName, source)
	require.Equal(t, len(faq.DefaultEntries()), kb.Len())
}

func TestChainStopsOnCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, _, err := NewChain(newTestLogger(), time.Second, NewDataDirSource("")).LoadKnowledgeBase(ctx)
	require.ErrorIs(t, err, context.Canceled)
}

func TestSanitizeEndpoint(t *testing.T) {
	require.Equal(t, "minio:9000", sanitizeEndpoint("http://minio:9000/"))
	require.Equal(t, "acct.r2.cloudflarestorage.com", sanitizeEndpoint(" https://acct.r2.cloudflarestorage.com/bucket "))
	require.Equal(t, "", sanitizeEndpoint(""))
}

func TestSelectEntriesSQLUsesTable(t *testing.T) {
	require.Contains(t, selectEntriesSQL("faq_entries"), "FROM faq_entries")
}

type failingSource struct {
	name string
	err  error
}

func (s failingSource) Name() string { return s.name }

func (s failingSource) Load(context.Context) ([]faq.Entry, error) { return nil, s.err }
