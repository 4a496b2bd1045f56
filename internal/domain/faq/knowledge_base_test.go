package faq

import (
	"context"
	"testing"
	"time"

	"github.com/yanqian/support-qa/pkg/util"
)

func TestNewKnowledgeBaseValidation(t *testing.T) {
	cases := []struct {
		name    string
		entries []Entry
		wantErr bool
	}{
		{name: "defaults", entries: DefaultEntries()},
		{name: "empty", entries: nil},
		{name: "zero id", entries: []Entry{{ID: 0, PromptZh: "x"}}, wantErr: true},
		{name: "duplicate id", entries: []Entry{{ID: 1, PromptZh: "x"}, {ID: 1, PromptZh: "y"}}, wantErr: true},
		{name: "missing zh text", entries: []Entry{{ID: 1, PromptJa: "x", KeywordsJa: "y"}}, wantErr: true},
		{name: "keywords only", entries: []Entry{{ID: 2, KeywordsZh: "退款"}}},
	}
	for _, tc := range cases {
		_, err := NewKnowledgeBase(tc.entries)
		if tc.wantErr && err == nil {
			t.Fatalf("%s: expected error", tc.name)
		}
		if !tc.wantErr && err != nil {
			t.Fatalf("%s: unexpected error: %v", tc.name, err)
		}
	}
}

func TestKnowledgeBaseIsolatedFromCaller(t *testing.T) {
	entries := []Entry{{ID: 1, PromptZh: "原始"}}
	kb, err := NewKnowledgeBase(entries)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	entries[0].PromptZh = "changed"
	out := kb.Entries()
	out[0].PromptZh = "changed again"
	if got := kb.Entries()[0].PromptZh; got != "原始" {
		t.Fatalf("expected snapshot to be immutable got %q", got)
	}
}

func TestHolderSwapsSnapshot(t *testing.T) {
	first, _ := NewKnowledgeBase(DefaultEntries())
	h := NewHolder(first, "defaults")

	kb, status := h.Load()
	if kb != first || status.Source != "defaults" || status.Entries != 3 {
		t.Fatalf("unexpected initial snapshot %+v", status)
	}

	second, _ := NewKnowledgeBase([]Entry{{ID: 99, PromptZh: "新"}})
	prev := h.Store(second, "file")
	if prev.Source != "defaults" {
		t.Fatalf("expected previous status from defaults got %+v", prev)
	}
	// the old snapshot stays intact for readers that still hold it
	if first.Len() != 3 {
		t.Fatalf("expected old snapshot untouched")
	}
	kb, status = h.Load()
	if kb != second || status.Entries != 1 || status.Source != "file" {
		t.Fatalf("unexpected swapped snapshot %+v", status)
	}
}

func TestHolderStampsLoadTime(t *testing.T) {
	fixed := time.Date(2024, 5, 1, 9, 30, 0, 0, time.FixedZone("JST", 9*60*60))
	util.Clock = func() time.Time { return fixed }
	t.Cleanup(func() { util.Clock = time.Now })

	h := NewHolder(nil, "defaults")
	_, status := h.Load()
	if !status.LoadedAt.Equal(fixed) || status.LoadedAt.Location() != time.UTC {
		t.Fatalf("expected UTC load time %v got %v", fixed, status.LoadedAt)
	}
	if status.Entries != 0 {
		t.Fatalf("nil knowledge base should report 0 entries got %d", status.Entries)
	}
}

func TestStaticSource(t *testing.T) {
	src := StaticSource{Items: DefaultEntries()}
	if src.Name() != "static" {
		t.Fatalf("expected default label got %q", src.Name())
	}
	items, err := src.Load(context.Background())
	if err != nil || len(items) != 3 {
		t.Fatalf("expected 3 entries got %d (%v)", len(items), err)
	}
}
