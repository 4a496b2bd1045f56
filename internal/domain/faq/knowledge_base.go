package faq

import (
	"context"
	"fmt"
	"strings"
	"sync/atomic"

	"github.com/yanqian/support-qa/pkg/util"
)

// KnowledgeBase is an immutable, ordered set of entries. Order decides ties.
type KnowledgeBase struct {
	entries []Entry
}

// NewKnowledgeBase validates and copies entries into a read-only snapshot.
func NewKnowledgeBase(entries []Entry) (*KnowledgeBase, error) {
	seen := make(map[int64]struct{}, len(entries))
	for i, e := range entries {
		if err := e.Validate(); err != nil {
			return nil, fmt.Errorf("entry %d: %w", i, err)
		}
		if _, dup := seen[e.ID]; dup {
			return nil, fmt.Errorf("entry %d: duplicate id %d", i, e.ID)
		}
		seen[e.ID] = struct{}{}
	}
	return &KnowledgeBase{entries: append([]Entry(nil), entries...)}, nil
}

// Validate checks a single entry: a positive id and some zh text to match against.
func (e Entry) Validate() error {
	if e.ID <= 0 {
		return fmt.Errorf("id must be positive, got %d", e.ID)
	}
	if strings.TrimSpace(e.PromptZh) == "" && strings.TrimSpace(e.KeywordsZh) == "" {
		return fmt.Errorf("id %d: zh prompt and keywords are both empty", e.ID)
	}
	return nil
}

// Len reports the number of entries; a nil knowledge base is empty.
func (kb *KnowledgeBase) Len() int {
	if kb == nil {
		return 0
	}
	return len(kb.entries)
}

// Entries returns a copy of the entries in order.
func (kb *KnowledgeBase) Entries() []Entry {
	if kb == nil {
		return nil
	}
	return append([]Entry(nil), kb.entries...)
}

// Source supplies raw entries for a knowledge base.
type Source interface {
	Name() string
	Load(ctx context.Context) ([]Entry, error)
}

// StaticSource serves a fixed entry list.
type StaticSource struct {
	Label string
	Items []Entry
}

// Name implements Source.
func (s StaticSource) Name() string {
	if s.Label == "" {
		return "static"
	}
	return s.Label
}

// Load implements Source.
func (s StaticSource) Load(context.Context) ([]Entry, error) {
	return append([]Entry(nil), s.Items...), nil
}

type snapshot struct {
	kb     *KnowledgeBase
	status Status
}

// Holder publishes the current knowledge base. Reloads swap the whole snapshot,
// so a match that already holds a snapshot is never affected.
type Holder struct {
	current atomic.Pointer[snapshot]
}

// NewHolder returns a holder serving kb.
func NewHolder(kb *KnowledgeBase, source string) *Holder {
	h := &Holder{}
	h.Store(kb, source)
	return h
}

// Load returns the current snapshot.
func (h *Holder) Load() (*KnowledgeBase, Status) {
	snap := h.current.Load()
	if snap == nil {
		return nil, Status{}
	}
	return snap.kb, snap.status
}

// Store replaces the current snapshot and returns the previous status.
func (h *Holder) Store(kb *KnowledgeBase, source string) Status {
	next := &snapshot{
		kb: kb,
		status: Status{
			Source:   source,
			Entries:  kb.Len(),
			LoadedAt: util.NowUTC(),
		},
	}
	prev := h.current.Swap(next)
	if prev == nil {
		return Status{}
	}
	return prev.status
}
