package kbsource

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/yanqian/support-qa/internal/domain/faq"
)

// DefaultSourceName labels the built-in entries at the end of every chain.
const DefaultSourceName = "defaults"

// Chain tries each source in order and serves the first one that yields a valid,
// non-empty knowledge base. The built-in defaults terminate the chain.
type Chain struct {
	sources []faq.Source
	timeout time.Duration
	logger  *slog.Logger
}

// NewChain builds a loading chain. timeout bounds each source individually.
func NewChain(logger *slog.Logger, timeout time.Duration, sources ...faq.Source) *Chain {
	return &Chain{
		sources: sources,
		timeout: timeout,
		logger:  logger.With("component", "kbsource.chain"),
	}
}

// LoadKnowledgeBase implements faq.Loader.
func (c *Chain) LoadKnowledgeBase(ctx context.Context) (*faq.KnowledgeBase, string, error) {
	for _, src := range c.sources {
		if err := ctx.Err(); err != nil {
			return nil, "", err
		}
		kb, err := c.try(ctx, src)
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				c.logger.Debug("knowledge base source skipped", "source", src.Name(), "reason", err)
			} else {
				c.logger.Warn("knowledge base source failed", "source", src.Name(), "error", err)
			}
			continue
		}
		c.logger.Info("knowledge base loaded", "source", src.Name(), "entries", kb.Len())
		return kb, src.Name(), nil
	}

	kb, err := faq.NewKnowledgeBase(faq.DefaultEntries())
	if err != nil {
		return nil, "", err
	}
	c.logger.Info("knowledge base loaded", "source", DefaultSourceName, "entries", kb.Len())
	return kb, DefaultSourceName, nil
}

func (c *Chain) try(ctx context.Context, src faq.Source) (*faq.KnowledgeBase, error) {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}
	entries, err := src.Load(ctx)
	if err != nil {
		return nil, err
	}
	entries = c.dropInvalid(src.Name(), entries)
	if len(entries) == 0 {
		return nil, ErrNotFound
	}
	return faq.NewKnowledgeBase(entries)
}

// dropInvalid removes entries that can never match so one bad record does not
// disqualify the whole source. Duplicate ids still fail the source.
func (c *Chain) dropInvalid(source string, entries []faq.Entry) []faq.Entry {
	kept := entries[:0:0]
	for i, e := range entries {
		if err := e.Validate(); err != nil {
			c.logger.Warn("knowledge base entry skipped", "source", source, "index", i, "error", err)
			continue
		}
		kept = append(kept, e)
	}
	return kept
}

var _ faq.Loader = (*Chain)(nil)
