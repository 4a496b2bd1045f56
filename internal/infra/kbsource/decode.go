package kbsource

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/yanqian/support-qa/internal/domain/faq"
)

// ErrNotFound reports that a source has nothing to offer, as opposed to failing.
var ErrNotFound = errors.New("knowledge base source not found")

// decodeEntries parses the qa-database.json layout: a JSON array of entries.
func decodeEntries(data []byte) ([]faq.Entry, error) {
	var entries []faq.Entry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("decode entries: %w", err)
	}
	return entries, nil
}
