package kbsource

import (
	"context"
	"fmt"

	"github.com/valkey-io/valkey-go"

	"github.com/yanqian/support-qa/internal/domain/faq"
)

// ValkeySource reads a qa-database.json document stored under a single key.
type ValkeySource struct {
	client valkey.Client
	key    string
}

// NewValkeySource constructs a source backed by Valkey.
func NewValkeySource(client valkey.Client, key string) *ValkeySource {
	if key == "" {
		key = "faq:entries"
	}
	return &ValkeySource{client: client, key: key}
}

// Name implements faq.Source.
func (s *ValkeySource) Name() string {
	return "valkey"
}

// Load implements faq.Source.
func (s *ValkeySource) Load(ctx context.Context) ([]faq.Entry, error) {
	payload, err := s.client.Do(ctx, s.client.B().Get().Key(s.key).Build()).ToString()
	if err != nil {
		if valkey.IsValkeyNil(err) {
			return nil, fmt.Errorf("key %s: %w", s.key, ErrNotFound)
		}
		return nil, fmt.Errorf("get %s: %w", s.key, err)
	}
	return decodeEntries([]byte(payload))
}

// Close releases the client.
func (s *ValkeySource) Close() {
	s.client.Close()
}

var _ faq.Source = (*ValkeySource)(nil)
