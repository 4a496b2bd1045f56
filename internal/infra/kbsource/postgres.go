package kbsource

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/yanqian/support-qa/internal/domain/faq"
)

// PostgresSource reads entries from a table ordered by position, then id.
//
//	CREATE TABLE faq_entries (
//	    id          BIGINT PRIMARY KEY,
//	    position    INT NOT NULL DEFAULT 0,
//	    prompt_zh   TEXT,
//	    prompt_ja   TEXT,
//	    keywords_zh TEXT,
//	    keywords_ja TEXT,
//	    answer_zh   TEXT,
//	    answer_ja   TEXT
//	);
type PostgresSource struct {
	pool  *pgxpool.Pool
	query string
}

// NewPostgresSource constructs the source. table must already be validated as an identifier.
func NewPostgresSource(pool *pgxpool.Pool, table string) *PostgresSource {
	return &PostgresSource{pool: pool, query: selectEntriesSQL(table)}
}

// Name implements faq.Source.
func (s *PostgresSource) Name() string {
	return "postgres"
}

// Load implements faq.Source.
func (s *PostgresSource) Load(ctx context.Context) ([]faq.Entry, error) {
	rows, err := s.pool.Query(ctx, s.query)
	if err != nil {
		return nil, fmt.Errorf("query entries: %w", err)
	}
	defer rows.Close()

	var entries []faq.Entry
	for rows.Next() {
		var e faq.Entry
		if err := rows.Scan(&e.ID, &e.PromptZh, &e.PromptJa, &e.KeywordsZh, &e.KeywordsJa, &e.AnswerZh, &e.AnswerJa); err != nil {
			return nil, fmt.Errorf("scan entry: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return nil, fmt.Errorf("table has no rows: %w", ErrNotFound)
	}
	return entries, nil
}

// Close releases the pool.
func (s *PostgresSource) Close() {
	s.pool.Close()
}

func selectEntriesSQL(table string) string {
	return fmt.Sprintf(`
		SELECT id,
		       COALESCE(prompt_zh, ''), COALESCE(prompt_ja, ''),
		       COALESCE(keywords_zh, ''), COALESCE(keywords_ja, ''),
		       COALESCE(answer_zh, ''), COALESCE(answer_ja, '')
		FROM %s
		ORDER BY position, id
	`, table)
}

var _ faq.Source = (*PostgresSource)(nil)
