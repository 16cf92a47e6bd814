package search

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"

	"folio/api/internal/content"
)

// PgFTS implements Searcher using PostgreSQL full-text search as a fallback.
// It builds the tsvector on the fly from the JSONB document, which is slower
// than a dedicated index but needs no extra schema.
type PgFTS struct {
	db *sql.DB
}

// NewPgFTS creates a PostgreSQL FTS searcher.
func NewPgFTS(db *sql.DB) *PgFTS {
	return &PgFTS{db: db}
}

// Healthy always returns true. If Postgres is down, the whole app is down.
func (p *PgFTS) Healthy() bool {
	return true
}

const pgftsVector = `to_tsvector('english',
	coalesce(u.name, '') || ' ' ||
	coalesce(u.username, '') || ' ' ||
	coalesce(c.document#>>'{hero,titleLine1}', '') || ' ' ||
	coalesce(c.document#>>'{about,description}', '') || ' ' ||
	coalesce(c.document#>>'{seo,metaTitle}', '') || ' ' ||
	coalesce(c.document#>>'{seo,metaDescription}', ''))`

// Search matches portfolios with plainto_tsquery ranked by ts_rank, using
// ts_headline over the about description for snippets.
func (p *PgFTS) Search(q Query) ([]Result, int, error) {
	if strings.TrimSpace(q.Text) == "" {
		return nil, 0, nil
	}

	limit := q.Limit
	if limit <= 0 {
		limit = 20
	}
	offset := q.Offset
	if offset < 0 {
		offset = 0
	}

	ctx := context.Background()
	where := pgftsVector + " @@ plainto_tsquery('english', $1)"

	var total int
	countSQL := `
		SELECT count(*)
		FROM contents c
		JOIN users u ON u.id = c.owner_id
		WHERE ` + where
	if err := p.db.QueryRowContext(ctx, countSQL, q.Text).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("pgfts count: %w", err)
	}

	dataSQL := fmt.Sprintf(`
		SELECT c.owner_id, u.username, u.name,
			coalesce(c.document#>>'{seo,metaTitle}', c.document#>>'{hero,titleLine1}', '') AS title,
			ts_headline('english', coalesce(c.document#>>'{about,description}', ''),
				plainto_tsquery('english', $1), 'MaxFragments=1,MaxWords=30') AS snippet
		FROM contents c
		JOIN users u ON u.id = c.owner_id
		WHERE %s
		ORDER BY ts_rank(%s, plainto_tsquery('english', $1)) DESC
		LIMIT %d OFFSET %d`, where, pgftsVector, limit, offset)

	rows, err := p.db.QueryContext(ctx, dataSQL, q.Text)
	if err != nil {
		return nil, 0, fmt.Errorf("pgfts query: %w", err)
	}
	defer rows.Close()

	var results []Result
	for rows.Next() {
		var r Result
		if err := rows.Scan(&r.OwnerID, &r.Username, &r.Name, &r.Title, &r.Snippet); err != nil {
			return nil, 0, fmt.Errorf("pgfts scan: %w", err)
		}
		results = append(results, r)
	}

	return results, total, rows.Err()
}

// LoadAllRecords returns every portfolio as an index record for full reindexing.
func (p *PgFTS) LoadAllRecords(ctx context.Context) ([]PortfolioRecord, error) {
	rows, err := p.db.QueryContext(ctx, `
		SELECT c.owner_id, u.username, u.name, c.document
		FROM contents c
		JOIN users u ON u.id = c.owner_id
	`)
	if err != nil {
		return nil, fmt.Errorf("load portfolios: %w", err)
	}
	defer rows.Close()

	records := make([]PortfolioRecord, 0)
	for rows.Next() {
		var ownerID, username, name string
		var raw []byte
		if err := rows.Scan(&ownerID, &username, &name, &raw); err != nil {
			return nil, fmt.Errorf("scan portfolio: %w", err)
		}
		var doc content.Document
		if err := json.Unmarshal(raw, &doc); err != nil {
			return nil, fmt.Errorf("decode portfolio document: %w", err)
		}
		records = append(records, NewPortfolioRecord(ownerID, username, name, doc))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate portfolios: %w", err)
	}
	return records, nil
}
