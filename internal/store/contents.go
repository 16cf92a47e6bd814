package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

	"folio/api/internal/content"
	"folio/api/internal/logger"
)

// PostgresStore is the tenant content store: one JSONB content document per
// owner, plus the users and inquiries that hang off the same owner key.
type PostgresStore struct {
	db *sql.DB
}

func NewPostgresStore(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) DB() *sql.DB {
	return s.db
}

// CreateDefault seeds the schema default document for a freshly registered
// owner. Exactly one document may exist per owner; a duplicate insert is
// reported as ErrOwnerConflict.
func (s *PostgresStore) CreateDefault(ctx context.Context, ownerID string) error {
	raw, err := json.Marshal(content.Default())
	if err != nil {
		return fmt.Errorf("marshal default document: %w", err)
	}
	_, err = s.db.ExecContext(ctx, `
		INSERT INTO contents (owner_id, document)
		VALUES ($1, $2::jsonb)
	`, ownerID, raw)
	if isUniqueViolation(err, "") {
		return ErrOwnerConflict
	}
	if err != nil {
		return fmt.Errorf("create default content: %w", err)
	}
	return nil
}

// FetchByOwner returns the owner's document for editing.
func (s *PostgresStore) FetchByOwner(ctx context.Context, ownerID string) (content.Document, error) {
	var raw []byte
	err := s.db.QueryRowContext(ctx,
		`SELECT document FROM contents WHERE owner_id=$1`, ownerID,
	).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("fetch content by owner: %w", err)
	}
	return decodeDocument(raw)
}

// FetchByPublicName resolves a public username to its owner and returns the
// document read-only. Each call bumps analytics.totalViews by one as an
// independent side effect; a failed bump is logged and swallowed, never
// failing the read.
func (s *PostgresStore) FetchByPublicName(ctx context.Context, username string) (content.Document, error) {
	var ownerID string
	var raw []byte
	err := s.db.QueryRowContext(ctx, `
		SELECT c.owner_id, c.document
		FROM contents c
		JOIN users u ON u.id = c.owner_id
		WHERE u.username=$1
	`, username).Scan(&ownerID, &raw)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("fetch content by username: %w", err)
	}

	doc, err := decodeDocument(raw)
	if err != nil {
		return nil, err
	}

	s.bumpViews(ctx, ownerID)
	return doc, nil
}

// bumpViews increments analytics.totalViews in a single statement so
// concurrent public reads never lose a count.
func (s *PostgresStore) bumpViews(ctx context.Context, ownerID string) {
	_, err := s.db.ExecContext(ctx, `
		UPDATE contents
		SET document = jsonb_set(
			document,
			'{analytics,totalViews}',
			to_jsonb(COALESCE((document#>>'{analytics,totalViews}')::numeric, 0) + 1),
			true
		),
		updated_at = NOW()
		WHERE owner_id=$1
	`, ownerID)
	if err != nil {
		logger.Sugar.Warnf("view counter increment failed for owner %s: %v", ownerID, err)
	}
}

// Replace validates the document shape and atomically overwrites the whole
// stored document for ownerID. This is a full replace, not a merge: sections
// omitted from doc are gone after the call.
func (s *PostgresStore) Replace(ctx context.Context, ownerID string, doc content.Document) error {
	if err := content.Validate(doc); err != nil {
		return err
	}
	raw, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("marshal document: %w", err)
	}
	result, err := s.db.ExecContext(ctx, `
		UPDATE contents
		SET document=$2::jsonb, updated_at=NOW()
		WHERE owner_id=$1
	`, ownerID, raw)
	if err != nil {
		return fmt.Errorf("replace content: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("replace content rows: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

// Ping verifies the database connection is alive.
func (s *PostgresStore) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func decodeDocument(raw []byte) (content.Document, error) {
	var doc content.Document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("decode document: %w", err)
	}
	return doc, nil
}

// isUniqueViolation reports whether err is a Postgres unique violation,
// optionally on a specific constraint.
func isUniqueViolation(err error, constraint string) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}
	if pgErr.Code != "23505" {
		return false
	}
	return constraint == "" || pgErr.ConstraintName == constraint
}
