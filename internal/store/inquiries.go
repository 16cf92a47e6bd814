package store

import (
	"context"
	"fmt"
	"strings"
)

// InsertInquiry stores a visitor inquiry tagged with its target owner.
// There is deliberately no existence check on the owner: an inquiry may
// reference an owner deleted since the public page was loaded.
func (s *PostgresStore) InsertInquiry(ctx context.Context, inquiry Inquiry) error {
	if strings.TrimSpace(inquiry.OwnerID) == "" {
		return ErrMissingOwner
	}
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO inquiries (id, owner_id, email, phone, country, category, product_name, product_details, description)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`, inquiry.ID, inquiry.OwnerID, inquiry.Email, inquiry.Phone, inquiry.Country,
		inquiry.Category, inquiry.ProductName, inquiry.ProductDetails, inquiry.Description)
	if err != nil {
		return fmt.Errorf("insert inquiry: %w", err)
	}
	return nil
}

// ListInquiries returns every inquiry routed to ownerID, newest first.
func (s *PostgresStore) ListInquiries(ctx context.Context, ownerID string) ([]Inquiry, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, owner_id, email, phone, country, category, product_name, product_details, description, created_at
		FROM inquiries
		WHERE owner_id=$1
		ORDER BY created_at DESC
	`, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list inquiries: %w", err)
	}
	defer rows.Close()

	items := make([]Inquiry, 0)
	for rows.Next() {
		var item Inquiry
		if err := rows.Scan(
			&item.ID,
			&item.OwnerID,
			&item.Email,
			&item.Phone,
			&item.Country,
			&item.Category,
			&item.ProductName,
			&item.ProductDetails,
			&item.Description,
			&item.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan inquiry: %w", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate inquiries: %w", err)
	}
	return items, nil
}

// DeleteInquiry removes one inquiry, but only when it is tagged with the
// caller's owner identity. Deleting someone else's inquiry (or one that
// does not exist) is ErrUnauthorized.
func (s *PostgresStore) DeleteInquiry(ctx context.Context, ownerID, inquiryID string) error {
	result, err := s.db.ExecContext(ctx,
		`DELETE FROM inquiries WHERE id=$1 AND owner_id=$2`, inquiryID, ownerID)
	if err != nil {
		return fmt.Errorf("delete inquiry: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete inquiry rows: %w", err)
	}
	if affected == 0 {
		return ErrUnauthorized
	}
	return nil
}
