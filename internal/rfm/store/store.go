package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/davemendes/salespipe/internal/retail"
	"github.com/davemendes/salespipe/internal/rfm"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

func (s *Store) ListCustomers(ctx context.Context) ([]retail.Customer, error) {
	query := `
		SELECT customer_id, country, first_purchase_date, last_purchase_date,
		       total_purchases, total_spent
		FROM customers
		ORDER BY customer_id
	`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing customers: %w", err)
	}
	defer rows.Close()

	var customers []retail.Customer

	for rows.Next() {
		var (
			c           retail.Customer
			first, last sql.NullTime
		)

		if err := rows.Scan(&c.ID, &c.Country, &first, &last, &c.TotalPurchases, &c.TotalSpent); err != nil {
			return nil, fmt.Errorf("scanning customer: %w", err)
		}

		c.FirstPurchase = first.Time
		c.LastPurchase = last.Time

		customers = append(customers, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating customers: %w", err)
	}

	return customers, nil
}

// ReplaceSegments swaps the stored segment set wholesale. Delete and
// insert run in one transaction so readers never see a half-replaced set.
func (s *Store) ReplaceSegments(ctx context.Context, segments []rfm.Segment) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning segment tx: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, "DELETE FROM customer_segments"); err != nil {
		return fmt.Errorf("clearing segments: %w", err)
	}

	query := `
		INSERT INTO customer_segments
			(customer_id, recency_score, frequency_score, monetary_score, rfm_score, segment)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (customer_id) DO UPDATE SET
			recency_score = EXCLUDED.recency_score,
			frequency_score = EXCLUDED.frequency_score,
			monetary_score = EXCLUDED.monetary_score,
			rfm_score = EXCLUDED.rfm_score,
			segment = EXCLUDED.segment
	`

	for _, seg := range segments {
		_, err := tx.ExecContext(ctx, query,
			seg.CustomerID,
			seg.RecencyScore,
			seg.FrequencyScore,
			seg.MonetaryScore,
			seg.RFMScore,
			seg.Segment,
		)
		if err != nil {
			return fmt.Errorf("inserting segment for customer %s: %w", seg.CustomerID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing segments: %w", err)
	}

	return nil
}
