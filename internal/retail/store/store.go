package store

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/davemendes/salespipe/internal/retail"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// StartRun inserts a STARTED processing-log row outside of any load
// transaction, so it survives a rolled-back batch as a failure marker.
func (s *Store) StartRun(ctx context.Context, processName string) (int64, error) {
	query := `
		INSERT INTO data_processing_log (process_name, status)
		VALUES ($1, 'STARTED')
		RETURNING log_id
	`

	var id int64
	if err := s.db.QueryRowContext(ctx, query, processName).Scan(&id); err != nil {
		return 0, fmt.Errorf("starting run: %w", err)
	}

	return id, nil
}

func (s *Store) BeginLoad(ctx context.Context) (retail.LoadTx, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("beginning load tx: %w", err)
	}

	return &loadTx{tx: tx}, nil
}

type loadTx struct {
	tx *sql.Tx
}

func (ltx *loadTx) Commit() error   { return ltx.tx.Commit() }
func (ltx *loadTx) Rollback() error { return ltx.tx.Rollback() }

func (ltx *loadTx) UpsertCustomers(ctx context.Context, customers []retail.Customer) error {
	query := `
		INSERT INTO customers (customer_id, country, first_purchase_date,
		                       last_purchase_date, total_purchases, total_spent)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (customer_id) DO UPDATE SET
			country = EXCLUDED.country,
			first_purchase_date = EXCLUDED.first_purchase_date,
			last_purchase_date = EXCLUDED.last_purchase_date,
			total_purchases = EXCLUDED.total_purchases,
			total_spent = EXCLUDED.total_spent
	`

	for _, c := range customers {
		_, err := ltx.tx.ExecContext(ctx, query,
			c.ID,
			c.Country,
			nullDate(c.FirstPurchase),
			nullDate(c.LastPurchase),
			c.TotalPurchases,
			c.TotalSpent,
		)
		if err != nil {
			return fmt.Errorf("upserting customer %s: %w", c.ID, err)
		}
	}

	return nil
}

func (ltx *loadTx) UpsertProducts(ctx context.Context, products []retail.Product) error {
	query := `
		INSERT INTO products (product_id, description, unit_price, category, stock_code)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (product_id) DO UPDATE SET
			description = EXCLUDED.description,
			unit_price = EXCLUDED.unit_price,
			category = EXCLUDED.category,
			stock_code = EXCLUDED.stock_code
	`

	for _, p := range products {
		_, err := ltx.tx.ExecContext(ctx, query,
			p.ID, p.Description, p.UnitPrice, p.Category, p.StockCode,
		)
		if err != nil {
			return fmt.Errorf("upserting product %s: %w", p.ID, err)
		}
	}

	return nil
}

func (ltx *loadTx) UpsertOrders(ctx context.Context, orders []retail.Order) error {
	query := `
		INSERT INTO orders (order_id, customer_id, order_date, country, total_amount)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (order_id) DO UPDATE SET
			customer_id = EXCLUDED.customer_id,
			order_date = EXCLUDED.order_date,
			country = EXCLUDED.country,
			total_amount = EXCLUDED.total_amount
	`

	for _, o := range orders {
		_, err := ltx.tx.ExecContext(ctx, query,
			o.ID, o.CustomerID, nullDate(o.Date), o.Country, o.TotalAmount,
		)
		if err != nil {
			return fmt.Errorf("upserting order %s: %w", o.ID, err)
		}
	}

	return nil
}

// ReplaceOrderItems deletes every existing item of the orders being
// loaded and bulk-inserts the new set. Replacing instead of merging keeps
// re-runs from duplicating line items.
func (ltx *loadTx) ReplaceOrderItems(ctx context.Context, orderIDs []string, items []retail.OrderItem) error {
	if len(orderIDs) > 0 {
		_, err := ltx.tx.ExecContext(ctx,
			"DELETE FROM order_items WHERE order_id = ANY($1)", orderIDs)
		if err != nil {
			return fmt.Errorf("deleting order items: %w", err)
		}
	}

	query := `
		INSERT INTO order_items (order_id, product_id, quantity, unit_price, total_price)
		VALUES ($1, $2, $3, $4, $5)
	`

	for _, item := range items {
		_, err := ltx.tx.ExecContext(ctx, query,
			item.OrderID, item.ProductID, item.Quantity, item.UnitPrice, item.TotalPrice,
		)
		if err != nil {
			return fmt.Errorf("inserting item for order %s: %w", item.OrderID, err)
		}
	}

	return nil
}

func (ltx *loadTx) CompleteRun(ctx context.Context, runID int64, records int) error {
	query := `
		UPDATE data_processing_log
		SET end_time = CURRENT_TIMESTAMP, status = 'COMPLETED', records_processed = $2
		WHERE log_id = $1
	`

	if _, err := ltx.tx.ExecContext(ctx, query, runID, records); err != nil {
		return fmt.Errorf("completing run %d: %w", runID, err)
	}

	return nil
}

// nullDate maps the zero time onto SQL NULL.
func nullDate(t time.Time) any {
	if t.IsZero() {
		return nil
	}

	return t
}
