package retail

import (
	"context"
	"fmt"
	"log/slog"
)

// ProcessDataLoading names the load run in the processing log.
const ProcessDataLoading = "data_loading"

//go:generate mockgen -source=service.go -destination=repository_mock.go -package=retail
type Repository interface {
	// StartRun opens a processing-log entry with status STARTED. The entry
	// is committed on its own so a failed load leaves it behind as a trace.
	StartRun(ctx context.Context, processName string) (int64, error)

	BeginLoad(ctx context.Context) (LoadTx, error)
}

// LoadTx is one atomic load batch. Nothing it writes is visible until
// Commit.
type LoadTx interface {
	UpsertCustomers(ctx context.Context, customers []Customer) error
	UpsertProducts(ctx context.Context, products []Product) error
	UpsertOrders(ctx context.Context, orders []Order) error
	ReplaceOrderItems(ctx context.Context, orderIDs []string, items []OrderItem) error
	CompleteRun(ctx context.Context, runID int64, records int) error
	Commit() error
	Rollback() error
}

type Service struct {
	repo Repository
	log  *slog.Logger
}

func NewService(repo Repository, log *slog.Logger) *Service {
	return &Service{repo: repo, log: log}
}

// Load commits an entity set into the store. Customers and products are
// written before orders and orders before their items, so every foreign
// key lands on an already-written row. Order items are replaced, not
// merged: re-running a load with the same input leaves the same rows.
// On any failure the whole batch rolls back and the processing-log entry
// stays in STARTED.
func (s *Service) Load(ctx context.Context, set EntitySet) (int, error) {
	runID, err := s.repo.StartRun(ctx, ProcessDataLoading)
	if err != nil {
		return 0, fmt.Errorf("starting processing log: %w", err)
	}

	tx, err := s.repo.BeginLoad(ctx)
	if err != nil {
		return 0, fmt.Errorf("beginning load: %w", err)
	}
	defer tx.Rollback()

	if err := tx.UpsertCustomers(ctx, set.Customers); err != nil {
		return 0, fmt.Errorf("loading customers: %w", err)
	}

	if err := tx.UpsertProducts(ctx, set.Products); err != nil {
		return 0, fmt.Errorf("loading products: %w", err)
	}

	if err := tx.UpsertOrders(ctx, set.Orders); err != nil {
		return 0, fmt.Errorf("loading orders: %w", err)
	}

	if err := tx.ReplaceOrderItems(ctx, set.OrderIDs(), set.OrderItems); err != nil {
		return 0, fmt.Errorf("loading order items: %w", err)
	}

	records := set.Records()

	if err := tx.CompleteRun(ctx, runID, records); err != nil {
		return 0, fmt.Errorf("completing processing log: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("committing load: %w", err)
	}

	s.log.Info("load finished",
		"run_id", runID,
		"customers", len(set.Customers),
		"products", len(set.Products),
		"orders", len(set.Orders),
		"order_items", len(set.OrderItems),
	)

	return records, nil
}
