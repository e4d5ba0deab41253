package retail_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/davemendes/salespipe/internal/retail"
)

func testSet() retail.EntitySet {
	day := time.Date(2010, 12, 1, 0, 0, 0, 0, time.UTC)

	return retail.EntitySet{
		Customers: []retail.Customer{
			{ID: "17850", Country: "United Kingdom", FirstPurchase: day, LastPurchase: day, TotalPurchases: 1, TotalSpent: decimal.RequireFromString("15.30")},
		},
		Products: []retail.Product{
			{ID: "P85123A", Description: "WHITE HANGING HEART T-LIGHT HOLDER", UnitPrice: decimal.RequireFromString("2.55"), Category: "Decoration", StockCode: "85123A"},
		},
		Orders: []retail.Order{
			{ID: "536365", CustomerID: "17850", Date: day, Country: "United Kingdom", TotalAmount: decimal.RequireFromString("15.30")},
		},
		OrderItems: []retail.OrderItem{
			{OrderID: "536365", ProductID: "P85123A", Quantity: 6, UnitPrice: decimal.RequireFromString("2.55"), TotalPrice: decimal.RequireFromString("15.30")},
		},
	}
}

func newService(repo retail.Repository) *retail.Service {
	return retail.NewService(repo, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestService_Load_WriteOrder(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := retail.NewMockRepository(ctrl)
	tx := retail.NewMockLoadTx(ctrl)
	set := testSet()

	repo.EXPECT().StartRun(gomock.Any(), retail.ProcessDataLoading).Return(int64(7), nil)
	repo.EXPECT().BeginLoad(gomock.Any()).Return(tx, nil)

	// Referential integrity hangs on this ordering: parents before
	// children, items last, then the log closes inside the batch.
	gomock.InOrder(
		tx.EXPECT().UpsertCustomers(gomock.Any(), set.Customers).Return(nil),
		tx.EXPECT().UpsertProducts(gomock.Any(), set.Products).Return(nil),
		tx.EXPECT().UpsertOrders(gomock.Any(), set.Orders).Return(nil),
		tx.EXPECT().ReplaceOrderItems(gomock.Any(), []string{"536365"}, set.OrderItems).Return(nil),
		tx.EXPECT().CompleteRun(gomock.Any(), int64(7), 4).Return(nil),
		tx.EXPECT().Commit().Return(nil),
	)
	tx.EXPECT().Rollback().Return(nil)

	records, err := newService(repo).Load(context.Background(), set)
	require.NoError(t, err)
	assert.Equal(t, 4, records)
}

func TestService_Load_RollsBackOnFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := retail.NewMockRepository(ctrl)
	tx := retail.NewMockLoadTx(ctrl)
	set := testSet()

	repo.EXPECT().StartRun(gomock.Any(), retail.ProcessDataLoading).Return(int64(7), nil)
	repo.EXPECT().BeginLoad(gomock.Any()).Return(tx, nil)

	tx.EXPECT().UpsertCustomers(gomock.Any(), set.Customers).Return(nil)
	tx.EXPECT().UpsertProducts(gomock.Any(), set.Products).Return(errors.New("unique violation"))
	// No CompleteRun and no Commit: the STARTED log row stays open as the
	// failure marker.
	tx.EXPECT().Rollback().Return(nil)

	_, err := newService(repo).Load(context.Background(), set)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "loading products")
}

func TestService_Load_StartRunError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := retail.NewMockRepository(ctrl)
	repo.EXPECT().StartRun(gomock.Any(), retail.ProcessDataLoading).Return(int64(0), errors.New("db down"))

	_, err := newService(repo).Load(context.Background(), testSet())
	assert.Error(t, err)
}

func TestService_Load_CommitError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := retail.NewMockRepository(ctrl)
	tx := retail.NewMockLoadTx(ctrl)
	set := testSet()

	repo.EXPECT().StartRun(gomock.Any(), retail.ProcessDataLoading).Return(int64(7), nil)
	repo.EXPECT().BeginLoad(gomock.Any()).Return(tx, nil)

	tx.EXPECT().UpsertCustomers(gomock.Any(), gomock.Any()).Return(nil)
	tx.EXPECT().UpsertProducts(gomock.Any(), gomock.Any()).Return(nil)
	tx.EXPECT().UpsertOrders(gomock.Any(), gomock.Any()).Return(nil)
	tx.EXPECT().ReplaceOrderItems(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	tx.EXPECT().CompleteRun(gomock.Any(), int64(7), 4).Return(nil)
	tx.EXPECT().Commit().Return(errors.New("connection reset"))
	tx.EXPECT().Rollback().Return(nil)

	_, err := newService(repo).Load(context.Background(), set)
	assert.Error(t, err)
}
