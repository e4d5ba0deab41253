package retail

import (
	"time"

	"github.com/shopspring/decimal"
)

// CancelMarker is the invoice prefix CGD-style retail exports use for
// cancelled orders. Rows whose invoice starts with it never reach the
// relational model.
const CancelMarker = "C"

// ProductIDPrefix is prepended to the stock code to form a product id.
const ProductIDPrefix = "P"

// RawRow is one line item of the flat sales log, as read from the raw
// export. It only lives between ingestion and transformation.
type RawRow struct {
	Invoice     string
	StockCode   string
	Description string // empty when the export had no description
	Quantity    int
	UnitPrice   decimal.Decimal
	Timestamp   time.Time // zero when the export value was unparseable
	CustomerID  string
	Country     string

	// Derived by the cleaner and classifier.
	TotalPrice decimal.Decimal
	Category   string
}

// Customer aggregates all orders of one customer. It is recomputed from
// the full cleaned dataset on every run, never patched incrementally.
type Customer struct {
	ID             string
	Country        string
	FirstPurchase  time.Time // calendar date, zero when no row carried a timestamp
	LastPurchase   time.Time
	TotalPurchases int // distinct invoices
	TotalSpent     decimal.Decimal
}

// Product is one row per distinct stock code.
type Product struct {
	ID          string // ProductIDPrefix + stock code
	Description string
	UnitPrice   decimal.Decimal
	Category    string
	StockCode   string
}

// Order is one row per distinct invoice.
type Order struct {
	ID          string // invoice id
	CustomerID  string
	Date        time.Time
	Country     string
	TotalAmount decimal.Decimal
}

// OrderItem is one line item of an order. Items of an order are replaced
// wholesale on every load, never merged.
type OrderItem struct {
	OrderID    string
	ProductID  string
	Quantity   int
	UnitPrice  decimal.Decimal
	TotalPrice decimal.Decimal
}

// EntitySet holds the four normalized entity sets of one transform pass.
type EntitySet struct {
	Customers  []Customer
	Products   []Product
	Orders     []Order
	OrderItems []OrderItem
}

// Records is the total row count across all four entity sets.
func (s EntitySet) Records() int {
	return len(s.Customers) + len(s.Products) + len(s.Orders) + len(s.OrderItems)
}

// OrderIDs returns the ids of all orders in the set, in order.
func (s EntitySet) OrderIDs() []string {
	ids := make([]string, len(s.Orders))
	for i, o := range s.Orders {
		ids[i] = o.ID
	}

	return ids
}
