// Package export writes the processed datasets to CSV files so they can
// be inspected or fed to other tools without a database connection.
package export

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/davemendes/salespipe/internal/retail"
	"github.com/davemendes/salespipe/internal/rfm"
)

const dateLayout = "2006-01-02"

type Service struct {
	dir string
}

// NewService creates a service writing into dir. The directory is
// created on the first save.
func NewService(dir string) *Service {
	return &Service{dir: dir}
}

// SaveEntities writes customers.csv, products.csv, orders.csv and
// order_items.csv. Existing files are overwritten.
func (s *Service) SaveEntities(set retail.EntitySet) error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	files := []struct {
		name   string
		header []string
		rows   func() [][]string
	}{
		{"customers.csv",
			[]string{"customer_id", "country", "first_purchase_date", "last_purchase_date", "total_purchases", "total_spent"},
			func() [][]string { return customerRows(set.Customers) }},
		{"products.csv",
			[]string{"product_id", "description", "unit_price", "category", "stock_code"},
			func() [][]string { return productRows(set.Products) }},
		{"orders.csv",
			[]string{"order_id", "customer_id", "order_date", "country", "total_amount"},
			func() [][]string { return orderRows(set.Orders) }},
		{"order_items.csv",
			[]string{"order_id", "product_id", "quantity", "unit_price", "total_price"},
			func() [][]string { return orderItemRows(set.OrderItems) }},
	}

	for _, f := range files {
		if err := s.writeCSV(f.name, f.header, f.rows()); err != nil {
			return err
		}
	}

	return nil
}

// SaveSegments writes customer_segments.csv. Existing files are
// overwritten.
func (s *Service) SaveSegments(segments []rfm.Segment) error {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	rows := make([][]string, 0, len(segments))
	for _, seg := range segments {
		rows = append(rows, []string{
			seg.CustomerID,
			strconv.Itoa(seg.RecencyScore),
			strconv.Itoa(seg.FrequencyScore),
			strconv.Itoa(seg.MonetaryScore),
			strconv.Itoa(seg.RFMScore),
			seg.Segment,
		})
	}

	header := []string{"customer_id", "recency_score", "frequency_score", "monetary_score", "rfm_score", "segment"}

	return s.writeCSV("customer_segments.csv", header, rows)
}

func (s *Service) writeCSV(name string, header []string, rows [][]string) error {
	path := filepath.Join(s.dir, name)

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", name, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)

	if err := w.Write(header); err != nil {
		return fmt.Errorf("writing %s: %w", name, err)
	}

	for _, row := range rows {
		if err := w.Write(row); err != nil {
			return fmt.Errorf("writing %s: %w", name, err)
		}
	}

	w.Flush()

	if err := w.Error(); err != nil {
		return fmt.Errorf("flushing %s: %w", name, err)
	}

	return f.Close()
}

func customerRows(customers []retail.Customer) [][]string {
	rows := make([][]string, 0, len(customers))
	for _, c := range customers {
		rows = append(rows, []string{
			c.ID,
			c.Country,
			formatDate(c.FirstPurchase),
			formatDate(c.LastPurchase),
			strconv.Itoa(c.TotalPurchases),
			c.TotalSpent.StringFixed(2),
		})
	}

	return rows
}

func productRows(products []retail.Product) [][]string {
	rows := make([][]string, 0, len(products))
	for _, p := range products {
		rows = append(rows, []string{
			p.ID,
			p.Description,
			p.UnitPrice.StringFixed(2),
			p.Category,
			p.StockCode,
		})
	}

	return rows
}

func orderRows(orders []retail.Order) [][]string {
	rows := make([][]string, 0, len(orders))
	for _, o := range orders {
		rows = append(rows, []string{
			o.ID,
			o.CustomerID,
			formatDate(o.Date),
			o.Country,
			o.TotalAmount.StringFixed(2),
		})
	}

	return rows
}

func orderItemRows(items []retail.OrderItem) [][]string {
	rows := make([][]string, 0, len(items))
	for _, it := range items {
		rows = append(rows, []string{
			it.OrderID,
			it.ProductID,
			strconv.Itoa(it.Quantity),
			it.UnitPrice.StringFixed(2),
			it.TotalPrice.StringFixed(2),
		})
	}

	return rows
}

// formatDate renders the calendar date, or an empty field for rows that
// never carried a timestamp.
func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}

	return t.Format(dateLayout)
}
