// Package transform aggregates cleaned, categorized sales rows into the
// four normalized entity sets.
package transform

import (
	"time"

	"github.com/davemendes/salespipe/internal/retail"
)

// orderKey groups line items into orders. Invoices are reused across
// files in some exports, so the full tuple is the grouping key.
type orderKey struct {
	Invoice    string
	CustomerID string
	Timestamp  time.Time
	Country    string
}

// ToEntities builds customers, products, orders and order items from the
// cleaned rows. Grouping is stable: the first row encountered for a
// customer decides its country, and the first row for a stock code
// decides the product's description, price and category.
func ToEntities(rows []retail.RawRow) retail.EntitySet {
	var set retail.EntitySet

	customers := make(map[string]int)
	invoices := make(map[string]map[string]struct{})
	products := make(map[string]struct{})
	orders := make(map[orderKey]int)

	set.OrderItems = make([]retail.OrderItem, 0, len(rows))

	for _, row := range rows {
		ci, ok := customers[row.CustomerID]
		if !ok {
			ci = len(set.Customers)
			customers[row.CustomerID] = ci
			invoices[row.CustomerID] = make(map[string]struct{})

			set.Customers = append(set.Customers, retail.Customer{
				ID:      row.CustomerID,
				Country: row.Country,
			})
		}

		cust := &set.Customers[ci]
		cust.TotalSpent = cust.TotalSpent.Add(row.TotalPrice)
		invoices[row.CustomerID][row.Invoice] = struct{}{}

		if !row.Timestamp.IsZero() {
			day := toDate(row.Timestamp)
			if cust.FirstPurchase.IsZero() || day.Before(cust.FirstPurchase) {
				cust.FirstPurchase = day
			}

			if day.After(cust.LastPurchase) {
				cust.LastPurchase = day
			}
		}

		productID := retail.ProductIDPrefix + row.StockCode
		if _, ok := products[row.StockCode]; !ok {
			products[row.StockCode] = struct{}{}

			set.Products = append(set.Products, retail.Product{
				ID:          productID,
				Description: row.Description,
				UnitPrice:   row.UnitPrice,
				Category:    row.Category,
				StockCode:   row.StockCode,
			})
		}

		key := orderKey{
			Invoice:    row.Invoice,
			CustomerID: row.CustomerID,
			Timestamp:  row.Timestamp,
			Country:    row.Country,
		}

		oi, ok := orders[key]
		if !ok {
			oi = len(set.Orders)
			orders[key] = oi

			set.Orders = append(set.Orders, retail.Order{
				ID:         row.Invoice,
				CustomerID: row.CustomerID,
				Date:       row.Timestamp,
				Country:    row.Country,
			})
		}

		order := &set.Orders[oi]
		order.TotalAmount = order.TotalAmount.Add(row.TotalPrice)

		set.OrderItems = append(set.OrderItems, retail.OrderItem{
			OrderID:    row.Invoice,
			ProductID:  productID,
			Quantity:   row.Quantity,
			UnitPrice:  row.UnitPrice,
			TotalPrice: row.TotalPrice,
		})
	}

	for i := range set.Customers {
		set.Customers[i].TotalPurchases = len(invoices[set.Customers[i].ID])
	}

	return set
}

func toDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
