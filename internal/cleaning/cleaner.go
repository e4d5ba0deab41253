// Package cleaning filters and normalizes raw sales rows before
// transformation. Bad rows are dropped silently; the per-step counts are
// reported, never raised.
package cleaning

import (
	"log/slog"
	"math"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/davemendes/salespipe/internal/retail"
)

// UnknownDescription replaces missing product descriptions.
const UnknownDescription = "Unknown"

// Report counts the rows removed at each cleaning step.
type Report struct {
	Input         int
	MissingIDs    int
	Cancellations int
	NonPositive   int
	Outliers      int
	Output        int
}

type Cleaner struct {
	log *slog.Logger
}

func New(log *slog.Logger) *Cleaner {
	return &Cleaner{log: log}
}

// Clean applies the cleaning steps in order: drop rows without a customer
// or invoice id, drop cancellations, drop non-positive quantities and
// prices, derive the line total, fill missing descriptions, and cut
// three-sigma outliers on unit price and quantity. Outlier statistics are
// computed once over the dataset that survives the earlier steps.
func (c *Cleaner) Clean(rows []retail.RawRow) ([]retail.RawRow, Report) {
	report := Report{Input: len(rows)}

	kept := make([]retail.RawRow, 0, len(rows))

	for _, row := range rows {
		switch {
		case row.CustomerID == "" || row.Invoice == "":
			report.MissingIDs++
		case strings.HasPrefix(row.Invoice, retail.CancelMarker):
			report.Cancellations++
		case row.Quantity <= 0 || !row.UnitPrice.IsPositive():
			report.NonPositive++
		default:
			row.TotalPrice = row.UnitPrice.Mul(decimal.NewFromInt(int64(row.Quantity)))
			if row.Description == "" {
				row.Description = UnknownDescription
			}

			kept = append(kept, row)
		}
	}

	kept, report.Outliers = c.cutOutliers(kept)
	report.Output = len(kept)

	c.log.Info("cleaning finished",
		"input", report.Input,
		"missing_ids", report.MissingIDs,
		"cancellations", report.Cancellations,
		"non_positive", report.NonPositive,
		"outliers", report.Outliers,
		"output", report.Output,
	)

	return kept, report
}

// cutOutliers drops rows whose unit price or quantity lies at or above
// mean + 3 standard deviations. Statistics come from a single pass over
// the input; the cut is not re-applied to its own result. An empty input
// is returned unchanged since the statistics are undefined.
func (c *Cleaner) cutOutliers(rows []retail.RawRow) ([]retail.RawRow, int) {
	if len(rows) == 0 {
		return rows, 0
	}

	prices := make([]float64, len(rows))
	quantities := make([]float64, len(rows))

	for i, row := range rows {
		prices[i] = row.UnitPrice.InexactFloat64()
		quantities[i] = float64(row.Quantity)
	}

	priceCap := mean(prices) + 3*stdev(prices)
	quantityCap := mean(quantities) + 3*stdev(quantities)

	kept := rows[:0]
	removed := 0

	for i, row := range rows {
		if prices[i] >= priceCap || quantities[i] >= quantityCap {
			removed++
			continue
		}

		kept = append(kept, row)
	}

	return kept, removed
}

func mean(xs []float64) float64 {
	var sum float64
	for _, x := range xs {
		sum += x
	}

	return sum / float64(len(xs))
}

// stdev is the sample standard deviation; it is 0 for fewer than two values.
func stdev(xs []float64) float64 {
	if len(xs) < 2 {
		return 0
	}

	m := mean(xs)

	var sum float64

	for _, x := range xs {
		d := x - m
		sum += d * d
	}

	return math.Sqrt(sum / float64(len(xs)-1))
}
