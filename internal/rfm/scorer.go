// Package rfm scores customers on recency, frequency and monetary value
// and assigns each a behavioral segment.
package rfm

import (
	"time"

	"github.com/davemendes/salespipe/internal/retail"
)

// Segment labels, most valuable first.
const (
	SegmentChampions          = "Champions"
	SegmentLoyalCustomers     = "Loyal Customers"
	SegmentPotentialLoyalists = "Potential Loyalists"
	SegmentNewCustomers       = "New Customers"
	SegmentPromising          = "Promising"
	SegmentAtRisk             = "At Risk"
	SegmentNeedAttention      = "Need Attention"
	SegmentAboutToSleep       = "About to Sleep"
	SegmentHibernating        = "Hibernating"
	SegmentCannotLose         = "Cannot Lose"
)

// Segment is the scored classification of one customer.
type Segment struct {
	CustomerID     string
	RecencyScore   int
	FrequencyScore int
	MonetaryScore  int
	RFMScore       int // sum of the three, 3..15
	Segment        string
}

// Fallback threshold bins used when a distribution is too degenerate for
// quantile binning. The last bin is unbounded.
var (
	recencyBounds   = [4]float64{7, 30, 90, 180}
	frequencyBounds = [4]float64{1, 2, 5, 10}
	monetaryBounds  = [4]float64{10, 50, 100, 500}
)

// Recency is inverted: the most recent bucket scores 5.
var (
	recencyLabels   = [5]int{5, 4, 3, 2, 1}
	ascendingLabels = [5]int{1, 2, 3, 4, 5}
)

// Score computes one segment per customer as of the given date. Each of
// the three dimensions is binned by quantiles when the population allows
// it and by fixed thresholds otherwise, so scoring never fails.
func Score(customers []retail.Customer, asOf time.Time) []Segment {
	if len(customers) == 0 {
		return nil
	}

	recency := make([]float64, len(customers))
	frequency := make([]float64, len(customers))
	monetary := make([]float64, len(customers))

	today := time.Date(asOf.Year(), asOf.Month(), asOf.Day(), 0, 0, 0, 0, time.UTC)

	for i, c := range customers {
		recency[i] = today.Sub(c.LastPurchase).Hours() / 24

		// Floors keep the fallback bins meaningful for empty histories.
		frequency[i] = float64(max(c.TotalPurchases, 1))
		monetary[i] = max(c.TotalSpent.InexactFloat64(), 0.01)
	}

	rScores := scoreDimension(recency, recencyLabels, recencyBounds)
	fScores := scoreDimension(frequency, ascendingLabels, frequencyBounds)
	mScores := scoreDimension(monetary, ascendingLabels, monetaryBounds)

	segments := make([]Segment, len(customers))

	for i, c := range customers {
		r, f, m := rScores[i], fScores[i], mScores[i]

		segments[i] = Segment{
			CustomerID:     c.ID,
			RecencyScore:   r,
			FrequencyScore: f,
			MonetaryScore:  m,
			RFMScore:       r + f + m,
			Segment:        classify(r, f, m, r+f+m),
		}
	}

	return segments
}

func scoreDimension(values []float64, labels [5]int, fallback [4]float64) []int {
	scores, err := quantileScores(values, labels)
	if err != nil {
		return thresholdScores(values, fallback, labels)
	}

	return scores
}

// segmentRule is one entry of the classification decision list.
type segmentRule struct {
	label string
	match func(r, f, m, rfm int) bool
}

// segmentRules is evaluated top to bottom, first match wins. The order
// carries the tie-breaks (a 5/5/3 customer is Loyal, not Potential), so
// reordering changes classifications.
var segmentRules = []segmentRule{
	{SegmentChampions, func(r, f, m, rfm int) bool { return rfm >= 13 }},
	{SegmentLoyalCustomers, func(r, f, m, rfm int) bool { return r >= 4 && (f >= 4 || m >= 4) }},
	{SegmentPotentialLoyalists, func(r, f, m, rfm int) bool { return r >= 3 && f >= 3 && m >= 3 }},
	{SegmentNewCustomers, func(r, f, m, rfm int) bool { return r >= 4 && f <= 2 && m <= 2 }},
	{SegmentPromising, func(r, f, m, rfm int) bool { return r >= 3 && f <= 2 && m <= 2 }},
	{SegmentAtRisk, func(r, f, m, rfm int) bool { return r <= 2 && f >= 4 && m >= 4 }},
	{SegmentNeedAttention, func(r, f, m, rfm int) bool { return r <= 2 && f >= 3 && m >= 3 }},
	{SegmentAboutToSleep, func(r, f, m, rfm int) bool { return r <= 2 && f <= 2 && m >= 3 }},
	{SegmentHibernating, func(r, f, m, rfm int) bool { return r <= 2 && f <= 2 && m <= 2 }},
}

func classify(r, f, m, rfm int) string {
	for _, rule := range segmentRules {
		if rule.match(r, f, m, rfm) {
			return rule.label
		}
	}

	return SegmentCannotLose
}
