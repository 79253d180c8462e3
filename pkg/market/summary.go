// Package market summarizes comparable vehicle listings into the average
// market price used to anchor trade-in offers.
package market

import (
	"math"

	domain "github.com/donaldgifford/trade-appraiser/pkg/types"
)

// DefaultStdDevThreshold is the outlier cutoff in standard deviations.
const DefaultStdDevThreshold = 2.0

// minSampleForFiltering is the smallest set outlier filtering applies to.
const minSampleForFiltering = 3

// Filter returns the comparables whose price lies within threshold sample
// standard deviations of the mean. Sets smaller than three are returned
// unfiltered. A non-positive threshold falls back to the default.
func Filter(comps []domain.Comparable, threshold float64) []domain.Comparable {
	kept, _, _ := filter(comps, threshold)
	return kept
}

// Summarize filters outliers and reports the average of what remains.
func Summarize(comps []domain.Comparable, threshold float64) domain.MarketSummary {
	if len(comps) == 0 {
		return domain.MarketSummary{}
	}

	kept, mean, stddev := filter(comps, threshold)

	s := domain.MarketSummary{
		OriginalAvg:     mean,
		StdDev:          stddev,
		Count:           len(kept),
		OutliersRemoved: len(comps) - len(kept),
	}
	if len(kept) == 0 {
		return s
	}

	prices := pricesOf(kept)
	s.AvgPrice = average(prices)
	s.MinPrice, s.MaxPrice = prices[0], prices[0]
	for _, p := range prices[1:] {
		s.MinPrice = math.Min(s.MinPrice, p)
		s.MaxPrice = math.Max(s.MaxPrice, p)
	}
	return s
}

func filter(comps []domain.Comparable, threshold float64) (kept []domain.Comparable, mean, stddev float64) {
	if threshold <= 0 || math.IsNaN(threshold) {
		threshold = DefaultStdDevThreshold
	}

	prices := pricesOf(comps)
	mean = average(prices)
	if len(comps) < minSampleForFiltering {
		return comps, mean, 0
	}

	stddev = sampleStdDev(prices, mean)
	limit := threshold * stddev

	kept = make([]domain.Comparable, 0, len(comps))
	for _, c := range comps {
		if math.Abs(c.Price-mean) <= limit {
			kept = append(kept, c)
		}
	}
	return kept, mean, stddev
}

func pricesOf(comps []domain.Comparable) []float64 {
	out := make([]float64, len(comps))
	for i, c := range comps {
		out[i] = c.Price
	}
	return out
}

func average(vals []float64) float64 {
	if len(vals) == 0 {
		return 0
	}
	var sum float64
	for _, v := range vals {
		sum += v
	}
	return sum / float64(len(vals))
}

func sampleStdDev(vals []float64, mean float64) float64 {
	if len(vals) < 2 {
		return 0
	}
	var ss float64
	for _, v := range vals {
		d := v - mean
		ss += d * d
	}
	return math.Sqrt(ss / float64(len(vals)-1))
}
