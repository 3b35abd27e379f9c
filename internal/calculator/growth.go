package calculator

import (
	"foliocast/internal/domain"
	"math"

	"github.com/montanaflynn/stats"
)

const (
	// unclamped compounding over 5-10y horizons turns short noisy windows
	// into absurd numbers, so every rate is bounded here
	minAnnualRate = -0.15
	maxAnnualRate = 0.35

	// month-over-month returns outside this band are treated as data
	// artifacts (splits, bad ticks, contributions mixed into price data)
	outlierReturnBound = 0.20

	neutralShortRate = 0.08
	neutralLongRate  = 0.10

	// the compound/median blend for the 5y and 10y horizons
	cagrWeight   = 0.4
	medianWeight = 0.6
)

func clampRate(rate float64) float64 {
	return math.Max(minAnnualRate, math.Min(maxAnnualRate, rate))
}

// boundedCAGR annualizes the first-to-last change of the slice over the
// elapsed month count, clamped. Degenerate inputs get the neutral default.
func boundedCAGR(history []domain.PricePoint) float64 {
	if len(history) < 2 {
		return neutralShortRate
	}
	start := history[0].Price
	end := history[len(history)-1].Price
	months := domain.MonthsBetween(history[0].Date, history[len(history)-1].Date)
	if start <= 0 || end <= 0 || months <= 0 {
		return neutralShortRate
	}

	rate := math.Pow(end/start, 12/float64(months)) - 1
	return clampRate(rate)
}

// medianGrowth takes the median month-over-month return with outliers
// discarded, annualized by x12. This is the outlier-immune estimator - a
// single +500% month does not move it.
func medianGrowth(history []domain.PricePoint) float64 {
	returns := monthlyReturns(history)
	survivors := make([]float64, 0, len(returns))
	for _, ret := range returns {
		if ret > -outlierReturnBound && ret < outlierReturnBound {
			survivors = append(survivors, ret)
		}
	}
	if len(survivors) == 0 {
		return neutralShortRate
	}

	median, err := stats.Median(survivors)
	if err != nil {
		return neutralShortRate
	}
	return clampRate(median * 12)
}

func monthlyReturns(history []domain.PricePoint) []float64 {
	returns := []float64{}
	for i := 1; i < len(history); i++ {
		prev := history[i-1].Price
		if prev <= 0 {
			continue
		}
		returns = append(returns, (history[i].Price-prev)/prev)
	}
	return returns
}

func tail(history []domain.PricePoint, months int) []domain.PricePoint {
	if len(history) <= months {
		return history
	}
	return history[len(history)-months:]
}

// EstimateGrowthRates derives the four horizon rates from a monthly price
// history.
//
// The short horizons use the median method alone - the compound method is
// too unstable over windows with few samples. The 5y/10y horizons blend
// 0.4 compound + 0.6 median over the trailing 60 months / full history,
// re-clamped after blending. A window under 12 months falls back to the
// next-shorter horizon's rate; the one-year horizon itself reports 0
// without a full 12-month window.
func EstimateGrowthRates(history []domain.PricePoint) domain.GrowthRateSet {
	if len(history) < 6 {
		return domain.GrowthRateSet{
			SixMonth: neutralShortRate,
			OneYear:  neutralShortRate,
			FiveYear: neutralLongRate,
			TenYear:  neutralLongRate,
		}
	}

	sixMonth := medianGrowth(tail(history, 6))

	oneYear := 0.0
	if len(history) >= 12 {
		oneYear = medianGrowth(tail(history, 12))
	}

	fiveYear := oneYear
	if len(history) >= 12 {
		window := tail(history, 60)
		fiveYear = clampRate(cagrWeight*boundedCAGR(window) + medianWeight*medianGrowth(window))
	}

	tenYear := fiveYear
	if len(history) >= 12 {
		tenYear = clampRate(cagrWeight*boundedCAGR(history) + medianWeight*medianGrowth(history))
	}

	return domain.GrowthRateSet{
		SixMonth: sixMonth,
		OneYear:  oneYear,
		FiveYear: fiveYear,
		TenYear:  tenYear,
	}
}
