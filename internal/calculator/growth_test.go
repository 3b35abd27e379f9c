package calculator

import (
	"foliocast/internal/domain"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func monthlySeries(start time.Time, prices []float64) []domain.PricePoint {
	points := make([]domain.PricePoint, len(prices))
	for i, price := range prices {
		points[i] = domain.PricePoint{
			Date:  start.AddDate(0, i, 0),
			Price: price,
		}
	}
	return points
}

func geometricSeries(start time.Time, first float64, monthlyReturn float64, n int) []domain.PricePoint {
	prices := make([]float64, n)
	price := first
	for i := 0; i < n; i++ {
		prices[i] = price
		price *= 1 + monthlyReturn
	}
	return monthlySeries(start, prices)
}

func TestEstimateGrowthRates(t *testing.T) {
	start := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)

	t.Run("median ignores injected outlier", func(t *testing.T) {
		clean := geometricSeries(start, 100, 0.01, 15)

		spiked := geometricSeries(start, 100, 0.01, 15)
		// one +500% month in the middle of the trailing year
		for i := 10; i < len(spiked); i++ {
			spiked[i].Price *= 6
		}

		cleanRates := EstimateGrowthRates(clean)
		spikedRates := EstimateGrowthRates(spiked)

		require.InDelta(t, cleanRates.OneYear, spikedRates.OneYear, 1e-9)
		require.InDelta(t, 0.12, spikedRates.OneYear, 1e-9)
	})

	t.Run("rates are clamped", func(t *testing.T) {
		boom := geometricSeries(start, 100, 0.10, 24)
		bust := geometricSeries(start, 100, -0.10, 24)

		for _, rates := range []domain.GrowthRateSet{
			EstimateGrowthRates(boom),
			EstimateGrowthRates(bust),
		} {
			for _, rate := range []float64{rates.SixMonth, rates.OneYear, rates.FiveYear, rates.TenYear} {
				require.GreaterOrEqual(t, rate, minAnnualRate)
				require.LessOrEqual(t, rate, maxAnnualRate)
			}
		}

		require.InDelta(t, maxAnnualRate, EstimateGrowthRates(boom).OneYear, 1e-9)
		require.InDelta(t, minAnnualRate, EstimateGrowthRates(bust).OneYear, 1e-9)
	})

	t.Run("ten months of data reports zero one-year rate", func(t *testing.T) {
		// 100 -> 110 linearly over 10 months - short of the 12-month window
		prices := make([]float64, 10)
		for i := range prices {
			prices[i] = 100 + float64(i)*10.0/9.0
		}
		rates := EstimateGrowthRates(monthlySeries(start, prices))

		require.Equal(t, 0.0, rates.OneYear)
		// long horizons fall back down the chain to the one-year rate
		require.Equal(t, 0.0, rates.FiveYear)
		require.Equal(t, 0.0, rates.TenYear)
		require.Greater(t, rates.SixMonth, 0.0)
	})

	t.Run("short history gets neutral defaults", func(t *testing.T) {
		rates := EstimateGrowthRates(monthlySeries(start, []float64{100, 101, 102}))

		require.Equal(t, domain.GrowthRateSet{
			SixMonth: 0.08,
			OneYear:  0.08,
			FiveYear: 0.10,
			TenYear:  0.10,
		}, rates)
	})
}

func Test_boundedCAGR(t *testing.T) {
	start := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)

	t.Run("doubling over two years", func(t *testing.T) {
		history := []domain.PricePoint{
			{Date: start, Price: 100},
			{Date: start.AddDate(2, 0, 0), Price: 400},
		}
		// unclamped rate would be 100%/yr
		require.InDelta(t, maxAnnualRate, boundedCAGR(history), 1e-9)
	})

	t.Run("degenerate inputs get the neutral default", func(t *testing.T) {
		require.Equal(t, neutralShortRate, boundedCAGR([]domain.PricePoint{{Date: start, Price: 100}}))
		require.Equal(t, neutralShortRate, boundedCAGR([]domain.PricePoint{
			{Date: start, Price: 0},
			{Date: start.AddDate(0, 5, 0), Price: 100},
		}))
		require.Equal(t, neutralShortRate, boundedCAGR([]domain.PricePoint{
			{Date: start, Price: 100},
			{Date: start, Price: 110},
		}))
	})
}

func Test_medianGrowth(t *testing.T) {
	start := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)

	t.Run("all returns discarded as outliers", func(t *testing.T) {
		// every month-over-month move is +25%, outside the artifact band
		history := geometricSeries(start, 100, 0.25, 6)
		require.Equal(t, neutralShortRate, medianGrowth(history))
	})

	t.Run("single point", func(t *testing.T) {
		require.Equal(t, neutralShortRate, medianGrowth(monthlySeries(start, []float64{100})))
	})
}
