package calculator

import (
	"foliocast/internal/domain"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func manualPosition(symbol string, shares, price float64, history []domain.PricePoint) domain.AssetPosition {
	sharesDec := decimal.NewFromFloat(shares)
	priceDec := decimal.NewFromFloat(price)
	return domain.AssetPosition{
		Symbol:         symbol,
		Shares:         sharesDec,
		PurchasePrice:  priceDec,
		InvestedAmount: sharesDec.Mul(priceDec),
		Currency:       "USD",
		History:        history,
	}
}

func TestAggregateWealth(t *testing.T) {
	start := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	asOf := time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)

	t.Run("zero positions", func(t *testing.T) {
		require.Empty(t, AggregateWealth(nil, 500, 10, asOf))
		require.Empty(t, AggregateWealth([]domain.AssetPosition{}, 500, 10, asOf))
	})

	t.Run("single short-history position", func(t *testing.T) {
		position := manualPosition("VTI", 10, 100, monthlySeries(start, []float64{100, 101, 102}))

		points := AggregateWealth([]domain.AssetPosition{position}, 500, 1, asOf)

		// 3 historical months + 12 projected
		require.Len(t, points, 15)

		require.NotNil(t, points[0].Value)
		require.InDelta(t, 1000, *points[0].Value, 1e-9)
		require.False(t, points[0].IsForecast)
		require.InDelta(t, 1000, points[0].Contributions, 1e-9)
		require.Nil(t, points[0].SixMonthProjection)

		require.NotNil(t, points[2].Value)
		require.InDelta(t, 1020, *points[2].Value, 1e-9)

		// first projected month: value is nil, not zero
		require.Nil(t, points[3].Value)
		require.True(t, points[3].IsForecast)
		require.InDelta(t, 1500, points[3].Contributions, 1e-9)

		// short history means estimator defaults (8/8/10/10) drive the
		// trajectories off the 1020 bridging value
		require.NotNil(t, points[3].SixMonthProjection)
		require.InDelta(t, 1020*(1+0.08/12)+500, *points[3].SixMonthProjection, 1e-9)
		require.InDelta(t, 1020*(1+0.10/12)+500, *points[3].FiveYearProjection, 1e-9)

		// contributions keep accruing monthly through the projection
		last := points[len(points)-1]
		require.InDelta(t, 1000+12*500, last.Contributions, 1e-9)
		require.True(t, last.IsForecast)
	})

	t.Run("positions merge by calendar month", func(t *testing.T) {
		a := manualPosition("A", 10, 100, monthlySeries(start, []float64{100, 110, 120}))
		b := manualPosition("B", 5, 200, monthlySeries(start.AddDate(0, 1, 0), []float64{200, 210}))

		points := AggregateWealth([]domain.AssetPosition{a, b}, 0, 1, asOf)

		// months: 2024-03 (A only), 2024-04 (A+B), 2024-05 (A+B), then projections
		require.NotNil(t, points[0].Value)
		require.InDelta(t, 10*100, *points[0].Value, 1e-9)
		require.NotNil(t, points[1].Value)
		require.InDelta(t, 10*110+5*200, *points[1].Value, 1e-9)
		require.NotNil(t, points[2].Value)
		require.InDelta(t, 10*120+5*210, *points[2].Value, 1e-9)
	})

	t.Run("per-asset forecast months are flagged without a value", func(t *testing.T) {
		history := geometricSeries(start.AddDate(0, -11, 0), 100, 0.01, 12)
		position := manualPosition("VTI", 1, 100, history)
		position.Forecast = ForecastPrices(history, 6).Forecast

		points := AggregateWealth([]domain.AssetPosition{position}, 0, 1, asOf)

		forecastMonths := 0
		for _, point := range points {
			if point.IsForecast {
				require.Nil(t, point.Value)
				forecastMonths++
			}
		}
		require.Equal(t, 12, forecastMonths)
	})

	t.Run("pure function - identical inputs, identical output", func(t *testing.T) {
		position := manualPosition("VTI", 10, 100, geometricSeries(start.AddDate(-1, 0, 0), 100, 0.01, 14))

		first := AggregateWealth([]domain.AssetPosition{position}, 500, 5, asOf)
		second := AggregateWealth([]domain.AssetPosition{position}, 500, 5, asOf)

		require.Equal(t, "", cmp.Diff(first, second))
	})
}
