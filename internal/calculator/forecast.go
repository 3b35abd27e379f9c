package calculator

import (
	"foliocast/internal/domain"
	"math"

	"github.com/montanaflynn/stats"
)

const (
	// trend is deliberately down-weighted - unbounded linear extrapolation
	// diverges badly at long horizons
	compoundWeight = 0.4
	trendWeight    = 0.2
	momentumWeight = 0.4

	momentumWindowMonths = 24

	// 95% z-score, used as a fixed scalar in the widening band
	confidenceZ = 1.96

	// short histories produce unusable long-horizon extrapolation
	minForecastHistory = 12
)

type ForecastResult struct {
	Forecast []domain.PricePoint
	Low      []domain.PricePoint
	High     []domain.PricePoint
}

// ForecastPrices projects a single asset forward horizonMonths using three
// independent methods blended by fixed weights, with a confidence band that
// widens with sqrt(time) like a random-walk standard error.
//
// Histories under 12 points return empty sequences. The first forecast point
// is the month after the last historical one; callers that want a continuous
// chart insert their own bridging point.
func ForecastPrices(history []domain.PricePoint, horizonMonths int) ForecastResult {
	out := ForecastResult{
		Forecast: []domain.PricePoint{},
		Low:      []domain.PricePoint{},
		High:     []domain.PricePoint{},
	}
	if len(history) < minForecastHistory || horizonMonths <= 0 {
		return out
	}

	monthlyStats := Stats(history)
	lastPoint := history[len(history)-1]

	slope, intercept := trendLine(history)
	momentumReturn := Stats(tail(history, momentumWindowMonths)).AvgReturn

	n := len(history)
	for i := 1; i <= horizonMonths; i++ {
		compound := lastPoint.Price * math.Pow(1+monthlyStats.AvgReturn, float64(i))
		trend := math.Max(0, intercept+slope*float64(n+i-1))
		momentum := lastPoint.Price * math.Pow(1+momentumReturn, float64(i))

		blend := compoundWeight*compound + trendWeight*trend + momentumWeight*momentum
		if blend < 0 {
			blend = 0
		}

		multiplier := 1 + monthlyStats.Volatility*math.Sqrt(float64(i))*confidenceZ
		date := lastPoint.Date.AddDate(0, i, 0)

		out.Forecast = append(out.Forecast, domain.PricePoint{Date: date, Price: blend, IsForecast: true})
		out.Low = append(out.Low, domain.PricePoint{Date: date, Price: blend / multiplier, IsForecast: true})
		out.High = append(out.High, domain.PricePoint{Date: date, Price: blend * multiplier, IsForecast: true})
	}

	return out
}

// trendLine fits an ordinary least-squares line over the history indexed
// 0..n-1 and returns its slope and intercept.
func trendLine(history []domain.PricePoint) (slope, intercept float64) {
	series := make(stats.Series, len(history))
	for i, point := range history {
		series[i] = stats.Coordinate{X: float64(i), Y: point.Price}
	}

	fitted, err := stats.LinearRegression(series)
	if err != nil || len(fitted) < 2 {
		return 0, history[len(history)-1].Price
	}

	last := fitted[len(fitted)-1]
	first := fitted[0]
	slope = (last.Y - first.Y) / (last.X - first.X)
	intercept = first.Y - slope*first.X
	return slope, intercept
}
