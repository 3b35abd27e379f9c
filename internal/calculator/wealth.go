package calculator

import (
	"foliocast/internal/domain"
	"sort"
	"time"
)

type monthBucket struct {
	date          time.Time
	historical    float64
	hasHistorical bool
	isForecast    bool
}

// AggregateWealth merges every position's historical and forecast series
// into one portfolio curve keyed by calendar month, then extends four
// horizon trajectories forward horizonYears with a monthly contribution
// annuity.
//
// The horizon rates are derived from the merged historical curve rather than
// averaged per-asset rates - the merged curve captures portfolio-level
// covariance and rebalancing effects that per-asset rates miss.
//
// asOf is injected so tests can pin the historical/forecast partition
// instead of depending on wall-clock time. Pure function: identical inputs
// produce identical output, and the result is rebuilt wholesale on every
// call.
func AggregateWealth(positions []domain.AssetPosition, monthlyContribution float64, horizonYears int, asOf time.Time) []domain.WealthPoint {
	if len(positions) == 0 {
		return []domain.WealthPoint{}
	}

	buckets := map[string]*monthBucket{}
	bucket := func(t time.Time) *monthBucket {
		key := domain.MonthKey(t)
		b, ok := buckets[key]
		if !ok {
			b = &monthBucket{date: time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)}
			buckets[key] = b
		}
		return b
	}

	investedTotal := 0.0
	for _, position := range positions {
		shares := position.ImpliedShares()
		investedTotal += position.CostBasis().Invested.InexactFloat64()

		for _, point := range position.History {
			b := bucket(point.Date)
			b.historical += shares * point.Price
			b.hasHistorical = true
		}
		for _, point := range position.Forecast {
			bucket(point.Date).isForecast = true
		}
	}

	// merged historical curve, chronological
	keys := sortedKeys(buckets)
	historicalSeries := []domain.PricePoint{}
	for _, key := range keys {
		if b := buckets[key]; b.hasHistorical {
			historicalSeries = append(historicalSeries, domain.PricePoint{Date: b.date, Price: b.historical})
		}
	}
	if len(historicalSeries) == 0 {
		return []domain.WealthPoint{}
	}

	rates := EstimateGrowthRates(historicalSeries)
	lastHistorical := historicalSeries[len(historicalSeries)-1]

	// make sure a bucket exists for every projected month, whether or not a
	// per-asset forecast already landed there
	horizonMonths := horizonYears * 12
	for i := 1; i <= horizonMonths; i++ {
		b := bucket(lastHistorical.Date.AddDate(0, i, 0))
		b.isForecast = true
	}
	keys = sortedKeys(buckets)

	// the four trajectories compound in parallel from the same bridging
	// point, adding the contribution after each month's growth
	type trajectory struct {
		rate  float64
		value float64
	}
	trajectories := [4]trajectory{
		{rate: rates.SixMonth, value: lastHistorical.Price},
		{rate: rates.OneYear, value: lastHistorical.Price},
		{rate: rates.FiveYear, value: lastHistorical.Price},
		{rate: rates.TenYear, value: lastHistorical.Price},
	}

	asOfKey := domain.MonthKey(asOf)
	lastHistoricalKey := domain.MonthKey(lastHistorical.Date)
	contributions := investedTotal

	out := make([]domain.WealthPoint, 0, len(keys))
	for _, key := range keys {
		b := buckets[key]

		// contributions only grow going forward - past months show the
		// static cost basis
		if key >= asOfKey {
			contributions += monthlyContribution
		}

		point := domain.WealthPoint{
			Date:          b.date,
			Contributions: contributions,
			IsForecast:    !b.hasHistorical && b.isForecast,
		}
		if b.hasHistorical {
			value := b.historical
			point.Value = &value
		}

		if key > lastHistoricalKey {
			for i := range trajectories {
				t := &trajectories[i]
				t.value = t.value*(1+t.rate/12) + monthlyContribution
			}
			point.SixMonthProjection = floatPtr(trajectories[0].value)
			point.OneYearProjection = floatPtr(trajectories[1].value)
			point.FiveYearProjection = floatPtr(trajectories[2].value)
			point.TenYearProjection = floatPtr(trajectories[3].value)
		}

		out = append(out, point)
	}

	return out
}

func sortedKeys(buckets map[string]*monthBucket) []string {
	keys := make([]string, 0, len(buckets))
	for key := range buckets {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

func floatPtr(f float64) *float64 {
	return &f
}
