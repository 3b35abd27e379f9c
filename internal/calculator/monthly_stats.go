package calculator

import (
	"foliocast/internal/domain"

	"github.com/montanaflynn/stats"
)

type MonthlyStats struct {
	AvgReturn  float64
	Volatility float64
	Returns    []float64
}

// Stats computes the arithmetic mean and population stdev of month-over-month
// returns. No outlier filtering here, unlike the median estimator - these
// feed the confidence-band width, not the central forecast.
func Stats(history []domain.PricePoint) MonthlyStats {
	if len(history) < 2 {
		return MonthlyStats{Returns: []float64{}}
	}

	returns := monthlyReturns(history)
	if len(returns) == 0 {
		return MonthlyStats{Returns: []float64{}}
	}

	mean, err := stats.Mean(returns)
	if err != nil {
		return MonthlyStats{Returns: returns}
	}
	stdev, err := stats.StandardDeviationPopulation(returns)
	if err != nil {
		return MonthlyStats{AvgReturn: mean, Returns: returns}
	}

	return MonthlyStats{
		AvgReturn:  mean,
		Volatility: stdev,
		Returns:    returns,
	}
}
