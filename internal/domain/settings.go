package domain

import "time"

type Settings struct {
	MonthlyContribution float64 `json:"monthlyContribution"`
	ForecastYears       int     `json:"forecastYears"`
}

func DefaultSettings() Settings {
	return Settings{
		MonthlyContribution: 500,
		ForecastYears:       10,
	}
}

type WatchlistEntry struct {
	Symbol     string    `json:"symbol"`
	Name       string    `json:"name,omitempty"`
	AddedPrice float64   `json:"addedPrice"`
	AddedDate  time.Time `json:"addedDate"`
}
