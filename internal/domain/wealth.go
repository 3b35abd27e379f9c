package domain

import "time"

// GrowthRateSet holds the four horizon rates the engine always computes in
// parallel. Rates are annual and clamped to [-15%, +35%]. Never persisted -
// recomputed from the then-current history on every refresh.
type GrowthRateSet struct {
	SixMonth float64 `json:"sixMonth"`
	OneYear  float64 `json:"oneYear"`
	FiveYear float64 `json:"fiveYear"`
	TenYear  float64 `json:"tenYear"`
}

// WealthPoint is one month of the merged portfolio curve. Value is nil for
// forecast-only months so a renderer can distinguish "no data" from "zero".
// The projection fields are nil for purely historical months.
type WealthPoint struct {
	Date               time.Time `json:"date"`
	Value              *float64  `json:"value"`
	Contributions      float64   `json:"contributions"`
	IsForecast         bool      `json:"isForecast"`
	SixMonthProjection *float64  `json:"sixMonthProjection"`
	OneYearProjection  *float64  `json:"oneYearProjection"`
	FiveYearProjection *float64  `json:"fiveYearProjection"`
	TenYearProjection  *float64  `json:"tenYearProjection"`
}
