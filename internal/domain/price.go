package domain

import "time"

type PricePoint struct {
	Date       time.Time `json:"date"`
	Price      float64   `json:"price"`
	IsForecast bool      `json:"isForecast,omitempty"`
}

// MonthKey collapses a date to calendar-month granularity. every series
// merge in the wealth engine is keyed on this.
func MonthKey(t time.Time) string {
	return t.Format("2006-01")
}

func MonthsBetween(start, end time.Time) int {
	return (end.Year()-start.Year())*12 + int(end.Month()) - int(start.Month())
}
