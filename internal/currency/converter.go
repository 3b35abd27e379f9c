package currency

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// RateSupplier is the external collaborator that serves the latest rates
// relative to USD, expressed as foreign units per USD.
type RateSupplier interface {
	LatestRates(ctx context.Context) (map[string]float64, error)
}

const freshnessWindow = time.Hour

// fallback table, approximate market rates in USD per unit. Conversions
// never hard-fail on a network error - worst case they run off this table.
var fallbackRates = map[string]float64{
	"USD": 1,
	"EUR": 1.08,
	"GBP": 1.27,
	"JPY": 0.0067,
	"CHF": 1.13,
	"CAD": 0.74,
	"AUD": 0.66,
	"NZD": 0.61,
	"SEK": 0.095,
	"NOK": 0.094,
	"DKK": 0.145,
	"CNY": 0.14,
	"HKD": 0.128,
	"SGD": 0.74,
	"INR": 0.012,
	"KRW": 0.00075,
}

// Converter owns the in-memory rate table. It is an instance, not module
// state, so tests can run isolated converters side by side. Single logical
// writer - the freshness check is the only guard.
type Converter struct {
	supplier    RateSupplier
	log         *zap.SugaredLogger
	rates       map[string]float64
	refreshedAt time.Time
	now         func() time.Time
}

func NewConverter(supplier RateSupplier, log *zap.SugaredLogger) *Converter {
	rates := make(map[string]float64, len(fallbackRates))
	for code, rate := range fallbackRates {
		rates[code] = rate
	}
	return &Converter{
		supplier: supplier,
		log:      log,
		rates:    rates,
		now:      time.Now,
	}
}

// Refresh replaces the rate table from the supplier unless it was populated
// within the last hour. On supplier failure the existing table is kept.
func (c *Converter) Refresh(ctx context.Context) {
	if c.now().Sub(c.refreshedAt) < freshnessWindow {
		return
	}
	if c.supplier == nil {
		return
	}

	unitsPerUSD, err := c.supplier.LatestRates(ctx)
	if err != nil {
		c.log.Warnf("rate refresh failed, keeping current table: %s", err.Error())
		return
	}

	rates := map[string]float64{"USD": 1}
	for code, units := range unitsPerUSD {
		if units > 0 {
			rates[code] = 1 / units
		}
	}
	c.rates = rates
	c.refreshedAt = c.now()
}

// Rate returns USD per unit of the given currency. An unrecognized code is a
// 1:1 passthrough with a warning - a missing rate must not block portfolio
// computation.
func (c *Converter) Rate(code string) float64 {
	if code == "USD" || code == "" {
		return 1
	}
	rate, ok := c.rates[code]
	if !ok {
		c.log.Warnf("no exchange rate for %s, using 1:1", code)
		return 1
	}
	return rate
}

func (c *Converter) ConvertToUSD(amount float64, code string) float64 {
	return amount * c.Rate(code)
}
