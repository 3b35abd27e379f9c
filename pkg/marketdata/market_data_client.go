package marketdata

import (
	"context"
	"fmt"
	"foliocast/internal/domain"
	"time"

	"github.com/piquette/finance-go/chart"
	"github.com/piquette/finance-go/datetime"
	"github.com/piquette/finance-go/quote"
)

// SymbolData is the inbound shape from the market-data collaborator. Prices
// are in the symbol's native currency - normalization to USD happens in the
// currency layer, downstream of this client.
type SymbolData struct {
	Symbol       string
	Name         string
	Currency     string
	CurrentPrice float64
	History      []domain.PricePoint
}

type Client interface {
	FetchSymbol(ctx context.Context, symbol string, start time.Time) (*SymbolData, error)
}

type yahooClient struct{}

func NewClient() Client {
	return yahooClient{}
}

// FetchSymbol pulls the monthly adjusted-close history since start plus a
// point quote. One call per symbol - callers fan out and isolate failures.
func (yahooClient) FetchSymbol(ctx context.Context, symbol string, start time.Time) (*SymbolData, error) {
	now := time.Now()
	params := &chart.Params{
		Start:    datetime.New(&start),
		End:      datetime.New(&now),
		Symbol:   symbol,
		Interval: datetime.OneMonth,
	}
	iter := chart.Get(params)

	history := []domain.PricePoint{}
	for iter.Next() {
		bar := iter.Bar()
		history = append(history, domain.PricePoint{
			Date:  time.Unix(int64(bar.Timestamp), 0).UTC(),
			Price: bar.AdjClose.InexactFloat64(),
		})
	}
	if err := iter.Err(); err != nil {
		return nil, fmt.Errorf("failed to get history for %s: %w", symbol, err)
	}

	q, err := quote.Get(symbol)
	if err != nil {
		return nil, fmt.Errorf("failed to get quote for %s: %w", symbol, err)
	}
	if q == nil {
		return nil, fmt.Errorf("no quote returned for %s", symbol)
	}

	return &SymbolData{
		Symbol:       symbol,
		Name:         q.ShortName,
		Currency:     q.CurrencyID,
		CurrentPrice: q.RegularMarketPrice,
		History:      history,
	}, nil
}
