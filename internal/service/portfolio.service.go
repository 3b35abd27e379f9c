package service

import (
	"context"
	"fmt"
	"foliocast/internal/calculator"
	"foliocast/internal/currency"
	"foliocast/internal/domain"
	"foliocast/internal/logger"
	"foliocast/internal/repository"
	"foliocast/pkg/marketdata"
	"sync"
	"time"

	"github.com/google/uuid"
)

const (
	historyYears  = 10
	numGoroutines = 10
)

type SymbolForecast struct {
	Symbol   string               `json:"symbol"`
	Rates    domain.GrowthRateSet `json:"rates"`
	Forecast []domain.PricePoint  `json:"forecast"`
	Low      []domain.PricePoint  `json:"low"`
	High     []domain.PricePoint  `json:"high"`
}

type PortfolioSummary struct {
	CurrentValue float64            `json:"currentValue"`
	Invested     float64            `json:"invested"`
	GainPercent  float64            `json:"gainPercent"`
	Weights      map[string]float64 `json:"weights"`
}

type PortfolioService interface {
	GetPortfolio(ctx context.Context) ([]domain.AssetPosition, error)
	RefreshAll(ctx context.Context) ([]domain.AssetPosition, error)
	UpsertPosition(ctx context.Context, position domain.AssetPosition) error
	RemovePosition(ctx context.Context, symbol string) error
	AddTransaction(ctx context.Context, symbol string, transaction domain.Transaction) (*domain.AssetPosition, error)
	Forecast(ctx context.Context, symbol string, horizonMonths int) (*SymbolForecast, error)
	WealthCurve(ctx context.Context) ([]domain.WealthPoint, error)
	Summary(ctx context.Context) (*PortfolioSummary, error)
}

type portfolioServiceHandler struct {
	Store      repository.Store
	MarketData marketdata.Client
	Converter  *currency.Converter
	Now        func() time.Time
}

func NewPortfolioService(store repository.Store, marketData marketdata.Client, converter *currency.Converter) PortfolioService {
	return &portfolioServiceHandler{
		Store:      store,
		MarketData: marketData,
		Converter:  converter,
		Now:        time.Now,
	}
}

func (h *portfolioServiceHandler) GetPortfolio(ctx context.Context) ([]domain.AssetPosition, error) {
	return h.Store.LoadPortfolio(ctx)
}

// RefreshAll re-fetches every symbol, normalizes prices to USD and reruns
// the recompute pass (rates -> forecast). One symbol failing is recorded on
// that position and must not abort the batch.
func (h *portfolioServiceHandler) RefreshAll(ctx context.Context) ([]domain.AssetPosition, error) {
	positions, err := h.Store.LoadPortfolio(ctx)
	if err != nil {
		return nil, err
	}
	settings, err := h.Store.LoadSettings(ctx)
	if err != nil {
		return nil, err
	}

	h.Converter.Refresh(ctx)

	log := logger.FromContext(ctx)
	start := h.Now().AddDate(-historyYears, 0, 0)
	horizonMonths := settings.ForecastYears * 12

	indexCh := make(chan int, len(positions))
	for i := range positions {
		indexCh <- i
	}
	close(indexCh)

	var wg sync.WaitGroup
	for w := 0; w < numGoroutines; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range indexCh {
				if err := h.refreshPosition(ctx, &positions[i], start, horizonMonths); err != nil {
					positions[i].Err = true
					log.Warnf("failed to refresh %s: %s", positions[i].Symbol, err.Error())
				}
			}
		}()
	}
	wg.Wait()

	if err := h.Store.SavePortfolio(ctx, positions); err != nil {
		return nil, err
	}

	return positions, nil
}

func (h *portfolioServiceHandler) refreshPosition(ctx context.Context, position *domain.AssetPosition, start time.Time, horizonMonths int) error {
	data, err := h.MarketData.FetchSymbol(ctx, position.Symbol, start)
	if err != nil {
		return err
	}

	rate := h.Converter.Rate(data.Currency)
	history := make([]domain.PricePoint, 0, len(data.History))
	for _, point := range data.History {
		history = append(history, domain.PricePoint{
			Date:  point.Date,
			Price: h.Converter.ConvertToUSD(point.Price, data.Currency),
		})
	}

	position.Name = data.Name
	position.Currency = data.Currency
	position.ExchangeRate = rate
	position.CurrentPrice = h.Converter.ConvertToUSD(data.CurrentPrice, data.Currency)
	position.History = history
	position.Forecast = calculator.ForecastPrices(history, horizonMonths).Forecast
	position.Err = false

	return nil
}

func (h *portfolioServiceHandler) UpsertPosition(ctx context.Context, position domain.AssetPosition) error {
	if position.Symbol == "" {
		return fmt.Errorf("position symbol is required")
	}
	position.ApplyCostBasis()

	positions, err := h.Store.LoadPortfolio(ctx)
	if err != nil {
		return err
	}

	replaced := false
	for i := range positions {
		if positions[i].Symbol == position.Symbol {
			positions[i] = position
			replaced = true
			break
		}
	}
	if !replaced {
		positions = append(positions, position)
	}

	return h.Store.SavePortfolio(ctx, positions)
}

func (h *portfolioServiceHandler) RemovePosition(ctx context.Context, symbol string) error {
	positions, err := h.Store.LoadPortfolio(ctx)
	if err != nil {
		return err
	}

	out := positions[:0]
	for _, position := range positions {
		if position.Symbol != symbol {
			out = append(out, position)
		}
	}
	if len(out) == len(positions) {
		return fmt.Errorf("no position for %s", symbol)
	}

	return h.Store.SavePortfolio(ctx, out)
}

// AddTransaction appends a buy/sell, replays the cost basis onto the display
// fields and mirrors the cash movement into the ledger.
func (h *portfolioServiceHandler) AddTransaction(ctx context.Context, symbol string, transaction domain.Transaction) (*domain.AssetPosition, error) {
	if !transaction.Shares.IsPositive() || !transaction.Price.IsPositive() {
		return nil, fmt.Errorf("transaction shares and price must be positive")
	}
	if transaction.ID == uuid.Nil {
		transaction.ID = uuid.New()
	}
	if transaction.Date.IsZero() {
		transaction.Date = h.Now().UTC()
	}

	positions, err := h.Store.LoadPortfolio(ctx)
	if err != nil {
		return nil, err
	}

	var position *domain.AssetPosition
	for i := range positions {
		if positions[i].Symbol == symbol {
			position = &positions[i]
			break
		}
	}
	if position == nil {
		return nil, fmt.Errorf("no position for %s", symbol)
	}

	position.Transactions = append(position.Transactions, transaction)
	position.ApplyCostBasis()

	if err := h.Store.SavePortfolio(ctx, positions); err != nil {
		return nil, err
	}

	ledger, err := h.Store.LoadCashLedger(ctx)
	if err != nil {
		return nil, err
	}
	cashType := domain.CashBuy
	if transaction.Type == domain.TransactionSell {
		cashType = domain.CashSell
	}
	ledger.Append(domain.CashTransaction{
		Type:   cashType,
		Amount: transaction.Shares.Mul(transaction.Price),
		Symbol: symbol,
		Date:   transaction.Date,
	})
	if err := h.Store.SaveCashLedger(ctx, ledger); err != nil {
		return nil, err
	}

	return position, nil
}

func (h *portfolioServiceHandler) Forecast(ctx context.Context, symbol string, horizonMonths int) (*SymbolForecast, error) {
	positions, err := h.Store.LoadPortfolio(ctx)
	if err != nil {
		return nil, err
	}

	for _, position := range positions {
		if position.Symbol != symbol {
			continue
		}
		result := calculator.ForecastPrices(position.History, horizonMonths)
		return &SymbolForecast{
			Symbol:   symbol,
			Rates:    calculator.EstimateGrowthRates(position.History),
			Forecast: result.Forecast,
			Low:      result.Low,
			High:     result.High,
		}, nil
	}

	return nil, fmt.Errorf("no position for %s", symbol)
}

func (h *portfolioServiceHandler) WealthCurve(ctx context.Context) ([]domain.WealthPoint, error) {
	positions, err := h.Store.LoadPortfolio(ctx)
	if err != nil {
		return nil, err
	}
	settings, err := h.Store.LoadSettings(ctx)
	if err != nil {
		return nil, err
	}

	return calculator.AggregateWealth(positions, settings.MonthlyContribution, settings.ForecastYears, h.Now()), nil
}

func (h *portfolioServiceHandler) Summary(ctx context.Context) (*PortfolioSummary, error) {
	positions, err := h.Store.LoadPortfolio(ctx)
	if err != nil {
		return nil, err
	}

	summary := &PortfolioSummary{Weights: map[string]float64{}}
	for _, position := range positions {
		summary.CurrentValue += position.ImpliedShares() * position.CurrentPrice
		summary.Invested += position.CostBasis().Invested.InexactFloat64()
	}
	if summary.Invested > 0 {
		summary.GainPercent = (summary.CurrentValue - summary.Invested) / summary.Invested * 100
	}
	if summary.CurrentValue > 0 {
		for _, position := range positions {
			summary.Weights[position.Symbol] = position.ImpliedShares() * position.CurrentPrice / summary.CurrentValue
		}
	}

	return summary, nil
}
