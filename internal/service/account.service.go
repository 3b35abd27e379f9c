package service

import (
	"context"
	"fmt"
	"foliocast/internal/domain"
	"foliocast/internal/repository"
	"foliocast/pkg/marketdata"
	"time"

	"github.com/shopspring/decimal"
)

// AccountService covers the non-position state: cash ledger, watchlist and
// settings.
type AccountService interface {
	GetCashLedger(ctx context.Context) (domain.CashLedger, error)
	AppendCash(ctx context.Context, txType domain.CashTransactionType, amount decimal.Decimal, note string) (domain.CashLedger, error)

	GetWatchlist(ctx context.Context) ([]domain.WatchlistEntry, error)
	AddToWatchlist(ctx context.Context, symbol string) (*domain.WatchlistEntry, error)
	RemoveFromWatchlist(ctx context.Context, symbol string) error

	GetSettings(ctx context.Context) (domain.Settings, error)
	SaveSettings(ctx context.Context, settings domain.Settings) error
}

type accountServiceHandler struct {
	Store      repository.Store
	MarketData marketdata.Client
	Now        func() time.Time
}

func NewAccountService(store repository.Store, marketData marketdata.Client) AccountService {
	return &accountServiceHandler{
		Store:      store,
		MarketData: marketData,
		Now:        time.Now,
	}
}

func (h *accountServiceHandler) GetCashLedger(ctx context.Context) (domain.CashLedger, error) {
	return h.Store.LoadCashLedger(ctx)
}

func (h *accountServiceHandler) AppendCash(ctx context.Context, txType domain.CashTransactionType, amount decimal.Decimal, note string) (domain.CashLedger, error) {
	if !amount.IsPositive() {
		return domain.CashLedger{}, fmt.Errorf("amount must be positive")
	}
	switch txType {
	case domain.CashDeposit, domain.CashWithdrawal, domain.CashBuy, domain.CashSell:
	default:
		return domain.CashLedger{}, fmt.Errorf("unknown cash transaction type %q", txType)
	}

	ledger, err := h.Store.LoadCashLedger(ctx)
	if err != nil {
		return domain.CashLedger{}, err
	}
	ledger.Append(domain.CashTransaction{
		Type:   txType,
		Amount: amount,
		Note:   note,
		Date:   h.Now().UTC(),
	})
	if err := h.Store.SaveCashLedger(ctx, ledger); err != nil {
		return domain.CashLedger{}, err
	}

	return ledger, nil
}

func (h *accountServiceHandler) GetWatchlist(ctx context.Context) ([]domain.WatchlistEntry, error) {
	return h.Store.LoadWatchlist(ctx)
}

func (h *accountServiceHandler) AddToWatchlist(ctx context.Context, symbol string) (*domain.WatchlistEntry, error) {
	entries, err := h.Store.LoadWatchlist(ctx)
	if err != nil {
		return nil, err
	}
	for _, entry := range entries {
		if entry.Symbol == symbol {
			return nil, fmt.Errorf("%s is already on the watchlist", symbol)
		}
	}

	data, err := h.MarketData.FetchSymbol(ctx, symbol, h.Now().AddDate(0, -1, 0))
	if err != nil {
		return nil, fmt.Errorf("failed to look up %s: %w", symbol, err)
	}

	entry := domain.WatchlistEntry{
		Symbol:     symbol,
		Name:       data.Name,
		AddedPrice: data.CurrentPrice,
		AddedDate:  h.Now().UTC(),
	}
	entries = append(entries, entry)
	if err := h.Store.SaveWatchlist(ctx, entries); err != nil {
		return nil, err
	}

	return &entry, nil
}

func (h *accountServiceHandler) RemoveFromWatchlist(ctx context.Context, symbol string) error {
	entries, err := h.Store.LoadWatchlist(ctx)
	if err != nil {
		return err
	}

	out := entries[:0]
	for _, entry := range entries {
		if entry.Symbol != symbol {
			out = append(out, entry)
		}
	}
	if len(out) == len(entries) {
		return fmt.Errorf("%s is not on the watchlist", symbol)
	}

	return h.Store.SaveWatchlist(ctx, out)
}

func (h *accountServiceHandler) GetSettings(ctx context.Context) (domain.Settings, error) {
	return h.Store.LoadSettings(ctx)
}

func (h *accountServiceHandler) SaveSettings(ctx context.Context, settings domain.Settings) error {
	if settings.ForecastYears <= 0 {
		settings.ForecastYears = domain.DefaultSettings().ForecastYears
	}
	if settings.MonthlyContribution < 0 {
		return fmt.Errorf("monthly contribution cannot be negative")
	}
	return h.Store.SaveSettings(ctx, settings)
}
