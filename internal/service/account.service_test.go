package service

import (
	"context"
	"fmt"
	"foliocast/internal/domain"
	"foliocast/internal/repository"
	"foliocast/pkg/marketdata"
	mock_marketdata "foliocast/pkg/marketdata/mocks"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestAccountHandler(store repository.Store, market marketdata.Client) *accountServiceHandler {
	return &accountServiceHandler{
		Store:      store,
		MarketData: market,
		Now:        func() time.Time { return time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC) },
	}
}

func TestAccountService_AppendCash(t *testing.T) {
	ctx := context.Background()

	t.Run("deposit then buy", func(t *testing.T) {
		h := newTestAccountHandler(repository.NewMemoryStore(), mock_marketdata.NewMockClient(gomock.NewController(t)))

		_, err := h.AppendCash(ctx, domain.CashDeposit, decimal.NewFromInt(1000), "seed")
		require.NoError(t, err)

		ledger, err := h.AppendCash(ctx, domain.CashBuy, decimal.NewFromInt(400), "")
		require.NoError(t, err)

		require.True(t, ledger.Balance.Equal(decimal.NewFromInt(600)), ledger.Balance.String())
		require.Len(t, ledger.Transactions, 2)
		require.Equal(t, domain.CashBuy, ledger.Transactions[0].Type)
		require.Equal(t, "seed", ledger.Transactions[1].Note)
	})

	t.Run("rejects non-positive amounts", func(t *testing.T) {
		h := newTestAccountHandler(repository.NewMemoryStore(), mock_marketdata.NewMockClient(gomock.NewController(t)))

		_, err := h.AppendCash(ctx, domain.CashDeposit, decimal.Zero, "")
		require.Error(t, err)
	})

	t.Run("rejects unknown types", func(t *testing.T) {
		h := newTestAccountHandler(repository.NewMemoryStore(), mock_marketdata.NewMockClient(gomock.NewController(t)))

		_, err := h.AppendCash(ctx, "transfer", decimal.NewFromInt(1), "")
		require.Error(t, err)
	})
}

func TestAccountService_Watchlist(t *testing.T) {
	ctx := context.Background()

	appleQuote := &marketdata.SymbolData{Symbol: "AAPL", Name: "Apple Inc.", Currency: "USD", CurrentPrice: 150}

	t.Run("add records the quote at add time", func(t *testing.T) {
		market := mock_marketdata.NewMockClient(gomock.NewController(t))
		market.EXPECT().FetchSymbol(gomock.Any(), "AAPL", gomock.Any()).Return(appleQuote, nil)
		h := newTestAccountHandler(repository.NewMemoryStore(), market)

		entry, err := h.AddToWatchlist(ctx, "AAPL")
		require.NoError(t, err)
		require.Equal(t, "Apple Inc.", entry.Name)
		require.Equal(t, 150.0, entry.AddedPrice)

		entries, err := h.GetWatchlist(ctx)
		require.NoError(t, err)
		require.Len(t, entries, 1)
	})

	t.Run("duplicate add is rejected before the lookup", func(t *testing.T) {
		market := mock_marketdata.NewMockClient(gomock.NewController(t))
		market.EXPECT().FetchSymbol(gomock.Any(), "AAPL", gomock.Any()).Return(appleQuote, nil).Times(1)
		h := newTestAccountHandler(repository.NewMemoryStore(), market)

		_, err := h.AddToWatchlist(ctx, "AAPL")
		require.NoError(t, err)
		_, err = h.AddToWatchlist(ctx, "AAPL")
		require.Error(t, err)
	})

	t.Run("failed lookup does not modify the list", func(t *testing.T) {
		market := mock_marketdata.NewMockClient(gomock.NewController(t))
		market.EXPECT().FetchSymbol(gomock.Any(), "BROKEN", gomock.Any()).Return(nil, fmt.Errorf("quote unavailable"))
		h := newTestAccountHandler(repository.NewMemoryStore(), market)

		_, err := h.AddToWatchlist(ctx, "BROKEN")
		require.Error(t, err)

		entries, err := h.GetWatchlist(ctx)
		require.NoError(t, err)
		require.Empty(t, entries)
	})

	t.Run("remove", func(t *testing.T) {
		market := mock_marketdata.NewMockClient(gomock.NewController(t))
		market.EXPECT().FetchSymbol(gomock.Any(), "AAPL", gomock.Any()).Return(appleQuote, nil)
		h := newTestAccountHandler(repository.NewMemoryStore(), market)

		_, err := h.AddToWatchlist(ctx, "AAPL")
		require.NoError(t, err)
		require.NoError(t, h.RemoveFromWatchlist(ctx, "AAPL"))

		entries, err := h.GetWatchlist(ctx)
		require.NoError(t, err)
		require.Empty(t, entries)

		require.Error(t, h.RemoveFromWatchlist(ctx, "AAPL"))
	})
}

func TestAccountService_Settings(t *testing.T) {
	ctx := context.Background()

	t.Run("defaults when unset", func(t *testing.T) {
		h := newTestAccountHandler(repository.NewMemoryStore(), mock_marketdata.NewMockClient(gomock.NewController(t)))

		settings, err := h.GetSettings(ctx)
		require.NoError(t, err)
		require.Equal(t, domain.DefaultSettings(), settings)
	})

	t.Run("round trip and validation", func(t *testing.T) {
		h := newTestAccountHandler(repository.NewMemoryStore(), mock_marketdata.NewMockClient(gomock.NewController(t)))

		require.NoError(t, h.SaveSettings(ctx, domain.Settings{MonthlyContribution: 250, ForecastYears: 5}))
		settings, err := h.GetSettings(ctx)
		require.NoError(t, err)
		require.Equal(t, 250.0, settings.MonthlyContribution)
		require.Equal(t, 5, settings.ForecastYears)

		require.Error(t, h.SaveSettings(ctx, domain.Settings{MonthlyContribution: -1}))
	})
}
