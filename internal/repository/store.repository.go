package repository

import (
	"context"
	"foliocast/internal/domain"
)

// The four persisted records. Each is an opaque JSON blob to the store -
// load returns a default on absence, save is fire-and-forget from the
// caller's point of view.
const (
	keyPortfolio = "foliocast:portfolio"
	keySettings  = "foliocast:settings"
	keyWatchlist = "foliocast:watchlist"
	keyCash      = "foliocast:cash"
)

type Store interface {
	LoadPortfolio(ctx context.Context) ([]domain.AssetPosition, error)
	SavePortfolio(ctx context.Context, positions []domain.AssetPosition) error

	LoadSettings(ctx context.Context) (domain.Settings, error)
	SaveSettings(ctx context.Context, settings domain.Settings) error

	LoadWatchlist(ctx context.Context) ([]domain.WatchlistEntry, error)
	SaveWatchlist(ctx context.Context, entries []domain.WatchlistEntry) error

	LoadCashLedger(ctx context.Context) (domain.CashLedger, error)
	SaveCashLedger(ctx context.Context, ledger domain.CashLedger) error
}
