package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"foliocast/internal/domain"

	"github.com/go-redis/redis/v8"
)

type redisStore struct {
	client *redis.Client
}

func NewRedisStore(client *redis.Client) Store {
	return redisStore{client: client}
}

func (s redisStore) load(ctx context.Context, key string, out interface{}) (bool, error) {
	raw, err := s.client.Get(ctx, key).Result()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to load %s: %w", key, err)
	}
	if err := json.Unmarshal([]byte(raw), out); err != nil {
		return false, fmt.Errorf("failed to decode %s: %w", key, err)
	}
	return true, nil
}

func (s redisStore) save(ctx context.Context, key string, in interface{}) error {
	raw, err := json.Marshal(in)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", key, err)
	}
	if err := s.client.Set(ctx, key, raw, 0).Err(); err != nil {
		return fmt.Errorf("failed to save %s: %w", key, err)
	}
	return nil
}

func (s redisStore) LoadPortfolio(ctx context.Context) ([]domain.AssetPosition, error) {
	positions := []domain.AssetPosition{}
	if _, err := s.load(ctx, keyPortfolio, &positions); err != nil {
		return nil, err
	}
	return positions, nil
}

func (s redisStore) SavePortfolio(ctx context.Context, positions []domain.AssetPosition) error {
	return s.save(ctx, keyPortfolio, positions)
}

func (s redisStore) LoadSettings(ctx context.Context) (domain.Settings, error) {
	settings := domain.Settings{}
	found, err := s.load(ctx, keySettings, &settings)
	if err != nil {
		return domain.Settings{}, err
	}
	if !found {
		return domain.DefaultSettings(), nil
	}
	return settings, nil
}

func (s redisStore) SaveSettings(ctx context.Context, settings domain.Settings) error {
	return s.save(ctx, keySettings, settings)
}

func (s redisStore) LoadWatchlist(ctx context.Context) ([]domain.WatchlistEntry, error) {
	entries := []domain.WatchlistEntry{}
	if _, err := s.load(ctx, keyWatchlist, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

func (s redisStore) SaveWatchlist(ctx context.Context, entries []domain.WatchlistEntry) error {
	return s.save(ctx, keyWatchlist, entries)
}

func (s redisStore) LoadCashLedger(ctx context.Context) (domain.CashLedger, error) {
	ledger := domain.CashLedger{Transactions: []domain.CashTransaction{}}
	if _, err := s.load(ctx, keyCash, &ledger); err != nil {
		return domain.CashLedger{}, err
	}
	return ledger, nil
}

func (s redisStore) SaveCashLedger(ctx context.Context, ledger domain.CashLedger) error {
	return s.save(ctx, keyCash, ledger)
}
