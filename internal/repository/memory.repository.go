package repository

import (
	"context"
	"encoding/json"
	"foliocast/internal/domain"
	"sync"
)

// memoryStore round-trips records through JSON like the redis store does, so
// tests exercise the same encoding path.
type memoryStore struct {
	mu      sync.Mutex
	records map[string][]byte
}

func NewMemoryStore() Store {
	return &memoryStore{records: map[string][]byte{}}
}

func (s *memoryStore) load(key string, out interface{}) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	raw, ok := s.records[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(raw, out)
}

func (s *memoryStore) save(key string, in interface{}) error {
	raw, err := json.Marshal(in)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records[key] = raw
	return nil
}

func (s *memoryStore) LoadPortfolio(ctx context.Context) ([]domain.AssetPosition, error) {
	positions := []domain.AssetPosition{}
	if _, err := s.load(keyPortfolio, &positions); err != nil {
		return nil, err
	}
	return positions, nil
}

func (s *memoryStore) SavePortfolio(ctx context.Context, positions []domain.AssetPosition) error {
	return s.save(keyPortfolio, positions)
}

func (s *memoryStore) LoadSettings(ctx context.Context) (domain.Settings, error) {
	settings := domain.Settings{}
	found, err := s.load(keySettings, &settings)
	if err != nil {
		return domain.Settings{}, err
	}
	if !found {
		return domain.DefaultSettings(), nil
	}
	return settings, nil
}

func (s *memoryStore) SaveSettings(ctx context.Context, settings domain.Settings) error {
	return s.save(keySettings, settings)
}

func (s *memoryStore) LoadWatchlist(ctx context.Context) ([]domain.WatchlistEntry, error) {
	entries := []domain.WatchlistEntry{}
	if _, err := s.load(keyWatchlist, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

func (s *memoryStore) SaveWatchlist(ctx context.Context, entries []domain.WatchlistEntry) error {
	return s.save(keyWatchlist, entries)
}

func (s *memoryStore) LoadCashLedger(ctx context.Context) (domain.CashLedger, error) {
	ledger := domain.CashLedger{Transactions: []domain.CashTransaction{}}
	if _, err := s.load(keyCash, &ledger); err != nil {
		return domain.CashLedger{}, err
	}
	return ledger, nil
}

func (s *memoryStore) SaveCashLedger(ctx context.Context, ledger domain.CashLedger) error {
	return s.save(keyCash, ledger)
}
