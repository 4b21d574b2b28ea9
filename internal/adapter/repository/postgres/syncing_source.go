package postgres

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/iho/ledgerexplorer/internal/domain"
	"github.com/iho/ledgerexplorer/internal/usecase"
)

// LedgerFeed lists ledger updates from an upstream indexer.
type LedgerFeed interface {
	ListLedgerUpdates(ctx context.Context, network, address string, since uint32) ([]domain.LedgerUpdate, error)
}

// LedgerStore persists ledger updates. LedgerUpdateRepository implements it.
type LedgerStore interface {
	usecase.OutputSource
	LatestTimestamp(ctx context.Context, network, address string) (uint32, error)
	Upsert(ctx context.Context, updates []LedgerUpdate) error
}

// SyncingSource is a read-through usecase.OutputSource: before every listing it pulls the
// updates of the address booked since the newest stored one and stores them.
type SyncingSource struct {
	store  LedgerStore
	feed   LedgerFeed
	logger zerolog.Logger
}

// NewSyncingSource creates a new SyncingSource.
func NewSyncingSource(store LedgerStore, feed LedgerFeed, logger zerolog.Logger) *SyncingSource {
	return &SyncingSource{
		store:  store,
		feed:   feed,
		logger: logger,
	}
}

var _ usecase.OutputSource = (*SyncingSource)(nil)

// ListOutputs syncs address and lists its stored updates.
func (s *SyncingSource) ListOutputs(ctx context.Context, network, address string, since uint32) ([]domain.RawOutputRef, error) {
	if _, err := s.Sync(ctx, network, address); err != nil {
		return nil, err
	}
	return s.store.ListOutputs(ctx, network, address, since)
}

// Sync stores the updates of address that are not stored yet and returns how many were fetched.
// The newest stored milestone second is fetched again; Upsert makes that a no-op.
func (s *SyncingSource) Sync(ctx context.Context, network, address string) (int, error) {
	latest, err := s.store.LatestTimestamp(ctx, network, address)
	if err != nil {
		return 0, err
	}

	since := latest
	if since > 0 {
		since--
	}

	fetched, err := s.feed.ListLedgerUpdates(ctx, network, address, since)
	if err != nil {
		return 0, fmt.Errorf("failed to sync ledger updates: %w", err)
	}

	updates := make([]LedgerUpdate, len(fetched))
	for i, u := range fetched {
		updates[i] = LedgerUpdate{
			Network:        network,
			Address:        address,
			MilestoneIndex: u.MilestoneIndex,
			RawOutputRef:   u.RawOutputRef,
		}
	}

	if err := s.store.Upsert(ctx, updates); err != nil {
		return 0, err
	}

	s.logger.Debug().
		Str("network", network).
		Str("address", address).
		Uint32("since", since).
		Int("updates", len(updates)).
		Msg("ledger updates synced")

	return len(updates), nil
}
