package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/iho/ledgerexplorer/internal/domain"
	"github.com/iho/ledgerexplorer/internal/usecase"
)

// LedgerUpdateRepository implements usecase.OutputSource over a locally indexed
// ledger_updates table.
type LedgerUpdateRepository struct {
	pool *pgxpool.Pool
}

// NewLedgerUpdateRepository creates a new LedgerUpdateRepository.
func NewLedgerUpdateRepository(pool *pgxpool.Pool) *LedgerUpdateRepository {
	return &LedgerUpdateRepository{pool: pool}
}

var _ usecase.OutputSource = (*LedgerUpdateRepository)(nil)

// LedgerUpdate is a row of the ledger_updates table.
type LedgerUpdate struct {
	Network        string
	Address        string
	MilestoneIndex uint32
	domain.RawOutputRef
}

const listLedgerUpdates = `
SELECT output_id, is_spent, milestone_timestamp
FROM ledger_updates
WHERE network = $1
  AND address = $2
  AND ($3 = 0 OR milestone_timestamp > $3)
ORDER BY milestone_index, id`

// ListOutputs returns the ledger updates of address in indexing order.
func (r *LedgerUpdateRepository) ListOutputs(ctx context.Context, network, address string, since uint32) ([]domain.RawOutputRef, error) {
	rows, err := r.pool.Query(ctx, listLedgerUpdates, network, address, int64(since))
	if err != nil {
		return nil, fmt.Errorf("failed to query ledger updates: %w", err)
	}

	refs, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.RawOutputRef, error) {
		var (
			ref       domain.RawOutputRef
			timestamp int64
		)
		if err := row.Scan(&ref.OutputID, &ref.IsSpent, &timestamp); err != nil {
			return ref, err
		}
		ref.MilestoneTimestamp = uint32(timestamp)
		return ref, nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan ledger updates: %w", err)
	}

	return refs, nil
}

const latestLedgerUpdate = `
SELECT COALESCE(MAX(milestone_timestamp), 0)
FROM ledger_updates
WHERE network = $1
  AND address = $2`

// LatestTimestamp returns the newest milestone timestamp stored for address, 0 when none is.
func (r *LedgerUpdateRepository) LatestTimestamp(ctx context.Context, network, address string) (uint32, error) {
	var latest int64
	if err := r.pool.QueryRow(ctx, latestLedgerUpdate, network, address).Scan(&latest); err != nil {
		return 0, fmt.Errorf("failed to query latest ledger update: %w", err)
	}
	return uint32(latest), nil
}

const upsertLedgerUpdate = `
INSERT INTO ledger_updates (network, address, output_id, is_spent, milestone_index, milestone_timestamp)
VALUES ($1, $2, $3, $4, $5, $6)
ON CONFLICT (network, address, output_id, is_spent) DO UPDATE
SET milestone_index = EXCLUDED.milestone_index,
    milestone_timestamp = EXCLUDED.milestone_timestamp`

// Upsert stores ledger updates in a single batch.
func (r *LedgerUpdateRepository) Upsert(ctx context.Context, updates []LedgerUpdate) error {
	if len(updates) == 0 {
		return nil
	}

	batch := &pgx.Batch{}
	for _, u := range updates {
		batch.Queue(upsertLedgerUpdate,
			u.Network,
			u.Address,
			u.OutputID,
			u.IsSpent,
			int64(u.MilestoneIndex),
			int64(u.MilestoneTimestamp),
		)
	}

	if err := r.pool.SendBatch(ctx, batch).Close(); err != nil {
		return fmt.Errorf("failed to upsert ledger updates: %w", err)
	}

	return nil
}
