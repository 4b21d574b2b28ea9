package postgres

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/iho/ledgerexplorer/internal/domain"
	"github.com/iho/ledgerexplorer/internal/infrastructure/postgres"
)

func setupTestDB(t *testing.T) *pgxpool.Pool {
	t.Helper()

	if testing.Short() {
		t.Skip("skipping postgres container test in short mode")
	}

	ctx := context.Background()

	container, err := tcpostgres.Run(ctx, "postgres:15-alpine",
		tcpostgres.WithDatabase("explorer"),
		tcpostgres.WithUsername("explorer"),
		tcpostgres.WithPassword("explorer"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second),
		),
	)
	require.NoError(t, err, "failed to start postgres container")
	t.Cleanup(func() {
		if err := container.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	})

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	require.NoError(t, postgres.RunMigrations(dsn, migrationsPath(t)))

	pool, err := postgres.NewPool(ctx, dsn, 2, 0)
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	return pool
}

// migrationsPath walks up from the working directory to the module root.
func migrationsPath(t *testing.T) string {
	t.Helper()

	dir, err := os.Getwd()
	require.NoError(t, err)

	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return filepath.Join(dir, "internal", "infrastructure", "postgres", "migrations")
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			t.Fatal("could not find module root")
		}
		dir = parent
	}
}

func TestLedgerUpdateRepository_ListOutputs(t *testing.T) {
	pool := setupTestDB(t)
	repo := NewLedgerUpdateRepository(pool)
	ctx := context.Background()

	const address = "smr1qp8rknypruss89dkqnnuedm87y7xmnmdj2tk3rwcpgamapcep7uvznuxg57"

	updates := []LedgerUpdate{
		{Network: "shimmer", Address: address, MilestoneIndex: 0, RawOutputRef: domain.RawOutputRef{OutputID: "0x01"}},
		{Network: "shimmer", Address: address, MilestoneIndex: 5, RawOutputRef: domain.RawOutputRef{OutputID: "0x01", IsSpent: true, MilestoneTimestamp: 1696377600}},
		{Network: "shimmer", Address: address, MilestoneIndex: 5, RawOutputRef: domain.RawOutputRef{OutputID: "0x02", MilestoneTimestamp: 1696377600}},
		{Network: "testnet", Address: address, MilestoneIndex: 1, RawOutputRef: domain.RawOutputRef{OutputID: "0x03", MilestoneTimestamp: 1}},
	}
	require.NoError(t, repo.Upsert(ctx, updates))
	require.NoError(t, repo.Upsert(ctx, updates[:1]), "upsert must be idempotent")

	refs, err := repo.ListOutputs(ctx, "shimmer", address, 0)
	require.NoError(t, err)
	require.Len(t, refs, 3)
	assert.Equal(t, domain.RawOutputRef{OutputID: "0x01"}, refs[0])
	assert.True(t, refs[1].IsSpent)
	assert.Equal(t, uint32(1696377600), refs[2].MilestoneTimestamp)

	since, err := repo.ListOutputs(ctx, "shimmer", address, 1696377599)
	require.NoError(t, err)
	assert.Len(t, since, 2)

	none, err := repo.ListOutputs(ctx, "shimmer", "smr1qqqqqqqqqq", 0)
	require.NoError(t, err)
	assert.Empty(t, none)

	latest, err := repo.LatestTimestamp(ctx, "shimmer", address)
	require.NoError(t, err)
	assert.Equal(t, uint32(1696377600), latest)

	unknown, err := repo.LatestTimestamp(ctx, "shimmer", "smr1qqqqqqqqqq")
	require.NoError(t, err)
	assert.Zero(t, unknown)
}
