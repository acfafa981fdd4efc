package postgres

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"validator-ledger/internal/domain"
	"validator-ledger/internal/storage"
)

func TestSnapshotStore_InsertAndLatest(t *testing.T) {
	pool, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	store := NewSnapshotStore(pool)

	for _, slot := range []uint64{5000, 7000, 6000} {
		err := store.Insert(ctx, &domain.ValidatorPosition{
			SnapshotSlot:        slot,
			SnapshotTime:        1700000000,
			VoteLamports:        10_000_000_000,
			TotalAssetsLamports: 22_000_000_000,
			ReconciliationDiff:  1_000_000,
		})
		require.NoError(t, err)
	}

	latest, err := store.Latest(ctx)
	require.NoError(t, err)

	assert.Equal(t, uint64(7000), latest.SnapshotSlot)
	assert.Equal(t, uint64(10_000_000_000), latest.VoteLamports)
	assert.Equal(t, uint64(22_000_000_000), latest.TotalAssetsLamports)
	assert.Equal(t, int64(1_000_000), latest.ReconciliationDiff)
}

func TestSnapshotStore_DuplicateSlot(t *testing.T) {
	pool, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	store := NewSnapshotStore(pool)

	p := &domain.ValidatorPosition{SnapshotSlot: 5000}
	require.NoError(t, store.Insert(ctx, p))
	assert.ErrorIs(t, store.Insert(ctx, p), storage.ErrDuplicateKey)
}

func TestSnapshotStore_LatestEmpty(t *testing.T) {
	pool, cleanup := setupTestDB(t)
	defer cleanup()

	store := NewSnapshotStore(pool)
	_, err := store.Latest(context.Background())
	assert.ErrorIs(t, err, storage.ErrNotFound)
}
