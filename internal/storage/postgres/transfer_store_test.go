package postgres

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"validator-ledger/internal/domain"
	"validator-ledger/internal/storage"
)

func TestTransferStore_InsertAndGetAll(t *testing.T) {
	pool, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	store := NewTransferStore(pool)

	transfer := &domain.Transfer{
		Signature: "sig1",
		Date:      "2025-11-03",
		From:      "FromAddr1",
		To:        "ToAddr1",
		Lamports:  1_000_000_000,
		AmountSOL: 1.0,
		FromLabel: "Personal Wallet",
		ToLabel:   "Identity",
	}

	err := store.Insert(ctx, transfer)
	require.NoError(t, err)

	transfers, err := store.GetAll(ctx)
	require.NoError(t, err)

	require.Len(t, transfers, 1)
	assert.Equal(t, transfer.Signature, transfers[0].Signature)
	assert.Equal(t, transfer.Date, transfers[0].Date)
	assert.Equal(t, transfer.From, transfers[0].From)
	assert.Equal(t, transfer.To, transfers[0].To)
	assert.Equal(t, transfer.Lamports, transfers[0].Lamports)
	assert.InDelta(t, transfer.AmountSOL, transfers[0].AmountSOL, 0.0001)
	assert.Equal(t, transfer.FromLabel, transfers[0].FromLabel)
	assert.Equal(t, transfer.ToLabel, transfers[0].ToLabel)
}

func TestTransferStore_DuplicateKey(t *testing.T) {
	pool, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	store := NewTransferStore(pool)

	transfer := &domain.Transfer{Signature: "sig1", From: "a", To: "b"}
	require.NoError(t, store.Insert(ctx, transfer))

	err := store.Insert(ctx, transfer)
	assert.ErrorIs(t, err, storage.ErrDuplicateKey)

	// Same signature with a different counterparty is a distinct record.
	err = store.Insert(ctx, &domain.Transfer{Signature: "sig1", From: "a", To: "c"})
	assert.NoError(t, err)
}

func TestTransferStore_InsertBulkAtomic(t *testing.T) {
	pool, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	store := NewTransferStore(pool)

	require.NoError(t, store.Insert(ctx, &domain.Transfer{Signature: "sig1", From: "a", To: "b"}))

	err := store.InsertBulk(ctx, []*domain.Transfer{
		{Signature: "sig2", From: "a", To: "b"},
		{Signature: "sig1", From: "a", To: "b"}, // duplicate
	})
	assert.ErrorIs(t, err, storage.ErrDuplicateKey)

	// The transaction rolled back: sig2 must not exist.
	transfers, err := store.GetAll(ctx)
	require.NoError(t, err)
	assert.Len(t, transfers, 1)
}

func TestTransferStore_OrderingAndDateRange(t *testing.T) {
	pool, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	store := NewTransferStore(pool)

	err := store.InsertBulk(ctx, []*domain.Transfer{
		{Signature: "sig3", Date: "", From: "a", To: "b"},
		{Signature: "sig2", Date: "2025-11-15", From: "a", To: "b"},
		{Signature: "sig1", Date: "2025-11-03", From: "a", To: "b"},
	})
	require.NoError(t, err)

	all, err := store.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)

	// Date ascending, the undated transfer last.
	assert.Equal(t, "sig1", all[0].Signature)
	assert.Equal(t, "sig2", all[1].Signature)
	assert.Equal(t, "sig3", all[2].Signature)

	ranged, err := store.GetByDateRange(ctx, "2025-11-01", "2025-11-10")
	require.NoError(t, err)
	require.Len(t, ranged, 1)
	assert.Equal(t, "sig1", ranged[0].Signature)
}

func TestTransferStore_InvalidInput(t *testing.T) {
	pool, cleanup := setupTestDB(t)
	defer cleanup()

	ctx := context.Background()
	store := NewTransferStore(pool)

	assert.ErrorIs(t, store.Insert(ctx, nil), storage.ErrInvalidInput)
	assert.ErrorIs(t, store.Insert(ctx, &domain.Transfer{From: "a", To: "b"}), storage.ErrInvalidInput)
}
