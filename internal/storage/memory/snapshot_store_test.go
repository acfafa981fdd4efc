package memory

import (
	"context"
	"errors"
	"testing"

	"validator-ledger/internal/domain"
	"validator-ledger/internal/storage"
)

func TestSnapshotStore_InsertAndLatest(t *testing.T) {
	store := NewSnapshotStore()
	ctx := context.Background()

	for _, slot := range []uint64{5000, 7000, 6000} {
		p := &domain.ValidatorPosition{SnapshotSlot: slot, TotalAssetsLamports: slot * 2}
		if err := store.Insert(ctx, p); err != nil {
			t.Fatalf("Insert slot %d failed: %v", slot, err)
		}
	}

	latest, err := store.Latest(ctx)
	if err != nil {
		t.Fatalf("Latest failed: %v", err)
	}
	if latest.SnapshotSlot != 7000 {
		t.Errorf("Latest slot = %d, want 7000", latest.SnapshotSlot)
	}
}

func TestSnapshotStore_DuplicateSlot(t *testing.T) {
	store := NewSnapshotStore()
	ctx := context.Background()

	p := &domain.ValidatorPosition{SnapshotSlot: 5000}
	if err := store.Insert(ctx, p); err != nil {
		t.Fatalf("First insert failed: %v", err)
	}
	if err := store.Insert(ctx, p); !errors.Is(err, storage.ErrDuplicateKey) {
		t.Errorf("Expected ErrDuplicateKey, got %v", err)
	}
}

func TestSnapshotStore_LatestEmpty(t *testing.T) {
	store := NewSnapshotStore()

	if _, err := store.Latest(context.Background()); !errors.Is(err, storage.ErrNotFound) {
		t.Errorf("Expected ErrNotFound, got %v", err)
	}
}
