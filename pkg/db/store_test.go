package db_test

import (
	"context"
	"testing"
	"time"

	"github.com/uptrace/bun/migrate"

	"github.com/chainsafe/watchtower-bridge/pkg/db"
	"github.com/chainsafe/watchtower-bridge/pkg/migrations/operatordb"
	"github.com/chainsafe/watchtower-bridge/pkg/pgutil"
)

func setupStore(t *testing.T) *db.Store {
	t.Helper()
	conn, cleanup := pgutil.SetupTestDB(t)
	t.Cleanup(cleanup)

	ctx := context.Background()
	migrator := migrate.NewMigrator(conn, operatordb.Migrations)
	if err := migrator.Init(ctx); err != nil {
		t.Fatalf("Init: %v", err)
	}
	if _, err := migrator.Migrate(ctx); err != nil {
		t.Fatalf("Migrate: %v", err)
	}
	return db.NewStore(conn)
}

func TestInsertDepositIsIdempotent(t *testing.T) {
	s := setupStore(t)
	ctx := context.Background()

	row := &db.DepositRow{
		ChainID:      1,
		TxHash:       "0xabc",
		LogIndex:     0,
		TransferHash: "0xhash1",
		DestChainID:  2,
		SrcAccount:   "0xaa",
		DestAccount:  "0xaa",
		LocalToken:   "0xtoken",
		NetAmount:    "1000",
		Fee:          "0",
		Nonce:        1,
		BlockNumber:  100,
		ObservedAt:   time.Now(),
	}
	if err := s.InsertDeposit(ctx, row); err != nil {
		t.Fatalf("InsertDeposit: %v", err)
	}
	// Re-delivering the same (chain_id, tx_hash, log_index) must not error.
	if err := s.InsertDeposit(ctx, row); err != nil {
		t.Fatalf("InsertDeposit (re-delivery): %v", err)
	}

	got, err := s.GetDepositByHash(ctx, "0xhash1")
	if err != nil {
		t.Fatalf("GetDepositByHash: %v", err)
	}
	if got.NetAmount != "1000" {
		t.Fatalf("unexpected net amount: %s", got.NetAmount)
	}
}

func TestGetDepositByHashNotFound(t *testing.T) {
	s := setupStore(t)
	_, err := s.GetDepositByHash(context.Background(), "0xmissing")
	if err != db.ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestUpsertPendingSubmitLifecycle(t *testing.T) {
	s := setupStore(t)
	ctx := context.Background()

	row := &db.PendingSubmitRow{
		TransferHash: "0xhash2",
		SrcChainID:   1,
		DestChainID:  2,
		Account:      "0xaa",
		LocalToken:   "0xtoken",
		Amount:       "500",
		Nonce:        1,
		OperatorGas:  "0",
		SubmittedAt:  time.Now(),
	}
	if err := s.UpsertPendingSubmit(ctx, row); err != nil {
		t.Fatalf("UpsertPendingSubmit: %v", err)
	}

	unexecuted, err := s.ListUnexecuted(ctx, 2)
	if err != nil {
		t.Fatalf("ListUnexecuted: %v", err)
	}
	if len(unexecuted) != 1 {
		t.Fatalf("expected 1 unexecuted row, got %d", len(unexecuted))
	}

	row.Approved = true
	now := time.Now()
	row.ApprovedAt = &now
	if err := s.UpsertPendingSubmit(ctx, row); err != nil {
		t.Fatalf("UpsertPendingSubmit (approve): %v", err)
	}

	approved, err := s.ListApprovedUnverified(ctx, 2)
	if err != nil {
		t.Fatalf("ListApprovedUnverified: %v", err)
	}
	if len(approved) != 1 {
		t.Fatalf("expected 1 approved-unverified row, got %d", len(approved))
	}

	if err := s.MarkVerifyError(ctx, "0xhash2", "deposit not found on source chain"); err != nil {
		t.Fatalf("MarkVerifyError: %v", err)
	}
	got, err := s.GetPendingSubmit(ctx, "0xhash2")
	if err != nil {
		t.Fatalf("GetPendingSubmit: %v", err)
	}
	if got.VerifyError == nil || *got.VerifyError == "" {
		t.Fatalf("expected verify error to be recorded")
	}

	stillApproved, err := s.ListApprovedUnverified(ctx, 2)
	if err != nil {
		t.Fatalf("ListApprovedUnverified: %v", err)
	}
	if len(stillApproved) != 0 {
		t.Fatalf("expected flagged row to drop out of the unverified queue")
	}
}

func TestChainStateRoundTrip(t *testing.T) {
	s := setupStore(t)
	ctx := context.Background()

	if got, err := s.GetChainState(ctx, 1); err != nil || got != nil {
		t.Fatalf("expected nil chain state before first write, got %+v err %v", got, err)
	}

	if err := s.SetChainState(ctx, 1, 100); err != nil {
		t.Fatalf("SetChainState: %v", err)
	}
	if err := s.SetChainState(ctx, 1, 150); err != nil {
		t.Fatalf("SetChainState (advance): %v", err)
	}

	got, err := s.GetChainState(ctx, 1)
	if err != nil {
		t.Fatalf("GetChainState: %v", err)
	}
	if got.LastBlock != 150 {
		t.Fatalf("expected last block 150, got %d", got.LastBlock)
	}
}
