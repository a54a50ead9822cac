package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/uptrace/bun"
)

// ErrNotFound is returned by single-row lookups that find nothing,
// mirroring bun's sql.ErrNoRows without leaking the sql package to
// callers.
var ErrNotFound = errors.New("db: not found")

// Store is the operator and canceler's shared durable-state
// repository. A single Store instance is safe for concurrent use by
// every watcher/writer/canceler goroutine.
type Store struct {
	db *bun.DB
}

// NewStore wraps an already-connected bun.DB (see pkg/pgutil.ConnectDB).
func NewStore(db *bun.DB) *Store {
	return &Store{db: db}
}

// InsertDeposit records a newly observed Deposit event. Idempotent on
// (chain_id, tx_hash, log_index): a watcher that re-delivers the same
// log after a restart gets a silent no-op instead of a duplicate row.
func (s *Store) InsertDeposit(ctx context.Context, row *DepositRow) error {
	_, err := s.db.NewInsert().
		Model(row).
		On("CONFLICT (chain_id, tx_hash, log_index) DO NOTHING").
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("insert deposit: %w", err)
	}
	return nil
}

// GetDepositByHash looks up a deposit by its transfer_hash column.
func (s *Store) GetDepositByHash(ctx context.Context, transferHash string) (*DepositRow, error) {
	row := new(DepositRow)
	err := s.db.NewSelect().
		Model(row).
		Where("transfer_hash = ?", transferHash).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get deposit: %w", err)
	}
	return row, nil
}

// UpsertPendingSubmit creates or refreshes a withdraw's durable
// record. Called by the operator's watcher when it observes a
// WithdrawSubmit event, and again by the writer and auto-executor
// when they record an approve, cancel or execute, so the HTTP status
// surface stays current.
func (s *Store) UpsertPendingSubmit(ctx context.Context, row *PendingSubmitRow) error {
	_, err := s.db.NewInsert().
		Model(row).
		On("CONFLICT (transfer_hash) DO UPDATE").
		Set("approved = EXCLUDED.approved").
		Set("cancelled = EXCLUDED.cancelled").
		Set("executed = EXCLUDED.executed").
		Set("approved_at = EXCLUDED.approved_at").
		Set("executed_at = EXCLUDED.executed_at").
		Set("verify_error = EXCLUDED.verify_error").
		Set("updated_at = now()").
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("upsert pending submit: %w", err)
	}
	return nil
}

// GetPendingSubmit looks up a withdraw's durable record by hash.
func (s *Store) GetPendingSubmit(ctx context.Context, transferHash string) (*PendingSubmitRow, error) {
	row := new(PendingSubmitRow)
	err := s.db.NewSelect().
		Model(row).
		Where("transfer_hash = ?", transferHash).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get pending submit: %w", err)
	}
	return row, nil
}

// ListUnexecuted returns every submitted withdraw that has not yet
// been executed or cancelled, the work queue the operator's writer and
// auto-executor both read.
func (s *Store) ListUnexecuted(ctx context.Context, destChainID uint32) ([]*PendingSubmitRow, error) {
	var rows []*PendingSubmitRow
	err := s.db.NewSelect().
		Model(&rows).
		Where("dest_chain_id = ?", destChainID).
		Where("NOT executed").
		Where("NOT cancelled").
		Order("submitted_at ASC").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("list unexecuted: %w", err)
	}
	return rows, nil
}

// ListPending returns every withdraw that has not yet reached a
// terminal state, across all chains. It backs the HTTP status
// surface's /pending endpoint.
func (s *Store) ListPending(ctx context.Context) ([]*PendingSubmitRow, error) {
	var rows []*PendingSubmitRow
	err := s.db.NewSelect().
		Model(&rows).
		Where("NOT executed").
		Where("NOT cancelled").
		Order("submitted_at ASC").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("list pending: %w", err)
	}
	return rows, nil
}

// ListApprovedUnverified returns approved withdraws the canceler has
// not yet recorded a verification outcome for.
func (s *Store) ListApprovedUnverified(ctx context.Context, destChainID uint32) ([]*PendingSubmitRow, error) {
	var rows []*PendingSubmitRow
	err := s.db.NewSelect().
		Model(&rows).
		Where("dest_chain_id = ?", destChainID).
		Where("approved").
		Where("NOT cancelled").
		Where("NOT executed").
		Where("verify_error IS NULL").
		Order("submitted_at ASC").
		Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("list approved unverified: %w", err)
	}
	return rows, nil
}

// MarkVerifyError records the canceler's reason for flagging hash,
// independent of whether it has acted on-chain yet.
func (s *Store) MarkVerifyError(ctx context.Context, transferHash, reason string) error {
	_, err := s.db.NewUpdate().
		Model((*PendingSubmitRow)(nil)).
		Set("verify_error = ?", reason).
		Set("updated_at = now()").
		Where("transfer_hash = ?", transferHash).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("mark verify error: %w", err)
	}
	return nil
}

// GetChainState returns the last block scanned for chainID, or
// (nil, nil) if the chain has never been scanned.
func (s *Store) GetChainState(ctx context.Context, chainID uint32) (*ChainState, error) {
	row := new(ChainState)
	err := s.db.NewSelect().
		Model(row).
		Where("chain_id = ?", chainID).
		Scan(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get chain state: %w", err)
	}
	return row, nil
}

// SetChainState durably advances chainID's watcher offset. Called
// after every batch of events is persisted, never before, so a crash
// mid-batch replays that batch instead of silently skipping it.
func (s *Store) SetChainState(ctx context.Context, chainID uint32, lastBlock uint64) error {
	row := &ChainState{ChainID: chainID, LastBlock: lastBlock}
	_, err := s.db.NewInsert().
		Model(row).
		On("CONFLICT (chain_id) DO UPDATE").
		Set("last_block = EXCLUDED.last_block").
		Set("updated_at = now()").
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("set chain state: %w", err)
	}
	return nil
}
