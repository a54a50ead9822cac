// Package db persists the operator's durable, restart-safe view of
// in-flight transfers: deposits observed on each source chain,
// withdraws submitted/approved/cancelled/executed on each destination
// chain, and the last block each watcher has scanned. It is the
// off-chain mirror of pkg/bridgecore's in-memory state machine, not a
// replacement for it -- the chain is always the source of truth.
package db

import (
	"time"
)

// DepositRow is a watcher's durable record of one on-chain Deposit
// event. The (chain_id, tx_hash, log_index) triple is unique so a
// watcher that re-scans an already-seen block range never double
// counts a deposit.
type DepositRow struct {
	tableName     struct{}  `bun:"table:deposits"` // nolint
	ID            int64     `bun:",pk,autoincrement"`
	ChainID       uint32    `bun:",notnull"`
	TxHash        string    `bun:",notnull,type:varchar(128)"`
	LogIndex      uint32    `bun:",notnull"`
	TransferHash  string    `bun:",unique,notnull,type:varchar(66)"`
	DestChainID   uint32    `bun:",notnull"`
	SrcAccount    string    `bun:",notnull,type:varchar(66)"`
	DestAccount   string    `bun:",notnull,type:varchar(66)"`
	LocalToken    string    `bun:",notnull,type:varchar(66)"`
	NetAmount     string    `bun:",notnull,type:varchar(100)"`
	Fee           string    `bun:",notnull,type:varchar(100)"`
	Nonce         uint64    `bun:",notnull"`
	BlockNumber   uint64    `bun:",notnull"`
	ObservedAt    time.Time `bun:",notnull,default:current_timestamp"`
}

// PendingSubmitRow is the writer/canceler's durable record of a
// withdraw's lifecycle on a destination chain, keyed by transfer
// hash so every component converges on the same row regardless of
// which one created it.
type PendingSubmitRow struct {
	tableName    struct{}   `bun:"table:pending_submits"` // nolint
	TransferHash string     `bun:",pk,type:varchar(66)"`
	SrcChainID   uint32     `bun:",notnull"`
	DestChainID  uint32     `bun:",notnull"`
	Account      string     `bun:",notnull,type:varchar(66)"`
	LocalToken   string     `bun:",notnull,type:varchar(66)"`
	Amount       string     `bun:",notnull,type:varchar(100)"`
	Nonce        uint64     `bun:",notnull"`
	OperatorGas  string     `bun:",notnull,type:varchar(100)"`
	SubmittedAt  time.Time  `bun:",notnull"`
	ApprovedAt   *time.Time `bun:",nullzero"`
	ExecutedAt   *time.Time `bun:",nullzero"`
	Approved     bool       `bun:",notnull,default:false"`
	Cancelled    bool       `bun:",notnull,default:false"`
	Executed     bool       `bun:",notnull,default:false"`
	VerifyError  *string    `bun:",type:text"`
	UpdatedAt    time.Time  `bun:",notnull,default:current_timestamp"`
}

// ChainState tracks the last block a watcher successfully scanned for
// a given chain, so a restarted watcher resumes instead of rescanning
// from its configured start block.
type ChainState struct {
	tableName struct{}  `bun:"table:chain_state"` // nolint
	ChainID   uint32    `bun:",pk"`
	LastBlock uint64    `bun:",notnull"`
	UpdatedAt time.Time `bun:",notnull,default:current_timestamp"`
}
