// Package operatordb holds the migrations for the operator/canceler
// database: deposits, pending_submits, and chain_state (pkg/db).
package operatordb

import (
	"context"

	"github.com/uptrace/bun"
	"github.com/uptrace/bun/migrate"

	"github.com/chainsafe/watchtower-bridge/pkg/db"
	"github.com/chainsafe/watchtower-bridge/pkg/pgutil/migrations"
)

// Migrations is the registered set of bun migrations for this
// database, consumed by cmd/operator/migrate and cmd/canceler/migrate
// via migrate.NewMigrator(db, Migrations).
var Migrations = migrate.NewMigrations()

func init() {
	Migrations.MustRegister(up001CreateTables, down001CreateTables)
}

func up001CreateTables(ctx context.Context, tx *bun.DB) error {
	if err := migrations.CreateSchema(ctx, tx,
		(*db.DepositRow)(nil),
		(*db.PendingSubmitRow)(nil),
		(*db.ChainState)(nil),
	); err != nil {
		return err
	}

	if _, err := tx.ExecContext(ctx, `
		CREATE UNIQUE INDEX IF NOT EXISTS idx_deposits_chain_tx_log
		ON deposits (chain_id, tx_hash, log_index)
	`); err != nil {
		return err
	}
	return migrations.CreateIndexes(ctx, tx, "pending_submits", "dest_chain_id", "src_chain_id")
}

func down001CreateTables(ctx context.Context, tx *bun.DB) error {
	return migrations.DropTables(ctx, tx,
		(*db.DepositRow)(nil),
		(*db.PendingSubmitRow)(nil),
		(*db.ChainState)(nil),
	)
}
