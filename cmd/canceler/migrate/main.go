package main

import (
	"flag"
	"log"

	"github.com/uptrace/bun/migrate"

	"github.com/chainsafe/watchtower-bridge/pkg/config"
	"github.com/chainsafe/watchtower-bridge/pkg/migrations/operatordb"
	"github.com/chainsafe/watchtower-bridge/pkg/pgutil"
	mghelper "github.com/chainsafe/watchtower-bridge/pkg/pgutil/migrations"
)

// The canceler shares the operator's database schema (pkg/db):
// deposits and pending_submits are written by the operator's watchers
// and writers; the canceler only records a verify-error audit trail on
// pending_submits after a cancellation.
func main() {
	cfgPath := flag.String("config", "config.example.yaml", "Path to configuration file")
	flag.Usage = mghelper.Usage
	flag.Parse()

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		log.Fatalf("error reading configuration file: %s", err.Error())
	}

	conn, err := pgutil.ConnectDB(&cfg.Database)
	if err != nil {
		log.Fatalf("failed to connect to database: %s", err.Error())
	}
	defer conn.Close()

	log.Printf("running migrations for canceler database (%s)...\n", cfg.Database.Database)

	migrator := migrate.NewMigrator(conn, operatordb.Migrations)
	if err := mghelper.RunMigrations(migrator, flag.Args()...); err != nil {
		mghelper.Exitf(err.Error())
	}
}
