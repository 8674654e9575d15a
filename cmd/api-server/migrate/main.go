package main

import (
	"context"
	"flag"
	"log"

	"github.com/chainsafe/deploy-admin/pkg/config"
	"github.com/chainsafe/deploy-admin/pkg/migrations/apidb"
	"github.com/chainsafe/deploy-admin/pkg/pgutil"
	mghelper "github.com/chainsafe/deploy-admin/pkg/pgutil/migrations"

	"github.com/uptrace/bun/migrate"
)

func main() {
	cfgPath := flag.String("config", "config.example.yaml", "Path to configuration file")
	flag.Usage = mghelper.Usage
	flag.Parse()

	ctx := context.Background()

	cfg, err := config.LoadAPIServer(*cfgPath)
	if err != nil {
		log.Fatalf("error reading configuration file: %s", err.Error())
	}

	db, err := pgutil.ConnectDB(ctx, &cfg.Database)
	if err != nil {
		log.Fatalf("error connecting to database: %s", err.Error())
	}
	defer func() { _ = db.Close() }()

	log.Printf("Running migrations for deploy admin database (%s)...\n", cfg.Database.Database)

	migrator := migrate.NewMigrator(db, apidb.Migrations)

	if err = mghelper.RunMigrations(ctx, migrator, flag.Args()...); err != nil {
		mghelper.Exitf("%s", err.Error())
	}
}
