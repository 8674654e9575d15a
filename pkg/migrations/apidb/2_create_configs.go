package apidb

import (
	"context"
	"log"

	"github.com/uptrace/bun"

	mghelper "github.com/chainsafe/deploy-admin/pkg/pgutil/migrations"
	"github.com/chainsafe/deploy-admin/pkg/userstore"
)

func init() {
	Migrations.MustRegister(func(ctx context.Context, db *bun.DB) error {
		log.Println("creating configs table...")
		if err := mghelper.CreateTableWithForeignKeys(ctx, db, &userstore.ConfigDao{}, userstore.ConfigForeignKeys...); err != nil {
			return err
		}
		return mghelper.CreateModelIndexes(ctx, db, &userstore.ConfigDao{}, "rpc_provider")
	}, func(ctx context.Context, db *bun.DB) error {
		log.Println("dropping configs table...")
		return mghelper.DropTables(ctx, db, &userstore.ConfigDao{})
	})
}
