// Package apidb holds all the migrations for the admin API database
package apidb

import "github.com/uptrace/bun/migrate"

// Migrations is the ordered set of API database migrations, populated by
// the init functions of the numbered files in this package.
var Migrations = migrate.NewMigrations()
