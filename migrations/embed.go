// Package migrations embeds the goose SQL migrations applied after gorm
// auto migration on PostgreSQL.
package migrations

import "embed"

// FS holds the migration files.
//
//go:embed *.sql
var FS embed.FS
