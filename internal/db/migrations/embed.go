// Package migrations embeds the Postgres schema migrations for the credits tables.
package migrations

import "embed"

// FS contains the embedded SQL migration files.
//
//go:embed *.sql
var FS embed.FS
