// Package migrations embeds the goose migrations for the order store.
package migrations

import "embed"

//go:embed *.sql
var Migrations embed.FS
