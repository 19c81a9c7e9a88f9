// Package migrations embeds the goose SQL migrations that define the
// traintrack schema and seed the exercise catalog.
package migrations

import "embed"

//go:embed *.sql
var Migrations embed.FS
