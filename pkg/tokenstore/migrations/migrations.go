// Package migrations embeds the credential cache schema so the migration
// files are compiled into the binary.
package migrations

import "embed"

//go:embed *.sql
var Migrations embed.FS
