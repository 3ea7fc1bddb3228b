package migrations

import "embed"

// FS holds the golang-migrate files, one directory per SQL dialect.
//
//go:embed sqlite/*.sql postgres/*.sql
var FS embed.FS
