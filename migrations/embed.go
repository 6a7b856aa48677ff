package migrations

import "embed"

// FS holds the schema migrations, one directory per driver.
//
//go:embed sqlite/*.sql
var FS embed.FS
