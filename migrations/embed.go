package migrations

import "embed"

// FS holds the schema and seed migrations, applied in version order.
//
//go:embed *.sql
var FS embed.FS
