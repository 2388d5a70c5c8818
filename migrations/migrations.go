// Package migrations embeds the SQL schema applied at bootstrap.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
