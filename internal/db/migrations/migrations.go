// Package migrations embeds the SQL schema migrations, named <version>_<title>.<up|down>.sql.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
