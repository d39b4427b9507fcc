// Package migrations embeds the goose SQL migrations so binaries can run them
// without the files on disk.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
