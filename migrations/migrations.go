// Package migrations holds the goose migrations. Each migration registers
// itself in init(); the embedded FS only provides filenames so goose can
// discover versions without the source tree on disk.
package migrations

import "embed"

//go:embed *.go
var FS embed.FS
