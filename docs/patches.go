package docs

import "embed"

// Patches holds the goose SQL migrations applied by the -migrate flag.
//
//go:embed patches/*.sql
var Patches embed.FS
