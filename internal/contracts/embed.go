package contracts

import "embed"

// SchemasFS содержит JSON-схемы событий, вшитые в бинарник.
//
//go:embed schemas/events
var SchemasFS embed.FS
