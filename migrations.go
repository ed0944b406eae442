// Package cookbook holds assets shared by every binary of the recipe catalog,
// such as the embedded SQL migrations.
package cookbook

import "embed"

// Migrations contains the goose SQL migrations applied by the migrate command.
//
//go:embed migrations/*.sql
var Migrations embed.FS
