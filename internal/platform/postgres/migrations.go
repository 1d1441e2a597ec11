package postgres

import "embed"

// MigrationsFS embeds the goose migration files so the binary can migrate
// the schema without a checkout on disk.
//
//go:embed migrations/*.sql
var MigrationsFS embed.FS

// MigrationsDir is the path of the migration files inside MigrationsFS.
const MigrationsDir = "migrations"
