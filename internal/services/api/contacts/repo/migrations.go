package repo

import "embed"

// Migrations holds the schema and stored functions, applied in version order
//
//go:embed migrations/*.sql
var Migrations embed.FS

// MigrationsDir is the directory inside Migrations golang-migrate reads from
const MigrationsDir = "migrations"
