package main

import (
	"os"
)

const defaultMigrationsDir = "db/migrations"

// migrationsDir resolves the migrations directory: the --dir flag wins, then
// MIGRATIONS_DIR, then the repository default.
func migrationsDir(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	if v := os.Getenv("MIGRATIONS_DIR"); v != "" {
		return v
	}
	return defaultMigrationsDir
}
