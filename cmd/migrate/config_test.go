package main

import (
	"os"
	"testing"
)

func TestMigrationsDir_FlagWins(t *testing.T) {
	t.Setenv("MIGRATIONS_DIR", "/custom/migrations")

	if got := migrationsDir("/from/flag"); got != "/from/flag" {
		t.Fatalf("expected flag value, got %q", got)
	}
}

func TestMigrationsDir_EnvOverride(t *testing.T) {
	t.Setenv("MIGRATIONS_DIR", "/custom/migrations")

	if got := migrationsDir(""); got != "/custom/migrations" {
		t.Fatalf("expected MIGRATIONS_DIR override, got %q", got)
	}
}

func TestMigrationsDir_Default(t *testing.T) {
	t.Setenv("MIGRATIONS_DIR", "")
	_ = os.Unsetenv("MIGRATIONS_DIR")

	if got := migrationsDir(""); got != "db/migrations" {
		t.Fatalf("expected default migrations dir, got %q", got)
	}
}
