package db_test

import (
	"context"
	"testing"

	dbfs "github.com/gigboard/gigboard/db"
	dbpkg "github.com/gigboard/gigboard/internal/db"
)

func TestMigrate(t *testing.T) {
	ctx := context.Background()
	d, err := dbpkg.New(ctx, "file::memory:?cache=shared")
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	defer d.Close()

	if err := dbpkg.Migrate(ctx, d, dbfs.Migrations); err != nil {
		t.Fatalf("Migrate returned error: %v", err)
	}

	// every table from the initial migration must exist
	for _, table := range []string{"users", "jobs", "applications", "payments", "reviews", "testimonials", "contact_messages"} {
		var name string
		row := d.QueryRow(ctx, `SELECT name FROM sqlite_master WHERE type = 'table' AND name = ?`, table)
		if err := row.Scan(&name); err != nil {
			t.Fatalf("table %s missing after migration: %v", table, err)
		}
	}

	// migrations are recorded and re-running is a no-op
	var count int
	if err := d.QueryRow(ctx, `SELECT COUNT(1) FROM schema_migrations`).Scan(&count); err != nil {
		t.Fatalf("count migrations: %v", err)
	}
	if count == 0 {
		t.Fatalf("expected recorded migrations")
	}

	if err := dbpkg.Migrate(ctx, d, dbfs.Migrations); err != nil {
		t.Fatalf("second Migrate returned error: %v", err)
	}
	var count2 int
	if err := d.QueryRow(ctx, `SELECT COUNT(1) FROM schema_migrations`).Scan(&count2); err != nil {
		t.Fatalf("count migrations: %v", err)
	}
	if count2 != count {
		t.Fatalf("expected idempotent migration, got %d then %d", count, count2)
	}
}
