package testhelpers

import (
	"context"
	"database/sql"
	_ "embed"
	"strings"
	"testing"

	"github.com/Lumos-Labs-HQ/lexseed/internal/database"
)

//go:embed schema_sqlite.sql
var schemaSQL string

// NewTestDB returns an in-memory SQLite database with the application schema
// applied and foreign keys enforced. The database is closed when the test completes.
func NewTestDB(t *testing.T) *sql.DB {
	t.Helper()
	return NewTestDBAt(t, ":memory:")
}

// NewTestDBAt is NewTestDB for an on-disk SQLite file, for tests that hand
// the same database to a second connection.
func NewTestDBAt(t *testing.T, dsn string) *sql.DB {
	t.Helper()

	ctx := context.Background()
	db, err := database.Open(ctx, "sqlite", dsn)
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}

	t.Cleanup(func() {
		_ = db.Close()
	})

	for _, stmt := range strings.Split(schemaSQL, ";") {
		if strings.TrimSpace(stripComments(stmt)) == "" {
			continue
		}
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			t.Fatalf("apply test schema: %v", err)
		}
	}

	return db
}

// CountRows returns the row count of table, failing the test on error.
func CountRows(t *testing.T, db *sql.DB, table string) int {
	t.Helper()

	var n int
	if err := db.QueryRow("SELECT COUNT(*) FROM " + table).Scan(&n); err != nil {
		t.Fatalf("count %s: %v", table, err)
	}
	return n
}

func stripComments(stmt string) string {
	var b strings.Builder
	for _, line := range strings.Split(stmt, "\n") {
		if strings.HasPrefix(strings.TrimSpace(line), "--") {
			continue
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	return b.String()
}
