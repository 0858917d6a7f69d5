package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"regexp"

	"github.com/Masterminds/squirrel"
)

// validIdentifier validates SQL identifiers (table names) to prevent SQL injection
var validIdentifier = regexp.MustCompile(`^[a-zA-Z_][a-zA-Z0-9_]*$`)

// DBTX is the subset of *sql.DB and *sql.Tx the store needs.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
}

type Store struct {
	db        DBTX
	qb        squirrel.StatementBuilderType
	returning bool // INSERT ... RETURNING id, otherwise LastInsertId
}

// New returns a store speaking the SQL dialect of provider.
func New(db DBTX, provider string) *Store {
	return &Store{
		db:        db,
		qb:        squirrel.StatementBuilder.PlaceholderFormat(PlaceholderFor(provider)),
		returning: supportsReturning(provider),
	}
}

// PlaceholderFor returns the bind-parameter style of provider.
func PlaceholderFor(provider string) squirrel.PlaceholderFormat {
	switch provider {
	case "sqlite", "sqlite3", "mysql":
		return squirrel.Question
	default:
		return squirrel.Dollar
	}
}

// Only postgres hands back generated keys through RETURNING; mysql and
// sqlite report them on the exec result.
func supportsReturning(provider string) bool {
	switch provider {
	case "sqlite", "sqlite3", "mysql":
		return false
	default:
		return true
	}
}

// WithTx returns a store running its statements inside tx.
func (s *Store) WithTx(tx *sql.Tx) *Store {
	return &Store{db: tx, qb: s.qb, returning: s.returning}
}

// FindTenantByDomain returns the id of the tenant owning domain.
func (s *Store) FindTenantByDomain(ctx context.Context, domain string) (int64, bool, error) {
	query, args, err := s.qb.Select("id").
		From("tenants").
		Where(squirrel.Eq{"domain": domain}).
		OrderBy("id").
		Limit(1).
		ToSql()
	if err != nil {
		return 0, false, err
	}

	var id int64
	err = s.db.QueryRowContext(ctx, query, args...).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("failed to look up tenant %s: %w", domain, err)
	}
	return id, true, nil
}

// ExistingEmails returns which of emails already belong to a user, in any tenant.
func (s *Store) ExistingEmails(ctx context.Context, emails []string) ([]string, error) {
	if len(emails) == 0 {
		return nil, nil
	}

	query, args, err := s.qb.Select("email").
		From("users").
		Where(squirrel.Eq{"email": emails}).
		OrderBy("email").
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing users: %w", err)
	}
	defer rows.Close()

	var found []string
	for rows.Next() {
		var email string
		if err := rows.Scan(&email); err != nil {
			return nil, fmt.Errorf("failed to scan email: %w", err)
		}
		found = append(found, email)
	}
	return found, rows.Err()
}

// CountRows returns the number of rows in table.
func (s *Store) CountRows(ctx context.Context, table string) (int64, error) {
	if !validIdentifier.MatchString(table) {
		return 0, fmt.Errorf("invalid table name: %s", table)
	}

	query, args, err := s.qb.Select("COUNT(*)").From(table).ToSql()
	if err != nil {
		return 0, err
	}

	var count int64
	if err := s.db.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count %s: %w", table, err)
	}
	return count, nil
}

// DeleteAll removes every row of table and returns how many were deleted.
func (s *Store) DeleteAll(ctx context.Context, table string) (int64, error) {
	if !validIdentifier.MatchString(table) {
		return 0, fmt.Errorf("invalid table name: %s", table)
	}

	query, args, err := s.qb.Delete(table).ToSql()
	if err != nil {
		return 0, err
	}

	res, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("failed to delete from %s: %w", table, err)
	}
	return res.RowsAffected()
}

// insertReturningID inserts one row and returns the generated primary key.
func (s *Store) insertReturningID(ctx context.Context, table string, values map[string]interface{}) (int64, error) {
	insert := s.qb.Insert(table).SetMap(values)
	if s.returning {
		insert = insert.Suffix("RETURNING id")
	}

	query, args, err := insert.ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build insert into %s: %w", table, err)
	}

	if s.returning {
		var id int64
		if err := s.db.QueryRowContext(ctx, query, args...).Scan(&id); err != nil {
			return 0, fmt.Errorf("failed to insert into %s: %w", table, err)
		}
		return id, nil
	}

	res, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("failed to insert into %s: %w", table, err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to read id inserted into %s: %w", table, err)
	}
	return id, nil
}

// nullableID maps an unset optional foreign key to SQL NULL.
func nullableID(id *int64) interface{} {
	if id == nil {
		return nil
	}
	return *id
}
