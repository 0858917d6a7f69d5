package store

import (
	"context"
	"testing"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Lumos-Labs-HQ/lexseed/internal/models"
	"github.com/Lumos-Labs-HQ/lexseed/internal/testhelpers"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	return New(testhelpers.NewTestDB(t), "sqlite")
}

func insertTenant(t *testing.T, s *Store) int64 {
	t.Helper()
	id, err := s.InsertTenant(context.Background(), &models.Tenant{
		Name:             "Test Chambers",
		Domain:           "test.example.com",
		SubscriptionTier: "basic",
		MaxUsers:         5,
	})
	require.NoError(t, err)
	return id
}

func TestPlaceholderFor(t *testing.T) {
	assert.Equal(t, squirrel.Question, PlaceholderFor("sqlite"))
	assert.Equal(t, squirrel.Question, PlaceholderFor("sqlite3"))
	assert.Equal(t, squirrel.Dollar, PlaceholderFor("postgresql"))
	assert.Equal(t, squirrel.Dollar, PlaceholderFor("postgres"))
	assert.Equal(t, squirrel.Question, PlaceholderFor("mysql"))
}

func TestNew_IDStrategyPerProvider(t *testing.T) {
	db := testhelpers.NewTestDB(t)

	assert.True(t, New(db, "postgresql").returning)
	assert.True(t, New(db, "postgres").returning)
	assert.False(t, New(db, "mysql").returning)
	assert.False(t, New(db, "sqlite").returning)
}

func TestInsertMySQLStatementShape(t *testing.T) {
	qb := squirrel.StatementBuilder.PlaceholderFormat(PlaceholderFor("mysql"))
	query, args, err := qb.Insert("tenants").SetMap(map[string]interface{}{"name": "A", "domain": "a.example.com"}).ToSql()
	require.NoError(t, err)
	assert.Equal(t, "INSERT INTO tenants (domain,name) VALUES (?,?)", query)
	assert.Equal(t, []interface{}{"a.example.com", "A"}, args)
}

func TestInsert_BothIDStrategiesReturnGeneratedID(t *testing.T) {
	ctx := context.Background()
	db := testhelpers.NewTestDB(t)

	// sqlite understands RETURNING too, so both code paths can run against it.
	viaReturning := &Store{db: db, qb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Question), returning: true}
	viaLastInsertID := New(db, "sqlite")

	first, err := viaReturning.InsertTenant(ctx, &models.Tenant{Name: "A", Domain: "a.example.com", SubscriptionTier: "basic", MaxUsers: 1})
	require.NoError(t, err)
	second, err := viaLastInsertID.InsertTenant(ctx, &models.Tenant{Name: "B", Domain: "b.example.com", SubscriptionTier: "basic", MaxUsers: 1})
	require.NoError(t, err)

	assert.Positive(t, first)
	assert.Equal(t, first+1, second)

	var domain string
	require.NoError(t, db.QueryRow(`SELECT domain FROM tenants WHERE id = ?`, second).Scan(&domain))
	assert.Equal(t, "b.example.com", domain)
}

func TestInsertTenant_ReturnsGeneratedID(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	tenant := &models.Tenant{Name: "A", Domain: "a.example.com", SubscriptionTier: "basic", MaxUsers: 3}
	id, err := s.InsertTenant(ctx, tenant)
	require.NoError(t, err)
	assert.Positive(t, id)
	assert.Equal(t, id, tenant.ID)

	other := &models.Tenant{Name: "B", Domain: "b.example.com", SubscriptionTier: "basic", MaxUsers: 3}
	otherID, err := s.InsertTenant(ctx, other)
	require.NoError(t, err)
	assert.NotEqual(t, id, otherID)
}

func TestFindTenantByDomain(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	_, found, err := s.FindTenantByDomain(ctx, "test.example.com")
	require.NoError(t, err)
	assert.False(t, found)

	id := insertTenant(t, s)

	got, found, err := s.FindTenantByDomain(ctx, "test.example.com")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, id, got)
}

func TestExistingEmails(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	tenantID := insertTenant(t, s)

	found, err := s.ExistingEmails(ctx, nil)
	require.NoError(t, err)
	assert.Empty(t, found)

	_, err = s.InsertUser(ctx, &models.User{
		TenantID:     tenantID,
		Email:        "lawyer@lawfirm.com",
		PasswordHash: "x",
		FirstName:    "L",
		LastName:     "W",
		Role:         models.RoleLawyer,
		IsActive:     true,
	})
	require.NoError(t, err)

	found, err = s.ExistingEmails(ctx, []string{"admin@lawfirm.com", "lawyer@lawfirm.com"})
	require.NoError(t, err)
	assert.Equal(t, []string{"lawyer@lawfirm.com"}, found)
}

func TestInsertUser_DuplicateEmailInTenantFails(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	tenantID := insertTenant(t, s)

	user := models.User{
		TenantID: tenantID, Email: "admin@lawfirm.com", PasswordHash: "x",
		FirstName: "A", LastName: "D", Role: models.RoleAdmin, IsActive: true,
	}
	first := user
	_, err := s.InsertUser(ctx, &first)
	require.NoError(t, err)

	second := user
	_, err = s.InsertUser(ctx, &second)
	assert.ErrorContains(t, err, "failed to insert into users")
}

func TestInsertUser_UnknownTenantViolatesForeignKey(t *testing.T) {
	s := newTestStore(t)

	_, err := s.InsertUser(context.Background(), &models.User{
		TenantID: 999, Email: "ghost@lawfirm.com", PasswordHash: "x",
		FirstName: "G", LastName: "H", Role: models.RoleAdmin,
	})
	assert.Error(t, err)
}

func TestInsertTask_NullableParents(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	tenantID := insertTenant(t, s)

	userID, err := s.InsertUser(ctx, &models.User{
		TenantID: tenantID, Email: "p@lawfirm.com", PasswordHash: "x",
		FirstName: "P", LastName: "L", Role: models.RoleParalegal,
	})
	require.NoError(t, err)

	clientID, err := s.InsertClient(ctx, &models.Client{
		TenantID: tenantID, ClientType: "individual", FirstName: "C", LastName: "L",
		Status: "active", AssignedTo: userID,
	})
	require.NoError(t, err)

	_, err = s.InsertTask(ctx, &models.Task{
		ClientID: &clientID, Title: "Collect KYC documents", Status: "pending",
		DueDate: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), AssignedTo: userID, CreatedBy: userID,
	})
	require.NoError(t, err)

	// the schema requires a case or a client
	_, err = s.InsertTask(ctx, &models.Task{
		Title: "Orphan", Status: "pending", AssignedTo: userID, CreatedBy: userID,
	})
	assert.Error(t, err)
}

func TestCountRowsAndDeleteAll(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	insertTenant(t, s)

	count, err := s.CountRows(ctx, "tenants")
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	deleted, err := s.DeleteAll(ctx, "tenants")
	require.NoError(t, err)
	assert.Equal(t, int64(1), deleted)

	count, err = s.CountRows(ctx, "tenants")
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestInvalidTableNameRejected(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	_, err := s.CountRows(ctx, "tenants; DROP TABLE users")
	assert.ErrorContains(t, err, "invalid table name")

	_, err = s.DeleteAll(ctx, "1tenants")
	assert.ErrorContains(t, err, "invalid table name")
}
