package store

import (
	"context"

	"github.com/Lumos-Labs-HQ/lexseed/internal/models"
)

func (s *Store) InsertTenant(ctx context.Context, t *models.Tenant) (int64, error) {
	id, err := s.insertReturningID(ctx, "tenants", map[string]interface{}{
		"name":              t.Name,
		"domain":            t.Domain,
		"subscription_tier": t.SubscriptionTier,
		"max_users":         t.MaxUsers,
	})
	if err != nil {
		return 0, err
	}
	t.ID = id
	return id, nil
}

func (s *Store) InsertUser(ctx context.Context, u *models.User) (int64, error) {
	id, err := s.insertReturningID(ctx, "users", map[string]interface{}{
		"tenant_id":     u.TenantID,
		"email":         u.Email,
		"password_hash": u.PasswordHash,
		"first_name":    u.FirstName,
		"last_name":     u.LastName,
		"role":          string(u.Role),
		"phone":         u.Phone,
		"is_active":     u.IsActive,
	})
	if err != nil {
		return 0, err
	}
	u.ID = id
	return id, nil
}

func (s *Store) InsertClient(ctx context.Context, c *models.Client) (int64, error) {
	id, err := s.insertReturningID(ctx, "clients", map[string]interface{}{
		"tenant_id":    c.TenantID,
		"user_id":      nullableID(c.UserID),
		"client_type":  c.ClientType,
		"first_name":   c.FirstName,
		"last_name":    c.LastName,
		"company_name": c.CompanyName,
		"email":        c.Email,
		"phone":        c.Phone,
		"address":      c.Address,
		"city":         c.City,
		"state":        c.State,
		"pan_number":   c.PAN,
		"status":       string(c.Status),
		"assigned_to":  c.AssignedTo,
	})
	if err != nil {
		return 0, err
	}
	c.ID = id
	return id, nil
}

func (s *Store) InsertCase(ctx context.Context, c *models.Case) (int64, error) {
	var nextHearing interface{}
	if c.NextHearingDate != nil {
		nextHearing = *c.NextHearingDate
	}

	id, err := s.insertReturningID(ctx, "cases", map[string]interface{}{
		"tenant_id":         c.TenantID,
		"case_number":       c.CaseNumber,
		"title":             c.Title,
		"description":       c.Description,
		"client_id":         c.ClientID,
		"case_type":         c.CaseType,
		"court_name":        c.CourtName,
		"court_location":    c.CourtLocation,
		"judge_name":        c.JudgeName,
		"opposing_party":    c.OpposingParty,
		"opposing_counsel":  c.OpposingCounsel,
		"filing_date":       c.FilingDate,
		"next_hearing_date": nextHearing,
		"status":            string(c.Status),
		"priority":          c.Priority,
		"assigned_to":       c.AssignedTo,
	})
	if err != nil {
		return 0, err
	}
	c.ID = id
	return id, nil
}

func (s *Store) InsertTask(ctx context.Context, t *models.Task) (int64, error) {
	id, err := s.insertReturningID(ctx, "tasks", map[string]interface{}{
		"case_id":     nullableID(t.CaseID),
		"client_id":   nullableID(t.ClientID),
		"title":       t.Title,
		"description": t.Description,
		"status":      string(t.Status),
		"priority":    t.Priority,
		"due_date":    t.DueDate,
		"assigned_to": t.AssignedTo,
		"created_by":  t.CreatedBy,
	})
	if err != nil {
		return 0, err
	}
	t.ID = id
	return id, nil
}

func (s *Store) InsertCalendarEvent(ctx context.Context, e *models.CalendarEvent) (int64, error) {
	id, err := s.insertReturningID(ctx, "calendar_events", map[string]interface{}{
		"user_id":     e.UserID,
		"case_id":     nullableID(e.CaseID),
		"title":       e.Title,
		"description": e.Description,
		"event_type":  e.EventType,
		"location":    e.Location,
		"start_time":  e.StartTime,
		"end_time":    e.EndTime,
	})
	if err != nil {
		return 0, err
	}
	e.ID = id
	return id, nil
}

func (s *Store) InsertBillingRecord(ctx context.Context, b *models.BillingRecord) (int64, error) {
	id, err := s.insertReturningID(ctx, "billing_records", map[string]interface{}{
		"case_id":         b.CaseID,
		"client_id":       b.ClientID,
		"invoice_number":  b.InvoiceNumber,
		"invoice_date":    b.InvoiceDate,
		"due_date":        b.DueDate,
		"hours_billed":    b.HoursBilled,
		"hourly_rate":     b.HourlyRate,
		"expenses_amount": b.ExpensesAmount,
		"subtotal":        b.Subtotal,
		"gst_rate":        b.GSTRate,
		"gst_amount":      b.GSTAmount,
		"total_amount":    b.TotalAmount,
		"paid_amount":     b.PaidAmount,
		"status":          string(b.Status),
		"created_by":      b.CreatedBy,
	})
	if err != nil {
		return 0, err
	}
	b.ID = id
	return id, nil
}

func (s *Store) InsertTimeEntry(ctx context.Context, te *models.TimeEntry) (int64, error) {
	id, err := s.insertReturningID(ctx, "time_entries", map[string]interface{}{
		"case_id":           te.CaseID,
		"user_id":           te.UserID,
		"billing_record_id": nullableID(te.BillingRecordID),
		"description":       te.Description,
		"hours":             te.Hours,
		"hourly_rate":       te.HourlyRate,
		"entry_date":        te.EntryDate,
		"billable":          te.Billable,
	})
	if err != nil {
		return 0, err
	}
	te.ID = id
	return id, nil
}

func (s *Store) InsertExpense(ctx context.Context, e *models.Expense) (int64, error) {
	id, err := s.insertReturningID(ctx, "expenses", map[string]interface{}{
		"case_id":           e.CaseID,
		"billing_record_id": nullableID(e.BillingRecordID),
		"category":          e.Category,
		"description":       e.Description,
		"amount":            e.Amount,
		"expense_date":      e.ExpenseDate,
	})
	if err != nil {
		return 0, err
	}
	e.ID = id
	return id, nil
}

func (s *Store) InsertCommunicationLog(ctx context.Context, l *models.CommunicationLog) (int64, error) {
	id, err := s.insertReturningID(ctx, "communication_logs", map[string]interface{}{
		"tenant_id":          l.TenantID,
		"client_id":          l.ClientID,
		"case_id":            nullableID(l.CaseID),
		"user_id":            l.UserID,
		"communication_type": l.CommunicationType,
		"direction":          string(l.Direction),
		"subject":            l.Subject,
		"notes":              l.Notes,
		"communicated_at":    l.CommunicatedAt,
	})
	if err != nil {
		return 0, err
	}
	l.ID = id
	return id, nil
}
