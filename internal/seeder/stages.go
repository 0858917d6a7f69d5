package seeder

import (
	"context"
	"fmt"

	"github.com/fatih/color"

	"github.com/Lumos-Labs-HQ/lexseed/internal/models"
)

// buildGraph registers one stage per table. DependsOn mirrors the foreign
// keys each stage writes.
func (s *Seeder) buildGraph(ds *Dataset) (*StageGraph, error) {
	graph := NewStageGraph()

	stages := []*Stage{
		{
			Name: StageTenants,
			Rows: 1,
			Run:  func(ctx context.Context, st *runState) (int, error) { return s.seedTenant(ctx, ds, st) },
		},
		{
			Name:      StageUsers,
			DependsOn: []string{StageTenants},
			Rows:      len(ds.Users),
			Run:       func(ctx context.Context, st *runState) (int, error) { return s.seedUsers(ctx, ds, st) },
		},
		{
			Name:      StageClients,
			DependsOn: []string{StageTenants, StageUsers},
			Rows:      len(ds.Clients),
			Run:       func(ctx context.Context, st *runState) (int, error) { return s.seedClients(ctx, ds, st) },
		},
		{
			Name:      StageCases,
			DependsOn: []string{StageTenants, StageClients, StageUsers},
			Rows:      len(ds.Cases),
			Run:       func(ctx context.Context, st *runState) (int, error) { return s.seedCases(ctx, ds, st) },
		},
		{
			Name:      StageTasks,
			DependsOn: []string{StageCases, StageClients, StageUsers},
			Rows:      len(ds.Tasks),
			Run:       func(ctx context.Context, st *runState) (int, error) { return s.seedTasks(ctx, ds, st) },
		},
		{
			Name:      StageCalendarEvents,
			DependsOn: []string{StageUsers, StageCases},
			Rows:      len(ds.CalendarEvents),
			Run:       func(ctx context.Context, st *runState) (int, error) { return s.seedCalendarEvents(ctx, ds, st) },
		},
		{
			Name:      StageBillingRecords,
			DependsOn: []string{StageCases, StageClients, StageUsers},
			Rows:      len(ds.BillingRecords),
			Run:       func(ctx context.Context, st *runState) (int, error) { return s.seedBillingRecords(ctx, ds, st) },
		},
		{
			Name:      StageTimeEntries,
			DependsOn: []string{StageCases, StageUsers, StageBillingRecords},
			Rows:      len(ds.TimeEntries),
			Run:       func(ctx context.Context, st *runState) (int, error) { return s.seedTimeEntries(ctx, ds, st) },
		},
		{
			Name:      StageExpenses,
			DependsOn: []string{StageCases, StageBillingRecords},
			Rows:      len(ds.Expenses),
			Run:       func(ctx context.Context, st *runState) (int, error) { return s.seedExpenses(ctx, ds, st) },
		},
		{
			Name:      StageCommunicationLogs,
			DependsOn: []string{StageTenants, StageClients, StageCases, StageUsers},
			Rows:      len(ds.CommunicationLogs),
			Run:       func(ctx context.Context, st *runState) (int, error) { return s.seedCommunicationLogs(ctx, ds, st) },
		},
	}

	for _, stage := range stages {
		if err := graph.AddStage(stage); err != nil {
			return nil, err
		}
	}
	return graph, nil
}

func (s *Seeder) seedTenant(ctx context.Context, ds *Dataset, st *runState) (int, error) {
	if st.tenantReused {
		return 0, nil
	}

	tenant := &models.Tenant{
		Name:             ds.Tenant.Name,
		Domain:           ds.Tenant.Domain,
		SubscriptionTier: ds.Tenant.SubscriptionTier,
		MaxUsers:         ds.Tenant.MaxUsers,
	}
	id, err := s.store.InsertTenant(ctx, tenant)
	if err != nil {
		return 0, err
	}
	st.tenantID = id
	return 1, nil
}

func (s *Seeder) seedUsers(ctx context.Context, ds *Dataset, st *runState) (int, error) {
	created := 0
	for _, spec := range ds.Users {
		hash, err := s.hasher.Hash(spec.Password)
		if err != nil {
			return created, fmt.Errorf("hash password for %s: %w", spec.Email, err)
		}

		user := &models.User{
			TenantID:     st.tenantID,
			Email:        spec.Email,
			PasswordHash: hash,
			FirstName:    spec.FirstName,
			LastName:     spec.LastName,
			Role:         spec.Role,
			Phone:        spec.Phone,
			IsActive:     true,
		}
		id, err := s.store.InsertUser(ctx, user)
		if err != nil {
			return created, err
		}

		created++
		st.userIDs[spec.Role] = id
		st.credentials = append(st.credentials, Credential{Role: spec.Role, Email: spec.Email, Password: spec.Password})
		s.printf(color.FgWhite, "     👤 %s (%s)", spec.Email, spec.Role)
	}
	return created, nil
}

func (s *Seeder) seedClients(ctx context.Context, ds *Dataset, st *runState) (int, error) {
	created := 0
	for _, spec := range ds.Clients {
		client := &models.Client{
			TenantID:    st.tenantID,
			ClientType:  spec.ClientType,
			FirstName:   spec.FirstName,
			LastName:    spec.LastName,
			CompanyName: spec.CompanyName,
			Email:       spec.Email,
			Phone:       spec.Phone,
			Address:     spec.Address,
			City:        spec.City,
			State:       spec.State,
			PAN:         spec.PAN,
			Status:      spec.Status,
			AssignedTo:  st.userIDs[spec.AssignedTo],
		}
		if spec.LinkedUser != "" {
			userID := st.userIDs[spec.LinkedUser]
			client.UserID = &userID
		}

		id, err := s.store.InsertClient(ctx, client)
		if err != nil {
			return created, err
		}
		created++
		st.clientIDs = append(st.clientIDs, id)
	}
	return created, nil
}

func (s *Seeder) seedCases(ctx context.Context, ds *Dataset, st *runState) (int, error) {
	created := 0
	for _, spec := range ds.Cases {
		c := &models.Case{
			TenantID:        st.tenantID,
			CaseNumber:      spec.CaseNumber,
			Title:           spec.Title,
			Description:     spec.Description,
			ClientID:        st.clientIDs[spec.Client],
			CaseType:        spec.CaseType,
			CourtName:       spec.CourtName,
			CourtLocation:   spec.CourtLocation,
			JudgeName:       spec.JudgeName,
			OpposingParty:   spec.OpposingParty,
			OpposingCounsel: spec.OpposingCounsel,
			FilingDate:      spec.FilingDate,
			NextHearingDate: spec.NextHearingDate,
			Status:          spec.Status,
			Priority:        spec.Priority,
			AssignedTo:      st.userIDs[spec.AssignedTo],
		}

		id, err := s.store.InsertCase(ctx, c)
		if err != nil {
			return created, err
		}
		created++
		st.caseIDs = append(st.caseIDs, id)
	}
	return created, nil
}

func (s *Seeder) seedTasks(ctx context.Context, ds *Dataset, st *runState) (int, error) {
	created := 0
	for _, spec := range ds.Tasks {
		task := &models.Task{
			CaseID:      ref(st.caseIDs, spec.Case),
			ClientID:    ref(st.clientIDs, spec.Client),
			Title:       spec.Title,
			Description: spec.Description,
			Status:      spec.Status,
			Priority:    spec.Priority,
			DueDate:     spec.DueDate,
			AssignedTo:  st.userIDs[spec.AssignedTo],
			CreatedBy:   st.userIDs[spec.CreatedBy],
		}

		if _, err := s.store.InsertTask(ctx, task); err != nil {
			return created, err
		}
		created++
	}
	return created, nil
}

func (s *Seeder) seedCalendarEvents(ctx context.Context, ds *Dataset, st *runState) (int, error) {
	created := 0
	for _, spec := range ds.CalendarEvents {
		event := &models.CalendarEvent{
			UserID:      st.userIDs[spec.User],
			CaseID:      ref(st.caseIDs, spec.Case),
			Title:       spec.Title,
			Description: spec.Description,
			EventType:   spec.EventType,
			Location:    spec.Location,
			StartTime:   spec.StartTime,
			EndTime:     spec.EndTime,
		}

		if _, err := s.store.InsertCalendarEvent(ctx, event); err != nil {
			return created, err
		}
		created++
	}
	return created, nil
}

func (s *Seeder) seedBillingRecords(ctx context.Context, ds *Dataset, st *runState) (int, error) {
	created := 0
	for _, spec := range ds.BillingRecords {
		totals := ComputeTotals(spec.Hours, spec.HourlyRate, spec.Expenses, spec.GSTRate)

		record := &models.BillingRecord{
			CaseID:         st.caseIDs[spec.Case],
			ClientID:       st.clientIDs[spec.Client],
			InvoiceNumber:  spec.InvoiceNumber,
			InvoiceDate:    spec.InvoiceDate,
			DueDate:        spec.DueDate,
			HoursBilled:    spec.Hours,
			HourlyRate:     spec.HourlyRate,
			ExpensesAmount: spec.Expenses,
			Subtotal:       totals.Subtotal,
			GSTRate:        spec.GSTRate,
			GSTAmount:      totals.GSTAmount,
			TotalAmount:    totals.Total,
			PaidAmount:     spec.PaidAmount,
			Status:         spec.Status,
			CreatedBy:      st.userIDs[spec.CreatedBy],
		}

		id, err := s.store.InsertBillingRecord(ctx, record)
		if err != nil {
			return created, err
		}
		created++
		st.billingIDs = append(st.billingIDs, id)
		s.printf(color.FgWhite, "     🧾 %s: %.2f + %.2f GST = %.2f", spec.InvoiceNumber, totals.Subtotal, totals.GSTAmount, totals.Total)
	}
	return created, nil
}

func (s *Seeder) seedTimeEntries(ctx context.Context, ds *Dataset, st *runState) (int, error) {
	created := 0
	for _, spec := range ds.TimeEntries {
		entry := &models.TimeEntry{
			CaseID:          st.caseIDs[spec.Case],
			UserID:          st.userIDs[spec.User],
			BillingRecordID: ref(st.billingIDs, spec.BillingRecord),
			Description:     spec.Description,
			Hours:           spec.Hours,
			HourlyRate:      spec.HourlyRate,
			EntryDate:       spec.EntryDate,
			Billable:        spec.Billable,
		}

		if _, err := s.store.InsertTimeEntry(ctx, entry); err != nil {
			return created, err
		}
		created++
	}
	return created, nil
}

func (s *Seeder) seedExpenses(ctx context.Context, ds *Dataset, st *runState) (int, error) {
	created := 0
	for _, spec := range ds.Expenses {
		expense := &models.Expense{
			CaseID:          st.caseIDs[spec.Case],
			BillingRecordID: ref(st.billingIDs, spec.BillingRecord),
			Category:        spec.Category,
			Description:     spec.Description,
			Amount:          spec.Amount,
			ExpenseDate:     spec.ExpenseDate,
		}

		if _, err := s.store.InsertExpense(ctx, expense); err != nil {
			return created, err
		}
		created++
	}
	return created, nil
}

func (s *Seeder) seedCommunicationLogs(ctx context.Context, ds *Dataset, st *runState) (int, error) {
	created := 0
	for _, spec := range ds.CommunicationLogs {
		entry := &models.CommunicationLog{
			TenantID:          st.tenantID,
			ClientID:          st.clientIDs[spec.Client],
			CaseID:            ref(st.caseIDs, spec.Case),
			UserID:            st.userIDs[spec.User],
			CommunicationType: spec.CommunicationType,
			Direction:         spec.Direction,
			Subject:           spec.Subject,
			Notes:             spec.Notes,
			CommunicatedAt:    spec.CommunicatedAt,
		}

		if _, err := s.store.InsertCommunicationLog(ctx, entry); err != nil {
			return created, err
		}
		created++
	}
	return created, nil
}
