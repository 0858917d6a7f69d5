package seeder

import (
	"time"

	"github.com/Lumos-Labs-HQ/lexseed/internal/models"
)

type Status string

const (
	StatusSeeded        Status = "seeded"
	StatusAlreadySeeded Status = "already_seeded"
)

// Stage names double as table names.
const (
	StageTenants           = "tenants"
	StageUsers             = "users"
	StageClients           = "clients"
	StageCases             = "cases"
	StageTasks             = "tasks"
	StageCalendarEvents    = "calendar_events"
	StageBillingRecords    = "billing_records"
	StageTimeEntries       = "time_entries"
	StageExpenses          = "expenses"
	StageCommunicationLogs = "communication_logs"
)

// Tables lists the seeded tables parents-first.
var Tables = []string{
	StageTenants,
	StageUsers,
	StageClients,
	StageCases,
	StageTasks,
	StageCalendarEvents,
	StageBillingRecords,
	StageTimeEntries,
	StageExpenses,
	StageCommunicationLogs,
}

type StageCount struct {
	Stage string
	Rows  int
}

type Credential struct {
	Role     models.Role
	Email    string
	Password string
}

// Result describes a finished (or aborted) seed run.
type Result struct {
	RunID          string
	Status         Status
	TenantID       int64
	TenantReused   bool
	ExistingEmails []string
	Counts         []StageCount
	Credentials    []Credential
	Duration       time.Duration
}

// Count returns the rows created by stage.
func (r *Result) Count(stage string) int {
	for _, c := range r.Counts {
		if c.Stage == stage {
			return c.Rows
		}
	}
	return 0
}

func (r *Result) Total() int {
	total := 0
	for _, c := range r.Counts {
		total += c.Rows
	}
	return total
}

// PlannedStage is one line of a dry-run plan.
type PlannedStage struct {
	Stage     string
	DependsOn []string
	Rows      int
}

// runState carries the identifiers produced by earlier stages.
type runState struct {
	tenantID     int64
	tenantReused bool
	userIDs      map[models.Role]int64
	clientIDs    []int64
	caseIDs      []int64
	billingIDs   []int64
	credentials  []Credential
	done         map[string]bool
}

func newRunState() *runState {
	return &runState{
		userIDs: make(map[models.Role]int64),
		done:    make(map[string]bool),
	}
}

// ref resolves an optional index into ids.
func ref(ids []int64, idx *int) *int64 {
	if idx == nil {
		return nil
	}
	id := ids[*idx]
	return &id
}
