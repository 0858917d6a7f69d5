package models

import "time"

type CaseStatus string

const (
	CaseStatusOpen       CaseStatus = "open"
	CaseStatusInProgress CaseStatus = "in_progress"
	CaseStatusOnHold     CaseStatus = "on_hold"
	CaseStatusClosed     CaseStatus = "closed"
)

func (s CaseStatus) Valid() bool {
	switch s {
	case CaseStatusOpen, CaseStatusInProgress, CaseStatusOnHold, CaseStatusClosed:
		return true
	}
	return false
}

// Case is a legal matter handled for a client. The table is named cases.
type Case struct {
	ID              int64      `json:"id" db:"id"`
	TenantID        int64      `json:"tenant_id" db:"tenant_id"`
	CaseNumber      string     `json:"case_number" db:"case_number"`
	Title           string     `json:"title" db:"title"`
	Description     string     `json:"description" db:"description"`
	ClientID        int64      `json:"client_id" db:"client_id"`
	CaseType        string     `json:"case_type" db:"case_type"`
	CourtName       string     `json:"court_name" db:"court_name"`
	CourtLocation   string     `json:"court_location" db:"court_location"`
	JudgeName       string     `json:"judge_name" db:"judge_name"`
	OpposingParty   string     `json:"opposing_party" db:"opposing_party"`
	OpposingCounsel string     `json:"opposing_counsel" db:"opposing_counsel"`
	FilingDate      time.Time  `json:"filing_date" db:"filing_date"`
	NextHearingDate *time.Time `json:"next_hearing_date" db:"next_hearing_date"`
	Status          CaseStatus `json:"status" db:"status"`
	Priority        string     `json:"priority" db:"priority"`
	AssignedTo      int64      `json:"assigned_to" db:"assigned_to"`
	CreatedAt       time.Time  `json:"created_at" db:"created_at"`
}
