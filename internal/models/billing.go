package models

import "time"

type BillingStatus string

const (
	BillingStatusDraft         BillingStatus = "draft"
	BillingStatusSent          BillingStatus = "sent"
	BillingStatusPartiallyPaid BillingStatus = "partially_paid"
	BillingStatusPaid          BillingStatus = "paid"
	BillingStatusOverdue       BillingStatus = "overdue"
	BillingStatusCancelled     BillingStatus = "cancelled"
)

func (s BillingStatus) Valid() bool {
	switch s {
	case BillingStatusDraft, BillingStatusSent, BillingStatusPartiallyPaid,
		BillingStatusPaid, BillingStatusOverdue, BillingStatusCancelled:
		return true
	}
	return false
}

// BillingRecord is an invoice for a case. TotalAmount is always Subtotal + GSTAmount.
type BillingRecord struct {
	ID             int64         `json:"id" db:"id"`
	CaseID         int64         `json:"case_id" db:"case_id"`
	ClientID       int64         `json:"client_id" db:"client_id"`
	InvoiceNumber  string        `json:"invoice_number" db:"invoice_number"`
	InvoiceDate    time.Time     `json:"invoice_date" db:"invoice_date"`
	DueDate        time.Time     `json:"due_date" db:"due_date"`
	HoursBilled    float64       `json:"hours_billed" db:"hours_billed"`
	HourlyRate     float64       `json:"hourly_rate" db:"hourly_rate"`
	ExpensesAmount float64       `json:"expenses_amount" db:"expenses_amount"`
	Subtotal       float64       `json:"subtotal" db:"subtotal"`
	GSTRate        float64       `json:"gst_rate" db:"gst_rate"`
	GSTAmount      float64       `json:"gst_amount" db:"gst_amount"`
	TotalAmount    float64       `json:"total_amount" db:"total_amount"`
	PaidAmount     float64       `json:"paid_amount" db:"paid_amount"`
	Status         BillingStatus `json:"status" db:"status"`
	CreatedBy      int64         `json:"created_by" db:"created_by"`
	CreatedAt      time.Time     `json:"created_at" db:"created_at"`
}

type TimeEntry struct {
	ID              int64     `json:"id" db:"id"`
	CaseID          int64     `json:"case_id" db:"case_id"`
	UserID          int64     `json:"user_id" db:"user_id"`
	BillingRecordID *int64    `json:"billing_record_id" db:"billing_record_id"`
	Description     string    `json:"description" db:"description"`
	Hours           float64   `json:"hours" db:"hours"`
	HourlyRate      float64   `json:"hourly_rate" db:"hourly_rate"`
	EntryDate       time.Time `json:"entry_date" db:"entry_date"`
	Billable        bool      `json:"billable" db:"billable"`
	CreatedAt       time.Time `json:"created_at" db:"created_at"`
}

type Expense struct {
	ID              int64     `json:"id" db:"id"`
	CaseID          int64     `json:"case_id" db:"case_id"`
	BillingRecordID *int64    `json:"billing_record_id" db:"billing_record_id"`
	Category        string    `json:"category" db:"category"`
	Description     string    `json:"description" db:"description"`
	Amount          float64   `json:"amount" db:"amount"`
	ExpenseDate     time.Time `json:"expense_date" db:"expense_date"`
	CreatedAt       time.Time `json:"created_at" db:"created_at"`
}
