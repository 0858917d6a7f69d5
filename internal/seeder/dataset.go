package seeder

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/Lumos-Labs-HQ/lexseed/internal/auth"
	"github.com/Lumos-Labs-HQ/lexseed/internal/models"
)

//go:embed demo.yaml
var demoYAML []byte

// Dataset is the full set of demonstration records for one seed run.
// Users are referenced by role; everything else by index into its list.
type Dataset struct {
	Tenant            TenantSpec             `yaml:"tenant"`
	Users             []UserSpec             `yaml:"users"`
	Clients           []ClientSpec           `yaml:"clients"`
	Cases             []CaseSpec             `yaml:"cases"`
	Tasks             []TaskSpec             `yaml:"tasks"`
	CalendarEvents    []CalendarEventSpec    `yaml:"calendar_events"`
	BillingRecords    []BillingRecordSpec    `yaml:"billing_records"`
	TimeEntries       []TimeEntrySpec        `yaml:"time_entries"`
	Expenses          []ExpenseSpec          `yaml:"expenses"`
	CommunicationLogs []CommunicationLogSpec `yaml:"communication_logs"`
}

type TenantSpec struct {
	Name             string `yaml:"name"`
	Domain           string `yaml:"domain"`
	SubscriptionTier string `yaml:"subscription_tier"`
	MaxUsers         int    `yaml:"max_users"`
}

type UserSpec struct {
	Role      models.Role `yaml:"role"`
	Email     string      `yaml:"email"`
	Password  string      `yaml:"password"`
	FirstName string      `yaml:"first_name"`
	LastName  string      `yaml:"last_name"`
	Phone     string      `yaml:"phone"`
}

type ClientSpec struct {
	ClientType  string              `yaml:"client_type"`
	FirstName   string              `yaml:"first_name"`
	LastName    string              `yaml:"last_name"`
	CompanyName string              `yaml:"company_name"`
	Email       string              `yaml:"email"`
	Phone       string              `yaml:"phone"`
	Address     string              `yaml:"address"`
	City        string              `yaml:"city"`
	State       string              `yaml:"state"`
	PAN         string              `yaml:"pan"`
	Status      models.ClientStatus `yaml:"status"`
	AssignedTo  models.Role         `yaml:"assigned_to"`
	LinkedUser  models.Role         `yaml:"linked_user"`
}

type CaseSpec struct {
	CaseNumber      string            `yaml:"case_number"`
	Title           string            `yaml:"title"`
	Description     string            `yaml:"description"`
	Client          int               `yaml:"client"`
	CaseType        string            `yaml:"case_type"`
	CourtName       string            `yaml:"court_name"`
	CourtLocation   string            `yaml:"court_location"`
	JudgeName       string            `yaml:"judge_name"`
	OpposingParty   string            `yaml:"opposing_party"`
	OpposingCounsel string            `yaml:"opposing_counsel"`
	FilingDate      time.Time         `yaml:"filing_date"`
	NextHearingDate *time.Time        `yaml:"next_hearing_date"`
	Status          models.CaseStatus `yaml:"status"`
	Priority        string            `yaml:"priority"`
	AssignedTo      models.Role       `yaml:"assigned_to"`
}

type TaskSpec struct {
	Title       string            `yaml:"title"`
	Description string            `yaml:"description"`
	Case        *int              `yaml:"case"`
	Client      *int              `yaml:"client"`
	Status      models.TaskStatus `yaml:"status"`
	Priority    string            `yaml:"priority"`
	DueDate     time.Time         `yaml:"due_date"`
	AssignedTo  models.Role       `yaml:"assigned_to"`
	CreatedBy   models.Role       `yaml:"created_by"`
}

type CalendarEventSpec struct {
	Title       string      `yaml:"title"`
	Description string      `yaml:"description"`
	EventType   string      `yaml:"event_type"`
	Location    string      `yaml:"location"`
	User        models.Role `yaml:"user"`
	Case        *int        `yaml:"case"`
	StartTime   time.Time   `yaml:"start_time"`
	EndTime     time.Time   `yaml:"end_time"`
}

type BillingRecordSpec struct {
	InvoiceNumber string               `yaml:"invoice_number"`
	Case          int                  `yaml:"case"`
	Client        int                  `yaml:"client"`
	InvoiceDate   time.Time            `yaml:"invoice_date"`
	DueDate       time.Time            `yaml:"due_date"`
	Hours         float64              `yaml:"hours"`
	HourlyRate    float64              `yaml:"hourly_rate"`
	Expenses      float64              `yaml:"expenses"`
	GSTRate       float64              `yaml:"gst_rate"` // percent
	PaidAmount    float64              `yaml:"paid_amount"`
	Status        models.BillingStatus `yaml:"status"`
	CreatedBy     models.Role          `yaml:"created_by"`
}

type TimeEntrySpec struct {
	Case          int         `yaml:"case"`
	User          models.Role `yaml:"user"`
	BillingRecord *int        `yaml:"billing_record"`
	Description   string      `yaml:"description"`
	Hours         float64     `yaml:"hours"`
	HourlyRate    float64     `yaml:"hourly_rate"`
	EntryDate     time.Time   `yaml:"entry_date"`
	Billable      bool        `yaml:"billable"`
}

type ExpenseSpec struct {
	Case          int       `yaml:"case"`
	BillingRecord *int      `yaml:"billing_record"`
	Category      string    `yaml:"category"`
	Description   string    `yaml:"description"`
	Amount        float64   `yaml:"amount"`
	ExpenseDate   time.Time `yaml:"expense_date"`
}

type CommunicationLogSpec struct {
	Client            int              `yaml:"client"`
	Case              *int             `yaml:"case"`
	User              models.Role      `yaml:"user"`
	CommunicationType string           `yaml:"communication_type"`
	Direction         models.Direction `yaml:"direction"`
	Subject           string           `yaml:"subject"`
	Notes             string           `yaml:"notes"`
	CommunicatedAt    time.Time        `yaml:"communicated_at"`
}

// DefaultDataset returns the embedded demonstration dataset.
func DefaultDataset() (*Dataset, error) {
	return ParseDataset(demoYAML)
}

// LoadDataset reads a dataset from a YAML file.
func LoadDataset(path string) (*Dataset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read dataset %s: %w", path, err)
	}
	return ParseDataset(data)
}

// ParseDataset decodes a YAML dataset. Unknown keys are rejected so a
// misspelt field fails loudly instead of being dropped.
func ParseDataset(data []byte) (*Dataset, error) {
	var ds Dataset

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&ds); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("failed to parse dataset: document is empty")
		}
		return nil, fmt.Errorf("failed to parse dataset: %w", err)
	}
	return &ds, nil
}

// SentinelEmails are the user emails whose presence marks the database as seeded.
func (d *Dataset) SentinelEmails() []string {
	emails := make([]string, 0, len(d.Users))
	for _, u := range d.Users {
		emails = append(emails, u.Email)
	}
	return emails
}

// Validate checks every cross reference in the dataset so that a bad file
// fails before the first statement is sent.
func (d *Dataset) Validate() error {
	var problems []string
	addf := func(format string, args ...interface{}) {
		problems = append(problems, fmt.Sprintf(format, args...))
	}

	if d.Tenant.Name == "" || d.Tenant.Domain == "" {
		addf("tenant: name and domain are required")
	}

	seenRoles := make(map[models.Role]bool)
	for i, u := range d.Users {
		if !u.Role.Valid() {
			addf("users[%d]: unknown role %q", i, u.Role)
			continue
		}
		if seenRoles[u.Role] {
			addf("users[%d]: duplicate role %q", i, u.Role)
		}
		seenRoles[u.Role] = true
		if u.Email == "" || u.Password == "" {
			addf("users[%d]: email and password are required", i)
		}
		if len(u.Password) > auth.MaxPasswordBytes {
			addf("users[%d]: password is %d bytes, longer than the %d bcrypt accepts", i, len(u.Password), auth.MaxPasswordBytes)
		}
	}
	for _, role := range models.Roles {
		if !seenRoles[role] {
			addf("users: missing %s user", role)
		}
	}

	checkRole := func(where string, role models.Role) {
		if !seenRoles[role] {
			addf("%s: no user with role %q", where, role)
		}
	}
	checkIndex := func(where, kind string, idx, n int) {
		if idx < 0 || idx >= n {
			addf("%s: %s index %d out of range (have %d)", where, kind, idx, n)
		}
	}

	for i, c := range d.Clients {
		where := fmt.Sprintf("clients[%d]", i)
		if !c.Status.Valid() {
			addf("%s: unknown status %q", where, c.Status)
		}
		checkRole(where, c.AssignedTo)
		if c.LinkedUser != "" {
			checkRole(where, c.LinkedUser)
		}
	}

	for i, c := range d.Cases {
		where := fmt.Sprintf("cases[%d]", i)
		if c.CaseNumber == "" {
			addf("%s: case_number is required", where)
		}
		if !c.Status.Valid() {
			addf("%s: unknown status %q", where, c.Status)
		}
		checkIndex(where, "client", c.Client, len(d.Clients))
		checkRole(where, c.AssignedTo)
	}

	for i, t := range d.Tasks {
		where := fmt.Sprintf("tasks[%d]", i)
		if t.Case == nil && t.Client == nil {
			addf("%s: needs a case or a client", where)
		}
		if !t.Status.Valid() {
			addf("%s: unknown status %q", where, t.Status)
		}
		if t.Case != nil {
			checkIndex(where, "case", *t.Case, len(d.Cases))
		}
		if t.Client != nil {
			checkIndex(where, "client", *t.Client, len(d.Clients))
		}
		checkRole(where, t.AssignedTo)
		checkRole(where, t.CreatedBy)
	}

	for i, e := range d.CalendarEvents {
		where := fmt.Sprintf("calendar_events[%d]", i)
		checkRole(where, e.User)
		if e.Case != nil {
			checkIndex(where, "case", *e.Case, len(d.Cases))
		}
		if !e.StartTime.Before(e.EndTime) {
			addf("%s: start_time must be before end_time", where)
		}
	}

	for i, b := range d.BillingRecords {
		where := fmt.Sprintf("billing_records[%d]", i)
		checkIndex(where, "case", b.Case, len(d.Cases))
		checkIndex(where, "client", b.Client, len(d.Clients))
		if b.Case >= 0 && b.Case < len(d.Cases) && d.Cases[b.Case].Client != b.Client {
			addf("%s: client %d does not own case %d", where, b.Client, b.Case)
		}
		checkRole(where, b.CreatedBy)
		if !b.Status.Valid() {
			addf("%s: unknown status %q", where, b.Status)
		}
		if b.Hours < 0 || b.HourlyRate < 0 || b.Expenses < 0 || b.GSTRate < 0 {
			addf("%s: amounts must not be negative", where)
		}
		totals := ComputeTotals(b.Hours, b.HourlyRate, b.Expenses, b.GSTRate)
		if b.PaidAmount < 0 || b.PaidAmount > totals.Total {
			addf("%s: paid_amount %.2f exceeds total %.2f", where, b.PaidAmount, totals.Total)
		}
	}

	for i, te := range d.TimeEntries {
		where := fmt.Sprintf("time_entries[%d]", i)
		checkIndex(where, "case", te.Case, len(d.Cases))
		checkRole(where, te.User)
		if te.BillingRecord != nil {
			checkIndex(where, "billing_record", *te.BillingRecord, len(d.BillingRecords))
		}
	}

	for i, e := range d.Expenses {
		where := fmt.Sprintf("expenses[%d]", i)
		checkIndex(where, "case", e.Case, len(d.Cases))
		if e.BillingRecord != nil {
			checkIndex(where, "billing_record", *e.BillingRecord, len(d.BillingRecords))
		}
	}

	for i, l := range d.CommunicationLogs {
		where := fmt.Sprintf("communication_logs[%d]", i)
		checkIndex(where, "client", l.Client, len(d.Clients))
		if l.Case != nil {
			checkIndex(where, "case", *l.Case, len(d.Cases))
		}
		checkRole(where, l.User)
		if l.Direction != models.DirectionIncoming && l.Direction != models.DirectionOutgoing {
			addf("%s: direction must be incoming or outgoing, got %q", where, l.Direction)
		}
	}

	if len(problems) > 0 {
		return fmt.Errorf("invalid dataset:\n  - %s", strings.Join(problems, "\n  - "))
	}
	return nil
}

// Totals are the money fields of a billing record, rounded to paise.
type Totals struct {
	Subtotal  float64
	GSTAmount float64
	Total     float64
}

// ComputeTotals derives subtotal = hours*rate + expenses, GST at gstRate
// percent, and total = subtotal + GST.
func ComputeTotals(hours, rate, expenses, gstRate float64) Totals {
	subtotal := round2(hours*rate + expenses)
	gst := round2(subtotal * gstRate / 100)
	return Totals{
		Subtotal:  subtotal,
		GSTAmount: gst,
		Total:     round2(subtotal + gst),
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
