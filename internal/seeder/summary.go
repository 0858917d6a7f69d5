package seeder

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

// PrintSummary writes the per-table tally and the demo login credentials.
func PrintSummary(w io.Writer, r *Result) {
	if r == nil {
		return
	}

	cyan := color.New(color.FgCyan, color.Bold)
	green := color.New(color.FgGreen)
	yellow := color.New(color.FgYellow)

	if r.Status == StatusAlreadySeeded {
		yellow.Fprintf(w, "\n⚠️  Database already seeded, nothing was inserted\n")
		for _, email := range r.ExistingEmails {
			fmt.Fprintf(w, "   • %s\n", email)
		}
		return
	}

	cyan.Fprintf(w, "\n📊 Seed summary (run %s)\n", r.RunID)
	fmt.Fprintln(w, strings.Repeat("─", 40))
	for _, c := range r.Counts {
		fmt.Fprintf(w, "  %-22s %5d\n", c.Stage, c.Rows)
	}
	fmt.Fprintln(w, strings.Repeat("─", 40))
	green.Fprintf(w, "  %-22s %5d\n", "total", r.Total())
	if r.TenantReused {
		yellow.Fprintf(w, "  ♻️  reused tenant id %d\n", r.TenantID)
	}

	if len(r.Credentials) == 0 {
		return
	}

	cyan.Fprintf(w, "\n🔑 Demo credentials\n")
	for _, c := range r.Credentials {
		fmt.Fprintf(w, "  %-10s %-28s %s\n", c.Role, c.Email, c.Password)
	}
}

// PrintPlan writes a dry-run plan.
func PrintPlan(w io.Writer, plan []PlannedStage) {
	color.New(color.FgCyan, color.Bold).Fprintf(w, "📋 Seed plan (dry run, nothing will be written)\n")

	total := 0
	for i, p := range plan {
		deps := "-"
		if len(p.DependsOn) > 0 {
			deps = strings.Join(p.DependsOn, ", ")
		}
		fmt.Fprintf(w, "  %2d. %-22s %3d row(s)   after: %s\n", i+1, p.Stage, p.Rows, deps)
		total += p.Rows
	}
	color.New(color.FgGreen).Fprintf(w, "  %d stage(s), %d row(s)\n", len(plan), total)
}
