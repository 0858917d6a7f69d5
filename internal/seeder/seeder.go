package seeder

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Lumos-Labs-HQ/lexseed/internal/auth"
	"github.com/Lumos-Labs-HQ/lexseed/internal/logger"
	"github.com/Lumos-Labs-HQ/lexseed/internal/store"
)

// Seeder populates an empty database with the demonstration dataset. Stages
// run strictly one after another because children need their parents' ids.
// There is no transaction around the run: a failure leaves earlier rows behind.
type Seeder struct {
	store   *store.Store
	hasher  auth.Hasher
	dataset *Dataset
	out     io.Writer
	log     *zap.Logger
}

type Option func(*Seeder)

func WithHasher(h auth.Hasher) Option {
	return func(s *Seeder) { s.hasher = h }
}

func WithDataset(ds *Dataset) Option {
	return func(s *Seeder) { s.dataset = ds }
}

// WithOutput sets where progress narration is written (stdout by default).
func WithOutput(w io.Writer) Option {
	return func(s *Seeder) { s.out = w }
}

func WithLogger(l *zap.Logger) Option {
	return func(s *Seeder) { s.log = l }
}

func New(st *store.Store, opts ...Option) *Seeder {
	s := &Seeder{
		store: st,
		out:   os.Stdout,
		log:   logger.Nop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.hasher == nil {
		s.hasher = auth.NewDefaultHasher()
	}
	return s
}

// Run seeds the database. A database that already holds any of the demo
// users is left untouched and reported as StatusAlreadySeeded. On failure
// the returned Result still lists what was created before the error.
func (s *Seeder) Run(ctx context.Context) (*Result, error) {
	start := time.Now()
	result := &Result{RunID: uuid.NewString()}
	log := s.log.With(zap.String("run_id", result.RunID))

	ds, graph, order, err := s.prepare()
	if err != nil {
		return nil, err
	}

	s.printf(color.FgCyan, "🌱 Starting database seeding...")
	s.printf(color.FgCyan, "📋 Insertion order: %s", strings.Join(order, " → "))
	log.Info("seed started", zap.String("tenant_domain", ds.Tenant.Domain), zap.Strings("order", order))

	tenantID, tenantFound, err := s.store.FindTenantByDomain(ctx, ds.Tenant.Domain)
	if err != nil {
		return nil, err
	}

	existing, err := s.store.ExistingEmails(ctx, ds.SentinelEmails())
	if err != nil {
		return nil, err
	}
	if len(existing) > 0 {
		result.Status = StatusAlreadySeeded
		result.TenantID = tenantID
		result.TenantReused = tenantFound
		result.ExistingEmails = existing
		result.Duration = time.Since(start)

		s.printf(color.FgYellow, "⚠️  Seed data already present (%s), skipping", strings.Join(existing, ", "))
		log.Info("seed skipped", zap.Strings("existing_emails", existing))
		return result, nil
	}

	st := newRunState()
	if tenantFound {
		st.tenantID = tenantID
		st.tenantReused = true
		s.printf(color.FgYellow, "♻️  Reusing existing tenant %s (id %d)", ds.Tenant.Domain, tenantID)
	}

	fmt.Fprintln(s.out)
	for _, name := range order {
		stage := graph.Stage(name)
		for _, dep := range stage.DependsOn {
			if !st.done[dep] {
				return result, fmt.Errorf("seed %s: parent stage %s has not run", name, dep)
			}
		}

		s.printf(color.FgCyan, "  📝 Seeding %s...", name)
		n, err := stage.Run(ctx, st)
		result.TenantID = st.tenantID
		result.TenantReused = st.tenantReused
		result.Credentials = st.credentials
		if n > 0 || err == nil {
			result.Counts = append(result.Counts, StageCount{Stage: name, Rows: n})
		}
		if err != nil {
			result.Duration = time.Since(start)
			s.printf(color.FgRed, "  ❌ %s failed after %d row(s): %v", name, n, err)
			log.Error("seed stage failed", zap.String("stage", name), zap.Int("rows", n), zap.Error(err))
			return result, fmt.Errorf("seed %s: %w", name, err)
		}

		st.done[name] = true
		s.printf(color.FgGreen, "  ✅ %s: %d created", name, n)
		log.Debug("seed stage complete", zap.String("stage", name), zap.Int("rows", n))
	}

	result.Status = StatusSeeded
	result.Duration = time.Since(start)

	s.printf(color.FgGreen, "\n✅ Database seeding completed successfully!")
	log.Info("seed completed", zap.Int("rows", result.Total()), zap.Duration("duration", result.Duration))
	return result, nil
}

// Plan validates the dataset and returns the stages in execution order with
// the number of rows each would insert. It does not touch the database.
func (s *Seeder) Plan() ([]PlannedStage, error) {
	_, graph, order, err := s.prepare()
	if err != nil {
		return nil, err
	}

	plan := make([]PlannedStage, 0, len(order))
	for _, name := range order {
		stage := graph.Stage(name)
		plan = append(plan, PlannedStage{
			Stage:     name,
			DependsOn: stage.DependsOn,
			Rows:      stage.Rows,
		})
	}
	return plan, nil
}

func (s *Seeder) prepare() (*Dataset, *StageGraph, []string, error) {
	ds := s.dataset
	if ds == nil {
		var err error
		ds, err = DefaultDataset()
		if err != nil {
			return nil, nil, nil, err
		}
	}

	if err := ds.Validate(); err != nil {
		return nil, nil, nil, err
	}

	graph, err := s.buildGraph(ds)
	if err != nil {
		return nil, nil, nil, err
	}

	order, err := graph.BuildInsertionOrder()
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to build insertion order: %w", err)
	}

	return ds, graph, order, nil
}

func (s *Seeder) printf(attr color.Attribute, format string, args ...interface{}) {
	color.New(attr).Fprintf(s.out, format+"\n", args...)
}
