package seed

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/rpggio/docseed/internal/domain/client"
	"github.com/rpggio/docseed/internal/domain/counter"
	"github.com/rpggio/docseed/internal/domain/project"
	"github.com/rpggio/docseed/internal/fixture"
	"github.com/rpggio/docseed/internal/repository"
)

// Service loads fixture sets into a Store and checks them afterwards.
type Service struct {
	store  Store
	logger *slog.Logger
}

// NewService creates a new seed service.
func NewService(store Store, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Service{store: store, logger: logger}
}

// Run seeds the embedded fixture set.
func (s *Service) Run(ctx context.Context) (*Result, error) {
	return s.RunSet(ctx, fixture.Default())
}

// RunSet inserts clients, then projects, then counters, one bulk insert each.
// The first failure stops the run; collections already written stay written.
func (s *Service) RunSet(ctx context.Context, set *fixture.Set) (*Result, error) {
	if set == nil {
		return nil, ErrNilFixture
	}

	start := time.Now()
	res := &Result{RunID: uuid.NewString()}
	logger := s.logger.With("run_id", res.RunID)
	logger.Info("seeding started",
		"clients", len(set.Clients),
		"projects", len(set.Projects),
		"counters", len(set.Counters))

	if err := s.store.InsertClients(ctx, set.Clients); err != nil {
		return s.fail(logger, res, start, repository.CollectionClients, err)
	}
	res.Clients = len(set.Clients)

	if err := s.store.InsertProjects(ctx, set.Projects); err != nil {
		return s.fail(logger, res, start, repository.CollectionProjects, err)
	}
	res.Projects = len(set.Projects)

	if err := s.store.InsertCounters(ctx, set.Counters); err != nil {
		return s.fail(logger, res, start, repository.CollectionCounters, err)
	}
	res.Counters = len(set.Counters)

	res.Duration = time.Since(start)
	logger.Info("seeding finished", "duration", res.Duration)
	return res, nil
}

func (s *Service) fail(logger *slog.Logger, res *Result, start time.Time, collection string, err error) (*Result, error) {
	res.Duration = time.Since(start)
	logger.Error("seeding failed", "collection", collection, "error", err)
	return res, fmt.Errorf("seeding %s: %w", collection, err)
}

// Verify compares the store with the embedded fixture set.
func (s *Service) Verify(ctx context.Context) (*Report, error) {
	return s.VerifySet(ctx, fixture.Default())
}

// VerifySet reads every collection back and reports how it differs from set:
// missing, unexpected or altered documents, projects pointing at absent clients,
// and counters that would reissue a stored id.
func (s *Service) VerifySet(ctx context.Context, set *fixture.Set) (*Report, error) {
	if set == nil {
		return nil, ErrNilFixture
	}

	clients, err := s.store.ListClients(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing clients: %w", err)
	}
	projects, err := s.store.ListProjects(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing projects: %w", err)
	}
	counters, err := s.store.ListCounters(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing counters: %w", err)
	}

	report := &Report{
		Clients:  len(clients),
		Projects: len(projects),
		Counters: len(counters),
	}
	compareClients(report, set.Clients, clients)
	compareProjects(report, set.Projects, projects, clients)
	compareCounters(report, set.Counters, counters, clients, projects)

	s.logger.Info("verification finished",
		"clients", report.Clients,
		"projects", report.Projects,
		"counters", report.Counters,
		"violations", len(report.Violations))
	return report, nil
}

// NextID hands out the next id for clients or projects.
func (s *Service) NextID(ctx context.Context, name string) (int, error) {
	if !counter.Known(name) {
		return 0, fmt.Errorf("%w: %q", counter.ErrUnknownCounter, name)
	}
	id, err := s.store.NextID(ctx, name)
	if err != nil {
		return 0, fmt.Errorf("allocating %s id: %w", name, err)
	}
	s.logger.Debug("id allocated", "counter", name, "id", id)
	return id, nil
}

func compareClients(r *Report, want, got []client.Client) {
	const coll = repository.CollectionClients

	stored := make(map[int]client.Client, len(got))
	for _, c := range got {
		stored[c.ID] = c
	}
	expected := make(map[int]bool, len(want))
	for _, w := range want {
		expected[w.ID] = true
		c, ok := stored[w.ID]
		switch {
		case !ok:
			r.add(coll, w.ID, "missing")
		case c.Name != w.Name:
			r.add(coll, w.ID, "name %q, want %q", c.Name, w.Name)
		case c.Settings != w.Settings:
			r.add(coll, w.ID, "code_scan_interval %d, want %d", c.Settings.CodeScanInterval, w.Settings.CodeScanInterval)
		}
	}
	for _, c := range got {
		if !expected[c.ID] {
			r.add(coll, c.ID, "unexpected document")
		}
	}
}

func compareProjects(r *Report, want, got []project.Project, clients []client.Client) {
	const coll = repository.CollectionProjects

	stored := make(map[int]project.Project, len(got))
	for _, p := range got {
		stored[p.ID] = p
	}
	expected := make(map[int]bool, len(want))
	for _, w := range want {
		expected[w.ID] = true
		p, ok := stored[w.ID]
		switch {
		case !ok:
			r.add(coll, w.ID, "missing")
		case p.Name != w.Name:
			r.add(coll, w.ID, "name %q, want %q", p.Name, w.Name)
		case !sameOwner(p.ClientID, w.ClientID):
			r.add(coll, w.ID, "client_id %s, want %s", ownerString(p.ClientID), ownerString(w.ClientID))
		}
	}

	clientIDs := make(map[int]bool, len(clients))
	for _, c := range clients {
		clientIDs[c.ID] = true
	}
	for _, p := range got {
		if !expected[p.ID] {
			r.add(coll, p.ID, "unexpected document")
		}
		if p.ClientID != nil && !clientIDs[*p.ClientID] {
			r.add(coll, p.ID, "client_id %d has no client", *p.ClientID)
		}
	}
}

func compareCounters(r *Report, want, got []counter.Counter, clients []client.Client, projects []project.Project) {
	const coll = repository.CollectionCounters

	stored := make(map[string]counter.Counter, len(got))
	for _, c := range got {
		stored[c.Name] = c
	}
	expected := make(map[string]bool, len(want))
	for _, w := range want {
		expected[w.Name] = true
		c, ok := stored[w.Name]
		switch {
		case !ok:
			r.add(coll, w.Name, "missing")
		case c.Seq != w.Seq:
			r.add(coll, w.Name, "seq %d, want %d", c.Seq, w.Seq)
		}
	}

	highest := map[string]int{}
	for _, c := range clients {
		highest[counter.Clients] = max(highest[counter.Clients], c.ID)
	}
	for _, p := range projects {
		highest[counter.Projects] = max(highest[counter.Projects], p.ID)
	}
	for _, c := range got {
		if !expected[c.Name] {
			r.add(coll, c.Name, "unexpected document")
		}
		if top, ok := highest[c.Name]; ok && c.Seq <= top {
			r.add(coll, c.Name, "seq %d does not exceed highest id %d", c.Seq, top)
		}
	}
}

func sameOwner(a, b *int) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}

func ownerString(id *int) string {
	if id == nil {
		return "<none>"
	}
	return fmt.Sprint(*id)
}
