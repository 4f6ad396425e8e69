package fixture

import (
	"errors"
	"fmt"

	"github.com/rpggio/docseed/internal/domain/client"
	"github.com/rpggio/docseed/internal/domain/counter"
	"github.com/rpggio/docseed/internal/domain/project"
)

// Check reports every inconsistency in the set: repeated ids, project references to
// clients outside the set, and counters that would hand out an id already in use.
// It returns nil when the set can be seeded into empty collections and later extended
// through the counters without collisions.
func (s *Set) Check() error {
	var errs []error

	clientIDs := make(map[int]bool, len(s.Clients))
	for _, c := range s.Clients {
		if clientIDs[c.ID] {
			errs = append(errs, fmt.Errorf("%w: %w: %d", ErrInvalidFixture, client.ErrDuplicateID, c.ID))
		}
		clientIDs[c.ID] = true
	}

	projectIDs := make(map[int]bool, len(s.Projects))
	for _, p := range s.Projects {
		if projectIDs[p.ID] {
			errs = append(errs, fmt.Errorf("%w: %w: %d", ErrInvalidFixture, project.ErrDuplicateID, p.ID))
		}
		projectIDs[p.ID] = true
		if p.ClientID != nil && !clientIDs[*p.ClientID] {
			errs = append(errs, fmt.Errorf("%w: %w: project %d -> client %d",
				ErrInvalidFixture, project.ErrUnknownClient, p.ID, *p.ClientID))
		}
	}

	seen := make(map[string]bool, len(s.Counters))
	for _, c := range s.Counters {
		if seen[c.Name] {
			errs = append(errs, fmt.Errorf("%w: duplicate counter %q", ErrInvalidFixture, c.Name))
		}
		seen[c.Name] = true

		var highest int
		switch c.Name {
		case counter.Clients:
			highest = s.MaxClientID()
		case counter.Projects:
			highest = s.MaxProjectID()
		default:
			errs = append(errs, fmt.Errorf("%w: %w: %q", ErrInvalidFixture, counter.ErrUnknownCounter, c.Name))
			continue
		}
		if c.Seq < highest {
			errs = append(errs, fmt.Errorf("%w: %w: %s seq %d < %d",
				ErrInvalidFixture, counter.ErrSeqTooLow, c.Name, c.Seq, highest))
		}
	}

	return errors.Join(errs...)
}
