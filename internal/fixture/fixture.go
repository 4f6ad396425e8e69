// Package fixture holds the client, project and counter records loaded into a fresh
// document store.
package fixture

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"

	"github.com/rpggio/docseed/internal/domain/client"
	"github.com/rpggio/docseed/internal/domain/counter"
	"github.com/rpggio/docseed/internal/domain/project"
	"gopkg.in/yaml.v3"
)

//go:embed fixtures.yaml
var embedded []byte

// ErrInvalidFixture wraps every problem reported by Check and Load.
var ErrInvalidFixture = errors.New("invalid fixture")

// Set is one batch of documents per collection.
type Set struct {
	Clients  []client.Client   `json:"clients" yaml:"clients"`
	Projects []project.Project `json:"projects" yaml:"projects"`
	Counters []counter.Counter `json:"counters" yaml:"counters"`
}

var defaultSet = mustDecode(embedded)

// Default returns a copy of the embedded fixture set.
func Default() *Set {
	return defaultSet.Clone()
}

// Raw returns the embedded fixture file.
func Raw() []byte {
	return bytes.Clone(embedded)
}

// Load decodes a fixture set from YAML. Unknown fields are rejected.
func Load(r io.Reader) (*Set, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var set Set
	if err := dec.Decode(&set); err != nil {
		return nil, fmt.Errorf("%w: decode: %w", ErrInvalidFixture, err)
	}
	return &set, nil
}

func mustDecode(data []byte) *Set {
	set, err := Load(bytes.NewReader(data))
	if err != nil {
		panic(err)
	}
	return set
}

// Clone deep-copies the set, including project client references.
func (s *Set) Clone() *Set {
	out := &Set{
		Clients:  append([]client.Client(nil), s.Clients...),
		Projects: make([]project.Project, len(s.Projects)),
		Counters: append([]counter.Counter(nil), s.Counters...),
	}
	for i, p := range s.Projects {
		if p.ClientID != nil {
			id := *p.ClientID
			p.ClientID = &id
		}
		out.Projects[i] = p
	}
	return out
}

// ClientIDs returns client ids in set order.
func (s *Set) ClientIDs() []int {
	ids := make([]int, 0, len(s.Clients))
	for _, c := range s.Clients {
		ids = append(ids, c.ID)
	}
	return ids
}

// ProjectIDs returns project ids in set order.
func (s *Set) ProjectIDs() []int {
	ids := make([]int, 0, len(s.Projects))
	for _, p := range s.Projects {
		ids = append(ids, p.ID)
	}
	return ids
}

// MaxClientID returns the highest client id, or 0 for an empty set.
func (s *Set) MaxClientID() int {
	return maxOf(s.ClientIDs())
}

// MaxProjectID returns the highest project id, or 0 for an empty set.
func (s *Set) MaxProjectID() int {
	return maxOf(s.ProjectIDs())
}

// Counter returns the counter with the given name.
func (s *Set) Counter(name string) (counter.Counter, bool) {
	for _, c := range s.Counters {
		if c.Name == name {
			return c, true
		}
	}
	return counter.Counter{}, false
}

func maxOf(ids []int) int {
	m := 0
	for _, id := range ids {
		m = max(m, id)
	}
	return m
}
