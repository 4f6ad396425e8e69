package seed

import (
	"fmt"
	"time"
)

// Result summarizes one seeding run. On failure it still reports the collections
// written before the failing insert.
type Result struct {
	RunID    string        `json:"run_id"`
	Clients  int           `json:"clients"`
	Projects int           `json:"projects"`
	Counters int           `json:"counters"`
	Duration time.Duration `json:"duration"`
}

// Violation is one difference between a collection and the expected fixture.
type Violation struct {
	Collection string `json:"collection"`
	Key        string `json:"key"`
	Message    string `json:"message"`
}

func (v Violation) String() string {
	return fmt.Sprintf("%s[%s]: %s", v.Collection, v.Key, v.Message)
}

// Report is the outcome of reading the collections back.
type Report struct {
	Clients    int         `json:"clients"`
	Projects   int         `json:"projects"`
	Counters   int         `json:"counters"`
	Violations []Violation `json:"violations"`
}

// OK reports whether the store matched the fixture exactly.
func (r *Report) OK() bool {
	return len(r.Violations) == 0
}

func (r *Report) add(collection string, key any, format string, args ...any) {
	r.Violations = append(r.Violations, Violation{
		Collection: collection,
		Key:        fmt.Sprint(key),
		Message:    fmt.Sprintf(format, args...),
	})
}
