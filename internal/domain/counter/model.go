package counter

// Names of the sequences kept in the counters collection.
const (
	Clients  = "clients"
	Projects = "projects"
)

// Counter tracks the last id handed out for an entity type.
type Counter struct {
	Name string `json:"_id" bson:"_id" yaml:"_id"`
	Seq  int    `json:"seq" bson:"seq" yaml:"seq"`
}

// Known reports whether name is one of the sequences the seeder manages.
func Known(name string) bool {
	return name == Clients || name == Projects
}
