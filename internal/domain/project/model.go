package project

// Project is a codebase tracked for a client. ClientID is nil for unowned projects.
type Project struct {
	ID       int    `json:"id" bson:"id" yaml:"id"`
	ClientID *int   `json:"client_id,omitempty" bson:"client_id,omitempty" yaml:"client_id,omitempty"`
	Name     string `json:"name" bson:"name" yaml:"name"`
}

// Owned reports whether the project references a client.
func (p Project) Owned() bool {
	return p.ClientID != nil
}

// OwnedBy reports whether the project belongs to the given client.
func (p Project) OwnedBy(clientID int) bool {
	return p.ClientID != nil && *p.ClientID == clientID
}
