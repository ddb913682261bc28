package entities

import "time"

const RoleAdmin = "admin"

// Actor is the authenticated caller of a use case.
type Actor struct {
	ID    string
	Name  string
	Email string
	Role  string
}

func (a Actor) IsAdmin() bool {
	return a.Role == RoleAdmin
}

// ActivityEntry is one status change of any marketplace entity, kept for audit.
type ActivityEntry struct {
	RelatedID   string    `json:"relatedId"`
	RelatedType string    `json:"relatedType"`
	OldStatus   string    `json:"oldStatus"`
	NewStatus   string    `json:"newStatus"`
	ChangedBy   string    `json:"changedBy"`
	Note        string    `json:"note"`
	Timestamp   time.Time `json:"timestamp"`
}
