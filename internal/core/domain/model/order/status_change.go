package order

import "time"

// Tracked field names used in audit entries.
const (
	FieldStatus      = "status"
	FieldRequestedBy = "requested_by"
)

// StatusChange is one audit entry recorded by the aggregate when a tracked
// field changes. CreateOrder-style handlers drain entries via
// TakeStatusChanges and hand them to the audit log collaborator inside the
// same transaction as the state change itself.
type StatusChange struct {
	Field     string
	OldValue  string
	NewValue  string
	ChangedAt time.Time
}
