package events

import "time"

const EmployeeCreatedTopic = "orgadmin.employee.created"

// EmployeeCreatedEvent is appended to the outbox in the same transaction
// that inserts the employee row.
type EmployeeCreatedEvent struct {
	EventType  string    `json:"event_type"`
	RequestID  string    `json:"request_id,omitempty"`
	EmployeeID string    `json:"employee_id"`
	OwnerID    string    `json:"owner_id"`
	WorkEmail  string    `json:"work_email"`
	OccurredAt time.Time `json:"occurred_at"`
}
