package events

import "time"

const EmployeeLifecycleTopic = "mfg.employee.lifecycle.v1"

const EmployeeCreated = "employee.created"

type EmployeeCreatedEvent struct {
	EventType  string    `json:"event_type"`
	RequestID  string    `json:"request_id,omitempty"`
	EmployeeID string    `json:"employee_id"`
	FullName   string    `json:"full_name"`
	OccurredAt time.Time `json:"occurred_at"`
}
