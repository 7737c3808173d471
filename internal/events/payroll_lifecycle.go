package events

import "time"

const PayrollLifecycleTopic = "mfg.payroll.lifecycle.v1"

const (
	PayrollGenerated = "payroll.generated"
	PayrollPaid      = "payroll.paid"
	PayrollFailed    = "payroll.failed"
)

type PayrollLifecycleEvent struct {
	EventType  string    `json:"event_type"`
	PayrollID  string    `json:"payroll_id"`
	EmployeeID string    `json:"employee_id"`
	Month      int       `json:"month"`
	Year       int       `json:"year"`
	Status     string    `json:"status"`
	ActorID    string    `json:"actor_id"`
	OccurredAt time.Time `json:"occurred_at"`
}
