package events

import "time"

const PaymentStatusChangedTopic = "payvault.salary.payment.status.v1"

type PaymentStatusChangedEvent struct {
	EventType    string    `json:"event_type"`
	PaymentID    string    `json:"payment_id"`
	EmployeeID   string    `json:"employee_id"`
	PaymentMonth string    `json:"payment_month"`
	OldStatus    string    `json:"old_status"`
	NewStatus    string    `json:"new_status"`
	ChangedBy    string    `json:"changed_by"`
	OccurredAt   time.Time `json:"occurred_at"`
}
