package events

import "time"

const SalaryGeneratedTopic = "payvault.salary.generated.v1"

// SalaryGeneratedEvent announces that a monthly generation batch was
// committed. Consumers react after the fact; the ledger is already final.
type SalaryGeneratedEvent struct {
	EventType    string    `json:"event_type"`
	PaymentMonth string    `json:"payment_month"`
	Created      int       `json:"created"`
	Skipped      int       `json:"skipped"`
	GeneratedBy  string    `json:"generated_by"`
	OccurredAt   time.Time `json:"occurred_at"`
}
