package consumer

import (
	"context"
	"encoding/json"

	"github.com/abi765/payvault-app/internal/bootstrap"
	"github.com/abi765/payvault-app/internal/events"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// ConsumePaymentStatus feeds payment lifecycle events into the audit
// trail so status overrides stay traceable outside the database.
func ConsumePaymentStatus(
	ctx context.Context,
	reader *kafkago.Reader,
	auditLogger bootstrap.AuditLogger,
	logger *zap.Logger,
) {
	log := logger.Named("kafka.consumer.payment_status")
	log.Info("payment status consumer started")

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Info("payment status consumer stopped")
				return
			}
			log.Error("fetch payment status message failed", zap.Error(err))
			continue
		}

		var event events.PaymentStatusChangedEvent
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			log.Error("decode payment status event failed", zap.Error(err))
			_ = reader.CommitMessages(ctx, msg)
			continue
		}

		auditLogger.Log(ctx, bootstrap.AuditLog{
			Action:  "PAYMENT_STATUS_CHANGED",
			Message: "salary payment status changed",
			Meta: map[string]any{
				"payment_id":    event.PaymentID,
				"employee_id":   event.EmployeeID,
				"payment_month": event.PaymentMonth,
				"old_status":    event.OldStatus,
				"new_status":    event.NewStatus,
				"changed_by":    event.ChangedBy,
			},
		})

		if err := reader.CommitMessages(ctx, msg); err != nil {
			log.Error("commit payment status message failed", zap.Error(err))
		}
	}
}
