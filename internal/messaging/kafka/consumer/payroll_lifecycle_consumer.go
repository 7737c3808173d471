package consumer

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"go-workforce/internal/audit"
	"go-workforce/internal/events"

	"github.com/google/uuid"
	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// ConsumePayrollLifecycle mirrors payroll lifecycle events into the
// audit trail so status changes made by the worker are visible there
// alongside changes made through the API.
func ConsumePayrollLifecycle(
	ctx context.Context,
	reader *kafkago.Reader,
	auditRepo audit.Repository,
	logger *zap.Logger,
) {
	log := logger.Named("kafka.consumer.payroll_lifecycle")
	log.Info("payroll lifecycle consumer started")

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Info("payroll lifecycle consumer stopped")
				return
			}
			log.Error("fetch payroll lifecycle message failed", zap.Error(err))
			continue
		}

		var event events.PayrollLifecycleEvent
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			log.Error("decode payroll lifecycle event failed", zap.Error(err))
			_ = reader.CommitMessages(ctx, msg)
			continue
		}

		entry := &audit.Entry{
			ID:         uuid.New(),
			Action:     auditActionFor(event.EventType),
			EntityType: "payroll",
			EntityID:   event.PayrollID,
			EntityName: fmt.Sprintf("%04d-%02d payroll for employee %s", event.Year, event.Month, event.EmployeeID),
			ActorID:    event.ActorID,
			OccurredAt: event.OccurredAt,
		}
		if entry.OccurredAt.IsZero() {
			entry.OccurredAt = time.Now().UTC()
		}

		if err := auditRepo.Append(ctx, entry); err != nil {
			log.Error("append payroll audit entry failed",
				zap.String("payroll_id", event.PayrollID),
				zap.String("event_type", event.EventType),
				zap.Error(err),
			)
			continue
		}

		if err := reader.CommitMessages(ctx, msg); err != nil {
			log.Error("commit payroll lifecycle message failed", zap.Error(err))
			continue
		}

		log.Info("payroll lifecycle event audited",
			zap.String("payroll_id", event.PayrollID),
			zap.String("event_type", event.EventType),
		)
	}
}

func auditActionFor(eventType string) string {
	switch eventType {
	case events.PayrollGenerated:
		return "PAYROLL_GENERATED"
	case events.PayrollPaid:
		return "PAYROLL_PAID"
	case events.PayrollFailed:
		return "PAYROLL_FAILED"
	default:
		return "PAYROLL_EVENT"
	}
}
