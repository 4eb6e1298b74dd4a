package salary

import (
	"context"
	"database/sql"
	"encoding/json"
	"strings"
	"time"

	"github.com/abi765/payvault-app/internal/employee"
	employeeerrors "github.com/abi765/payvault-app/internal/employee/errors"
	"github.com/abi765/payvault-app/internal/events"
	"github.com/abi765/payvault-app/internal/messaging/kafka"
	salaryerrors "github.com/abi765/payvault-app/internal/salary/errors"
	"github.com/abi765/payvault-app/internal/shared/contextutil"

	"github.com/google/uuid"
)

type Service interface {
	Generate(ctx context.Context, actorID string, req GenerateSalaryRequest) (GenerateSalaryResponse, error)
	SetStatus(ctx context.Context, actorID, paymentID string, req UpdateStatusRequest) (SalaryPaymentResponse, error)
	BulkSetStatus(ctx context.Context, actorID string, req BulkUpdateStatusRequest) ([]SalaryPaymentResponse, error)
	List(ctx context.Context, filter ListPaymentsFilterRequest) ([]SalaryPaymentResponse, error)
	EmployeeHistory(ctx context.Context, employeeID string) ([]SalaryPaymentResponse, error)
	GetMonths(ctx context.Context) ([]string, error)
	GetStats(ctx context.Context, month string) (SalaryStatsResponse, error)
}

type service struct {
	db           *sql.DB
	repo         Repository
	employeeRepo employee.Repository
	outbox       kafka.OutboxRepository
}

func NewService(db *sql.DB, repo Repository, employeeRepo employee.Repository) Service {
	return &service{db: db, repo: repo, employeeRepo: employeeRepo}
}

func NewServiceWithOutbox(
	db *sql.DB,
	repo Repository,
	employeeRepo employee.Repository,
	outbox kafka.OutboxRepository,
) Service {
	return &service{db: db, repo: repo, employeeRepo: employeeRepo, outbox: outbox}
}

// Generate creates pending payments for every active employee that does
// not have one for the month yet. The whole batch commits atomically;
// re-running for the same month only fills gaps and never rewrites
// amounts already on the ledger.
func (s *service) Generate(
	ctx context.Context,
	actorID string,
	req GenerateSalaryRequest,
) (GenerateSalaryResponse, error) {
	month, err := parseMonth(req.Month)
	if err != nil {
		return GenerateSalaryResponse{}, err
	}

	actorUUID, err := uuid.Parse(actorID)
	if err != nil {
		return GenerateSalaryResponse{}, salaryerrors.ErrInvalidActorID
	}

	employees, err := s.employeeRepo.ListActive(ctx)
	if err != nil {
		return GenerateSalaryResponse{}, mapRepositoryError(err)
	}
	if len(employees) == 0 {
		return GenerateSalaryResponse{}, salaryerrors.ErrNoActiveEmployees
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return GenerateSalaryResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	created, skipped := 0, 0
	for _, emp := range employees {
		exists, err := s.repo.Exists(ctx, emp.ID, month)
		if err != nil {
			return GenerateSalaryResponse{}, mapRepositoryError(err)
		}
		if exists {
			skipped++
			continue
		}

		payment := &SalaryPayment{
			ID:           uuid.New(),
			EmployeeID:   emp.ID,
			PaymentMonth: month,
			Amount:       emp.Salary,
			Status:       StatusPending,
		}

		inserted, err := qtx.Insert(ctx, payment)
		if err != nil {
			return GenerateSalaryResponse{}, mapRepositoryError(err)
		}
		if !inserted {
			// a concurrent generation for this month got there first
			skipped++
			continue
		}
		created++
	}

	if err := s.enqueueGeneratedEvent(ctx, tx, month, actorUUID, created, skipped); err != nil {
		return GenerateSalaryResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		return GenerateSalaryResponse{}, err
	}

	return GenerateSalaryResponse{Created: created, Skipped: skipped}, nil
}

// SetStatus applies an operator override. Any of the three statuses may
// be set from any other; processed_at and processed_by always record the
// last touch, not the first.
func (s *service) SetStatus(
	ctx context.Context,
	actorID, paymentID string,
	req UpdateStatusRequest,
) (SalaryPaymentResponse, error) {
	actorUUID, err := uuid.Parse(actorID)
	if err != nil {
		return SalaryPaymentResponse{}, salaryerrors.ErrInvalidActorID
	}
	if _, err := uuid.Parse(paymentID); err != nil {
		return SalaryPaymentResponse{}, salaryerrors.ErrInvalidPaymentID
	}
	if !ValidStatus(req.Status) {
		return SalaryPaymentResponse{}, salaryerrors.ErrInvalidStatusValue
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return SalaryPaymentResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	payment, err := s.repo.FindByID(ctx, paymentID)
	if err != nil {
		return SalaryPaymentResponse{}, mapRepositoryError(err)
	}

	oldStatus := payment.Status
	applyTransition(payment, req.Status, req.Notes, actorUUID)

	if err := qtx.Update(ctx, payment); err != nil {
		return SalaryPaymentResponse{}, mapRepositoryError(err)
	}

	if err := s.enqueueStatusEvent(ctx, tx, payment, oldStatus, actorUUID); err != nil {
		return SalaryPaymentResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		return SalaryPaymentResponse{}, err
	}

	return mapToResponse(*payment), nil
}

// BulkSetStatus applies the same transition to many payments in one
// transaction. An unknown id rejects the whole batch.
func (s *service) BulkSetStatus(
	ctx context.Context,
	actorID string,
	req BulkUpdateStatusRequest,
) ([]SalaryPaymentResponse, error) {
	actorUUID, err := uuid.Parse(actorID)
	if err != nil {
		return nil, salaryerrors.ErrInvalidActorID
	}
	if !ValidStatus(req.Status) {
		return nil, salaryerrors.ErrInvalidStatusValue
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	responses := make([]SalaryPaymentResponse, 0, len(req.IDs))
	for _, id := range req.IDs {
		payment, err := s.repo.FindByID(ctx, id)
		if err != nil {
			return nil, mapRepositoryError(err)
		}

		oldStatus := payment.Status
		applyTransition(payment, req.Status, req.Notes, actorUUID)

		if err := qtx.Update(ctx, payment); err != nil {
			return nil, mapRepositoryError(err)
		}

		if err := s.enqueueStatusEvent(ctx, tx, payment, oldStatus, actorUUID); err != nil {
			return nil, err
		}

		responses = append(responses, mapToResponse(*payment))
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}

	return responses, nil
}

func (s *service) List(
	ctx context.Context,
	filter ListPaymentsFilterRequest,
) ([]SalaryPaymentResponse, error) {
	repoFilter := SalaryFilter{}
	if filter.Month != "" {
		month, err := parseMonth(filter.Month)
		if err != nil {
			return nil, err
		}
		repoFilter.Month = &month
	}
	if filter.Status != "" {
		if !ValidStatus(filter.Status) {
			return nil, salaryerrors.ErrInvalidStatusValue
		}
		repoFilter.Status = &filter.Status
	}

	payments, err := s.repo.FindAll(ctx, repoFilter)
	if err != nil {
		return nil, mapRepositoryError(err)
	}

	return mapToListResponse(payments), nil
}

func (s *service) EmployeeHistory(
	ctx context.Context,
	employeeID string,
) ([]SalaryPaymentResponse, error) {
	if _, err := uuid.Parse(employeeID); err != nil {
		return nil, employeeerrors.ErrInvalidEmployeeID
	}

	payments, err := s.repo.FindByEmployee(ctx, employeeID)
	if err != nil {
		return nil, mapRepositoryError(err)
	}

	return mapToListResponse(payments), nil
}

func (s *service) GetMonths(ctx context.Context) ([]string, error) {
	months, err := s.repo.DistinctMonths(ctx)
	if err != nil {
		return nil, mapRepositoryError(err)
	}
	return months, nil
}

// GetStats folds every aggregate from one query result, so the month
// filter applies identically to all counts and both sums, and the whole
// report reflects a single snapshot of the ledger.
func (s *service) GetStats(
	ctx context.Context,
	month string,
) (SalaryStatsResponse, error) {
	filter := SalaryFilter{}
	if month != "" {
		parsed, err := parseMonth(month)
		if err != nil {
			return SalaryStatsResponse{}, err
		}
		filter.Month = &parsed
	}

	payments, err := s.repo.FindAll(ctx, filter)
	if err != nil {
		return SalaryStatsResponse{}, mapRepositoryError(err)
	}

	var stats SalaryStatsResponse
	for _, p := range payments {
		stats.Total++
		stats.TotalAmount += p.Amount

		switch p.Status {
		case StatusPending:
			stats.Pending++
		case StatusProcessed:
			stats.Processed++
			stats.ProcessedAmount += p.Amount
		case StatusFailed:
			stats.Failed++
		}
	}

	return stats, nil
}

func applyTransition(payment *SalaryPayment, status string, notes *string, actor uuid.UUID) {
	payment.Status = status
	if notes != nil {
		payment.Notes = notes
	}
	now := time.Now().UTC()
	payment.ProcessedAt = &now
	payment.ProcessedBy = &actor
}

func (s *service) enqueueGeneratedEvent(
	ctx context.Context,
	tx *sql.Tx,
	month string,
	actor uuid.UUID,
	created, skipped int,
) error {
	if s.outbox == nil {
		return nil
	}

	payload, err := json.Marshal(events.SalaryGeneratedEvent{
		EventType:    "salary_generated",
		PaymentMonth: month,
		Created:      created,
		Skipped:      skipped,
		GeneratedBy:  actor.String(),
		OccurredAt:   time.Now().UTC(),
	})
	if err != nil {
		return err
	}

	return s.outbox.WithTx(tx).Create(ctx, kafka.OutboxEvent{
		ID:            uuid.New().String(),
		RequestID:     contextutil.GetRequestID(ctx),
		AggregateType: "salary_batch",
		AggregateID:   month,
		EventType:     "salary_generated",
		Topic:         events.SalaryGeneratedTopic,
		Payload:       payload,
		Status:        kafka.OutboxStatusPending,
	})
}

func (s *service) enqueueStatusEvent(
	ctx context.Context,
	tx *sql.Tx,
	payment *SalaryPayment,
	oldStatus string,
	actor uuid.UUID,
) error {
	if s.outbox == nil {
		return nil
	}

	payload, err := json.Marshal(events.PaymentStatusChangedEvent{
		EventType:    "payment_status_changed",
		PaymentID:    payment.ID.String(),
		EmployeeID:   payment.EmployeeID.String(),
		PaymentMonth: payment.PaymentMonth,
		OldStatus:    oldStatus,
		NewStatus:    payment.Status,
		ChangedBy:    actor.String(),
		OccurredAt:   time.Now().UTC(),
	})
	if err != nil {
		return err
	}

	return s.outbox.WithTx(tx).Create(ctx, kafka.OutboxEvent{
		ID:            uuid.New().String(),
		RequestID:     contextutil.GetRequestID(ctx),
		AggregateType: "salary_payment",
		AggregateID:   payment.ID.String(),
		EventType:     "payment_status_changed",
		Topic:         events.PaymentStatusChangedTopic,
		Payload:       payload,
		Status:        kafka.OutboxStatusPending,
	})
}

func parseMonth(v string) (string, error) {
	month := strings.TrimSpace(v)
	if month == "" {
		return "", salaryerrors.ErrInvalidMonthFormat
	}
	parsed, err := time.Parse(MonthLayout, month)
	if err != nil || parsed.Format(MonthLayout) != month {
		// time.Parse tolerates unpadded months, but the ledger compares
		// month tokens as text, so "2024-1" must not slip through
		return "", salaryerrors.ErrInvalidMonthFormat
	}
	return month, nil
}

func mapToResponse(payment SalaryPayment) SalaryPaymentResponse {
	resp := SalaryPaymentResponse{
		ID:           payment.ID.String(),
		EmployeeID:   payment.EmployeeID.String(),
		EmployeeName: payment.EmployeeName,
		EmployeeCode: payment.EmployeeCode,
		PaymentMonth: payment.PaymentMonth,
		Amount:       payment.Amount,
		Status:       payment.Status,
		Notes:        payment.Notes,
		CreatedAt:    payment.CreatedAt.Format(time.RFC3339),
	}

	if payment.ProcessedAt != nil {
		v := payment.ProcessedAt.Format(time.RFC3339)
		resp.ProcessedAt = &v
	}
	if payment.ProcessedBy != nil {
		v := payment.ProcessedBy.String()
		resp.ProcessedBy = &v
	}

	return resp
}

func mapToListResponse(payments []SalaryPayment) []SalaryPaymentResponse {
	resp := make([]SalaryPaymentResponse, len(payments))
	for i, payment := range payments {
		resp[i] = mapToResponse(payment)
	}
	return resp
}
