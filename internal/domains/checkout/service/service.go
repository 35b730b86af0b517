package service

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"frontdesk/config"
	"frontdesk/infras/otel"
	"frontdesk/internal/domains/checkout/model"
	eventModel "frontdesk/internal/domains/event/model"
	eventService "frontdesk/internal/domains/event/service"
	housekeepingModel "frontdesk/internal/domains/housekeeping/model"
	inspectionModel "frontdesk/internal/domains/inspection/model"
	reservationModel "frontdesk/internal/domains/reservation/model"
	"frontdesk/shared"
	"frontdesk/shared/constant"
	"frontdesk/shared/failure"
	"frontdesk/shared/logger"
	"frontdesk/shared/timezone"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

type InspectionReader interface {
	CheckoutReadiness(ctx context.Context, roomID, reservationID string) (inspectionModel.Readiness, error)
}

type TaskCreator interface {
	EnsureCleaningTask(ctx context.Context, roomID string) (housekeepingModel.Task, error)
}

type ReservationReader interface {
	Get(ctx context.Context, id string) (reservationModel.Reservation, error)
}

// Checkout drives the desk's single checkout workflow:
// select reservation, review charges, take payment, complete.
type Checkout interface {
	SelectReservation(ctx context.Context, reservationID string) (model.Session, error)
	GenerateSummary(ctx context.Context) (model.Summary, error)
	GenerateInvoice(ctx context.Context) (model.Invoice, error)
	RecordPayment(ctx context.Context, amount float64, method string) (model.Session, error)
	Complete(ctx context.Context) (model.Record, error)
	Cancel(ctx context.Context) model.Session
	State(ctx context.Context) model.Session
	Records(ctx context.Context) []model.Record
}

type session struct {
	stage       model.Stage
	reservation *reservationModel.Reservation
	readiness   *inspectionModel.Readiness
	summary     *model.Summary
	invoice     *model.Invoice
	payments    []model.Payment
}

type serviceImpl struct {
	mu      sync.Mutex
	current session
	records []model.Record

	inspections  InspectionReader
	tasks        TaskCreator
	reservations ReservationReader
	publisher    eventService.Publisher

	cfg  *config.Config
	otel otel.Otel
	log  zerolog.Logger
}

func New(
	cfg *config.Config,
	inspections InspectionReader,
	tasks TaskCreator,
	reservations ReservationReader,
	publisher eventService.Publisher,
	otel otel.Otel,
) Checkout {
	return &serviceImpl{
		current:      session{stage: model.StageSelectingReservation},
		inspections:  inspections,
		tasks:        tasks,
		reservations: reservations,
		publisher:    publisher,
		cfg:          cfg,
		otel:         otel,
		log:          logger.Component(model.EntityName),
	}
}

// snapshot must be called with the lock held.
func (s *serviceImpl) snapshot() model.Session {
	current := s.current
	state := model.Session{
		Stage:       current.stage,
		Reservation: current.reservation,
		Readiness:   current.readiness,
		Summary:     current.summary,
		Payments:    slices.Clone(current.payments),
		PaidAmount:  model.TotalPaid(current.payments),
	}

	if state.Payments == nil {
		state.Payments = []model.Payment{}
	}

	if current.invoice != nil {
		invoice := *current.invoice
		invoice.Lines = slices.Clone(invoice.Lines)
		state.Invoice = &invoice
		state.RemainingBalance = model.RemainingBalance(invoice.Amount, state.PaidAmount)
		state.IsFullyPaid = state.RemainingBalance == 0
	}

	return state
}

func (s *serviceImpl) reset() {
	s.current = session{stage: model.StageSelectingReservation}
}

// SelectReservation starts a workflow for a checked-in reservation whose room
// has a completed inspection. Any in-flight workflow is discarded.
func (s *serviceImpl) SelectReservation(ctx context.Context, reservationID string) (state model.Session, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".checkout.SelectReservation")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if reservationID == "" {
		return model.Session{}, failure.Validation("reservation is required")
	}

	reservation, err := s.reservations.Get(ctx, reservationID)
	if err != nil {
		return model.Session{}, err
	}

	if reservation.Status != reservationModel.StatusCheckedIn {
		return model.Session{}, failure.Preconditionf(
			"reservation %s is %s, only checked-in reservations can be checked out", reservation.ID, reservation.Status)
	}

	readiness, err := s.inspections.CheckoutReadiness(ctx, reservation.RoomID, reservation.ID)
	if err != nil {
		return model.Session{}, err
	}

	if !readiness.Inspected {
		return model.Session{}, failure.Preconditionf(
			"room %s has not been inspected, submit its inspection before checking out", reservation.RoomID)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.current = session{
		stage:       model.StageReviewingCharges,
		reservation: &reservation,
		readiness:   &readiness,
	}

	s.log.Info().
		Str(constant.LogFieldReservationID, reservation.ID).
		Str(constant.LogFieldRoomID, reservation.RoomID).
		Msg("checkout started")

	return s.snapshot(), nil
}

// GenerateSummary totals the stay from the reservation and the latest inspection.
func (s *serviceImpl) GenerateSummary(ctx context.Context) (summary model.Summary, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".checkout.GenerateSummary")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	s.mu.Lock()
	reservation := s.current.reservation
	invoiced := s.current.invoice != nil
	s.mu.Unlock()

	if reservation == nil {
		return model.Summary{}, failure.Precondition("no reservation selected for checkout")
	}

	if invoiced {
		return model.Summary{}, failure.State("invoice already issued, cancel the checkout to revise charges")
	}

	readiness, err := s.inspections.CheckoutReadiness(ctx, reservation.RoomID, reservation.ID)
	if err != nil {
		return model.Summary{}, err
	}

	summary = model.Summary{
		ReservationID:    reservation.ID,
		RoomID:           reservation.RoomID,
		GuestID:          reservation.GuestID,
		RoomCharge:       shared.RoundMoney(reservation.TotalAmount),
		ConsumptionTotal: readiness.ConsumptionTotal,
		DamageTotal:      readiness.DamageTotal,
		Consumptions:     readiness.Consumptions,
		Damages:          readiness.DamageReports,
		GeneratedAt:      timezone.Now(),
	}
	summary.GrandTotal = shared.RoundMoney(summary.RoomCharge + summary.ConsumptionTotal + summary.DamageTotal)

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current.reservation == nil || s.current.reservation.ID != reservation.ID {
		return model.Summary{}, failure.State("checkout was reset while charges were being reviewed")
	}

	s.current.readiness = &readiness
	s.current.summary = &summary

	return summary, nil
}

// GenerateInvoice freezes the summary. Calling it again returns the issued invoice.
func (s *serviceImpl) GenerateInvoice(ctx context.Context) (invoice model.Invoice, err error) {
	_, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".checkout.GenerateInvoice")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current.invoice != nil {
		return *s.snapshot().Invoice, nil
	}

	summary := s.current.summary
	if summary == nil {
		return model.Invoice{}, failure.Precondition("generate the checkout summary before the invoice")
	}

	lines := []model.InvoiceLine{{
		Category:    model.CategoryRoom,
		Description: fmt.Sprintf("Room %s stay", summary.RoomID),
		Amount:      summary.RoomCharge,
	}}

	if summary.ConsumptionTotal > 0 {
		lines = append(lines, model.InvoiceLine{
			Category:    model.CategoryMinibar,
			Description: fmt.Sprintf("Minibar (%d items)", len(summary.Consumptions)),
			Amount:      summary.ConsumptionTotal,
		})
	}

	if summary.DamageTotal > 0 {
		lines = append(lines, model.InvoiceLine{
			Category:    model.CategoryDamages,
			Description: fmt.Sprintf("Damages (%d reports)", len(summary.Damages)),
			Amount:      summary.DamageTotal,
		})
	}

	invoice = model.Invoice{
		ID:            uuid.NewString(),
		ReservationID: summary.ReservationID,
		RoomID:        summary.RoomID,
		Lines:         lines,
		Amount:        summary.GrandTotal,
		Status:        model.InvoiceStatusFor(summary.GrandTotal, 0),
		IssuedAt:      timezone.Now(),
	}

	s.current.invoice = &invoice
	s.current.stage = model.StageProcessingPayment

	s.log.Info().
		Str(constant.LogFieldReservationID, invoice.ReservationID).
		Float64("amount", invoice.Amount).
		Msg("invoice issued")

	return *s.snapshot().Invoice, nil
}

func (s *serviceImpl) RecordPayment(ctx context.Context, amount float64, method string) (state model.Session, err error) {
	_, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".checkout.RecordPayment")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	s.mu.Lock()
	defer s.mu.Unlock()

	invoice := s.current.invoice
	if invoice == nil {
		return model.Session{}, failure.Precondition("no invoice issued, generate the invoice before taking payment")
	}

	if amount <= 0 {
		return model.Session{}, failure.Validationf("payment amount must be positive, got %.2f", amount)
	}

	if !slices.Contains(s.cfg.Checkout.PaymentMethods, method) {
		return model.Session{}, failure.Validationf("unknown payment method %q", method)
	}

	if invoice.Status == model.InvoicePaid {
		return model.Session{}, failure.Statef("invoice %s is already paid", invoice.ID)
	}

	s.current.payments = append(s.current.payments, model.Payment{
		ID:     uuid.NewString(),
		Amount: shared.RoundMoney(amount),
		Method: method,
		PaidAt: timezone.Now(),
	})

	invoice.Status = model.InvoiceStatusFor(invoice.Amount, model.TotalPaid(s.current.payments))
	state = s.snapshot()

	s.log.Info().
		Str("invoice_id", invoice.ID).
		Str("method", method).
		Float64("amount", amount).
		Float64("remaining", state.RemainingBalance).
		Msg("payment recorded")

	return state, nil
}

// Complete archives the paid checkout, publishes CHECKOUT_COMPLETED and makes
// sure the room has a cleaning task. Side-effect failures are logged only.
func (s *serviceImpl) Complete(ctx context.Context) (record model.Record, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".checkout.Complete")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	s.mu.Lock()

	state := s.snapshot()
	if state.Invoice == nil || state.Reservation == nil {
		s.mu.Unlock()

		return model.Record{}, failure.Precondition("no invoice issued for this checkout")
	}

	if !state.IsFullyPaid {
		s.mu.Unlock()

		return model.Record{}, failure.Preconditionf(
			"invoice is not fully paid, %.2f remaining for room %s", state.RemainingBalance, state.Reservation.RoomID)
	}

	record = model.Record{
		ID:            uuid.NewString(),
		ReservationID: state.Reservation.ID,
		RoomID:        state.Reservation.RoomID,
		GuestID:       state.Reservation.GuestID,
		Stage:         model.StageCompleted,
		Invoice:       *state.Invoice,
		Payments:      state.Payments,
		CompletedAt:   timezone.Now(),
	}

	s.records = append(s.records, record)
	s.reset()
	s.mu.Unlock()

	s.log.Info().
		Str(constant.LogFieldReservationID, record.ReservationID).
		Str(constant.LogFieldRoomID, record.RoomID).
		Msg("checkout completed")

	s.publisher.Emit(ctx, eventModel.New(eventModel.TypeCheckoutCompleted, eventModel.CheckoutCompleted{
		ReservationID: record.ReservationID,
		RoomID:        record.RoomID,
		GuestID:       record.GuestID,
	}))

	if _, taskErr := s.tasks.EnsureCleaningTask(ctx, record.RoomID); taskErr != nil {
		scope.TraceError(taskErr)
		s.log.Error().
			Err(taskErr).
			Str(constant.LogFieldRoomID, record.RoomID).
			Msg("failed to ensure cleaning task after checkout")
	}

	return record, nil
}

func (s *serviceImpl) Cancel(_ context.Context) model.Session {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current.reservation != nil {
		s.log.Info().
			Str(constant.LogFieldReservationID, s.current.reservation.ID).
			Msg("checkout cancelled")
	}

	s.reset()

	return s.snapshot()
}

func (s *serviceImpl) State(_ context.Context) model.Session {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.snapshot()
}

func (s *serviceImpl) Records(_ context.Context) []model.Record {
	s.mu.Lock()
	defer s.mu.Unlock()

	return slices.Clone(s.records)
}
