package service

import (
	"context"
	"slices"
	"strings"
	"sync"

	"frontdesk/infras/otel"
	eventModel "frontdesk/internal/domains/event/model"
	eventService "frontdesk/internal/domains/event/service"
	"frontdesk/internal/domains/inspection/model"
	"frontdesk/shared/constant"
	"frontdesk/shared/failure"
	"frontdesk/shared/logger"
	"frontdesk/shared/timezone"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Inspection is the ledger of post-stay room inspections. Drafts are kept per
// room, so each line operation names the room it applies to.
type Inspection interface {
	Begin(ctx context.Context, roomID, reservationID string) (model.Record, error)
	AddConsumption(ctx context.Context, roomID, productID string, quantity int) (model.Record, error)
	RemoveConsumption(ctx context.Context, roomID, lineID string) (model.Record, error)
	AddDamage(ctx context.Context, roomID, itemID string, quantity int, notes string) (model.Record, error)
	RemoveDamage(ctx context.Context, roomID, lineID string) (model.Record, error)
	Submit(ctx context.Context, roomID string) (model.Record, error)

	CheckoutReadiness(ctx context.Context, roomID, reservationID string) (model.Readiness, error)
	Draft(ctx context.Context, roomID string) (model.Record, error)
	History(ctx context.Context, roomID string) []model.Record
	Products() []model.Product
	DamageItems() []model.DamageItem
}

type serviceImpl struct {
	mu       sync.RWMutex
	drafts   map[string]*model.Record
	history  []model.Record
	products []model.Product
	damages  []model.DamageItem

	publisher eventService.Publisher
	otel      otel.Otel
	log       zerolog.Logger
}

func New(publisher eventService.Publisher, otel otel.Otel) Inspection {
	return &serviceImpl{
		drafts:    make(map[string]*model.Record),
		products:  slices.Clone(model.DefaultProducts),
		damages:   slices.Clone(model.DefaultDamageItems),
		publisher: publisher,
		otel:      otel,
		log:       logger.Component(model.EntityName),
	}
}

func (s *serviceImpl) Products() []model.Product {
	return slices.Clone(s.products)
}

func (s *serviceImpl) DamageItems() []model.DamageItem {
	return slices.Clone(s.damages)
}

func requireRoom(roomID string) error {
	if strings.TrimSpace(roomID) == "" {
		return failure.Validation("no room selected")
	}

	return nil
}

// Begin opens a draft for the room, replacing any draft already open.
func (s *serviceImpl) Begin(ctx context.Context, roomID, reservationID string) (record model.Record, err error) {
	_, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".inspection.Begin")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = requireRoom(roomID); err != nil {
		return model.Record{}, err
	}

	if reservationID == "" {
		reservationID = model.WalkInPrefix + uuid.NewString()
	}

	draft := &model.Record{
		ID:            uuid.NewString(),
		RoomID:        roomID,
		ReservationID: reservationID,
		Status:        model.StatusPending,
		StartedAt:     timezone.Now(),
	}
	draft.Recalculate()

	s.mu.Lock()
	if previous, ok := s.drafts[roomID]; ok {
		s.log.Warn().
			Str(constant.LogFieldRoomID, roomID).
			Str("record_id", previous.ID).
			Msg("open inspection discarded by a new one")
	}

	s.drafts[roomID] = draft
	record = draft.Clone()
	s.mu.Unlock()

	s.log.Info().
		Str(constant.LogFieldRoomID, roomID).
		Str(constant.LogFieldReservationID, reservationID).
		Msg("inspection started")

	return record, nil
}

// edit runs mutate against the room's open draft under the write lock.
func (s *serviceImpl) edit(roomID string, mutate func(draft *model.Record) error) (model.Record, error) {
	if err := requireRoom(roomID); err != nil {
		return model.Record{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	draft, ok := s.drafts[roomID]
	if !ok {
		return model.Record{}, failure.Validationf("no inspection open for room %s", roomID)
	}

	if err := mutate(draft); err != nil {
		return model.Record{}, err
	}

	draft.Recalculate()

	return draft.Clone(), nil
}

func (s *serviceImpl) AddConsumption(ctx context.Context, roomID, productID string, quantity int) (record model.Record, err error) {
	_, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".inspection.AddConsumption")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if quantity <= 0 {
		return model.Record{}, failure.Validationf("quantity must be positive, got %d", quantity)
	}

	index := slices.IndexFunc(s.products, func(product model.Product) bool { return product.ID == productID })
	if index < 0 {
		return model.Record{}, failure.Validationf("unknown %s %q", model.ProductEntityName, productID)
	}

	product := s.products[index]

	return s.edit(roomID, func(draft *model.Record) error {
		draft.Consumptions = append(draft.Consumptions, model.ConsumptionLine{
			ID:          uuid.NewString(),
			ProductID:   product.ID,
			ProductName: product.Name,
			Quantity:    quantity,
			UnitPrice:   product.UnitPrice,
		})

		return nil
	})
}

func (s *serviceImpl) RemoveConsumption(ctx context.Context, roomID, lineID string) (record model.Record, err error) {
	_, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".inspection.RemoveConsumption")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	return s.edit(roomID, func(draft *model.Record) error {
		index := slices.IndexFunc(draft.Consumptions, func(line model.ConsumptionLine) bool { return line.ID == lineID })
		if index < 0 {
			return failure.NotFoundf("%s %s not found", model.LineEntityName, lineID)
		}

		draft.Consumptions = slices.Delete(draft.Consumptions, index, index+1)

		return nil
	})
}

func (s *serviceImpl) AddDamage(ctx context.Context, roomID, itemID string, quantity int, notes string) (record model.Record, err error) {
	_, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".inspection.AddDamage")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if quantity <= 0 {
		return model.Record{}, failure.Validationf("quantity must be positive, got %d", quantity)
	}

	index := slices.IndexFunc(s.damages, func(item model.DamageItem) bool { return item.ID == itemID })
	if index < 0 {
		return model.Record{}, failure.Validationf("unknown %s %q", model.DamageEntityName, itemID)
	}

	item := s.damages[index]

	return s.edit(roomID, func(draft *model.Record) error {
		draft.Damages = append(draft.Damages, model.DamageLine{
			ID:           uuid.NewString(),
			ItemID:       item.ID,
			ItemName:     item.Name,
			Quantity:     quantity,
			ChargeAmount: item.ChargeAmount,
			Notes:        notes,
			Status:       model.DamageReported,
		})

		return nil
	})
}

func (s *serviceImpl) RemoveDamage(ctx context.Context, roomID, lineID string) (record model.Record, err error) {
	_, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".inspection.RemoveDamage")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	return s.edit(roomID, func(draft *model.Record) error {
		index := slices.IndexFunc(draft.Damages, func(line model.DamageLine) bool { return line.ID == lineID })
		if index < 0 {
			return failure.NotFoundf("%s %s not found", model.LineEntityName, lineID)
		}

		draft.Damages = slices.Delete(draft.Damages, index, index+1)

		return nil
	})
}

// Submit completes the room's draft and appends it to history. Room status is left alone.
func (s *serviceImpl) Submit(ctx context.Context, roomID string) (record model.Record, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".inspection.Submit")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = requireRoom(roomID); err != nil {
		return model.Record{}, err
	}

	s.mu.Lock()

	draft, ok := s.drafts[roomID]
	if !ok {
		s.mu.Unlock()

		return model.Record{}, failure.Validationf("no inspection open for room %s", roomID)
	}

	completedAt := timezone.Now()
	draft.Status = model.StatusCompleted
	draft.CompletedAt = &completedAt
	draft.Recalculate()

	record = draft.Clone()
	s.history = append(s.history, record.Clone())
	delete(s.drafts, roomID)
	s.mu.Unlock()

	s.log.Info().
		Str(constant.LogFieldRoomID, roomID).
		Str(constant.LogFieldReservationID, record.ReservationID).
		Float64("total_charges", record.TotalCharges).
		Msg("inspection submitted")

	s.publish(ctx, record)

	return record, nil
}

func (s *serviceImpl) publish(ctx context.Context, record model.Record) {
	if len(record.Consumptions) > 0 {
		items := make([]eventModel.ChargeItem, 0, len(record.Consumptions))
		for _, line := range record.Consumptions {
			items = append(items, eventModel.ChargeItem{
				LineID:   line.ID,
				ItemID:   line.ProductID,
				Name:     line.ProductName,
				Quantity: line.Quantity,
				Amount:   line.Total,
			})
		}

		s.publisher.Emit(ctx, eventModel.New(eventModel.TypeConsumptionAdded, eventModel.ChargeItemsReported{
			RoomID:        record.RoomID,
			ReservationID: record.ReservationID,
			Items:         items,
		}))
	}

	if len(record.Damages) > 0 {
		items := make([]eventModel.ChargeItem, 0, len(record.Damages))
		for _, line := range record.Damages {
			items = append(items, eventModel.ChargeItem{
				LineID:   line.ID,
				ItemID:   line.ItemID,
				Name:     line.ItemName,
				Quantity: line.Quantity,
				Amount:   line.Total,
			})
		}

		s.publisher.Emit(ctx, eventModel.New(eventModel.TypeDamageReported, eventModel.ChargeItemsReported{
			RoomID:        record.RoomID,
			ReservationID: record.ReservationID,
			Items:         items,
		}))
	}

	s.publisher.Emit(ctx, eventModel.New(eventModel.TypeRoomInspectionCompleted, eventModel.RoomInspectionCompleted{
		RoomID:         record.RoomID,
		HasConsumption: len(record.Consumptions) > 0,
		HasDamage:      len(record.Damages) > 0,
	}))
}

// CheckoutReadiness reports the most recent completed inspection of the room,
// restricted to reservationID when given.
func (s *serviceImpl) CheckoutReadiness(ctx context.Context, roomID, reservationID string) (readiness model.Readiness, err error) {
	_, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".inspection.CheckoutReadiness")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = requireRoom(roomID); err != nil {
		return model.Readiness{}, err
	}

	readiness = model.Readiness{
		RoomID:        roomID,
		ReservationID: reservationID,
		Consumptions:  []model.ConsumptionLine{},
		DamageReports: []model.DamageLine{},
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	for i := len(s.history) - 1; i >= 0; i-- {
		record := s.history[i]
		if record.RoomID != roomID || (reservationID != "" && record.ReservationID != reservationID) {
			continue
		}

		record = record.Clone()
		readiness.Inspected = true
		readiness.RecordID = record.ID
		readiness.ReservationID = record.ReservationID
		readiness.Consumptions = record.Consumptions
		readiness.DamageReports = record.Damages
		readiness.ConsumptionTotal = record.ConsumptionTotal
		readiness.DamageTotal = record.DamageTotal
		readiness.TotalCharges = record.TotalCharges
		readiness.CompletedAt = record.CompletedAt

		break
	}

	return readiness, nil
}

func (s *serviceImpl) Draft(_ context.Context, roomID string) (model.Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	draft, ok := s.drafts[roomID]
	if !ok {
		return model.Record{}, failure.NotFoundf("no open %s for room %s", model.EntityName, roomID)
	}

	return draft.Clone(), nil
}

// History returns completed records oldest first; an empty roomID returns all.
func (s *serviceImpl) History(_ context.Context, roomID string) []model.Record {
	s.mu.RLock()
	defer s.mu.RUnlock()

	records := make([]model.Record, 0)
	for _, record := range s.history {
		if roomID == "" || record.RoomID == roomID {
			records = append(records, record.Clone())
		}
	}

	return records
}
