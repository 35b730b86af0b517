package service

import (
	"context"
	"slices"
	"strings"
	"sync"

	"frontdesk/infras/otel"
	"frontdesk/internal/domains/guest/model"
	"frontdesk/shared/constant"
	"frontdesk/shared/failure"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

type CreateInput struct {
	Name  string
	Email string
	Phone string
}

// Guest is the append-only guest directory.
type Guest interface {
	Create(ctx context.Context, input CreateInput) (model.Guest, error)
	Get(ctx context.Context, id string) (model.Guest, error)
	List(ctx context.Context) []model.Guest
	Seed(guests ...model.Guest)
}

type serviceImpl struct {
	mu     sync.RWMutex
	guests map[string]model.Guest
	otel   otel.Otel
}

func New(otel otel.Otel) Guest {
	return &serviceImpl{
		guests: make(map[string]model.Guest),
		otel:   otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, input CreateInput) (guest model.Guest, err error) {
	_, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".guest.Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	name := strings.TrimSpace(input.Name)
	if name == "" {
		return model.Guest{}, failure.Validation("guest name is required")
	}

	guest = model.Guest{
		ID:    uuid.NewString(),
		Name:  name,
		Email: input.Email,
		Phone: input.Phone,
	}

	s.mu.Lock()
	s.guests[guest.ID] = guest
	s.mu.Unlock()

	log.Info().Str("guest_id", guest.ID).Msg("guest registered")

	return guest, nil
}

func (s *serviceImpl) Get(_ context.Context, id string) (model.Guest, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	guest, ok := s.guests[id]
	if !ok {
		return model.Guest{}, failure.NotFoundf("%s %s not found", model.EntityName, id)
	}

	return guest, nil
}

func (s *serviceImpl) List(_ context.Context) []model.Guest {
	s.mu.RLock()
	defer s.mu.RUnlock()

	guests := make([]model.Guest, 0, len(s.guests))
	for _, guest := range s.guests {
		guests = append(guests, guest)
	}

	slices.SortFunc(guests, func(a, b model.Guest) int {
		return strings.Compare(a.Name, b.Name)
	})

	return guests
}

// Seed stores guests as given, replacing any with the same id.
func (s *serviceImpl) Seed(guests ...model.Guest) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, guest := range guests {
		s.guests[guest.ID] = guest
	}
}
