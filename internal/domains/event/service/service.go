package service

import (
	"context"
	"sync"

	"frontdesk/config"
	"frontdesk/infras/otel"
	"frontdesk/internal/domains/event/model"
	"frontdesk/shared/constant"
	"frontdesk/shared/logger"
	"frontdesk/shared/timezone"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

// Handler reacts to one event. A returned error (or a panic) is logged and
// does not stop delivery to the remaining handlers.
type Handler func(ctx context.Context, evt model.Event) error

// Subscription is returned by Subscribe; callers must dispose it with Unsubscribe.
type Subscription interface {
	Unsubscribe()
}

type Publisher interface {
	Emit(ctx context.Context, evt model.Event) model.Event
}

type Subscriber interface {
	Subscribe(eventType model.Type, handler Handler) Subscription
	SubscribeAll(handler Handler) Subscription
}

type Bus interface {
	Publisher
	Subscriber
	History() []model.Event
	HandlerCount(eventType model.Type) int
}

type subscription struct {
	id        uint64
	eventType model.Type
	handler   Handler
	bus       *busImpl
	once      sync.Once
}

func (s *subscription) Unsubscribe() {
	s.once.Do(func() {
		s.bus.remove(s.eventType, s.id)
	})
}

// multiSubscription groups the per-type subscriptions made by SubscribeAll.
type multiSubscription []Subscription

func (m multiSubscription) Unsubscribe() {
	for _, sub := range m {
		sub.Unsubscribe()
	}
}

type delivery struct {
	evt      model.Event
	handlers []*subscription
}

// chain is the delivery queue of one outermost Emit. Handlers receive it through
// their context so the events they emit join the same queue.
type chain struct {
	bus   *busImpl
	queue []delivery
}

type chainKey struct{}

func chainFrom(ctx context.Context, b *busImpl) *chain {
	if c, ok := ctx.Value(chainKey{}).(*chain); ok && c.bus == b {
		return c
	}

	return nil
}

type busImpl struct {
	mu       sync.RWMutex
	handlers map[model.Type][]*subscription
	nextID   uint64
	sequence uint64
	history  *ring

	otel otel.Otel
	log  zerolog.Logger
}

func New(cfg *config.Config, otel otel.Otel) Bus {
	size := cfg.Event.HistorySize
	if size <= 0 {
		size = config.DefaultEventHistorySize
	}

	return &busImpl{
		handlers: make(map[model.Type][]*subscription),
		history:  newRing(size),
		otel:     otel,
		log:      logger.Component("event"),
	}
}

func (b *busImpl) Subscribe(eventType model.Type, handler Handler) Subscription {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.nextID++
	sub := &subscription{
		id:        b.nextID,
		eventType: eventType,
		handler:   handler,
		bus:       b,
	}

	b.handlers[eventType] = append(b.handlers[eventType], sub)

	return sub
}

func (b *busImpl) SubscribeAll(handler Handler) Subscription {
	subs := make(multiSubscription, 0, len(model.Types))
	for _, eventType := range model.Types {
		subs = append(subs, b.Subscribe(eventType, handler))
	}

	return subs
}

func (b *busImpl) remove(eventType model.Type, id uint64) {
	b.mu.Lock()
	defer b.mu.Unlock()

	subs := b.handlers[eventType]
	for i, sub := range subs {
		if sub.id == id {
			// copy so that in-flight snapshots keep their own slice
			remaining := make([]*subscription, 0, len(subs)-1)
			remaining = append(remaining, subs[:i]...)
			remaining = append(remaining, subs[i+1:]...)
			b.handlers[eventType] = remaining

			return
		}
	}
}

func (b *busImpl) HandlerCount(eventType model.Type) int {
	b.mu.RLock()
	defer b.mu.RUnlock()

	return len(b.handlers[eventType])
}

// Emit stamps the event, records it in history and delivers it to the handlers
// registered for its type right now. An Emit issued from inside a handler is
// queued on the caller's chain and delivered after the current event, so every
// subscriber observes events in emission order. The outermost Emit returns once
// its chain is drained; chains started by other goroutines are independent.
func (b *busImpl) Emit(ctx context.Context, evt model.Event) model.Event {
	b.mu.Lock()
	b.sequence++
	evt.Sequence = b.sequence
	evt.EmittedAt = timezone.Now()
	b.history.push(evt)
	handlers := b.handlers[evt.Type]
	b.mu.Unlock()

	next := delivery{evt: evt, handlers: handlers}

	if c := chainFrom(ctx, b); c != nil {
		c.queue = append(c.queue, next)

		return evt
	}

	c := &chain{bus: b, queue: []delivery{next}}
	ctx = context.WithValue(ctx, chainKey{}, c)

	for len(c.queue) > 0 {
		d := c.queue[0]
		c.queue = c.queue[1:]

		b.deliver(ctx, d)
	}

	return evt
}

func (b *busImpl) deliver(ctx context.Context, d delivery) {
	ctx, scope := b.otel.NewScope(ctx, constant.OtelEventScopeName, constant.OtelEventScopeName+"."+d.evt.Type.String())
	defer scope.End()

	scope.SetAttributes(map[string]any{
		"event.sequence": d.evt.Sequence,
		"event.room_id":  d.evt.RoomID(),
		"event.handlers": len(d.handlers),
	})

	b.log.Debug().
		Str(constant.LogFieldEventType, d.evt.Type.String()).
		Uint64("sequence", d.evt.Sequence).
		Str(constant.LogFieldRoomID, d.evt.RoomID()).
		Int("handlers", len(d.handlers)).
		Msg("delivering event")

	for _, sub := range d.handlers {
		if err := b.invoke(ctx, sub, d.evt); err != nil {
			scope.TraceError(err)
			b.log.Error().
				Err(err).
				Str(constant.LogFieldEventType, d.evt.Type.String()).
				Uint64("subscription", sub.id).
				Msg("event handler failed")
		}
	}
}

func (b *busImpl) invoke(ctx context.Context, sub *subscription, evt model.Event) (err error) {
	defer func() {
		if recovered := recover(); recovered != nil {
			err = errors.Errorf("handler panicked: %v", recovered)
			logger.ErrorWithStack(err)
		}
	}()

	return sub.handler(ctx, evt)
}

func (b *busImpl) History() []model.Event {
	b.mu.RLock()
	defer b.mu.RUnlock()

	return b.history.items()
}
