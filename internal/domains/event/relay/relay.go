package relay

import (
	"context"
	"time"

	"frontdesk/config"
	"frontdesk/infras/kafka"
	"frontdesk/internal/domains/event/model"
	"frontdesk/internal/domains/event/service"
	"frontdesk/shared/constant"
	"frontdesk/shared/logger"

	"github.com/rs/zerolog"
)

// Envelope is the JSON value written to the topic for every bus event.
type Envelope struct {
	Type      model.Type `json:"type"`
	Sequence  uint64     `json:"sequence"`
	EmittedAt time.Time  `json:"emittedAt"`
	Payload   any        `json:"payload"`
}

func NewEnvelope(evt model.Event) Envelope {
	return Envelope{
		Type:      evt.Type,
		Sequence:  evt.Sequence,
		EmittedAt: evt.EmittedAt,
		Payload:   evt.Payload,
	}
}

// Relay forwards every bus event to Kafka. It never feeds errors back into the bus.
type Relay interface {
	Start()
	Stop()
}

type relayImpl struct {
	bus    service.Subscriber
	client kafka.Client
	topic  string
	sub    service.Subscription
	log    zerolog.Logger
}

func New(cfg *config.Config, bus service.Bus, client kafka.Client) Relay {
	return &relayImpl{
		bus:    bus,
		client: client,
		topic:  cfg.Kafka.Topic,
		log:    logger.Component("relay"),
	}
}

func (r *relayImpl) Start() {
	if r.sub != nil {
		return
	}

	r.sub = r.bus.SubscribeAll(r.forward)
	r.log.Info().Str("topic", r.topic).Msg("event relay started")
}

func (r *relayImpl) Stop() {
	if r.sub == nil {
		return
	}

	r.sub.Unsubscribe()
	r.sub = nil

	if err := r.client.Close(); err != nil {
		r.log.Error().Err(err).Msg("failed to close kafka client")
	}

	r.log.Info().Msg("event relay stopped")
}

func (r *relayImpl) forward(ctx context.Context, evt model.Event) error {
	msg := kafka.Message{
		Key:   evt.RoomID(),
		Value: NewEnvelope(evt),
	}

	if err := r.client.SendMessages(context.WithoutCancel(ctx), r.topic, msg); err != nil {
		r.log.Warn().
			Err(err).
			Str(constant.LogFieldEventType, evt.Type.String()).
			Uint64("sequence", evt.Sequence).
			Msg("failed to relay event")
	}

	return nil
}

// noopRelay is used when the Kafka relay is disabled.
type noopRelay struct{}

func (noopRelay) Start() {}
func (noopRelay) Stop()  {}

// Provide returns the Kafka relay when enabled and a no-op relay otherwise.
func Provide(cfg *config.Config, bus service.Bus) Relay {
	if !cfg.Kafka.Enable {
		return noopRelay{}
	}

	return New(cfg, bus, kafka.New(cfg))
}
