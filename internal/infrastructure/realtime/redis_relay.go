package realtime

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/jhoicas/wholesale-api/internal/application/ports"
	"github.com/jhoicas/wholesale-api/pkg/logger"
)

const publishTimeout = 3 * time.Second

var _ ports.Broadcaster = (*RedisRelay)(nil)

// RedisRelay reparte los eventos entre varias instancias de la API usando Redis Pub/Sub.
// Broadcast publica en el canal; Run recibe de ese canal (incluidos los propios mensajes)
// y los entrega al Hub local, de modo que cada cliente recibe el evento una sola vez.
type RedisRelay struct {
	client  *redis.Client
	channel string
	hub     *Hub
	log     *logger.Logger
}

// NewRedisClient crea el cliente a partir de una URL redis:// y verifica la conexión.
func NewRedisClient(ctx context.Context, url string) (*redis.Client, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("redis: URL inválida: %w", err)
	}
	client := redis.NewClient(opts)
	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis: ping: %w", err)
	}
	return client, nil
}

// NewRedisRelay construye el relevo. El llamador conserva la propiedad del cliente.
func NewRedisRelay(client *redis.Client, channel string, hub *Hub, log *logger.Logger) *RedisRelay {
	if log == nil {
		log = logger.Nop()
	}
	return &RedisRelay{client: client, channel: channel, hub: hub, log: log.Named("redis_relay")}
}

// Broadcast publica el evento en Redis. No entrega localmente: lo hace Run al recibirlo.
func (r *RedisRelay) Broadcast(event string, payload any) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("realtime: serializar %s: %w", event, err)
	}
	raw, err := json.Marshal(Message{Event: event, Data: data})
	if err != nil {
		return fmt.Errorf("realtime: serializar mensaje: %w", err)
	}
	ctx, cancel := context.WithTimeout(context.Background(), publishTimeout)
	defer cancel()
	if err := r.client.Publish(ctx, r.channel, raw).Err(); err != nil {
		return fmt.Errorf("realtime: publicar en %s: %w", r.channel, err)
	}
	return nil
}

// Run se suscribe al canal y reenvía cada mensaje al Hub hasta que ctx se cancele.
// Debe ejecutarse en una goroutine.
func (r *RedisRelay) Run(ctx context.Context) error {
	pubsub := r.client.Subscribe(ctx, r.channel)
	defer pubsub.Close()

	if _, err := pubsub.Receive(ctx); err != nil {
		return fmt.Errorf("realtime: suscribir a %s: %w", r.channel, err)
	}
	r.log.Info().Str("channel", r.channel).Msg("relevo Redis suscrito")

	ch := pubsub.Channel()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case msg, ok := <-ch:
			if !ok {
				r.log.Warn().Msg("canal Redis cerrado")
				return nil
			}
			var m Message
			if err := json.Unmarshal([]byte(msg.Payload), &m); err != nil {
				r.log.Error().Err(err).Str("payload", msg.Payload).Msg("mensaje de relevo inválido")
				continue
			}
			r.hub.Publish(m)
		}
	}
}
