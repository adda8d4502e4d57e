// Package realtime difunde eventos a todos los clientes conectados (WebSocket) sin filtrar por tema.
package realtime

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/jhoicas/wholesale-api/internal/application/ports"
	"github.com/jhoicas/wholesale-api/pkg/logger"
)

// DefaultBufferSize mensajes pendientes por suscriptor antes de descartar.
const DefaultBufferSize = 32

var _ ports.Broadcaster = (*Hub)(nil)

// Message trama enviada a los clientes: {"event": "...", "data": {...}}.
type Message struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data"`
}

// Hub publicador/suscriptor del proceso. No guarda historial: quien se suscribe
// después de un evento no lo recibe.
type Hub struct {
	mu      sync.RWMutex
	subs    map[uint64]*Subscription
	nextID  uint64
	bufSize int
	log     *logger.Logger
}

// Subscription canal de entrega de un cliente.
type Subscription struct {
	id   uint64
	ch   chan Message
	hub  *Hub
	once sync.Once
}

// NewHub construye el hub. bufferSize <= 0 usa DefaultBufferSize.
func NewHub(bufferSize int, log *logger.Logger) *Hub {
	if bufferSize <= 0 {
		bufferSize = DefaultBufferSize
	}
	if log == nil {
		log = logger.Nop()
	}
	return &Hub{
		subs:    make(map[uint64]*Subscription),
		bufSize: bufferSize,
		log:     log.Named("realtime"),
	}
}

// Subscribe registra un nuevo cliente. El llamador debe invocar Close al desconectarse.
func (h *Hub) Subscribe() *Subscription {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.nextID++
	s := &Subscription{id: h.nextID, ch: make(chan Message, h.bufSize), hub: h}
	h.subs[s.id] = s
	return s
}

// Broadcast serializa payload y lo entrega a cada suscriptor actual.
func (h *Hub) Broadcast(event string, payload any) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("realtime: serializar %s: %w", event, err)
	}
	h.Publish(Message{Event: event, Data: data})
	return nil
}

// Publish entrega msg a todos los suscriptores locales sin bloquear.
// Si el buffer de un cliente está lleno, el mensaje se descarta para ese cliente.
func (h *Hub) Publish(msg Message) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for id, s := range h.subs {
		select {
		case s.ch <- msg:
		default:
			h.log.Warn().Uint64("subscriber", id).Str("event", msg.Event).Msg("buffer lleno, evento descartado")
		}
	}
}

// Count número de suscriptores conectados.
func (h *Hub) Count() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subs)
}

func (h *Hub) remove(id uint64) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.subs, id)
}

// C canal de lectura de eventos; se cierra con Close.
func (s *Subscription) C() <-chan Message { return s.ch }

// Close da de baja la suscripción. Es idempotente.
func (s *Subscription) Close() {
	s.once.Do(func() {
		// Primero se retira del mapa: Publish nunca escribe en un canal cerrado.
		s.hub.remove(s.id)
		close(s.ch)
	})
}
