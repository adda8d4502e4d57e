package http

import (
	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/wholesale-api/internal/infrastructure/realtime"
	"github.com/jhoicas/wholesale-api/pkg/logger"
)

// RealtimeHandler expone el hub por WebSocket: cada conexión recibe todos los
// eventos publicados mientras está conectada.
type RealtimeHandler struct {
	hub *realtime.Hub
	log *logger.Logger
}

func NewRealtimeHandler(hub *realtime.Hub, log *logger.Logger) *RealtimeHandler {
	return &RealtimeHandler{hub: hub, log: log.Named("ws")}
}

// Upgrade rechaza con 426 las peticiones que no piden WebSocket.
func (h *RealtimeHandler) Upgrade(c *fiber.Ctx) error {
	if websocket.IsWebSocketUpgrade(c) {
		return c.Next()
	}
	return fiber.ErrUpgradeRequired
}

// Serve handler de la conexión ya actualizada.
func (h *RealtimeHandler) Serve() fiber.Handler {
	return websocket.New(func(conn *websocket.Conn) {
		sub := h.hub.Subscribe()
		defer sub.Close()
		h.log.Debug().Str("remote", conn.RemoteAddr().String()).Int("clients", h.hub.Count()).Msg("cliente conectado")

		// Los clientes no envían comandos; leer solo sirve para detectar el cierre.
		closed := make(chan struct{})
		go func() {
			defer close(closed)
			for {
				if _, _, err := conn.ReadMessage(); err != nil {
					return
				}
			}
		}()

		for {
			select {
			case msg, ok := <-sub.C():
				if !ok {
					return
				}
				if err := conn.WriteJSON(msg); err != nil {
					h.log.Debug().Err(err).Msg("escritura fallida, cerrando conexión")
					return
				}
			case <-closed:
				return
			}
		}
	})
}
