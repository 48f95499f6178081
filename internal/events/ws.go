package events

import (
	"log"
	"net/http"

	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// Gateway streams widget events to websocket clients.
type Gateway struct {
	dispatcher *Dispatcher
}

// NewGateway creates a Gateway delivering events from the given dispatcher.
func NewGateway(dispatcher *Dispatcher) *Gateway {
	return &Gateway{dispatcher: dispatcher}
}

func (g *Gateway) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("events: websocket upgrade: %v", err)
		return
	}
	defer conn.Close()

	ch, cancel := g.dispatcher.Subscribe()
	defer cancel()

	// Drain client frames so close is detected promptly.
	closed := make(chan struct{})
	go func() {
		defer close(closed)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
					log.Printf("events: websocket read: %v", err)
				}
				return
			}
		}
	}()

	for {
		select {
		case <-closed:
			return
		case e, ok := <-ch:
			if !ok {
				return
			}
			if err := conn.WriteJSON(e); err != nil {
				log.Printf("events: websocket write: %v", err)
				return
			}
		}
	}
}
