package server

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/gorilla/websocket"

	"ColonyCommand/internal/game"
)

// observerMessage is the JSON envelope on the spectator feed.
type observerMessage struct {
	Type    string `json:"type"`
	Payload any    `json:"payload"`
}

// observer is one connected spectator. Spectators only receive; anything
// they send is discarded.
type observer struct {
	hub  *ObserverHub
	conn *websocket.Conn
	send chan []byte
}

// ObserverHub fans turn reports out to websocket spectators. The game loop
// never blocks on it: a spectator that cannot keep up is dropped.
type ObserverHub struct {
	observers  map[*observer]bool
	broadcast  chan []byte
	register   chan *observer
	unregister chan *observer
}

func NewObserverHub() *ObserverHub {
	return &ObserverHub{
		observers:  make(map[*observer]bool),
		broadcast:  make(chan []byte, 16),
		register:   make(chan *observer),
		unregister: make(chan *observer),
	}
}

func (h *ObserverHub) Run() {
	for {
		select {
		case obs := <-h.register:
			h.observers[obs] = true
			log.Printf("observer connected (%d watching)", len(h.observers))
		case obs := <-h.unregister:
			if _, ok := h.observers[obs]; ok {
				delete(h.observers, obs)
				close(obs.send)
			}
		case message := <-h.broadcast:
			for obs := range h.observers {
				select {
				case obs.send <- message:
				default:
					close(obs.send)
					delete(h.observers, obs)
				}
			}
		}
	}
}

// BroadcastReport publishes one pre-turn report to every spectator.
func (h *ObserverHub) BroadcastReport(r *game.TurnReport) {
	h.publish("turn_report", r)
}

// BroadcastGameOver announces the winner and closes out the feed content.
func (h *ObserverHub) BroadcastGameOver(winner game.PlayerID, name string) {
	h.publish("game_over", map[string]string{"winner": string(winner), "name": name})
}

func (h *ObserverHub) publish(kind string, payload any) {
	data, err := json.Marshal(observerMessage{Type: kind, Payload: payload})
	if err != nil {
		log.Printf("observer feed: marshal %s: %v", kind, err)
		return
	}
	select {
	case h.broadcast <- data:
	default:
		log.Printf("observer feed: broadcast backlog, dropping %s", kind)
	}
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// ServeWs upgrades an HTTP request into a spectator connection.
func (h *ObserverHub) ServeWs(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("observer upgrade: %v", err)
		return
	}
	obs := &observer{hub: h, conn: conn, send: make(chan []byte, 64)}
	h.register <- obs

	go obs.writePump()
	go obs.readPump()
}

func (o *observer) readPump() {
	defer func() {
		o.hub.unregister <- o
		o.conn.Close()
	}()
	for {
		// Drain and ignore; reading is how we notice the peer is gone.
		if _, _, err := o.conn.ReadMessage(); err != nil {
			return
		}
	}
}

func (o *observer) writePump() {
	defer o.conn.Close()
	for message := range o.send {
		if err := o.conn.WriteMessage(websocket.TextMessage, message); err != nil {
			return
		}
	}
}

// StartObserverFeed runs the hub and its HTTP listener in the background.
func StartObserverFeed(addr string) *ObserverHub {
	hub := NewObserverHub()
	go hub.Run()

	mux := http.NewServeMux()
	mux.HandleFunc("/watch", hub.ServeWs)
	go func() {
		log.Printf("observer feed listening on %s", addr)
		if err := http.ListenAndServe(addr, mux); err != nil {
			log.Printf("observer feed: %v", err)
		}
	}()
	return hub
}
