package room

import (
	"liarspoker-server/pkg/session"

	"github.com/sirupsen/logrus"
)

// Hub pushes every committed session snapshot to the room's connected
// viewers. It implements session.Publisher.
type Hub struct {
	rooms      map[string]map[*Client]bool
	connect    chan *Client
	disconnect chan *Client
	broadcast  chan *session.Session
}

// NewHub returns a new hub
func NewHub() *Hub {
	return &Hub{
		rooms:      make(map[string]map[*Client]bool),
		connect:    make(chan *Client, 256),
		disconnect: make(chan *Client, 256),
		broadcast:  make(chan *session.Session, 256),
	}
}

// Start starts the hub run loop
func (h *Hub) Start() {
	go h.runLoop()
}

func (h *Hub) runLoop() {
	for {
		select {
		case client := <-h.connect:
			logrus.WithField("client", client.String()).Debug("client connected")
			clients, found := h.rooms[client.code]
			if !found {
				clients = make(map[*Client]bool)
				h.rooms[client.code] = clients
			}

			clients[client] = true
		case client := <-h.disconnect:
			logrus.WithField("client", client.String()).Debug("client disconnected")
			clients, found := h.rooms[client.code]
			if !found {
				continue
			}

			delete(clients, client)
			if len(clients) == 0 {
				delete(h.rooms, client.code)
			}
		case s := <-h.broadcast:
			for client := range h.rooms[s.Code] {
				// every viewer gets their own redaction of the snapshot
				if !client.Send(s.Redacted(client.uid)) {
					logrus.WithField("client", client.String()).Warn("client send buffer full, dropping update")
				}
			}
		}
	}
}

// Publish implements session.Publisher
func (h *Hub) Publish(s *session.Session) {
	h.broadcast <- s
}

// ClientConnected is called when a client connects to the server
func (h *Hub) ClientConnected(client *Client) {
	h.connect <- client
}

// ClientDisconnected is called when a client disconnects from the server
func (h *Hub) ClientDisconnected(client *Client) {
	h.disconnect <- client
}
