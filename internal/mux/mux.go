package mux

import (
	"net/http"

	"liarspoker-server/pkg/room"
	"liarspoker-server/pkg/session"

	gmux "github.com/gorilla/mux"
)

// Mux handles HTTP requests
type Mux struct {
	*gmux.Router
	version string
	service *session.Service
	hub     *room.Hub
}

// NewMux returns a new HTTP mux
func NewMux(version string, service *session.Service, hub *room.Hub) *Mux {
	this := &Mux{
		Router:  gmux.NewRouter(),
		version: version,
		service: service,
		hub:     hub,
	}

	r := this.Router
	r.Methods(http.MethodGet).Path("/health").Handler(this.getHealth())
	r.Methods(http.MethodPost).Path("/session").Handler(this.postSession())

	sr := r.PathPrefix("/session/{code:[a-zA-Z0-9]+}").Subrouter()
	sr.Methods(http.MethodGet).Path("").Handler(this.getSession())
	sr.Methods(http.MethodGet).Path("/ws").Handler(this.getSessionWS())
	sr.Methods(http.MethodPost).Path("/join").Handler(this.postSessionJoin())
	sr.Methods(http.MethodPost).Path("/leave").Handler(this.postSessionLeave())
	sr.Methods(http.MethodPost).Path("/ready").Handler(this.postSessionReady())
	sr.Methods(http.MethodPost).Path("/declare").Handler(this.postSessionDeclare())
	sr.Methods(http.MethodPost).Path("/call").Handler(this.postSessionCall())
	sr.Methods(http.MethodPost).Path("/ack").Handler(this.postSessionAck())

	return this
}
