package room

import (
	"fmt"

	"github.com/gorilla/websocket"
)

// Client is a viewer of a single session connected via websockets
type Client struct {
	// Conn is the underlying websocket connection
	Conn *websocket.Conn

	// send is a channel for sending messages to the client
	send chan interface{}

	// Close is a channel for closing the client
	Close chan string

	// CloseError contains the reason why the connection was closed
	CloseError error

	code string
	uid  string
}

// NewClient returns a new client watching the session at code as the given
// player
func NewClient(conn *websocket.Conn, code, uid string) *Client {
	return &Client{
		send:  make(chan interface{}, 256),
		Close: make(chan string),
		Conn:  conn,
		code:  code,
		uid:   uid,
	}
}

// Send sends a message to the web client. Returns false if the client's
// buffer is full and the message was dropped.
func (c *Client) Send(msg interface{}) bool {
	select {
	case c.send <- msg:
		return true
	default:
		return false
	}
}

// SendChan returns a read-only channel of outbound messages
func (c *Client) SendChan() <-chan interface{} {
	return c.send
}

// String returns a traceable identifier for the viewer and session
func (c *Client) String() string {
	return fmt.Sprintf("%s:%s", c.uid, c.code)
}
