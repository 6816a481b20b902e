package client

import (
	"errors"
	"fmt"
	"log"
	"sync"

	"github.com/gorilla/websocket"

	"github.com/SebastianPerilla/cycles/game"
)

// ErrSessionOver is returned by ReceiveSnapshot once the server has ended
// the game or the connection has dropped.
var ErrSessionOver = errors.New("session over")

// Connection is the websocket GameLink: it joins a game under the bot's
// name, turns game_state messages into snapshots, and writes moves back.
// Close may be called from another goroutine than the one driving the turn
// loop, so the liveness flag is mutex-guarded.
type Connection struct {
	ServerURL string
	Name      string

	ws     *websocket.Conn
	mu     sync.RWMutex
	active bool
}

// NewConnection prepares a connection to the given ws:// URL. Nothing is
// dialed until Connect.
func NewConnection(serverURL string) *Connection {
	return &Connection{ServerURL: serverURL}
}

// Connect dials the server, announces the bot by name and waits for the
// server's welcome. Any failure leaves the connection inactive.
func (c *Connection) Connect(name string) error {
	ws, _, err := websocket.DefaultDialer.Dial(c.ServerURL, nil)
	if err != nil {
		return fmt.Errorf("dial %s: %w", c.ServerURL, err)
	}
	c.ws = ws
	c.Name = name

	if err := c.ws.WriteJSON(&Message{Type: TypeJoin, Name: name}); err != nil {
		c.ws.Close()
		return fmt.Errorf("join: %w", err)
	}

	var msg Message
	if err := c.ws.ReadJSON(&msg); err != nil {
		c.ws.Close()
		return fmt.Errorf("await welcome: %w", err)
	}
	if msg.Type != TypeWelcome {
		c.ws.Close()
		return fmt.Errorf("expected %s, got %q", TypeWelcome, msg.Type)
	}

	c.mu.Lock()
	c.active = true
	c.mu.Unlock()
	log.Printf("%s connected to %s", name, c.ServerURL)
	return nil
}

// IsActive reports whether the session is still live.
func (c *Connection) IsActive() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.active
}

// ReceiveSnapshot blocks until the next game_state arrives and returns it as
// a snapshot. A game_end message or a read error ends the session and
// returns ErrSessionOver.
func (c *Connection) ReceiveSnapshot() (*game.Snapshot, error) {
	for {
		var msg Message
		if err := c.ws.ReadJSON(&msg); err != nil {
			c.shutdown()
			return nil, ErrSessionOver
		}

		switch msg.Type {
		case TypeGameState:
			snap, err := snapshotFromMessage(&msg)
			if err != nil {
				return nil, fmt.Errorf("frame %d: %w", msg.Frame, err)
			}
			return snap, nil
		case TypeGameEnd:
			log.Printf("%s: game over, winner %q (%s)", c.Name, msg.Winner, msg.Reason)
			c.shutdown()
			return nil, ErrSessionOver
		default:
			// Lobby chatter; keep reading until the next frame.
		}
	}
}

// SendMove transmits the chosen direction for the current turn.
func (c *Connection) SendMove(d game.Direction) error {
	if err := c.ws.WriteJSON(&Message{Type: TypeMove, Direction: d.String()}); err != nil {
		c.shutdown()
		return fmt.Errorf("send move: %w", err)
	}
	return nil
}

func (c *Connection) shutdown() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.active {
		c.active = false
		c.ws.Close()
	}
}

// Close tears the connection down, if still up.
func (c *Connection) Close() {
	c.shutdown()
}
