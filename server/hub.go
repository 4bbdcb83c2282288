package server

import (
	"encoding/json"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/minaorangina/literature/engine"
	"github.com/minaorangina/literature/protocol"
)

const (
	// Time allowed to write a message to the peer.
	writeWait = 10 * time.Second

	// Time allowed to read the next pong message from the peer.
	pongWait = 60 * time.Second

	// Send pings to peer with this period. Must be less than pongWait.
	pingPeriod = (pongWait * 9) / 10

	// Maximum message size allowed from peer.
	maxMessageSize = 512
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// Envelope is the wire format for every event sent to a client.
type Envelope struct {
	Type string      `json:"type"`
	Data interface{} `json:"data"`
}

type client struct {
	hub      *Hub
	engine   *engine.GameEngine
	playerID string
	conn     *websocket.Conn
	send     chan []byte
}

// Hub tracks the live connection for each player of each game and
// fans events out to them. Sends never block: a client that cannot
// keep up has its connection dropped.
type Hub struct {
	mu      sync.RWMutex
	clients map[string]map[string]*client // gameID -> playerID
}

func NewHub() *Hub {
	return &Hub{clients: map[string]map[string]*client{}}
}

// Attach registers an upgraded connection and starts its pumps.
// A reconnecting player replaces their previous connection.
func (h *Hub) Attach(ge *engine.GameEngine, playerID string, conn *websocket.Conn) {
	c := &client{
		hub:      h,
		engine:   ge,
		playerID: playerID,
		conn:     conn,
		send:     make(chan []byte, 16),
	}

	h.mu.Lock()
	gameClients, ok := h.clients[ge.ID()]
	if !ok {
		gameClients = map[string]*client{}
		h.clients[ge.ID()] = gameClients
	}
	if prev, ok := gameClients[playerID]; ok {
		close(prev.send)
	}
	gameClients[playerID] = c
	h.mu.Unlock()

	go c.writePump()
	go c.readPump()
}

func (h *Hub) detach(c *client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	gameClients, ok := h.clients[c.engine.ID()]
	if !ok {
		return
	}
	if gameClients[c.playerID] == c {
		delete(gameClients, c.playerID)
		close(c.send)
	}
	if len(gameClients) == 0 {
		delete(h.clients, c.engine.ID())
	}
}

// PublishToGame sends an event to every connected player of a game.
func (h *Hub) PublishToGame(gameID string, cmd protocol.Cmd, payload interface{}) {
	msg, err := json.Marshal(Envelope{Type: cmd.String(), Data: payload})
	if err != nil {
		log.Printf("could not marshal %s event: %v", cmd, err)
		return
	}

	h.mu.RLock()
	defer h.mu.RUnlock()

	for _, c := range h.clients[gameID] {
		c.trySend(msg)
	}
}

// PublishToPlayer sends an event to a single player, if connected.
func (h *Hub) PublishToPlayer(gameID, playerID string, cmd protocol.Cmd, payload interface{}) {
	msg, err := json.Marshal(Envelope{Type: cmd.String(), Data: payload})
	if err != nil {
		log.Printf("could not marshal %s event: %v", cmd, err)
		return
	}

	h.mu.RLock()
	defer h.mu.RUnlock()

	if c, ok := h.clients[gameID][playerID]; ok {
		c.trySend(msg)
	}
}

func (c *client) trySend(msg []byte) {
	select {
	case c.send <- msg:
	default:
		// slow consumer; the write pump will close the connection
	}
}

func (c *client) readPump() {
	defer func() {
		c.hub.detach(c)
		c.conn.Close()
	}()

	c.conn.SetReadLimit(maxMessageSize)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		_, raw, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Printf("ws read: %v", err)
			}
			return
		}

		var req protocol.MoveRequest
		if err := json.Unmarshal(raw, &req); err != nil {
			c.hub.PublishToPlayer(c.engine.ID(), c.playerID, protocol.Error, err.Error())
			continue
		}

		if _, err := c.engine.HandleMove(c.playerID, req); err != nil {
			c.hub.PublishToPlayer(c.engine.ID(), c.playerID, protocol.Error, err.Error())
		}
	}
}

func (c *client) writePump() {
	ticker := time.NewTicker(pingPeriod)

	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case msg, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}

			w, err := c.conn.NextWriter(websocket.TextMessage)
			if err != nil {
				return
			}
			w.Write(msg)
			w.Close()

		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
