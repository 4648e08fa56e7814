// handlers/workspace.go - team workspace chat over websocket
package handlers

import (
	"log"
	"strconv"
	"sync"
	"time"

	"hacknet/database"
	"hacknet/metrics"
	"hacknet/models"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
	"github.com/google/uuid"
)

const sendBufferSize = 32

// Message is a workspace chat frame. Messages are fan-out only: nothing is
// persisted and delivery is best effort.
type Message struct {
	Type   string `json:"type"`
	Sender string `json:"sender,omitempty"`
	Text   string `json:"text,omitempty"`
	SentAt int64  `json:"sent_at,omitempty"`
}

type wsClient struct {
	id     string
	userID uint
	name   string
	conn   *websocket.Conn
	send   chan Message
}

var (
	rooms   = make(map[uint]map[*wsClient]bool)
	roomsMu sync.RWMutex
)

// WorkspaceUpgradeCheck rejects plain HTTP requests on the websocket route
func WorkspaceUpgradeCheck(c *fiber.Ctx) error {
	if websocket.IsWebSocketUpgrade(c) {
		return c.Next()
	}
	return fiber.ErrUpgradeRequired
}

// WorkspaceSocket joins the caller to a team's workspace room. Entry requires
// hosting the team or holding a join request for it, checked server-side on
// every connection.
// GET /ws/teams/:id
func WorkspaceSocket() fiber.Handler {
	return websocket.New(func(conn *websocket.Conn) {
		teamID, err := strconv.ParseUint(conn.Params("id"), 10, 32)
		if err != nil {
			conn.WriteJSON(Message{Type: "error", Text: "Invalid team ID"})
			conn.Close()
			return
		}

		userIDRaw := conn.Locals("userId")
		var userID uint
		switch v := userIDRaw.(type) {
		case float64:
			userID = uint(v)
		case uint:
			userID = v
		default:
			conn.WriteJSON(Message{Type: "error", Text: "Unauthorized"})
			conn.Close()
			return
		}

		if !membershipService.CanEnterWorkspace(userID, uint(teamID)) {
			conn.WriteJSON(Message{Type: "error", Text: "Workspace entry requires a join request"})
			conn.Close()
			return
		}

		db := database.GetDB()
		var user models.User
		if err := db.First(&user, userID).Error; err != nil {
			conn.WriteJSON(Message{Type: "error", Text: "User not found"})
			conn.Close()
			return
		}

		serveWorkspace(conn, uint(teamID), userID, user.Name)
	})
}

func serveWorkspace(conn *websocket.Conn, teamID, userID uint, name string) {
	client := &wsClient{
		id:     uuid.New().String(),
		userID: userID,
		name:   name,
		conn:   conn,
		send:   make(chan Message, sendBufferSize),
	}

	joinRoom(teamID, client)
	metrics.WorkspaceConnections.Inc()
	log.Printf("Workspace %d: %s connected", teamID, name)

	client.send <- Message{Type: "system", Text: "Welcome to the team HQ.", SentAt: time.Now().Unix()}
	broadcast(teamID, client, Message{Type: "presence", Sender: name, Text: "joined", SentAt: time.Now().Unix()})

	go client.writePump()
	client.readPump(teamID)

	leaveRoom(teamID, client)
	metrics.WorkspaceConnections.Dec()
	broadcast(teamID, nil, Message{Type: "presence", Sender: name, Text: "left", SentAt: time.Now().Unix()})
	close(client.send)
	log.Printf("Workspace %d: %s disconnected", teamID, name)
}

func (c *wsClient) readPump(teamID uint) {
	for {
		var msg Message
		if err := c.conn.ReadJSON(&msg); err != nil {
			return
		}
		if msg.Type != "chat" || msg.Text == "" {
			continue
		}

		out := Message{
			Type:   "chat",
			Sender: c.name,
			Text:   msg.Text,
			SentAt: time.Now().Unix(),
		}
		broadcast(teamID, nil, out)
	}
}

func (c *wsClient) writePump() {
	for msg := range c.send {
		if err := c.conn.WriteJSON(msg); err != nil {
			return
		}
	}
}

func joinRoom(teamID uint, client *wsClient) {
	roomsMu.Lock()
	defer roomsMu.Unlock()

	if rooms[teamID] == nil {
		rooms[teamID] = make(map[*wsClient]bool)
	}
	rooms[teamID][client] = true
}

func leaveRoom(teamID uint, client *wsClient) {
	roomsMu.Lock()
	defer roomsMu.Unlock()

	delete(rooms[teamID], client)
	if len(rooms[teamID]) == 0 {
		delete(rooms, teamID)
	}
}

// broadcast fans a message out to the room, skipping exclude when non-nil.
// Non-blocking: a slow reader drops frames instead of stalling the room.
func broadcast(teamID uint, exclude *wsClient, msg Message) {
	roomsMu.RLock()
	defer roomsMu.RUnlock()

	for client := range rooms[teamID] {
		if client == exclude {
			continue
		}
		select {
		case client.send <- msg:
		default:
		}
	}
}
