package websocket

import (
	"sync"

	"ShengJi/internal/utils"
)

type HubInterface interface {
	BroadcastToPlayers(names []string, msg OutgoingMessage)
	SendToPlayer(name string, msg OutgoingMessage)
	Close()
}

// Hub routes messages between player connections and the game layer. One
// goroutine owns the select loop; OnIncoming and OnAttach are called from it.
type Hub struct {
	clients    map[string]*Client // player name -> client
	register   chan *Client
	unregister chan *Client
	broadcast  chan broadcastReq
	sendOne    chan sendReq
	incoming   chan IncomingMessage
	OnIncoming func(IncomingMessage)
	OnAttach   func(player string) // reconnect restore hook
	quit       chan struct{}
	mu         sync.RWMutex
}

type broadcastReq struct {
	Names   []string
	Message OutgoingMessage
}

type sendReq struct {
	Name    string
	Message OutgoingMessage
}

func NewHub() *Hub {
	return &Hub{
		clients:    make(map[string]*Client),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		broadcast:  make(chan broadcastReq),
		sendOne:    make(chan sendReq),
		incoming:   make(chan IncomingMessage),
		quit:       make(chan struct{}),
	}
}

func (h *Hub) Run() {
	utils.Info.Printf("Hub started")

	for {
		select {
		case c := <-h.register:
			h.mu.Lock()
			if old, ok := h.clients[c.Player]; ok {
				// A fresh connection replaces a stale one for the same player.
				close(old.Send)
			}
			h.clients[c.Player] = c
			h.mu.Unlock()
			if h.OnAttach != nil {
				h.OnAttach(c.Player)
			}

		case c := <-h.unregister:
			h.mu.Lock()
			if cur, ok := h.clients[c.Player]; ok && cur == c {
				delete(h.clients, c.Player)
				close(c.Send)
			}
			h.mu.Unlock()

		case req := <-h.broadcast:
			h.mu.RLock()
			for _, name := range req.Names {
				if client, ok := h.clients[name]; ok {
					select {
					case client.Send <- req.Message:
					default:
						// slow consumer: drop rather than stall the loop
					}
				}
			}
			h.mu.RUnlock()

		case req := <-h.sendOne:
			h.mu.RLock()
			if client, ok := h.clients[req.Name]; ok {
				select {
				case client.Send <- req.Message:
				default:
				}
			}
			h.mu.RUnlock()

		case req := <-h.incoming:
			if h.OnIncoming != nil {
				h.OnIncoming(req)
			}

		case <-h.quit:
			h.mu.Lock()
			for _, c := range h.clients {
				close(c.Send)
			}
			h.clients = make(map[string]*Client)
			h.mu.Unlock()
			return
		}
	}
}

func (h *Hub) BroadcastToPlayers(names []string, msg OutgoingMessage) {
	h.broadcast <- broadcastReq{Names: names, Message: msg}
}

func (h *Hub) SendToPlayer(name string, msg OutgoingMessage) {
	h.sendOne <- sendReq{Name: name, Message: msg}
}

func (h *Hub) Close() {
	close(h.quit)
}
