package manager

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"ShengJi/internal/game/rules"
	"ShengJi/internal/storage"
)

type Handler struct {
	mgr *RoomManager
}

func NewHandler(mgr *RoomManager) *Handler {
	return &Handler{mgr: mgr}
}

type createRoomRequest struct {
	Name string `json:"name" binding:"required"`
}

type joinRequest struct {
	Seat *int `json:"seat"` // nil means first free seat
}

// POST /rooms  body: {name}
func (h *Handler) Create(c *gin.Context) {
	var req createRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	r, err := h.mgr.CreateRoom(req.Name)
	if err != nil {
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": r.ID, "name": r.Name})
}

// POST /rooms/:name/join  body: {seat?}
func (h *Handler) Join(c *gin.Context) {
	var req joinRequest
	if err := c.ShouldBindJSON(&req); err != nil && c.Request.ContentLength > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	seat := -1
	if req.Seat != nil {
		seat = *req.Seat
	}
	player := c.GetString("username")
	if err := h.mgr.Join(c.Param("name"), player, seat); err != nil {
		respondGameError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// POST /rooms/:name/start
func (h *Handler) Start(c *gin.Context) {
	player := c.GetString("username")
	if err := h.mgr.Start(c.Param("name"), player); err != nil {
		respondGameError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// GET /rooms/:name/state returns the caller's private view when seated,
// otherwise the public snapshot.
func (h *Handler) State(c *gin.Context) {
	r, ok := h.mgr.Room(c.Param("name"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "room not found"})
		return
	}
	player := c.GetString("username")
	if view, err := r.View(player); err == nil {
		c.JSON(http.StatusOK, view)
		return
	}
	c.JSON(http.StatusOK, r.Snapshot())
}

// GET /rooms/mine returns the room the caller is seated in, for resume after a
// client restart.
func (h *Handler) Mine(c *gin.Context) {
	player := c.GetString("username")
	if r, ok := h.mgr.roomOf(player); ok {
		c.JSON(http.StatusOK, gin.H{"room": r.Name})
		return
	}
	// Registry fallback covers bindings written by another API node.
	if h.mgr.registry != nil {
		if name, err := h.mgr.registry.PlayerRoom(storage.Ctx, player); err == nil && name != "" {
			c.JSON(http.StatusOK, gin.H{"room": name})
			return
		}
	}
	c.JSON(http.StatusNotFound, gin.H{"error": "no active room"})
}

func respondGameError(c *gin.Context, err error) {
	status := http.StatusBadRequest
	if _, ok := err.(rules.Reject); !ok && strings.Contains(err.Error(), "not found") {
		status = http.StatusNotFound
	}
	c.JSON(status, gin.H{"error": err.Error()})
}
