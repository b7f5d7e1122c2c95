package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"collabmock/internal/datastore"
	"collabmock/internal/domain"
)

type handlers struct {
	ds *datastore.Datastore
}

type CreateRoomRequest struct {
	Title string `json:"title" binding:"required"`
	Type  string `json:"type" binding:"required"`
}

type CreateMembershipRequest struct {
	RoomID      string `json:"roomId" binding:"required"`
	PersonID    string `json:"personId" binding:"required"`
	IsModerator bool   `json:"isModerator"`
}

// itemsResponse wraps list results the way the platform does.
type itemsResponse[T any] struct {
	Items []T `json:"items"`
}

// GetPerson resolves a person by id; "me" is the authenticated actor.
func (h *handlers) GetPerson(c *gin.Context) {
	personID := c.Param("personId")
	if personID == "me" {
		c.JSON(http.StatusOK, actorFrom(c))
		return
	}

	person, err := h.ds.People.Find(domain.PersonID(personID))
	if err != nil {
		sendStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, person)
}

func (h *handlers) CreateRoom(c *gin.Context) {
	var req CreateRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusBadRequest, err.Error())
		return
	}

	room := h.ds.Rooms.Create(actorFrom(c), req.Title, req.Type)
	c.JSON(http.StatusOK, room)
}

func (h *handlers) ListRooms(c *gin.Context) {
	rooms := h.ds.Rooms.List(actorFrom(c))
	c.JSON(http.StatusOK, itemsResponse[domain.Room]{Items: rooms})
}

func (h *handlers) GetRoom(c *gin.Context) {
	room, err := h.ds.Rooms.Find(actorFrom(c), domain.RoomID(c.Param("roomId")))
	if err != nil {
		sendStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, room)
}

func (h *handlers) CreateMembership(c *gin.Context) {
	var req CreateMembershipRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		sendError(c, http.StatusBadRequest, err.Error())
		return
	}
	// The store treats a moderation request as a caller bug; screen it at
	// the boundary so a client cannot trip the contract panic.
	if req.IsModerator {
		sendError(c, http.StatusBadRequest, "Moderation is not supported")
		return
	}

	membership, err := h.ds.Memberships.Create(actorFrom(c), domain.RoomID(req.RoomID), domain.PersonID(req.PersonID), false)
	if err != nil {
		sendStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, membership)
}

func (h *handlers) ListMemberships(c *gin.Context) {
	memberships := h.ds.Memberships.List(actorFrom(c))
	c.JSON(http.StatusOK, itemsResponse[domain.Membership]{Items: memberships})
}

func (h *handlers) GetMembership(c *gin.Context) {
	membership, err := h.ds.Memberships.Find(actorFrom(c), domain.MembershipID(c.Param("membershipId")))
	if err != nil {
		sendStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, membership)
}
