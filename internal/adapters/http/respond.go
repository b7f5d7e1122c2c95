package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"collabmock/internal/datastore"
)

// errorEnvelope is the platform error payload:
//
//	{
//	    "message": "...",
//	    "errors": [ { "description": "..." } ],
//	    "trackingId": "EM_..."
//	}
type errorEnvelope struct {
	Message    string        `json:"message"`
	Errors     []errorDetail `json:"errors"`
	TrackingID string        `json:"trackingId"`
}

type errorDetail struct {
	Description string `json:"description"`
}

func sendError(c *gin.Context, status int, message string) {
	c.JSON(status, errorEnvelope{
		Message:    message,
		Errors:     []errorDetail{{Description: message}},
		TrackingID: "EM_" + uuid.NewString(),
	})
}

// sendStoreError maps a datastore error code to its HTTP status. Anything
// without a code is a bug surfacing, so it becomes a 500.
func sendStoreError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch datastore.CodeOf(err) {
	case datastore.CodePersonNotFound, datastore.CodeRoomNotFound, datastore.CodeMembershipNotFound:
		status = http.StatusNotFound
	case datastore.CodeNotAMember, datastore.CodeNotMemberOfRoom:
		status = http.StatusForbidden
	case datastore.CodeAlreadyAMember:
		status = http.StatusConflict
	}
	sendError(c, status, err.Error())
}
