package http

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"collabmock/internal/datastore"
	"collabmock/internal/domain"
)

const actorKey = "actor"

// AuthMiddleware resolves the bearer token to a seeded person and stores it
// on the request context. Identity is mocked: the token is the person's id,
// and a resolvable token is trusted as already authenticated.
func AuthMiddleware(ds *datastore.Datastore) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := strings.CutPrefix(c.GetHeader("Authorization"), "Bearer ")
		if !ok || token == "" {
			sendError(c, http.StatusUnauthorized, "Authentication credentials were missing or incorrect.")
			c.Abort()
			return
		}

		person, err := ds.People.Find(domain.PersonID(token))
		if err != nil {
			sendError(c, http.StatusUnauthorized, "Authentication credentials were missing or incorrect.")
			c.Abort()
			return
		}

		c.Set(actorKey, &person)
		c.Next()
	}
}

func actorFrom(c *gin.Context) *domain.Person {
	return c.MustGet(actorKey).(*domain.Person)
}
