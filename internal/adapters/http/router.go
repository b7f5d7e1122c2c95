package http

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"collabmock/internal/config"
	"collabmock/internal/datastore"
)

func SetupRouter(cfg *config.Config, ds *datastore.Datastore) *gin.Engine {
	if cfg.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	if cfg.Mode == "debug" {
		r.Use(gin.Logger())
	}
	r.Use(gin.Recovery())

	h := &handlers{ds: ds}

	api := r.Group("/")
	api.Use(AuthMiddleware(ds))

	api.GET("/people/:personId", h.GetPerson)

	api.POST("/rooms", h.CreateRoom)
	api.GET("/rooms", h.ListRooms)
	api.GET("/rooms/:roomId", h.GetRoom)

	api.POST("/memberships", h.CreateMembership)
	api.GET("/memberships", h.ListMemberships)
	api.GET("/memberships/:membershipId", h.GetMembership)

	log.Info().Str("module", "adapters.http").Msg("router setup")
	return r
}
