package helpers

import (
	model "bid-engine/internal/models"

	"github.com/gin-gonic/gin"
)

const actorKey = "actor"

// SetActor stores the authenticated caller on the request context
func SetActor(c *gin.Context, a model.Actor) {
	c.Set(actorKey, a)
}

// ActorFrom returns the caller stored by the identity middleware
func ActorFrom(c *gin.Context) model.Actor {
	if v, ok := c.Get(actorKey); ok {
		if a, ok := v.(model.Actor); ok {
			return a
		}
	}
	return model.Actor{}
}
