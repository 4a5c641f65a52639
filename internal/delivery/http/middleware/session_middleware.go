package middleware

import (
	"go-careerhub-backend/internal/domain"

	"github.com/gin-gonic/gin"
)

// Session stows the current actor into the request context so usecases can
// evaluate permissions. A missing session is not an error here: read
// endpoints and login must still pass, and the usecase layer denies
// whatever requires an actor.
func Session(sessionUC domain.SessionUsecase) gin.HandlerFunc {
	return func(c *gin.Context) {
		if actor := sessionUC.Current(c.Request.Context()); actor != nil {
			ctx := domain.WithActor(c.Request.Context(), actor)
			c.Request = c.Request.WithContext(ctx)
		}
		c.Next()
	}
}
