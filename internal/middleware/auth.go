package middleware

import (
	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/komisi-informasi/case-management-api/internal/constants"
	apierrors "github.com/komisi-informasi/case-management-api/internal/errors"
	"github.com/komisi-informasi/case-management-api/internal/services"
)

// RequireAuth resolves the session user into an Actor on the request
// context. The session only stores the user ID; the role is re-read from
// storage on every request so deactivation and role changes take effect
// immediately.
func RequireAuth(authService *services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		session := sessions.Default(c)
		sessionUserID := session.Get(constants.ContextKeyUserID)

		if sessionUserID == nil {
			apierrors.Unauthorized(c, "")
			c.Abort()
			return
		}

		userID, ok := toUint64(sessionUserID)
		if !ok {
			apierrors.Unauthorized(c, "")
			c.Abort()
			return
		}

		user, err := authService.GetUser(userID)
		if err != nil || !user.IsActive {
			apierrors.Unauthorized(c, "")
			c.Abort()
			return
		}

		c.Set(constants.ContextKeyUserID, user.ID)
		c.Set(constants.ContextKeyActor, services.Actor{ID: user.ID, Role: user.Role})
		c.Next()
	}
}

// GetActor retrieves the resolved actor from context.
func GetActor(c *gin.Context) (services.Actor, bool) {
	value, exists := c.Get(constants.ContextKeyActor)
	if !exists {
		return services.Actor{}, false
	}

	actor, ok := value.(services.Actor)
	return actor, ok
}

// GetUserID retrieves the current user ID from context.
func GetUserID(c *gin.Context) (uint64, bool) {
	userID, exists := c.Get(constants.ContextKeyUserID)
	if !exists {
		return 0, false
	}

	return toUint64(userID)
}

func toUint64(value interface{}) (uint64, bool) {
	switch v := value.(type) {
	case uint64:
		return v, true
	case uint:
		return uint64(v), true
	case int:
		if v < 0 {
			return 0, false
		}
		return uint64(v), true
	default:
		return 0, false
	}
}
