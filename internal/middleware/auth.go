package middleware

import (
	"net/http"

	"hunthub/internal/store"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

const CheckUserKey = "user"

// AuthRequired ensures a user is logged in
func AuthRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		session := sessions.Default(c)
		if session.Get("user_id") == nil {
			c.Redirect(http.StatusFound, "/accounts/login")
			c.Abort()
			return
		}
		c.Next()
	}
}

// LoadUser resolves the session's user_id through the user repository and
// sets the user on the context. A stale session (deleted user) is cleared.
func LoadUser(users store.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		session := sessions.Default(c)
		userID := session.Get("user_id")

		if id, ok := userID.(uint); ok {
			user, err := users.ByID(id)
			if err == nil {
				c.Set(CheckUserKey, user)
			} else {
				session.Clear()
				session.Save()
			}
		}
		c.Next()
	}
}
