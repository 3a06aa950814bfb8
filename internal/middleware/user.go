package middleware

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/ginext"
)

const (
	UserIDHeader = "X-User-ID"
	userIDKey    = "user_id"
)

// CurrentUser stores the caller's id from the X-User-ID header, when it holds a valid UUID.
func CurrentUser() ginext.HandlerFunc {
	return func(c *ginext.Context) {
		if id, err := uuid.Parse(c.GetHeader(UserIDHeader)); err == nil {
			c.Set(userIDKey, id.String())
		}
		c.Next()
	}
}

// RequireUser rejects requests that CurrentUser could not identify.
func RequireUser() ginext.HandlerFunc {
	return func(c *ginext.Context) {
		if _, ok := UserID(c); !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				ginext.H{"message": "Authentication required"},
			)
			return
		}
		c.Next()
	}
}

func UserID(c *ginext.Context) (string, bool) {
	id := c.GetString(userIDKey)
	return id, id != ""
}
