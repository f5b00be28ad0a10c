package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/laiba-javaid/Notes-Management-System-laiba-javaid-mern-10pshine/services"
	"github.com/laiba-javaid/Notes-Management-System-laiba-javaid-mern-10pshine/utils"
)

// UserIDKey is where the verified caller identity lives in the gin context.
// It is the only identity downstream handlers may use for scoping; user ids
// arriving in the body or query are never trusted.
const UserIDKey = "userID"

// AuthMiddleware gates the protected routes. A missing or non-bearer header
// is 401 (log in); a present but rejected token is 403 (token rejected), so
// clients can tell the two apart.
func AuthMiddleware(tokens *services.TokenManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			utils.TrackAuthAttempt("failure", "token_missing")
			utils.Fail(c, http.StatusUnauthorized, "Missing or invalid token")
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		userID, err := tokens.Parse(tokenString)
		if err != nil {
			utils.TrackAuthAttempt("failure", "token_rejected")
			utils.Fail(c, http.StatusForbidden, "Invalid or expired token")
			c.Abort()
			return
		}

		utils.TrackAuthAttempt("success", "token")
		c.Set(UserIDKey, userID)
		c.Next()
	}
}
