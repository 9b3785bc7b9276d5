package httpapi

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/avoronov/authgate/internal/server/auth"
	"github.com/avoronov/authgate/internal/shared"
)

// userIDKey is the gin context key under which the gate stores the verified
// token's user id for downstream handlers.
const userIDKey = "userID"

// TokenGate guards protected routes. It expects an
// `Authorization: Bearer <token>` header: a missing token is rejected with
// 401, an invalid one with 400.
func TokenGate(secretKey []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		var token string

		header := c.GetHeader("Authorization")
		parts := strings.SplitN(header, " ", 2)
		if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
			token = strings.TrimSpace(parts[1])
		}

		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, MessageResponse{Msg: shared.ErrorMissingToken.Error()})
			return
		}

		userID, err := auth.GetUserIDFromToken(token, secretKey)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, MessageResponse{Msg: shared.ErrorInvalidToken.Error()})
			return
		}

		c.Set(userIDKey, userID)
		c.Next()
	}
}
