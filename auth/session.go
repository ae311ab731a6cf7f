package auth

import (
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// POST /auth/session
// Issues a guest session token. The session id keys the in-memory
// cart; no account is required to browse or book.
func CreateSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID := "sess_" + uuid.NewString()
		expiresAt := time.Now().Add(24 * time.Hour)

		token, err := issueSessionToken(sessionID, expiresAt)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Token generation failed"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"session_id": sessionID,
			"token":      token,
			"expires_at": expiresAt,
		})
	}
}

func issueSessionToken(id string, expiresAt time.Time) (string, error) {
	claims := jwt.MapClaims{
		"session_id": id,
		"role":       "guest",
		"exp":        expiresAt.Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(os.Getenv("JWT_SECRET")))
}
