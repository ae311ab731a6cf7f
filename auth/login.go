package auth

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Sudarshan-939/vimala-2/gateway"
)

// Account auth is owned by the booking gateway; these handlers only
// forward credentials and hand back its token and user record.

type loginInput struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type adminLoginInput struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type googleLoginInput struct {
	Token string `json:"token" binding:"required"`
}

type registerInput struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// POST /auth/login
func Login(gw *gateway.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input loginInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		result, err := gw.Login(c.Request.Context(), input.Email, input.Password)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"message": "Login successful",
			"token":   result.Token,
			"user":    result.User,
		})
	}
}

// POST /auth/admin-login
func AdminLogin(gw *gateway.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input adminLoginInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		result, err := gw.AdminLogin(c.Request.Context(), input.Username, input.Password)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"message": "Login successful",
			"token":   result.Token,
			"user":    result.User,
		})
	}
}

// POST /auth/google
// The ID token from the sign-in popup is forwarded to the gateway for
// verification; it is never inspected here.
func GoogleLogin(gw *gateway.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input googleLoginInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		result, err := gw.GoogleLogin(c.Request.Context(), input.Token)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"message": "Login successful",
			"token":   result.Token,
			"user":    result.User,
		})
	}
}

// POST /auth/register
func Register(gw *gateway.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input registerInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		result, err := gw.Register(c.Request.Context(), input.Name, input.Email, input.Password)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		c.JSON(http.StatusCreated, gin.H{
			"message": "Account created successfully",
			"token":   result.Token,
			"user":    result.User,
		})
	}
}
