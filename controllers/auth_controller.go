package controllers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Priest98/whatsapp-CRM/config"
	"github.com/Priest98/whatsapp-CRM/models"
	"github.com/Priest98/whatsapp-CRM/store"
	"github.com/Priest98/whatsapp-CRM/utils"
)

const tokenTTL = 24 * time.Hour

func Login(cfg config.Config, st *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.LoginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
			return
		}
		// Simulated latency on both outcomes, kept from the prototype.
		if cfg.AuthDelay > 0 {
			select {
			case <-time.After(cfg.AuthDelay):
			case <-c.Request.Context().Done():
				return
			}
		}
		user, err := st.Authenticate(req.Email, req.Password)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
			return
		}
		token, err := utils.GenerateJWT(cfg.JWTSecret, user.ID, user.BusinessID, string(user.Role), tokenTTL)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "token error"})
			return
		}
		c.JSON(http.StatusOK, models.AuthResponse{User: user, Token: token})
	}
}

// Session verifies a bearer token and recovers the user it encodes. Any
// decode, signature, expiry or lookup failure reads as an expired session.
func Session(cfg config.Config, st *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		h := c.GetHeader("Authorization")
		if !strings.HasPrefix(h, "Bearer ") {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "session expired"})
			return
		}
		claims, err := utils.ParseJWT(cfg.JWTSecret, strings.TrimPrefix(h, "Bearer "))
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "session expired"})
			return
		}
		user, ok := st.UserByID(claims.UserID)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "session expired"})
			return
		}
		c.JSON(http.StatusOK, user)
	}
}

func Me(st *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := st.UserByID(c.GetString("user_id"))
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "user not found"})
			return
		}
		c.JSON(http.StatusOK, user)
	}
}
