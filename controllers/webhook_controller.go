package controllers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Priest98/whatsapp-CRM/models"
	"github.com/Priest98/whatsapp-CRM/store"
)

// IncomingMessage records an inbound WhatsApp message for the customer
// matching the sender's phone number.
func IncomingMessage(st *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.IncomingMessageRequest
		if err := c.ShouldBindJSON(&req); err != nil ||
			strings.TrimSpace(req.PhoneNumber) == "" || strings.TrimSpace(req.Content) == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
			return
		}
		msg, err := st.RecordIncoming(req.PhoneNumber, req.Content)
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "unknown phone number"})
			return
		}
		c.JSON(http.StatusOK, msg)
	}
}
