package controllers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Priest98/whatsapp-CRM/models"
	"github.com/Priest98/whatsapp-CRM/store"
)

func ListKnowledge(st *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, st.KnowledgeBase())
	}
}

func AddKnowledge(st *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.AddKnowledgeRequest
		if err := c.ShouldBindJSON(&req); err != nil ||
			strings.TrimSpace(req.Title) == "" || strings.TrimSpace(req.Content) == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
			return
		}
		category, ok := models.ParseKnowledgeCategory(req.Category)
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid category"})
			return
		}
		item := st.AddKnowledgeItem(req.Title, req.Content, category)
		c.JSON(http.StatusOK, item)
	}
}
