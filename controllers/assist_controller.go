package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Priest98/whatsapp-CRM/assist"
	"github.com/Priest98/whatsapp-CRM/models"
	"github.com/Priest98/whatsapp-CRM/store"
)

const (
	opReply    = "reply"
	opClassify = "classify"
	opSummary  = "summary"
)

// SuggestReply drafts a reply for the customer's thread ("Magic Suggest").
// One call per customer at a time; the model call runs on the request
// context so a navigated-away client cancels it.
func SuggestReply(st *store.Store, ai *assist.Client, inflight *assist.Inflight) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		if _, ok := st.Customer(id); !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "customer not found"})
			return
		}
		if !inflight.TryAcquire(id, opReply) {
			c.JSON(http.StatusConflict, gin.H{"error": "request already in progress"})
			return
		}
		defer inflight.Release(id, opReply)
		reply := ai.GenerateReply(c.Request.Context(), st.Thread(id), st.KnowledgeBase())
		c.JSON(http.StatusOK, gin.H{"reply": reply})
	}
}

// ScoreLead classifies the thread and writes the resulting status back to
// the customer record.
func ScoreLead(st *store.Store, ai *assist.Client, inflight *assist.Inflight) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		if _, ok := st.Customer(id); !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "customer not found"})
			return
		}
		if !inflight.TryAcquire(id, opClassify) {
			c.JSON(http.StatusConflict, gin.H{"error": "request already in progress"})
			return
		}
		defer inflight.Release(id, opClassify)
		result := ai.ClassifyLead(c.Request.Context(), st.Thread(id))
		if _, err := st.UpdateCustomer(id, models.CustomerPatch{LeadStatus: &result.Status}); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "update failed"})
			return
		}
		c.JSON(http.StatusOK, result)
	}
}

func Summarize(st *store.Store, ai *assist.Client, inflight *assist.Inflight) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		if _, ok := st.Customer(id); !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "customer not found"})
			return
		}
		if !inflight.TryAcquire(id, opSummary) {
			c.JSON(http.StatusConflict, gin.H{"error": "request already in progress"})
			return
		}
		defer inflight.Release(id, opSummary)
		summary := ai.SummarizeConversation(c.Request.Context(), id, st.Thread(id))
		c.JSON(http.StatusOK, gin.H{"summary": summary})
	}
}
