package controllers

import (
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Priest98/whatsapp-CRM/models"
	"github.com/Priest98/whatsapp-CRM/store"
)

func Inbox(st *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, st.Inbox())
	}
}

func ListCustomers(st *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, st.Customers())
	}
}

func GetCustomer(st *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		customer, ok := st.Customer(c.Param("id"))
		if !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "customer not found"})
			return
		}
		c.JSON(http.StatusOK, customer)
	}
}

func UpdateCustomer(st *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var patch models.CustomerPatch
		if err := c.ShouldBindJSON(&patch); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
			return
		}
		customer, err := st.UpdateCustomer(c.Param("id"), patch)
		switch {
		case errors.Is(err, store.ErrCustomerNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "customer not found"})
		case errors.Is(err, store.ErrInvalidLeadStatus):
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid lead status"})
		case err != nil:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "update failed"})
		default:
			c.JSON(http.StatusOK, customer)
		}
	}
}

func GetThread(st *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		if _, ok := st.Customer(id); !ok {
			c.JSON(http.StatusNotFound, gin.H{"error": "customer not found"})
			return
		}
		c.JSON(http.StatusOK, st.Thread(id))
	}
}

func SendMessage(st *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req models.SendMessageRequest
		if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.Content) == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body or missing content"})
			return
		}
		msg, err := st.SendMessage(c.Param("id"), req.Content)
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "customer not found"})
			return
		}
		c.JSON(http.StatusOK, msg)
	}
}

// ImportCustomers accepts a multipart CSV/XLSX upload of customer rows.
func ImportCustomers(st *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		file, hdr, err := c.Request.FormFile("file")
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "missing file"})
			return
		}
		defer file.Close()
		buf, err := io.ReadAll(file)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "unreadable file"})
			return
		}
		added, skipped, err := st.ImportCustomers(hdr.Filename, buf)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"imported": added, "skipped": skipped})
	}
}
