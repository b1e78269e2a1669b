package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/Priest98/whatsapp-CRM/assist"
	"github.com/Priest98/whatsapp-CRM/config"
	"github.com/Priest98/whatsapp-CRM/controllers"
	"github.com/Priest98/whatsapp-CRM/middlewares"
	"github.com/Priest98/whatsapp-CRM/store"
)

func Register(r *gin.Engine, cfg config.Config, st *store.Store, ai *assist.Client) {
	inflight := assist.NewInflight()

	api := r.Group("/api")
	{
		auth := api.Group("/auth")
		auth.POST("/login", controllers.Login(cfg, st))
		auth.GET("/session", controllers.Session(cfg, st))

		// Inbound message simulation (WhatsApp webhook stand-in)
		api.POST("/webhook/whatsapp", controllers.IncomingMessage(st))

		priv := api.Group("/")
		priv.Use(middlewares.Auth(cfg.JWTSecret))
		priv.GET("me", controllers.Me(st))
		// Conversation inbox
		priv.GET("inbox", controllers.Inbox(st))
		// Customers
		priv.GET("customers", controllers.ListCustomers(st))
		priv.POST("customers/import", controllers.ImportCustomers(st))
		priv.GET("customers/:id", controllers.GetCustomer(st))
		priv.PUT("customers/:id", controllers.UpdateCustomer(st))
		priv.GET("customers/:id/messages", controllers.GetThread(st))
		priv.POST("customers/:id/messages", controllers.SendMessage(st))
		// AI assist
		priv.POST("customers/:id/assist/reply", controllers.SuggestReply(st, ai, inflight))
		priv.POST("customers/:id/assist/classify", controllers.ScoreLead(st, ai, inflight))
		priv.POST("customers/:id/assist/summary", controllers.Summarize(st, ai, inflight))
		// Knowledge base
		priv.GET("knowledge", controllers.ListKnowledge(st))
		priv.POST("knowledge", controllers.AddKnowledge(st))
	}
}
