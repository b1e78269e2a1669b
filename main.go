package main

import (
	"context"
	"log"
	"os"

	"github.com/gin-gonic/gin"

	"github.com/Priest98/whatsapp-CRM/assist"
	"github.com/Priest98/whatsapp-CRM/config"
	"github.com/Priest98/whatsapp-CRM/routes"
	"github.com/Priest98/whatsapp-CRM/store"
)

func main() {
	cfg := config.Load()

	st := store.NewSeeded()
	if cfg.SeedFile != "" {
		data, err := os.ReadFile(cfg.SeedFile)
		if err != nil {
			log.Fatalf("seed file read error: %v", err)
		}
		added, skipped, err := st.ImportCustomers(cfg.SeedFile, data)
		if err != nil {
			log.Fatalf("seed import error: %v", err)
		}
		log.Printf("seed import: %d customers added, %d rows skipped", added, skipped)
	}

	gen, err := assist.NewGemini(context.Background(), cfg.GeminiAPIKey, cfg.GeminiModel)
	if err != nil {
		log.Fatalf("gemini client error: %v", err)
	}
	defer gen.Close()
	ai := assist.New(gen, cfg.BusinessName)

	r := gin.Default()
	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}
		c.Next()
	})
	routes.Register(r, cfg, st, ai)
	log.Printf("server on :%s", cfg.Port)
	r.Run(":" + cfg.Port)
}
