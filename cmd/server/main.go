package main

import (
	"log"
	"net/http"
	"os"
	"strings"

	"dpizza_backend/internal/router"
	"dpizza_backend/internal/store"
	"dpizza_backend/pkg/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	utils.InitLogger()

	storePath := utils.Getenv("STORE_PATH", "dpizza.db")
	st, err := store.Open(storePath)
	if err != nil {
		utils.LogError(err, "Failed to open store")
		log.Fatalf("Failed to open store: %v", err)
	}
	defer st.Close()
	utils.LogInfo("Store opened", map[string]interface{}{"path": storePath})

	engine := gin.Default()
	engine.Use(utils.GinLogger())

	// Both the customer storefront and the admin console are served as
	// static pages elsewhere and call this API cross-origin.
	corsAllowedOriginsEnv := os.Getenv("CORS_ALLOWED_ORIGINS")
	var allowedOrigins []string
	if corsAllowedOriginsEnv != "" {
		allowedOrigins = strings.Split(corsAllowedOriginsEnv, ",")
	} else {
		allowedOrigins = []string{"http://localhost:3000", "http://localhost:3001"}
	}

	config := cors.DefaultConfig()
	config.AllowOrigins = allowedOrigins
	config.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	config.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "X-Session-Id"}
	engine.Use(cors.New(config))

	engine.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	if err := router.Setup(engine, st); err != nil {
		utils.LogError(err, "Failed to set up routes")
		log.Fatalf("Failed to set up routes: %v", err)
	}

	port := utils.Getenv("PORT", "8080")
	utils.LogInfo("Server starting", map[string]interface{}{"port": port})

	if err := engine.Run(":" + port); err != nil {
		utils.LogError(err, "Failed to start server")
		log.Fatalf("Failed to start server: %v", err)
	}
}
