package main

import (
	"context"
	"log"
	"os"

	"chatrelay/internal/api"
	"chatrelay/internal/config"
	"chatrelay/internal/service/ai"
	"chatrelay/internal/service/chat"
	"chatrelay/internal/store"

	"github.com/gin-gonic/gin"
)

func main() {
	cfgPath := os.Getenv("CHATRELAY_CONFIG")
	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	apiKey, err := cfg.ReadAPIKey()
	if err != nil {
		log.Fatalf("load api key: %v", err)
	}

	client, err := ai.NewClient(context.Background(), cfg, apiKey)
	if err != nil {
		log.Fatalf("init completion client: %v", err)
	}

	chatService := chat.NewService(store.NewMemory(), client)
	handlers := api.NewHandler(chatService)

	router := gin.Default()
	origin := cfg.BasicConfig.AllowedOrigin
	if origin == "" {
		origin = "http://localhost:3000"
	}
	router.Use(api.CORSMiddleware(origin))
	handlers.RegisterRoutes(router)

	addr := cfg.BasicConfig.ServerAddress
	if addr == "" {
		addr = ":8090"
	}

	if err := router.Run(addr); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
