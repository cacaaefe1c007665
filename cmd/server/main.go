package main

import (
	"log"
	"os"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"velour_storefront/internal/cache"
	"velour_storefront/internal/config"
	"velour_storefront/internal/middleware"
	"velour_storefront/internal/routes"
)

func main() {
	config.Load()

	sessionSecret := os.Getenv("SESSION_SECRET")
	if sessionSecret == "" {
		log.Fatal("❌ SESSION_SECRET manquant dans .env")
	}
	middleware.InitSessionStore(sessionSecret)

	if err := cache.InitRedis(); err != nil {
		log.Fatal("❌ Impossible d'initialiser Redis : ", err)
	}
	defer cache.CloseRedis()

	log.Println("✅ API commerce ciblée :", config.CommerceAPIURL())

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{config.FrontendOrigin()},
		AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	routes.RegisterRoutes(r)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.Println("🚀 Passerelle vitrine lancée sur le port", port)
	r.Run(":" + port)
}
