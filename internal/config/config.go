package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

func Load() {
	err := godotenv.Load(".env")
	if err != nil {
		log.Println("⚠️  Aucun fichier .env trouvé — on continue avec les variables d'environnement du système")
	} else {
		log.Println("✅ Fichier .env chargé avec succès")
	}
}

// CommerceAPIURL est l'URL de base de l'API commerce distante.
func CommerceAPIURL() string {
	if url := os.Getenv("COMMERCE_API_URL"); url != "" {
		return url
	}
	return "https://swordigo-back-production.up.railway.app"
}

// FrontendOrigin est l'origine autorisée pour le CORS.
func FrontendOrigin() string {
	if origin := os.Getenv("FRONTEND_ORIGIN"); origin != "" {
		return origin
	}
	return "http://localhost:5173"
}
