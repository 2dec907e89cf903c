package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	MongoURI  string
	MongoDB   string
	Port      string
	JWTSecret string
}

func LoadConfig() *Config {
	// Only load .env when it exists; in production the platform injects
	// the environment directly.
	if _, err := os.Stat(".env"); err == nil {
		if err := godotenv.Load(); err != nil {
			log.Println("⚠️ Error loading .env file:", err)
		} else {
			log.Println("✅ .env file loaded successfully")
		}
	} else {
		log.Println("🌐 Using system environment variables")
	}

	return &Config{
		MongoURI:  getEnv("MONGO_URI", ""),
		MongoDB:   getEnv("MONGO_DB", "harmonyStore"),
		Port:      getEnv("PORT", "8080"),
		JWTSecret: getEnv("JWT_SECRET", "harmony-music-store-secret-key-2024"),
	}
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}
