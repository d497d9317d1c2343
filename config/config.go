package config

import (
	"crypto/rand"
	"encoding/hex"
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	ServerPort     string
	PingMessage    string
	StaticDir      string
	AdminUsername  string
	AdminPassword  string
	JWTSecret      string
	RabbitURL      string
	WhatsAppNumber string
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, using system environment variables")
	}

	return &Config{
		ServerPort:     getEnv("PORT", "8080"),
		PingMessage:    getEnv("PING_MESSAGE", "pong"),
		StaticDir:      getEnv("STATIC_DIR", "dist/spa"),
		AdminUsername:  getEnv("ADMIN_USERNAME", "199107747"),
		AdminPassword:  getEnv("ADMIN_PASSWORD", "Kheslaonda"),
		JWTSecret:      getEnv("JWT_SECRET", randomSecret()),
		RabbitURL:      os.Getenv("RABBITMQ_URL"),
		WhatsAppNumber: getEnv("WHATSAPP_NUMBER", "934423169"),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// randomSecret generates a per-boot signing secret so that admin sessions
// do not survive a restart when no JWT_SECRET is configured.
func randomSecret() string {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		log.Fatalf("failed to generate jwt secret: %v", err)
	}
	return hex.EncodeToString(b)
}
