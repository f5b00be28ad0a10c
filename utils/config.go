package utils

import (
	"errors"
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Config carries everything the components need at construction time. It is
// built once in main and passed in explicitly; nothing reads the environment
// after startup.
type Config struct {
	MongoURI        string
	MongoDB         string
	UsersCollection string
	NotesCollection string
	JWTSecretKey    string
	// TokenExpiry defaults to the historical 3600m (60h). That is far too
	// long for a bearer token with no revocation path; shorten it via the
	// TOKEN_EXPIRY env var.
	TokenExpiry time.Duration
	Port        string
	CORSOrigin  string
}

// LoadConfig reads .env (when present) and the process environment.
func LoadConfig() (*Config, error) {
	// .env is optional outside local development
	_ = godotenv.Load()

	cfg := &Config{
		MongoURI:        os.Getenv("MONGO_URI"),
		MongoDB:         GetEnvAsString("MONGO_DB", "notes_app"),
		UsersCollection: GetEnvAsString("USERS_COLLECTION", "users"),
		NotesCollection: GetEnvAsString("NOTES_COLLECTION", "notes"),
		JWTSecretKey:    os.Getenv("JWT_SECRET_KEY"),
		TokenExpiry:     GetEnvAsDuration("TOKEN_EXPIRY", 3600*time.Minute),
		Port:            GetEnvAsString("PORT", "8000"),
		CORSOrigin:      GetEnvAsString("CORS_ORIGIN", "http://localhost:5173"),
	}

	if cfg.MongoURI == "" {
		return nil, errors.New("MONGO_URI is not set")
	}
	if cfg.JWTSecretKey == "" {
		return nil, errors.New("JWT_SECRET_KEY is not set")
	}

	return cfg, nil
}
