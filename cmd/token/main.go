package main

import (
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	tokens "github.com/ArowuTest/newslens-backend/pkg/jwt"
)

// Prints a bearer token for the data endpoints
func main() {
	subject := flag.String("sub", "api-client", "token subject")
	ttl := flag.Duration("ttl", 0, "token lifetime (defaults to JWT_EXPIRES_IN seconds)")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, using environment variables")
	}

	// The API config requires a database URI; minting a token only needs the JWT keys.
	v := viper.New()
	v.SetDefault("JWT_EXPIRES_IN", 86400)
	v.AutomaticEnv()

	secret := v.GetString("JWT_SECRET")
	if secret == "" {
		log.Fatal("JWT_SECRET environment variable is required")
	}

	lifetime := *ttl
	if lifetime == 0 {
		lifetime = time.Duration(v.GetInt("JWT_EXPIRES_IN")) * time.Second
	}

	tokenService, err := tokens.NewTokenService(secret, lifetime)
	if err != nil {
		log.Fatalf("Failed to configure tokens: %v", err)
	}

	token, err := tokenService.Issue(*subject)
	if err != nil {
		log.Fatalf("Failed to issue token: %v", err)
	}
	fmt.Println(token)
}
