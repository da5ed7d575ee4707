// mktoken mints an API credential and prints the bearer token exactly once.
// Only the token's digest is stored, so a lost token cannot be recovered.
package main

import (
	"crypto/rand"
	"encoding/base64"
	"flag"
	"fmt"
	"log"
	"time"

	"flagit/internal/auth"
	"flagit/internal/config"
	"flagit/internal/db"
	"flagit/internal/models"

	"github.com/joho/godotenv"
)

func main() {
	var (
		uid   = flag.String("uid", "", "subject id the credential authenticates (required)")
		email = flag.String("email", "", "email attached to the identity (optional)")
		ttl   = flag.Duration("ttl", 30*24*time.Hour, "credential lifetime")
	)
	flag.Parse()

	if *uid == "" {
		log.Fatal("-uid is required")
	}

	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, reading env vars from system")
	}
	cfg := config.Load()

	gdb, err := db.Open(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	raw := make([]byte, 32)
	if _, err := rand.Read(raw); err != nil {
		log.Fatal(err)
	}
	token := base64.URLEncoding.EncodeToString(raw)

	cred := models.Credential{
		TokenHash: auth.HashToken(token),
		UID:       *uid,
		Email:     *email,
		ExpiresAt: time.Now().Add(*ttl),
	}
	if err := gdb.Create(&cred).Error; err != nil {
		log.Fatalf("Failed to store credential: %v", err)
	}

	fmt.Printf("token:   %s\nexpires: %s\n", token, cred.ExpiresAt.Format(time.RFC3339))
}
