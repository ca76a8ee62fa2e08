package main

import (
	"context"
	"os"
	"strings"
	"time"

	"beautycabin/internal/auth/hasher"
	authrepository "beautycabin/internal/auth/repository"
	"beautycabin/pkg/config"
)

const JobName = "seed-admin"

// seed-admin creates the admin named by ADMIN_USERNAME, or rotates its
// password when it already exists.
func main() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	cfg := config.Load(JobName)

	username := strings.TrimSpace(os.Getenv(config.EnvAdminUsername))
	password := os.Getenv(config.EnvAdminPassword)
	if username == "" || password == "" {
		cfg.Log.Fatal("ADMIN_USERNAME and ADMIN_PASSWORD must be set")
	}

	hash, err := hasher.NewBcryptHasher(cfg.BcryptCost).Hash(password)
	if err != nil {
		cfg.Log.Fatal("Failed to hash admin password", "error", err)
	}

	cfg.SetMongo()
	defer cfg.GracefulShutdown()

	admin, err := authrepository.NewMongoAdminRepository(cfg).Upsert(ctx, username, hash)
	if err != nil {
		cfg.GracefulShutdown()
		cfg.Log.Fatal("Failed to seed admin", "error", err)
	}
	cfg.Log.Info("Admin credential stored", "admin_id", admin.ID, "username", admin.Username)
}
