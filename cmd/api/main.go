package main

import (
	"context"
	"log"
	"time"

	"github.com/gin-gonic/gin"

	"harmony-store/internal/auth"
	"harmony-store/internal/cache"
	"harmony-store/internal/config"
	"harmony-store/internal/database"
	"harmony-store/internal/repository"
	"harmony-store/internal/routes"
)

func main() {
	cfg := config.LoadConfig()

	issuer := auth.NewIssuer(cfg.JWTSecret, auth.TokenTTL)
	store := cache.New(5 * time.Minute)
	defer store.Close()

	deps := routes.Deps{Issuer: issuer, Cache: store}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	client, err := database.Connect(ctx, cfg.MongoURI)
	if err != nil {
		// Unreachable backend is not fatal: serve the seeded demo data
		// from memory instead.
		log.Println("⚠️ MongoDB unreachable, falling back to in-memory demo store:", err)
		deps.Accounts = repository.NewMemoryAccounts(repository.SeedUsers()...)
		deps.Catalog = repository.NewMemoryCatalog(repository.SeedProducts()...)
		deps.Orders = repository.NewMemoryOrders()
	} else {
		db := client.Database(cfg.MongoDB)
		accounts := repository.NewMongoAccounts(db)
		if err := accounts.EnsureIndexes(ctx); err != nil {
			log.Fatal(err)
		}
		deps.Accounts = accounts
		deps.Catalog = repository.NewMongoCatalog(db)
		deps.Orders = repository.NewMongoOrders(db)
	}

	router := gin.Default()
	routes.RegisterRoutes(router, deps)

	log.Println("🎵 Harmony Store server running on port", cfg.Port)
	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
