package main

import (
	"log"

	"github.com/joho/godotenv"

	"toolbox-api/internal/application/services"
	"toolbox-api/internal/config"
	deliveryhttp "toolbox-api/internal/delivery/http"
	"toolbox-api/internal/infrastructure"
	"toolbox-api/internal/infrastructure/db/postgres"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment")
	}

	cfg := config.Load()
	if cfg.JWTSecretKey == "" {
		log.Fatal("JWTSECRETKEY must be set")
	}

	db, err := postgres.Connect(cfg.PostgreSQL)
	if err != nil {
		log.Fatal("Failed to connect to PostgreSQL: ", err)
	}

	personRepo := postgres.NewPersonRepository(db)
	townRepo := postgres.NewTownRepository(db)
	countryRepo := postgres.NewCountryRepository(db)
	groupRepo := postgres.NewGroupRepository(db)
	toolRepo := postgres.NewToolRepository(db)
	searchRepo := postgres.NewSearchRepository(db)

	tokenService := infrastructure.NewTokenService(cfg.JWTSecretKey, cfg.TokenTTL)
	redisService := infrastructure.NewRedisService()
	defer redisService.Close()
	mailer := infrastructure.NewMailer()
	loginLimiter := infrastructure.NewRateLimiter(cfg.LoginRateWindow, cfg.LoginRateLimit)

	server := deliveryhttp.NewServer(tokenService, deliveryhttp.Services{
		Account: services.NewAccountService(personRepo, townRepo, tokenService, redisService, mailer, loginLimiter),
		Search:  services.NewSearchService(townRepo, searchRepo),
		Group:   services.NewGroupService(groupRepo, townRepo, personRepo, toolRepo),
		Tool:    services.NewToolService(toolRepo, groupRepo, personRepo),
		Catalog: services.NewCatalogService(townRepo, countryRepo),
	}, cfg.GlobalRateLimit, cfg.GlobalRateBurst)

	log.Printf("Server listening on %s", cfg.ListenAddr)
	log.Fatal(server.Start(cfg.ListenAddr))
}
