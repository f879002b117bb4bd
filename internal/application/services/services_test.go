package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"toolbox-api/internal/application/command"
	"toolbox-api/internal/application/interfaces"
	"toolbox-api/internal/domain/entities"
	"toolbox-api/internal/domain/repositories"
	"toolbox-api/internal/infrastructure"
	"toolbox-api/internal/infrastructure/db/postgres"
)

// testEnv wires the full service stack over an in-memory store. Redis
// is unreachable in tests, so the profile cache runs in its degraded
// no-op mode and every read hits the database.
type testEnv struct {
	accounts interfaces.AccountService
	groups   interfaces.GroupService
	tools    interfaces.ToolService
	catalog  interfaces.CatalogService
	search   interfaces.SearchService

	tokenService *infrastructure.TokenService
	townRepo     repositories.TownRepository
	groupRepo    repositories.GroupRepository
}

func newTestEnv(t *testing.T, loginLimit int) *testEnv {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, postgres.Migrate(db))

	personRepo := postgres.NewPersonRepository(db)
	townRepo := postgres.NewTownRepository(db)
	countryRepo := postgres.NewCountryRepository(db)
	groupRepo := postgres.NewGroupRepository(db)
	toolRepo := postgres.NewToolRepository(db)
	searchRepo := postgres.NewSearchRepository(db)

	tokenService := infrastructure.NewTokenService("test-secret", time.Hour)
	redisService := infrastructure.NewRedisService()
	mailer := infrastructure.NewMailer()
	rateLimiter := infrastructure.NewRateLimiter(time.Minute, loginLimit)

	return &testEnv{
		accounts:     NewAccountService(personRepo, townRepo, tokenService, redisService, mailer, rateLimiter),
		groups:       NewGroupService(groupRepo, townRepo, personRepo, toolRepo),
		tools:        NewToolService(toolRepo, groupRepo, personRepo),
		catalog:      NewCatalogService(townRepo, countryRepo),
		search:       NewSearchService(townRepo, searchRepo),
		tokenService: tokenService,
		townRepo:     townRepo,
		groupRepo:    groupRepo,
	}
}

func (e *testEnv) register(t *testing.T, email, alias string) *command.RegisterPersonCommandResult {
	t.Helper()

	result, err := e.accounts.Register(context.Background(), &command.RegisterPersonCommand{
		Email:     email,
		Alias:     alias,
		FirstName: "Test",
		LastName:  "Person",
		Password:  "secret",
	})
	require.NoError(t, err)
	return result
}

func (e *testEnv) createTown(t *testing.T, name string, lat, lon float64) *entities.Town {
	t.Helper()

	town := entities.NewTown(name, "BE", lat, lon)
	created, err := e.townRepo.Create(context.Background(), town)
	require.NoError(t, err)
	return created
}
