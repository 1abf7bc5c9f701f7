// main.go
package main

import (
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/newrelic/go-agent/v3/integrations/nrgin"
	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	hcache "github.com/hisaab-app/hisaab-backend/cache"
	"github.com/hisaab-app/hisaab-backend/handlers"
	"github.com/hisaab-app/hisaab-backend/repository"
	"github.com/hisaab-app/hisaab-backend/routes"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})

	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Warn().Msg(".env file not found, using environment variables")
	}

	// Initialize New Relic
	app, err := newrelic.NewApplication(
		newrelic.ConfigAppName("Hisaab API"),
		newrelic.ConfigLicense(os.Getenv("NEW_RELIC_LICENSE_KEY")),
		newrelic.ConfigDistributedTracerEnabled(true),
	)
	if err != nil {
		log.Warn().Err(err).Msg("failed to initialize New Relic")
	}

	store, closeStore := setupStore()
	defer closeStore()

	summaryCache := setupCache()

	// Set up Gin router
	router := gin.Default()

	// Add New Relic middleware
	if app != nil {
		router.Use(nrgin.Middleware(app))
	}

	// Configure CORS
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"}, // Change to your frontend URL in production
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Set up routes
	routes.SetupRoutes(router, handlers.NewHandlerServices(store, summaryCache))

	// Get port from environment or use default
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	// Start server
	log.Info().Str("port", port).Msg("server starting")
	if err := router.Run(":" + port); err != nil {
		log.Fatal().Err(err).Msg("failed to start server")
	}
}

// setupStore picks the snapshot store from STORAGE_BACKEND: postgres, file
// (default) or memory. The returned func releases whatever the store holds.
func setupStore() (repository.GroupStore, func()) {
	switch os.Getenv("STORAGE_BACKEND") {
	case "postgres":
		if err := repository.InitDB(); err != nil {
			log.Fatal().Err(err).Msg("failed to initialize database")
		}
		return repository.NewPostgresGroupStore(), repository.CloseDB
	case "memory":
		return repository.NewInMemoryGroupStore(), func() {}
	default:
		path := os.Getenv("DATA_FILE")
		if path == "" {
			path = "data/groups.json"
		}
		return repository.NewFileGroupStore(path), func() {}
	}
}

// setupCache picks the summary cache from CACHE_BACKEND: redis or the
// in-memory default.
func setupCache() hcache.Cache {
	if os.Getenv("CACHE_BACKEND") == "redis" {
		addr := os.Getenv("REDIS_ADDR")
		if addr == "" {
			addr = "localhost:6379"
		}
		return hcache.NewRedisCache(hcache.Config{
			Addr:     addr,
			Password: os.Getenv("REDIS_PASSWORD"),
		})
	}
	return hcache.NewInMemoryCache()
}
