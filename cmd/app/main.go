package main

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"

	"parceltrack/cmd"
	apphttp "parceltrack/internal/adapters/in/http"
	"parceltrack/internal/adapters/out/postgres"
)

func main() {
	baseLogger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	logger := baseLogger.With("component", "app")

	config := loadConfig(logger)
	if err := config.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	gormDB, err := gorm.Open(gormpostgres.Open(config.DSN()), &gorm.Config{})
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}

	if err := postgres.Migrate(gormDB); err != nil {
		logger.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}

	root, err := cmd.NewCompositionRoot(config, gormDB)
	if err != nil {
		logger.Error("failed to build composition root", "error", err)
		os.Exit(1)
	}

	startWebServer(&root, config.HTTPPort, baseLogger.With("component", "http"))
}

// loadConfig reads settings from the environment, with .env as a local
// development convenience.
func loadConfig(logger *slog.Logger) cmd.Config {
	if err := godotenv.Load(".env"); err != nil {
		logger.Info("no .env file loaded, using process environment")
	}

	return cmd.Config{
		HTTPPort:        envOrDefault("HTTP_PORT", cmd.DefaultHTTPPort),
		DBHost:          os.Getenv("DB_HOST"),
		DBPort:          os.Getenv("DB_PORT"),
		DBUser:          os.Getenv("DB_USER"),
		DBPassword:      os.Getenv("DB_PASSWORD"),
		DBName:          os.Getenv("DB_NAME"),
		DBSslMode:       envOrDefault("DB_SSLMODE", cmd.DefaultDBSslMode),
		JWTSecret:       os.Getenv("JWT_SECRET"),
		TokenTTLMinutes: envIntOrDefault("TOKEN_TTL_MINUTES", cmd.DefaultTokenTTLMinutes),
		RatePerKg:       envFloatOrDefault("RATE_PER_KG", cmd.DefaultRatePerKg),
	}
}

func envOrDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func envIntOrDefault(key string, fallback int) int {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func envFloatOrDefault(key string, fallback float64) float64 {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return fallback
	}
	return parsed
}

func startWebServer(root *cmd.CompositionRoot, port string, logger *slog.Logger) {
	e := echo.New()
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	server := apphttp.NewServer(
		root.CreateRegisterAccountCommandHandler(),
		root.CreateCreateParcelCommandHandler(),
		root.CreateEditParcelCommandHandler(),
		root.CreateAssignRiderCommandHandler(),
		root.CreateTransitionStatusCommandHandler(),
		root.CreateLoginQueryHandler(),
		root.CreateTrackParcelQueryHandler(),
		root.CreateGetCustomerParcelsQueryHandler(),
		root.CreateGetAllParcelsQueryHandler(),
		root.CreateGetRidersQueryHandler(),
		root.CreateGetRiderAssignmentsQueryHandler(),
		root.AccountReader(),
		root.TokenSigner(),
		logger,
	)
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
