package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strconv"
	"time"

	"pizzeria/cmd"
	pizzeriahttp "pizzeria/internal/adapters/in/http"
	"pizzeria/internal/adapters/out/postgres/catalogrepo"
	"pizzeria/internal/adapters/out/postgres/orderrepo"
	"pizzeria/internal/jobs"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

const (
	defaultDraftTTLMinutes  = 24 * 60
	defaultDraftCleanupCron = "@hourly"
)

func main() {
	configs := getConfigs()

	gormDB := mustConnectDB(configs)
	mustMigrateDB(gormDB)

	app := cmd.NewCompositionRoot(configs, gormDB)

	jobManager := startJobs(&app, configs)
	defer jobManager.StopAll()

	startWebServer(&app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:         goDotEnvVariable("HTTP_PORT"),
		DBHost:           goDotEnvVariable("DB_HOST"),
		DBPort:           goDotEnvVariable("DB_PORT"),
		DBUser:           goDotEnvVariable("DB_USER"),
		DBPassword:       goDotEnvVariable("DB_PASSWORD"),
		DBName:           goDotEnvVariable("DB_NAME"),
		DBSslMode:        goDotEnvVariable("DB_SSLMODE"),
		DraftTTL:         draftTTLFromEnv(),
		DraftCleanupCron: draftCleanupCronFromEnv(),
	}
	return config
}

func goDotEnvVariable(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		log.Fatalf("Error loading .env file")
	}
	return os.Getenv(key)
}

func draftTTLFromEnv() time.Duration {
	raw := goDotEnvVariable("DRAFT_TTL_MINUTES")
	if raw == "" {
		return defaultDraftTTLMinutes * time.Minute
	}

	minutes, err := strconv.Atoi(raw)
	if err != nil || minutes <= 0 {
		log.Fatalf("Invalid DRAFT_TTL_MINUTES value: %s", raw)
	}

	return time.Duration(minutes) * time.Minute
}

func draftCleanupCronFromEnv() string {
	schedule := goDotEnvVariable("DRAFT_CLEANUP_CRON")
	if schedule == "" {
		return defaultDraftCleanupCron
	}
	return schedule
}

func mustConnectDB(configs cmd.Config) *gorm.DB {
	// TranslateError turns driver unique violations into gorm.ErrDuplicatedKey,
	// which the order repository relies on to detect a concurrent draft.
	gormDB, err := gorm.Open(postgresdriver.Open(configs.PostgresDSN()), &gorm.Config{
		TranslateError: true,
	})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	return gormDB
}

func mustMigrateDB(gormDB *gorm.DB) {
	err := gormDB.AutoMigrate(
		&catalogrepo.SizeDTO{},
		&catalogrepo.ToppingDTO{},
		&orderrepo.OrderDTO{},
	)
	if err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	// At most one draft may exist at a time. The partial unique index backs
	// the application-level check so concurrent creates cannot race past it.
	err = gormDB.Exec(
		`CREATE UNIQUE INDEX IF NOT EXISTS idx_orders_single_draft ON orders (status) WHERE status = 1`,
	).Error
	if err != nil {
		log.Fatalf("Failed to create single-draft index: %v", err)
	}

	if err = catalogrepo.Seed(context.Background(), gormDB); err != nil {
		log.Fatalf("Failed to seed catalog: %v", err)
	}
}

func startJobs(app *cmd.CompositionRoot, configs cmd.Config) *jobs.JobManager {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	jobManager := jobs.NewJobManager(
		app.CreatePruneStaleDraftsCommandHandler(),
		configs.DraftCleanupCron,
		configs.DraftTTL,
		logger,
	)

	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}

	return jobManager
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	e := echo.New()

	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(middleware.Logger())

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})

	server := pizzeriahttp.NewServer(
		app.CreateGetOrCreateDraftCommandHandler(),
		app.CreateSetCompositionCommandHandler(),
		app.CreateFinalizeOrderCommandHandler(),
		app.CreateDeleteOrderCommandHandler(),
		app.CreateGetOrderQueryHandler(),
		app.CreateGetAllOrdersQueryHandler(),
		app.CreateGetSizesQueryHandler(),
		app.CreateGetToppingsQueryHandler(),
	)
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
