package app

import (
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"home-connect-api/internal/config"
	"home-connect-api/internal/controller"
	"home-connect-api/internal/metrics"
	"home-connect-api/internal/notify"
	"home-connect-api/internal/repo"
	"home-connect-api/internal/service"
	"home-connect-api/pkg/http_server"
	"home-connect-api/pkg/postgres"

	"github.com/golang-migrate/migrate/v4"
	pgmigrate "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/labstack/echo"
)

func runMigrations(postgresDB *postgres.Postgres, databaseName string) {
	driver, err := pgmigrate.WithInstance(postgresDB.Database, &pgmigrate.Config{DatabaseName: databaseName})
	if err != nil {
		log.Fatal(err)
	}

	migrations, err := migrate.NewWithDatabaseInstance("file://migrations", databaseName, driver)
	if err != nil {
		log.Fatal(err)
	}

	if err := migrations.Up(); err != nil {
		if err.Error() == "no change" {
			log.Println("no change made by migration scripts")
		} else {
			log.Fatal(err)
		}
	}
}

func newRepositories(cfg *config.Config, logger *slog.Logger) (*repo.Repositories, func()) {
	if cfg.StoreBackend != config.BackendPostgres {
		logger.Info("using in-memory store with demo dataset")

		return repo.NewMemoryRepositories(), func() {}
	}

	logger.Info("connecting database")
	postgresDB, err := postgres.NewDB(cfg.PostgresConn)
	if err != nil {
		log.Fatal("Error occurred while connecting to db: ", err)
	}

	logger.Info("running migrations")
	runMigrations(postgresDB, cfg.PostgresDatabase)

	return repo.NewPostgresRepositories(postgresDB), func() { postgresDB.Close() }
}

func Run() {
	cfg := config.Load()
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	repositories, closeStore := newRepositories(cfg, logger)
	defer closeStore()

	collector := metrics.NewCollector()
	dispatchers := []notify.Dispatcher{
		notify.NewMockEmailDispatcher(logger),
		notify.NewMockSMSDispatcher(logger),
	}

	services := service.NewServices(&service.Deps{
		Repos:              repositories,
		Dispatchers:        dispatchers,
		Metrics:            collector,
		Logger:             logger,
		OfferResponseDelay: cfg.OfferResponseDelay,
	})
	defer services.Leaderboard.Shutdown()

	handler := echo.New()

	logger.Info("setup routes")
	controller.SetupRoutesHandlers(handler, services, collector)

	logger.Info("starting server", slog.String("address", cfg.ServerAddress))
	httpServer := http_server.New(handler, cfg.ServerAddress)

	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt, syscall.SIGTERM)

	select {
	case s := <-interrupt:
		logger.Info("got signal", slog.String("signal", s.String()))
	case err := <-httpServer.Notify():
		logger.Error("server error", slog.String("error", err.Error()))
	}

	logger.Info("shutting down")
	if err := httpServer.Shutdown(); err != nil {
		logger.Error("shutdown error", slog.String("error", err.Error()))

		return
	}
	logger.Info("successful shutdown")
}
