package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"

	"github.com/carson-networks/budget-insights/api"
	"github.com/carson-networks/budget-insights/internal/calendar"
	"github.com/carson-networks/budget-insights/internal/config"
	"github.com/carson-networks/budget-insights/internal/ingest"
	"github.com/carson-networks/budget-insights/internal/logging"
	"github.com/carson-networks/budget-insights/internal/operator"
	"github.com/carson-networks/budget-insights/internal/service"
	"github.com/carson-networks/budget-insights/internal/storage"
	"github.com/carson-networks/budget-insights/internal/storage/migrations"
)

func main() {
	envConfig, err := config.Load(os.Getenv("CONFIG_FILE"))
	if err != nil {
		logrus.WithError(err).Fatal("config.Load")
		return
	}

	logger := logging.SetupLogging(envConfig.Log.Level)
	logger.Info("budget-insights starting")

	loc, err := envConfig.Location()
	if err != nil {
		logger.WithError(err).Fatal("config.Location")
		return
	}

	categorizer, err := ingest.LoadRules(envConfig.Insights.RulesPath)
	if err != nil {
		logger.WithError(err).Fatal("ingest.LoadRules")
		return
	}

	dbStorage, err := storage.NewStorage(envConfig)
	if err != nil {
		logger.WithError(err).Fatal("storage.NewStorage")
		return
	}
	defer dbStorage.Close()

	migrationStatus, err := migrations.Up(dbStorage.DB)
	if err != nil {
		logger.WithError(err).Fatal("migrations.Up")
		return
	}
	logger.WithFields(logrus.Fields{
		"preMigrationVersion":  migrationStatus.PreMigrationVersion,
		"postMigrationVersion": migrationStatus.PostMigrationVersion,
	}).Info("Migration status")

	delegator := operator.NewOperatorDelegator(dbStorage, envConfig.Operator.Workers, logger)
	delegator.Start()
	defer delegator.Stop()

	svc := service.NewService(dbStorage, delegator, service.Options{
		Calendar: calendar.New(loc),
		Currency: envConfig.Insights.Currency,
		Lookback: envConfig.Insights.Lookback,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	httpRest := api.Rest{
		Logger:      logger,
		Port:        envConfig.HTTP.Port,
		Service:     svc,
		Storage:     dbStorage,
		Categorizer: categorizer,
		Location:    loc,
	}
	if err := httpRest.Serve(ctx); err != nil {
		logger.WithError(err).Error("api.Serve")
	}
	logger.Info("budget-insights stopped")
}
