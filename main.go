package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"

	"github.com/carson-networks/budget-coach/api"
	"github.com/carson-networks/budget-coach/internal/categorize"
	"github.com/carson-networks/budget-coach/internal/config"
	"github.com/carson-networks/budget-coach/internal/logging"
	"github.com/carson-networks/budget-coach/internal/operator"
	"github.com/carson-networks/budget-coach/internal/service"
	"github.com/carson-networks/budget-coach/internal/storage"
)

func main() {
	envConfig, err := config.ProcessEnvironmentVariables()
	if err != nil {
		logrus.WithError(err).Fatal("config.ProcessEnvironmentVariables")
		return
	}

	logger := logging.SetupLogging(envConfig.LogLevel)
	logger.WithField("backend", envConfig.StorageBackend).Info("budget-coach starting")

	store, err := storage.NewStorage(envConfig)
	if err != nil {
		logger.WithError(err).Fatal("storage.NewStorage")
		return
	}
	defer store.Close()

	rules := categorize.DefaultRules()
	if envConfig.CategoryRulesFile != "" {
		rules, err = categorize.LoadRules(envConfig.CategoryRulesFile)
		if err != nil {
			logger.WithError(err).Fatal("categorize.LoadRules")
			return
		}
	}
	categorizer := categorize.New(rules)

	// A single worker keeps every write serialized.
	op := operator.NewOperatorDelegator(store, 1, logger)
	op.Start()
	defer op.Stop()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	httpRest := api.Rest{
		Logger:   logger,
		Port:     envConfig.Port,
		Service:  service.NewService(store, op, categorizer, envConfig.CurrencySymbol),
		Operator: op,
	}
	httpRest.Serve(ctx)
}
