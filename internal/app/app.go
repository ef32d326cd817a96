package app

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/hance08/ynab2splitwise/internal/config"
	"github.com/hance08/ynab2splitwise/internal/logging"
	"github.com/hance08/ynab2splitwise/internal/service"
)

type App struct {
	Config  *config.Config
	Logger  *logrus.Logger
	Service *service.Service
}

// NewApp validates the configuration, sets up logging and builds the
// pipelines with HTTP-backed clients.
func NewApp(cfg *config.Config) (*App, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	logger, err := logging.SetupLogging(cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		return nil, err
	}

	svc := service.NewService(cfg, logger, service.NewClientFactory(cfg))

	return &App{
		Config:  cfg,
		Logger:  logger,
		Service: svc,
	}, nil
}
