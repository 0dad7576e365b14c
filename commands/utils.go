package commands

import (
	"fmt"

	"hotel-admin/backend"
	"hotel-admin/config"
	"hotel-admin/services"
	"hotel-admin/services/logger"
)

// app bundles the wired services every command starts from.
type app struct {
	cfg        config.Config
	log        logger.Logger
	registry   *services.RegistryService
	conversion *services.ConversionService
	search     *services.SearchService
	stats      *services.StatsService
}

func buildApp() (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	log := logger.NewDefaultLogger(logger.InfoLevel)
	client, err := backend.New(cfg.BackendURL, cfg.HTTPTimeout, log)
	if err != nil {
		return nil, fmt.Errorf("backend client: %v", err)
	}

	return &app{
		cfg:        cfg,
		log:        log,
		registry:   services.NewRegistryService(client, log),
		conversion: services.NewConversionService(client, cfg.EmployeeSSN, log),
		search:     services.NewSearchService(client, cfg.DefaultCustomerID, log),
		stats:      services.NewStatsService(client, log),
	}, nil
}
