package client

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-vault-keeper/internal/adapter"
	"github.com/MKhiriev/go-vault-keeper/internal/callback"
	"github.com/MKhiriev/go-vault-keeper/internal/config"
	"github.com/MKhiriev/go-vault-keeper/internal/logger"
	"github.com/MKhiriev/go-vault-keeper/internal/service"
	"github.com/MKhiriev/go-vault-keeper/internal/store"
	"github.com/MKhiriev/go-vault-keeper/internal/tui"
	"github.com/MKhiriev/go-vault-keeper/internal/workers"
	"github.com/MKhiriev/go-vault-keeper/models"
)

const (
	loginLocation  = "/login"
	vaultsLocation = "/vault"
)

type App struct {
	cfg      *config.ClientConfig
	storages *store.ClientStorages
	services *service.ClientServices
	workers  *workers.Workers
	ui       UI

	logger *logger.Logger
}

// NewApp assembles the client from cfg. The returned App owns the client
// stores and releases them when Run returns.
func NewApp(ctx context.Context, cfg *config.ClientConfig, buildInfo models.AppBuildInfo, logger *logger.Logger) (*App, error) {
	vaultAPI, err := adapter.NewHTTPVaultAdapter(cfg.Adapter, logger)
	if err != nil {
		return nil, fmt.Errorf("create vault adapter: %w", err)
	}

	storages, err := store.NewClientStorages(ctx, cfg.Storage, cfg.App.Incognito, logger)
	if err != nil {
		return nil, fmt.Errorf("create client storages: %w", err)
	}

	services, err := service.NewClientServices(storages, vaultAPI, cfg, logger)
	if err != nil {
		_ = storages.Close()
		return nil, fmt.Errorf("create client services: %w", err)
	}

	opts := tui.Options{
		OpenBrowser: cfg.Auth.OpenBrowser,
		BuildInfo:   buildInfo,
	}

	var background []workers.Worker
	if cfg.Auth.CallbackAddress != "" {
		listener := callback.NewListener(cfg.Auth.CallbackAddress, logger)
		opts.Callbacks = listener.Results()
		background = append(background, listener)
	}

	ui, err := tui.New(services, opts, logger)
	if err != nil {
		_ = storages.Close()
		return nil, fmt.Errorf("create ui: %w", err)
	}

	return &App{
		cfg:      cfg,
		storages: storages,
		services: services,
		workers:  workers.NewWorkers(background...),
		ui:       ui,
		logger:   logger,
	}, nil
}

// Run restores the stored session, starts the background workers and blocks
// in the UI. A failing worker is logged and does not stop the UI.
func (a *App) Run(ctx context.Context) error {
	defer func() {
		if err := a.storages.Close(); err != nil {
			a.logger.Err(err).Msg("close client storages")
		}
	}()

	if err := a.services.AuthService.RestoreToken(ctx); err != nil {
		a.logger.Warn().Err(err).Msg("stored session could not be restored")
	}

	workersCtx, stopWorkers := context.WithCancel(ctx)
	workersDone := make(chan struct{})
	go func() {
		defer close(workersDone)
		if err := a.workers.Run(workersCtx); err != nil {
			a.logger.Err(err).Msg("background worker stopped")
		}
	}()
	defer func() {
		stopWorkers()
		<-workersDone
	}()

	start := a.startLocation(ctx)
	a.logger.Info().Str("location", start).Msg("starting ui")

	if err := a.ui.Run(ctx, start); err != nil {
		return fmt.Errorf("ui: %w", err)
	}
	return nil
}

// startLocation returns the configured start location, or the vault list when
// a session exists and the login page otherwise.
func (a *App) startLocation(ctx context.Context) string {
	if start := strings.TrimSpace(a.cfg.App.StartURL); start != "" {
		return start
	}
	if a.services.AuthService.CurrentOwner(ctx) != "" {
		return vaultsLocation
	}
	return loginLocation
}
