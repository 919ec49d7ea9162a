package tui

import (
	"context"
	"errors"
	"io"
	"net/url"

	"github.com/MKhiriev/go-vault-keeper/internal/logger"
	"github.com/MKhiriev/go-vault-keeper/internal/service"
	"github.com/MKhiriev/go-vault-keeper/models"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/cli/browser"
)

var ErrNoServices = errors.New("tui requires client services")

// Options configures the terminal UI.
type Options struct {
	// Callbacks delivers redirects received by the loopback listener. Nil
	// disables the subscription.
	Callbacks <-chan url.Values
	// OpenBrowser launches the system browser for the login URL.
	OpenBrowser bool
	BuildInfo   models.AppBuildInfo
}

type TUI struct {
	services *service.ClientServices
	opts     Options
	logger   *logger.Logger
}

func New(services *service.ClientServices, opts Options, logger *logger.Logger) (*TUI, error) {
	if services == nil {
		return nil, ErrNoServices
	}

	// the terminal belongs to the UI
	browser.Stdout = io.Discard
	browser.Stderr = io.Discard

	return &TUI{services: services, opts: opts, logger: logger}, nil
}

// Run opens startLocation and blocks until the user quits or ctx is done.
func (t *TUI) Run(ctx context.Context, startLocation string) error {
	pages := pageFactory{
		ctx:      ctx,
		services: t.services,
		logger:   t.logger,
	}
	if t.opts.OpenBrowser {
		pages.openURL = browser.OpenURL
	}

	root := NewRootModel(pages, startLocation, t.opts.Callbacks, t.opts.BuildInfo)
	_, err := tea.NewProgram(root, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}
