package tui

import (
	"context"
	"net/url"

	"github.com/MKhiriev/go-vault-keeper/internal/logger"
	"github.com/MKhiriev/go-vault-keeper/internal/service"
	"github.com/MKhiriev/go-vault-keeper/models"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// inputCapturer is implemented by pages that currently route every key to a
// text input.
type inputCapturer interface {
	capturesInput() bool
}

// pageFactory mounts a fresh page for a route.
type pageFactory struct {
	ctx      context.Context
	services *service.ClientServices
	openURL  func(string) error
	logger   *logger.Logger
}

func (f pageFactory) mount(r route) tea.Model {
	switch r.kind {
	case loginPage:
		return NewLoginModel(f.ctx, f.services.AuthService, r.query, f.openURL)
	case vaultDetailPage:
		return NewVaultDetailModel(f.ctx, f.services.VaultService, f.services.CredentialService, r.vaultID, f.logger)
	default:
		return NewVaultListModel(f.ctx, f.services.AuthService, f.services.VaultService, r.query, f.logger)
	}
}

// RootModel is a TUI router:
// 1) keeps the current location and its mounted page
// 2) handles global Ctrl+C quit and the build info window
// 3) mounts a fresh page on NavigateTo, rewrites the location on ReplaceLocation
// 4) turns listener callbacks into navigations to the login page
// 5) delegates all other messages to the current page
type RootModel struct {
	pages     pageFactory
	callbacks <-chan url.Values

	location string
	current  tea.Model

	buildInfo     models.AppBuildInfo
	showBuildInfo bool

	logger *logger.Logger
}

// NewRootModel mounts the page of startLocation. An unknown location falls
// back to the vault list.
func NewRootModel(pages pageFactory, startLocation string, callbacks <-chan url.Values, buildInfo models.AppBuildInfo) RootModel {
	r := RootModel{
		pages:     pages,
		callbacks: callbacks,
		buildInfo: buildInfo,
		logger:    pages.logger,
	}
	r.mount(startLocation)
	return r
}

func (r RootModel) Init() tea.Cmd {
	return tea.Batch(r.current.Init(), waitForCallback(r.callbacks))
}

func (r RootModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if key.Matches(msg, keys.quit) {
			return r, tea.Quit
		}

		if r.showBuildInfo {
			if key.Matches(msg, keys.esc, keys.buildInfo) {
				r.showBuildInfo = false
			}
			return r, nil
		}

		if key.Matches(msg, keys.buildInfo) && r.buildInfoAvailable() {
			r.showBuildInfo = true
			return r, nil
		}
	case NavigateTo:
		r.showBuildInfo = false
		r.mount(msg.URL)
		return r, r.current.Init()
	case ReplaceLocation:
		r.location = msg.URL
		return r, nil
	case callbackReceivedMsg:
		r.showBuildInfo = false
		r.mount(loginLocationWith(msg.query))
		return r, tea.Batch(r.current.Init(), waitForCallback(r.callbacks))
	}

	updated, cmd := r.current.Update(msg)
	r.current = updated
	return r, cmd
}

func (r RootModel) View() string {
	if r.showBuildInfo {
		return appStyle.Render(renderBuildInfoWindow(r.buildInfo))
	}
	return appStyle.Render(r.current.View() + "\n\n  " + helpStyle.Render(r.location))
}

// Location returns the current location.
func (r RootModel) Location() string {
	return r.location
}

func (r *RootModel) mount(location string) {
	rt, ok := parseLocation(location)
	if !ok {
		r.logger.Warn().Str("location", location).Msg("unknown location, opening vault list")
		location = vaultsLocation
		rt = route{kind: vaultListPage, query: url.Values{}}
	}

	r.location = location
	r.current = r.pages.mount(rt)
}

// buildInfoAvailable reports whether the build info window can be opened from
// the current page.
func (r RootModel) buildInfoAvailable() bool {
	if _, ok := r.current.(*LoginModel); !ok {
		return false
	}
	if c, ok := r.current.(inputCapturer); ok && c.capturesInput() {
		return false
	}
	return true
}

func waitForCallback(callbacks <-chan url.Values) tea.Cmd {
	if callbacks == nil {
		return nil
	}
	return func() tea.Msg {
		query, ok := <-callbacks
		if !ok {
			return nil
		}
		return callbackReceivedMsg{query: query}
	}
}
