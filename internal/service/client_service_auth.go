package service

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"time"

	"github.com/MKhiriev/go-vault-keeper/internal/adapter"
	"github.com/MKhiriev/go-vault-keeper/internal/config"
	"github.com/MKhiriev/go-vault-keeper/internal/logger"
	"github.com/MKhiriev/go-vault-keeper/internal/store"
	"github.com/MKhiriev/go-vault-keeper/internal/utils"
	"github.com/MKhiriev/go-vault-keeper/models"
)

type clientAuthService struct {
	localStore *store.ClientStorages
	adapter    adapter.VaultAPI
	loginURL   string
	now        func() time.Time
	logger     *logger.Logger
}

func NewClientAuthService(localStore *store.ClientStorages, vaultAPI adapter.VaultAPI, adapterCfg config.ClientAdapter, authCfg config.ClientAuth, logger *logger.Logger) (ClientAuthService, error) {
	loginURL, err := buildLoginURL(adapterCfg.APIAddress, authCfg)
	if err != nil {
		return nil, err
	}

	return &clientAuthService{
		localStore: localStore,
		adapter:    vaultAPI,
		loginURL:   loginURL,
		now:        time.Now,
		logger:     logger,
	}, nil
}

func buildLoginURL(apiAddress string, authCfg config.ClientAuth) (string, error) {
	base, err := adapter.NormalizeBaseURL(apiAddress)
	if err != nil {
		return "", fmt.Errorf("invalid api address for login url: %w", err)
	}

	loginURL := base + authCfg.OAuthPath
	if authCfg.CallbackAddress != "" {
		q := url.Values{}
		q.Set("redirect_uri", "http://"+authCfg.CallbackAddress+models.OAuthCallbackPath)
		loginURL += "?" + q.Encode()
	}

	return loginURL, nil
}

func (a *clientAuthService) LoginURL() string {
	return a.loginURL
}

func (a *clientAuthService) AcceptCallback(ctx context.Context, cb models.CallbackResult) (models.CallbackResult, error) {
	var errs []error

	if cb.OwnerID != "" {
		if err := a.localStore.Session.SetOwner(ctx, cb.OwnerID); err != nil {
			a.logger.Err(err).Msg("error storing owner from login callback")
			errs = append(errs, fmt.Errorf("store owner: %w", err))
		} else {
			a.logger.Info().Str("owner_id", cb.OwnerID).Msg("owner stored from login callback")
		}
	}

	if cb.Token != "" {
		if a.expired(cb.Token) {
			a.logger.Warn().Msg("login callback carried an expired token, not storing it")
		} else {
			a.adapter.SetToken(cb.Token)
			if err := a.localStore.Session.SetToken(ctx, cb.Token); err != nil {
				a.logger.Err(err).Msg("error storing token from login callback")
				errs = append(errs, fmt.Errorf("store token: %w", err))
			}
		}
	}

	return cb, errors.Join(errs...)
}

func (a *clientAuthService) CurrentOwner(ctx context.Context) string {
	owner, err := a.localStore.Session.Owner(ctx)
	if err != nil {
		if !errors.Is(err, store.ErrLocalSessionNotFound) {
			a.logger.Err(err).Msg("error reading owner, treating as signed out")
		}
		return ""
	}

	return owner
}

func (a *clientAuthService) ResolveOwner(ctx context.Context, override string) string {
	if override == "" {
		return a.CurrentOwner(ctx)
	}

	if err := a.localStore.Session.SetOwner(ctx, override); err != nil {
		a.logger.Err(err).Str("owner_id", override).Msg("error persisting owner override")
	}

	return override
}

func (a *clientAuthService) RestoreToken(ctx context.Context) error {
	token, err := a.localStore.Session.Token(ctx)
	if err != nil {
		return fmt.Errorf("read stored token: %w", err)
	}
	if token == "" {
		return nil
	}

	if a.expired(token) {
		a.logger.Info().Msg("stored token has expired, not attaching it")
		return nil
	}

	a.adapter.SetToken(token)
	return nil
}

func (a *clientAuthService) Logout(ctx context.Context) error {
	a.adapter.SetToken("")

	if err := a.localStore.Session.Clear(ctx); err != nil {
		a.logger.Err(err).Msg("error clearing session on logout")
		return fmt.Errorf("clear session: %w", err)
	}

	a.logger.Info().Msg("logged out")
	return nil
}

// expired reports whether token is a JWT whose exp has passed. Opaque tokens
// never expire on the client.
func (a *clientAuthService) expired(token string) bool {
	claims, err := utils.ParseTokenClaims(token)
	if err != nil {
		return false
	}

	return claims.Expired(a.now())
}
