package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"sync"

	"github.com/MKhiriev/go-vault-keeper/internal/config"
	"github.com/MKhiriev/go-vault-keeper/internal/logger"
	"github.com/MKhiriev/go-vault-keeper/internal/utils"
	"github.com/MKhiriev/go-vault-keeper/models"
	"github.com/go-resty/resty/v2"
)

// TraceIDHeader carries the per-request trace id.
const TraceIDHeader = "X-Trace-ID"

const (
	vaultsPath      = "/api/v1/vaults"
	vaultPath       = "/api/v1/vaults/{id}"
	vaultCredsPath  = "/api/v1/vaults/{id}/credentials"
	credentialsPath = "/api/v1/credentials"
	credentialPath  = "/api/v1/credentials/{id}"
)

type httpVaultAdapter struct {
	client *utils.HTTPClient
	traces *utils.UUIDGenerator

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPVaultAdapter constructs an HTTP/JSON implementation of [VaultAPI].
// It normalises and validates the base URL from adapterCfg.APIAddress and
// configures the underlying HTTP client with the resolved base URL and
// request timeout.
//
// Returns an error if adapterCfg.APIAddress is empty or cannot be parsed as a
// valid URL.
func NewHTTPVaultAdapter(adapterCfg config.ClientAdapter, logger *logger.Logger) (VaultAPI, error) {
	baseURL, err := NormalizeBaseURL(adapterCfg.APIAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter api address: %w", err)
	}

	return &httpVaultAdapter{
		client: utils.NewHTTPClient(baseURL, adapterCfg.RequestTimeout),
		traces: utils.NewUUIDGenerator(),
		logger: logger,
	}, nil
}

// NormalizeBaseURL completes a missing scheme with http:// and trims the
// trailing slash.
func NormalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SetToken implements [VaultAPI]. It stores token (whitespace-trimmed) for
// use in the Authorization header of all subsequent requests.
func (h *httpVaultAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

// Token implements [VaultAPI].
func (h *httpVaultAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// ListVaults implements [VaultAPI]. GET /api/v1/vaults?owner_id={id}.
func (h *httpVaultAdapter) ListVaults(ctx context.Context, ownerID string) ([]models.Vault, error) {
	if ownerID == "" {
		return []models.Vault{}, nil
	}

	const op = "list vaults"
	req, log := h.request(ctx, op)
	resp, err := req.
		SetQueryParam("owner_id", ownerID).
		Get(vaultsPath)
	if err = h.check(op, log, resp, err); err != nil {
		return nil, err
	}

	vaults, err := decodeData[[]models.Vault](op, resp)
	if err != nil {
		return nil, err
	}
	if vaults == nil {
		vaults = []models.Vault{}
	}

	log.Debug().Int("count", len(vaults)).Msg("vaults loaded")
	return vaults, nil
}

// CreateVault implements [VaultAPI]. POST /api/v1/vaults.
func (h *httpVaultAdapter) CreateVault(ctx context.Context, body models.CreateVaultRequest) (models.Vault, error) {
	if body.OwnerUserID == "" {
		return models.Vault{}, ErrOwnerRequired
	}

	const op = "create vault"
	req, log := h.request(ctx, op)
	resp, err := req.
		SetHeader("Content-Type", "application/json").
		SetBody(body).
		Post(vaultsPath)
	if err = h.check(op, log, resp, err); err != nil {
		return models.Vault{}, err
	}

	return decodeData[models.Vault](op, resp)
}

// DeleteVault implements [VaultAPI]. DELETE /api/v1/vaults/{id}.
func (h *httpVaultAdapter) DeleteVault(ctx context.Context, vaultID string) error {
	const op = "delete vault"
	req, log := h.request(ctx, op)
	resp, err := req.
		SetPathParam("id", vaultID).
		Delete(vaultPath)

	return h.check(op, log, resp, err)
}

// GetVault implements [VaultAPI]. GET /api/v1/vaults/{id}.
func (h *httpVaultAdapter) GetVault(ctx context.Context, vaultID string) (models.Vault, error) {
	const op = "fetch vault"
	req, log := h.request(ctx, op)
	resp, err := req.
		SetPathParam("id", vaultID).
		Get(vaultPath)
	if err = h.check(op, log, resp, err); err != nil {
		return models.Vault{}, err
	}

	return decodeData[models.Vault](op, resp)
}

// ListCredentials implements [VaultAPI]. GET /api/v1/vaults/{id}/credentials.
func (h *httpVaultAdapter) ListCredentials(ctx context.Context, vaultID string) ([]models.Credential, error) {
	const op = "list credentials"
	req, log := h.request(ctx, op)
	resp, err := req.
		SetPathParam("id", vaultID).
		Get(vaultCredsPath)
	if err = h.check(op, log, resp, err); err != nil {
		return nil, err
	}

	creds, err := decodeData[[]models.Credential](op, resp)
	if err != nil {
		return nil, err
	}
	if creds == nil {
		creds = []models.Credential{}
	}

	return creds, nil
}

// CreateCredential implements [VaultAPI]. POST /api/v1/credentials.
func (h *httpVaultAdapter) CreateCredential(ctx context.Context, body models.CreateCredentialRequest) (models.Credential, error) {
	const op = "create credential"
	req, log := h.request(ctx, op)
	resp, err := req.
		SetHeader("Content-Type", "application/json").
		SetBody(body).
		Post(credentialsPath)
	if err = h.check(op, log, resp, err); err != nil {
		return models.Credential{}, err
	}

	return decodeData[models.Credential](op, resp)
}

// UpdateCredential implements [VaultAPI]. PUT /api/v1/credentials/{id}.
func (h *httpVaultAdapter) UpdateCredential(ctx context.Context, credentialID string, body models.UpdateCredentialRequest) (models.Credential, error) {
	const op = "update credential"
	req, log := h.request(ctx, op)
	resp, err := req.
		SetPathParam("id", credentialID).
		SetHeader("Content-Type", "application/json").
		SetBody(body).
		Put(credentialPath)
	if err = h.check(op, log, resp, err); err != nil {
		return models.Credential{}, err
	}

	return decodeData[models.Credential](op, resp)
}

// DeleteCredential implements [VaultAPI]. DELETE /api/v1/credentials/{id}.
func (h *httpVaultAdapter) DeleteCredential(ctx context.Context, credentialID string) error {
	const op = "delete credential"
	req, log := h.request(ctx, op)
	resp, err := req.
		SetPathParam("id", credentialID).
		Delete(credentialPath)

	return h.check(op, log, resp, err)
}

// request prepares a request carrying the trace id and, when set, the bearer
// token, together with a child logger bound to the same trace id.
func (h *httpVaultAdapter) request(ctx context.Context, op string) (*resty.Request, *logger.Logger) {
	traceID := h.traces.Generate()
	log := &logger.Logger{Logger: h.logger.With().
		Str("trace_id", traceID).
		Str("op", op).
		Logger()}

	req := h.client.R().
		SetContext(utils.WithTraceID(ctx, traceID)).
		SetHeader(TraceIDHeader, traceID)
	if token := h.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req, log
}

// check turns a transport failure or a non-2xx response into an error and
// logs it.
func (h *httpVaultAdapter) check(op string, log *logger.Logger, resp *resty.Response, err error) error {
	if err != nil {
		log.Err(err).Msg("request failed")
		return fmt.Errorf("%s request: %w: %w", op, ErrNetwork, err)
	}

	if err = mapHTTPError(op, resp); err != nil {
		log.Error().
			Int("status", resp.StatusCode()).
			Str("body", string(resp.Body())).
			Msg("unexpected response status")
		return err
	}

	return nil
}

func decodeData[T any](op string, resp *resty.Response) (T, error) {
	var envelope models.DataResponse[T]
	if err := json.Unmarshal(resp.Body(), &envelope); err != nil {
		var zero T
		return zero, fmt.Errorf("decode %s response: %w: %w", op, ErrDecode, err)
	}

	return envelope.Data, nil
}
