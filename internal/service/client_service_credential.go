package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-vault-keeper/internal/adapter"
	"github.com/MKhiriev/go-vault-keeper/internal/logger"
	"github.com/MKhiriev/go-vault-keeper/internal/validators"
	"github.com/MKhiriev/go-vault-keeper/models"
)

type clientCredentialService struct {
	adapter   adapter.VaultAPI
	validator validators.Validator
	logger    *logger.Logger
}

func NewClientCredentialService(vaultAPI adapter.VaultAPI, logger *logger.Logger) ClientCredentialService {
	return &clientCredentialService{
		adapter:   vaultAPI,
		validator: validators.NewVaultValidator(),
		logger:    logger,
	}
}

func (c *clientCredentialService) List(ctx context.Context, vaultID string) []models.Credential {
	creds, err := c.adapter.ListCredentials(ctx, vaultID)
	if err != nil {
		c.logger.Warn().Err(err).Str("vault_id", vaultID).Msg("failed to fetch credentials")
		return []models.Credential{}
	}

	return creds
}

func (c *clientCredentialService) Create(ctx context.Context, vaultID string, input models.CredentialInput) (models.Credential, error) {
	request := models.CreateCredentialRequest{
		VaultID:  vaultID,
		Username: strings.TrimSpace(input.Username),
		Password: input.Password,
		URL:      strings.TrimSpace(input.URL),
	}
	if err := c.validate(ctx, request); err != nil {
		return models.Credential{}, err
	}

	created, err := c.adapter.CreateCredential(ctx, request)
	if err != nil {
		c.logger.Err(err).Str("vault_id", vaultID).Msg("error creating credential")
		return models.Credential{}, mapAdapterError(err)
	}

	return created, nil
}

func (c *clientCredentialService) Update(ctx context.Context, credentialID string, input models.CredentialInput) (models.Credential, error) {
	request := models.UpdateCredentialRequest{
		Username: strings.TrimSpace(input.Username),
		Password: input.Password,
		URL:      strings.TrimSpace(input.URL),
	}
	if err := c.validate(ctx, request); err != nil {
		return models.Credential{}, err
	}

	updated, err := c.adapter.UpdateCredential(ctx, credentialID, request)
	if err != nil {
		c.logger.Err(err).Str("credential_id", credentialID).Msg("error updating credential")
		return models.Credential{}, mapAdapterError(err)
	}

	return updated, nil
}

func (c *clientCredentialService) Delete(ctx context.Context, credentialID string) error {
	if err := c.adapter.DeleteCredential(ctx, credentialID); err != nil {
		c.logger.Err(err).Str("credential_id", credentialID).Msg("error deleting credential")
		return mapAdapterError(err)
	}

	return nil
}

// validate checks a request body and reports a missing username or password
// as ErrCredentialFieldsRequired.
func (c *clientCredentialService) validate(ctx context.Context, request any) error {
	err := c.validator.Validate(ctx, request)
	if errors.Is(err, validators.ErrEmptyUsername) || errors.Is(err, validators.ErrEmptyPassword) {
		return fmt.Errorf("%w: %w", ErrCredentialFieldsRequired, err)
	}
	return err
}
