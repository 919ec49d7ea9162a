package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-vault-keeper/internal/adapter"
	"github.com/MKhiriev/go-vault-keeper/internal/logger"
	"github.com/MKhiriev/go-vault-keeper/internal/store"
	"github.com/MKhiriev/go-vault-keeper/internal/validators"
	"github.com/MKhiriev/go-vault-keeper/models"
)

type clientVaultService struct {
	localStore *store.ClientStorages
	adapter    adapter.VaultAPI
	validator  validators.Validator
	logger     *logger.Logger
}

func NewClientVaultService(localStore *store.ClientStorages, vaultAPI adapter.VaultAPI, logger *logger.Logger) ClientVaultService {
	return &clientVaultService{
		localStore: localStore,
		adapter:    vaultAPI,
		validator:  validators.NewVaultValidator(),
		logger:     logger,
	}
}

func (v *clientVaultService) List(ctx context.Context, ownerID string) ([]models.Vault, error) {
	vaults, err := v.adapter.ListVaults(ctx, ownerID)
	if err != nil {
		v.logger.Err(err).Str("owner_id", ownerID).Msg("error listing vaults")
		return nil, mapAdapterError(err)
	}

	return vaults, nil
}

func (v *clientVaultService) Create(ctx context.Context, ownerID, name, description string) (models.Vault, error) {
	request := models.CreateVaultRequest{
		OwnerUserID: ownerID,
		Name:        strings.TrimSpace(name),
		Description: strings.TrimSpace(description),
	}
	if err := v.validator.Validate(ctx, request); err != nil {
		switch {
		case errors.Is(err, validators.ErrEmptyOwnerID):
			return models.Vault{}, ErrNotLoggedIn
		case errors.Is(err, validators.ErrEmptyVaultName):
			return models.Vault{}, ErrVaultNameRequired
		}
		return models.Vault{}, err
	}

	created, err := v.adapter.CreateVault(ctx, request)
	if err != nil {
		v.logger.Err(err).Str("owner_id", ownerID).Msg("error creating vault")
		return models.Vault{}, mapAdapterError(err)
	}

	return created, nil
}

func (v *clientVaultService) Delete(ctx context.Context, vaultID string) error {
	if err := v.adapter.DeleteVault(ctx, vaultID); err != nil {
		v.logger.Err(err).Str("vault_id", vaultID).Msg("error deleting vault")
		return mapAdapterError(err)
	}

	return nil
}

func (v *clientVaultService) Get(ctx context.Context, vaultID string) (models.Vault, bool) {
	vault, err := v.adapter.GetVault(ctx, vaultID)
	if err != nil {
		v.logger.Warn().Err(err).Str("vault_id", vaultID).Msg("failed to fetch vault")
		return models.Vault{}, false
	}

	return vault, true
}

func (v *clientVaultService) HandOff(vault models.Vault) error {
	if err := v.localStore.Handoff.Put(store.VaultHandoffKey(vault.ID), vault); err != nil {
		return fmt.Errorf("hand off vault %s: %w", vault.ID, err)
	}

	return nil
}

func (v *clientVaultService) TakeHandOff(vaultID string) (models.Vault, bool) {
	var vault models.Vault
	if !v.localStore.Handoff.TakeOnce(store.VaultHandoffKey(vaultID), &vault) {
		return models.Vault{}, false
	}

	return vault, true
}
