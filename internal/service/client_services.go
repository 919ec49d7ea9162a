package service

import (
	"github.com/MKhiriev/go-vault-keeper/internal/adapter"
	"github.com/MKhiriev/go-vault-keeper/internal/config"
	"github.com/MKhiriev/go-vault-keeper/internal/logger"
	"github.com/MKhiriev/go-vault-keeper/internal/store"
)

type ClientServices struct {
	AuthService       ClientAuthService
	VaultService      ClientVaultService
	CredentialService ClientCredentialService
}

func NewClientServices(localStore *store.ClientStorages, vaultAPI adapter.VaultAPI, cfg *config.ClientConfig, logger *logger.Logger) (*ClientServices, error) {
	authSvc, err := NewClientAuthService(localStore, vaultAPI, cfg.Adapter, cfg.Auth, logger)
	if err != nil {
		return nil, err
	}

	return &ClientServices{
		AuthService:       authSvc,
		VaultService:      NewClientVaultService(localStore, vaultAPI, logger),
		CredentialService: NewClientCredentialService(vaultAPI, logger),
	}, nil
}
