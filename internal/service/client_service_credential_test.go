package service

import (
	"context"
	"errors"
	"testing"

	"github.com/MKhiriev/go-vault-keeper/internal/adapter"
	"github.com/MKhiriev/go-vault-keeper/internal/logger"
	"github.com/MKhiriev/go-vault-keeper/internal/mock"
	"github.com/MKhiriev/go-vault-keeper/internal/validators"
	"github.com/MKhiriev/go-vault-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newTestCredentialSvc(t *testing.T, ctrl *gomock.Controller) (ClientCredentialService, *mock.MockVaultAPI) {
	t.Helper()
	mockAdapter := mock.NewMockVaultAPI(ctrl)
	return NewClientCredentialService(mockAdapter, logger.Nop()), mockAdapter
}

// ── List ─────────────────────────────────────────────────────────────────────

func TestClientCredentialService_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, mockAdapter := newTestCredentialSvc(t, ctrl)
	ctx := context.Background()

	creds := []models.Credential{{ID: "c-1", VaultID: "v-1", Username: "bob", Password: "pw"}}
	mockAdapter.EXPECT().ListCredentials(ctx, "v-1").Return(creds, nil)

	assert.Equal(t, creds, svc.List(ctx, "v-1"))
}

func TestClientCredentialService_List_FailsSoft(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, mockAdapter := newTestCredentialSvc(t, ctrl)
	ctx := context.Background()

	mockAdapter.EXPECT().ListCredentials(ctx, "v-1").Return(nil, adapter.ErrNetwork)

	got := svc.List(ctx, "v-1")
	require.NotNil(t, got)
	assert.Empty(t, got)
}

// ── Create ───────────────────────────────────────────────────────────────────

func TestClientCredentialService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, mockAdapter := newTestCredentialSvc(t, ctrl)
	ctx := context.Background()

	created := models.Credential{ID: "c-1", VaultID: "v-1", Username: "bob", Password: " pw ", URL: "https://a.b"}
	mockAdapter.EXPECT().CreateCredential(ctx, models.CreateCredentialRequest{
		VaultID:  "v-1",
		Username: "bob",
		Password: " pw ",
		URL:      "https://a.b",
	}).Return(created, nil)

	got, err := svc.Create(ctx, "v-1", models.CredentialInput{Username: " bob", Password: " pw ", URL: "https://a.b "})
	require.NoError(t, err)
	assert.Equal(t, created, got)
}

func TestClientCredentialService_Create_Validation(t *testing.T) {
	tests := []struct {
		name  string
		input models.CredentialInput
	}{
		{name: "blank username", input: models.CredentialInput{Username: "  ", Password: "pw"}},
		{name: "blank password", input: models.CredentialInput{Username: "bob", Password: "\t"}},
		{name: "both empty", input: models.CredentialInput{URL: "https://a.b"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			svc, _ := newTestCredentialSvc(t, ctrl)

			_, err := svc.Create(context.Background(), "v-1", tt.input)
			assert.ErrorIs(t, err, ErrCredentialFieldsRequired)
		})
	}
}

func TestClientCredentialService_Create_AdapterError(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, mockAdapter := newTestCredentialSvc(t, ctrl)
	ctx := context.Background()

	mockAdapter.EXPECT().CreateCredential(ctx, gomock.Any()).
		Return(models.Credential{}, &adapter.StatusError{Op: "create credential", Code: 401})

	_, err := svc.Create(ctx, "v-1", models.CredentialInput{Username: "bob", Password: "pw"})
	assert.ErrorIs(t, err, ErrSessionExpired)
}

// ── Update ───────────────────────────────────────────────────────────────────

func TestClientCredentialService_Update(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, mockAdapter := newTestCredentialSvc(t, ctrl)
	ctx := context.Background()

	updated := models.Credential{ID: "c-1", VaultID: "v-1", Username: "alice", Password: "new"}
	mockAdapter.EXPECT().
		UpdateCredential(ctx, "c-1", models.UpdateCredentialRequest{Username: "alice", Password: "new"}).
		Return(updated, nil)

	got, err := svc.Update(ctx, "c-1", models.CredentialInput{Username: "alice", Password: "new"})
	require.NoError(t, err)
	assert.Equal(t, updated, got)
}

func TestClientCredentialService_Update_Validation(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _ := newTestCredentialSvc(t, ctrl)

	_, err := svc.Update(context.Background(), "c-1", models.CredentialInput{Username: "alice"})
	assert.ErrorIs(t, err, ErrCredentialFieldsRequired)
}

func TestClientCredentialService_Update_Error(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, mockAdapter := newTestCredentialSvc(t, ctrl)
	ctx := context.Background()

	mockAdapter.EXPECT().UpdateCredential(ctx, "c-1", gomock.Any()).Return(models.Credential{}, errors.New("boom"))

	_, err := svc.Update(ctx, "c-1", models.CredentialInput{Username: "alice", Password: "new"})
	assert.EqualError(t, err, "boom")
}

// ── Delete ───────────────────────────────────────────────────────────────────

func TestClientCredentialService_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, mockAdapter := newTestCredentialSvc(t, ctrl)
	ctx := context.Background()

	mockAdapter.EXPECT().DeleteCredential(ctx, "c-1").Return(nil)
	require.NoError(t, svc.Delete(ctx, "c-1"))
}

func TestClientCredentialService_Delete_Error(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, mockAdapter := newTestCredentialSvc(t, ctrl)
	ctx := context.Background()

	mockAdapter.EXPECT().DeleteCredential(ctx, "c-1").Return(&adapter.StatusError{Op: "delete credential", Code: 403})

	err := svc.Delete(ctx, "c-1")
	assert.ErrorIs(t, err, adapter.ErrForbidden)
}

func TestClientCredentialService_Create_RequiresVault(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _ := newTestCredentialSvc(t, ctrl)

	_, err := svc.Create(context.Background(), "", models.CredentialInput{Username: "bob", Password: "pw"})
	assert.ErrorIs(t, err, validators.ErrEmptyVaultID)
	assert.NotErrorIs(t, err, ErrCredentialFieldsRequired)
}
