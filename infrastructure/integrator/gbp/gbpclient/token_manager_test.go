package gbpclient_test

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	gbpdomain "github.com/vfg2006/profile-health-api/infrastructure/integrator/gbp/domain"
	"github.com/vfg2006/profile-health-api/infrastructure/integrator/gbp/gbpclient"
	clientmocks "github.com/vfg2006/profile-health-api/infrastructure/integrator/gbp/gbpclient/mocks"
	repomocks "github.com/vfg2006/profile-health-api/infrastructure/repository/mocks"
	"github.com/vfg2006/profile-health-api/internal/config"
	"github.com/vfg2006/profile-health-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func validAccount() *domain.ConnectedAccount {
	return &domain.ConnectedAccount{
		ID:             "ACC001",
		Email:          "dono@oticacentral.example.com",
		AccessToken:    "access-token",
		RefreshToken:   "refresh-token",
		TokenExpiresAt: time.Now().Add(time.Hour),
		AccountName:    "accounts/1088",
		Version:        3,
	}
}

func expiredAccount() *domain.ConnectedAccount {
	account := validAccount()
	account.TokenExpiresAt = time.Now().Add(-time.Hour)
	return account
}

func TestTokenManager_EnsureValidToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := clientmocks.NewMockClient(ctrl)
	mockAccountRepo := repomocks.NewMockConnectedAccountRepository(ctrl)

	manager := gbpclient.NewTokenManager(&config.Config{}, mockClient, mockAccountRepo)

	tests := []struct {
		name     string
		setup    func()
		validate func(t *testing.T, account *domain.ConnectedAccount, err error)
	}{
		{
			name: "Token válido não dispara refresh",
			setup: func() {
				mockAccountRepo.EXPECT().
					GetByID(gomock.Any(), "ACC001").
					Return(validAccount(), nil)
			},
			validate: func(t *testing.T, account *domain.ConnectedAccount, err error) {
				assert.NoError(t, err)
				assert.Equal(t, "access-token", account.AccessToken)
			},
		},
		{
			name: "Token expirado é renovado e persistido antes de devolver",
			setup: func() {
				mockAccountRepo.EXPECT().
					GetByID(gomock.Any(), "ACC001").
					Return(expiredAccount(), nil)

				mockClient.EXPECT().
					RefreshAccessToken(gomock.Any(), "refresh-token").
					Return(&gbpclient.TokenResponse{
						AccessToken: "fresh-access-token",
						ExpiresIn:   3600,
					}, nil)

				// A persistência usa a versão lida: escrita concorrente falharia
				mockAccountRepo.EXPECT().
					UpdateCredentials(gomock.Any(), "ACC001", "fresh-access-token", gomock.Any(), int64(3)).
					Return(nil)
			},
			validate: func(t *testing.T, account *domain.ConnectedAccount, err error) {
				assert.NoError(t, err)
				assert.Equal(t, "fresh-access-token", account.AccessToken)
				assert.True(t, account.TokenExpiresAt.After(time.Now()))
				assert.Equal(t, int64(4), account.Version)
			},
		},
		{
			name: "Refresh rejeitado devolve erro sem tocar na credencial armazenada",
			setup: func() {
				mockAccountRepo.EXPECT().
					GetByID(gomock.Any(), "ACC001").
					Return(expiredAccount(), nil)

				mockClient.EXPECT().
					RefreshAccessToken(gomock.Any(), "refresh-token").
					Return(nil, fmt.Errorf("%w: invalid_grant", gbpclient.ErrReauthorizationRequired))
			},
			validate: func(t *testing.T, account *domain.ConnectedAccount, err error) {
				assert.Nil(t, account)
				assert.ErrorIs(t, err, gbpclient.ErrReauthorizationRequired)
			},
		},
		{
			name: "Conta sem refresh token falha sem chamada de rede",
			setup: func() {
				account := expiredAccount()
				account.RefreshToken = ""

				mockAccountRepo.EXPECT().
					GetByID(gomock.Any(), "ACC001").
					Return(account, nil)
			},
			validate: func(t *testing.T, account *domain.ConnectedAccount, err error) {
				assert.Nil(t, account)
				assert.ErrorIs(t, err, gbpclient.ErrReauthorizationRequired)
			},
		},
		{
			name: "Conta inexistente exige reautorização",
			setup: func() {
				mockAccountRepo.EXPECT().
					GetByID(gomock.Any(), "ACC001").
					Return(nil, nil)
			},
			validate: func(t *testing.T, account *domain.ConnectedAccount, err error) {
				assert.Nil(t, account)
				assert.ErrorIs(t, err, gbpclient.ErrReauthorizationRequired)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()

			account, err := manager.EnsureValidToken(context.Background(), "ACC001")
			tt.validate(t, account, err)
		})
	}
}

func TestTokenManager_EnsureValidToken_ResolveNomeDaConta(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := clientmocks.NewMockClient(ctrl)
	mockAccountRepo := repomocks.NewMockConnectedAccountRepository(ctrl)

	manager := gbpclient.NewTokenManager(&config.Config{}, mockClient, mockAccountRepo)

	t.Run("Nome ausente é resolvido e cacheado na conta", func(t *testing.T) {
		account := validAccount()
		account.AccountName = ""

		mockAccountRepo.EXPECT().
			GetByID(gomock.Any(), "ACC001").
			Return(account, nil)

		mockClient.EXPECT().
			ListAccounts(gomock.Any(), "access-token").
			Return([]gbpdomain.Account{{Name: "accounts/1088"}}, nil)

		mockAccountRepo.EXPECT().
			UpdateAccountName(gomock.Any(), "ACC001", "accounts/1088").
			Return(nil)

		resolved, err := manager.EnsureValidToken(context.Background(), "ACC001")

		assert.NoError(t, err)
		assert.Equal(t, "accounts/1088", resolved.AccountName)
	})

	t.Run("Falha na resolução do nome não derruba a chamada", func(t *testing.T) {
		account := validAccount()
		account.AccountName = ""

		mockAccountRepo.EXPECT().
			GetByID(gomock.Any(), "ACC001").
			Return(account, nil)

		mockClient.EXPECT().
			ListAccounts(gomock.Any(), "access-token").
			Return(nil, fmt.Errorf("HTTP 503"))

		resolved, err := manager.EnsureValidToken(context.Background(), "ACC001")

		assert.NoError(t, err)
		assert.Empty(t, resolved.AccountName)
	})
}

// Duas sincronizações simultâneas da mesma conta não podem disparar dois
// refreshes: a segunda espera o lock e reutiliza a credencial recém-persistida
func TestTokenManager_EnsureValidToken_RefreshConcorrente(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := clientmocks.NewMockClient(ctrl)
	mockAccountRepo := repomocks.NewMockConnectedAccountRepository(ctrl)

	manager := gbpclient.NewTokenManager(&config.Config{}, mockClient, mockAccountRepo)

	var mu sync.Mutex
	stored := *expiredAccount()

	mockAccountRepo.EXPECT().
		GetByID(gomock.Any(), "ACC001").
		DoAndReturn(func(ctx context.Context, id string) (*domain.ConnectedAccount, error) {
			mu.Lock()
			defer mu.Unlock()
			account := stored
			return &account, nil
		}).
		AnyTimes()

	mockClient.EXPECT().
		RefreshAccessToken(gomock.Any(), "refresh-token").
		Return(&gbpclient.TokenResponse{
			AccessToken: "fresh-access-token",
			ExpiresIn:   3600,
		}, nil).
		Times(1)

	mockAccountRepo.EXPECT().
		UpdateCredentials(gomock.Any(), "ACC001", "fresh-access-token", gomock.Any(), int64(3)).
		DoAndReturn(func(ctx context.Context, id, accessToken string, expiresAt time.Time, version int64) error {
			mu.Lock()
			defer mu.Unlock()
			stored.AccessToken = accessToken
			stored.TokenExpiresAt = expiresAt
			stored.Version++
			return nil
		}).
		Times(1)

	const callers = 8
	var wg sync.WaitGroup
	results := make([]*domain.ConnectedAccount, callers)
	errs := make([]error, callers)

	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], errs[i] = manager.EnsureValidToken(context.Background(), "ACC001")
		}(i)
	}
	wg.Wait()

	for i := 0; i < callers; i++ {
		assert.NoError(t, errs[i])
		assert.Equal(t, "fresh-access-token", results[i].AccessToken)
	}
}
