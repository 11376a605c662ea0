package gbpclient

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/profile-health-api/infrastructure/repository"
	"github.com/vfg2006/profile-health-api/internal/config"
	"github.com/vfg2006/profile-health-api/internal/domain"
)

// TokenManager é o dono do ciclo de vida da credencial delegada de cada conta
// conectada: detecta expiração e faz o refresh antes de qualquer chamada
// dependente, sempre persistindo a nova credencial antes de devolvê-la.
type TokenManager struct {
	cfg      *config.Config
	client   Client
	accounts repository.ConnectedAccountRepository

	// Um mutex por conta: o refresh precisa ser serializado por conta para
	// que duas sincronizações simultâneas não disparem dois refreshes — o
	// segundo invalidaria o access token que o primeiro acabou de receber.
	mu           sync.Mutex
	accountLocks map[string]*sync.Mutex

	now func() time.Time
}

func NewTokenManager(
	cfg *config.Config,
	client Client,
	accounts repository.ConnectedAccountRepository,
) *TokenManager {
	return &TokenManager{
		cfg:          cfg,
		client:       client,
		accounts:     accounts,
		accountLocks: make(map[string]*sync.Mutex),
		now:          time.Now,
	}
}

func (tm *TokenManager) lockFor(accountID string) *sync.Mutex {
	tm.mu.Lock()
	defer tm.mu.Unlock()

	lock, ok := tm.accountLocks[accountID]
	if !ok {
		lock = &sync.Mutex{}
		tm.accountLocks[accountID] = lock
	}
	return lock
}

// EnsureValidToken garante que a conta tem um access token válido, renovando
// se necessário. Chamadas concorrentes para a mesma conta aguardam o refresh
// em andamento e reutilizam a credencial recém-persistida em vez de disparar
// uma segunda troca.
//
// A comparação com a expiração armazenada é exata, sem margem. Um refresh que
// falha deixa a credencial armazenada intocada e devolve
// ErrReauthorizationRequired — nunca há retry silencioso.
func (tm *TokenManager) EnsureValidToken(ctx context.Context, accountID string) (*domain.ConnectedAccount, error) {
	lock := tm.lockFor(accountID)
	lock.Lock()
	defer lock.Unlock()

	// Recarrega a conta dentro do lock: se outra chamada acabou de renovar,
	// a credencial nova já está persistida e nenhum refresh extra é feito
	account, err := tm.accounts.GetByID(ctx, accountID)
	if err != nil {
		return nil, fmt.Errorf("erro ao carregar conta conectada: %w", err)
	}
	if account == nil {
		return nil, fmt.Errorf("%w: conta %s não encontrada", ErrReauthorizationRequired, accountID)
	}

	// Sem refresh token não há chamada de rede: falha imediata
	if !account.HasRefreshToken() {
		return nil, fmt.Errorf("%w: conta %s sem refresh token", ErrReauthorizationRequired, accountID)
	}

	if account.IsTokenExpired(tm.now()) {
		if err := tm.refreshAndPersist(ctx, account); err != nil {
			return nil, err
		}
	}

	// O nome externo da conta é resolvido de forma preguiçosa, uma única vez
	// depois do refresh, e cacheado permanentemente no registro da conta
	if account.AccountName == "" {
		tm.resolveAccountName(ctx, account)
	}

	return account, nil
}

func (tm *TokenManager) refreshAndPersist(ctx context.Context, account *domain.ConnectedAccount) error {
	logrus.WithFields(logrus.Fields{
		"account_id": account.ID,
		"expired_at": account.TokenExpiresAt.Format(time.RFC3339),
	}).Info("token: credencial expirada, iniciando refresh")

	tokenResp, err := tm.client.RefreshAccessToken(ctx, account.RefreshToken)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"account_id": account.ID,
			"error":      err.Error(),
		}).Error("token: refresh rejeitado pela plataforma")
		return err
	}

	expiresAt := CalculateTokenExpiration(tm.now(), tokenResp.ExpiresIn)

	// Persiste atomicamente junto com o registro da conta antes de devolver.
	// A linha é versionada: se outra escrita chegou antes, a atualização falha
	// em vez de sobrescrever uma credencial mais nova.
	if err := tm.accounts.UpdateCredentials(ctx, account.ID, tokenResp.AccessToken, expiresAt, account.Version); err != nil {
		return fmt.Errorf("erro ao persistir credencial renovada: %w", err)
	}

	account.AccessToken = tokenResp.AccessToken
	account.TokenExpiresAt = expiresAt
	account.Version++

	logrus.WithFields(logrus.Fields{
		"account_id": account.ID,
		"expires_at": expiresAt.Format(time.RFC3339),
	}).Info("token: credencial renovada e persistida")

	return nil
}

// resolveAccountName busca o identificador externo da conta na listagem de
// contas da plataforma. Best-effort: uma falha aqui não derruba o sync, os
// recursos que dependem do nome registram suas próprias falhas.
func (tm *TokenManager) resolveAccountName(ctx context.Context, account *domain.ConnectedAccount) {
	accounts, err := tm.client.ListAccounts(ctx, account.AccessToken)
	if err != nil || len(accounts) == 0 {
		logrus.WithFields(logrus.Fields{
			"account_id": account.ID,
		}).Warn("token: não foi possível resolver o nome externo da conta")
		return
	}

	name := accounts[0].Name
	if err := tm.accounts.UpdateAccountName(ctx, account.ID, name); err != nil {
		logrus.WithError(err).Warn("token: erro ao cachear o nome externo da conta")
		return
	}

	account.AccountName = name
}
