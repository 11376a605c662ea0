package connecting

import (
	"context"
	"fmt"
	"net/url"
	"time"

	pkgerrors "github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/profile-health-api/infrastructure/integrator/gbp/gbpclient"
	"github.com/vfg2006/profile-health-api/infrastructure/repository"
	"github.com/vfg2006/profile-health-api/internal/config"
	"github.com/vfg2006/profile-health-api/internal/domain"
	"github.com/vfg2006/profile-health-api/pkg/utils"
)

// Connector gerencia o ciclo de vida da conexão OAuth com a plataforma:
// gera a URL de autorização, troca o código do callback pelo par de
// credenciais e desconecta contas
type Connector interface {
	AuthorizationURL(state string) string
	HandleCallback(ctx context.Context, code, email string) (*domain.ConnectedAccount, error)
	Disconnect(ctx context.Context, accountID string) error
}

type Service struct {
	cfg        *config.Config
	client     gbpclient.Client
	accounts   repository.ConnectedAccountRepository
	businesses repository.BusinessRepository
	now        func() time.Time
}

func NewService(
	cfg *config.Config,
	client gbpclient.Client,
	accounts repository.ConnectedAccountRepository,
	businesses repository.BusinessRepository,
) *Service {
	return &Service{
		cfg:        cfg,
		client:     client,
		accounts:   accounts,
		businesses: businesses,
		now:        time.Now,
	}
}

// AuthorizationURL monta a URL do consentimento delegado. access_type=offline
// e prompt=consent garantem a emissão do refresh token na primeira conexão.
func (s *Service) AuthorizationURL(state string) string {
	params := url.Values{}
	params.Set("client_id", s.cfg.Google.ClientID)
	params.Set("redirect_uri", s.cfg.Google.RedirectURI)
	params.Set("response_type", "code")
	params.Set("scope", s.cfg.Google.Scopes)
	params.Set("access_type", "offline")
	params.Set("prompt", "consent")
	if state != "" {
		params.Set("state", state)
	}

	return fmt.Sprintf("%s?%s", s.cfg.Google.AuthURL, params.Encode())
}

// HandleCallback troca o código de autorização pelo par de credenciais e
// persiste a conta conectada. Reconexão da mesma conta (mesmo email)
// substitui as credenciais mantendo o vínculo com o negócio.
func (s *Service) HandleCallback(ctx context.Context, code, email string) (*domain.ConnectedAccount, error) {
	tokens, err := s.client.ExchangeAuthCode(ctx, code)
	if err != nil {
		return nil, pkgerrors.Wrap(err, "erro ao trocar o código de autorização")
	}

	now := s.now()
	account := &domain.ConnectedAccount{
		Email:          email,
		AccessToken:    tokens.AccessToken,
		RefreshToken:   tokens.RefreshToken,
		TokenExpiresAt: gbpclient.CalculateTokenExpiration(now, tokens.ExpiresIn),
	}

	// Reconexão reaproveita o registro existente; o refresh token antigo só
	// é substituído se a plataforma emitiu um novo
	existing, err := s.accounts.GetByEmail(ctx, email)
	if err != nil {
		return nil, pkgerrors.Wrap(err, "erro ao buscar conta existente")
	}
	if existing != nil {
		account.ID = existing.ID
		account.AccountName = existing.AccountName
		account.LocationID = existing.LocationID
		if account.RefreshToken == "" {
			account.RefreshToken = existing.RefreshToken
		}
	} else {
		id, err := utils.GenerateID()
		if err != nil {
			return nil, pkgerrors.Wrap(err, "erro ao gerar identificador da conta")
		}
		account.ID = id
	}

	// Resolução best-effort do nome externo da conta; se falhar agora, o
	// gerenciador de tokens resolve de forma preguiçosa no primeiro sync
	if account.AccountName == "" {
		if platformAccounts, err := s.client.ListAccounts(ctx, tokens.AccessToken); err != nil {
			logrus.WithFields(logrus.Fields{
				"email": email,
				"error": err.Error(),
			}).Warn("connect: could not resolve external account name during callback")
		} else if len(platformAccounts) > 0 {
			account.AccountName = platformAccounts[0].Name
		}
	}

	if err := s.accounts.Save(ctx, account); err != nil {
		return nil, pkgerrors.Wrap(err, "erro ao persistir a conta conectada")
	}

	logrus.WithFields(logrus.Fields{
		"account_id": account.ID,
		"email":      email,
	}).Info("connect: account connected")

	return account, nil
}

// Disconnect remove a conta conectada e desvincula os negócios que a usavam
func (s *Service) Disconnect(ctx context.Context, accountID string) error {
	if err := s.businesses.UnlinkAccount(ctx, accountID); err != nil {
		return pkgerrors.Wrap(err, "erro ao desvincular negócios da conta")
	}

	if err := s.accounts.Delete(ctx, accountID); err != nil {
		return pkgerrors.Wrap(err, "erro ao remover a conta conectada")
	}

	logrus.WithField("account_id", accountID).Info("connect: account disconnected")
	return nil
}
