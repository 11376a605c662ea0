package gbpclient

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

// ErrReauthorizationRequired indica que a credencial delegada não pode ser
// renovada: refresh token ausente ou rejeitado pela plataforma. O sync inteiro
// falha e o usuário precisa reconectar a conta — nunca há retry silencioso.
var ErrReauthorizationRequired = errors.New("reautorização necessária")

// TokenResponse representa a resposta do endpoint de tokens da plataforma
type TokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token,omitempty"`
	TokenType    string `json:"token_type"`
	ExpiresIn    int64  `json:"expires_in"`
	Scope        string `json:"scope,omitempty"`
}

// ExchangeAuthCode troca o código de autorização do callback OAuth pelo par
// access token + refresh token
func (c *GBPClient) ExchangeAuthCode(ctx context.Context, code string) (*TokenResponse, error) {
	if code == "" {
		return nil, fmt.Errorf("código de autorização não pode ser vazio")
	}

	form := url.Values{}
	form.Set("grant_type", "authorization_code")
	form.Set("code", code)
	form.Set("client_id", c.Cfg.Google.ClientID)
	form.Set("client_secret", c.Cfg.Google.ClientSecret)
	form.Set("redirect_uri", c.Cfg.Google.RedirectURI)

	return c.postTokenEndpoint(ctx, form)
}

// RefreshAccessToken troca o refresh token por um novo access token usando as
// credenciais de client armazenadas. O refresh token não é rotacionado pela
// plataforma e permanece o mesmo.
func (c *GBPClient) RefreshAccessToken(ctx context.Context, refreshToken string) (*TokenResponse, error) {
	if refreshToken == "" {
		return nil, fmt.Errorf("%w: refresh token ausente", ErrReauthorizationRequired)
	}

	form := url.Values{}
	form.Set("grant_type", "refresh_token")
	form.Set("refresh_token", refreshToken)
	form.Set("client_id", c.Cfg.Google.ClientID)
	form.Set("client_secret", c.Cfg.Google.ClientSecret)

	resp, err := c.postTokenEndpoint(ctx, form)
	if err != nil {
		// Qualquer rejeição do endpoint de tokens exige reconectar a conta
		if !errors.Is(err, ErrReauthorizationRequired) {
			err = fmt.Errorf("%w: %v", ErrReauthorizationRequired, err)
		}
		return nil, err
	}

	return resp, nil
}

func (c *GBPClient) postTokenEndpoint(ctx context.Context, form url.Values) (*TokenResponse, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.Cfg.Google.TokenURL, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("erro ao criar a requisição de token: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("erro ao chamar o endpoint de tokens: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("erro ao ler resposta: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		logrus.WithFields(logrus.Fields{
			"status": resp.StatusCode,
		}).Error("gbp: endpoint de tokens rejeitou a requisição")
		return nil, fmt.Errorf("erro no endpoint de tokens. Status: %d, Corpo: %s", resp.StatusCode, string(body))
	}

	var tokenResp TokenResponse
	if err := json.Unmarshal(body, &tokenResp); err != nil {
		return nil, fmt.Errorf("erro ao decodificar resposta de token: %w", err)
	}

	if tokenResp.AccessToken == "" {
		return nil, fmt.Errorf("token retornado pela plataforma é vazio")
	}

	return &tokenResp, nil
}

// CalculateTokenExpiration converte o expires_in relativo na data absoluta de
// expiração armazenada junto com a conta
func CalculateTokenExpiration(now time.Time, expiresIn int64) time.Time {
	return now.Add(time.Duration(expiresIn) * time.Second)
}
