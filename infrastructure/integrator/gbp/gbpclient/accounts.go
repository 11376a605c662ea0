package gbpclient

import (
	"context"
	"encoding/json"
	"fmt"

	gbpdomain "github.com/vfg2006/profile-health-api/infrastructure/integrator/gbp/domain"
)

type responseListAccounts struct {
	Accounts      []gbpdomain.Account `json:"accounts"`
	NextPageToken string              `json:"nextPageToken"`
}

// ListAccounts lista as contas da plataforma acessíveis pela credencial.
// Usado para resolver o nome externo da conta conectada.
func (c *GBPClient) ListAccounts(ctx context.Context, token string) ([]gbpdomain.Account, error) {
	requestURL := fmt.Sprintf("%s/accounts", c.Cfg.Google.AccountsURL)

	body, err := c.doGet(ctx, token, requestURL)
	if err != nil {
		return nil, err
	}

	var response responseListAccounts
	if err := json.Unmarshal(body, &response); err != nil {
		return nil, fmt.Errorf("erro ao decodificar JSON de contas: %w", err)
	}

	return response.Accounts, nil
}
