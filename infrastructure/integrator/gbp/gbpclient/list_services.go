package gbpclient

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"

	gbpdomain "github.com/vfg2006/profile-health-api/infrastructure/integrator/gbp/domain"
)

type responseListServices struct {
	ServiceItems  []gbpdomain.RawServiceItem `json:"serviceItems"`
	NextPageToken string                     `json:"nextPageToken"`
}

// ListServices busca todas as páginas de serviços do perfil. Os itens são
// devolvidos crus (mapas) porque o formato varia entre serviços estruturados,
// rótulos livres e campos genéricos de exibição — o normalizador resolve.
func (c *GBPClient) ListServices(ctx context.Context, token, locationID string) ([]gbpdomain.RawServiceItem, error) {
	baseURL := fmt.Sprintf("%s/locations/%s/serviceItems", c.Cfg.Google.BusinessInfoURL, locationID)

	params := url.Values{}
	params.Set("pageSize", strconv.Itoa(c.Cfg.Sync.ServicesPageSize))

	items := make([]gbpdomain.RawServiceItem, 0)

	err := c.fetchAllPages(ctx, token, baseURL, params, func(body []byte) (string, error) {
		var page responseListServices
		if err := json.Unmarshal(body, &page); err != nil {
			return "", fmt.Errorf("erro ao decodificar JSON de serviços: %w", err)
		}

		items = append(items, page.ServiceItems...)
		return page.NextPageToken, nil
	})
	if err != nil {
		return nil, err
	}

	return items, nil
}
