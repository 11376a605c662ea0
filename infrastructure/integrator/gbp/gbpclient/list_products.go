package gbpclient

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"

	gbpdomain "github.com/vfg2006/profile-health-api/infrastructure/integrator/gbp/domain"
)

type responseListProducts struct {
	Products      []gbpdomain.Product `json:"products"`
	NextPageToken string              `json:"nextPageToken"`
}

// ListProducts busca todas as páginas do catálogo de produtos do perfil
func (c *GBPClient) ListProducts(ctx context.Context, token, accountName, locationID string) ([]gbpdomain.Product, error) {
	baseURL := fmt.Sprintf("%s/%s/locations/%s/products", c.Cfg.Google.BusinessAPIURL, accountName, locationID)

	params := url.Values{}
	params.Set("pageSize", strconv.Itoa(c.Cfg.Sync.ProductsPageSize))

	products := make([]gbpdomain.Product, 0)

	err := c.fetchAllPages(ctx, token, baseURL, params, func(body []byte) (string, error) {
		var page responseListProducts
		if err := json.Unmarshal(body, &page); err != nil {
			return "", fmt.Errorf("erro ao decodificar JSON de produtos: %w", err)
		}

		products = append(products, page.Products...)
		return page.NextPageToken, nil
	})
	if err != nil {
		return nil, err
	}

	return products, nil
}
