package gbpclient

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"

	gbpdomain "github.com/vfg2006/profile-health-api/infrastructure/integrator/gbp/domain"
)

type responseListLocalPosts struct {
	LocalPosts    []gbpdomain.LocalPost `json:"localPosts"`
	NextPageToken string                `json:"nextPageToken"`
}

// ListLocalPosts busca todas as páginas de publicações do perfil
func (c *GBPClient) ListLocalPosts(ctx context.Context, token, accountName, locationID string) ([]gbpdomain.LocalPost, error) {
	baseURL := fmt.Sprintf("%s/%s/locations/%s/localPosts", c.Cfg.Google.BusinessAPIURL, accountName, locationID)

	params := url.Values{}
	params.Set("pageSize", strconv.Itoa(c.Cfg.Sync.PostsPageSize))

	posts := make([]gbpdomain.LocalPost, 0)

	err := c.fetchAllPages(ctx, token, baseURL, params, func(body []byte) (string, error) {
		var page responseListLocalPosts
		if err := json.Unmarshal(body, &page); err != nil {
			return "", fmt.Errorf("erro ao decodificar JSON de publicações: %w", err)
		}

		posts = append(posts, page.LocalPosts...)
		return page.NextPageToken, nil
	})
	if err != nil {
		return nil, err
	}

	return posts, nil
}
