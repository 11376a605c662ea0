package gbpclient

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"

	gbpdomain "github.com/vfg2006/profile-health-api/infrastructure/integrator/gbp/domain"
)

type responseListMedia struct {
	MediaItems          []gbpdomain.MediaItem `json:"mediaItems"`
	TotalMediaItemCount int                   `json:"totalMediaItemCount"`
	NextPageToken       string                `json:"nextPageToken"`
}

// ListMedia busca todas as páginas de fotos e vídeos do perfil
func (c *GBPClient) ListMedia(ctx context.Context, token, accountName, locationID string) ([]gbpdomain.MediaItem, error) {
	baseURL := fmt.Sprintf("%s/%s/locations/%s/media", c.Cfg.Google.BusinessAPIURL, accountName, locationID)

	params := url.Values{}
	params.Set("pageSize", strconv.Itoa(c.Cfg.Sync.MediaPageSize))

	items := make([]gbpdomain.MediaItem, 0)

	err := c.fetchAllPages(ctx, token, baseURL, params, func(body []byte) (string, error) {
		var page responseListMedia
		if err := json.Unmarshal(body, &page); err != nil {
			return "", fmt.Errorf("erro ao decodificar JSON de mídia: %w", err)
		}

		items = append(items, page.MediaItems...)
		return page.NextPageToken, nil
	})
	if err != nil {
		return nil, err
	}

	return items, nil
}
