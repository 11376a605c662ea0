package gbpclient

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"

	gbpdomain "github.com/vfg2006/profile-health-api/infrastructure/integrator/gbp/domain"
)

type responseListReviews struct {
	Reviews          []gbpdomain.Review `json:"reviews"`
	AverageRating    float64            `json:"averageRating"`
	TotalReviewCount int                `json:"totalReviewCount"`
	NextPageToken    string             `json:"nextPageToken"`
}

// ListReviews busca todas as páginas de reviews do perfil. Além da coleção,
// devolve o rating médio e a contagem autoritativos informados pela própria
// plataforma no envelope da listagem, quando presentes.
func (c *GBPClient) ListReviews(ctx context.Context, token, accountName, locationID string) ([]gbpdomain.Review, *ReviewTotals, error) {
	baseURL := fmt.Sprintf("%s/%s/locations/%s/reviews", c.Cfg.Google.BusinessAPIURL, accountName, locationID)

	params := url.Values{}
	params.Set("pageSize", strconv.Itoa(c.Cfg.Sync.ReviewsPageSize))

	reviews := make([]gbpdomain.Review, 0)
	var totals *ReviewTotals

	err := c.fetchAllPages(ctx, token, baseURL, params, func(body []byte) (string, error) {
		var page responseListReviews
		if err := json.Unmarshal(body, &page); err != nil {
			return "", fmt.Errorf("erro ao decodificar JSON de reviews: %w", err)
		}

		reviews = append(reviews, page.Reviews...)

		// O envelope repete os totais em toda página; a primeira ocorrência basta
		if totals == nil && page.TotalReviewCount > 0 {
			totals = &ReviewTotals{
				AverageRating:    page.AverageRating,
				TotalReviewCount: page.TotalReviewCount,
			}
		}

		return page.NextPageToken, nil
	})
	if err != nil {
		return nil, nil, err
	}

	return reviews, totals, nil
}
