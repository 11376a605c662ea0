package gbpclient

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"

	gbpdomain "github.com/vfg2006/profile-health-api/infrastructure/integrator/gbp/domain"
)

type responseListQuestions struct {
	Questions     []gbpdomain.Question `json:"questions"`
	TotalSize     int                  `json:"totalSize"`
	NextPageToken string               `json:"nextPageToken"`
}

// ListQuestions busca todas as páginas de perguntas e respostas do perfil
func (c *GBPClient) ListQuestions(ctx context.Context, token, locationID string) ([]gbpdomain.Question, error) {
	baseURL := fmt.Sprintf("%s/locations/%s/questions", c.Cfg.Google.QandaURL, locationID)

	params := url.Values{}
	params.Set("pageSize", strconv.Itoa(c.Cfg.Sync.QuestionsPageSize))
	params.Set("answersPerQuestion", "3")

	questions := make([]gbpdomain.Question, 0)

	err := c.fetchAllPages(ctx, token, baseURL, params, func(body []byte) (string, error) {
		var page responseListQuestions
		if err := json.Unmarshal(body, &page); err != nil {
			return "", fmt.Errorf("erro ao decodificar JSON de perguntas: %w", err)
		}

		questions = append(questions, page.Questions...)
		return page.NextPageToken, nil
	})
	if err != nil {
		return nil, err
	}

	return questions, nil
}
