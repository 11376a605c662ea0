package gbpclient

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/sirupsen/logrus"
	gbpdomain "github.com/vfg2006/profile-health-api/infrastructure/integrator/gbp/domain"
	"github.com/vfg2006/profile-health-api/internal/config"
)

// Client abstrai os endpoints da plataforma de perfis de negócio dos quais o
// agregador depende. Cada chamada de recurso exige um access token válido no
// header Authorization.
type Client interface {
	ListReviews(ctx context.Context, token, accountName, locationID string) ([]gbpdomain.Review, *ReviewTotals, error)
	ListMedia(ctx context.Context, token, accountName, locationID string) ([]gbpdomain.MediaItem, error)
	ListLocalPosts(ctx context.Context, token, accountName, locationID string) ([]gbpdomain.LocalPost, error)
	ListProducts(ctx context.Context, token, accountName, locationID string) ([]gbpdomain.Product, error)
	ListServices(ctx context.Context, token, locationID string) ([]gbpdomain.RawServiceItem, error)
	ListQuestions(ctx context.Context, token, locationID string) ([]gbpdomain.Question, error)
	GetLocation(ctx context.Context, token, locationID string) (*gbpdomain.Location, error)
	FetchMultiDailyMetrics(ctx context.Context, token, locationID string, start, end time.Time) (*gbpdomain.PerformanceResult, error)
	FetchDailyMetric(ctx context.Context, token, locationID, metric string, start, end time.Time) ([]gbpdomain.DatedValue, error)
	GetPlaceDetails(ctx context.Context, placeID string) (*gbpdomain.PlaceResult, error)
	ListAccounts(ctx context.Context, token string) ([]gbpdomain.Account, error)
	ExchangeAuthCode(ctx context.Context, code string) (*TokenResponse, error)
	RefreshAccessToken(ctx context.Context, refreshToken string) (*TokenResponse, error)
}

// ReviewTotals carrega o rating e a contagem autoritativos informados pela
// própria listagem de reviews, quando presentes
type ReviewTotals struct {
	AverageRating    float64
	TotalReviewCount int
}

type GBPClient struct {
	Cfg        *config.Config
	httpClient *http.Client
}

func NewClient(cfg *config.Config) Client {
	return &GBPClient{
		Cfg: cfg,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// doGet executa um GET autenticado e devolve o corpo da resposta.
// Respostas não-2xx viram erro com o corpo incluído para diagnóstico.
func (c *GBPClient) doGet(ctx context.Context, token, requestURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return nil, fmt.Errorf("erro ao criar a requisição: %w", err)
	}

	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("erro ao fazer a requisição: %w", err)
	}
	defer resp.Body.Close()

	return handleResponse(resp)
}

// handleResponse lê o corpo e converte respostas de erro da API em erros Go,
// distinguindo falhas de autorização das demais
func handleResponse(resp *http.Response) ([]byte, error) {
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("erro ao ler resposta: %w", err)
	}

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return body, nil
	}

	var errorResp gbpdomain.ErrorResponse
	if jsonErr := json.Unmarshal(body, &errorResp); jsonErr == nil && errorResp.Error.Code != 0 {
		if errorResp.IsAuthError() {
			logrus.WithFields(logrus.Fields{
				"status":     resp.StatusCode,
				"api_status": errorResp.Error.Status,
			}).Warn("gbp: credencial rejeitada pela plataforma")
			return nil, fmt.Errorf("%w: %s", ErrReauthorizationRequired, errorResp.Error.Message)
		}
		return nil, fmt.Errorf("erro na resposta da API. Status: %d, Mensagem: %s", resp.StatusCode, errorResp.Error.Message)
	}

	if resp.StatusCode == http.StatusUnauthorized {
		return nil, fmt.Errorf("%w: status %d", ErrReauthorizationRequired, resp.StatusCode)
	}

	return nil, fmt.Errorf("erro na resposta da API. Status: %d, Corpo: %s", resp.StatusCode, string(body))
}

// fetchAllPages segue o cursor de continuação até a plataforma não devolver
// mais nenhum, com um teto rígido de páginas para garantir término mesmo se a
// API ecoar o mesmo cursor indefinidamente.
func (c *GBPClient) fetchAllPages(
	ctx context.Context,
	token, baseURL string,
	params url.Values,
	collect func(body []byte) (nextCursor string, err error),
) error {
	maxPages := c.Cfg.Sync.MaxPagesPerResource
	if maxPages <= 0 {
		maxPages = config.DefaultMaxPagesPerResource
	}

	cursor := ""
	for page := 0; page < maxPages; page++ {
		pageParams := url.Values{}
		for k, v := range params {
			pageParams[k] = v
		}
		if cursor != "" {
			pageParams.Set("pageToken", cursor)
		}

		body, err := c.doGet(ctx, token, baseURL+"?"+pageParams.Encode())
		if err != nil {
			return err
		}

		next, err := collect(body)
		if err != nil {
			return err
		}

		if next == "" {
			return nil
		}
		cursor = next
	}

	logrus.WithFields(logrus.Fields{
		"url":       baseURL,
		"max_pages": maxPages,
	}).Warn("gbp: teto de páginas atingido, interrompendo paginação")

	return nil
}
