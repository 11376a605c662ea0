package gbpclient_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/profile-health-api/infrastructure/integrator/gbp/gbpclient"
	"github.com/vfg2006/profile-health-api/internal/config"
)

func testConfig(serverURL string) *config.Config {
	return &config.Config{
		Google: config.Google{
			BusinessAPIURL:  serverURL,
			BusinessInfoURL: serverURL,
			QandaURL:        serverURL,
			PerformanceURL:  serverURL,
			AccountsURL:     serverURL,
			PlacesURL:       serverURL,
			TokenURL:        serverURL + "/token",
		},
		Sync: config.Sync{
			MaxPagesPerResource: 5,
			ReviewsPageSize:     2,
			MediaPageSize:       100,
		},
	}
}

func TestGBPClient_ListReviews_SegueCursorDePaginacao(t *testing.T) {
	pages := []map[string]any{
		{
			"reviews": []map[string]any{
				{"reviewId": "rev-1", "starRating": "FIVE"},
				{"reviewId": "rev-2", "starRating": "FOUR"},
			},
			"averageRating":    4.5,
			"totalReviewCount": 3,
			"nextPageToken":    "cursor-2",
		},
		{
			"reviews": []map[string]any{
				{"reviewId": "rev-3", "starRating": "THREE"},
			},
			"averageRating":    4.5,
			"totalReviewCount": 3,
		},
	}

	var requests []string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))
		requests = append(requests, r.URL.RawQuery)

		page := pages[0]
		if r.URL.Query().Get("pageToken") == "cursor-2" {
			page = pages[1]
		}
		json.NewEncoder(w).Encode(page)
	}))
	defer server.Close()

	client := gbpclient.NewClient(testConfig(server.URL))

	reviews, totals, err := client.ListReviews(context.Background(), "tok", "accounts/1088", "5577")

	assert.NoError(t, err)
	assert.Len(t, reviews, 3)
	assert.Equal(t, "rev-1", reviews[0].ReviewID)
	assert.Equal(t, "rev-3", reviews[2].ReviewID)
	assert.Len(t, requests, 2)

	// Os totais autoritativos vêm do envelope da listagem
	assert.NotNil(t, totals)
	assert.Equal(t, 4.5, totals.AverageRating)
	assert.Equal(t, 3, totals.TotalReviewCount)
}

// A API ecoando o mesmo cursor para sempre não pode travar o sync: o teto de
// páginas interrompe a paginação com o que foi acumulado até ali
func TestGBPClient_ListReviews_TetoDePaginas(t *testing.T) {
	var requestCount int
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestCount++
		json.NewEncoder(w).Encode(map[string]any{
			"reviews": []map[string]any{
				{"reviewId": "rev", "starRating": "FIVE"},
			},
			"nextPageToken": "cursor-infinito",
		})
	}))
	defer server.Close()

	client := gbpclient.NewClient(testConfig(server.URL))

	reviews, _, err := client.ListReviews(context.Background(), "tok", "accounts/1088", "5577")

	assert.NoError(t, err)
	assert.Equal(t, 5, requestCount)
	assert.Len(t, reviews, 5)
}

func TestGBPClient_ListReviews_CredencialRejeitada(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(map[string]any{
			"error": map[string]any{
				"code":    401,
				"message": "Request had invalid authentication credentials.",
				"status":  "UNAUTHENTICATED",
			},
		})
	}))
	defer server.Close()

	client := gbpclient.NewClient(testConfig(server.URL))

	reviews, totals, err := client.ListReviews(context.Background(), "tok", "accounts/1088", "5577")

	assert.Nil(t, reviews)
	assert.Nil(t, totals)
	assert.ErrorIs(t, err, gbpclient.ErrReauthorizationRequired)
}

func TestGBPClient_RefreshAccessToken(t *testing.T) {
	t.Run("Troca bem-sucedida devolve a nova credencial", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.NoError(t, r.ParseForm())
			assert.Equal(t, "refresh_token", r.Form.Get("grant_type"))
			assert.Equal(t, "rt-1", r.Form.Get("refresh_token"))

			json.NewEncoder(w).Encode(map[string]any{
				"access_token": "at-novo",
				"token_type":   "Bearer",
				"expires_in":   3600,
			})
		}))
		defer server.Close()

		client := gbpclient.NewClient(testConfig(server.URL))

		resp, err := client.RefreshAccessToken(context.Background(), "rt-1")

		assert.NoError(t, err)
		assert.Equal(t, "at-novo", resp.AccessToken)
		assert.Equal(t, int64(3600), resp.ExpiresIn)
	})

	t.Run("Refresh token vazio falha sem chamada de rede", func(t *testing.T) {
		client := gbpclient.NewClient(testConfig("http://127.0.0.1:0"))

		resp, err := client.RefreshAccessToken(context.Background(), "")

		assert.Nil(t, resp)
		assert.ErrorIs(t, err, gbpclient.ErrReauthorizationRequired)
	})

	t.Run("Rejeição do endpoint de tokens vira erro de reautorização", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(map[string]any{"error": "invalid_grant"})
		}))
		defer server.Close()

		client := gbpclient.NewClient(testConfig(server.URL))

		resp, err := client.RefreshAccessToken(context.Background(), "rt-revogado")

		assert.Nil(t, resp)
		assert.ErrorIs(t, err, gbpclient.ErrReauthorizationRequired)
	})
}

func TestCalculateTokenExpiration(t *testing.T) {
	base := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)

	assert.Equal(t, base.Add(time.Hour), gbpclient.CalculateTokenExpiration(base, 3600))
	// Sem expires_in a credencial nasce expirada: a comparação é exata
	assert.Equal(t, base, gbpclient.CalculateTokenExpiration(base, 0))
}
