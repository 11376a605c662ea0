package gbp_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/profile-health-api/infrastructure/integrator/gbp"
	gbpdomain "github.com/vfg2006/profile-health-api/infrastructure/integrator/gbp/domain"
	"github.com/vfg2006/profile-health-api/infrastructure/integrator/gbp/gbpclient"
	clientmocks "github.com/vfg2006/profile-health-api/infrastructure/integrator/gbp/gbpclient/mocks"
	gbpmocks "github.com/vfg2006/profile-health-api/infrastructure/integrator/gbp/mocks"
	"github.com/vfg2006/profile-health-api/internal/config"
	"github.com/vfg2006/profile-health-api/internal/domain"
	"go.uber.org/mock/gomock"
)

type integratorFixture struct {
	client       *clientmocks.MockClient
	tokenManager *gbpmocks.MockTokenEnsurer
	integrator   *gbp.GBPIntegrator
}

// newFixture cria mocks novos por subteste: expectativas AnyTimes de um caso
// não podem vazar para o seguinte
func newFixture(t *testing.T) *integratorFixture {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	client := clientmocks.NewMockClient(ctrl)
	tokenManager := gbpmocks.NewMockTokenEnsurer(ctrl)

	return &integratorFixture{
		client:       client,
		tokenManager: tokenManager,
		integrator:   gbp.New(&config.Config{}, client, tokenManager),
	}
}

var testLocation = domain.LocationReference{
	AccountID:  "1088",
	LocationID: "5577",
}

func connectedAccount() *domain.ConnectedAccount {
	return &domain.ConnectedAccount{
		ID:             "ACC001",
		AccessToken:    "tok",
		RefreshToken:   "rt",
		TokenExpiresAt: time.Now().Add(time.Hour),
		AccountName:    "accounts/1088",
	}
}

// expectAllResources registra respostas vazias bem-sucedidas para todos os
// recursos; os casos de teste declaram antes as expectativas específicas
func (f *integratorFixture) expectAllResources() {
	f.tokenManager.EXPECT().EnsureValidToken(gomock.Any(), "ACC001").Return(connectedAccount(), nil).AnyTimes()
	f.client.EXPECT().GetLocation(gomock.Any(), "tok", "5577").Return(&gbpdomain.Location{}, nil).AnyTimes()
	f.client.EXPECT().ListReviews(gomock.Any(), "tok", "accounts/1088", "5577").Return(nil, nil, nil).AnyTimes()
	f.client.EXPECT().ListMedia(gomock.Any(), "tok", "accounts/1088", "5577").Return(nil, nil).AnyTimes()
	f.client.EXPECT().ListLocalPosts(gomock.Any(), "tok", "accounts/1088", "5577").Return(nil, nil).AnyTimes()
	f.client.EXPECT().ListProducts(gomock.Any(), "tok", "accounts/1088", "5577").Return(nil, nil).AnyTimes()
	f.client.EXPECT().ListServices(gomock.Any(), "tok", "5577").Return(nil, nil).AnyTimes()
	f.client.EXPECT().ListQuestions(gomock.Any(), "tok", "5577").Return(nil, nil).AnyTimes()
	f.client.EXPECT().FetchMultiDailyMetrics(gomock.Any(), "tok", "5577", gomock.Any(), gomock.Any()).
		Return(&gbpdomain.PerformanceResult{}, nil).AnyTimes()
}

func TestGBPIntegrator_FetchAll(t *testing.T) {
	t.Run("Credencial inválida aborta o sync inteiro", func(t *testing.T) {
		f := newFixture(t)

		f.tokenManager.EXPECT().
			EnsureValidToken(gomock.Any(), "ACC001").
			Return(nil, gbpclient.ErrReauthorizationRequired)

		results, err := f.integrator.FetchAll(context.Background(), "ACC001", testLocation, nil)

		assert.Nil(t, results)
		assert.ErrorIs(t, err, gbpclient.ErrReauthorizationRequired)
	})

	t.Run("Falha de um recurso vira marcador, não erro", func(t *testing.T) {
		f := newFixture(t)

		f.client.EXPECT().
			ListReviews(gomock.Any(), "tok", "accounts/1088", "5577").
			Return(nil, nil, errors.New("HTTP 500"))
		f.expectAllResources()

		results, err := f.integrator.FetchAll(context.Background(), "ACC001", testLocation, nil)

		assert.NoError(t, err)
		assert.NotNil(t, results)
		assert.True(t, results.Failed(gbpdomain.ResourceReviews))
		assert.Equal(t, "HTTP 500", results.Failures[gbpdomain.ResourceReviews])
		assert.False(t, results.Failed(gbpdomain.ResourceMedia))
	})

	t.Run("Recursos completos chegam no acumulador", func(t *testing.T) {
		f := newFixture(t)

		f.client.EXPECT().
			GetLocation(gomock.Any(), "tok", "5577").
			Return(&gbpdomain.Location{Title: "Ótica Central"}, nil)
		f.client.EXPECT().
			ListMedia(gomock.Any(), "tok", "accounts/1088", "5577").
			Return([]gbpdomain.MediaItem{{Name: "media-1"}}, nil)
		f.expectAllResources()

		results, err := f.integrator.FetchAll(context.Background(), "ACC001", testLocation, nil)

		assert.NoError(t, err)
		assert.Empty(t, results.Failures)
		assert.Equal(t, "Ótica Central", results.Location.Title)
		assert.Len(t, results.Media, 1)
	})
}

func TestGBPIntegrator_FetchAll_ReconciliacaoDeRating(t *testing.T) {
	t.Run("Totais da plataforma têm prioridade sobre o cálculo local", func(t *testing.T) {
		f := newFixture(t)

		reviews := []gbpdomain.Review{
			{ReviewID: "rev-1", StarRating: gbpdomain.StarRatingOne},
		}
		totals := &gbpclient.ReviewTotals{AverageRating: 4.666, TotalReviewCount: 250}

		f.client.EXPECT().
			ListReviews(gomock.Any(), "tok", "accounts/1088", "5577").
			Return(reviews, totals, nil)
		f.expectAllResources()

		results, err := f.integrator.FetchAll(context.Background(), "ACC001", testLocation, nil)

		assert.NoError(t, err)
		assert.Equal(t, gbpdomain.RatingSourcePlatform, results.Rating.Source)
		assert.Equal(t, 4.67, results.Rating.Average)
		assert.Equal(t, 250, results.Rating.Count)
	})

	t.Run("Sem totais da plataforma a média local é calculada", func(t *testing.T) {
		f := newFixture(t)

		reviews := []gbpdomain.Review{
			{ReviewID: "rev-1", StarRating: gbpdomain.StarRatingFive},
			{ReviewID: "rev-2", StarRating: gbpdomain.StarRatingFour},
			{ReviewID: "rev-3", StarRating: "UNRECOGNIZED"}, // fora da média
		}

		f.client.EXPECT().
			ListReviews(gomock.Any(), "tok", "accounts/1088", "5577").
			Return(reviews, nil, nil)
		f.expectAllResources()

		results, err := f.integrator.FetchAll(context.Background(), "ACC001", testLocation, nil)

		assert.NoError(t, err)
		assert.Equal(t, gbpdomain.RatingSourceComputed, results.Rating.Source)
		assert.Equal(t, 4.5, results.Rating.Average)
		assert.Equal(t, 3, results.Rating.Count)
	})

	t.Run("Sem reviews o endpoint público pelo place ID é o último recurso", func(t *testing.T) {
		f := newFixture(t)

		placeID := "ChIJ-place"

		f.client.EXPECT().
			GetPlaceDetails(gomock.Any(), placeID).
			Return(&gbpdomain.PlaceResult{Rating: 4.3, UserRatingsTotal: 87}, nil)
		f.expectAllResources()

		results, err := f.integrator.FetchAll(context.Background(), "ACC001", testLocation, &placeID)

		assert.NoError(t, err)
		assert.Equal(t, gbpdomain.RatingSourcePlaces, results.Rating.Source)
		assert.Equal(t, 4.3, results.Rating.Average)
		assert.Equal(t, 87, results.Rating.Count)
	})

	t.Run("Sem nenhuma fonte o rating fica zerado", func(t *testing.T) {
		f := newFixture(t)

		f.expectAllResources()

		results, err := f.integrator.FetchAll(context.Background(), "ACC001", testLocation, nil)

		assert.NoError(t, err)
		assert.Equal(t, gbpdomain.RatingSourceNone, results.Rating.Source)
		assert.Equal(t, 0.0, results.Rating.Average)
		assert.Equal(t, 0, results.Rating.Count)
	})
}

func TestGBPIntegrator_FetchAll_FallbackDePerformance(t *testing.T) {
	f := newFixture(t)

	// A requisição multi-métrica é rejeitada; cada métrica é remontada
	// individualmente, e falhas parciais deixam a métrica de fora
	f.client.EXPECT().
		FetchMultiDailyMetrics(gomock.Any(), "tok", "5577", gomock.Any(), gomock.Any()).
		Return(nil, errors.New("HTTP 400"))

	for _, metric := range gbpdomain.DailyMetrics {
		if metric == "CALL_CLICKS" {
			f.client.EXPECT().
				FetchDailyMetric(gomock.Any(), "tok", "5577", metric, gomock.Any(), gomock.Any()).
				Return(nil, errors.New("HTTP 500"))
			continue
		}
		f.client.EXPECT().
			FetchDailyMetric(gomock.Any(), "tok", "5577", metric, gomock.Any(), gomock.Any()).
			Return([]gbpdomain.DatedValue{
				{Date: &gbpdomain.Date{Year: 2024, Month: 5, Day: 1}, Value: "3"},
			}, nil)
	}
	f.expectAllResources()

	results, err := f.integrator.FetchAll(context.Background(), "ACC001", testLocation, nil)

	assert.NoError(t, err)
	assert.False(t, results.Failed(gbpdomain.ResourcePerformance))
	assert.NotNil(t, results.Performance)
	assert.Len(t, results.Performance.Series, len(gbpdomain.DailyMetrics)-1)
	assert.NotContains(t, results.Performance.Series, "CALL_CLICKS")
}
