package gbp

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
	gbpdomain "github.com/vfg2006/profile-health-api/infrastructure/integrator/gbp/domain"
	"github.com/vfg2006/profile-health-api/infrastructure/integrator/gbp/gbpclient"
	"github.com/vfg2006/profile-health-api/internal/config"
	"github.com/vfg2006/profile-health-api/internal/domain"
	"github.com/vfg2006/profile-health-api/pkg/utils"
)

// TokenEnsurer é a dependência do agregador sobre o gerenciador de tokens:
// o refresh precisa completar e ser persistido antes de qualquer busca de
// recurso — é o único ponto de ordenação obrigatório do sync.
type TokenEnsurer interface {
	EnsureValidToken(ctx context.Context, accountID string) (*domain.ConnectedAccount, error)
}

// GBPIntegrator agrega o estado completo de um perfil a partir dos recursos
// remotos independentes da plataforma
type GBPIntegrator struct {
	cfg          *config.Config
	Client       gbpclient.Client
	TokenManager TokenEnsurer
}

func New(cfg *config.Config, client gbpclient.Client, tokenManager TokenEnsurer) *GBPIntegrator {
	return &GBPIntegrator{
		cfg:          cfg,
		Client:       client,
		TokenManager: tokenManager,
	}
}

// FetchAll busca os sete recursos do perfil de forma concorrente e devolve,
// por recurso, ou a coleção completa ou o marcador de falha. A falha de um
// recurso nunca aborta o sync: ela vira coleção vazia e motivo registrado.
// Apenas a falha de credencial é fatal.
func (s *GBPIntegrator) FetchAll(
	ctx context.Context,
	accountID string,
	location domain.LocationReference,
	placeID *string,
) (*gbpdomain.FetchResults, error) {
	account, err := s.TokenManager.EnsureValidToken(ctx, accountID)
	if err != nil {
		return nil, err
	}

	token := account.AccessToken
	accountName := account.AccountName
	if accountName == "" {
		accountName = "accounts/" + location.AccountID
	}
	locationID := location.LocationID

	results := gbpdomain.NewFetchResults()

	var (
		mu           sync.Mutex
		wg           sync.WaitGroup
		reviewTotals *gbpclient.ReviewTotals
	)

	concurrency := s.cfg.Sync.FetchConcurrency
	if concurrency <= 0 {
		concurrency = config.DefaultFetchConcurrency
	}
	sem := make(chan struct{}, concurrency)

	// run agenda a busca de um recurso no pool limitado. Falha vira marcador;
	// buscas já concluídas mantêm seu resultado parcial mesmo se o contexto
	// for cancelado no meio do sync.
	run := func(kind gbpdomain.ResourceKind, fetch func() error) {
		wg.Add(1)
		go func() {
			defer wg.Done()

			select {
			case sem <- struct{}{}:
				defer func() { <-sem }()
			case <-ctx.Done():
				mu.Lock()
				results.MarkFailed(kind, ctx.Err().Error())
				mu.Unlock()
				return
			}

			if err := fetch(); err != nil {
				logrus.WithFields(logrus.Fields{
					"resource":    string(kind),
					"location_id": locationID,
					"error":       err.Error(),
				}).Error("sync: failed to fetch resource")

				mu.Lock()
				results.MarkFailed(kind, err.Error())
				mu.Unlock()
			}
		}()
	}

	run(gbpdomain.ResourceProfile, func() error {
		loc, err := s.Client.GetLocation(ctx, token, locationID)
		if err != nil {
			return err
		}
		mu.Lock()
		results.Location = loc
		mu.Unlock()
		return nil
	})

	run(gbpdomain.ResourceReviews, func() error {
		reviews, totals, err := s.Client.ListReviews(ctx, token, accountName, locationID)
		if err != nil {
			return err
		}
		mu.Lock()
		results.Reviews = reviews
		reviewTotals = totals
		mu.Unlock()
		return nil
	})

	run(gbpdomain.ResourceMedia, func() error {
		media, err := s.Client.ListMedia(ctx, token, accountName, locationID)
		if err != nil {
			return err
		}
		mu.Lock()
		results.Media = media
		mu.Unlock()
		return nil
	})

	run(gbpdomain.ResourcePosts, func() error {
		posts, err := s.Client.ListLocalPosts(ctx, token, accountName, locationID)
		if err != nil {
			return err
		}
		mu.Lock()
		results.Posts = posts
		mu.Unlock()
		return nil
	})

	run(gbpdomain.ResourceProducts, func() error {
		products, err := s.Client.ListProducts(ctx, token, accountName, locationID)
		if err != nil {
			return err
		}
		mu.Lock()
		results.Products = products
		mu.Unlock()
		return nil
	})

	run(gbpdomain.ResourceServices, func() error {
		services, err := s.Client.ListServices(ctx, token, locationID)
		if err != nil {
			return err
		}
		mu.Lock()
		results.Services = services
		mu.Unlock()
		return nil
	})

	run(gbpdomain.ResourceQuestions, func() error {
		questions, err := s.Client.ListQuestions(ctx, token, locationID)
		if err != nil {
			return err
		}
		mu.Lock()
		results.Questions = questions
		mu.Unlock()
		return nil
	})

	run(gbpdomain.ResourcePerformance, func() error {
		perf, err := s.fetchPerformance(ctx, token, locationID)
		if err != nil {
			return err
		}
		mu.Lock()
		results.Performance = perf
		mu.Unlock()
		return nil
	})

	wg.Wait()

	results.Rating = s.reconcileRating(ctx, results.Reviews, reviewTotals, placeID)

	logrus.WithFields(logrus.Fields{
		"location_id": locationID,
		"failures":    len(results.Failures),
	}).Info("sync: resource aggregation finished")

	return results, nil
}

// fetchPerformance tenta a requisição multi-métrica sobre a janela fixa de
// observação; se a plataforma a rejeitar, remonta os totais métrica a métrica.
// O fallback é best-effort por métrica.
func (s *GBPIntegrator) fetchPerformance(ctx context.Context, token, locationID string) (*gbpdomain.PerformanceResult, error) {
	lookback := s.cfg.Sync.PerformanceLookbackMonths
	if lookback <= 0 {
		lookback = config.DefaultPerformanceLookbackMonths
	}

	end := time.Now()
	start := end.AddDate(0, -lookback, 0)

	perf, err := s.Client.FetchMultiDailyMetrics(ctx, token, locationID, start, end)
	if err == nil {
		return perf, nil
	}

	logrus.WithFields(logrus.Fields{
		"location_id": locationID,
		"error":       err.Error(),
	}).Warn("sync: multi-metric request rejected, falling back to per-metric requests")

	result := &gbpdomain.PerformanceResult{
		Series: make(map[string][]gbpdomain.DatedValue),
	}

	fetched := 0
	for _, metric := range gbpdomain.DailyMetrics {
		values, metricErr := s.Client.FetchDailyMetric(ctx, token, locationID, metric, start, end)
		if metricErr != nil {
			logrus.WithFields(logrus.Fields{
				"location_id": locationID,
				"metric":      metric,
				"error":       metricErr.Error(),
			}).Warn("sync: per-metric fallback failed for metric")
			continue
		}
		result.Series[metric] = values
		fetched++
	}

	if fetched == 0 {
		return nil, fmt.Errorf("todas as métricas falharam no fallback: %w", err)
	}

	return result, nil
}

// reconcileRating resolve o rating e a contagem de reviews em três níveis,
// nesta ordem fixa de prioridade: valores autoritativos informados pela
// própria plataforma, cálculo local sobre a coleção buscada, e por fim o
// endpoint público chaveado pelo place ID.
func (s *GBPIntegrator) reconcileRating(
	ctx context.Context,
	reviews []gbpdomain.Review,
	totals *gbpclient.ReviewTotals,
	placeID *string,
) gbpdomain.ReconciledRating {
	if totals != nil && totals.TotalReviewCount > 0 {
		return gbpdomain.ReconciledRating{
			Average: utils.RoundWithTwoDecimalPlace(totals.AverageRating),
			Count:   totals.TotalReviewCount,
			Source:  gbpdomain.RatingSourcePlatform,
		}
	}

	if len(reviews) > 0 {
		sum := 0
		counted := 0
		for _, review := range reviews {
			if value := review.StarRating.Value(); value > 0 {
				sum += value
				counted++
			}
		}
		if counted > 0 {
			return gbpdomain.ReconciledRating{
				Average: utils.RoundWithTwoDecimalPlace(float64(sum) / float64(counted)),
				Count:   len(reviews),
				Source:  gbpdomain.RatingSourceComputed,
			}
		}
	}

	if placeID != nil && *placeID != "" {
		place, err := s.Client.GetPlaceDetails(ctx, *placeID)
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"place_id": *placeID,
				"error":    err.Error(),
			}).Warn("sync: public place lookup failed during rating reconciliation")
		} else if place != nil && place.UserRatingsTotal > 0 {
			return gbpdomain.ReconciledRating{
				Average: utils.RoundWithTwoDecimalPlace(place.Rating),
				Count:   place.UserRatingsTotal,
				Source:  gbpdomain.RatingSourcePlaces,
			}
		}
	}

	return gbpdomain.ReconciledRating{Source: gbpdomain.RatingSourceNone}
}
