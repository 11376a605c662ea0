package gbpclient

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"time"

	gbpdomain "github.com/vfg2006/profile-health-api/infrastructure/integrator/gbp/domain"
)

// FetchMultiDailyMetrics busca as séries temporais de todas as métricas de
// desempenho em uma única requisição multi-métrica sobre a janela informada
func (c *GBPClient) FetchMultiDailyMetrics(ctx context.Context, token, locationID string, start, end time.Time) (*gbpdomain.PerformanceResult, error) {
	params := url.Values{}
	for _, metric := range gbpdomain.DailyMetrics {
		params.Add("dailyMetrics", metric)
	}
	addDateRangeParams(params, start, end)

	requestURL := fmt.Sprintf("%s/locations/%s:fetchMultiDailyMetricsTimeSeries?%s",
		c.Cfg.Google.PerformanceURL, locationID, params.Encode())

	body, err := c.doGet(ctx, token, requestURL)
	if err != nil {
		return nil, err
	}

	var response gbpdomain.MultiMetricResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return nil, fmt.Errorf("erro ao decodificar JSON de desempenho: %w", err)
	}

	result := &gbpdomain.PerformanceResult{
		Series: make(map[string][]gbpdomain.DatedValue),
	}

	for _, multi := range response.MultiDailyMetricTimeSeries {
		for _, series := range multi.DailyMetricTimeSeries {
			if series.TimeSeries == nil || series.DailyMetric == "" {
				continue
			}
			result.Series[series.DailyMetric] = series.TimeSeries.DatedValues
		}
	}

	return result, nil
}

// FetchDailyMetric busca a série temporal de uma única métrica. Usado como
// fallback quando o endpoint multi-métrica rejeita a requisição.
func (c *GBPClient) FetchDailyMetric(ctx context.Context, token, locationID, metric string, start, end time.Time) ([]gbpdomain.DatedValue, error) {
	params := url.Values{}
	params.Set("dailyMetric", metric)
	addDateRangeParams(params, start, end)

	requestURL := fmt.Sprintf("%s/locations/%s:getDailyMetricsTimeSeries?%s",
		c.Cfg.Google.PerformanceURL, locationID, params.Encode())

	body, err := c.doGet(ctx, token, requestURL)
	if err != nil {
		return nil, err
	}

	var response gbpdomain.SingleMetricResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return nil, fmt.Errorf("erro ao decodificar JSON da métrica %s: %w", metric, err)
	}

	if response.TimeSeries == nil {
		return nil, nil
	}

	return response.TimeSeries.DatedValues, nil
}

func addDateRangeParams(params url.Values, start, end time.Time) {
	params.Set("dailyRange.startDate.year", strconv.Itoa(start.Year()))
	params.Set("dailyRange.startDate.month", strconv.Itoa(int(start.Month())))
	params.Set("dailyRange.startDate.day", strconv.Itoa(start.Day()))
	params.Set("dailyRange.endDate.year", strconv.Itoa(end.Year()))
	params.Set("dailyRange.endDate.month", strconv.Itoa(int(end.Month())))
	params.Set("dailyRange.endDate.day", strconv.Itoa(end.Day()))
}
