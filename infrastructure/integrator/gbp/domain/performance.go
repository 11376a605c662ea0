package domain

// DailyMetrics é o conjunto de métricas de desempenho solicitadas na janela
// fixa de seis meses
var DailyMetrics = []string{
	"BUSINESS_IMPRESSIONS_DESKTOP_MAPS",
	"BUSINESS_IMPRESSIONS_DESKTOP_SEARCH",
	"BUSINESS_IMPRESSIONS_MOBILE_MAPS",
	"BUSINESS_IMPRESSIONS_MOBILE_SEARCH",
	"CALL_CLICKS",
	"WEBSITE_CLICKS",
	"BUSINESS_DIRECTION_REQUESTS",
}

// PerformanceResult reúne as séries por métrica já decodificadas. Quando o
// endpoint multi-métrica rejeita a requisição, as séries podem ter sido
// remontadas métrica a métrica; falhas parciais deixam a métrica de fora.
type PerformanceResult struct {
	Series map[string][]DatedValue
}

type MultiMetricResponse struct {
	MultiDailyMetricTimeSeries []MultiDailyMetricTimeSeries `json:"multiDailyMetricTimeSeries,omitempty"`
}

type MultiDailyMetricTimeSeries struct {
	DailyMetricTimeSeries []DailyMetricTimeSeries `json:"dailyMetricTimeSeries,omitempty"`
}

type DailyMetricTimeSeries struct {
	DailyMetric string      `json:"dailyMetric,omitempty"`
	TimeSeries  *TimeSeries `json:"timeSeries,omitempty"`
}

type SingleMetricResponse struct {
	TimeSeries *TimeSeries `json:"timeSeries,omitempty"`
}

type TimeSeries struct {
	DatedValues []DatedValue `json:"datedValues,omitempty"`
}

type DatedValue struct {
	Date  *Date  `json:"date,omitempty"`
	Value string `json:"value,omitempty"`
}

type Date struct {
	Year  int `json:"year,omitempty"`
	Month int `json:"month,omitempty"`
	Day   int `json:"day,omitempty"`
}
