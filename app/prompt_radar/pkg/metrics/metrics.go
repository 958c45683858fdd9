package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// outcome 标签取值
const (
	OutcomeOK    = "ok"
	OutcomeEmpty = "empty"
	OutcomeError = "error"
)

var (
	SearchRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "prompt_radar_search_requests_total",
			Help: "Total number of search backend attempts",
		},
		[]string{"engine", "outcome"},
	)

	SearchDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "prompt_radar_search_duration_seconds",
			Help:    "Duration of search backend attempts in seconds",
			Buckets: []float64{0.1, 0.5, 1, 2, 5, 10, 30},
		},
		[]string{"engine"},
	)

	LLMRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "prompt_radar_llm_requests_total",
			Help: "Total number of LLM completion calls",
		},
		[]string{"stage", "outcome"},
	)

	LLMDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "prompt_radar_llm_duration_seconds",
			Help:    "Duration of LLM completion calls in seconds",
			Buckets: []float64{0.5, 1, 2, 5, 10, 30, 60},
		},
		[]string{"stage"},
	)

	FallbacksTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "prompt_radar_fallbacks_total",
			Help: "Total number of degraded results served by each component",
		},
		[]string{"component"},
	)
)

// RecordSearch 记录一次搜索后端调用
func RecordSearch(engine, outcome string, elapsed time.Duration) {
	SearchRequestsTotal.WithLabelValues(engine, outcome).Inc()
	SearchDuration.WithLabelValues(engine).Observe(elapsed.Seconds())
}

// RecordLLM 记录一次 LLM 调用
func RecordLLM(stage string, err error, elapsed time.Duration) {
	outcome := OutcomeOK
	if err != nil {
		outcome = OutcomeError
	}
	LLMRequestsTotal.WithLabelValues(stage, outcome).Inc()
	LLMDuration.WithLabelValues(stage).Observe(elapsed.Seconds())
}

// RecordFallback 记录一次降级
func RecordFallback(component string) {
	FallbacksTotal.WithLabelValues(component).Inc()
}

// Handler 暴露 /metrics
func Handler() http.Handler {
	return promhttp.Handler()
}
