// Package metrics はPrometheusメトリクスの収集と公開を提供する。
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Collector はPrometheusメトリクスを収集する実装。
// サービス層とHTTPミドルウェアから利用する。
type Collector struct {
	signupSuccess      prometheus.Counter
	signupRejected     *prometheus.CounterVec
	unregisterSuccess  prometheus.Counter
	unregisterRejected *prometheus.CounterVec
	httpStatus         *prometheus.CounterVec
	requestDuration    prometheus.Histogram
}

// NewCollector は新しいCollectorを生成し、指定されたレジストリにメトリクスを登録する。
func NewCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{
		signupSuccess: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "mergington_signup_success_total",
			Help: "サインアップ成功の合計数",
		}),
		signupRejected: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "mergington_signup_rejected_total",
			Help: "拒否されたサインアップの理由別合計数",
		}, []string{"reason"}),
		unregisterSuccess: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "mergington_unregister_success_total",
			Help: "登録解除成功の合計数",
		}),
		unregisterRejected: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "mergington_unregister_rejected_total",
			Help: "拒否された登録解除の理由別合計数",
		}, []string{"reason"}),
		httpStatus: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "mergington_http_status_total",
			Help: "HTTPステータスコード別のレスポンス数",
		}, []string{"status_code"}),
		requestDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "mergington_http_request_duration_seconds",
			Help:    "HTTPリクエスト処理時間（秒）",
			Buckets: prometheus.DefBuckets,
		}),
	}

	reg.MustRegister(
		c.signupSuccess,
		c.signupRejected,
		c.unregisterSuccess,
		c.unregisterRejected,
		c.httpStatus,
		c.requestDuration,
	)

	return c
}

// RecordSignupSuccess はサインアップ成功を記録する。
func (c *Collector) RecordSignupSuccess() {
	c.signupSuccess.Inc()
}

// RecordSignupRejected は拒否されたサインアップを理由付きで記録する。
func (c *Collector) RecordSignupRejected(reason string) {
	c.signupRejected.WithLabelValues(reason).Inc()
}

// RecordUnregisterSuccess は登録解除成功を記録する。
func (c *Collector) RecordUnregisterSuccess() {
	c.unregisterSuccess.Inc()
}

// RecordUnregisterRejected は拒否された登録解除を理由付きで記録する。
func (c *Collector) RecordUnregisterRejected(reason string) {
	c.unregisterRejected.WithLabelValues(reason).Inc()
}

// RecordHTTPStatus はHTTPステータスコードを記録する。
func (c *Collector) RecordHTTPStatus(statusCode int) {
	c.httpStatus.WithLabelValues(strconv.Itoa(statusCode)).Inc()
}

// RecordRequestDuration はリクエスト処理時間を記録する。
func (c *Collector) RecordRequestDuration(duration time.Duration) {
	c.requestDuration.Observe(duration.Seconds())
}

// Handler はPrometheusスクレイプ用のHTTPハンドラーを返す。
func Handler(gatherer prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})
}
