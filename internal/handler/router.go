package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/hitoshi/mergington/internal/metrics"
	"github.com/hitoshi/mergington/internal/middleware"
)

// RouterDeps はNewRouterに必要な依存関係をまとめた構造体。
type RouterDeps struct {
	// アクティビティ
	ActivityService ActivityServiceInterface

	// ミドルウェア依存
	CORSAllowedOrigin string
	RateLimiter       *middleware.RateLimiter
	HTTPMetrics       middleware.HTTPMetricsRecorder
	Logger            *slog.Logger

	// 静的アセット（フロントエンド）のディレクトリ。空の場合は配信しない。
	StaticDir string

	// Prometheusスクレイプ用。nilの場合/metricsは公開しない。
	MetricsGatherer prometheus.Gatherer
}

// NewRouter は全APIエンドポイントのルーティングとミドルウェアチェーンを構成したchi.Routerを返す。
//
// ミドルウェアスタックの実行順序:
//
//	Recovery → RequestID → Logging → Metrics → SecurityHeaders → CORS
//
// レート制限は /activities 配下にのみ適用する（general）。
// サインアップ・登録解除にはさらにsignup専用レート制限を重ねる。
func NewRouter(deps *RouterDeps) http.Handler {
	r := chi.NewRouter()

	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}

	r.Use(middleware.NewRecoveryMiddleware())
	r.Use(middleware.NewRequestIDMiddleware())
	r.Use(middleware.NewLoggingMiddleware(logger))
	r.Use(middleware.NewMetricsMiddleware(deps.HTTPMetrics))
	r.Use(middleware.NewSecurityHeadersMiddleware())
	r.Use(middleware.NewCORSMiddleware(deps.CORSAllowedOrigin))

	activityHandler := NewActivityHandler(deps.ActivityService)

	// ルートはフロントエンドへリダイレクト
	r.Get("/", func(w http.ResponseWriter, req *http.Request) {
		http.Redirect(w, req, "/static/index.html", http.StatusTemporaryRedirect)
	})

	// アクティビティ管理
	r.Route("/activities", func(r chi.Router) {
		if deps.RateLimiter != nil {
			r.Use(deps.RateLimiter.GeneralMiddleware())
		}

		r.Get("/", activityHandler.ListActivities)

		r.Route("/{name}", func(r chi.Router) {
			if deps.RateLimiter != nil {
				r.Use(deps.RateLimiter.SignupMiddleware())
			}
			r.Post("/signup", activityHandler.Signup)
			r.Delete("/unregister", activityHandler.Unregister)
		})
	})

	// ヘルスチェック
	r.Get("/health", healthHandler)

	// Prometheusスクレイプ
	if deps.MetricsGatherer != nil {
		r.Handle("/metrics", metrics.Handler(deps.MetricsGatherer))
	}

	// 静的アセット
	if deps.StaticDir != "" {
		fileServer := http.FileServer(http.Dir(deps.StaticDir))
		r.Handle("/static/*", http.StripPrefix("/static/", fileServer))
	}

	return r
}

// healthHandler はヘルスチェックに応答する。
// GET /health
func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}
