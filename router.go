package main

import (
	"time"

	"github.com/articlesvc/articles/handlers"
	"github.com/articlesvc/articles/internal/article/handler"
	"github.com/articlesvc/articles/internal/article/service"
	"github.com/articlesvc/articles/internal/config"
	"github.com/articlesvc/articles/pkg/metrics"
	"github.com/articlesvc/articles/pkg/middleware"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
)

// buildRouter wires middleware, operational endpoints and the article API.
// rdb may be nil; Redis-backed rate limiting then falls back to memory.
func buildRouter(cfg *config.Config, svc service.Service, checks map[string]handlers.Check, rdb *redis.Client) *gin.Engine {
	r := gin.New()
	r.Use(middleware.RequestLogger(), gin.Recovery(), middleware.CORS(cfg.CORS.AllowedOrigins))

	handlers.RegisterHealth(r, checks)
	handlers.RegisterSwagger(r)

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	metrics.RegisterCollectors(reg)
	r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(reg, promhttp.HandlerOpts{})))

	api := r.Group("/")
	if cfg.RateLimit.Enabled {
		if cfg.RateLimit.UseRedis && rdb != nil {
			win := time.Duration(cfg.RateLimit.WindowSeconds) * time.Second
			api.Use(middleware.RedisRateLimitMiddleware(rdb, cfg.RateLimit.RPS, cfg.RateLimit.Burst, win))
		} else {
			api.Use(middleware.RateLimitMiddleware(cfg.RateLimit.RPS, cfg.RateLimit.Burst))
		}
	}
	handler.RegisterArticleRoutes(api, svc)
	return r
}
