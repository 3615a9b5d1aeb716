package api

import (
	"context"
	"net/http"
	"time"

	"recipe-recommender/internal/api/handlers/health"
	recommendHandler "recipe-recommender/internal/api/handlers/recommend"
	"recipe-recommender/internal/api/middleware"
	"recipe-recommender/internal/core/corpus"
	"recipe-recommender/internal/core/inventory"
	"recipe-recommender/internal/core/nlp"
	recipeService "recipe-recommender/internal/core/recipe"
	"recipe-recommender/internal/infrastructure/config"
	"recipe-recommender/internal/pkg/common"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// timeoutDuration 요청 전체 타임아웃. 크롤링을 포함해도 충분한 값.
const timeoutDuration = 30 * time.Second

// SetupRouter 라우터와 핵심 서비스를 구성한다.
func SetupRouter(cfg *config.Config, catalog *corpus.Catalog, inv inventory.Store) (*gin.Engine, *recipeService.DetailEnricher, error) {
	common.LogInfo("라우터 구성 시작",
		zap.Bool("debug_mode", cfg.App.Debug),
		zap.String("version", cfg.App.Version),
		zap.String("environment", cfg.App.Env),
	)

	if !cfg.App.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	router.Use(middleware.Recovery())
	router.Use(middleware.Logger())
	router.Use(requestid.New())

	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Request-ID"},
		ExposeHeaders:    []string{"Content-Length", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	if cfg.RateLimit.Enabled {
		router.Use(middleware.RateLimit(cfg.RateLimit.Requests, cfg.RateLimit.Window))
	}

	// 형태소 분석기: 엔드포인트가 없으면 한글 연속 문자열 폴백
	var extractor recipeService.NounExtractor
	if cfg.Tokenizer.Endpoint != "" {
		extractor = nlp.NewHTTPExtractor(cfg.Tokenizer.Endpoint, cfg.Tokenizer.Timeout)
		common.LogInfo("형태소 분석기 연결", zap.String("endpoint", cfg.Tokenizer.Endpoint))
	} else {
		extractor = nlp.HangulRunExtractor{}
		common.LogWarn("형태소 분석기 미설정, 한글 연속 문자열 폴백 사용")
	}

	enricher := recipeService.NewDetailEnricher(recipeService.EnricherConfig{
		BaseURL:              cfg.Enrich.BaseURL,
		Timeout:              cfg.Enrich.Timeout,
		CacheEnabled:         cfg.Enrich.CacheEnabled,
		CacheTTL:             cfg.Enrich.CacheTTL,
		CacheMaxSize:         cfg.Enrich.CacheMaxSize,
		CacheCleanupInterval: cfg.Enrich.CacheCleanupInterval,
	})

	matcher := recipeService.NewMatcher(extractor)
	engine := recipeService.NewEngine(catalog, matcher, enricher, recipeService.EngineConfig{
		SampleSize:         cfg.Recommend.SampleSize,
		MaxIngredientLines: cfg.Recommend.MaxIngredientLines,
	})

	// 타임아웃과 공용 의존성 주입
	router.Use(func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), timeoutDuration)
		defer cancel()
		c.Request = c.Request.WithContext(ctx)

		c.Set("config", cfg)
		c.Set("catalog", catalog)

		c.Next()

		if ctx.Err() == context.DeadlineExceeded {
			common.LogError("요청 시간 초과",
				zap.String("path", c.Request.URL.Path),
				zap.Duration("timeout", timeoutDuration),
			)
			c.JSON(http.StatusGatewayTimeout, gin.H{
				"error": "Request timeout",
				"code":  common.ErrCodeGatewayTimeout,
			})
			c.Abort()
		}
	})

	// 헬스 체크
	router.GET("/health", health.HealthCheck)
	router.GET("/ready", health.ReadinessCheck)
	router.GET("/live", health.LivenessCheck)

	// API 라우트
	api := router.Group("/api/v1")
	{
		handler := recommendHandler.NewHandler(engine, catalog, inv)

		api.POST("/recommend", handler.HandleRecommend)
		api.POST("/recommend/fridge", handler.HandleFridgeRecommend)
		api.GET("/shopping/suggest", handler.HandleShoppingSuggestion)
		api.POST("/corpus/reload", handler.HandleCorpusReload)
	}

	common.LogInfo("라우터 구성 완료",
		zap.Int("corpus_records", catalog.Snapshot().Store.Len()),
		zap.Bool("inventory_enabled", inv != nil),
		zap.Bool("rate_limit_enabled", cfg.RateLimit.Enabled),
	)

	return router, enricher, nil
}
