package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"recipe-recommender/internal/api"
	"recipe-recommender/internal/core/corpus"
	"recipe-recommender/internal/core/inventory"
	"recipe-recommender/internal/infrastructure/config"
	"recipe-recommender/internal/pkg/common"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	// .env 로드
	if err := godotenv.Load(); err != nil {
		fmt.Println("Warning: .env file not found")
	}

	// 설정 로드
	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// 로거 초기화 (설정 로드 후)
	if err := common.InitLogger(cfg.LogLevel); err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer common.Sync()

	// 코퍼스 로드. 실패는 기동 단계의 치명적 오류다.
	catalog, err := corpus.OpenCatalog(cfg.Corpus.Path)
	if err != nil {
		common.LogFatal("코퍼스 로드 실패",
			zap.String("path", cfg.Corpus.Path),
			zap.Error(err),
		)
	}

	// 냉장고 저장소. 연결 실패는 치명적이지 않다 — 냉장고 추천만 비활성화된다.
	var inv inventory.Store
	if cfg.Redis.Enabled {
		redisStore, err := inventory.NewRedisStore(cfg.Redis.Addr)
		if err != nil {
			common.LogWarn("냉장고 저장소 연결 실패, 냉장고 추천 비활성화",
				zap.String("addr", cfg.Redis.Addr),
				zap.Error(err),
			)
		} else {
			inv = redisStore
			defer redisStore.Close()
		}
	}

	// 라우터 구성
	router, enricher, err := api.SetupRouter(cfg, catalog, inv)
	if err != nil {
		common.LogError("Failed to setup router", zap.Error(err))
		os.Exit(1)
	}
	defer enricher.Close()

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	go func() {
		common.LogInfo("서버 시작",
			zap.String("version", cfg.App.Version),
			zap.String("env", cfg.App.Env),
			zap.Int("port", cfg.Server.Port),
			zap.Int("corpus_records", catalog.Snapshot().Store.Len()),
		)

		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			common.LogError("Failed to start server", zap.Error(err))
			os.Exit(1)
		}
	}()

	// 종료 시그널 대기
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	common.LogInfo("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		common.LogError("Server forced to shutdown", zap.Error(err))
		os.Exit(1)
	}

	common.LogInfo("Server exited")
}
