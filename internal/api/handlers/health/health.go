package health

import (
	"net/http"
	"runtime"
	"time"

	"recipe-recommender/internal/core/corpus"
	"recipe-recommender/internal/infrastructure/config"
	"recipe-recommender/internal/pkg/common"

	"github.com/gin-gonic/gin"
)

// HealthResponse 헬스 체크 응답
type HealthResponse struct {
	Status    string                 `json:"status"`
	Timestamp time.Time              `json:"timestamp"`
	Version   string                 `json:"version"`
	Corpus    *CorpusStatus          `json:"corpus,omitempty"`
	Runtime   map[string]interface{} `json:"runtime"`
}

// CorpusStatus 코퍼스 상태
type CorpusStatus struct {
	Records    int `json:"records"`
	Vocabulary int `json:"vocabulary"`
}

// HealthCheck 헬스 체크 처리기
func HealthCheck(c *gin.Context) {
	cfgValue, exists := c.Get("config")
	if !exists {
		common.LogError("Configuration not found in context")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Configuration not found"})
		return
	}
	cfg, ok := cfgValue.(*config.Config)
	if !ok {
		common.LogError("Invalid configuration type in context")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Invalid configuration type"})
		return
	}

	var m runtime.MemStats
	runtime.ReadMemStats(&m)

	response := HealthResponse{
		Status:    "ok",
		Timestamp: time.Now(),
		Version:   cfg.App.Version,
		Runtime: map[string]interface{}{
			"goroutines": runtime.NumGoroutine(),
			"memory": map[string]interface{}{
				"alloc": m.Alloc,
				"sys":   m.Sys,
			},
		},
	}

	// 코퍼스가 주입되어 있으면 크기 정보를 함께 내려준다
	if catalogValue, ok := c.Get("catalog"); ok {
		if catalog, ok := catalogValue.(*corpus.Catalog); ok {
			snap := catalog.Snapshot()
			response.Corpus = &CorpusStatus{
				Records:    snap.Store.Len(),
				Vocabulary: snap.Vocabulary.Size(),
			}
		}
	}

	c.JSON(http.StatusOK, response)
}

// ReadinessCheck 준비 상태 확인. 코퍼스가 로드되어 있어야 준비 완료다.
func ReadinessCheck(c *gin.Context) {
	catalogValue, exists := c.Get("catalog")
	if !exists {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "not ready"})
		return
	}
	catalog, ok := catalogValue.(*corpus.Catalog)
	if !ok || catalog.Snapshot() == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "not ready"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ready"})
}

// LivenessCheck 생존 확인
func LivenessCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "alive"})
}
