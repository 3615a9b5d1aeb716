package recommend

import (
	"net/http"

	"recipe-recommender/internal/core/corpus"
	"recipe-recommender/internal/core/inventory"
	recipeService "recipe-recommender/internal/core/recipe"
	"recipe-recommender/internal/pkg/common"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Handler 추천 관련 요청 처리기
type Handler struct {
	engine    *recipeService.Engine
	catalog   *corpus.Catalog
	inventory inventory.Store
}

// NewHandler 추천 처리기 생성. inventory 는 Redis 미사용 구성에서 nil 일 수 있다.
func NewHandler(engine *recipeService.Engine, catalog *corpus.Catalog, inv inventory.Store) *Handler {
	return &Handler{
		engine:    engine,
		catalog:   catalog,
		inventory: inv,
	}
}

// FridgeRequest 냉장고 추천 요청
type FridgeRequest struct {
	UserID string `json:"user_id" binding:"required"`
}

func ensureRequestID(c *gin.Context) string {
	requestID := c.GetHeader("X-Request-ID")
	if requestID == "" {
		requestID = uuid.New().String()
		c.Header("X-Request-ID", requestID)
	}
	return requestID
}

// HandleRecommend 속성 필터 또는 자유 발화 기반 추천.
// 빈 결과는 에러가 아니라 outcome=EMPTY 로 내려간다.
func (h *Handler) HandleRecommend(c *gin.Context) {
	requestID := ensureRequestID(c)

	var req recipeService.RecommendationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.LogError("요청 형식 오류",
			zap.Error(err),
			zap.String("request_id", requestID),
		)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format", "code": common.ErrCodeInvalidRequest})
		return
	}

	// 속성 필터도 발화도 없는 요청은 해석할 수 없다
	if !req.HasAttributeFilter() && req.Utterance == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "category, difficulty, time_limit, ingredient_text, utterance 중 하나는 필요합니다",
			"code":  common.ErrCodeInvalidRequest,
		})
		return
	}

	common.LogInfo("추천 요청 시작",
		zap.String("request_id", requestID),
		zap.Bool("attribute_mode", req.HasAttributeFilter()),
	)

	result := h.engine.Recommend(c.Request.Context(), &req)
	c.JSON(http.StatusOK, result)
}

// HandleFridgeRecommend 냉장고 재료 기반 추천
func (h *Handler) HandleFridgeRecommend(c *gin.Context) {
	requestID := ensureRequestID(c)

	if h.inventory == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"error": "냉장고 저장소가 구성되어 있지 않습니다",
			"code":  common.ErrCodeServiceUnavailable,
		})
		return
	}

	var req FridgeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		common.LogError("요청 형식 오류",
			zap.Error(err),
			zap.String("request_id", requestID),
		)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format", "code": common.ErrCodeInvalidRequest})
		return
	}

	items, err := h.inventory.ItemsFor(c.Request.Context(), req.UserID)
	if err != nil {
		common.LogError("냉장고 재료 조회 실패",
			zap.Error(err),
			zap.String("request_id", requestID),
		)
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"error": "냉장고 재료를 불러오지 못했습니다",
			"code":  common.ErrCodeServiceUnavailable,
		})
		return
	}

	result := h.engine.RecommendFromInventory(c.Request.Context(), items)
	c.JSON(http.StatusOK, gin.H{
		"items":  items,
		"result": result,
	})
}

// HandleShoppingSuggestion 냉장고에 없는 기본 재료 구매 제안
func (h *Handler) HandleShoppingSuggestion(c *gin.Context) {
	requestID := ensureRequestID(c)

	if h.inventory == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"error": "냉장고 저장소가 구성되어 있지 않습니다",
			"code":  common.ErrCodeServiceUnavailable,
		})
		return
	}

	userID := c.Query("user_id")
	if userID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "user_id 가 필요합니다", "code": common.ErrCodeInvalidRequest})
		return
	}

	items, err := h.inventory.ItemsFor(c.Request.Context(), userID)
	if err != nil {
		common.LogError("냉장고 재료 조회 실패",
			zap.Error(err),
			zap.String("request_id", requestID),
		)
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"error": "냉장고 재료를 불러오지 못했습니다",
			"code":  common.ErrCodeServiceUnavailable,
		})
		return
	}

	c.JSON(http.StatusOK, inventory.SuggestShopping(items))
}

// HandleCorpusReload 코퍼스 원자적 리로드.
// 실패하면 기존 스냅샷이 유지되므로 서비스는 계속된다.
func (h *Handler) HandleCorpusReload(c *gin.Context) {
	requestID := ensureRequestID(c)

	if err := h.catalog.Reload(); err != nil {
		common.LogError("코퍼스 리로드 실패",
			zap.Error(err),
			zap.String("request_id", requestID),
		)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "코퍼스 리로드에 실패했습니다",
			"code":  common.ErrCodeDataSource,
		})
		return
	}

	snap := h.catalog.Snapshot()
	c.JSON(http.StatusOK, gin.H{
		"status":     "reloaded",
		"records":    snap.Store.Len(),
		"vocabulary": snap.Vocabulary.Size(),
	})
}
