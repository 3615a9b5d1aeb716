package recipe

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"recipe-recommender/internal/pkg/common"

	"github.com/PuerkitoBio/goquery"
	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"
)

const (
	// PlaceholderInstructions 크롤링 실패 시 레코드에 들어가는 고정 문구
	PlaceholderInstructions = "조리법 정보를 불러오지 못했어요 😢"

	// 조리 단계 추출 셀렉터. 기본이 비면 폴백을 시도한다.
	primaryStepSelector  = "span.view_step_text"
	fallbackStepSelector = "div.view_step_cont"

	// maxStepSegments 요약에 합치는 조리 단계 수
	maxStepSegments = 2
)

// DetailEnricher 10000recipe 상세 페이지에서 조리법을 가져온다.
// 모든 실패는 내부에서 흡수되어 고정 안내 문구로 바뀐다.
type DetailEnricher struct {
	client  *resty.Client
	baseURL string
	cache   *instructionCache
}

// EnricherConfig 크롤러 설정
type EnricherConfig struct {
	BaseURL              string
	Timeout              time.Duration
	CacheEnabled         bool
	CacheTTL             time.Duration
	CacheMaxSize         int
	CacheCleanupInterval time.Duration
}

// NewDetailEnricher 크롤러 생성
func NewDetailEnricher(cfg EnricherConfig) *DetailEnricher {
	client := resty.New().
		SetBaseURL(cfg.BaseURL).
		SetTimeout(cfg.Timeout).
		SetHeader("User-Agent", "Mozilla/5.0")

	e := &DetailEnricher{
		client:  client,
		baseURL: cfg.BaseURL,
	}
	if cfg.CacheEnabled {
		e.cache = newInstructionCache(cfg.CacheTTL, cfg.CacheMaxSize, cfg.CacheCleanupInterval)
	}
	return e
}

// SourceURL 상세 페이지 URL. 순수 문자열 조합이라 실패하지 않는다.
func (e *DetailEnricher) SourceURL(recipeID int) string {
	return fmt.Sprintf("%s/recipe/%d", e.baseURL, recipeID)
}

// Fetch 조리법 요약과 상세 URL 을 반환한다. 네트워크/파싱 실패는
// 에러 대신 고정 안내 문구로 바뀌며 로그로만 남는다.
func (e *DetailEnricher) Fetch(ctx context.Context, recipeID int) (string, string) {
	url := e.SourceURL(recipeID)

	if e.cache != nil {
		if instructions, ok := e.cache.get(recipeID); ok {
			common.LogCacheHit("instructions", url)
			return instructions, url
		}
		common.LogCacheMiss("instructions", url)
	}

	start := time.Now()
	instructions, err := e.crawl(ctx, recipeID)
	common.LogCrawl(recipeID, time.Since(start), err)

	if err != nil {
		return PlaceholderInstructions, url
	}

	if e.cache != nil {
		e.cache.set(recipeID, instructions)
	}
	return instructions, url
}

// crawl 상세 페이지를 요청해 조리 단계 텍스트를 추출한다.
func (e *DetailEnricher) crawl(ctx context.Context, recipeID int) (string, error) {
	resp, err := e.client.R().
		SetContext(ctx).
		Get(fmt.Sprintf("/recipe/%d", recipeID))
	if err != nil {
		return "", fmt.Errorf("failed to fetch detail page: %w", err)
	}
	if resp.StatusCode() != http.StatusOK {
		return "", fmt.Errorf("detail page returned status %d", resp.StatusCode())
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(resp.Body()))
	if err != nil {
		return "", fmt.Errorf("failed to parse detail page: %w", err)
	}

	steps := extractSteps(doc, primaryStepSelector)
	if len(steps) == 0 {
		steps = extractSteps(doc, fallbackStepSelector)
	}
	if len(steps) == 0 {
		return "", fmt.Errorf("no cooking steps found")
	}

	if len(steps) > maxStepSegments {
		steps = steps[:maxStepSegments]
	}
	return strings.Join(steps, " "), nil
}

func extractSteps(doc *goquery.Document, selector string) []string {
	var steps []string
	doc.Find(selector).Each(func(_ int, sel *goquery.Selection) {
		if text := strings.TrimSpace(sel.Text()); text != "" {
			steps = append(steps, text)
		}
	})
	return steps
}

// Close 캐시 청소 고루틴 종료
func (e *DetailEnricher) Close() {
	if e.cache != nil {
		e.cache.close()
	}
	common.LogInfo("크롤러 종료", zap.String("base_url", e.baseURL))
}
