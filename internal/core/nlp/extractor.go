package nlp

import (
	"context"
	"fmt"
	"net/http"
	"regexp"
	"time"

	"github.com/go-resty/resty/v2"
)

// HTTPExtractor 외부 형태소 분석기 서비스 어댑터.
// POST {"text": ...} 요청에 {"nouns": [...]} 응답을 기대한다.
type HTTPExtractor struct {
	client *resty.Client
}

// NewHTTPExtractor 형태소 분석기 어댑터 생성
func NewHTTPExtractor(endpoint string, timeout time.Duration) *HTTPExtractor {
	client := resty.New().
		SetBaseURL(endpoint).
		SetTimeout(timeout).
		SetHeader("Content-Type", "application/json")

	return &HTTPExtractor{client: client}
}

// Nouns 텍스트에서 명사 목록을 추출한다.
func (e *HTTPExtractor) Nouns(ctx context.Context, text string) ([]string, error) {
	var result struct {
		Nouns []string `json:"nouns"`
	}

	resp, err := e.client.R().
		SetContext(ctx).
		SetBody(map[string]string{"text": text}).
		SetResult(&result).
		Post("")
	if err != nil {
		return nil, fmt.Errorf("failed to call tokenizer: %w", err)
	}
	if resp.StatusCode() != http.StatusOK {
		return nil, fmt.Errorf("tokenizer returned status %d", resp.StatusCode())
	}

	return result.Nouns, nil
}

// hangulRun 2글자 이상의 한글 연속 문자열
var hangulRun = regexp.MustCompile(`[가-힣]{2,}`)

// HangulRunExtractor 형태소 분석기가 없을 때 쓰는 폴백.
// 한글 연속 문자열을 명사 후보로 취급한다. 조사 분리가 안 되므로
// 실제 분석기보다 재현율이 낮다.
type HangulRunExtractor struct{}

// Nouns 한글 연속 문자열을 그대로 반환한다. 실패하지 않는다.
func (HangulRunExtractor) Nouns(_ context.Context, text string) ([]string, error) {
	return hangulRun.FindAllString(text, -1), nil
}
