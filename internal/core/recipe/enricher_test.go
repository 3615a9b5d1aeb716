package recipe

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newEnricherServer(t *testing.T, handler http.HandlerFunc) (*httptest.Server, *DetailEnricher) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	enricher := NewDetailEnricher(EnricherConfig{
		BaseURL: srv.URL,
		Timeout: 2 * time.Second,
	})
	return srv, enricher
}

func TestEnricherFetchPrimarySelector(t *testing.T) {
	srv, enricher := newEnricherServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/recipe/128671", r.URL.Path)
		w.Write([]byte(`<html><body>
			<span class="view_step_text">감자를 깨끗이 씻는다</span>
			<span class="view_step_text">팬에 기름을 두른다</span>
			<span class="view_step_text">중불에 볶는다</span>
		</body></html>`))
	})

	instructions, sourceURL := enricher.Fetch(context.Background(), 128671)

	// 앞 두 단계만 공백으로 이어 붙인다
	assert.Equal(t, "감자를 깨끗이 씻는다 팬에 기름을 두른다", instructions)
	assert.Equal(t, srv.URL+"/recipe/128671", sourceURL)
}

func TestEnricherFetchFallbackSelector(t *testing.T) {
	_, enricher := newEnricherServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<html><body>
			<div class="view_step_cont">물을 끓인다</div>
			<div class="view_step_cont">면을 넣는다</div>
		</body></html>`))
	})

	instructions, _ := enricher.Fetch(context.Background(), 1)
	assert.Equal(t, "물을 끓인다 면을 넣는다", instructions)
}

func TestEnricherFetchPrefersPrimaryOverFallback(t *testing.T) {
	_, enricher := newEnricherServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<html><body>
			<span class="view_step_text">기본 단계</span>
			<div class="view_step_cont">폴백 단계</div>
		</body></html>`))
	})

	instructions, _ := enricher.Fetch(context.Background(), 1)
	assert.Equal(t, "기본 단계", instructions)
}

func TestEnricherFetchHTTPErrorYieldsPlaceholder(t *testing.T) {
	srv, enricher := newEnricherServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	instructions, sourceURL := enricher.Fetch(context.Background(), 42)

	// 실패해도 에러 대신 고정 문구, URL 은 항상 채워진다
	assert.Equal(t, PlaceholderInstructions, instructions)
	assert.Equal(t, srv.URL+"/recipe/42", sourceURL)
}

func TestEnricherFetchNoStepsYieldsPlaceholder(t *testing.T) {
	_, enricher := newEnricherServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<html><body><p>조리 단계가 없는 페이지</p></body></html>`))
	})

	instructions, _ := enricher.Fetch(context.Background(), 1)
	assert.Equal(t, PlaceholderInstructions, instructions)
}

func TestEnricherFetchUnreachableHostYieldsPlaceholder(t *testing.T) {
	enricher := NewDetailEnricher(EnricherConfig{
		BaseURL: "http://127.0.0.1:1",
		Timeout: 200 * time.Millisecond,
	})

	instructions, sourceURL := enricher.Fetch(context.Background(), 7)
	assert.Equal(t, PlaceholderInstructions, instructions)
	assert.Equal(t, "http://127.0.0.1:1/recipe/7", sourceURL)
}

func TestEnricherCacheAvoidsSecondCrawl(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.Write([]byte(`<span class="view_step_text">단계</span>`))
	}))
	t.Cleanup(srv.Close)

	enricher := NewDetailEnricher(EnricherConfig{
		BaseURL:              srv.URL,
		Timeout:              2 * time.Second,
		CacheEnabled:         true,
		CacheTTL:             time.Minute,
		CacheMaxSize:         10,
		CacheCleanupInterval: time.Minute,
	})
	defer enricher.Close()

	first, _ := enricher.Fetch(context.Background(), 1)
	second, _ := enricher.Fetch(context.Background(), 1)

	assert.Equal(t, first, second)
	assert.Equal(t, int32(1), calls.Load())
}

func TestEnricherCacheDoesNotCacheFailures(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	t.Cleanup(srv.Close)

	enricher := NewDetailEnricher(EnricherConfig{
		BaseURL:              srv.URL,
		Timeout:              2 * time.Second,
		CacheEnabled:         true,
		CacheTTL:             time.Minute,
		CacheMaxSize:         10,
		CacheCleanupInterval: time.Minute,
	})
	defer enricher.Close()

	enricher.Fetch(context.Background(), 1)
	enricher.Fetch(context.Background(), 1)

	assert.Equal(t, int32(2), calls.Load())
}

func TestInstructionCacheExpiry(t *testing.T) {
	c := newInstructionCache(10*time.Millisecond, 10, time.Minute)
	defer c.close()

	c.set(1, "단계")

	got, ok := c.get(1)
	require.True(t, ok)
	assert.Equal(t, "단계", got)

	time.Sleep(20 * time.Millisecond)
	_, ok = c.get(1)
	assert.False(t, ok)
}

func TestInstructionCacheFull(t *testing.T) {
	c := newInstructionCache(time.Minute, 2, time.Minute)
	defer c.close()

	c.set(1, "하나")
	c.set(2, "둘")
	c.set(3, "셋") // 가득 차서 버려진다

	_, ok := c.get(3)
	assert.False(t, ok)
	_, ok = c.get(1)
	assert.True(t, ok)
}
