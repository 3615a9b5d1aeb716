package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "db/TB_RECIPE_SEARCH_241226.csv", cfg.Corpus.Path)
	assert.Equal(t, "https://www.10000recipe.com", cfg.Enrich.BaseURL)
	assert.Equal(t, 4*time.Second, cfg.Enrich.Timeout)
	assert.Equal(t, 3, cfg.Recommend.SampleSize)
	assert.Equal(t, 3, cfg.Recommend.MaxIngredientLines)
	assert.Equal(t, "info", cfg.LogLevel)

	// 형태소 분석기는 기본 미설정 — 내장 폴백을 쓴다
	assert.Equal(t, "", cfg.Tokenizer.Endpoint)
}

func TestValidateConfig(t *testing.T) {
	valid := func() *Config {
		return &Config{
			Server: ServerConfig{Port: 8080},
			Corpus: CorpusConfig{Path: "db/corpus.csv"},
			Enrich: EnrichConfig{
				Timeout:              4 * time.Second,
				CacheEnabled:         true,
				CacheTTL:             time.Hour,
				CacheMaxSize:         100,
				CacheCleanupInterval: time.Minute,
			},
			Recommend: RecommendConfig{SampleSize: 3, MaxIngredientLines: 3},
		}
	}

	require.NoError(t, validateConfig(valid()))

	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"missing port", func(c *Config) { c.Server.Port = 0 }},
		{"missing corpus path", func(c *Config) { c.Corpus.Path = "" }},
		{"bad enrich timeout", func(c *Config) { c.Enrich.Timeout = 0 }},
		{"bad cache ttl", func(c *Config) { c.Enrich.CacheTTL = 0 }},
		{"bad cache size", func(c *Config) { c.Enrich.CacheMaxSize = 0 }},
		{"bad sample size", func(c *Config) { c.Recommend.SampleSize = 0 }},
		{"bad ingredient lines", func(c *Config) { c.Recommend.MaxIngredientLines = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)
			assert.Error(t, validateConfig(cfg))
		})
	}
}

func TestValidateConfigCacheDisabledSkipsCacheChecks(t *testing.T) {
	cfg := &Config{
		Server:    ServerConfig{Port: 8080},
		Corpus:    CorpusConfig{Path: "db/corpus.csv"},
		Enrich:    EnrichConfig{Timeout: 4 * time.Second, CacheEnabled: false},
		Recommend: RecommendConfig{SampleSize: 3, MaxIngredientLines: 3},
	}
	assert.NoError(t, validateConfig(cfg))
}
