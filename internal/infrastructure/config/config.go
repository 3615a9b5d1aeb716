package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config 애플리케이션 설정
type Config struct {
	App       AppConfig       `mapstructure:"app"`
	Server    ServerConfig    `mapstructure:"server"`
	Corpus    CorpusConfig    `mapstructure:"corpus"`
	Enrich    EnrichConfig    `mapstructure:"enrich"`
	Tokenizer TokenizerConfig `mapstructure:"tokenizer"`
	Redis     RedisConfig     `mapstructure:"redis"`
	Recommend RecommendConfig `mapstructure:"recommend"`
	RateLimit RateLimitConfig `mapstructure:"rate_limit"`
	LogLevel  string          `mapstructure:"log_level"`
}

// AppConfig 애플리케이션 기본 설정
type AppConfig struct {
	Env     string `mapstructure:"env"`
	Debug   bool   `mapstructure:"debug"`
	Version string `mapstructure:"version"`
	Name    string `mapstructure:"name"`
}

// ServerConfig 서버 설정
type ServerConfig struct {
	Port         int           `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	IdleTimeout  time.Duration `mapstructure:"idle_timeout"`
}

// CorpusConfig 레시피 코퍼스 설정
type CorpusConfig struct {
	Path string `mapstructure:"path"`
}

// EnrichConfig 상세 조리법 크롤링 설정
type EnrichConfig struct {
	BaseURL              string        `mapstructure:"base_url"`
	Timeout              time.Duration `mapstructure:"timeout"`
	CacheEnabled         bool          `mapstructure:"cache_enabled"`
	CacheTTL             time.Duration `mapstructure:"cache_ttl"`
	CacheMaxSize         int           `mapstructure:"cache_max_size"`
	CacheCleanupInterval time.Duration `mapstructure:"cache_cleanup_interval"`
}

// TokenizerConfig 형태소 분석기 설정 (미설정 시 내장 폴백 사용)
type TokenizerConfig struct {
	Endpoint string        `mapstructure:"endpoint"`
	Timeout  time.Duration `mapstructure:"timeout"`
}

// RedisConfig 냉장고 재료 저장소(Redis) 설정
type RedisConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Addr    string `mapstructure:"addr"`
}

// RecommendConfig 추천 엔진 설정
type RecommendConfig struct {
	SampleSize         int `mapstructure:"sample_size"`
	MaxIngredientLines int `mapstructure:"max_ingredient_lines"`
}

// RateLimitConfig 요청 제한 설정
type RateLimitConfig struct {
	Enabled  bool          `mapstructure:"enabled"`
	Requests int           `mapstructure:"requests"`
	Window   time.Duration `mapstructure:"window"`
}

// LoadConfig 설정 로드
func LoadConfig() (*Config, error) {
	// .env 파일 로드 (없어도 무방)
	_ = godotenv.Load()

	setDefaults()

	viper.SetEnvPrefix("APP")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	// 환경변수 바인딩
	viper.BindEnv("corpus.path", "CORPUS_PATH")
	viper.BindEnv("enrich.base_url", "ENRICH_BASE_URL")
	viper.BindEnv("enrich.timeout", "ENRICH_TIMEOUT")
	viper.BindEnv("tokenizer.endpoint", "TOKENIZER_ENDPOINT")
	viper.BindEnv("redis.enabled", "REDIS_ENABLED")
	viper.BindEnv("redis.addr", "REDIS_ADDR")
	viper.BindEnv("rate_limit.enabled", "RATE_LIMIT_ENABLED")
	viper.BindEnv("rate_limit.requests", "RATE_LIMIT_REQUESTS")
	viper.BindEnv("rate_limit.window", "RATE_LIMIT_WINDOW")
	viper.BindEnv("log_level", "LOG_LEVEL")

	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &config, nil
}

// setDefaults 기본값 설정
func setDefaults() {
	// 애플리케이션
	viper.SetDefault("app.env", "development")
	viper.SetDefault("app.debug", true)
	viper.SetDefault("app.version", "1.0.0")
	viper.SetDefault("app.name", "recipe-recommender")

	// 서버
	viper.SetDefault("server.port", 8080)
	viper.SetDefault("server.read_timeout", "30s")
	viper.SetDefault("server.write_timeout", "30s")
	viper.SetDefault("server.idle_timeout", "120s")

	// 코퍼스
	viper.SetDefault("corpus.path", "db/TB_RECIPE_SEARCH_241226.csv")

	// 크롤링
	viper.SetDefault("enrich.base_url", "https://www.10000recipe.com")
	viper.SetDefault("enrich.timeout", "4s")
	viper.SetDefault("enrich.cache_enabled", true)
	viper.SetDefault("enrich.cache_ttl", "24h")
	viper.SetDefault("enrich.cache_max_size", 1000)
	viper.SetDefault("enrich.cache_cleanup_interval", "10m")

	// 형태소 분석기
	viper.SetDefault("tokenizer.endpoint", "")
	viper.SetDefault("tokenizer.timeout", "3s")

	// Redis
	viper.SetDefault("redis.enabled", true)
	viper.SetDefault("redis.addr", "localhost:6379")

	// 추천
	viper.SetDefault("recommend.sample_size", 3)
	viper.SetDefault("recommend.max_ingredient_lines", 3)

	// 요청 제한
	viper.SetDefault("rate_limit.enabled", true)
	viper.SetDefault("rate_limit.requests", 100)
	viper.SetDefault("rate_limit.window", "1m")

	viper.SetDefault("log_level", "info")
}

// validateConfig 설정 검증
func validateConfig(config *Config) error {
	if config.Server.Port == 0 {
		return fmt.Errorf("server port is required")
	}

	if config.Corpus.Path == "" {
		return fmt.Errorf("corpus path is required")
	}

	if config.Enrich.Timeout <= 0 {
		return fmt.Errorf("invalid enrich timeout")
	}
	if config.Enrich.CacheEnabled {
		if config.Enrich.CacheTTL <= 0 {
			return fmt.Errorf("invalid enrich cache ttl")
		}
		if config.Enrich.CacheMaxSize <= 0 {
			return fmt.Errorf("invalid enrich cache max size")
		}
		if config.Enrich.CacheCleanupInterval <= 0 {
			return fmt.Errorf("invalid enrich cache cleanup interval")
		}
	}

	if config.Recommend.SampleSize <= 0 {
		return fmt.Errorf("invalid recommend sample size")
	}
	if config.Recommend.MaxIngredientLines <= 0 {
		return fmt.Errorf("invalid recommend max ingredient lines")
	}

	return nil
}
