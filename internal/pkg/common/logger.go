package common

import (
	"fmt"
	"os"
	"strings"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	// Logger 전역 로거 인스턴스
	Logger  *zap.Logger
	LogMode string

	// 로그 레벨별 콘솔 색상
	levelColors = map[zapcore.Level]string{
		zapcore.DebugLevel: "\033[36m", // 청록
		zapcore.InfoLevel:  "\033[32m", // 초록
		zapcore.WarnLevel:  "\033[33m", // 노랑
		zapcore.ErrorLevel: "\033[31m", // 빨강
		zapcore.FatalLevel: "\033[35m", // 보라
	}
	resetColor = "\033[0m"
)

func getEncoderConfig() zapcore.EncoderConfig {
	return zapcore.EncoderConfig{
		TimeKey:        "time",
		LevelKey:       "level",
		NameKey:        "",
		CallerKey:      "",
		MessageKey:     "msg",
		StacktraceKey:  "",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    customLevelEncoder,
		EncodeTime:     customTimeEncoder,
		EncodeDuration: zapcore.StringDurationEncoder,
		EncodeCaller:   nil,
	}
}

// customTimeEncoder 밀리초 단위 타임스탬프
func customTimeEncoder(t time.Time, enc zapcore.PrimitiveArrayEncoder) {
	enc.AppendString(t.Format("15:04:05.000"))
}

// customLevelEncoder 레벨을 3글자 + 색상으로 출력
func customLevelEncoder(l zapcore.Level, enc zapcore.PrimitiveArrayEncoder) {
	color := levelColors[l]
	level := l.String()
	switch l {
	case zapcore.DebugLevel:
		level = "DBG"
	case zapcore.InfoLevel:
		level = "INF"
	case zapcore.WarnLevel:
		level = "WRN"
	case zapcore.ErrorLevel:
		level = "ERR"
	case zapcore.FatalLevel:
		level = "FAT"
	}
	enc.AppendString(color + level + resetColor)
}

// InitLogger 로그 시스템 초기화
func InitLogger(logLevel string) error {
	var level zapcore.Level
	switch strings.ToLower(logLevel) {
	case "debug":
		level = zapcore.DebugLevel
	case "info":
		level = zapcore.InfoLevel
	case "warn":
		level = zapcore.WarnLevel
	case "error":
		level = zapcore.ErrorLevel
	case "fatal":
		level = zapcore.FatalLevel
	default:
		level = zapcore.InfoLevel
	}

	// LOG_MODE 는 .env 로드 이후에 읽어야 한다
	LogMode = os.Getenv("LOG_MODE")

	if err := os.MkdirAll("logs", 0755); err != nil {
		return fmt.Errorf("failed to create log directory: %w", err)
	}

	logFile, err := os.OpenFile("logs/app.log", os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}

	fileWriter := zapcore.AddSync(logFile)
	consoleWriter := zapcore.AddSync(os.Stdout)

	// 파일은 JSON, 콘솔은 컬러 텍스트
	fileCore := zapcore.NewCore(
		zapcore.NewJSONEncoder(getEncoderConfig()),
		fileWriter,
		level,
	)
	consoleCore := zapcore.NewCore(
		zapcore.NewConsoleEncoder(getEncoderConfig()),
		consoleWriter,
		level,
	)

	core := zapcore.NewTee(fileCore, consoleCore)

	Logger = zap.New(core,
		zap.AddCallerSkip(1),
		zap.Fields(
			zap.String("service", "recipe-recommender"),
		),
	)

	zap.ReplaceGlobals(Logger)

	return nil
}

// LogInfo 정보 로그 기록
func LogInfo(msg string, fields ...zap.Field) {
	if Logger == nil {
		return
	}
	if LogMode == "concise" {
		// concise 모드에서는 요청 완료와 서버 기동/종료 메시지만 출력
		if msg != "요청 완료" && msg != "서버 시작" && msg != "Server exited" && msg != "Shutting down server..." {
			return
		}
	}
	Logger.Info(msg, fields...)
}

// LogError 에러 로그 기록
func LogError(msg string, fields ...zap.Field) {
	if Logger == nil {
		return
	}
	Logger.Error(msg, fields...)
}

// LogWarn 경고 로그 기록
func LogWarn(msg string, fields ...zap.Field) {
	if Logger == nil {
		return
	}
	Logger.Warn(msg, fields...)
}

// LogDebug 디버그 로그 기록
func LogDebug(msg string, fields ...zap.Field) {
	if Logger == nil {
		return
	}
	Logger.Debug(msg, fields...)
}

// LogFatal 치명적 에러 로그 기록
func LogFatal(msg string, fields ...zap.Field) {
	Logger.Fatal(msg, fields...)
}

// Sync 로그 버퍼 플러시
func Sync() {
	if Logger != nil {
		_ = Logger.Sync()
	}
}

// LogCacheHit 캐시 적중 기록
func LogCacheHit(cacheType string, key string) {
	LogInfo("캐시 적중", zap.String("종류", cacheType), zap.String("키", key))
}

// LogCacheMiss 캐시 미적중 기록
func LogCacheMiss(cacheType string, key string) {
	LogInfo("캐시 미적중", zap.String("종류", cacheType), zap.String("키", key))
}

// LogCrawl 상세 페이지 크롤링 결과 기록
func LogCrawl(recipeID int, duration time.Duration, err error) {
	if err != nil {
		LogError("크롤링 실패",
			zap.Int("recipe_id", recipeID),
			zap.Duration("소요시간", duration),
			zap.Error(err),
		)
		return
	}
	LogInfo("크롤링 성공",
		zap.Int("recipe_id", recipeID),
		zap.Duration("소요시간", duration),
	)
}
