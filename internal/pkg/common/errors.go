package common

import (
	"errors"
	"net/http"
)

// ErrorResponse API 에러 응답 구조
type ErrorResponse struct {
	Code    string `json:"code"`              // 에러 코드
	Message string `json:"message"`           // 에러 메시지
	Details string `json:"details,omitempty"` // 상세 정보 (개발 모드에서만)
}

// CustomError 커스텀 에러 타입
type CustomError struct {
	Code    string // 에러 코드
	Message string // 에러 메시지
	Err     error  // 원본 에러
	Status  int    // HTTP 상태 코드
}

func (e *CustomError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *CustomError) Unwrap() error {
	return e.Err
}

// NewError 새 커스텀 에러 생성
func NewError(code string, message string, status int, err error) *CustomError {
	return &CustomError{
		Code:    code,
		Message: message,
		Status:  status,
		Err:     err,
	}
}

// IsErrorCode err 가 해당 코드의 CustomError 인지 확인
func IsErrorCode(err error, code string) bool {
	var ce *CustomError
	if errors.As(err, &ce) {
		return ce.Code == code
	}
	return false
}

// 에러 코드 정의
const (
	// 클라이언트 에러 (4xx)
	ErrCodeInvalidRequest  = "INVALID_REQUEST"   // 400
	ErrCodeNotFound        = "NOT_FOUND"         // 404
	ErrCodeTooManyRequests = "TOO_MANY_REQUESTS" // 429

	// 서버 에러 (5xx)
	ErrCodeInternalError      = "INTERNAL_ERROR"      // 500
	ErrCodeServiceUnavailable = "SERVICE_UNAVAILABLE" // 503
	ErrCodeGatewayTimeout     = "GATEWAY_TIMEOUT"     // 504

	// 도메인 에러
	ErrCodeDataSource    = "DATA_SOURCE_ERROR" // 코퍼스 로드 실패 (기동 시 치명적)
	ErrCodeCacheDisabled = "CACHE_DISABLED"
	ErrCodeCacheFull     = "CACHE_FULL"
)

// 사전 정의 에러
var (
	ErrInvalidRequest  = NewError(ErrCodeInvalidRequest, "잘못된 요청입니다", http.StatusBadRequest, nil)
	ErrNotFound        = NewError(ErrCodeNotFound, "리소스를 찾을 수 없습니다", http.StatusNotFound, nil)
	ErrTooManyRequests = NewError(ErrCodeTooManyRequests, "요청이 너무 많습니다", http.StatusTooManyRequests, nil)

	ErrInternalError      = NewError(ErrCodeInternalError, "서버 내부 오류", http.StatusInternalServerError, nil)
	ErrServiceUnavailable = NewError(ErrCodeServiceUnavailable, "서비스를 일시적으로 사용할 수 없습니다", http.StatusServiceUnavailable, nil)
	ErrGatewayTimeout     = NewError(ErrCodeGatewayTimeout, "게이트웨이 시간 초과", http.StatusGatewayTimeout, nil)

	ErrCacheDisabled = NewError(ErrCodeCacheDisabled, "캐시가 비활성화되어 있습니다", http.StatusServiceUnavailable, nil)
	ErrCacheFull     = NewError(ErrCodeCacheFull, "캐시가 가득 찼습니다", http.StatusServiceUnavailable, nil)
)

// NewDataSourceError 코퍼스 데이터 소스 에러 생성
func NewDataSourceError(message string, err error) *CustomError {
	return NewError(ErrCodeDataSource, message, http.StatusInternalServerError, err)
}

// IsDataSourceError 데이터 소스 에러인지 확인
func IsDataSourceError(err error) bool {
	return IsErrorCode(err, ErrCodeDataSource)
}
