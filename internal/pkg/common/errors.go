package common

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

// ErrorResponse API 的統一錯誤信封
type ErrorResponse struct {
	Error string `json:"error"`          // 對外的錯誤訊息
	Code  string `json:"code"`           // 錯誤代碼
	Hint  string `json:"hint,omitempty"` // 給使用者的下一步提示
}

// CustomError 定義自定義錯誤類型
type CustomError struct {
	Code    string // 錯誤代碼
	Message string // 對外的錯誤訊息
	Err     error  // 原始錯誤
	Status  int    // HTTP 狀態碼
}

func (e *CustomError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return e.Message
}

// NewError 創建新的自定義錯誤
func NewError(code string, message string, status int, err error) *CustomError {
	return &CustomError{
		Code:    code,
		Message: message,
		Status:  status,
		Err:     err,
	}
}

// WithMessage 換上對外訊息，代碼與狀態碼不變
func (e *CustomError) WithMessage(message string) *CustomError {
	clone := *e
	clone.Message = message
	return &clone
}

// AbortWithError 以統一錯誤信封中止請求
func AbortWithError(c *gin.Context, cerr *CustomError) {
	c.AbortWithStatusJSON(cerr.Status, ErrorResponse{
		Error: cerr.Message,
		Code:  cerr.Code,
	})
}

// AbortWithErrorHint 以統一錯誤信封中止請求，附帶給使用者的提示
func AbortWithErrorHint(c *gin.Context, cerr *CustomError, hint string) {
	c.AbortWithStatusJSON(cerr.Status, ErrorResponse{
		Error: cerr.Message,
		Code:  cerr.Code,
		Hint:  hint,
	})
}

// ValidationError 表示驗證錯誤
type ValidationError struct {
	message string
}

// Error 實現 error 介面
func (e *ValidationError) Error() string {
	return e.message
}

// NewValidationError 創建新的驗證錯誤
func NewValidationError(message string) error {
	return &ValidationError{
		message: message,
	}
}

// IsValidationError 檢查是否為驗證錯誤
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// UpstreamError 表示外部服務調用失敗，Transient 區分可重試與永久失敗
type UpstreamError struct {
	Provider  string // 出錯的外部服務
	Status    int    // 上游 HTTP 狀態碼（無則為 0）
	Transient bool   // 是否屬於可重試的暫時性失敗
	Err       error
}

func (e *UpstreamError) Error() string {
	if e.Err != nil {
		return e.Provider + ": " + e.Err.Error()
	}
	return e.Provider + ": upstream failure"
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}

// IsTransientUpstream 檢查是否為暫時性的上游錯誤
func IsTransientUpstream(err error) bool {
	var ue *UpstreamError
	return errors.As(err, &ue) && ue.Transient
}

// 預定義錯誤代碼
const (
	// 客戶端錯誤 (4xx)
	ErrCodeInvalidRequest  = "INVALID_REQUEST"   // 400
	ErrCodeRecipeNotFound  = "RECIPE_NOT_FOUND"  // 404
	ErrCodePayloadTooLarge = "PAYLOAD_TOO_LARGE" // 413
	ErrCodeTooManyRequests = "TOO_MANY_REQUESTS" // 429

	// 服務器錯誤 (5xx)
	ErrCodeInternalError  = "INTERNAL_ERROR"  // 500
	ErrCodeGatewayTimeout = "GATEWAY_TIMEOUT" // 504
)

// 預定義錯誤，對外訊息延續 API 既有的英文句型
var (
	ErrInvalidRequest  = NewError(ErrCodeInvalidRequest, "Invalid input", http.StatusBadRequest, nil)
	ErrRecipeNotFound  = NewError(ErrCodeRecipeNotFound, "Not found", http.StatusNotFound, nil)
	ErrPayloadTooLarge = NewError(ErrCodePayloadTooLarge, "Request body too large", http.StatusRequestEntityTooLarge, nil)
	ErrTooManyRequests = NewError(ErrCodeTooManyRequests, "Easy there. Try again in a moment.", http.StatusTooManyRequests, nil)
	ErrInternalError   = NewError(ErrCodeInternalError, "Something went wrong", http.StatusInternalServerError, nil)
	ErrGatewayTimeout  = NewError(ErrCodeGatewayTimeout, "Request timeout", http.StatusGatewayTimeout, nil)
)
