package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/rs/xid"

	"github.com/JoeShih716/audit-ledger/internal/app/core/domain"
)

// RequestIDHeader 請求追蹤 ID 的 header
const RequestIDHeader = "X-Request-ID"

const requestIDKey = "requestId"

var validate = validator.New()

// ValidationError 單一欄位的驗證錯誤
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
	Type    string `json:"type"`
}

// ErrorResponse 錯誤回應
type ErrorResponse struct {
	ErrorKind string            `json:"error_kind"`
	Message   string            `json:"message"`
	Details   []ValidationError `json:"details,omitempty"`
}

// RequestID 沿用呼叫端帶入的 X-Request-ID，沒有就產生一個
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if id == "" {
			id = xid.New().String()
		}
		c.Set(requestIDKey, id)
		c.Header(RequestIDHeader, id)
		c.Next()
	}
}

// AccessLog 每個請求記一行 log
func AccessLog(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		logger.LogAttrs(c.Request.Context(), slog.LevelInfo, "http request",
			slog.String("request_id", c.GetString(requestIDKey)),
			slog.String("method", c.Request.Method),
			slog.String("path", c.FullPath()),
			slog.Int("status", c.Writer.Status()),
			slog.Duration("elapsed", time.Since(start)),
		)
	}
}

// validateRequest 檢查 validate tag，全部通過回傳 nil
func validateRequest(obj any) []ValidationError {
	err := validate.Struct(obj)
	if err == nil {
		return nil
	}
	fieldErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return []ValidationError{{Message: err.Error(), Type: "invalid"}}
	}
	out := make([]ValidationError, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		out = append(out, ValidationError{
			Field:   fe.Field(),
			Message: validationMessage(fe),
			Type:    fe.Tag(),
		})
	}
	return out
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "This field is required"
	case "numeric":
		return "Value must be a decimal number"
	case "max":
		return "Value is too long"
	default:
		return "Invalid value"
	}
}

// statusFor 錯誤分類轉 HTTP status
func statusFor(err error) int {
	switch domain.KindOf(err) {
	case domain.KindInvalidArgument:
		return http.StatusBadRequest
	case domain.KindNotFound:
		return http.StatusNotFound
	case domain.KindDuplicateAccount:
		return http.StatusConflict
	case domain.KindInactiveAccount, domain.KindInsufficientFunds:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

func respondWithError(c *gin.Context, err error) {
	c.JSON(statusFor(err), ErrorResponse{
		ErrorKind: domain.KindOf(err).String(),
		Message:   err.Error(),
	})
}

// bindJSON 解析並驗證 body，失敗時已寫入 400 回應
func bindJSON(c *gin.Context, req any) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			ErrorKind: domain.KindInvalidArgument.String(),
			Message:   "Invalid request body",
		})
		return false
	}
	if details := validateRequest(req); details != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			ErrorKind: domain.KindInvalidArgument.String(),
			Message:   "Invalid request data",
			Details:   details,
		})
		return false
	}
	return true
}
