package domain

import (
	"errors"
	"fmt"
)

// ErrorKind 錯誤分類，傳輸層依此轉換成自己的錯誤碼
type ErrorKind uint8

const (
	KindUnknown ErrorKind = iota
	// KindInvalidArgument 參數格式錯誤 (空帳號、非正數金額、同帳戶轉帳)
	KindInvalidArgument
	// KindNotFound 帳戶不存在
	KindNotFound
	// KindDuplicateAccount 帳號已被註冊
	KindDuplicateAccount
	// KindInactiveAccount 帳戶已停用
	KindInactiveAccount
	// KindInsufficientFunds 餘額不足
	KindInsufficientFunds
	// KindInternalInvariantViolation 核心保證被破壞，不應發生
	KindInternalInvariantViolation
)

func (k ErrorKind) String() string {
	switch k {
	case KindInvalidArgument:
		return "InvalidArgument"
	case KindNotFound:
		return "NotFound"
	case KindDuplicateAccount:
		return "DuplicateAccount"
	case KindInactiveAccount:
		return "InactiveAccount"
	case KindInsufficientFunds:
		return "InsufficientFunds"
	case KindInternalInvariantViolation:
		return "InternalInvariantViolation"
	default:
		return "Unknown"
	}
}

// Error 帶分類與原因的業務錯誤
type Error struct {
	Kind   ErrorKind
	Reason string
}

func (e *Error) Error() string {
	if e.Reason == "" {
		return e.Kind.String()
	}
	return e.Kind.String() + ": " + e.Reason
}

// Is 讓 errors.Is(err, ErrNotFound) 比對分類而不是原因
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}

var (
	ErrInvalidArgument   = &Error{Kind: KindInvalidArgument}
	ErrNotFound          = &Error{Kind: KindNotFound}
	ErrDuplicateAccount  = &Error{Kind: KindDuplicateAccount}
	ErrInactiveAccount   = &Error{Kind: KindInactiveAccount}
	ErrInsufficientFunds = &Error{Kind: KindInsufficientFunds}
	ErrInvariant         = &Error{Kind: KindInternalInvariantViolation}
)

// NewError 建立指定分類的錯誤
func NewError(kind ErrorKind, format string, args ...any) *Error {
	return &Error{Kind: kind, Reason: fmt.Sprintf(format, args...)}
}

// KindOf 取出錯誤分類，非本套件錯誤回傳 KindUnknown
func KindOf(err error) ErrorKind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}
