package domain

import (
	"bytes"
	"encoding/json"
)

// Optional 明確表示「有值 / 沒有值」，取代 nil 或零值當哨兵
type Optional[T any] struct {
	value T
	ok    bool
}

// Some 有值
func Some[T any](v T) Optional[T] {
	return Optional[T]{value: v, ok: true}
}

// None 沒有值
func None[T any]() Optional[T] {
	return Optional[T]{}
}

// Get 回傳值與是否存在
func (o Optional[T]) Get() (T, bool) {
	return o.value, o.ok
}

// IsSet 是否有值
func (o Optional[T]) IsSet() bool {
	return o.ok
}

// OrElse 沒有值時回傳 fallback
func (o Optional[T]) OrElse(fallback T) T {
	if o.ok {
		return o.value
	}
	return fallback
}

func (o Optional[T]) MarshalJSON() ([]byte, error) {
	if !o.ok {
		return []byte("null"), nil
	}
	return json.Marshal(o.value)
}

func (o *Optional[T]) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		*o = None[T]()
		return nil
	}
	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*o = Some(v)
	return nil
}
