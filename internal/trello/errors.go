package trello

import (
	"errors"
	"fmt"
)

// Ошибки API.
var (
	// ErrUnauthorized: сервис отклонил ключ или токен (HTTP 401).
	ErrUnauthorized = errors.New("unauthorized")

	// ErrResourceUnavailable: любой другой ответ вне диапазона 2xx.
	ErrResourceUnavailable = errors.New("resource unavailable")
)

// Kind: вид ошибки API.
type Kind int

const (
	// KindUnauthorized: HTTP 401, ключ или токен отклонены.
	KindUnauthorized Kind = iota + 1

	// KindResourceUnavailable: любой другой статус вне 2xx.
	KindResourceUnavailable
)

// String возвращает имя вида ошибки.
func (k Kind) String() string {
	switch k {
	case KindUnauthorized:
		return "unauthorized"
	case KindResourceUnavailable:
		return "resource unavailable"
	default:
		return "unknown"
	}
}

// APIError: ответ сервиса с кодом вне 2xx.
type APIError struct {
	Kind   Kind
	Status int    // HTTP статус
	Body   string // тело ответа как есть, не длиннее maxErrorBody (64 KiB)
	Path   string // запрошенный путь относительно базового адреса
}

// Error реализует интерфейс error.
func (e *APIError) Error() string {
	if e.Kind == KindUnauthorized {
		return fmt.Sprintf("%s (HTTP %d): %s", e.Kind, e.Status, e.Body)
	}
	return fmt.Sprintf("%s: %s (HTTP %d): %s", e.Kind, e.Path, e.Status, e.Body)
}

// Unwrap возвращает sentinel-ошибку, соответствующую Kind.
func (e *APIError) Unwrap() error {
	switch e.Kind {
	case KindUnauthorized:
		return ErrUnauthorized
	case KindResourceUnavailable:
		return ErrResourceUnavailable
	default:
		return nil
	}
}

// newAPIError классифицирует неуспешный ответ.
func newAPIError(status int, body, path string) *APIError {
	kind := KindResourceUnavailable
	if status == 401 {
		kind = KindUnauthorized
	}
	return &APIError{Kind: kind, Status: status, Body: body, Path: path}
}
