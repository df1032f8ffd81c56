package cli

import (
	"errors"

	"github.com/shaiso/trellocli/internal/config"
	"github.com/shaiso/trellocli/internal/trello"
)

// Коды завершения процесса.
const (
	ExitOK                   = 0
	ExitError                = 1
	ExitMissingConfiguration = 2
	ExitEncodingError        = 3
)

// ExitCode сопоставляет ошибку команды с кодом завершения.
// Unauthorized и ResourceUnavailable дают общий код ExitError.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitOK
	case errors.Is(err, config.ErrMissingConfiguration):
		return ExitMissingConfiguration
	case errors.Is(err, ErrEncoding):
		return ExitEncodingError
	default:
		return ExitError
	}
}

// ErrorMessage формирует сообщение для пользователя. Вид ошибки API
// остаётся виден, чтобы отличать неверные ключи от недоступного ресурса.
func ErrorMessage(err error) string {
	var apiErr *trello.APIError
	if errors.As(err, &apiErr) && apiErr.Kind == trello.KindUnauthorized {
		return err.Error() + " (check TRELLO_API_KEY and TRELLO_API_TOKEN)"
	}
	return err.Error()
}
