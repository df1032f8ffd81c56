package domain

import "errors"

// ErrMissingField: в JSON-объекте нет обязательного поля.
var ErrMissingField = errors.New("required field missing")

// FieldError описывает нарушение обязательного поля при декодировании записи.
type FieldError struct {
	Record string // тип записи: board, column, card
	Field  string // имя поля в JSON
	Err    error  // базовая ошибка
}

// Error реализует интерфейс error.
func (e *FieldError) Error() string {
	return e.Record + ": " + e.Field + ": " + e.Err.Error()
}

// Unwrap возвращает базовую ошибку.
func (e *FieldError) Unwrap() error {
	return e.Err
}

func missing(record, field string) *FieldError {
	return &FieldError{Record: record, Field: field, Err: ErrMissingField}
}

// requireString проверяет, что обязательное поле присутствует и не null.
func requireString(record, field string, v *string) (string, error) {
	if v == nil {
		return "", missing(record, field)
	}
	return *v, nil
}
