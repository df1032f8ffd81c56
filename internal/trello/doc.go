// Package trello реализует клиент Trello REST API.
//
// # Обзор
//
// Client оборачивает HTTP-вызовы к https://api.trello.com/1/ и
// декодирует ответы в записи пакета domain. Каждый запрос несёт
// key и token в query string.
//
//	client := trello.NewClient(key, token)
//	boards, err := client.GetBoardList(ctx)
//
// # Ошибки
//
// Ответ 401 превращается в *APIError с Kind = KindUnauthorized,
// любой другой ответ вне 2xx в KindResourceUnavailable. Обе ошибки
// проверяются через errors.Is(err, ErrUnauthorized) и
// errors.Is(err, ErrResourceUnavailable). Повторов и backoff нет.
//
// # Создание карточки
//
// CreateCard выполняет несколько зависимых запросов. Транзакций у
// Trello нет, поэтому ошибка после первого шага оставляет на сервере
// частично настроенную карточку. Клиент возвращает её вместе с ошибкой,
// Stage показывает последний успешный шаг.
package trello
