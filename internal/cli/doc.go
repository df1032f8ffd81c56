// Package cli реализует команды и вывод trellocli.
//
// # Обзор
//
// Команды получают клиент Trello и Output через ClientFunc и
// OutputFunc: замыкания вызываются после разбора PersistentFlags,
// поэтому конфигурация и формат вывода известны к моменту вызова.
//
// ## Output
//
// Форматирование вывода. Поддерживает три режима:
//   - Таблицы (text/tabwriter, цвет через lipgloss): по умолчанию
//   - JSON: --output json
//   - YAML: --output yaml
//
// Данные выводятся в stdout, сообщения и логи в stderr:
// trellocli list-boards --output json | jq .
//
// ## Commands
//
//   - list-boards
//   - list-columns BOARD_ID
//   - create-card COLUMN_ID NAME COMMENT [LABEL...]
//
// ExitCode переводит ошибку команды в код завершения процесса.
package cli
