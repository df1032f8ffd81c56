// Package telemetry обеспечивает наблюдаемость CLI.
//
// Включает:
//   - logging.go: структурированные логи через logrus в stderr
//   - metrics.go: реестр Prometheus и выгрузка в textfile
//
// stdout занят выводом команд, поэтому логи всегда идут в stderr.
package telemetry
