package telemetry

import (
	"io"
	"strings"

	"github.com/sirupsen/logrus"
)

// LogLevel разбирает уровень логирования.
// Возможные значения: DEBUG, INFO, WARN, ERROR
// По умолчанию: WARN
func LogLevel(level string) logrus.Level {
	switch strings.ToUpper(level) {
	case "DEBUG":
		return logrus.DebugLevel
	case "INFO":
		return logrus.InfoLevel
	case "ERROR":
		return logrus.ErrorLevel
	default:
		return logrus.WarnLevel
	}
}

// SetupLogger создаёт логгер, пишущий в w.
func SetupLogger(w io.Writer, level, format string) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(w)
	Configure(logger, level, format)
	return logger
}

// Configure задаёт уровень и формат логгера. Вызывается повторно,
// когда уровень приходит из файла .env.
//
// Формат вывода:
//   - "text" (по умолчанию): человекочитаемый формат
//   - "json": JSON, удобен для разбора скриптами
func Configure(logger *logrus.Logger, level, format string) {
	logger.SetLevel(LogLevel(level))

	if strings.EqualFold(format, "json") {
		logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{
			DisableTimestamp: true,
		})
	}
}

// WithBoardID возвращает логгер с добавленным board_id.
func WithBoardID(logger logrus.FieldLogger, boardID string) *logrus.Entry {
	return logger.WithField("board_id", boardID)
}

// WithColumnID возвращает логгер с добавленным column_id.
func WithColumnID(logger logrus.FieldLogger, columnID string) *logrus.Entry {
	return logger.WithField("column_id", columnID)
}
