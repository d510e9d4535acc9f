package logs

import (
	"os"

	"github.com/sirupsen/logrus"
)

// NewLogrus создает logrus логгер для слоя базы данных (gorm).
// В release режиме пишет JSON с уровнем info, иначе текст с уровнем debug.
func NewLogrus() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(os.Stdout)

	logger.SetFormatter(new(logrus.JSONFormatter))
	logger.SetLevel(logrus.InfoLevel)

	if !isReleaseMode() {
		logger.SetLevel(logrus.DebugLevel)
		logger.SetFormatter(new(logrus.TextFormatter))
	}

	return logger
}
