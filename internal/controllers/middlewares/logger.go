package middlewares

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// LoggerMiddleware пишет строку журнала доступа на каждый запрос.
// Должен стоять в стеке сразу после RequestIDMiddleware. Ошибки, собранные обработчиками
// через ctx.Error, попадают в поле error; уровень записи зависит от кода ответа.
func LoggerMiddleware(logger *zap.Logger) gin.HandlerFunc {
	if logger == nil {
		return func(c *gin.Context) { c.Next() }
	}
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		status := c.Writer.Status()
		fields := []zap.Field{
			zap.String("request-id", c.GetString(RequestIDKey)),
			zap.String("method", c.Request.Method),
			zap.String("URI", c.Request.RequestURI),
			zap.Int("status", status),
			zap.Duration("latency", time.Since(start)),
			zap.Int("size", c.Writer.Size()),
			zap.String("client-ip", c.ClientIP()),
			zap.String("content-type", c.Request.Header.Get("Content-Type")),
		}
		if errs := c.Errors.ByType(gin.ErrorTypePrivate).String(); errs != "" {
			fields = append(fields, zap.String("error", errs))
		}

		level := zapcore.InfoLevel
		switch {
		case status >= http.StatusInternalServerError:
			level = zapcore.ErrorLevel
		case status >= http.StatusBadRequest:
			level = zapcore.WarnLevel
		}
		logger.Log(level, "request", fields...)
	}
}
