package logger

import (
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	chimw "github.com/go-chi/chi/v5/middleware"
	"golang.org/x/exp/slog"
)

// Logger middleware для логирования входящих HTTP запросов
type Logger struct {
	log *slog.Logger
}

// New создает новый экземпляр Logger middleware
func New(log *slog.Logger) *Logger {
	return &Logger{
		log: log.With(slog.String("component", "http_logger")),
	}
}

// Middleware логирует запрос после обработки. Уровень зависит от статуса ответа.
func (l *Logger) Middleware() func(huma.Context, func(huma.Context)) {
	return func(ctx huma.Context, next func(huma.Context)) {
		start := time.Now()

		method := ctx.Method()
		path := ctx.URL().Path
		query := ctx.URL().RawQuery
		remoteAddr := ctx.RemoteAddr()

		next(ctx)

		status := ctx.Status()
		if status == 0 {
			status = http.StatusOK
		}

		attrs := []any{
			slog.String("method", method),
			slog.String("path", path),
			slog.Int("status", status),
			slog.Duration("duration", time.Since(start)),
			slog.String("remote_addr", remoteAddr),
		}
		if query != "" {
			attrs = append(attrs, slog.String("query", query))
		}
		if id := chimw.GetReqID(ctx.Context()); id != "" {
			attrs = append(attrs, slog.String("request_id", id))
		}

		switch {
		case status >= http.StatusInternalServerError:
			l.log.Error("HTTP request", attrs...)
		case status >= http.StatusBadRequest:
			l.log.Warn("HTTP request", attrs...)
		default:
			l.log.Info("HTTP request", attrs...)
		}
	}
}
