package middleware

import (
	"context"
	"net/http"
	"time"

	"stray-pets/internal/platform/logger"

	chimw "github.com/go-chi/chi/v5/middleware"
)

const loggerKey ctxKey = "logger"

// RequestLogger cuelga un logger con request_id en el contexto y loguea cada request al terminar.
func RequestLogger(base logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			l := base.With(map[string]any{"request_id": chimw.GetReqID(r.Context())})
			ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()

			next.ServeHTTP(ww, r.WithContext(context.WithValue(r.Context(), loggerKey, l)))

			fields := map[string]any{
				"method": r.Method,
				"path":   r.URL.Path,
				"status": ww.Status(),
				"ms":     time.Since(start).Milliseconds(),
			}
			if ww.Status() >= http.StatusInternalServerError {
				l.Warn("request finished", fields)
				return
			}
			l.Info("request finished", fields)
		})
	}
}

// Log devuelve el logger del request, o uno nop si no hay.
func Log(ctx context.Context) logger.Logger {
	if l, ok := ctx.Value(loggerKey).(logger.Logger); ok && l != nil {
		return l
	}
	return logger.Nop()
}
