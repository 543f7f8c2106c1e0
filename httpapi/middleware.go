package httpapi

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/tapp-eng/campaign-core/pkg/otellib"
)

func recoverMiddleware(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, req *http.Request) {
			defer func() {
				if rec := recover(); rec != nil {
					logger.Error("panic in handler",
						zap.Any("panic", rec),
						zap.String("path", req.URL.Path),
						zap.Stack("stack"),
					)
					writeJSON(writer, http.StatusInternalServerError,
						errorBody{Error: "internal error"})
				}
			}()
			next.ServeHTTP(writer, req)
		})
	}
}

func requestLogMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, req *http.Request) {
		start := time.Now()
		wrapped := middleware.NewWrapResponseWriter(writer, req.ProtoMajor)

		next.ServeHTTP(wrapped, req)

		otellib.Extract(req.Context()).Info("http request",
			zap.String("method", req.Method),
			zap.String("path", req.URL.Path),
			zap.Int("status", wrapped.Status()),
			zap.Int("bytes", wrapped.BytesWritten()),
			zap.Duration("elapsed", time.Since(start)),
		)
	})
}
