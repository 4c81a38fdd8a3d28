package middleware

import (
	"bufio"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"net/url"
	"time"
)

// statusRecorder запоминает статус и размер ответа.
// Hijack нужен для upgrade до WebSocket.
type statusRecorder struct {
	http.ResponseWriter
	status   int
	written  int64
	hijacked bool
}

func (rec *statusRecorder) WriteHeader(code int) {
	rec.status = code
	rec.ResponseWriter.WriteHeader(code)
}

func (rec *statusRecorder) Write(b []byte) (int, error) {
	n, err := rec.ResponseWriter.Write(b)
	rec.written += int64(n)
	return n, err
}

func (rec *statusRecorder) Hijack() (net.Conn, *bufio.ReadWriter, error) {
	hj, ok := rec.ResponseWriter.(http.Hijacker)
	if !ok {
		return nil, nil, errors.New("response writer does not support hijacking")
	}
	conn, rw, err := hj.Hijack()
	if err == nil {
		rec.hijacked = true
		rec.status = http.StatusSwitchingProtocols
	}
	return conn, rw, err
}

// LoggingMiddleware логирует каждый HTTP запрос: метод, путь, статус, длительность.
// Запросы к skipPaths (health checks) не логируются. Токен из query не попадает в лог.
func LoggingMiddleware(logger *slog.Logger, skipPaths ...string) func(http.Handler) http.Handler {
	skip := make(map[string]struct{}, len(skipPaths))
	for _, p := range skipPaths {
		skip[p] = struct{}{}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if _, ok := skip[r.URL.Path]; ok {
				next.ServeHTTP(w, r)
				return
			}

			start := time.Now()
			rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
			next.ServeHTTP(rec, r)

			level := slog.LevelInfo
			switch {
			case rec.status >= 500:
				level = slog.LevelError
			case rec.status >= 400:
				level = slog.LevelWarn
			}

			attrs := []slog.Attr{
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.Int("status", rec.status),
				slog.Int64("duration_ms", time.Since(start).Milliseconds()),
				slog.String("remote_addr", r.RemoteAddr),
			}
			if q := redactQuery(r.URL.Query()); q != "" {
				attrs = append(attrs, slog.String("query", q))
			}
			if rec.hijacked {
				// для WebSocket запись завершается с закрытием канала
				attrs = append(attrs, slog.Bool("upgraded", true))
			} else {
				attrs = append(attrs, slog.Int64("bytes_written", rec.written))
			}

			logger.LogAttrs(r.Context(), level, "http request", attrs...)
		})
	}
}

// redactQuery кодирует query, заменяя значение токена на ***
func redactQuery(q url.Values) string {
	if len(q) == 0 {
		return ""
	}
	if _, ok := q[TokenQueryParam]; ok {
		q.Set(TokenQueryParam, "***")
	}
	return q.Encode()
}
