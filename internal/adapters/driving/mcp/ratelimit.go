package mcp

import (
	"net/http"
	"strconv"
	"time"

	"golang.org/x/time/rate"

	"github.com/immanueldhliso-sys/lexohub-narrative/internal/logger"
)

// limiter is a token bucket shared by every HTTP client of the server.
type limiter struct {
	bucket *rate.Limiter
}

func newLimiter(perSecond float64, burst int) *limiter {
	if perSecond <= 0 {
		return nil
	}
	if burst < 1 {
		burst = 1
	}
	return &limiter{bucket: rate.NewLimiter(rate.Limit(perSecond), burst)}
}

// middleware rejects requests with 429 once the bucket is empty, telling the
// client how long until a token is available.
func (l *limiter) middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reservation := l.bucket.Reserve()
		if !reservation.OK() {
			http.Error(w, ErrRateLimited.Error(), http.StatusTooManyRequests)
			return
		}
		if delay := reservation.Delay(); delay > 0 {
			reservation.Cancel()
			retry := int(delay.Round(time.Second) / time.Second)
			if retry < 1 {
				retry = 1
			}
			w.Header().Set("Retry-After", strconv.Itoa(retry))
			logger.Debug("mcp: %s", logger.Fields("rate_limited", r.RemoteAddr, "retry_after", retry))
			http.Error(w, ErrRateLimited.Error(), http.StatusTooManyRequests)
			return
		}
		next.ServeHTTP(w, r)
	})
}
