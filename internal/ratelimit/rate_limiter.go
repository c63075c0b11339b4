package ratelimit

import (
	"log/slog"
	"net/http"

	"github.com/bornholm/menud/internal/syncx"
	"github.com/bornholm/menud/pkg/log"
	"github.com/pkg/errors"
	"golang.org/x/time/rate"
)

type RateLimiter struct {
	rate     rate.Limit
	burst    int
	visitors syncx.Map[string, *rate.Limiter]
}

type GetVisitorKeyFunc func(r *http.Request) (string, error)

func (l *RateLimiter) Middleware(getVisitorKey GetVisitorKeyFunc) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			visitorKey, err := getVisitorKey(r)
			if err != nil {
				slog.ErrorContext(ctx, "could not retrieve visitor key", log.Error(errors.WithStack(err)))
				http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
				return
			}

			limiter, _ := l.visitors.LoadOrStore(visitorKey, rate.NewLimiter(l.rate, l.burst))

			if !limiter.Allow() {
				http.Error(w, http.StatusText(http.StatusTooManyRequests), http.StatusTooManyRequests)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func New(rate rate.Limit, burst int) *RateLimiter {
	return &RateLimiter{
		rate:  rate,
		burst: burst,
	}
}
