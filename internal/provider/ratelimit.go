package provider

import (
	"context"
	"time"

	"golang.org/x/time/rate"
)

// RateLimited throttles a Completer to a number of requests per minute.
type RateLimited struct {
	next    Completer
	limiter *rate.Limiter
}

// NewRateLimited wraps next. A non-positive perMinute returns next unchanged.
func NewRateLimited(next Completer, perMinute int) Completer {
	if perMinute <= 0 {
		return next
	}
	return &RateLimited{
		next:    next,
		limiter: rate.NewLimiter(rate.Every(time.Minute/time.Duration(perMinute)), 1),
	}
}

// Complete waits for a token, then delegates.
func (r *RateLimited) Complete(ctx context.Context, messages []Message, params Params) (string, error) {
	if err := r.limiter.Wait(ctx); err != nil {
		return "", err
	}
	return r.next.Complete(ctx, messages, params)
}
