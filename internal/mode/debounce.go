package mode

import (
	"time"

	"golang.org/x/time/rate"
)

// debouncer accepts at most one event per interval, measured on a caller
// supplied clock in seconds.
type debouncer struct {
	limiter *rate.Limiter
}

func newDebouncer(interval float64) *debouncer {
	return &debouncer{
		limiter: rate.NewLimiter(rate.Every(secondsToDuration(interval)), 1),
	}
}

// allow reports whether an event at now is accepted and, if so, starts a new window
func (d *debouncer) allow(now float64) bool {
	return d.limiter.AllowN(clockTime(now), 1)
}

func secondsToDuration(s float64) time.Duration {
	return time.Duration(s * float64(time.Second))
}

var epoch = time.Unix(0, 0)

func clockTime(now float64) time.Time {
	return epoch.Add(secondsToDuration(now))
}
