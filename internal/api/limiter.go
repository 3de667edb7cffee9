package api

import (
	"net"
	"net/http"
	"strconv"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"

	"github.com/fruitsalade/fruitsalade/webutil/internal/logging"
	"github.com/fruitsalade/fruitsalade/webutil/pkg/timing"
)

const (
	// maxClients triggers a sweep of idle throttlers.
	maxClients = 4096
	// reportQuiet is how long drops must stop before they are logged.
	reportQuiet = 5 * time.Second
)

// ClientLimiter lets each client through once per interval.
type ClientLimiter struct {
	interval time.Duration
	opts     []timing.Option

	mu      sync.Mutex
	clients map[string]*timing.Throttler[struct{}]

	dropped atomic.Int64
	report  *timing.Debouncer[string]
}

// NewClientLimiter creates a limiter. interval=0 means unlimited.
func NewClientLimiter(interval time.Duration, opts ...timing.Option) *ClientLimiter {
	l := &ClientLimiter{
		interval: interval,
		opts:     opts,
		clients:  make(map[string]*timing.Throttler[struct{}]),
	}
	l.report = timing.Debounce(l.logDropped, reportQuiet, opts...)
	return l
}

// Allow reports whether a request from client may proceed.
func (l *ClientLimiter) Allow(client string) bool {
	if l.interval <= 0 {
		return true
	}

	l.mu.Lock()
	th, ok := l.clients[client]
	if !ok {
		if len(l.clients) >= maxClients {
			l.sweep()
		}
		th = timing.Throttle(func(struct{}) {}, l.interval, l.opts...)
		l.clients[client] = th
	}
	l.mu.Unlock()

	if th.Call(struct{}{}) {
		return true
	}
	l.dropped.Add(1)
	l.report.Call(client)
	return false
}

// RetryAfter returns the whole seconds a throttled client should wait.
func (l *ClientLimiter) RetryAfter() int {
	secs := int(l.interval / time.Second)
	if l.interval%time.Second != 0 {
		secs++
	}
	return secs
}

// sweep must be called with l.mu held.
func (l *ClientLimiter) sweep() {
	for client, th := range l.clients {
		if !th.Cooling() {
			delete(l.clients, client)
		}
	}
}

func (l *ClientLimiter) logDropped(lastClient string) {
	logging.Warn("requests throttled",
		zap.Int64("dropped", l.dropped.Swap(0)),
		zap.String("last_client", lastClient),
	)
}

// Limit wraps next so that throttled clients get 429.
func (l *ClientLimiter) Limit(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !l.Allow(clientKey(r)) {
			w.Header().Set("Retry-After", strconv.Itoa(l.RetryAfter()))
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusTooManyRequests)
			w.Write([]byte(`{"error":"too many requests"}` + "\n"))
			return
		}
		next(w, r)
	}
}

func clientKey(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
