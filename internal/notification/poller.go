package notification

import (
	"context"
	"strconv"
	"sync"
	"time"

	"github.com/pot-code/elearn-bff/internal/domain"
	"go.uber.org/zap"
)

// BadgeCache write-through cache of the last resolved badge value, keyed
// per viewer. Satisfied by driver.KeyValueDB; may be nil.
type BadgeCache interface {
	SetEX(key string, value string, expiration time.Duration) error
}

// BadgeCacheKey cache key for a viewer's badge value
func BadgeCacheKey(viewerID string) string {
	return "notification:badge:" + viewerID
}

// Poller keeps the unread-count badge of one viewer in sync with the remote
// authority. Lifecycle is an explicit Start/Stop handle: the timer lives
// exactly as long as the handle, not as long as any UI mount.
type Poller struct {
	gateway  domain.AuthorityGateway
	cache    BadgeCache
	viewerID string
	interval time.Duration
	logger   *zap.Logger

	mu     sync.Mutex
	badge  domain.NotificationBadge
	cancel context.CancelFunc
	done   chan struct{}
}

// NewPoller create a poller for one viewer; cache may be nil
func NewPoller(gateway domain.AuthorityGateway, cache BadgeCache, viewerID string, interval time.Duration, logger *zap.Logger) *Poller {
	return &Poller{
		gateway:  gateway,
		cache:    cache,
		viewerID: viewerID,
		interval: interval,
		logger:   logger,
	}
}

// Start fetch the unread count immediately, then on every interval until
// Stop. A tick never waits for an in-flight fetch; whichever fetch resolves
// last wins the displayed value, request order implies nothing.
func (p *Poller) Start() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.cancel != nil {
		return
	}
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	p.cancel = cancel
	p.done = done
	go p.loop(ctx, done)
}

// Stop cancel the timer; no fetch is issued after Stop returns and pending
// completions are discarded
func (p *Poller) Stop() {
	p.mu.Lock()
	cancel, done := p.cancel, p.done
	p.cancel = nil
	p.done = nil
	p.mu.Unlock()
	if cancel == nil {
		return
	}
	cancel()
	<-done
	// lock barrier: a completion that passed the pre-cancel check finishes
	// its write before Stop returns, anything later sees the canceled context
	p.mu.Lock()
	p.mu.Unlock()
}

// Badge the latest resolved badge value
func (p *Poller) Badge() domain.NotificationBadge {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.badge
}

func (p *Poller) loop(ctx context.Context, done chan struct{}) {
	defer close(done)
	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	p.fetch(ctx)
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			go p.fetch(ctx)
		}
	}
}

func (p *Poller) fetch(ctx context.Context) {
	count, err := p.gateway.FetchUnreadCount(ctx, p.viewerID)
	if err != nil {
		p.logger.Debug("Unread count fetch failed", zap.Error(err))
		return
	}
	p.mu.Lock()
	canceled := ctx.Err() != nil
	if !canceled {
		p.badge = domain.NotificationBadge{UnreadCount: count}
	}
	p.mu.Unlock()
	if canceled {
		// torn down while in flight, drop the continuation
		return
	}

	if p.cache != nil {
		if err := p.cache.SetEX(BadgeCacheKey(p.viewerID), strconv.Itoa(count), 2*p.interval); err != nil {
			p.logger.Debug("Badge cache write failed", zap.Error(err))
		}
	}
}
