package notification

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/pot-code/elearn-bff/internal/domain"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type countingGateway struct {
	count  int32
	unread int
}

func (s *countingGateway) FetchUnreadCount(ctx context.Context, viewerID string) (int, error) {
	atomic.AddInt32(&s.count, 1)
	return s.unread, nil
}

func (s *countingGateway) fetches() int {
	return int(atomic.LoadInt32(&s.count))
}

func (s *countingGateway) FetchEnrollments(ctx context.Context, viewerID string) ([]*domain.Enrollment, error) {
	return nil, nil
}

func (s *countingGateway) FetchCourse(ctx context.Context, viewerID, courseID string) (*domain.Course, error) {
	return nil, nil
}

func (s *countingGateway) FetchAssignments(ctx context.Context, viewerID, courseID string) ([]*domain.Assignment, error) {
	return nil, nil
}

func (s *countingGateway) FetchQuizzes(ctx context.Context, viewerID, courseID string) ([]*domain.Quiz, error) {
	return nil, nil
}

func (s *countingGateway) PushProgress(ctx context.Context, viewerID string, update *domain.ProgressUpdate) error {
	return nil
}

func TestPoller_ImmediateFetchOnStart(t *testing.T) {
	gateway := &countingGateway{unread: 7}
	p := NewPoller(gateway, nil, "u1", time.Hour, zap.NewNop())

	p.Start()
	defer p.Stop()
	time.Sleep(50 * time.Millisecond)

	assert.Equal(t, 1, gateway.fetches())
	assert.Equal(t, domain.NotificationBadge{UnreadCount: 7}, p.Badge())
}

func TestPoller_FetchesOncePerInterval(t *testing.T) {
	gateway := &countingGateway{}
	p := NewPoller(gateway, nil, "u1", 50*time.Millisecond, zap.NewNop())

	p.Start()
	defer p.Stop()
	// covers the immediate fetch plus ticks at 50/100/150ms
	time.Sleep(170 * time.Millisecond)

	assert.Equal(t, 4, gateway.fetches())
}

func TestPoller_StopCancelsTimer(t *testing.T) {
	gateway := &countingGateway{}
	p := NewPoller(gateway, nil, "u1", 30*time.Millisecond, zap.NewNop())

	p.Start()
	time.Sleep(10 * time.Millisecond)
	p.Stop()
	settled := gateway.fetches()

	time.Sleep(100 * time.Millisecond)
	assert.Equal(t, settled, gateway.fetches())
}

func TestPoller_StartIsIdempotent(t *testing.T) {
	gateway := &countingGateway{}
	p := NewPoller(gateway, nil, "u1", time.Hour, zap.NewNop())

	p.Start()
	p.Start()
	defer p.Stop()
	time.Sleep(50 * time.Millisecond)

	assert.Equal(t, 1, gateway.fetches())
}

type stragglingGateway struct {
	countingGateway
}

func (s *stragglingGateway) FetchUnreadCount(ctx context.Context, viewerID string) (int, error) {
	// complete only once torn down, like a slow response racing Stop
	<-ctx.Done()
	return 42, nil
}

func TestPoller_InFlightCompletionAfterStopIsDiscarded(t *testing.T) {
	p := NewPoller(&stragglingGateway{}, nil, "u1", time.Hour, zap.NewNop())

	p.Start()
	time.Sleep(10 * time.Millisecond)
	p.Stop()

	assert.Equal(t, domain.NotificationBadge{}, p.Badge())
}

func TestPoller_StopWithoutStart(t *testing.T) {
	p := NewPoller(&countingGateway{}, nil, "u1", time.Hour, zap.NewNop())
	p.Stop() // must not panic or block
}
