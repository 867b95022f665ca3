package queue

import (
	"context"
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/arleti/materials-system/internal/core/domain"
)

type collectingService struct {
	mu     sync.Mutex
	events []domain.AuditEvent
	done   chan struct{}
	want   int
}

func newCollectingService(want int) *collectingService {
	return &collectingService{done: make(chan struct{}), want: want}
}

func (s *collectingService) Process(_ context.Context, event domain.AuditEvent) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, event)
	if len(s.events) == s.want {
		close(s.done)
	}
	return nil
}

func (s *collectingService) wait(t *testing.T) []domain.AuditEvent {
	t.Helper()
	select {
	case <-s.done:
	case <-time.After(2 * time.Second):
		t.Fatalf("timed out waiting for %d events", s.want)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.AuditEvent, len(s.events))
	copy(out, s.events)
	return out
}

func TestDispatcher_ProcessesAllEvents(t *testing.T) {
	const total = 40
	svc := newCollectingService(total)
	d := NewDispatcher(4, svc, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	d.Start(ctx)

	for i := 0; i < total; i++ {
		d.Record(domain.AuditEvent{
			AccountID: "acc-" + strconv.Itoa(i),
			Action:    domain.AuditRegistered,
			Timestamp: time.Now().UTC(),
		})
	}

	if got := len(svc.wait(t)); got != total {
		t.Errorf("processed %d events, want %d", got, total)
	}
}

func TestDispatcher_PerAccountOrdering(t *testing.T) {
	const perAccount = 20
	svc := newCollectingService(perAccount * 2)
	d := NewDispatcher(4, svc, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	d.Start(ctx)

	// Interleave two accounts; each account's events must keep their order.
	for i := 0; i < perAccount; i++ {
		d.Record(domain.AuditEvent{AccountID: "acc-a", Email: strconv.Itoa(i)})
		d.Record(domain.AuditEvent{AccountID: "acc-b", Email: strconv.Itoa(i)})
	}

	events := svc.wait(t)
	seen := map[string]int{}
	for _, e := range events {
		seq, err := strconv.Atoi(e.Email)
		if err != nil {
			t.Fatalf("bad sequence marker %q", e.Email)
		}
		if seq != seen[e.AccountID] {
			t.Fatalf("account %s: got event %d, want %d", e.AccountID, seq, seen[e.AccountID])
		}
		seen[e.AccountID]++
	}
}

func TestDispatcher_ShardIsDeterministic(t *testing.T) {
	d := NewDispatcher(8, nil, zerolog.Nop())

	for _, id := range []string{"acc-1", "acc-2", "507f1f77bcf86cd799439011"} {
		first := d.shardIndex(id)
		for i := 0; i < 10; i++ {
			if got := d.shardIndex(id); got != first {
				t.Fatalf("shardIndex(%q) unstable: %d vs %d", id, got, first)
			}
		}
		if first < 0 || first >= 8 {
			t.Fatalf("shardIndex(%q) = %d, out of range", id, first)
		}
	}
}

func TestDispatcher_DefaultWorkerCount(t *testing.T) {
	d := NewDispatcher(0, nil, zerolog.Nop())
	if len(d.workers) != defaultWorkers {
		t.Errorf("workers = %d, want %d", len(d.workers), defaultWorkers)
	}
}
