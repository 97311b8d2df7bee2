package jobs

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	dto "github.com/salmanakber/mayaopps-sub001/internal/data_models"
)

type mockCloner struct {
	mu    sync.Mutex
	calls []string
	nows  []time.Time
	fail  map[string]bool
}

func (m *mockCloner) CloneNextWeek(ctx context.Context, companyID string, now time.Time) (*dto.CloneWeekResponse, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.calls = append(m.calls, companyID)
	m.nows = append(m.nows, now)
	if m.fail[companyID] {
		return nil, errors.New("boom")
	}
	return &dto.CloneWeekResponse{ClonedCount: 2}, nil
}

func TestWeeklyCloneJob_Run(t *testing.T) {
	cloner := &mockCloner{fail: map[string]bool{"c2": true}}
	fixed := time.Date(2025, 6, 15, 18, 0, 0, 0, time.UTC)

	job := NewWeeklyCloneJob(cloner, "0 0 18 * * SUN", []string{"c1", "c2", "c3"})
	job.now = func() time.Time { return fixed }

	total := job.Run(context.Background())
	if total != 4 {
		t.Fatalf("expected 4 cloned tasks, got %d", total)
	}
	if len(cloner.calls) != 3 || cloner.calls[2] != "c3" {
		t.Fatalf("expected every company to be attempted, got %v", cloner.calls)
	}
	for _, now := range cloner.nows {
		if !now.Equal(fixed) {
			t.Errorf("expected clock %s, got %s", fixed, now)
		}
	}
}

func TestWeeklyCloneJob_StartRejectsBadSchedule(t *testing.T) {
	job := NewWeeklyCloneJob(&mockCloner{}, "every sunday", []string{"c1"})
	if err := job.Start(); err == nil {
		t.Fatal("expected schedule error")
	}
}

func TestWeeklyCloneJob_StartStop(t *testing.T) {
	job := NewWeeklyCloneJob(&mockCloner{}, "0 0 18 * * SUN", []string{"c1"})
	if err := job.Start(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(job.cronScheduler.Entries()) != 1 {
		t.Fatalf("expected one scheduled entry")
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	job.Stop(ctx)
}
