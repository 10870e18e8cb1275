package notify

import (
	"sync"
	"testing"
)

// recorder collects notifications for assertions.
type recorder struct {
	mu   sync.Mutex
	seen []Notification
}

func (r *recorder) observe(n Notification) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seen = append(r.seen, n)
}

func (r *recorder) all() []Notification {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Notification, len(r.seen))
	copy(out, r.seen)
	return out
}

func TestDispatcher_Notify(t *testing.T) {
	d := NewDispatcher()
	rec := &recorder{}
	d.Subscribe(rec.observe)

	d.Info("settings reloaded")
	d.Success("file fixed")
	d.Error("fix failed", "index.php")

	seen := rec.all()
	if len(seen) != 3 {
		t.Fatalf("expected 3 notifications, got %d", len(seen))
	}

	if seen[0].Level != LevelInfo || seen[0].Message != "settings reloaded" {
		t.Errorf("unexpected first notification %+v", seen[0])
	}

	if seen[1].Level != LevelSuccess {
		t.Errorf("expected success level, got %v", seen[1].Level)
	}

	if seen[2].Level != LevelError || seen[2].Detail != "index.php" {
		t.Errorf("unexpected error notification %+v", seen[2])
	}
}

func TestDispatcher_Unsubscribe(t *testing.T) {
	d := NewDispatcher()
	rec := &recorder{}
	sub := d.Subscribe(rec.observe)

	d.Info("one")
	sub.Unsubscribe()
	d.Info("two")

	if len(rec.all()) != 1 {
		t.Errorf("expected 1 notification after unsubscribe, got %d", len(rec.all()))
	}
}

func TestDispatcher_Close(t *testing.T) {
	d := NewDispatcher()
	rec := &recorder{}
	d.Subscribe(rec.observe)

	d.Close()
	d.Close() // idempotent
	d.Info("dropped")

	if len(rec.all()) != 0 {
		t.Errorf("expected no notifications after close, got %d", len(rec.all()))
	}
}

func TestLevel_String(t *testing.T) {
	if LevelInfo.String() != "info" || LevelSuccess.String() != "success" || LevelError.String() != "error" {
		t.Error("unexpected level names")
	}

	if Level(99).String() != "unknown" {
		t.Errorf("expected 'unknown', got %q", Level(99).String())
	}
}
