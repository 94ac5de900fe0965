package session

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/scribelabs/marketscribe/domain"
	"github.com/scribelabs/marketscribe/store"
)

// newTestManager returns a manager over an in-memory store whose clock the
// test controls.
func newTestManager(t *testing.T, ttl time.Duration) (*Manager, *time.Time) {
	t.Helper()

	st := store.NewMemoryStore()
	t.Cleanup(func() { st.Close() })

	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	m := New(st, ttl)
	m.now = func() time.Time { return now }
	return m, &now
}

func seedMessages() []domain.Message {
	return []domain.Message{
		{Role: domain.RoleSystem, Content: "system prompt"},
		{Role: domain.RoleUser, Content: "write an article"},
		{Role: domain.RoleAssistant, Content: "the article"},
	}
}

func TestCreateAndGet(t *testing.T) {
	ctx := context.Background()
	m, _ := newTestManager(t, time.Hour)

	id, err := m.Create(ctx, "gpt-4o-mini", seedMessages())
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if id == "" {
		t.Fatalf("Create returned an empty id")
	}

	sess, err := m.Get(ctx, id)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if sess.Model != "gpt-4o-mini" {
		t.Fatalf("unexpected model: %s", sess.Model)
	}
	if len(sess.Messages) != 3 {
		t.Fatalf("got %d messages, want 3", len(sess.Messages))
	}
	if sess.Messages[0].Role != domain.RoleSystem || sess.Messages[2].Role != domain.RoleAssistant {
		t.Fatalf("messages out of order: %+v", sess.Messages)
	}
}

func TestCreateAssignsDistinctIDs(t *testing.T) {
	ctx := context.Background()
	m, _ := newTestManager(t, time.Hour)

	a, err := m.Create(ctx, "gpt-4o-mini", seedMessages())
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	b, err := m.Create(ctx, "gpt-4o-mini", seedMessages())
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if a == b {
		t.Fatalf("two sessions got the same id: %s", a)
	}
}

func TestGetUnknownID(t *testing.T) {
	ctx := context.Background()
	m, _ := newTestManager(t, time.Hour)

	_, err := m.Get(ctx, "b4b5cf37-0000-0000-0000-000000000000")
	if !errors.Is(err, domain.ErrSessionNotFound) {
		t.Fatalf("expected ErrSessionNotFound, got %v", err)
	}
}

func TestGetExpiredID(t *testing.T) {
	ctx := context.Background()
	m, now := newTestManager(t, time.Hour)

	id, err := m.Create(ctx, "gpt-4o-mini", seedMessages())
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	// One step past the TTL. Expired and unknown must be the same error.
	*now = now.Add(time.Hour + time.Second)

	_, err = m.Get(ctx, id)
	if !errors.Is(err, domain.ErrSessionNotFound) {
		t.Fatalf("expected ErrSessionNotFound for expired session, got %v", err)
	}
}

func TestAppendExtendsHistoryInOrder(t *testing.T) {
	ctx := context.Background()
	m, _ := newTestManager(t, time.Hour)

	id, err := m.Create(ctx, "gpt-4o-mini", seedMessages())
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	turn := []domain.Message{
		{Role: domain.RoleUser, Content: "make it shorter"},
		{Role: domain.RoleAssistant, Content: "the shorter article"},
	}
	sess, err := m.Append(ctx, id, "", turn)
	if err != nil {
		t.Fatalf("Append failed: %v", err)
	}

	if len(sess.Messages) != 5 {
		t.Fatalf("got %d messages, want 5", len(sess.Messages))
	}
	if sess.Messages[3].Content != "make it shorter" || sess.Messages[4].Content != "the shorter article" {
		t.Fatalf("appended turn out of order: %+v", sess.Messages[3:])
	}
	if sess.Model != "gpt-4o-mini" {
		t.Fatalf("empty model override changed the stored model: %s", sess.Model)
	}
}

func TestAppendOverridesModel(t *testing.T) {
	ctx := context.Background()
	m, _ := newTestManager(t, time.Hour)

	id, err := m.Create(ctx, "gpt-4o-mini", seedMessages())
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	sess, err := m.Append(ctx, id, "gpt-4o", []domain.Message{{Role: domain.RoleUser, Content: "hi"}})
	if err != nil {
		t.Fatalf("Append failed: %v", err)
	}
	if sess.Model != "gpt-4o" {
		t.Fatalf("model override not stored: %s", sess.Model)
	}
}

func TestAppendExpiredID(t *testing.T) {
	ctx := context.Background()
	m, now := newTestManager(t, time.Hour)

	id, err := m.Create(ctx, "gpt-4o-mini", seedMessages())
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	*now = now.Add(2 * time.Hour)

	_, err = m.Append(ctx, id, "", []domain.Message{{Role: domain.RoleUser, Content: "hi"}})
	if !errors.Is(err, domain.ErrSessionNotFound) {
		t.Fatalf("expected ErrSessionNotFound for expired session, got %v", err)
	}
}

func TestAppendSlidesExpiry(t *testing.T) {
	ctx := context.Background()
	m, now := newTestManager(t, time.Hour)

	id, err := m.Create(ctx, "gpt-4o-mini", seedMessages())
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	// 50 minutes in, still live; the append refreshes the window.
	*now = now.Add(50 * time.Minute)
	if _, err := m.Append(ctx, id, "", []domain.Message{{Role: domain.RoleUser, Content: "hi"}}); err != nil {
		t.Fatalf("Append failed: %v", err)
	}

	// 40 more minutes: past the original deadline, within the refreshed one.
	*now = now.Add(40 * time.Minute)
	if _, err := m.Get(ctx, id); err != nil {
		t.Fatalf("session expired despite the refresh: %v", err)
	}

	// And well past the refreshed deadline it is gone.
	*now = now.Add(2 * time.Hour)
	if _, err := m.Get(ctx, id); !errors.Is(err, domain.ErrSessionNotFound) {
		t.Fatalf("expected ErrSessionNotFound, got %v", err)
	}
}

func TestDefaultTTL(t *testing.T) {
	st := store.NewMemoryStore()
	defer st.Close()

	m := New(st, 0)
	if m.ttl != DefaultTTL {
		t.Fatalf("zero ttl did not fall back to DefaultTTL: %v", m.ttl)
	}
}
