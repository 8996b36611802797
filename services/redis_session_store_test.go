package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"healthscan/models"

	"github.com/alicebob/miniredis/v2"
)

func newTestRedisStore(t *testing.T, ttl time.Duration) (*RedisSessionStore, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	store := NewRedisSessionStore(mr.Addr(), ttl)
	t.Cleanup(func() { _ = store.Close() })
	return store, mr
}

func TestRedisSessionStore_KeepsAppendOrder(t *testing.T) {
	store, _ := newTestRedisStore(t, time.Hour)
	ctx := context.Background()
	created := time.Date(2025, 1, 1, 9, 0, 0, 0, time.UTC)

	err := store.Create(ctx, &models.ChatSession{
		ID:        "s1",
		CreatedAt: created,
		Messages:  []models.ChatMessage{{ID: "1", Text: "Hello", Sender: models.SenderBot}},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, id := range []string{"2", "3"} {
		if err := store.Append(ctx, "s1", models.ChatMessage{ID: id, Sender: models.SenderUser}); err != nil {
			t.Fatalf("append %s: %v", id, err)
		}
	}

	s, err := store.Get(ctx, "s1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !s.CreatedAt.Equal(created) {
		t.Errorf("expected created at %v, got %v", created, s.CreatedAt)
	}
	if len(s.Messages) != 3 {
		t.Fatalf("expected 3 messages, got %d", len(s.Messages))
	}
	for i, want := range []string{"1", "2", "3"} {
		if s.Messages[i].ID != want {
			t.Errorf("message %d: expected id %s, got %s", i, want, s.Messages[i].ID)
		}
	}
}

func TestRedisSessionStore_UnknownSession(t *testing.T) {
	store, _ := newTestRedisStore(t, time.Hour)
	ctx := context.Background()

	if _, err := store.Get(ctx, "missing"); !errors.Is(err, ErrSessionNotFound) {
		t.Errorf("expected ErrSessionNotFound from Get, got %v", err)
	}
	if err := store.Append(ctx, "missing", models.ChatMessage{ID: "1"}); !errors.Is(err, ErrSessionNotFound) {
		t.Errorf("expected ErrSessionNotFound from Append, got %v", err)
	}
}

func TestRedisSessionStore_Expiry(t *testing.T) {
	store, mr := newTestRedisStore(t, time.Minute)
	ctx := context.Background()

	_ = store.Create(ctx, &models.ChatSession{ID: "s1", Messages: []models.ChatMessage{{ID: "1"}}})
	mr.FastForward(time.Minute)

	if _, err := store.Get(ctx, "s1"); !errors.Is(err, ErrSessionNotFound) {
		t.Errorf("expected expired session from Get, got %v", err)
	}
	if err := store.Append(ctx, "s1", models.ChatMessage{ID: "2"}); !errors.Is(err, ErrSessionNotFound) {
		t.Errorf("expected expired session from Append, got %v", err)
	}
}

func TestRedisSessionStore_AppendRefreshesTTL(t *testing.T) {
	store, mr := newTestRedisStore(t, time.Minute)
	ctx := context.Background()

	_ = store.Create(ctx, &models.ChatSession{ID: "s1", Messages: []models.ChatMessage{{ID: "1"}}})
	mr.FastForward(40 * time.Second)

	if err := store.Append(ctx, "s1", models.ChatMessage{ID: "2"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := mr.TTL(headerKey("s1")); got != time.Minute {
		t.Errorf("expected header ttl reset to 1m, got %v", got)
	}
	if got := mr.TTL(messagesKey("s1")); got != time.Minute {
		t.Errorf("expected messages ttl reset to 1m, got %v", got)
	}

	// past the original deadline but inside the refreshed one
	mr.FastForward(40 * time.Second)
	s, err := store.Get(ctx, "s1")
	if err != nil {
		t.Fatalf("expected session to be alive, got %v", err)
	}
	if len(s.Messages) != 2 {
		t.Errorf("expected 2 messages, got %d", len(s.Messages))
	}
}

func TestRedisSessionStore_EmptyTranscript(t *testing.T) {
	store, mr := newTestRedisStore(t, time.Minute)
	ctx := context.Background()

	if err := store.Create(ctx, &models.ChatSession{ID: "s1"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	s, err := store.Get(ctx, "s1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(s.Messages) != 0 {
		t.Errorf("expected empty transcript, got %d messages", len(s.Messages))
	}

	if err := store.Append(ctx, "s1", models.ChatMessage{ID: "1"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := mr.TTL(messagesKey("s1")); got != time.Minute {
		t.Errorf("expected messages key to carry the session ttl, got %v", got)
	}
	s, _ = store.Get(ctx, "s1")
	if len(s.Messages) != 1 || s.Messages[0].ID != "1" {
		t.Errorf("unexpected transcript %+v", s.Messages)
	}
}
