package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"healthscan/models"

	"github.com/redis/go-redis/v9"
)

// RedisSessionStore keeps each session as two keys: a JSON header and a list
// of JSON messages. Both share the session TTL.
type RedisSessionStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisSessionStore(addr string, ttl time.Duration) *RedisSessionStore {
	rdb := redis.NewClient(&redis.Options{
		Addr: addr,
	})
	return &RedisSessionStore{client: rdb, ttl: ttl}
}

func (r *RedisSessionStore) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}

func (r *RedisSessionStore) Close() error {
	return r.client.Close()
}

func headerKey(id string) string   { return "chat:session:" + id }
func messagesKey(id string) string { return "chat:session:" + id + ":messages" }

type sessionHeader struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"created_at"`
}

func (r *RedisSessionStore) Create(ctx context.Context, s *models.ChatSession) error {
	header, err := json.Marshal(sessionHeader{ID: s.ID, CreatedAt: s.CreatedAt})
	if err != nil {
		return err
	}
	msgs := make([]any, 0, len(s.Messages))
	for _, m := range s.Messages {
		b, err := json.Marshal(m)
		if err != nil {
			return err
		}
		msgs = append(msgs, b)
	}

	_, err = r.client.TxPipelined(ctx, func(p redis.Pipeliner) error {
		p.Set(ctx, headerKey(s.ID), header, r.ttl)
		p.Del(ctx, messagesKey(s.ID))
		if len(msgs) > 0 {
			p.RPush(ctx, messagesKey(s.ID), msgs...)
			p.Expire(ctx, messagesKey(s.ID), r.ttl)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("redis create session: %w", err)
	}
	return nil
}

func (r *RedisSessionStore) Get(ctx context.Context, id string) (*models.ChatSession, error) {
	raw, err := r.client.Get(ctx, headerKey(id)).Bytes()
	if err == redis.Nil {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("redis get session: %w", err)
	}
	var h sessionHeader
	if err := json.Unmarshal(raw, &h); err != nil {
		return nil, fmt.Errorf("decode session header: %w", err)
	}

	items, err := r.client.LRange(ctx, messagesKey(id), 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("redis get messages: %w", err)
	}
	s := &models.ChatSession{ID: h.ID, CreatedAt: h.CreatedAt, Messages: make([]models.ChatMessage, 0, len(items))}
	for _, it := range items {
		var m models.ChatMessage
		if err := json.Unmarshal([]byte(it), &m); err != nil {
			return nil, fmt.Errorf("decode chat message: %w", err)
		}
		s.Messages = append(s.Messages, m)
	}
	return s, nil
}

func (r *RedisSessionStore) Append(ctx context.Context, id string, msg models.ChatMessage) error {
	n, err := r.client.Exists(ctx, headerKey(id)).Result()
	if err != nil {
		return fmt.Errorf("redis check session: %w", err)
	}
	if n == 0 {
		return ErrSessionNotFound
	}
	b, err := json.Marshal(msg)
	if err != nil {
		return err
	}
	_, err = r.client.TxPipelined(ctx, func(p redis.Pipeliner) error {
		p.RPush(ctx, messagesKey(id), b)
		p.Expire(ctx, messagesKey(id), r.ttl)
		p.Expire(ctx, headerKey(id), r.ttl)
		return nil
	})
	if err != nil {
		return fmt.Errorf("redis append message: %w", err)
	}
	return nil
}
