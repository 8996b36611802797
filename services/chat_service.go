package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"healthscan/catalog"
	"healthscan/models"

	"github.com/google/uuid"
)

var ErrEmptyMessage = errors.New("message text is required")

// responseRules are tested in order; the first rule with a matching keyword
// wins, so "diet" beats "calorie" when a question mentions both.
var responseRules = []struct {
	key      string
	keywords []string
}{
	{catalog.ResponseIngredients, []string{"ingredient", "harmful"}},
	{catalog.ResponseDiet, []string{"diet", "weight loss"}},
	{catalog.ResponseCalories, []string{"calorie"}},
	{catalog.ResponseSLS, []string{"sodium lauryl sulfate", "sls"}},
	{catalog.ResponseTitaniumDioxide, []string{"titanium dioxide"}},
}

// SelectResponseKey returns the catalog key of the canned answer for input.
func SelectResponseKey(input string) string {
	lower := strings.ToLower(input)
	for _, r := range responseRules {
		for _, kw := range r.keywords {
			if strings.Contains(lower, kw) {
				return r.key
			}
		}
	}
	return catalog.ResponseDefault
}

type ChatService struct {
	store SessionStore
	cat   *catalog.Catalog
	sim   Simulator
	now   func() time.Time
}

func NewChatService(store SessionStore, cat *catalog.Catalog, sim Simulator) *ChatService {
	return &ChatService{store: store, cat: cat, sim: sim, now: time.Now}
}

// SelectResponse is the keyword selector over the catalog's responses.
func (s *ChatService) SelectResponse(input string) string {
	return s.cat.Response(SelectResponseKey(input))
}

func (s *ChatService) Suggestions() []string {
	return s.cat.Suggestions()
}

// StartSession opens a transcript seeded with the assistant greeting.
func (s *ChatService) StartSession(ctx context.Context) (*models.ChatSession, error) {
	now := s.now()
	session := &models.ChatSession{
		ID:        uuid.NewString(),
		CreatedAt: now,
		Messages:  []models.ChatMessage{s.message(s.cat.Greeting, models.SenderBot, now)},
	}
	if err := s.store.Create(ctx, session); err != nil {
		return nil, fmt.Errorf("create chat session: %w", err)
	}
	return session, nil
}

func (s *ChatService) Messages(ctx context.Context, sessionID string) ([]models.ChatMessage, error) {
	session, err := s.store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return session.Messages, nil
}

// PostUserMessage appends the user's text to the transcript.
func (s *ChatService) PostUserMessage(ctx context.Context, sessionID, text string) (models.ChatMessage, error) {
	if strings.TrimSpace(text) == "" {
		return models.ChatMessage{}, ErrEmptyMessage
	}
	msg := s.message(text, models.SenderUser, s.now())
	if err := s.store.Append(ctx, sessionID, msg); err != nil {
		return models.ChatMessage{}, err
	}
	return msg, nil
}

// Respond waits out the simulated thinking time, then appends and returns the
// assistant's answer to text.
func (s *ChatService) Respond(ctx context.Context, sessionID, text string) (models.ChatMessage, error) {
	if err := s.sim.Wait(ctx); err != nil {
		return models.ChatMessage{}, err
	}
	msg := s.message(s.SelectResponse(text), models.SenderBot, s.now())
	if err := s.store.Append(ctx, sessionID, msg); err != nil {
		return models.ChatMessage{}, err
	}
	return msg, nil
}

// Send posts text and waits for the reply.
func (s *ChatService) Send(ctx context.Context, sessionID, text string) (user, bot models.ChatMessage, err error) {
	user, err = s.PostUserMessage(ctx, sessionID, text)
	if err != nil {
		return user, bot, err
	}
	bot, err = s.Respond(ctx, sessionID, text)
	return user, bot, err
}

func (s *ChatService) message(text string, sender models.Sender, at time.Time) models.ChatMessage {
	return models.ChatMessage{
		ID:        uuid.NewString(),
		Text:      text,
		Sender:    sender,
		Timestamp: at,
	}
}
