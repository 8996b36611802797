package controllers

import (
	"context"
	"net/http"
	"time"

	"healthscan/logger"
	"healthscan/services"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

const pingInterval = 25 * time.Second

type ChatWSController struct {
	Chat     *services.ChatService
	Hub      *services.ChatHub
	upgrader websocket.Upgrader
}

func NewChatWSController(cs *services.ChatService, hub *services.ChatHub, allowOrigin func(string) bool) *ChatWSController {
	return &ChatWSController{
		Chat: cs,
		Hub:  hub,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool {
				origin := r.Header.Get("Origin")
				return origin == "" || allowOrigin(origin)
			},
		},
	}
}

// GET /chat/ws?session=<id>
// Without a session id a new session is started and announced first.
func (wc *ChatWSController) Serve(c *gin.Context) {
	ctx := c.Request.Context()
	sessionID := c.Query("session")
	if sessionID != "" {
		if _, err := wc.Chat.Messages(ctx, sessionID); err != nil {
			abortWithError(c, err)
			return
		}
	}

	conn, err := wc.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		logger.Warn("chat websocket upgrade failed", zap.Error(err))
		return
	}

	if sessionID == "" {
		session, err := wc.Chat.StartSession(ctx)
		if err != nil {
			_ = conn.Close()
			logger.Error("chat session start failed", zap.Error(err))
			return
		}
		sessionID = session.ID
		cl := &services.WSClient{SessionID: sessionID, Conn: conn}
		if err := cl.Send(services.ChatEvent{Kind: services.EventSession, SessionID: sessionID, Session: session}); err != nil {
			_ = conn.Close()
			return
		}
		wc.run(sessionID, cl)
		return
	}

	wc.run(sessionID, &services.WSClient{SessionID: sessionID, Conn: conn})
}

// run serves one socket until it closes. Reads happen on their own goroutine
// so a close cancels a reply that is still being prepared.
func (wc *ChatWSController) run(sessionID string, cl *services.WSClient) {
	wc.Hub.Register(cl)
	ctx, cancel := context.WithCancel(context.Background())
	defer func() {
		cancel()
		wc.Hub.Unregister(cl)
	}()

	// ping to keep connections alive through some proxies
	go func() {
		t := time.NewTicker(pingInterval)
		defer t.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-t.C:
				if err := cl.Ping(); err != nil {
					cancel()
					return
				}
			}
		}
	}()

	// read loop ends on client close/error
	incoming := make(chan string)
	go func() {
		defer cancel()
		for {
			kind, data, err := cl.Conn.ReadMessage()
			if err != nil {
				return
			}
			if kind != websocket.TextMessage {
				continue
			}
			select {
			case incoming <- string(data):
			case <-ctx.Done():
				return
			}
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return
		case text := <-incoming:
			wc.handle(ctx, sessionID, cl, text)
		}
	}
}

func (wc *ChatWSController) handle(ctx context.Context, sessionID string, cl *services.WSClient, text string) {
	user, err := wc.Chat.PostUserMessage(ctx, sessionID, text)
	if err != nil {
		_ = cl.Send(services.ChatEvent{Kind: services.EventError, SessionID: sessionID, Error: err.Error()})
		return
	}
	wc.Hub.Broadcast(sessionID, services.ChatEvent{Kind: services.EventMessage, Message: &user})
	wc.Hub.Broadcast(sessionID, services.ChatEvent{Kind: services.EventTyping})

	bot, err := wc.Chat.Respond(ctx, sessionID, text)
	if err != nil {
		if ctx.Err() != nil {
			return // socket closed mid-reply
		}
		_ = cl.Send(services.ChatEvent{Kind: services.EventError, SessionID: sessionID, Error: err.Error()})
		return
	}
	wc.Hub.Broadcast(sessionID, services.ChatEvent{Kind: services.EventMessage, Message: &bot})
}
