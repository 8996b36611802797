package routes

import (
	"net/http"

	"healthscan/controllers"
	"healthscan/middlewares"

	"github.com/gin-gonic/gin"
	"github.com/rs/cors"
)

type Controllers struct {
	Health *controllers.HealthController
	Scan   *controllers.ScanController
	Diet   *controllers.DietController
	Chat   *controllers.ChatController
	ChatWS *controllers.ChatWSController
}

func SetupRouter(ctl Controllers) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), middlewares.RequestLogger())

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	health := r.Group("/health")
	{
		health.POST("/report", ctl.Health.Report)
		health.POST("/logs", ctl.Health.Record)
		health.GET("/logs", ctl.Health.History)
	}

	scan := r.Group("/scan")
	{
		scan.POST("", ctl.Scan.Scan)
		scan.POST("/camera", ctl.Scan.Camera)
		scan.GET("/history", ctl.Scan.History)
	}

	diet := r.Group("/diet")
	{
		diet.GET("/options", ctl.Diet.Options)
		diet.POST("/plans", ctl.Diet.Generate)
	}

	chat := r.Group("/chat")
	{
		chat.POST("/sessions", ctl.Chat.StartSession)
		chat.GET("/sessions/:id/messages", ctl.Chat.Messages)
		chat.POST("/sessions/:id/messages", ctl.Chat.Send)
		chat.GET("/suggestions", ctl.Chat.Suggestions)
		chat.GET("/ws", ctl.ChatWS.Serve)
	}

	return r
}

// WithCORS lets the single-page app call the API from its own origin.
func WithCORS(h http.Handler, origins []string) http.Handler {
	return cors.New(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type", "Authorization"},
		MaxAge:         600,
	}).Handler(h)
}

// OriginAllowed applies the CORS origin list to websocket upgrades.
func OriginAllowed(origins []string) func(string) bool {
	return func(origin string) bool {
		for _, o := range origins {
			if o == "*" || o == origin {
				return true
			}
		}
		return false
	}
}
