package http

import (
	"context"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/SamriddhiRoy/Interview-Question-Generator/internal/adapters/signal"
	"github.com/SamriddhiRoy/Interview-Question-Generator/internal/attempts"
	"github.com/SamriddhiRoy/Interview-Question-Generator/internal/config"
	"github.com/SamriddhiRoy/Interview-Question-Generator/internal/core"
	"github.com/SamriddhiRoy/Interview-Question-Generator/internal/evaluator"
	"github.com/SamriddhiRoy/Interview-Question-Generator/internal/generator"
)

// API bundles the services the router exposes.
type API struct {
	Cfg      *config.Config
	Reg      *core.Registry
	Gen      *generator.Service
	Eval     *evaluator.Service
	Attempts attempts.Store
}

func genClientToken() string {
	idStr := uuid.NewString()
	return idStr
}

func ClientTokenMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, _ := c.Cookie("ct")
		if token == "" {
			token = genClientToken()
			c.SetCookie("ct", token, 3600*24*7, "/", "", false, true)
		}
		c.Set("client_token", token)
		c.Next()
	}
}

func SetupRouter(ctx context.Context, api *API) *gin.Engine {
	if api.Cfg.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	if api.Cfg.Mode == "debug" {
		r.Use(gin.Logger())
	}
	r.Use(gin.Recovery())

	store := cookie.NewStore([]byte(api.Cfg.Secret))
	r.Use(sessions.Sessions("InterviewSessions", store))
	r.Use(ClientTokenMiddleware())

	log.Info().Str("module", "adapters.http").Msg("router setup")

	ws := signal.NewWSController(api.Reg, api.Cfg)

	apiGroup := r.Group("/api")

	apiGroup.GET("/health", api.handleHealth)
	apiGroup.POST("/generate", api.handleGenerate)
	apiGroup.POST("/evaluate", api.handleEvaluate)
	apiGroup.POST("/attempts", api.handleSaveAttempt)
	apiGroup.GET("/attempts/:id", api.handleGetAttempt)
	apiGroup.GET("/rooms", api.handleRooms)

	apiGroup.GET("/ws", func(c *gin.Context) {
		log.Info().Str("module", "adapters.http").Str("ct", c.GetString("client_token")).Msg("ws endpoint hit")
		ws.HandleWS(ctx, c)
	})

	return r
}
