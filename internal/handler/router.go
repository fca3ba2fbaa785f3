package handler

import (
	"net/http"
	"slices"
	"time"

	"ker-agenda/config"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

type RouteRegistrar interface {
	RegisterRoutes(r *gin.Engine)
}

// NewRouter 建立 gin engine 並掛上共用 middleware 與各 handler 的路由
func NewRouter(cfg config.ServerConfig, registrars ...RouteRegistrar) *gin.Engine {
	switch cfg.Mode {
	case gin.DebugMode, gin.ReleaseMode, gin.TestMode:
		gin.SetMode(cfg.Mode)
	default:
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery(), RequestID(), RequestLogger(), cors.New(corsConfig(cfg.AllowOrigins)))

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})
	for _, reg := range registrars {
		reg.RegisterRoutes(r)
	}
	return r
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.Config{
		AllowMethods:  []string{http.MethodGet, http.MethodHead, http.MethodOptions},
		AllowHeaders:  []string{"Origin", "Content-Type", RequestIDHeader},
		ExposeHeaders: []string{RequestIDHeader},
		MaxAge:        12 * time.Hour,
	}
	// cors 不允許 "*" 與明確來源同時設定
	if len(origins) == 0 || slices.Contains(origins, "*") {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = origins
	}
	return cfg
}
