package controllers

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/fsdevblog/urlmapper/internal/config"
	"github.com/fsdevblog/urlmapper/internal/controllers/middlewares"
)

// RouterParams зависимости роутера.
type RouterParams struct {
	MappingService MappingStore
	Resolver       Resolver
	PingService    ConnectionChecker
	AppConf        config.Config
	Logger         *zap.Logger
}

// SetupRouter создает gin роутер со всеми маршрутами сервиса.
//
// Параметры:
//   - params: зависимости роутера
//
// Возвращает:
//   - *gin.Engine: настроенный роутер
func SetupRouter(params RouterParams) *gin.Engine {
	r := gin.New()
	r.Use(middlewares.RequestIDMiddleware())
	r.Use(middlewares.LoggerMiddleware(params.Logger))
	r.Use(gin.Recovery())
	r.Use(middlewares.CORSMiddleware())
	r.Use(middlewares.GzipMiddleware())

	homeController := NewHomeController(params.AppConf.ClientDefaultPort)
	mappingsController := NewMappingsController(params.MappingService, params.AppConf.BaseURL)
	redirectController := NewRedirectController(params.Resolver, params.AppConf.BaseURL)

	r.GET("/", homeController.Index)

	if params.PingService != nil {
		pingController := NewPingController(params.PingService)
		r.GET("/ping", pingController.Ping)
	}

	shortener := r.Group("/url-shortener")
	shortener.GET("", mappingsController.List)
	shortener.POST("", mappingsController.Create)
	shortener.DELETE("/:id", mappingsController.Delete)

	api := r.Group("/api")
	api.POST("/shorten", mappingsController.Shorten)

	r.GET("/:slug", redirectController.Redirect)
	return r
}
