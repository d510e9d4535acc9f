package middlewares

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// CORSMiddleware разрешает кросс-доменные запросы браузерного клиента с любого источника.
// Preflight запросы OPTIONS завершаются ответом 204.
func CORSMiddleware() gin.HandlerFunc {
	return cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodOptions},
		AllowHeaders:    []string{"Content-Type", "Content-Encoding", "Accept-Encoding", RequestIDHeader},
		ExposeHeaders:   []string{RequestIDHeader},
	})
}
