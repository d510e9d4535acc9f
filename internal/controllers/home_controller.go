package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// HomeController отдает приветствие и порт клиента по умолчанию.
type HomeController struct {
	clientDefaultPort int
}

func NewHomeController(clientDefaultPort int) *HomeController {
	return &HomeController{clientDefaultPort: clientDefaultPort}
}

// Index обрабатывает GET /.
func (c *HomeController) Index(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{
		"hello":               "world",
		"client-default-port": c.clientDefaultPort,
	})
}
