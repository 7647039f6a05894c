package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// PingResponse represents the response for the ping endpoint
type PingResponse struct {
	Message  string `json:"message" example:"pong"` // Response message
	Sessions int    `json:"sessions" example:"3"`   // Live widget sessions
}

// handlePing godoc
// @Summary Ping health check
// @Description Check if the API is running and report how many widget sessions are live
// @Tags health
// @Produce json
// @Success 200 {object} PingResponse
// @Router /ping [get]
func (app *App) handlePing(c *gin.Context) {
	c.JSON(http.StatusOK, PingResponse{
		Message:  "pong",
		Sessions: app.widgets.Len(),
	})
}
