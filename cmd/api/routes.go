package main

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// registerRoutes sets up all API endpoints
func (app *App) registerRoutes() {
	// Health check endpoint
	app.router.GET("/ping", app.handlePing)

	// Weather lookup endpoints
	app.router.GET("/weather", app.handleGetWeatherByName)
	app.router.GET("/weather/coordinates", app.handleGetWeatherByCoordinates)

	// Widget session endpoints
	app.router.GET("/widget", app.handleGetWidget)
	app.router.POST("/widget/search", app.handleWidgetSearch)
	app.router.POST("/widget/location", app.handleWidgetLocation)
	app.router.POST("/widget/units", app.handleWidgetUnits)

	// Swagger documentation
	app.router.GET("/swagger/*any", func(c *gin.Context) {
		path := c.Param("any")
		if path == "/" {
			c.Redirect(301, "/swagger/index.html")
			return
		}
		ginSwagger.WrapHandler(swaggerFiles.Handler)(c)
	})
}
