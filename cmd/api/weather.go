package main

import (
	"errors"
	"net/http"

	"skycast/internal/lookup"

	"github.com/gin-gonic/gin"
)

// ErrorResponse is the body of every failed API call
type ErrorResponse struct {
	Error string `json:"error" example:"city not found"`
}

// GetWeatherByNameInput defines the query parameters for the weather endpoint
type GetWeatherByNameInput struct {
	City string `form:"city" binding:"required"` // Place name, e.g. "Paris"
}

// GetWeatherByCoordinatesInput defines the query parameters for the coordinates endpoint.
// Pointers so that 0 (equator, prime meridian) passes the required check.
type GetWeatherByCoordinatesInput struct {
	Latitude  *float64 `form:"latitude" binding:"required"`  // Latitude in decimal degrees
	Longitude *float64 `form:"longitude" binding:"required"` // Longitude in decimal degrees
}

// handleGetWeatherByName godoc
// @Summary Current weather by place name
// @Description Look up current conditions for a city name
// @Tags weather
// @Produce json
// @Param city query string true "Place name" example(Paris)
// @Success 200 {object} lookup.WeatherSnapshot
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Router /weather [get]
func (app *App) handleGetWeatherByName(c *gin.Context) {
	var input GetWeatherByNameInput

	if err := c.ShouldBindQuery(&input); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	snapshot, err := app.lookupService.LookupByName(c.Request.Context(), input.City)
	if err != nil {
		app.writeLookupError(c, err)
		return
	}

	c.JSON(http.StatusOK, snapshot)
}

// handleGetWeatherByCoordinates godoc
// @Summary Current weather by coordinates
// @Description Look up current conditions for a latitude and longitude. The response carries the resolved place name.
// @Tags weather
// @Produce json
// @Param latitude query number true "Latitude in decimal degrees" minimum(-90) maximum(90) example(48.8534)
// @Param longitude query number true "Longitude in decimal degrees" minimum(-180) maximum(180) example(2.3488)
// @Success 200 {object} lookup.WeatherSnapshot
// @Failure 400 {object} ErrorResponse
// @Failure 502 {object} ErrorResponse
// @Router /weather/coordinates [get]
func (app *App) handleGetWeatherByCoordinates(c *gin.Context) {
	var input GetWeatherByCoordinatesInput

	if err := c.ShouldBindQuery(&input); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	snapshot, err := app.lookupService.LookupByCoordinates(c.Request.Context(), *input.Latitude, *input.Longitude)
	if err != nil {
		app.writeLookupError(c, err)
		return
	}

	c.JSON(http.StatusOK, snapshot)
}

// writeLookupError maps lookup failures onto HTTP statuses
func (app *App) writeLookupError(c *gin.Context, err error) {
	if lookup.IsValidationError(err) {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	var lookupErr *lookup.LookupError
	if errors.As(err, &lookupErr) {
		status := http.StatusBadGateway
		if lookupErr.Status >= 400 && lookupErr.Status < 500 {
			status = lookupErr.Status
		}
		c.JSON(status, ErrorResponse{Error: lookupErr.Message})
		return
	}

	app.logger.Error("failed to look up weather",
		"path", c.Request.URL.Path,
		"request_id", c.GetString("request_id"),
		"error", err,
	)
	c.JSON(http.StatusBadGateway, ErrorResponse{Error: lookup.MessageFetchFailed})
}
