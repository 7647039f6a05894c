package main

import (
	"context"
	"errors"
	"net/http"

	"skycast/internal/types"
	"skycast/internal/widget"

	"github.com/gin-gonic/gin"
)

const sessionCookie = "skycast_session"

// WidgetSearchInput is the body of a search form submit
type WidgetSearchInput struct {
	City string `json:"city" example:"Paris"`
}

// WidgetLocationInput carries the browser's geolocation outcome.
// Either both coordinates, an error, or unsupported is set.
type WidgetLocationInput struct {
	Latitude    *float64 `json:"latitude" example:"48.8534"`
	Longitude   *float64 `json:"longitude" example:"2.3488"`
	Error       string   `json:"error" example:"User denied Geolocation"`
	Unsupported bool     `json:"unsupported"`
}

// locator turns the reported outcome into a widget.Locator
func (in WidgetLocationInput) locator() widget.Locator {
	if in.Unsupported {
		return nil
	}
	return widget.LocatorFunc(func(ctx context.Context) (types.Coords, error) {
		if in.Error != "" {
			return types.Coords{}, errors.New(in.Error)
		}
		if in.Latitude == nil || in.Longitude == nil {
			return types.Coords{}, errors.New("position unavailable")
		}
		return types.NewCoords(*in.Latitude, *in.Longitude), nil
	})
}

// widgetFor returns the caller's widget, starting a session when needed
func (app *App) widgetFor(c *gin.Context) *widget.Widget {
	existing, _ := c.Cookie(sessionCookie)
	id, w := app.widgets.GetOrCreate(existing)
	if id.String() != existing {
		maxAge := int(app.cfg.Widget.SessionTTL.Seconds())
		c.SetSameSite(http.SameSiteLaxMode)
		c.SetCookie(sessionCookie, id.String(), maxAge, "/", "", app.cfg.Server.SecureCookies, true)
	}
	return w
}

// handleGetWidget godoc
// @Summary Widget state
// @Description Current widget state for the caller's session
// @Tags widget
// @Produce json
// @Success 200 {object} widget.View
// @Router /widget [get]
func (app *App) handleGetWidget(c *gin.Context) {
	c.JSON(http.StatusOK, app.widgetFor(c).View())
}

// handleWidgetSearch godoc
// @Summary Submit the search form
// @Description Look up the typed city. A blank city leaves the state unchanged.
// @Tags widget
// @Accept json
// @Produce json
// @Param body body WidgetSearchInput true "Search form"
// @Success 200 {object} widget.View
// @Failure 400 {object} ErrorResponse
// @Router /widget/search [post]
func (app *App) handleWidgetSearch(c *gin.Context) {
	var input WidgetSearchInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	w := app.widgetFor(c)
	w.Submit(c.Request.Context(), input.City)
	c.JSON(http.StatusOK, w.View())
}

// handleWidgetLocation godoc
// @Summary Use my location
// @Description Look up the weather at the position reported by the browser's geolocation
// @Tags widget
// @Accept json
// @Produce json
// @Param body body WidgetLocationInput true "Geolocation outcome"
// @Success 200 {object} widget.View
// @Failure 400 {object} ErrorResponse
// @Router /widget/location [post]
func (app *App) handleWidgetLocation(c *gin.Context) {
	var input WidgetLocationInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	w := app.widgetFor(c)
	w.UseLocation(c.Request.Context(), input.locator())
	c.JSON(http.StatusOK, w.View())
}

// handleWidgetUnits godoc
// @Summary Toggle temperature units
// @Description Switch the displayed temperature between °C and °F
// @Tags widget
// @Produce json
// @Success 200 {object} widget.View
// @Router /widget/units [post]
func (app *App) handleWidgetUnits(c *gin.Context) {
	w := app.widgetFor(c)
	w.ToggleUnits()
	c.JSON(http.StatusOK, w.View())
}
