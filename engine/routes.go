package engine

import (
	"bytes"
	"log/slog"
	"net/http"

	"github.com/drummonds/iamr-site/config"
	"github.com/labstack/echo/v4"
)

// Logger is global since we will need it everywhere
var Logger *slog.Logger = slog.Default()

// ServerHandler will inject the variables needed into routes
type ServerHandler struct {
	Echo         *echo.Echo
	ServerConfig config.ServerConfig
	// Routes are the page patterns the client app serves
	Routes []string
}

// RegisterRoutes adds the supporting endpoints used alongside the web app
func (serverHandler *ServerHandler) RegisterRoutes() {
	e := serverHandler.Echo
	e.GET("/healthz", serverHandler.GetHealth)
	e.GET("/api/about", serverHandler.GetAboutInfo)
	e.GET("/placeholder/:size", serverHandler.GetPlaceholder)
}

// GetHealth reports that the server is up
func (serverHandler *ServerHandler) GetHealth(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// GetAboutInfo returns information about the site configuration
func (serverHandler *ServerHandler) GetAboutInfo(c echo.Context) error {
	cfg := serverHandler.ServerConfig
	aboutInfo := map[string]interface{}{
		"name":        cfg.Name,
		"shortName":   cfg.ShortName,
		"description": cfg.Description,
		"version":     cfg.Version,
		"routes":      serverHandler.Routes,
		"contact": map[string]string{
			"submitDelay": cfg.SubmitDelay.String(),
			"bannerDelay": cfg.BannerDelay.String(),
		},
	}
	return c.JSON(http.StatusOK, aboutInfo)
}

// GetPlaceholder serves a generated PNG, e.g. /placeholder/120x120?text=DEAN&bg=E0E7FF&fg=1E40AF
func (serverHandler *ServerHandler) GetPlaceholder(c echo.Context) error {
	p, err := ParsePlaceholder(c.Param("size"), c.QueryParam("text"), c.QueryParam("bg"), c.QueryParam("fg"))
	if err != nil {
		Logger.Debug("Rejected placeholder request", "path", c.Request().URL.String(), "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	var buf bytes.Buffer
	if err := RenderPlaceholder(&buf, p); err != nil {
		Logger.Error("Unable to render placeholder", "size", c.Param("size"), "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "unable to render placeholder")
	}
	c.Response().Header().Set("Cache-Control", "public, max-age=86400")
	return c.Blob(http.StatusOK, "image/png", buf.Bytes())
}
