package api

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// RegisterRoutes regista as páginas dos labs e a API JSON.
func RegisterRoutes(e *echo.Echo, h *Handler) {
	e.GET("/", func(c echo.Context) error {
		return c.Redirect(http.StatusFound, "/labs/xss/")
	})

	// Páginas HTML dos labs
	// ex: GET /labs/xss/reflected-basic/?name=...
	labs := e.Group("/labs/xss")
	labs.GET("/", h.HandleDashboard)
	for key, fn := range h.labs {
		for _, path := range []string{"/" + key, "/" + key + "/"} {
			labs.GET(path, fn)
			labs.POST(path, fn)
		}
	}
	labs.GET("/ajax-json/search", h.HandleAjaxSearch)
	labs.GET("/websocket-xss/ws", h.HandleWebSocket)

	// API JSON
	// ex: GET /api/v1/labs/filter-bypass
	g := e.Group("/api/v1")
	g.GET("/labs", func(c echo.Context) error {
		c.Set(jsonResponseKey, true)
		return h.HandleDashboard(c)
	})
	g.GET("/labs/:key", h.HandleAPILab)
	g.POST("/labs/:key", h.HandleAPILab)
	g.POST("/detect", h.HandleDetect)
	g.GET("/comments", h.HandleListComments)
	g.GET("/health", h.HandleHealthCheck)
}
