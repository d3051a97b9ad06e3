package api

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"xss-labs/internal/domain"
	"xss-labs/internal/service"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
)

var (
	upgrader = websocket.Upgrader{
		CheckOrigin: func(r *http.Request) bool {
			return true
		},
	}
)

// set by the /api/v1 routes so lab handlers answer with JSON
const jsonResponseKey = "json_response"

type Handler struct {
	labService    *service.LabService
	healthService *service.HealthService
	hub           *Hub
	labs          map[string]echo.HandlerFunc
}

func NewHandler(svc *service.LabService, health *service.HealthService, hub *Hub) *Handler {
	h := &Handler{
		labService:    svc,
		healthService: health,
		hub:           hub,
	}
	h.labs = map[string]echo.HandlerFunc{
		"reflected-basic": h.reflect("reflected-basic", "name"),
		"url-parameter":   h.reflect("url-parameter", "search"),
		"form-input":      h.reflect("form-input", "name", "comment"),
		"stored-basic":    h.HandleStoredBasic,
		"dom-basic":       h.reflect("dom-basic", "color"),
		"attribute":       h.reflect("attribute", "name"),
		"js-context":      h.HandleJSContext,
		"svg-xss":         h.reflect("svg-xss", "content"),
		"markdown-xss":    h.HandleMarkdown,
		"ajax-json":       h.reflect("ajax-json", "search"),
		"filter-bypass":   h.HandleFilterBypass,
		"content-type":    h.HandleContentType,
		"websocket-xss":   h.reflect("websocket-xss"),
		"file-upload-xss": h.HandleFileUpload,
	}
	return h
}

type DetectRequest struct {
	Text string `json:"text"`
}

type SearchResponse struct {
	Query   string   `json:"query"`
	Results []string `json:"results"`
}

var products = []string{
	"Blue Mug", "Red Mug", "Laptop Sticker Pack", "Mechanical Keyboard",
	"USB-C Cable", "Notebook", "Hoodie", "Desk Lamp",
}

func wantsJSON(c echo.Context) bool {
	if v, ok := c.Get(jsonResponseKey).(bool); ok && v {
		return true
	}
	if c.QueryParam("format") == "json" {
		return true
	}
	return strings.Contains(c.Request().Header.Get(echo.HeaderAccept), echo.MIMEApplicationJSON)
}

func (h *Handler) respond(c echo.Context, page *domain.Page) error {
	if wantsJSON(c) {
		return c.JSON(http.StatusOK, page)
	}
	return c.Render(http.StatusOK, page.Key, page)
}

func errorResponse(c echo.Context, err error) error {
	if errors.Is(err, service.ErrLabNotFound) {
		return c.JSON(http.StatusNotFound, map[string]string{"error": err.Error()})
	}
	c.Logger().Errorf("[Handler] %v", err)
	return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
}

func isPost(c echo.Context) bool {
	return c.Request().Method == http.MethodPost
}

// reflect builds a handler that copies the named request values, from the
// query string or form body, into the page untouched.
func (h *Handler) reflect(key string, params ...string) echo.HandlerFunc {
	return func(c echo.Context) error {
		input := make(map[string]string, len(params))
		for _, p := range params {
			input[p] = c.FormValue(p)
		}
		page, err := h.labService.Page(key, input)
		if err != nil {
			return errorResponse(c, err)
		}
		return h.respond(c, page)
	}
}

func (h *Handler) HandleDashboard(c echo.Context) error {
	d := h.labService.Dashboard()
	if wantsJSON(c) {
		return c.JSON(http.StatusOK, d)
	}
	return c.Render(http.StatusOK, "dashboard", d)
}

func (h *Handler) HandleStoredBasic(c echo.Context) error {
	var name, comment string
	if isPost(c) {
		name = c.FormValue("name")
		comment = c.FormValue("comment")
	}

	page, err := h.labService.StoredPage(c.Request().Context(), name, comment)
	if err != nil {
		return errorResponse(c, err)
	}
	return h.respond(c, page)
}

func (h *Handler) HandleJSContext(c echo.Context) error {
	page, err := h.labService.JSContextPage(c.FormValue("name"))
	if err != nil {
		return errorResponse(c, err)
	}
	if page.JSVerdict != nil && page.JSVerdict.Executed {
		c.Logger().Infof("[Handler] js-context: breakout com %v", page.JSVerdict.Calls)
	}
	return h.respond(c, page)
}

func (h *Handler) HandleMarkdown(c echo.Context) error {
	src := ""
	if isPost(c) {
		src = c.FormValue("markdown")
	}
	page, err := h.labService.MarkdownPage(src)
	if err != nil {
		return errorResponse(c, err)
	}
	return h.respond(c, page)
}

func (h *Handler) HandleFilterBypass(c echo.Context) error {
	comment := ""
	if isPost(c) {
		comment = c.FormValue("comment")
	}
	page, err := h.labService.FilterPage(comment)
	if err != nil {
		return errorResponse(c, err)
	}
	return h.respond(c, page)
}

// HandleContentType serves the caller's content under whatever type the
// filename extension maps to when direct=1.
func (h *Handler) HandleContentType(c echo.Context) error {
	filename := c.FormValue("filename")
	content := c.FormValue("content")

	page, err := h.labService.ContentTypePage(filename)
	if err != nil {
		return errorResponse(c, err)
	}

	if c.FormValue("direct") == "1" && content != "" {
		if filename == "" {
			filename = "untitled"
		}
		c.Response().Header().Set(echo.HeaderContentDisposition, fmt.Sprintf(`inline; filename="%s"`, filename))
		return c.Blob(http.StatusOK, page.DetectedContentType, []byte(content))
	}
	return h.respond(c, page)
}

func (h *Handler) HandleFileUpload(c echo.Context) error {
	var data []byte
	if isPost(c) {
		fh, err := c.FormFile("file")
		if err == nil {
			f, err := fh.Open()
			if err != nil {
				return errorResponse(c, fmt.Errorf("falha ao abrir upload: %w", err))
			}
			defer f.Close()
			if data, err = io.ReadAll(f); err != nil {
				return errorResponse(c, fmt.Errorf("falha ao ler upload: %w", err))
			}
			if data == nil {
				data = []byte{}
			}
		} else {
			c.Logger().Debugf("[Handler] upload sem ficheiro: %v", err)
		}
	}

	page, err := h.labService.UploadPage(data)
	if err != nil {
		return errorResponse(c, err)
	}
	return h.respond(c, page)
}

func (h *Handler) HandleAjaxSearch(c echo.Context) error {
	q := c.QueryParam("search")
	needle := strings.ToLower(q)

	results := []string{}
	for _, p := range products {
		if strings.Contains(strings.ToLower(p), needle) {
			results = append(results, p)
		}
	}
	return c.JSON(http.StatusOK, SearchResponse{Query: q, Results: results})
}

func (h *Handler) HandleWebSocket(c echo.Context) error {
	ws, err := upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		c.Logger().Errorf("[Handler] Falha no upgrade do websocket: %v", err)
		return err
	}
	defer ws.Close()

	h.hub.add(ws)
	defer h.hub.remove(ws)
	c.Logger().Infof("[Handler] Cliente WebSocket conectado (%d ligados)", h.hub.Len())

	for {
		msgType, msg, err := ws.ReadMessage()
		if err != nil {
			c.Logger().Infof("[Handler] Cliente desconectado: %v", err)
			break
		}
		if msgType != websocket.TextMessage {
			continue
		}
		h.hub.Broadcast(msg)
	}
	return nil
}

// HandleAPILab answers /api/v1/labs/:key with the JSON page context of the lab.
func (h *Handler) HandleAPILab(c echo.Context) error {
	key := c.Param("key")
	fn, ok := h.labs[key]
	if !ok {
		return c.JSON(http.StatusNotFound, map[string]string{"error": fmt.Sprintf("%v: %s", service.ErrLabNotFound, key)})
	}
	c.Set(jsonResponseKey, true)
	return fn(c)
}

func (h *Handler) HandleDetect(c echo.Context) error {
	var req DetectRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Payload inválido"})
	}
	return c.JSON(http.StatusOK, h.labService.Inspect(req.Text))
}

func (h *Handler) HandleListComments(c echo.Context) error {
	comments, err := h.labService.ListComments(c.Request().Context())
	if err != nil {
		return errorResponse(c, err)
	}
	if comments == nil {
		comments = []*domain.Comment{}
	}
	return c.JSON(http.StatusOK, comments)
}

// HandleHealthCheck responde 503 só quando o log de comentários falha;
// templates ou diretório de upload com problema dão "degraded" com 200.
func (h *Handler) HandleHealthCheck(c echo.Context) error {
	health := h.healthService.CheckHealth(c.Request().Context())
	if health.Status != service.StatusOK {
		c.Logger().Warnf("[Handler] Health %s: %v", health.Status, health.Checks)
	}

	c.Response().Header().Set(echo.HeaderCacheControl, "no-store")
	if health.Status == service.StatusUnavailable {
		return c.JSON(http.StatusServiceUnavailable, health)
	}
	return c.JSON(http.StatusOK, health)
}
