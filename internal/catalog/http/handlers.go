package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/devfolio-app/portfolio-backend/internal/catalog"
	"github.com/devfolio-app/portfolio-backend/internal/catalog/domain"
)

const unableToLoadMessage = "Unable to load projects right now. Please try again later."

type Handler struct {
	store    *catalog.Store
	pageSize int
}

func New(store *catalog.Store, pageSize int) *Handler {
	if pageSize < 1 {
		pageSize = catalog.DefaultPageSize
	}
	return &Handler{store: store, pageSize: pageSize}
}

func (h *Handler) Register(rg *gin.RouterGroup) {
	rg.GET("", h.list)
	rg.GET("/tags", h.tags)
	rg.GET("/:id", h.get)
}

func (h *Handler) list(c *gin.Context) {
	records, err := h.store.Snapshot()
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"ok":             false,
			"error":          unableToLoadMessage,
			"showPagination": false,
		})
		return
	}

	tag := c.Query("tag")
	query := c.Query("q")

	// Absent or garbage page parameter means page 1; out-of-range values
	// clamp inside Paginate. A tag/query change with no explicit page
	// therefore always lands on page 1.
	page := 1
	if raw := c.Query("page"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil {
			page = n
		}
	}

	filtered := catalog.Filter(records, tag, query)
	view := catalog.BuildPageView(catalog.Paginate(filtered, h.pageSize, page))

	c.JSON(http.StatusOK, listResponse{
		OK:    true,
		Tag:   tag,
		Query: query,
		View:  view,
	})
}

func (h *Handler) get(c *gin.Context) {
	rec, err := h.store.Get(c.Param("id"))
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"ok": false, "error": "project not found"})
			return
		}
		c.JSON(http.StatusServiceUnavailable, gin.H{"ok": false, "error": unableToLoadMessage})
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true, "project": catalog.BuildCard(rec)})
}

func (h *Handler) tags(c *gin.Context) {
	tags, err := h.store.Tags()
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"ok": false, "error": unableToLoadMessage})
		return
	}

	c.JSON(http.StatusOK, gin.H{"ok": true, "tags": tags})
}
