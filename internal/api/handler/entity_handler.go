package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/medcore/hospital-admin/internal/api/metrics"
	"github.com/medcore/hospital-admin/internal/core/domain"
	"github.com/medcore/hospital-admin/internal/core/ports"
)

const (
	defaultPageLimit = 20
	maxPageLimit     = 100
)

// EntityHandler exposes the five CRUD routes of one entity. T is the row
// type, C the create payload and U the partial update payload.
type EntityHandler[T, C, U any] struct {
	entity  string
	service ports.Gateway[T, C, U]
}

func NewEntityHandler[T, C, U any](entity string, service ports.Gateway[T, C, U]) *EntityHandler[T, C, U] {
	return &EntityHandler[T, C, U]{entity: entity, service: service}
}

// pageResponse is the list envelope shared by every entity.
type pageResponse[T any] struct {
	Data    []T  `json:"data"`
	Total   int  `json:"total"`
	Limit   int  `json:"limit"`
	Offset  int  `json:"offset"`
	HasMore bool `json:"has_more"`
}

// Register mounts the routes on g. read guards GET routes; create, update and
// remove guard the mutating ones.
func (h *EntityHandler[T, C, U]) Register(g *echo.Group, read, create, update, remove echo.MiddlewareFunc) {
	g.GET("", h.List, read)
	g.GET("/:id", h.Get, read)
	g.POST("", h.Create, create)
	g.PATCH("/:id", h.Update, update)
	g.DELETE("/:id", h.Delete, remove)
}

// List handles GET /api/v1/<entity>?limit=&offset=.
func (h *EntityHandler[T, C, U]) List(c echo.Context) error {
	page := ports.Page{Limit: defaultPageLimit}
	if err := echo.QueryParamsBinder(c).
		Int("limit", &page.Limit).
		Int("offset", &page.Offset).
		BindError(); err != nil {
		return h.badRequest(c, "list", "limit and offset must be integers")
	}
	if page.Limit <= 0 || page.Offset < 0 {
		return h.badRequest(c, "list", "limit must be positive and offset non-negative")
	}
	if page.Limit > maxPageLimit {
		page.Limit = maxPageLimit
	}

	items, total, err := h.service.List(c.Request().Context(), page)
	if err != nil {
		return h.fail("list", err)
	}
	if items == nil {
		items = []T{}
	}
	h.observe("list", nil)

	return c.JSON(http.StatusOK, pageResponse[T]{
		Data:    items,
		Total:   total,
		Limit:   page.Limit,
		Offset:  page.Offset,
		HasMore: page.Offset+len(items) < total,
	})
}

// Get handles GET /api/v1/<entity>/:id.
func (h *EntityHandler[T, C, U]) Get(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return h.badRequest(c, "get", err.Error())
	}
	item, err := h.service.GetByID(c.Request().Context(), id)
	if err != nil {
		return h.fail("get", err)
	}
	h.observe("get", nil)
	return c.JSON(http.StatusOK, item)
}

// Create handles POST /api/v1/<entity>.
func (h *EntityHandler[T, C, U]) Create(c echo.Context) error {
	var in C
	if err := c.Bind(&in); err != nil {
		return h.badRequest(c, "create", "invalid payload")
	}
	if err := c.Validate(&in); err != nil {
		return h.badRequest(c, "create", err.Error())
	}
	item, err := h.service.Create(c.Request().Context(), in)
	if err != nil {
		return h.fail("create", err)
	}
	h.observe("create", nil)
	return c.JSON(http.StatusCreated, item)
}

// Update handles PATCH /api/v1/<entity>/:id. Absent fields are left unchanged.
func (h *EntityHandler[T, C, U]) Update(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return h.badRequest(c, "update", err.Error())
	}
	var in U
	if err := c.Bind(&in); err != nil {
		return h.badRequest(c, "update", "invalid payload")
	}
	if err := c.Validate(&in); err != nil {
		return h.badRequest(c, "update", err.Error())
	}
	item, err := h.service.Update(c.Request().Context(), id, in)
	if err != nil {
		return h.fail("update", err)
	}
	h.observe("update", nil)
	return c.JSON(http.StatusOK, item)
}

// Delete handles DELETE /api/v1/<entity>/:id and returns the tombstoned row.
func (h *EntityHandler[T, C, U]) Delete(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return h.badRequest(c, "delete", err.Error())
	}
	item, err := h.service.SoftDelete(c.Request().Context(), id)
	if err != nil {
		return h.fail("delete", err)
	}
	h.observe("delete", nil)
	return c.JSON(http.StatusOK, item)
}

func (h *EntityHandler[T, C, U]) badRequest(c echo.Context, op, msg string) error {
	metrics.GatewayOperationsTotal.WithLabelValues(h.entity, op, "invalid").Inc()
	return c.JSON(http.StatusBadRequest, map[string]string{"error": msg})
}

// fail records the operation and hands err to the central error handler.
func (h *EntityHandler[T, C, U]) fail(op string, err error) error {
	h.observe(op, err)
	return err
}

func (h *EntityHandler[T, C, U]) observe(op string, err error) {
	metrics.GatewayOperationsTotal.WithLabelValues(h.entity, op, resultLabel(err)).Inc()
}

func resultLabel(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, domain.ErrNotFound):
		return "not_found"
	case errors.Is(err, domain.ErrConflict):
		return "conflict"
	case errors.Is(err, domain.ErrInvalidReference):
		return "invalid"
	default:
		return "error"
	}
}

func pathID(c echo.Context) (int64, error) {
	var id int64
	if err := echo.PathParamsBinder(c).MustInt64("id", &id).BindError(); err != nil || id <= 0 {
		return 0, errors.New("id must be a positive integer")
	}
	return id, nil
}
