package controllers

import (
	"net/http"
	"strconv"

	"github.com/asanchezr/gin-menu-api/internal/middleware"
	"github.com/asanchezr/gin-menu-api/internal/models"
	"github.com/asanchezr/gin-menu-api/internal/services"
	"github.com/gin-gonic/gin"
)

// MenuController handles HTTP requests for the menu resource
type MenuController interface {
	// GetAllItems retrieves all menu items
	GetAllItems(c *gin.Context)
	// GetItemByID retrieves a menu item by its ID
	GetItemByID(c *gin.Context)
	// CreateItem creates a new menu item
	CreateItem(c *gin.Context)
	// UpdateItem replaces an existing menu item
	UpdateItem(c *gin.Context)
	// DeleteItem deletes a menu item by its ID
	DeleteItem(c *gin.Context)
}

type controller struct {
	service services.MenuService
}

// NewMenuController creates a new instance of MenuController
func NewMenuController(service services.MenuService) *controller {
	return &controller{service: service}
}

// GetAllItems godoc
// @Summary List the menu
// @Description Get every menu item in insertion order
// @Tags menu
// @Produce json
// @Success 200 {array} models.MenuItem
// @Router /api/menu [get]
func (c *controller) GetAllItems(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, c.service.GetAllItems())
}

// GetItemByID godoc
// @Summary Get a menu item
// @Description Get a single menu item by its ID
// @Tags menu
// @Produce json
// @Param id path int true "Menu item ID"
// @Success 200 {object} models.MenuItem
// @Failure 404 {object} models.ErrorResponse
// @Router /api/menu/{id} [get]
func (c *controller) GetItemByID(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		ctx.JSON(http.StatusNotFound, models.NewNotFoundResponse())
		return
	}

	item, err := c.service.GetItemByID(id)
	if err != nil {
		ctx.JSON(http.StatusNotFound, models.NewNotFoundResponse())
		return
	}
	ctx.JSON(http.StatusOK, item)
}

// CreateItem godoc
// @Summary Create a menu item
// @Description Create a new menu item from the validated payload
// @Tags menu
// @Accept json
// @Produce json
// @Param item body models.MenuItem true "Menu item (id is assigned by the server)"
// @Success 201 {object} models.MenuItem
// @Failure 400 {object} models.ValidationErrorResponse
// @Router /api/menu [post]
func (c *controller) CreateItem(ctx *gin.Context) {
	item := validatedItem(ctx)
	created := c.service.CreateItem(item)
	ctx.JSON(http.StatusCreated, created)
}

// UpdateItem godoc
// @Summary Replace a menu item
// @Description Replace every field of an existing menu item; the id comes from the path
// @Tags menu
// @Accept json
// @Produce json
// @Param id path int true "Menu item ID"
// @Param item body models.MenuItem true "Menu item"
// @Success 200 {object} models.MenuItem
// @Failure 400 {object} models.ValidationErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /api/menu/{id} [put]
func (c *controller) UpdateItem(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		ctx.JSON(http.StatusNotFound, models.NewNotFoundResponse())
		return
	}

	item := validatedItem(ctx)
	updated, err := c.service.UpdateItem(id, item)
	if err != nil {
		ctx.JSON(http.StatusNotFound, models.NewNotFoundResponse())
		return
	}
	ctx.JSON(http.StatusOK, updated)
}

// DeleteItem godoc
// @Summary Delete a menu item
// @Description Delete a menu item by its ID and return the removed item
// @Tags menu
// @Produce json
// @Param id path int true "Menu item ID"
// @Success 200 {object} models.DeleteResponse
// @Failure 404 {object} models.ErrorResponse
// @Router /api/menu/{id} [delete]
func (c *controller) DeleteItem(ctx *gin.Context) {
	id, ok := parseID(ctx)
	if !ok {
		ctx.JSON(http.StatusNotFound, models.NewNotFoundResponse())
		return
	}

	removed, err := c.service.DeleteItem(id)
	if err != nil {
		ctx.JSON(http.StatusNotFound, models.NewNotFoundResponse())
		return
	}
	ctx.JSON(http.StatusOK, models.DeleteResponse{Message: models.MsgMenuItemDeleted, Item: removed})
}

// parseID reads the id path parameter. A non-numeric segment matches no
// stored id, so callers treat a parse failure as not-found rather than as a
// bad request.
func parseID(ctx *gin.Context) (int, bool) {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		return 0, false
	}
	return id, true
}

// validatedItem fetches the payload the validation middleware stored on the
// context. The middleware is registered on every route that reaches a write
// handler, so the value is always present.
func validatedItem(ctx *gin.Context) models.MenuItem {
	return ctx.MustGet(middleware.MenuItemKey).(models.MenuItem)
}
