package handlers

import (
	"errors"
	"net/http"

	request "assistencia_tecnica/internal/adapter/http/dto/request"
	response "assistencia_tecnica/internal/adapter/http/dto/response"
	"assistencia_tecnica/internal/domain/entities"
	"assistencia_tecnica/internal/usecase"
	"assistencia_tecnica/pkg"

	"github.com/gin-gonic/gin"
)

type StockHandler struct {
	usecase usecase.IStockUseCase
}

func NewStockHandler(uc usecase.IStockUseCase) *StockHandler {
	return &StockHandler{usecase: uc}
}

// CreateItem godoc
// @Summary  Register a stock item
// @Tags     stock
// @Accept   json
// @Produce  json
// @Param    item  body      request.StockItemRequest  true  "Stock item"
// @Success  201   {object}  response.StockItemResponse
// @Failure  400   {object}  pkg.HTTPError
// @Failure  409   {object}  pkg.HTTPError
// @Router   /stock [post]
func (h *StockHandler) CreateItem(c *gin.Context) {
	var payload request.StockItemRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, errInvalidPayload)
		return
	}

	item, err := h.usecase.CreateItem(c.Request.Context(), payload.ToInput())
	if err != nil {
		respondError(c, mapStockError(err))
		return
	}

	c.JSON(http.StatusCreated, response.FromStockItem(item))
}

// UpdateItem godoc
// @Summary  Edit a stock item
// @Tags     stock
// @Accept   json
// @Produce  json
// @Param    id    path      string                    true  "Stock item ID"
// @Param    item  body      request.StockItemRequest  true  "Stock item"
// @Success  200   {object}  response.StockItemResponse
// @Failure  400   {object}  pkg.HTTPError
// @Failure  404   {object}  pkg.HTTPError
// @Router   /stock/{id} [put]
func (h *StockHandler) UpdateItem(c *gin.Context) {
	var payload request.StockItemRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, errInvalidPayload)
		return
	}

	item, err := h.usecase.UpdateItem(c.Request.Context(), c.Param("id"), payload.ToInput())
	if err != nil {
		respondError(c, mapStockError(err))
		return
	}

	c.JSON(http.StatusOK, response.FromStockItem(item))
}

// DeleteItem godoc
// @Summary  Delete a stock item and its movement history
// @Tags     stock
// @Param    id  path  string  true  "Stock item ID"
// @Success  204
// @Failure  404  {object}  pkg.HTTPError
// @Router   /stock/{id} [delete]
func (h *StockHandler) DeleteItem(c *gin.Context) {
	if err := h.usecase.DeleteItem(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, mapStockError(err))
		return
	}
	c.Status(http.StatusNoContent)
}

// GetItem godoc
// @Summary  Get a stock item
// @Tags     stock
// @Produce  json
// @Param    id  path      string  true  "Stock item ID"
// @Success  200 {object}  response.StockItemResponse
// @Failure  404 {object}  pkg.HTTPError
// @Router   /stock/{id} [get]
func (h *StockHandler) GetItem(c *gin.Context) {
	item, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, mapStockError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromStockItem(item))
}

// ListItems godoc
// @Summary  List stock items
// @Tags     stock
// @Produce  json
// @Param    q         query  string  false  "Search text"
// @Param    category  query  string  false  "Category filter, all for no filter"
// @Param    kind      query  string  false  "parts or devices"
// @Success  200       {array}  response.StockItemResponse
// @Router   /stock [get]
func (h *StockHandler) ListItems(c *gin.Context) {
	kind := usecase.StockKind(c.Query("kind"))
	switch kind {
	case usecase.StockKindAll, usecase.StockKindParts, usecase.StockKindDevices:
	default:
		respondError(c, pkg.NewDomainErrorSimple("INVALID_KIND", "kind must be parts or devices", http.StatusBadRequest))
		return
	}

	items, err := h.usecase.List(c.Request.Context(), usecase.StockFilter{
		Query:    c.Query("q"),
		Category: c.Query("category"),
		Kind:     kind,
	})
	if err != nil {
		respondError(c, mapStockError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromStockItems(items))
}

// MoveStock godoc
// @Summary  Add or remove units of a stock item
// @Tags     stock
// @Accept   json
// @Produce  json
// @Param    id        path      string                        true  "Stock item ID"
// @Param    movement  body      request.StockMovementRequest  true  "Movement"
// @Success  200       {object}  response.StockItemResponse
// @Failure  400       {object}  pkg.HTTPError
// @Failure  404       {object}  pkg.HTTPError
// @Failure  409       {object}  pkg.HTTPError
// @Router   /stock/{id}/movements [post]
func (h *StockHandler) MoveStock(c *gin.Context) {
	var payload request.StockMovementRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, errInvalidPayload)
		return
	}

	item, err := h.usecase.MoveStock(c.Request.Context(), c.Param("id"), entities.MovementType(payload.Type), payload.Quantity, payload.Reason)
	if err != nil {
		respondError(c, mapStockError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromStockItem(item))
}

// ListMovements godoc
// @Summary  Movement history of a stock item
// @Tags     stock
// @Produce  json
// @Param    id  path     string  true  "Stock item ID"
// @Success  200 {array}  response.StockMovementResponse
// @Failure  404 {object} pkg.HTTPError
// @Router   /stock/{id}/movements [get]
func (h *StockHandler) ListMovements(c *gin.Context) {
	movements, err := h.usecase.ListMovements(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, mapStockError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromStockMovements(movements))
}

func mapStockError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidStockItemID),
		errors.Is(err, usecase.ErrInvalidStockName),
		errors.Is(err, usecase.ErrInvalidStockCategory),
		errors.Is(err, usecase.ErrInvalidStockState),
		errors.Is(err, usecase.ErrInvalidStockQuantity),
		errors.Is(err, usecase.ErrInvalidStockPrice),
		errors.Is(err, usecase.ErrInvalidMovementType):
		return errInvalidRequest
	case errors.Is(err, usecase.ErrStockItemNotFound):
		return pkg.NewDomainErrorSimple("STOCK_ITEM_NOT_FOUND", "Stock item not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrStockCodeAlreadyInUse):
		return pkg.NewDomainErrorSimple("STOCK_CODE_IN_USE", "Code already used by another item", http.StatusConflict)
	case errors.Is(err, usecase.ErrInsufficientStock):
		return pkg.NewDomainErrorSimple("INSUFFICIENT_STOCK", "Not enough units in stock", http.StatusConflict)
	case errors.Is(err, usecase.ErrStockConflict):
		return pkg.NewDomainErrorSimple("STOCK_CONFLICT", "Stock changed concurrently, try again", http.StatusConflict)
	default:
		return internalError(err)
	}
}
