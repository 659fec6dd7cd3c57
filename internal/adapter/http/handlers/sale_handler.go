package handlers

import (
	"errors"
	"net/http"

	request "assistencia_tecnica/internal/adapter/http/dto/request"
	response "assistencia_tecnica/internal/adapter/http/dto/response"
	"assistencia_tecnica/internal/usecase"
	"assistencia_tecnica/pkg"

	"github.com/gin-gonic/gin"
)

// SaleHandler exposes device sales. PDV checkouts also show up here, one
// sale per cart line.
type SaleHandler struct {
	usecase usecase.ISaleUseCase
}

func NewSaleHandler(uc usecase.ISaleUseCase) *SaleHandler {
	return &SaleHandler{usecase: uc}
}

// CreateSale godoc
// @Summary  Register a device sale
// @Tags     sales
// @Accept   json
// @Produce  json
// @Param    sale  body      request.SaleRequest  true  "Sale"
// @Success  201   {object}  response.SaleResponse
// @Failure  400   {object}  pkg.HTTPError
// @Failure  409   {object}  pkg.HTTPError
// @Router   /sales [post]
func (h *SaleHandler) CreateSale(c *gin.Context) {
	var payload request.SaleRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, errInvalidPayload)
		return
	}

	sale, err := h.usecase.CreateSale(c.Request.Context(), payload.ToInput())
	if err != nil {
		respondError(c, mapSaleError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromSale(sale))
}

// UpdateSale godoc
// @Summary  Edit a sale
// @Tags     sales
// @Accept   json
// @Produce  json
// @Param    id    path      string               true  "Sale ID"
// @Param    sale  body      request.SaleRequest  true  "Sale"
// @Success  200   {object}  response.SaleResponse
// @Failure  400   {object}  pkg.HTTPError
// @Failure  404   {object}  pkg.HTTPError
// @Router   /sales/{id} [put]
func (h *SaleHandler) UpdateSale(c *gin.Context) {
	var payload request.SaleRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, errInvalidPayload)
		return
	}

	sale, err := h.usecase.UpdateSale(c.Request.Context(), c.Param("id"), payload.ToInput())
	if err != nil {
		respondError(c, mapSaleError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromSale(sale))
}

// DeleteSale godoc
// @Summary  Delete a sale
// @Tags     sales
// @Param    id  path  string  true  "Sale ID"
// @Success  204
// @Failure  404  {object}  pkg.HTTPError
// @Router   /sales/{id} [delete]
func (h *SaleHandler) DeleteSale(c *gin.Context) {
	if err := h.usecase.DeleteSale(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, mapSaleError(err))
		return
	}
	c.Status(http.StatusNoContent)
}

// GetSale godoc
// @Summary  Get a sale
// @Tags     sales
// @Produce  json
// @Param    id  path      string  true  "Sale ID"
// @Success  200 {object}  response.SaleResponse
// @Failure  404 {object}  pkg.HTTPError
// @Router   /sales/{id} [get]
func (h *SaleHandler) GetSale(c *gin.Context) {
	sale, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, mapSaleError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromSale(sale))
}

// ListSales godoc
// @Summary  List sales, newest first
// @Tags     sales
// @Produce  json
// @Param    q   query    string  false  "Search by device, brand, model or customer"
// @Success  200 {array}  response.SaleResponse
// @Router   /sales [get]
func (h *SaleHandler) ListSales(c *gin.Context) {
	sales, err := h.usecase.List(c.Request.Context(), c.Query("q"))
	if err != nil {
		respondError(c, mapSaleError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromSales(sales))
}

func mapSaleError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidSaleID),
		errors.Is(err, usecase.ErrInvalidSaleDevice),
		errors.Is(err, usecase.ErrInvalidSaleCondition),
		errors.Is(err, usecase.ErrInvalidSalePrice):
		return errInvalidRequest
	case errors.Is(err, usecase.ErrStockItemNotDevice):
		return pkg.NewDomainErrorSimple("STOCK_ITEM_NOT_DEVICE", "Stock item is not a device", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrSaleNotFound):
		return pkg.NewDomainErrorSimple("SALE_NOT_FOUND", "Sale not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrStockItemNotFound):
		return pkg.NewDomainErrorSimple("STOCK_ITEM_NOT_FOUND", "Stock item not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrInsufficientStock):
		return pkg.NewDomainErrorSimple("INSUFFICIENT_STOCK", "Not enough units in stock", http.StatusConflict)
	case errors.Is(err, usecase.ErrStockConflict):
		return pkg.NewDomainErrorSimple("STOCK_CONFLICT", "Stock changed concurrently, try again", http.StatusConflict)
	default:
		return internalError(err)
	}
}
