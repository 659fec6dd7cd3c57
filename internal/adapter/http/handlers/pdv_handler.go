package handlers

import (
	"errors"
	"net/http"
	"strings"

	request "assistencia_tecnica/internal/adapter/http/dto/request"
	response "assistencia_tecnica/internal/adapter/http/dto/response"
	"assistencia_tecnica/internal/domain/entities"
	"assistencia_tecnica/internal/usecase"
	"assistencia_tecnica/pkg"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// PDVHandler is the point of sale: product lookup, the cart and checkout.
type PDVHandler struct {
	usecase usecase.IPDVUseCase
}

func NewPDVHandler(uc usecase.IPDVUseCase) *PDVHandler {
	return &PDVHandler{usecase: uc}
}

// SearchProducts godoc
// @Summary  Products available for sale
// @Tags     pdv
// @Produce  json
// @Param    q   query    string  false  "Name, code, brand or model"
// @Success  200 {array}  response.StockItemResponse
// @Router   /pdv/products [get]
func (h *PDVHandler) SearchProducts(c *gin.Context) {
	items, err := h.usecase.SearchProducts(c.Request.Context(), c.Query("q"))
	if err != nil {
		respondError(c, mapPDVError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromStockItems(items))
}

// GetCart godoc
// @Summary  Current cart
// @Tags     pdv
// @Produce  json
// @Param    cart_id  path      string  true  "Cart ID"
// @Success  200      {object}  response.CartResponse
// @Router   /pdv/carts/{cart_id} [get]
func (h *PDVHandler) GetCart(c *gin.Context) {
	cart, err := h.usecase.GetCart(c.Request.Context(), c.Param("cart_id"))
	if err != nil {
		respondError(c, mapPDVError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromCart(cart))
}

// AddItem godoc
// @Summary      Add one unit to the cart
// @Description  Send stock_item_id, or code for barcode scanners
// @Tags         pdv
// @Accept       json
// @Produce      json
// @Param        cart_id  path      string                      true  "Cart ID"
// @Param        item     body      request.AddCartItemRequest  true  "Item"
// @Success      200      {object}  response.CartResponse
// @Failure      404      {object}  pkg.HTTPError
// @Failure      409      {object}  pkg.HTTPError
// @Router       /pdv/carts/{cart_id}/items [post]
func (h *PDVHandler) AddItem(c *gin.Context) {
	var payload request.AddCartItemRequest
	if err := c.ShouldBindJSON(&payload); err != nil || payload.IsEmpty() {
		respondError(c, errInvalidPayload)
		return
	}

	cartID := c.Param("cart_id")
	var (
		cart entities.Cart
		err  error
	)
	if id := strings.TrimSpace(payload.StockItemID); id != "" {
		cart, err = h.usecase.AddItem(c.Request.Context(), cartID, id)
	} else {
		cart, err = h.usecase.AddItemByCode(c.Request.Context(), cartID, strings.TrimSpace(payload.Code))
	}
	if err != nil {
		respondError(c, mapPDVError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromCart(cart))
}

// UpdateItemQuantity godoc
// @Summary      Set the quantity of a cart line
// @Description  Zero removes the line
// @Tags         pdv
// @Accept       json
// @Produce      json
// @Param        cart_id        path      string                         true  "Cart ID"
// @Param        stock_item_id  path      string                         true  "Stock item ID"
// @Param        item           body      request.UpdateCartItemRequest  true  "Quantity"
// @Success      200            {object}  response.CartResponse
// @Failure      409            {object}  pkg.HTTPError
// @Router       /pdv/carts/{cart_id}/items/{stock_item_id} [patch]
func (h *PDVHandler) UpdateItemQuantity(c *gin.Context) {
	var payload request.UpdateCartItemRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, errInvalidPayload)
		return
	}

	cart, err := h.usecase.UpdateItemQuantity(c.Request.Context(), c.Param("cart_id"), c.Param("stock_item_id"), payload.Quantity)
	if err != nil {
		respondError(c, mapPDVError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromCart(cart))
}

// RemoveItem godoc
// @Summary  Remove a cart line
// @Tags     pdv
// @Produce  json
// @Param    cart_id        path      string  true  "Cart ID"
// @Param    stock_item_id  path      string  true  "Stock item ID"
// @Success  200            {object}  response.CartResponse
// @Router   /pdv/carts/{cart_id}/items/{stock_item_id} [delete]
func (h *PDVHandler) RemoveItem(c *gin.Context) {
	cart, err := h.usecase.RemoveItem(c.Request.Context(), c.Param("cart_id"), c.Param("stock_item_id"))
	if err != nil {
		respondError(c, mapPDVError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromCart(cart))
}

// SetDiscount godoc
// @Summary  Set the cart discount percent
// @Tags     pdv
// @Accept   json
// @Produce  json
// @Param    cart_id   path      string                      true  "Cart ID"
// @Param    discount  body      request.CartDiscountRequest  true  "Discount"
// @Success  200       {object}  response.CartResponse
// @Failure  400       {object}  pkg.HTTPError
// @Router   /pdv/carts/{cart_id}/discount [put]
func (h *PDVHandler) SetDiscount(c *gin.Context) {
	var payload request.CartDiscountRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, errInvalidPayload)
		return
	}

	cart, err := h.usecase.SetDiscount(c.Request.Context(), c.Param("cart_id"), decimal.NewFromFloat(payload.Percent))
	if err != nil {
		respondError(c, mapPDVError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromCart(cart))
}

// ClearCart godoc
// @Summary  Empty the cart
// @Tags     pdv
// @Param    cart_id  path  string  true  "Cart ID"
// @Success  204
// @Router   /pdv/carts/{cart_id} [delete]
func (h *PDVHandler) ClearCart(c *gin.Context) {
	if err := h.usecase.ClearCart(c.Request.Context(), c.Param("cart_id")); err != nil {
		respondError(c, mapPDVError(err))
		return
	}
	c.Status(http.StatusNoContent)
}

// Checkout godoc
// @Summary      Finish the sale
// @Description  Creates one sale per line, takes the units out of stock and books a single ledger entry. Card and pix go through Mercado Pago when provider_payload is sent.
// @Tags         pdv
// @Accept       json
// @Produce      json
// @Param        cart_id   path      string                   true  "Cart ID"
// @Param        checkout  body      request.CheckoutRequest  true  "Checkout"
// @Success      201       {object}  response.CheckoutResponse
// @Failure      400       {object}  pkg.HTTPError
// @Failure      402       {object}  pkg.HTTPError
// @Failure      409       {object}  pkg.HTTPError
// @Router       /pdv/carts/{cart_id}/checkout [post]
func (h *PDVHandler) Checkout(c *gin.Context) {
	var payload request.CheckoutRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, errInvalidPayload)
		return
	}

	result, err := h.usecase.Checkout(c.Request.Context(), c.Param("cart_id"), payload.ToInput())
	if err != nil {
		respondError(c, mapPDVError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromCheckout(result))
}

// TodaySales godoc
// @Summary  Sales of the current day
// @Tags     pdv
// @Produce  json
// @Success  200  {object}  response.TodaySalesResponse
// @Router   /pdv/today [get]
func (h *PDVHandler) TodaySales(c *gin.Context) {
	today, err := h.usecase.TodaySales(c.Request.Context())
	if err != nil {
		respondError(c, mapPDVError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromTodaySales(today))
}

// GetReceipt godoc
// @Summary  Receipt data of a checkout
// @Tags     pdv
// @Produce  json
// @Param    checkout_id  path      string  true  "Checkout ID"
// @Success  200          {object}  response.ReceiptResponse
// @Failure  404          {object}  pkg.HTTPError
// @Router   /pdv/checkouts/{checkout_id} [get]
func (h *PDVHandler) GetReceipt(c *gin.Context) {
	receipt, err := h.usecase.Receipt(c.Request.Context(), c.Param("checkout_id"))
	if err != nil {
		respondError(c, mapPDVError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromReceipt(receipt))
}

func mapPDVError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidCartID),
		errors.Is(err, usecase.ErrInvalidStockItemID),
		errors.Is(err, usecase.ErrInvalidCheckoutID),
		errors.Is(err, usecase.ErrInvalidCartQuantity),
		errors.Is(err, usecase.ErrInvalidProviderPayload),
		errors.Is(err, usecase.ErrPaymentGatewayBadRequest):
		return errInvalidRequest
	case errors.Is(err, usecase.ErrInvalidDiscount):
		return pkg.NewDomainErrorSimple("INVALID_DISCOUNT", "Discount must be between 0 and 100", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidPaymentMethod):
		return pkg.NewDomainErrorSimple("INVALID_PAYMENT_METHOD", "Invalid payment method", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrEmptyCart):
		return pkg.NewDomainErrorSimple("EMPTY_CART", "Cart is empty", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidCartTotal):
		return pkg.NewDomainErrorSimple("INVALID_TOTAL", "Cart total must be greater than zero", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayCustomerNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_CUSTOMER_NOT_FOUND", "Payer not found for this Mercado Pago test context", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayInvalidUsers):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_INVALID_USERS", "Invalid users involved between seller token and payer test user", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayUnauthorized):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_UNAUTHORIZED", "Payment provider unauthorized", http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrPaymentNotApproved):
		return pkg.NewDomainErrorSimple("PAYMENT_NOT_APPROVED", "Payment not approved", http.StatusPaymentRequired)
	case errors.Is(err, usecase.ErrPaymentGatewayNotConfigured):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_UNAVAILABLE", "Payment provider not configured", http.StatusServiceUnavailable)
	case errors.Is(err, usecase.ErrCartItemNotFound):
		return pkg.NewDomainErrorSimple("CART_ITEM_NOT_FOUND", "Item not in cart", http.StatusNotFound)
	case errors.Is(err, usecase.ErrStockItemNotFound):
		return pkg.NewDomainErrorSimple("PRODUCT_NOT_FOUND", "Product not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrCheckoutNotFound):
		return pkg.NewDomainErrorSimple("CHECKOUT_NOT_FOUND", "Checkout not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrProductUnavailable):
		return pkg.NewDomainErrorSimple("PRODUCT_UNAVAILABLE", "Produto sem estoque", http.StatusConflict)
	case errors.Is(err, usecase.ErrMaxQuantityReached):
		return pkg.NewDomainErrorSimple("MAX_QUANTITY_REACHED", "Quantidade máxima atingida", http.StatusConflict)
	case errors.Is(err, usecase.ErrInsufficientStock):
		// the wrapped message names the product and the available units
		return pkg.NewDomainErrorSimple("INSUFFICIENT_STOCK", err.Error(), http.StatusConflict)
	case errors.Is(err, usecase.ErrStockConflict):
		return pkg.NewDomainErrorSimple("STOCK_CONFLICT", "Stock changed, review the cart", http.StatusConflict)
	default:
		return internalError(err)
	}
}
