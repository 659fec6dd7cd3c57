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

// TransactionHandler exposes the cash ledger (entradas e saídas).
type TransactionHandler struct {
	usecase usecase.ITransactionUseCase
}

func NewTransactionHandler(uc usecase.ITransactionUseCase) *TransactionHandler {
	return &TransactionHandler{usecase: uc}
}

// CreateTransaction godoc
// @Summary  Register a ledger entry
// @Tags     transactions
// @Accept   json
// @Produce  json
// @Param    transaction  body      request.TransactionRequest  true  "Transaction"
// @Success  201          {object}  response.TransactionResponse
// @Failure  400          {object}  pkg.HTTPError
// @Router   /transactions [post]
func (h *TransactionHandler) CreateTransaction(c *gin.Context) {
	var payload request.TransactionRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, errInvalidPayload)
		return
	}

	tx, err := h.usecase.CreateTransaction(c.Request.Context(), payload.ToInput())
	if err != nil {
		respondError(c, mapTransactionError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromTransaction(tx))
}

// UpdateTransaction godoc
// @Summary  Edit a ledger entry
// @Tags     transactions
// @Accept   json
// @Produce  json
// @Param    id           path      string                      true  "Transaction ID"
// @Param    transaction  body      request.TransactionRequest  true  "Transaction"
// @Success  200          {object}  response.TransactionResponse
// @Failure  400          {object}  pkg.HTTPError
// @Failure  404          {object}  pkg.HTTPError
// @Router   /transactions/{id} [put]
func (h *TransactionHandler) UpdateTransaction(c *gin.Context) {
	var payload request.TransactionRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, errInvalidPayload)
		return
	}

	tx, err := h.usecase.UpdateTransaction(c.Request.Context(), c.Param("id"), payload.ToInput())
	if err != nil {
		respondError(c, mapTransactionError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromTransaction(tx))
}

// MarkPaid godoc
// @Summary  Mark a pending entry as paid
// @Tags     transactions
// @Produce  json
// @Param    id  path      string  true  "Transaction ID"
// @Success  200 {object}  response.TransactionResponse
// @Failure  404 {object}  pkg.HTTPError
// @Router   /transactions/{id}/pay [patch]
func (h *TransactionHandler) MarkPaid(c *gin.Context) {
	tx, err := h.usecase.MarkPaid(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, mapTransactionError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromTransaction(tx))
}

// DeleteTransaction godoc
// @Summary  Delete a ledger entry
// @Tags     transactions
// @Param    id  path  string  true  "Transaction ID"
// @Success  204
// @Failure  404  {object}  pkg.HTTPError
// @Router   /transactions/{id} [delete]
func (h *TransactionHandler) DeleteTransaction(c *gin.Context) {
	if err := h.usecase.DeleteTransaction(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, mapTransactionError(err))
		return
	}
	c.Status(http.StatusNoContent)
}

// GetTransaction godoc
// @Summary  Get a ledger entry
// @Tags     transactions
// @Produce  json
// @Param    id  path      string  true  "Transaction ID"
// @Success  200 {object}  response.TransactionResponse
// @Failure  404 {object}  pkg.HTTPError
// @Router   /transactions/{id} [get]
func (h *TransactionHandler) GetTransaction(c *gin.Context) {
	tx, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, mapTransactionError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromTransaction(tx))
}

// ListTransactions godoc
// @Summary  List ledger entries
// @Tags     transactions
// @Produce  json
// @Param    type    query    string  false  "entrada or saida"
// @Param    status  query    string  false  "pago or pendente"
// @Param    view    query    string  false  "income, expenses or pending"
// @Success  200     {array}  response.TransactionResponse
// @Failure  400     {object} pkg.HTTPError
// @Router   /transactions [get]
func (h *TransactionHandler) ListTransactions(c *gin.Context) {
	txs, err := h.usecase.List(c.Request.Context(), usecase.TransactionFilter{
		Type:   entities.TransactionType(c.Query("type")),
		Status: entities.TransactionStatus(c.Query("status")),
		View:   usecase.TransactionView(c.Query("view")),
	})
	if err != nil {
		respondError(c, mapTransactionError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromTransactions(txs))
}

func mapTransactionError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidTransactionID),
		errors.Is(err, usecase.ErrInvalidTransactionType),
		errors.Is(err, usecase.ErrInvalidTransactionCategory),
		errors.Is(err, usecase.ErrInvalidTransactionStatus),
		errors.Is(err, usecase.ErrInvalidTransactionAmount),
		errors.Is(err, usecase.ErrInvalidTransactionView):
		return errInvalidRequest
	case errors.Is(err, usecase.ErrTransactionNotFound):
		return pkg.NewDomainErrorSimple("TRANSACTION_NOT_FOUND", "Transaction not found", http.StatusNotFound)
	default:
		return internalError(err)
	}
}
