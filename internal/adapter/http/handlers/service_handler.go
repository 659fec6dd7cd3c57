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

// ServiceHandler exposes service orders (ordens de serviço).
type ServiceHandler struct {
	usecase usecase.IServiceUseCase
}

func NewServiceHandler(uc usecase.IServiceUseCase) *ServiceHandler {
	return &ServiceHandler{usecase: uc}
}

// CreateService godoc
// @Summary      Create a service order
// @Description  Parts are taken from stock and their sale price is added to the value
// @Tags         services
// @Accept       json
// @Produce      json
// @Param        service  body      request.ServiceRequest  true  "Service order"
// @Success      201      {object}  response.ServiceResponse
// @Failure      400      {object}  pkg.HTTPError
// @Failure      409      {object}  pkg.HTTPError
// @Router       /services [post]
func (h *ServiceHandler) CreateService(c *gin.Context) {
	in, ok := bindServiceRequest(c)
	if !ok {
		return
	}

	service, err := h.usecase.CreateService(c.Request.Context(), in)
	if err != nil {
		respondError(c, mapServiceError(err))
		return
	}

	c.JSON(http.StatusCreated, response.FromService(service))
}

// UpdateService godoc
// @Summary  Edit a service order
// @Tags     services
// @Accept   json
// @Produce  json
// @Param    id       path      string                  true  "Service ID"
// @Param    service  body      request.ServiceRequest  true  "Service order"
// @Success  200      {object}  response.ServiceResponse
// @Failure  400      {object}  pkg.HTTPError
// @Failure  404      {object}  pkg.HTTPError
// @Router   /services/{id} [put]
func (h *ServiceHandler) UpdateService(c *gin.Context) {
	in, ok := bindServiceRequest(c)
	if !ok {
		return
	}

	service, err := h.usecase.UpdateService(c.Request.Context(), c.Param("id"), in)
	if err != nil {
		respondError(c, mapServiceError(err))
		return
	}

	c.JSON(http.StatusOK, response.FromService(service))
}

// UpdateStatus godoc
// @Summary  Change the status of a service order
// @Tags     services
// @Accept   json
// @Produce  json
// @Param    id      path      string                        true  "Service ID"
// @Param    status  body      request.ServiceStatusRequest  true  "New status"
// @Success  200     {object}  response.ServiceResponse
// @Failure  400     {object}  pkg.HTTPError
// @Failure  404     {object}  pkg.HTTPError
// @Router   /services/{id}/status [patch]
func (h *ServiceHandler) UpdateStatus(c *gin.Context) {
	var payload request.ServiceStatusRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, errInvalidPayload)
		return
	}

	service, err := h.usecase.UpdateStatus(c.Request.Context(), c.Param("id"), entities.ServiceStatus(payload.Status))
	if err != nil {
		respondError(c, mapServiceError(err))
		return
	}

	c.JSON(http.StatusOK, response.FromService(service))
}

// DeleteService godoc
// @Summary  Delete a service order
// @Tags     services
// @Param    id  path  string  true  "Service ID"
// @Success  204
// @Failure  404  {object}  pkg.HTTPError
// @Router   /services/{id} [delete]
func (h *ServiceHandler) DeleteService(c *gin.Context) {
	if err := h.usecase.DeleteService(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, mapServiceError(err))
		return
	}
	c.Status(http.StatusNoContent)
}

// GetService godoc
// @Summary  Get a service order
// @Tags     services
// @Produce  json
// @Param    id  path      string  true  "Service ID"
// @Success  200 {object}  response.ServiceResponse
// @Failure  404 {object}  pkg.HTTPError
// @Router   /services/{id} [get]
func (h *ServiceHandler) GetService(c *gin.Context) {
	service, err := h.usecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, mapServiceError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromService(service))
}

// ListServices godoc
// @Summary  List service orders, newest first
// @Tags     services
// @Produce  json
// @Param    q   query     string  false  "Search by customer, phone, device, problem or number"
// @Success  200 {array}   response.ServiceResponse
// @Router   /services [get]
func (h *ServiceHandler) ListServices(c *gin.Context) {
	services, err := h.usecase.List(c.Request.Context(), c.Query("q"))
	if err != nil {
		respondError(c, mapServiceError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromServices(services))
}

func bindServiceRequest(c *gin.Context) (usecase.ServiceInput, bool) {
	var payload request.ServiceRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, errInvalidPayload)
		return usecase.ServiceInput{}, false
	}
	in, err := payload.ToInput()
	if err != nil {
		respondError(c, pkg.NewDomainErrorSimple("INVALID_DELIVERY_DATE", "Invalid delivery date", http.StatusBadRequest))
		return usecase.ServiceInput{}, false
	}
	return in, true
}

func mapServiceError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidServiceID),
		errors.Is(err, usecase.ErrInvalidCustomer),
		errors.Is(err, usecase.ErrInvalidDevice),
		errors.Is(err, usecase.ErrInvalidProblem),
		errors.Is(err, usecase.ErrInvalidServiceValue),
		errors.Is(err, usecase.ErrInvalidPart):
		return errInvalidRequest
	case errors.Is(err, usecase.ErrInvalidDeliveryDate):
		return pkg.NewDomainErrorSimple("INVALID_DELIVERY_DATE", "Invalid delivery date", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidServiceStatus):
		return pkg.NewDomainErrorSimple("INVALID_STATUS", "Invalid service status", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrServiceNotFound):
		return pkg.NewDomainErrorSimple("SERVICE_NOT_FOUND", "Service not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrPartNotFound):
		return pkg.NewDomainErrorSimple("PART_NOT_FOUND", "Part not found in stock", http.StatusNotFound)
	case errors.Is(err, usecase.ErrInsufficientPartsStock):
		return pkg.NewDomainErrorSimple("INSUFFICIENT_STOCK", "Not enough parts in stock", http.StatusConflict)
	case errors.Is(err, usecase.ErrStockConflict):
		return pkg.NewDomainErrorSimple("STOCK_CONFLICT", "Stock changed concurrently, try again", http.StatusConflict)
	default:
		return internalError(err)
	}
}
