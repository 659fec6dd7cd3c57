package request

import (
	"assistencia_tecnica/internal/domain/money"
	"assistencia_tecnica/internal/usecase"
)

type UsedPartRequest struct {
	StockItemID string `json:"stock_item_id" binding:"required,notblank"`
	Quantity    int    `json:"quantity" binding:"required,min=1"`
}

// ServiceRequest creates or edits a service order. Value is the labor
// amount; the parts are priced from stock and added to it.
type ServiceRequest struct {
	CustomerName  string            `json:"customer_name" binding:"required,notblank"`
	CustomerPhone string            `json:"customer_phone" binding:"required,notblank"`
	Device        string            `json:"device" binding:"required,notblank"`
	Problem       string            `json:"problem" binding:"required,notblank"`
	Value         float64           `json:"value" binding:"gte=0"`
	DeliveryDate  string            `json:"delivery_date" binding:"required" example:"2025-06-30"`
	Notes         string            `json:"notes"`
	UsedParts     []UsedPartRequest `json:"used_parts" binding:"dive"`
}

func (r ServiceRequest) ToInput() (usecase.ServiceInput, error) {
	delivery, err := ParseDate(r.DeliveryDate)
	if err != nil {
		return usecase.ServiceInput{}, err
	}
	parts := make([]usecase.PartInput, 0, len(r.UsedParts))
	for _, p := range r.UsedParts {
		parts = append(parts, usecase.PartInput{StockItemID: p.StockItemID, Quantity: p.Quantity})
	}
	return usecase.ServiceInput{
		CustomerName:  r.CustomerName,
		CustomerPhone: r.CustomerPhone,
		Device:        r.Device,
		Problem:       r.Problem,
		Value:         money.FromFloat(r.Value),
		DeliveryDate:  delivery,
		Notes:         r.Notes,
		Parts:         parts,
	}, nil
}

type ServiceStatusRequest struct {
	Status string `json:"status" binding:"required" example:"Pronto"`
}
