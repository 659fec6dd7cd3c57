package request

import (
	"assistencia_tecnica/internal/domain/entities"
	"assistencia_tecnica/internal/domain/money"
	"assistencia_tecnica/internal/usecase"
)

type StockItemRequest struct {
	Name          string  `json:"name" binding:"required,notblank"`
	Code          string  `json:"code"`
	Category      string  `json:"category" binding:"required" example:"tela"`
	State         string  `json:"state" binding:"required" example:"novo"`
	Brand         string  `json:"brand"`
	Model         string  `json:"model"`
	Quantity      int     `json:"quantity" binding:"gte=0"`
	MinQuantity   int     `json:"min_quantity" binding:"gte=0"`
	PurchasePrice float64 `json:"purchase_price" binding:"gte=0"`
	SalePrice     float64 `json:"sale_price" binding:"gte=0"`
	Supplier      string  `json:"supplier"`
	Location      string  `json:"location"`
	Notes         string  `json:"notes"`
}

func (r StockItemRequest) ToInput() usecase.StockItemInput {
	return usecase.StockItemInput{
		Name:          r.Name,
		Code:          r.Code,
		Category:      entities.StockCategory(r.Category),
		State:         entities.StockState(r.State),
		Brand:         r.Brand,
		Model:         r.Model,
		Quantity:      r.Quantity,
		MinQuantity:   r.MinQuantity,
		PurchasePrice: money.FromFloat(r.PurchasePrice),
		SalePrice:     money.FromFloat(r.SalePrice),
		Supplier:      r.Supplier,
		Location:      r.Location,
		Notes:         r.Notes,
	}
}

// StockMovementRequest is a manual add/remove on an item.
type StockMovementRequest struct {
	Type     string `json:"type" binding:"required,oneof=add remove" example:"add"`
	Quantity int    `json:"quantity" binding:"required,min=1"`
	Reason   string `json:"reason"`
}
