package request

import (
	"assistencia_tecnica/internal/domain/entities"
	"assistencia_tecnica/internal/domain/money"
	"assistencia_tecnica/internal/usecase"
)

// SaleRequest registers a device sale. With stock_item_id set, device data
// and purchase price come from the stock item.
type SaleRequest struct {
	StockItemID   string  `json:"stock_item_id"`
	Device        string  `json:"device"`
	Brand         string  `json:"brand"`
	Model         string  `json:"model"`
	Storage       string  `json:"storage"`
	Condition     string  `json:"condition" example:"Novo"`
	PurchasePrice float64 `json:"purchase_price" binding:"gte=0"`
	SalePrice     float64 `json:"sale_price" binding:"gt=0"`
	CustomerName  string  `json:"customer_name"`
	Notes         string  `json:"notes"`
}

func (r SaleRequest) ToInput() usecase.SaleInput {
	return usecase.SaleInput{
		StockItemID:   r.StockItemID,
		Device:        r.Device,
		Brand:         r.Brand,
		Model:         r.Model,
		Storage:       r.Storage,
		Condition:     entities.SaleCondition(r.Condition),
		PurchasePrice: money.FromFloat(r.PurchasePrice),
		SalePrice:     money.FromFloat(r.SalePrice),
		CustomerName:  r.CustomerName,
		Notes:         r.Notes,
	}
}
