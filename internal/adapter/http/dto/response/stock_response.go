package response

import (
	"time"

	"assistencia_tecnica/internal/domain/entities"
)

type StockItemResponse struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Code          string    `json:"code"`
	Category      string    `json:"category"`
	CategoryLabel string    `json:"category_label"`
	State         string    `json:"state"`
	StateLabel    string    `json:"state_label"`
	Brand         string    `json:"brand"`
	Model         string    `json:"model"`
	Quantity      int       `json:"quantity"`
	MinQuantity   int       `json:"min_quantity"`
	PurchasePrice float64   `json:"purchase_price"`
	SalePrice     float64   `json:"sale_price"`
	Supplier      string    `json:"supplier"`
	Location      string    `json:"location"`
	Notes         string    `json:"notes"`
	LowStock      bool      `json:"low_stock"`
	OutOfStock    bool      `json:"out_of_stock"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func FromStockItem(i entities.StockItem) StockItemResponse {
	return StockItemResponse{
		ID:            i.ID,
		Name:          i.Name,
		Code:          i.Code,
		Category:      string(i.Category),
		CategoryLabel: i.Category.Label(),
		State:         string(i.State),
		StateLabel:    i.State.Label(),
		Brand:         i.Brand,
		Model:         i.Model,
		Quantity:      i.Quantity,
		MinQuantity:   i.MinQuantity,
		PurchasePrice: i.PurchasePrice.InexactFloat64(),
		SalePrice:     i.SalePrice.InexactFloat64(),
		Supplier:      i.Supplier,
		Location:      i.Location,
		Notes:         i.Notes,
		LowStock:      i.IsLowStock(),
		OutOfStock:    i.IsOutOfStock(),
		CreatedAt:     i.CreatedAt,
		UpdatedAt:     i.UpdatedAt,
	}
}

func FromStockItems(list []entities.StockItem) []StockItemResponse {
	out := make([]StockItemResponse, 0, len(list))
	for _, i := range list {
		out = append(out, FromStockItem(i))
	}
	return out
}

type StockMovementResponse struct {
	ID               string    `json:"id"`
	StockItemID      string    `json:"stock_item_id"`
	Delta            int       `json:"delta"`
	PreviousQuantity int       `json:"previous_quantity"`
	NewQuantity      int       `json:"new_quantity"`
	Reason           string    `json:"reason"`
	CreatedAt        time.Time `json:"created_at"`
}

func FromStockMovements(list []entities.StockMovement) []StockMovementResponse {
	out := make([]StockMovementResponse, 0, len(list))
	for _, m := range list {
		out = append(out, StockMovementResponse{
			ID:               m.ID,
			StockItemID:      m.StockItemID,
			Delta:            m.Delta,
			PreviousQuantity: m.PreviousQuantity,
			NewQuantity:      m.NewQuantity,
			Reason:           m.Reason,
			CreatedAt:        m.CreatedAt,
		})
	}
	return out
}
