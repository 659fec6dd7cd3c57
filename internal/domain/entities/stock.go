package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

type StockCategory string

const (
	StockCategoryTela       StockCategory = "tela"
	StockCategoryBateria    StockCategory = "bateria"
	StockCategoryCarregador StockCategory = "carregador"
	StockCategoryCabo       StockCategory = "cabo"
	StockCategoryFone       StockCategory = "fone"
	StockCategoryCapa       StockCategory = "capa"
	StockCategoryPelicula   StockCategory = "pelicula"
	StockCategoryAparelho   StockCategory = "aparelho"
	StockCategoryFerramenta StockCategory = "ferramenta"
	StockCategoryOutros     StockCategory = "outros"
)

var stockCategories = []StockCategory{
	StockCategoryTela,
	StockCategoryBateria,
	StockCategoryCarregador,
	StockCategoryCabo,
	StockCategoryFone,
	StockCategoryCapa,
	StockCategoryPelicula,
	StockCategoryAparelho,
	StockCategoryFerramenta,
	StockCategoryOutros,
}

func (c StockCategory) IsValid() bool {
	for _, v := range stockCategories {
		if v == c {
			return true
		}
	}
	return false
}

type StockState string

const (
	StockStateNovo  StockState = "novo"
	StockStateUsado StockState = "usado"
)

func (s StockState) IsValid() bool {
	return s == StockStateNovo || s == StockStateUsado
}

// SaleCondition maps the stock state onto the condition recorded on a sale.
func (s StockState) SaleCondition() SaleCondition {
	if s == StockStateNovo {
		return SaleConditionNovo
	}
	return SaleConditionUsado
}

// StockItem is an inventory row: a device for sale or a part used in repairs.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI (code-index): code
type StockItem struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	Code          string          `json:"code"`
	Category      StockCategory   `json:"category"`
	State         StockState      `json:"state"`
	Brand         string          `json:"brand"`
	Model         string          `json:"model"`
	Quantity      int             `json:"quantity"`
	MinQuantity   int             `json:"min_quantity"`
	PurchasePrice decimal.Decimal `json:"purchase_price"`
	SalePrice     decimal.Decimal `json:"sale_price"`
	Supplier      string          `json:"supplier"`
	Location      string          `json:"location"`
	Notes         string          `json:"notes"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

func (i StockItem) IsLowStock() bool {
	return i.Quantity <= i.MinQuantity
}

func (i StockItem) IsOutOfStock() bool {
	return i.Quantity == 0
}

// IsPart reports whether the item can be attached to a service order.
func (i StockItem) IsPart() bool {
	return i.Category != StockCategoryAparelho
}

// IsSellableDevice reports whether the item can be sold as a stock sale.
func (i StockItem) IsSellableDevice() bool {
	return i.Category == StockCategoryAparelho && i.Quantity > 0
}

// MovementType is the direction of a manual stock movement.
type MovementType string

const (
	MovementTypeAdd    MovementType = "add"
	MovementTypeRemove MovementType = "remove"
)

func (t MovementType) IsValid() bool {
	return t == MovementTypeAdd || t == MovementTypeRemove
}

// StockMovement records a quantity change of a stock item.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI (stock_item_id-index): stock_item_id
type StockMovement struct {
	ID               string    `json:"id"`
	StockItemID      string    `json:"stock_item_id"`
	Delta            int       `json:"delta"`
	PreviousQuantity int       `json:"previous_quantity"`
	NewQuantity      int       `json:"new_quantity"`
	Reason           string    `json:"reason"`
	CreatedAt        time.Time `json:"created_at"`
}

// NewStockMovement builds the movement that takes item from its current
// quantity to newQuantity.
func NewStockMovement(id string, item StockItem, newQuantity int, reason string, at time.Time) StockMovement {
	return StockMovement{
		ID:               id,
		StockItemID:      item.ID,
		Delta:            newQuantity - item.Quantity,
		PreviousQuantity: item.Quantity,
		NewQuantity:      newQuantity,
		Reason:           reason,
		CreatedAt:        at,
	}
}
