package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// ServiceStatus is the lifecycle of a service order (ordem de serviço).
type ServiceStatus string

const (
	ServiceStatusEmAndamento    ServiceStatus = "Em andamento"
	ServiceStatusAguardandoPeca ServiceStatus = "Aguardando peça"
	ServiceStatusPronto         ServiceStatus = "Pronto"
	ServiceStatusEntregue       ServiceStatus = "Entregue"
)

func (s ServiceStatus) IsValid() bool {
	switch s {
	case ServiceStatusEmAndamento, ServiceStatusAguardandoPeca, ServiceStatusPronto, ServiceStatusEntregue:
		return true
	}
	return false
}

// UsedPart is a stock item consumed by a service order.
type UsedPart struct {
	StockItemID string          `json:"stock_item_id"`
	Name        string          `json:"name"`
	Quantity    int             `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
}

func (p UsedPart) Total() decimal.Decimal {
	return p.UnitPrice.Mul(decimal.NewFromInt(int64(p.Quantity)))
}

// Service is a repair job (OS) persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: id
//   - number comes from the counters table and is what customers see as "OS Nº".
//
// Value already includes the parts listed in UsedParts.
type Service struct {
	ID            string          `json:"id"`
	Number        int64           `json:"number"`
	CustomerName  string          `json:"customer_name"`
	CustomerPhone string          `json:"customer_phone"`
	Device        string          `json:"device"`
	Problem       string          `json:"problem"`
	Value         decimal.Decimal `json:"value"`
	Status        ServiceStatus   `json:"status"`
	DeliveryDate  time.Time       `json:"delivery_date"`
	Notes         string          `json:"notes"`
	UsedParts     []UsedPart      `json:"used_parts"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

func (s Service) PartsTotal() decimal.Decimal {
	total := decimal.Zero
	for _, p := range s.UsedParts {
		total = total.Add(p.Total())
	}
	return total
}

func (s Service) IsDelivered() bool {
	return s.Status == ServiceStatusEntregue
}
