package response

import (
	"time"

	"assistencia_tecnica/internal/domain/entities"
)

type UsedPartResponse struct {
	StockItemID string  `json:"stock_item_id"`
	Name        string  `json:"name"`
	Quantity    int     `json:"quantity"`
	UnitPrice   float64 `json:"unit_price"`
	Total       float64 `json:"total"`
}

type ServiceResponse struct {
	ID            string             `json:"id"`
	Number        int64              `json:"number"`
	CustomerName  string             `json:"customer_name"`
	CustomerPhone string             `json:"customer_phone"`
	Device        string             `json:"device"`
	Problem       string             `json:"problem"`
	Value         float64            `json:"value"`
	PartsTotal    float64            `json:"parts_total"`
	Status        string             `json:"status"`
	DeliveryDate  *time.Time         `json:"delivery_date,omitempty"`
	Notes         string             `json:"notes"`
	UsedParts     []UsedPartResponse `json:"used_parts"`
	CreatedAt     time.Time          `json:"created_at"`
	UpdatedAt     time.Time          `json:"updated_at"`
}

func FromService(s entities.Service) ServiceResponse {
	parts := make([]UsedPartResponse, 0, len(s.UsedParts))
	for _, p := range s.UsedParts {
		parts = append(parts, UsedPartResponse{
			StockItemID: p.StockItemID,
			Name:        p.Name,
			Quantity:    p.Quantity,
			UnitPrice:   p.UnitPrice.InexactFloat64(),
			Total:       p.Total().InexactFloat64(),
		})
	}
	return ServiceResponse{
		ID:            s.ID,
		Number:        s.Number,
		CustomerName:  s.CustomerName,
		CustomerPhone: s.CustomerPhone,
		Device:        s.Device,
		Problem:       s.Problem,
		Value:         s.Value.InexactFloat64(),
		PartsTotal:    s.PartsTotal().InexactFloat64(),
		Status:        string(s.Status),
		DeliveryDate:  optionalTime(s.DeliveryDate),
		Notes:         s.Notes,
		UsedParts:     parts,
		CreatedAt:     s.CreatedAt,
		UpdatedAt:     s.UpdatedAt,
	}
}

func FromServices(list []entities.Service) []ServiceResponse {
	out := make([]ServiceResponse, 0, len(list))
	for _, s := range list {
		out = append(out, FromService(s))
	}
	return out
}

func optionalTime(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	return &t
}
