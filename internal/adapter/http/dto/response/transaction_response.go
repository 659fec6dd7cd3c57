package response

import (
	"time"

	"assistencia_tecnica/internal/domain/entities"
)

type TransactionResponse struct {
	ID               string    `json:"id"`
	Type             string    `json:"type"`
	TypeLabel        string    `json:"type_label"`
	Category         string    `json:"category"`
	CategoryLabel    string    `json:"category_label"`
	Description      string    `json:"description"`
	Amount           float64   `json:"amount"`
	Status           string    `json:"status"`
	StatusLabel      string    `json:"status_label"`
	CustomerName     string    `json:"customer_name"`
	ServiceID        string    `json:"service_id,omitempty"`
	CheckoutID       string    `json:"checkout_id,omitempty"`
	PaymentReference string    `json:"payment_reference,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

func FromTransaction(t entities.Transaction) TransactionResponse {
	return TransactionResponse{
		ID:               t.ID,
		Type:             string(t.Type),
		TypeLabel:        t.Type.Label(),
		Category:         string(t.Category),
		CategoryLabel:    t.Category.Label(),
		Description:      t.Description,
		Amount:           t.Amount.InexactFloat64(),
		Status:           string(t.Status),
		StatusLabel:      t.Status.Label(),
		CustomerName:     t.CustomerName,
		ServiceID:        t.ServiceID,
		CheckoutID:       t.CheckoutID,
		PaymentReference: t.PaymentReference,
		CreatedAt:        t.CreatedAt,
		UpdatedAt:        t.UpdatedAt,
	}
}

func FromTransactions(list []entities.Transaction) []TransactionResponse {
	out := make([]TransactionResponse, 0, len(list))
	for _, t := range list {
		out = append(out, FromTransaction(t))
	}
	return out
}
