package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

type TransactionType string

const (
	TransactionTypeEntrada TransactionType = "entrada"
	TransactionTypeSaida   TransactionType = "saida"
)

func (t TransactionType) IsValid() bool {
	return t == TransactionTypeEntrada || t == TransactionTypeSaida
}

type TransactionStatus string

const (
	TransactionStatusPago     TransactionStatus = "pago"
	TransactionStatusPendente TransactionStatus = "pendente"
)

func (s TransactionStatus) IsValid() bool {
	return s == TransactionStatusPago || s == TransactionStatusPendente
}

type TransactionCategory string

const (
	TransactionCategoryServico TransactionCategory = "servico"
	TransactionCategoryVenda   TransactionCategory = "venda"
	TransactionCategoryDespesa TransactionCategory = "despesa"
	TransactionCategoryCompra  TransactionCategory = "compra"
)

func (c TransactionCategory) IsValid() bool {
	switch c {
	case TransactionCategoryServico, TransactionCategoryVenda, TransactionCategoryDespesa, TransactionCategoryCompra:
		return true
	}
	return false
}

// Transaction is a ledger entry (income or expense).
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI (service_id-index): service_id, set on entries opened by a service order
type Transaction struct {
	ID               string              `json:"id"`
	Type             TransactionType     `json:"type"`
	Category         TransactionCategory `json:"category"`
	Description      string              `json:"description"`
	Amount           decimal.Decimal     `json:"amount"`
	Status           TransactionStatus   `json:"status"`
	CustomerName     string              `json:"customer_name"`
	ServiceID        string              `json:"service_id"`
	CheckoutID       string              `json:"checkout_id"`
	PaymentReference string              `json:"payment_reference"`
	CreatedAt        time.Time           `json:"created_at"`
	UpdatedAt        time.Time           `json:"updated_at"`
}

func (t Transaction) IsIncome() bool {
	return t.Type == TransactionTypeEntrada && t.Status == TransactionStatusPago
}

func (t Transaction) IsExpense() bool {
	return t.Type == TransactionTypeSaida && t.Status == TransactionStatusPago
}

func (t Transaction) IsPendingIncome() bool {
	return t.Type == TransactionTypeEntrada && t.Status == TransactionStatusPendente
}
