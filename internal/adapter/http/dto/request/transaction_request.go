package request

import (
	"assistencia_tecnica/internal/domain/entities"
	"assistencia_tecnica/internal/domain/money"
	"assistencia_tecnica/internal/usecase"
)

type TransactionRequest struct {
	Type         string  `json:"type" binding:"required" example:"entrada"`
	Category     string  `json:"category" binding:"required" example:"servico"`
	Description  string  `json:"description"`
	Amount       float64 `json:"amount" binding:"gt=0"`
	CustomerName string  `json:"customer_name"`
}

func (r TransactionRequest) ToInput() usecase.TransactionInput {
	return usecase.TransactionInput{
		Type:         entities.TransactionType(r.Type),
		Category:     entities.TransactionCategory(r.Category),
		Description:  r.Description,
		Amount:       money.FromFloat(r.Amount),
		CustomerName: r.CustomerName,
	}
}
