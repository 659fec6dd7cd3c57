package entities

var categoryLabels = map[string]string{
	"tela":       "Tela",
	"bateria":    "Bateria",
	"carregador": "Carregador",
	"cabo":       "Cabo",
	"fone":       "Fone",
	"capa":       "Capa",
	"pelicula":   "Película",
	"aparelho":   "Aparelho",
	"ferramenta": "Ferramenta",
	"outros":     "Outros",
	"servico":    "Serviço",
	"venda":      "Venda",
	"despesa":    "Despesa",
	"compra":     "Compra",
}

// CategoryLabel returns the display label of a stock or transaction
// category. Unknown values are returned unchanged.
func CategoryLabel(category string) string {
	if l, ok := categoryLabels[category]; ok {
		return l
	}
	return category
}

func (c StockCategory) Label() string {
	return CategoryLabel(string(c))
}

func (c TransactionCategory) Label() string {
	return CategoryLabel(string(c))
}

func (t TransactionType) Label() string {
	switch t {
	case TransactionTypeEntrada:
		return "Entrada"
	case TransactionTypeSaida:
		return "Saída"
	}
	return string(t)
}

func (s TransactionStatus) Label() string {
	switch s {
	case TransactionStatusPago:
		return "Pago"
	case TransactionStatusPendente:
		return "Pendente"
	}
	return string(s)
}

func (s StockState) Label() string {
	switch s {
	case StockStateNovo:
		return "Novo"
	case StockStateUsado:
		return "Semi novo"
	}
	return string(s)
}
