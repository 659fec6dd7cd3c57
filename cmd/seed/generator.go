package main

import (
	"fmt"
	"strings"
	"time"

	"assistencia_tecnica/internal/domain/entities"
	"assistencia_tecnica/internal/domain/money"
	"assistencia_tecnica/internal/usecase"

	"github.com/brianvoe/gofakeit/v7"
)

var (
	brands = []string{"Apple", "Samsung", "Motorola", "Xiaomi", "LG", "Asus"}
	models = map[string][]string{
		"Apple":    {"iPhone 11", "iPhone 12", "iPhone 13", "iPhone SE"},
		"Samsung":  {"Galaxy A12", "Galaxy A32", "Galaxy S21", "Galaxy M31"},
		"Motorola": {"Moto G8", "Moto G20", "Moto E7", "Edge 20"},
		"Xiaomi":   {"Redmi Note 9", "Redmi Note 10", "Poco X3", "Mi 11 Lite"},
		"LG":       {"K41S", "K50", "K62"},
		"Asus":     {"Zenfone 6", "Zenfone Max Pro"},
	}
	problems = []string{
		"Tela quebrada",
		"Não carrega",
		"Bateria viciada",
		"Não liga",
		"Conector de carga com mau contato",
		"Alto-falante sem som",
		"Câmera traseira embaçada",
		"Caiu na água",
	}
	partCategories = []entities.StockCategory{
		entities.StockCategoryTela,
		entities.StockCategoryBateria,
		entities.StockCategoryCarregador,
		entities.StockCategoryCabo,
		entities.StockCategoryFone,
		entities.StockCategoryCapa,
		entities.StockCategoryPelicula,
	}
	storages  = []string{"64GB", "128GB", "256GB"}
	expenses  = []string{"Aluguel", "Energia", "Internet", "Material de limpeza", "Frete de peças"}
	locations = []string{"Gaveta 1", "Gaveta 2", "Prateleira A", "Prateleira B", "Vitrine"}
)

// generator builds use case inputs with plausible shop data.
type generator struct {
	f *gofakeit.Faker
}

func newGenerator(seed uint64) *generator {
	return &generator{f: gofakeit.New(seed)}
}

func (g *generator) brandModel() (string, string) {
	brand := g.f.RandomString(brands)
	return brand, g.f.RandomString(models[brand])
}

func (g *generator) price(min, max float64) (purchase, sale float64) {
	purchase = g.f.Price(min, max)
	// 40% to 120% markup
	sale = purchase * (1.4 + g.f.Float64Range(0, 0.8))
	return purchase, sale
}

func (g *generator) part() usecase.StockItemInput {
	brand, model := g.brandModel()
	category := partCategories[g.f.Number(0, len(partCategories)-1)]
	purchase, sale := g.price(5, 300)
	return usecase.StockItemInput{
		Name:          fmt.Sprintf("%s %s", category.Label(), model),
		Code:          g.f.Numerify("789##########"),
		Category:      category,
		State:         entities.StockStateNovo,
		Brand:         brand,
		Model:         model,
		Quantity:      g.f.Number(0, 15),
		MinQuantity:   g.f.Number(1, 3),
		PurchasePrice: money.FromFloat(purchase),
		SalePrice:     money.FromFloat(sale),
		Supplier:      g.f.Company(),
		Location:      g.f.RandomString(locations),
	}
}

func (g *generator) device() usecase.StockItemInput {
	brand, model := g.brandModel()
	state := entities.StockStateNovo
	if g.f.Bool() {
		state = entities.StockStateUsado
	}
	purchase, sale := g.price(400, 4000)
	return usecase.StockItemInput{
		Name:          fmt.Sprintf("%s %s", model, g.f.RandomString(storages)),
		Code:          g.f.Numerify("IMEI###############"),
		Category:      entities.StockCategoryAparelho,
		State:         state,
		Brand:         brand,
		Model:         model,
		Quantity:      g.f.Number(1, 4),
		MinQuantity:   1,
		PurchasePrice: money.FromFloat(purchase),
		SalePrice:     money.FromFloat(sale),
		Supplier:      g.f.Company(),
		Location:      "Vitrine",
	}
}

// service builds an order that may use one unit of a part in stock.
func (g *generator) service(parts []entities.StockItem, now time.Time) usecase.ServiceInput {
	brand, model := g.brandModel()
	in := usecase.ServiceInput{
		CustomerName:  g.f.Name(),
		CustomerPhone: g.f.Numerify("(##) 9####-####"),
		Device:        strings.TrimSpace(brand + " " + model),
		Problem:       g.f.RandomString(problems),
		Value:         money.FromFloat(g.f.Price(50, 400)),
		DeliveryDate:  time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC).AddDate(0, 0, g.f.Number(1, 10)),
		Notes:         g.f.Sentence(6),
	}

	available := make([]entities.StockItem, 0, len(parts))
	for _, p := range parts {
		if p.IsPart() && p.Quantity > 0 {
			available = append(available, p)
		}
	}
	if len(available) > 0 && g.f.Bool() {
		p := available[g.f.Number(0, len(available)-1)]
		in.Parts = []usecase.PartInput{{StockItemID: p.ID, Quantity: 1}}
	}
	return in
}

func (g *generator) status() entities.ServiceStatus {
	return []entities.ServiceStatus{
		entities.ServiceStatusEmAndamento,
		entities.ServiceStatusAguardandoPeca,
		entities.ServiceStatusPronto,
		entities.ServiceStatusEntregue,
	}[g.f.Number(0, 3)]
}

// sale sells one unit of a device from stock, or a walk-in device when
// devices is empty.
func (g *generator) sale(devices []entities.StockItem) usecase.SaleInput {
	customer := g.f.Name()
	sellable := make([]entities.StockItem, 0, len(devices))
	for _, d := range devices {
		if d.IsSellableDevice() {
			sellable = append(sellable, d)
		}
	}
	if len(sellable) > 0 {
		d := sellable[g.f.Number(0, len(sellable)-1)]
		return usecase.SaleInput{
			StockItemID:  d.ID,
			SalePrice:    d.SalePrice,
			CustomerName: customer,
		}
	}

	brand, model := g.brandModel()
	purchase, sale := g.price(300, 3000)
	return usecase.SaleInput{
		Device:        model,
		Brand:         brand,
		Model:         model,
		Storage:       g.f.RandomString(storages),
		Condition:     entities.SaleConditionSeminovo,
		PurchasePrice: money.FromFloat(purchase),
		SalePrice:     money.FromFloat(sale),
		CustomerName:  customer,
	}
}

func (g *generator) expense() usecase.TransactionInput {
	return usecase.TransactionInput{
		Type:        entities.TransactionTypeSaida,
		Category:    entities.TransactionCategoryDespesa,
		Description: g.f.RandomString(expenses),
		Amount:      money.FromFloat(g.f.Price(30, 1500)),
	}
}
