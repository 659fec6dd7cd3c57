package repository

import (
	"context"

	"assistencia_tecnica/internal/domain/entities"
	"assistencia_tecnica/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

const defaultSalesTableName = "sales"

type saleItem struct {
	ID              string `dynamodbav:"id"`
	Device          string `dynamodbav:"device"`
	Brand           string `dynamodbav:"brand"`
	Model           string `dynamodbav:"model"`
	Storage         string `dynamodbav:"storage"`
	Condition       string `dynamodbav:"condition"`
	Quantity        int    `dynamodbav:"quantity"`
	UnitPrice       string `dynamodbav:"unit_price"`
	PurchasePrice   string `dynamodbav:"purchase_price"`
	SalePrice       string `dynamodbav:"sale_price"`
	Profit          string `dynamodbav:"profit"`
	DiscountPercent string `dynamodbav:"discount_percent"`
	CustomerName    string `dynamodbav:"customer_name"`
	Notes           string `dynamodbav:"notes"`
	PaymentMethod   string `dynamodbav:"payment_method,omitempty"`
	StockItemID     string `dynamodbav:"stock_item_id,omitempty"`
	// GSI key: DynamoDB rejects an empty string here, so it is left out.
	CheckoutID string `dynamodbav:"checkout_id,omitempty"`
	CreatedAt  string `dynamodbav:"created_at"`
}

// SaleDynamoRepository persists sales in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: checkout_id-index (PK: checkout_id)
type SaleDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.ISaleRepository = (*SaleDynamoRepository)(nil)

func NewSaleDynamoRepository(ddb *dynamodb.Client, tableName string) *SaleDynamoRepository {
	return &SaleDynamoRepository{
		ddb:       ddb,
		tableName: tableOrDefault(tableName, defaultSalesTableName),
	}
}

func (r *SaleDynamoRepository) Create(ctx context.Context, s entities.Sale) (entities.Sale, error) {
	if err := putNew(ctx, r.ddb, r.tableName, toSaleItem(s)); err != nil {
		return entities.Sale{}, err
	}
	return s, nil
}

func (r *SaleDynamoRepository) GetByID(ctx context.Context, id string) (entities.Sale, error) {
	var it saleItem
	found, err := getByID(ctx, r.ddb, r.tableName, id, &it)
	if err != nil || !found {
		return entities.Sale{}, err
	}
	return fromSaleItem(it), nil
}

func (r *SaleDynamoRepository) List(ctx context.Context) ([]entities.Sale, error) {
	items, err := scanAll[saleItem](ctx, r.ddb, r.tableName)
	if err != nil {
		return nil, err
	}
	return fromSaleItems(items), nil
}

func (r *SaleDynamoRepository) ListByCheckoutID(ctx context.Context, checkoutID string) ([]entities.Sale, error) {
	items, err := queryIndex[saleItem](ctx, r.ddb, r.tableName, attrCheckoutID, checkoutID)
	if err != nil {
		return nil, err
	}
	return fromSaleItems(items), nil
}

func (r *SaleDynamoRepository) Update(ctx context.Context, s entities.Sale) (entities.Sale, error) {
	ok, err := putExisting(ctx, r.ddb, r.tableName, toSaleItem(s))
	if err != nil || !ok {
		return entities.Sale{}, err
	}
	return s, nil
}

func (r *SaleDynamoRepository) Delete(ctx context.Context, id string) error {
	return deleteByID(ctx, r.ddb, r.tableName, id)
}

func toSaleItem(s entities.Sale) saleItem {
	return saleItem{
		ID:              s.ID,
		Device:          s.Device,
		Brand:           s.Brand,
		Model:           s.Model,
		Storage:         s.Storage,
		Condition:       string(s.Condition),
		Quantity:        s.Quantity,
		UnitPrice:       formatDecimal(s.UnitPrice),
		PurchasePrice:   formatDecimal(s.PurchasePrice),
		SalePrice:       formatDecimal(s.SalePrice),
		Profit:          formatDecimal(s.Profit),
		DiscountPercent: formatDecimal(s.DiscountPercent),
		CustomerName:    s.CustomerName,
		Notes:           s.Notes,
		PaymentMethod:   string(s.PaymentMethod),
		StockItemID:     s.StockItemID,
		CheckoutID:      s.CheckoutID,
		CreatedAt:       formatTime(s.CreatedAt),
	}
}

func fromSaleItem(it saleItem) entities.Sale {
	return entities.Sale{
		ID:              it.ID,
		Device:          it.Device,
		Brand:           it.Brand,
		Model:           it.Model,
		Storage:         it.Storage,
		Condition:       entities.SaleCondition(it.Condition),
		Quantity:        it.Quantity,
		UnitPrice:       parseDecimal(it.UnitPrice),
		PurchasePrice:   parseDecimal(it.PurchasePrice),
		SalePrice:       parseDecimal(it.SalePrice),
		Profit:          parseDecimal(it.Profit),
		DiscountPercent: parseDecimal(it.DiscountPercent),
		CustomerName:    it.CustomerName,
		Notes:           it.Notes,
		PaymentMethod:   entities.PaymentMethod(it.PaymentMethod),
		StockItemID:     it.StockItemID,
		CheckoutID:      it.CheckoutID,
		CreatedAt:       parseTime(it.CreatedAt),
	}
}

func fromSaleItems(items []saleItem) []entities.Sale {
	out := make([]entities.Sale, 0, len(items))
	for _, it := range items {
		out = append(out, fromSaleItem(it))
	}
	return out
}
