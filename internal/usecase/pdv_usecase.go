package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"assistencia_tecnica/internal/domain/entities"
	"assistencia_tecnica/internal/domain/money"
	"assistencia_tecnica/internal/infrastructure/metrics"
	"assistencia_tecnica/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

var (
	ErrInvalidCartID        = errors.New("invalid cart id")
	ErrEmptyCart            = errors.New("cart is empty")
	ErrCartItemNotFound     = errors.New("item not in cart")
	ErrProductUnavailable   = errors.New("product out of stock")
	ErrMaxQuantityReached   = errors.New("maximum quantity reached")
	ErrInvalidCartQuantity  = errors.New("invalid cart quantity")
	ErrInvalidDiscount      = errors.New("invalid discount percent")
	ErrInvalidCartTotal     = errors.New("cart total must be greater than zero")
	ErrInvalidPaymentMethod = errors.New("invalid payment method")
	ErrInvalidCheckoutID    = errors.New("invalid checkout id")
	ErrCheckoutNotFound     = errors.New("checkout not found")
)

const reasonPDVSale = "Venda PDV"

type CheckoutInput struct {
	CustomerName    string
	PaymentMethod   entities.PaymentMethod
	ProviderPayload json.RawMessage
}

// CheckoutResult is everything a finished checkout wrote. Payment is nil
// when no provider charge was made.
type CheckoutResult struct {
	CheckoutID  string               `json:"checkout_id"`
	Sales       []entities.Sale      `json:"sales"`
	Transaction entities.Transaction `json:"transaction"`
	Payment     *entities.Payment    `json:"payment,omitempty"`
	Receipt     entities.Receipt     `json:"receipt"`
}

type TodaySales struct {
	Sales []entities.Sale
	Total decimal.Decimal
	Count int
}

// IPDVUseCase exposes the point of sale: product lookup, carts and checkout.
type IPDVUseCase interface {
	SearchProducts(ctx context.Context, query string) ([]entities.StockItem, error)
	GetCart(ctx context.Context, cartID string) (entities.Cart, error)
	AddItem(ctx context.Context, cartID, stockItemID string) (entities.Cart, error)
	AddItemByCode(ctx context.Context, cartID, code string) (entities.Cart, error)
	UpdateItemQuantity(ctx context.Context, cartID, stockItemID string, quantity int) (entities.Cart, error)
	RemoveItem(ctx context.Context, cartID, stockItemID string) (entities.Cart, error)
	SetDiscount(ctx context.Context, cartID string, percent decimal.Decimal) (entities.Cart, error)
	ClearCart(ctx context.Context, cartID string) error
	Checkout(ctx context.Context, cartID string, in CheckoutInput) (CheckoutResult, error)
	TodaySales(ctx context.Context) (TodaySales, error)
	Receipt(ctx context.Context, checkoutID string) (entities.Receipt, error)
}

type PDVUseCase struct {
	stockRepo   interfaces.IStockRepository
	saleRepo    interfaces.ISaleRepository
	txRepo      interfaces.ITransactionRepository
	paymentRepo interfaces.IPaymentRepository
	carts       interfaces.ICartStore
	gateway     interfaces.IPaymentGateway
	payments    PaymentSettings
	loc         *time.Location
	now         func() time.Time
}

var _ IPDVUseCase = (*PDVUseCase)(nil)

func NewPDVUseCase(
	stockRepo interfaces.IStockRepository,
	saleRepo interfaces.ISaleRepository,
	txRepo interfaces.ITransactionRepository,
	paymentRepo interfaces.IPaymentRepository,
	carts interfaces.ICartStore,
	gateway interfaces.IPaymentGateway,
	payments PaymentSettings,
	loc *time.Location,
) *PDVUseCase {
	if loc == nil {
		loc = time.Local
	}
	return &PDVUseCase{
		stockRepo:   stockRepo,
		saleRepo:    saleRepo,
		txRepo:      txRepo,
		paymentRepo: paymentRepo,
		carts:       carts,
		gateway:     gateway,
		payments:    payments,
		loc:         loc,
		now:         time.Now,
	}
}

// SearchProducts lists what can be sold right now, ordered by name.
func (u *PDVUseCase) SearchProducts(ctx context.Context, query string) ([]entities.StockItem, error) {
	items, err := NewStockUseCase(u.stockRepo).List(ctx, StockFilter{Query: query})
	if err != nil {
		return nil, err
	}
	out := items[:0]
	for _, it := range items {
		if it.Quantity > 0 {
			out = append(out, it)
		}
	}
	return out, nil
}

// GetCart returns the stored cart, or a fresh one.
func (u *PDVUseCase) GetCart(ctx context.Context, cartID string) (entities.Cart, error) {
	cartID = strings.TrimSpace(cartID)
	if cartID == "" {
		return entities.Cart{}, ErrInvalidCartID
	}
	cart, err := u.carts.Get(ctx, cartID)
	if err != nil {
		return entities.Cart{}, err
	}
	if cart.ID == "" {
		cart = entities.Cart{ID: cartID, Items: []entities.CartItem{}, DiscountPercent: decimal.Zero}
	}
	return cart, nil
}

func (u *PDVUseCase) AddItem(ctx context.Context, cartID, stockItemID string) (entities.Cart, error) {
	stockItemID = strings.TrimSpace(stockItemID)
	if stockItemID == "" {
		return entities.Cart{}, ErrInvalidStockItemID
	}
	item, err := u.stockRepo.GetByID(ctx, stockItemID)
	if err != nil {
		return entities.Cart{}, err
	}
	return u.addToCart(ctx, cartID, item)
}

// AddItemByCode is the barcode path: the code must match exactly.
func (u *PDVUseCase) AddItemByCode(ctx context.Context, cartID, code string) (entities.Cart, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return entities.Cart{}, ErrStockItemNotFound
	}
	item, err := u.stockRepo.GetByCode(ctx, code)
	if err != nil {
		return entities.Cart{}, err
	}
	return u.addToCart(ctx, cartID, item)
}

func (u *PDVUseCase) addToCart(ctx context.Context, cartID string, item entities.StockItem) (entities.Cart, error) {
	if item.ID == "" {
		return entities.Cart{}, ErrStockItemNotFound
	}
	if item.Quantity <= 0 {
		return entities.Cart{}, ErrProductUnavailable
	}
	cart, err := u.GetCart(ctx, cartID)
	if err != nil {
		return entities.Cart{}, err
	}

	if i := cart.IndexOf(item.ID); i >= 0 {
		if cart.Items[i].Quantity+1 > item.Quantity {
			return entities.Cart{}, ErrMaxQuantityReached
		}
		cart.Items[i].Quantity++
		cart.Items[i].MaxQuantity = item.Quantity
	} else {
		cart.Items = append(cart.Items, entities.CartItem{
			StockItemID:   item.ID,
			Name:          item.Name,
			Code:          item.Code,
			Brand:         item.Brand,
			Model:         item.Model,
			State:         item.State,
			UnitPrice:     item.SalePrice,
			PurchasePrice: item.PurchasePrice,
			Quantity:      1,
			MaxQuantity:   item.Quantity,
		})
	}
	return u.saveCart(ctx, cart)
}

// UpdateItemQuantity sets the quantity of a line; zero or less removes it.
func (u *PDVUseCase) UpdateItemQuantity(ctx context.Context, cartID, stockItemID string, quantity int) (entities.Cart, error) {
	cart, err := u.GetCart(ctx, cartID)
	if err != nil {
		return entities.Cart{}, err
	}
	i := cart.IndexOf(strings.TrimSpace(stockItemID))
	if i < 0 {
		return entities.Cart{}, ErrCartItemNotFound
	}
	if quantity <= 0 {
		cart.Items = append(cart.Items[:i], cart.Items[i+1:]...)
		return u.saveCart(ctx, cart)
	}
	if quantity > cart.Items[i].MaxQuantity {
		return entities.Cart{}, ErrMaxQuantityReached
	}
	cart.Items[i].Quantity = quantity
	return u.saveCart(ctx, cart)
}

func (u *PDVUseCase) RemoveItem(ctx context.Context, cartID, stockItemID string) (entities.Cart, error) {
	return u.UpdateItemQuantity(ctx, cartID, stockItemID, 0)
}

func (u *PDVUseCase) SetDiscount(ctx context.Context, cartID string, percent decimal.Decimal) (entities.Cart, error) {
	if percent.IsNegative() || percent.GreaterThan(decimal.NewFromInt(100)) {
		return entities.Cart{}, ErrInvalidDiscount
	}
	cart, err := u.GetCart(ctx, cartID)
	if err != nil {
		return entities.Cart{}, err
	}
	cart.DiscountPercent = percent
	return u.saveCart(ctx, cart)
}

func (u *PDVUseCase) ClearCart(ctx context.Context, cartID string) error {
	cartID = strings.TrimSpace(cartID)
	if cartID == "" {
		return ErrInvalidCartID
	}
	return u.carts.Delete(ctx, cartID)
}

func (u *PDVUseCase) saveCart(ctx context.Context, cart entities.Cart) (entities.Cart, error) {
	cart.UpdatedAt = u.now().UTC()
	if err := u.carts.Save(ctx, cart); err != nil {
		return entities.Cart{}, err
	}
	return cart, nil
}

// Checkout takes the cart's items out of stock, settles any provider
// charge, then records one sale per line and a single paid income. A
// failure before the sales are recorded returns the items to stock.
func (u *PDVUseCase) Checkout(ctx context.Context, cartID string, in CheckoutInput) (CheckoutResult, error) {
	cart, err := u.GetCart(ctx, cartID)
	if err != nil {
		return CheckoutResult{}, err
	}
	if cart.IsEmpty() {
		return CheckoutResult{}, ErrEmptyCart
	}
	total := cart.Total()
	if !total.IsPositive() {
		return CheckoutResult{}, ErrInvalidCartTotal
	}
	if !in.PaymentMethod.IsValid() {
		return CheckoutResult{}, ErrInvalidPaymentMethod
	}
	customer := strings.TrimSpace(in.CustomerName)
	if customer == "" {
		customer = strings.TrimSpace(cart.CustomerName)
	}

	changes := make([]stockChange, len(cart.Items))
	for i, line := range cart.Items {
		item, err := u.stockRepo.GetByID(ctx, line.StockItemID)
		if err != nil {
			return CheckoutResult{}, err
		}
		if item.ID == "" {
			return CheckoutResult{}, fmt.Errorf("%w: %s", ErrStockItemNotFound, line.Name)
		}
		if item.Quantity < line.Quantity {
			return CheckoutResult{}, fmt.Errorf("%w: %s (disponível: %d, solicitado: %d)", ErrInsufficientStock, line.Name, item.Quantity, line.Quantity)
		}
		changes[i] = stockChange{item: item, newQty: item.Quantity - line.Quantity}
	}

	checkoutID := uuid.NewString()
	log := zap.L().With(zap.String("checkout_id", checkoutID), zap.String("cart_id", cart.ID))

	// Items are taken out of stock before charging; every later failure
	// puts them back.
	applied, err := applyStockChanges(ctx, u.stockRepo, changes, reasonPDVSale)
	if err != nil {
		log.Warn("checkout stopped while reserving stock", zap.Error(err))
		return CheckoutResult{}, err
	}
	release := func() { revertStockChanges(ctx, u.stockRepo, changes, applied, reasonPDVSale) }

	var payment *entities.Payment
	if u.wantsCharge(in.PaymentMethod, in.ProviderPayload) {
		p, err := u.charge(ctx, checkoutID, in.PaymentMethod, total, in.ProviderPayload)
		if err != nil {
			release()
			return CheckoutResult{}, err
		}
		created, err := u.paymentRepo.Create(ctx, p)
		if err != nil {
			log.Error("failed storing approved payment", zap.String("payment_id", p.ID), zap.Error(err))
			release()
			return CheckoutResult{}, err
		}
		payment = &created
	}

	now := u.now().UTC()
	notes := fmt.Sprintf("PDV - %s - Desconto: %s%%", in.PaymentMethod, money.FormatPercent(cart.DiscountPercent))
	lines := cart.LineTotals()
	sales := make([]entities.Sale, 0, len(cart.Items))
	for i, line := range cart.Items {
		purchase := line.PurchasePrice.Mul(decimal.NewFromInt(int64(line.Quantity)))
		s := entities.Sale{
			ID:              uuid.NewString(),
			Device:          line.Name,
			Brand:           line.Brand,
			Model:           line.Model,
			Condition:       line.State.SaleCondition(),
			Quantity:        line.Quantity,
			UnitPrice:       line.UnitPrice,
			PurchasePrice:   purchase,
			SalePrice:       lines[i],
			Profit:          lines[i].Sub(purchase),
			DiscountPercent: cart.DiscountPercent,
			CustomerName:    customer,
			Notes:           notes,
			PaymentMethod:   in.PaymentMethod,
			StockItemID:     line.StockItemID,
			CheckoutID:      checkoutID,
			CreatedAt:       now,
		}
		created, err := u.saleRepo.Create(ctx, s)
		if err != nil {
			log.Error("checkout interrupted while recording sales", zap.Int("recorded", len(sales)), zap.Error(err))
			release()
			return CheckoutResult{}, err
		}
		sales = append(sales, created)
	}

	tx := entities.Transaction{
		ID:           uuid.NewString(),
		Type:         entities.TransactionTypeEntrada,
		Category:     entities.TransactionCategoryVenda,
		Description:  fmt.Sprintf("%d item(s)", len(cart.Items)),
		Amount:       total,
		Status:       entities.TransactionStatusPago,
		CustomerName: customer,
		CheckoutID:   checkoutID,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if payment != nil {
		tx.PaymentReference = payment.ID
	}
	createdTx, err := u.txRepo.Create(ctx, tx)
	if err != nil {
		log.Error("checkout recorded without its transaction", zap.Error(err))
		return CheckoutResult{}, err
	}

	if err := u.carts.Delete(ctx, cart.ID); err != nil {
		log.Warn("failed clearing cart after checkout", zap.Error(err))
	}

	metrics.SalesRegistered.WithLabelValues("pdv").Add(float64(len(sales)))
	metrics.CheckoutRevenue.Add(total.InexactFloat64())
	log.Info("checkout finished",
		zap.Int("items", len(sales)),
		zap.String("total", total.StringFixed(2)),
		zap.String("payment_method", string(in.PaymentMethod)))

	return CheckoutResult{
		CheckoutID:  checkoutID,
		Sales:       sales,
		Transaction: createdTx,
		Payment:     payment,
		Receipt:     entities.NewReceiptFromSales(checkoutID, sales),
	}, nil
}

// TodaySales lists the sales made on the current calendar day of the shop.
func (u *PDVUseCase) TodaySales(ctx context.Context) (TodaySales, error) {
	all, err := u.saleRepo.List(ctx)
	if err != nil {
		return TodaySales{}, err
	}

	y, m, d := u.now().In(u.loc).Date()
	out := TodaySales{Sales: []entities.Sale{}, Total: decimal.Zero}
	for _, s := range all {
		sy, sm, sd := s.CreatedAt.In(u.loc).Date()
		if sy != y || sm != m || sd != d {
			continue
		}
		out.Sales = append(out.Sales, s)
		out.Total = out.Total.Add(s.SalePrice)
	}
	sortSalesNewestFirst(out.Sales)
	out.Count = len(out.Sales)
	return out, nil
}

// Receipt rebuilds the receipt of a finished checkout from its sales.
func (u *PDVUseCase) Receipt(ctx context.Context, checkoutID string) (entities.Receipt, error) {
	return checkoutReceipt(ctx, u.saleRepo, checkoutID)
}

func checkoutReceipt(ctx context.Context, repo interfaces.ISaleRepository, checkoutID string) (entities.Receipt, error) {
	checkoutID = strings.TrimSpace(checkoutID)
	if checkoutID == "" {
		return entities.Receipt{}, ErrInvalidCheckoutID
	}
	sales, err := repo.ListByCheckoutID(ctx, checkoutID)
	if err != nil {
		return entities.Receipt{}, err
	}
	if len(sales) == 0 {
		return entities.Receipt{}, ErrCheckoutNotFound
	}
	return entities.NewReceiptFromSales(checkoutID, sales), nil
}
