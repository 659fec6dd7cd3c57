package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"assistencia_tecnica/internal/domain/entities"
	"assistencia_tecnica/internal/infrastructure/metrics"
	"assistencia_tecnica/internal/usecase/interfaces"

	"go.uber.org/zap"
)

var ErrPDFRendererUnavailable = errors.New("pdf renderer not configured")

const (
	contentTypeHTML = "text/html; charset=utf-8"
	contentTypePDF  = "application/pdf"
)

// Document is a rendered printable. StorageKey is set when the document was
// archived.
type Document struct {
	Filename    string
	ContentType string
	Data        []byte
	StorageKey  string
}

// IDocumentUseCase renders the service order print and the sale receipts.
type IDocumentUseCase interface {
	ServiceOrderHTML(ctx context.Context, serviceID string) (Document, error)
	ServiceOrderPDF(ctx context.Context, serviceID string) (Document, error)
	CheckoutReceiptHTML(ctx context.Context, checkoutID string) (Document, error)
	SaleReceiptHTML(ctx context.Context, saleID string) (Document, error)
}

type DocumentUseCase struct {
	serviceRepo interfaces.IServiceRepository
	saleRepo    interfaces.ISaleRepository
	templates   interfaces.IDocumentTemplates
	renderer    interfaces.IPDFRenderer
	storage     interfaces.IDocumentStorage
}

var _ IDocumentUseCase = (*DocumentUseCase)(nil)

// NewDocumentUseCase builds the use case. renderer and storage may be nil:
// without a renderer PDFs are unavailable, without storage they are not archived.
func NewDocumentUseCase(serviceRepo interfaces.IServiceRepository, saleRepo interfaces.ISaleRepository, templates interfaces.IDocumentTemplates, renderer interfaces.IPDFRenderer, storage interfaces.IDocumentStorage) *DocumentUseCase {
	return &DocumentUseCase{serviceRepo: serviceRepo, saleRepo: saleRepo, templates: templates, renderer: renderer, storage: storage}
}

func (u *DocumentUseCase) ServiceOrderHTML(ctx context.Context, serviceID string) (Document, error) {
	s, err := u.loadService(ctx, serviceID)
	if err != nil {
		return Document{}, err
	}
	html, err := u.templates.ServiceOrderHTML(s)
	if err != nil {
		return Document{}, err
	}

	metrics.DocumentsRendered.WithLabelValues("service_order_html").Inc()
	return Document{
		Filename:    fmt.Sprintf("OS_%d.html", s.Number),
		ContentType: contentTypeHTML,
		Data:        []byte(html),
	}, nil
}

// ServiceOrderPDF prints the service order to A4 PDF and archives it when a
// storage is configured. A failed upload does not fail the download.
func (u *DocumentUseCase) ServiceOrderPDF(ctx context.Context, serviceID string) (Document, error) {
	if u.renderer == nil {
		return Document{}, ErrPDFRendererUnavailable
	}
	s, err := u.loadService(ctx, serviceID)
	if err != nil {
		return Document{}, err
	}
	html, err := u.templates.ServiceOrderHTML(s)
	if err != nil {
		return Document{}, err
	}
	pdf, err := u.renderer.RenderPDF(ctx, html)
	if err != nil {
		return Document{}, err
	}

	doc := Document{
		Filename:    ServiceOrderFilename(s),
		ContentType: contentTypePDF,
		Data:        pdf,
	}
	if u.storage != nil {
		key := fmt.Sprintf("service-orders/%s/%s", s.ID, doc.Filename)
		stored, err := u.storage.Put(ctx, key, contentTypePDF, pdf)
		if err != nil {
			zap.L().Warn("service order pdf not archived", zap.String("service_id", s.ID), zap.Error(err))
		} else {
			doc.StorageKey = stored
		}
	}

	metrics.DocumentsRendered.WithLabelValues("service_order_pdf").Inc()
	zap.L().Info("service order pdf rendered",
		zap.String("service_id", s.ID),
		zap.Int("bytes", len(pdf)),
		zap.String("storage_key", doc.StorageKey))
	return doc, nil
}

func (u *DocumentUseCase) CheckoutReceiptHTML(ctx context.Context, checkoutID string) (Document, error) {
	r, err := checkoutReceipt(ctx, u.saleRepo, checkoutID)
	if err != nil {
		return Document{}, err
	}
	return u.receiptDocument(r)
}

// SaleReceiptHTML reprints a sale. A sale made at the PDV reprints its whole
// checkout.
func (u *DocumentUseCase) SaleReceiptHTML(ctx context.Context, saleID string) (Document, error) {
	saleID = strings.TrimSpace(saleID)
	if saleID == "" {
		return Document{}, ErrInvalidSaleID
	}
	s, err := u.saleRepo.GetByID(ctx, saleID)
	if err != nil {
		return Document{}, err
	}
	if s.ID == "" {
		return Document{}, ErrSaleNotFound
	}
	if s.IsFromCheckout() {
		return u.CheckoutReceiptHTML(ctx, s.CheckoutID)
	}
	return u.receiptDocument(entities.NewReceiptFromSales(s.ID, []entities.Sale{s}))
}

func (u *DocumentUseCase) receiptDocument(r entities.Receipt) (Document, error) {
	html, err := u.templates.ReceiptHTML(r)
	if err != nil {
		return Document{}, err
	}
	metrics.DocumentsRendered.WithLabelValues("receipt").Inc()
	return Document{
		Filename:    fmt.Sprintf("recibo_%s.html", r.Reference),
		ContentType: contentTypeHTML,
		Data:        []byte(html),
	}, nil
}

func (u *DocumentUseCase) loadService(ctx context.Context, id string) (entities.Service, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Service{}, ErrInvalidServiceID
	}
	s, err := u.serviceRepo.GetByID(ctx, id)
	if err != nil {
		return entities.Service{}, err
	}
	if s.ID == "" {
		return entities.Service{}, ErrServiceNotFound
	}
	return s, nil
}

// ServiceOrderFilename is OS_<number>_<customer>.pdf with whitespace runs
// replaced by underscores.
func ServiceOrderFilename(s entities.Service) string {
	return fmt.Sprintf("OS_%d_%s.pdf", s.Number, strings.Join(strings.Fields(s.CustomerName), "_"))
}
