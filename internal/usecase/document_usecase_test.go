package usecase

import (
	"context"
	"errors"
	"testing"

	"assistencia_tecnica/internal/domain/entities"
	mock_interfaces "assistencia_tecnica/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestServiceOrderFilename(t *testing.T) {
	got := ServiceOrderFilename(entities.Service{Number: 12, CustomerName: "Ana  Maria\tSilva"})
	if got != "OS_12_Ana_Maria_Silva.pdf" {
		t.Fatalf("unexpected filename %q", got)
	}
}

func TestDocumentUseCase_ServiceOrder(t *testing.T) {
	svc := entities.Service{ID: "svc-1", Number: 3, CustomerName: "João Lima"}

	t.Run("html", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIServiceRepository(ctrl)
		tpl := mock_interfaces.NewMockIDocumentTemplates(ctrl)
		uc := NewDocumentUseCase(repo, nil, tpl, nil, nil)

		repo.EXPECT().GetByID(gomock.Any(), "svc-1").Return(svc, nil)
		tpl.EXPECT().ServiceOrderHTML(svc).Return("<html>OS</html>", nil)

		doc, err := uc.ServiceOrderHTML(context.Background(), "svc-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if string(doc.Data) != "<html>OS</html>" || doc.ContentType != contentTypeHTML {
			t.Fatalf("unexpected document: %+v", doc)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIServiceRepository(ctrl)
		uc := NewDocumentUseCase(repo, nil, nil, nil, nil)

		repo.EXPECT().GetByID(gomock.Any(), "svc-1").Return(entities.Service{}, nil)

		if _, err := uc.ServiceOrderHTML(context.Background(), "svc-1"); !errors.Is(err, ErrServiceNotFound) {
			t.Fatalf("expected ErrServiceNotFound, got %v", err)
		}
	})

	t.Run("pdf without renderer", func(t *testing.T) {
		uc := NewDocumentUseCase(nil, nil, nil, nil, nil)
		if _, err := uc.ServiceOrderPDF(context.Background(), "svc-1"); !errors.Is(err, ErrPDFRendererUnavailable) {
			t.Fatalf("expected ErrPDFRendererUnavailable, got %v", err)
		}
	})

	t.Run("pdf archived", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIServiceRepository(ctrl)
		tpl := mock_interfaces.NewMockIDocumentTemplates(ctrl)
		renderer := mock_interfaces.NewMockIPDFRenderer(ctrl)
		storage := mock_interfaces.NewMockIDocumentStorage(ctrl)
		uc := NewDocumentUseCase(repo, nil, tpl, renderer, storage)

		repo.EXPECT().GetByID(gomock.Any(), "svc-1").Return(svc, nil)
		tpl.EXPECT().ServiceOrderHTML(svc).Return("<html/>", nil)
		renderer.EXPECT().RenderPDF(gomock.Any(), "<html/>").Return([]byte("%PDF-1.4"), nil)
		storage.EXPECT().Put(gomock.Any(), "service-orders/svc-1/OS_3_João_Lima.pdf", contentTypePDF, []byte("%PDF-1.4")).
			Return("service-orders/svc-1/OS_3_João_Lima.pdf", nil)

		doc, err := uc.ServiceOrderPDF(context.Background(), "svc-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if doc.Filename != "OS_3_João_Lima.pdf" || doc.StorageKey == "" || doc.ContentType != contentTypePDF {
			t.Fatalf("unexpected document: %+v", doc)
		}
	})

	t.Run("pdf still served when archive fails", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIServiceRepository(ctrl)
		tpl := mock_interfaces.NewMockIDocumentTemplates(ctrl)
		renderer := mock_interfaces.NewMockIPDFRenderer(ctrl)
		storage := mock_interfaces.NewMockIDocumentStorage(ctrl)
		uc := NewDocumentUseCase(repo, nil, tpl, renderer, storage)

		repo.EXPECT().GetByID(gomock.Any(), "svc-1").Return(svc, nil)
		tpl.EXPECT().ServiceOrderHTML(svc).Return("<html/>", nil)
		renderer.EXPECT().RenderPDF(gomock.Any(), gomock.Any()).Return([]byte("%PDF"), nil)
		storage.EXPECT().Put(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return("", errors.New("s3 down"))

		doc, err := uc.ServiceOrderPDF(context.Background(), "svc-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if doc.StorageKey != "" {
			t.Fatalf("expected no storage key, got %q", doc.StorageKey)
		}
	})

	t.Run("render error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIServiceRepository(ctrl)
		tpl := mock_interfaces.NewMockIDocumentTemplates(ctrl)
		renderer := mock_interfaces.NewMockIPDFRenderer(ctrl)
		uc := NewDocumentUseCase(repo, nil, tpl, renderer, nil)

		repo.EXPECT().GetByID(gomock.Any(), "svc-1").Return(svc, nil)
		tpl.EXPECT().ServiceOrderHTML(svc).Return("<html/>", nil)
		renderer.EXPECT().RenderPDF(gomock.Any(), gomock.Any()).Return(nil, errors.New("chrome"))

		if _, err := uc.ServiceOrderPDF(context.Background(), "svc-1"); err == nil || err.Error() != "chrome" {
			t.Fatalf("expected chrome error, got %v", err)
		}
	})
}

func TestDocumentUseCase_SaleReceipt(t *testing.T) {
	t.Run("standalone sale", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		saleRepo := mock_interfaces.NewMockISaleRepository(ctrl)
		tpl := mock_interfaces.NewMockIDocumentTemplates(ctrl)
		uc := NewDocumentUseCase(nil, saleRepo, tpl, nil, nil)

		saleRepo.EXPECT().GetByID(gomock.Any(), "sale-1").Return(entities.Sale{ID: "sale-1", Device: "Moto G", Quantity: 1, UnitPrice: d("700"), SalePrice: d("700")}, nil)
		tpl.EXPECT().ReceiptHTML(gomock.Any()).DoAndReturn(
			func(r entities.Receipt) (string, error) {
				if r.Reference != "sale-1" || len(r.Items) != 1 || !r.DiscountAmount.IsZero() || !r.Total.Equal(d("700")) {
					t.Fatalf("unexpected receipt: %+v", r)
				}
				return "<pre>recibo</pre>", nil
			},
		)

		doc, err := uc.SaleReceiptHTML(context.Background(), "sale-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if doc.Filename != "recibo_sale-1.html" {
			t.Fatalf("unexpected filename %q", doc.Filename)
		}
	})

	t.Run("checkout sale reprints the checkout", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		saleRepo := mock_interfaces.NewMockISaleRepository(ctrl)
		tpl := mock_interfaces.NewMockIDocumentTemplates(ctrl)
		uc := NewDocumentUseCase(nil, saleRepo, tpl, nil, nil)

		saleRepo.EXPECT().GetByID(gomock.Any(), "sale-1").Return(entities.Sale{ID: "sale-1", CheckoutID: "co-1"}, nil)
		saleRepo.EXPECT().ListByCheckoutID(gomock.Any(), "co-1").Return([]entities.Sale{
			{ID: "sale-1", CheckoutID: "co-1", Quantity: 1, UnitPrice: d("10"), SalePrice: d("9")},
			{ID: "sale-2", CheckoutID: "co-1", Quantity: 1, UnitPrice: d("20"), SalePrice: d("18")},
		}, nil)
		tpl.EXPECT().ReceiptHTML(gomock.Any()).DoAndReturn(
			func(r entities.Receipt) (string, error) {
				if r.Reference != "co-1" || len(r.Items) != 2 || !r.DiscountAmount.Equal(d("3")) {
					t.Fatalf("unexpected receipt: %+v", r)
				}
				return "ok", nil
			},
		)

		if _, err := uc.SaleReceiptHTML(context.Background(), "sale-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("unknown sale", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		saleRepo := mock_interfaces.NewMockISaleRepository(ctrl)
		uc := NewDocumentUseCase(nil, saleRepo, nil, nil, nil)

		saleRepo.EXPECT().GetByID(gomock.Any(), "sale-1").Return(entities.Sale{}, nil)

		if _, err := uc.SaleReceiptHTML(context.Background(), "sale-1"); !errors.Is(err, ErrSaleNotFound) {
			t.Fatalf("expected ErrSaleNotFound, got %v", err)
		}
	})
}
