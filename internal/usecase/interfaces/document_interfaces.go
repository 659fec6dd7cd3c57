package interfaces

import (
	"context"

	"assistencia_tecnica/internal/domain/entities"
)

// IDocumentTemplates renders the printable HTML documents.
type IDocumentTemplates interface {
	ServiceOrderHTML(s entities.Service) (string, error)
	ReceiptHTML(r entities.Receipt) (string, error)
}

// IPDFRenderer converts an HTML document into a PDF.
type IPDFRenderer interface {
	RenderPDF(ctx context.Context, html string) ([]byte, error)
}

// IDocumentStorage archives generated documents and returns the object key.
type IDocumentStorage interface {
	Put(ctx context.Context, key, contentType string, data []byte) (string, error)
}
