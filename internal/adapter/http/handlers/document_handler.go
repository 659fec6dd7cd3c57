package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"unicode"

	"assistencia_tecnica/internal/usecase"
	"assistencia_tecnica/pkg"

	"github.com/gin-gonic/gin"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// DocumentHandler serves the printable service order and receipts.
type DocumentHandler struct {
	usecase usecase.IDocumentUseCase
}

func NewDocumentHandler(uc usecase.IDocumentUseCase) *DocumentHandler {
	return &DocumentHandler{usecase: uc}
}

// PrintServiceOrder godoc
// @Summary  Printable service order
// @Tags     documents
// @Produce  html
// @Param    id  path  string  true  "Service ID"
// @Success  200 {string} string
// @Failure  404 {object} pkg.HTTPError
// @Router   /services/{id}/print [get]
func (h *DocumentHandler) PrintServiceOrder(c *gin.Context) {
	doc, err := h.usecase.ServiceOrderHTML(c.Request.Context(), c.Param("id"))
	writeInline(c, doc, err)
}

// ServiceOrderPDF godoc
// @Summary  Service order as PDF
// @Tags     documents
// @Produce  application/pdf
// @Param    id  path  string  true  "Service ID"
// @Success  200 {file}   file
// @Failure  404 {object} pkg.HTTPError
// @Failure  503 {object} pkg.HTTPError
// @Router   /services/{id}/pdf [get]
func (h *DocumentHandler) ServiceOrderPDF(c *gin.Context) {
	doc, err := h.usecase.ServiceOrderPDF(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, mapDocumentError(err))
		return
	}
	c.Header("Content-Disposition", attachmentDisposition(doc.Filename))
	if doc.StorageKey != "" {
		c.Header("X-Document-Key", doc.StorageKey)
	}
	c.Data(http.StatusOK, doc.ContentType, doc.Data)
}

// PrintCheckoutReceipt godoc
// @Summary  Printable PDV receipt
// @Tags     documents
// @Produce  html
// @Param    checkout_id  path  string  true  "Checkout ID"
// @Success  200 {string} string
// @Failure  404 {object} pkg.HTTPError
// @Router   /pdv/checkouts/{checkout_id}/receipt [get]
func (h *DocumentHandler) PrintCheckoutReceipt(c *gin.Context) {
	doc, err := h.usecase.CheckoutReceiptHTML(c.Request.Context(), c.Param("checkout_id"))
	writeInline(c, doc, err)
}

// PrintSaleReceipt godoc
// @Summary  Printable receipt of a single sale
// @Tags     documents
// @Produce  html
// @Param    id  path  string  true  "Sale ID"
// @Success  200 {string} string
// @Failure  404 {object} pkg.HTTPError
// @Router   /sales/{id}/receipt [get]
func (h *DocumentHandler) PrintSaleReceipt(c *gin.Context) {
	doc, err := h.usecase.SaleReceiptHTML(c.Request.Context(), c.Param("id"))
	writeInline(c, doc, err)
}

func writeInline(c *gin.Context, doc usecase.Document, err error) {
	if err != nil {
		respondError(c, mapDocumentError(err))
		return
	}
	c.Data(http.StatusOK, doc.ContentType, doc.Data)
}

func mapDocumentError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidServiceID),
		errors.Is(err, usecase.ErrInvalidSaleID),
		errors.Is(err, usecase.ErrInvalidCheckoutID):
		return errInvalidRequest
	case errors.Is(err, usecase.ErrServiceNotFound):
		return pkg.NewDomainErrorSimple("SERVICE_NOT_FOUND", "Service not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrSaleNotFound):
		return pkg.NewDomainErrorSimple("SALE_NOT_FOUND", "Sale not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrCheckoutNotFound):
		return pkg.NewDomainErrorSimple("CHECKOUT_NOT_FOUND", "Checkout not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrPDFRendererUnavailable):
		return pkg.NewDomainErrorSimple("PDF_UNAVAILABLE", "PDF rendering is not enabled", http.StatusServiceUnavailable)
	default:
		return internalError(err)
	}
}

// attachmentDisposition builds an RFC 6266 header. Non-ASCII names get a
// plain fallback plus the UTF-8 form in filename*.
func attachmentDisposition(name string) string {
	fallback := asciiFilename(name)
	if fallback == name {
		return fmt.Sprintf("attachment; filename=%q", name)
	}
	return fmt.Sprintf("attachment; filename=%q; filename*=UTF-8''%s", fallback, encodeExtValue(name))
}

func asciiFilename(name string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, name)
	if err != nil {
		out = name
	}
	return strings.Map(func(r rune) rune {
		if r < 0x20 || r > 0x7e || r == '"' || r == '\\' {
			return '_'
		}
		return r
	}, out)
}

// encodeExtValue percent-encodes everything outside RFC 5987 attr-char.
func encodeExtValue(s string) string {
	const attrChars = "!#$&+-.^_`|~"
	var b strings.Builder
	for _, c := range []byte(s) {
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9', strings.IndexByte(attrChars, c) >= 0:
			b.WriteByte(c)
		default:
			fmt.Fprintf(&b, "%%%02X", c)
		}
	}
	return b.String()
}
