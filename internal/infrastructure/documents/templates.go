// Package documents renders the printable service orders and receipts.
package documents

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"time"

	"assistencia_tecnica/internal/domain/entities"
	"assistencia_tecnica/internal/domain/money"
	"assistencia_tecnica/internal/infrastructure/config"
	"assistencia_tecnica/internal/usecase/interfaces"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

//go:embed templates/*.html
var templateFS embed.FS

const (
	serviceOrderTemplate = "service_order.html"
	receiptTemplate      = "receipt.html"
)

// Templates renders documents with html/template. Dates are printed in the
// shop's time zone.
type Templates struct {
	tmpl    *template.Template
	company config.CompanyConfig
	loc     *time.Location
	now     func() time.Time
}

var _ interfaces.IDocumentTemplates = (*Templates)(nil)

type serviceOrderData struct {
	Company     config.CompanyConfig
	Service     entities.Service
	GeneratedAt time.Time
}

type receiptData struct {
	Company config.CompanyConfig
	Receipt entities.Receipt
}

func NewTemplates(company config.CompanyConfig, loc *time.Location) (*Templates, error) {
	if loc == nil {
		loc = time.UTC
	}
	t := &Templates{company: company, loc: loc, now: time.Now}

	upper := cases.Upper(language.BrazilianPortuguese)
	funcs := template.FuncMap{
		"brl":     money.FormatBRL,
		"percent": money.FormatPercent,
		"upper":   upper.String,
		"date":    t.formatDate,
		"datetime": func(v time.Time) string {
			if v.IsZero() {
				return ""
			}
			return v.In(t.loc).Format("02/01/2006 15:04:05")
		},
	}

	tmpl, err := template.New("documents").Funcs(funcs).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse document templates: %w", err)
	}
	t.tmpl = tmpl
	return t, nil
}

func (t *Templates) ServiceOrderHTML(s entities.Service) (string, error) {
	return t.execute(serviceOrderTemplate, serviceOrderData{
		Company:     t.company,
		Service:     s,
		GeneratedAt: t.now(),
	})
}

func (t *Templates) ReceiptHTML(r entities.Receipt) (string, error) {
	return t.execute(receiptTemplate, receiptData{Company: t.company, Receipt: r})
}

func (t *Templates) execute(name string, data any) (string, error) {
	var buf bytes.Buffer
	if err := t.tmpl.ExecuteTemplate(&buf, name, data); err != nil {
		return "", fmt.Errorf("render %s: %w", name, err)
	}
	return buf.String(), nil
}

// formatDate prints dd/mm/yyyy. Dates stored without a time (delivery
// dates) are midnight UTC and keep their calendar day.
func (t *Templates) formatDate(v time.Time) string {
	if v.IsZero() {
		return ""
	}
	if v.Location() == time.UTC && v.Hour() == 0 && v.Minute() == 0 && v.Second() == 0 && v.Nanosecond() == 0 {
		return v.Format("02/01/2006")
	}
	return v.In(t.loc).Format("02/01/2006")
}
