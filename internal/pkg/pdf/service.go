// internal/pkg/pdf/service.go
package pdf

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/SebastiaanKlippert/go-wkhtmltopdf"
	"github.com/your-org/storefront-backend/internal/config"
	"github.com/your-org/storefront-backend/internal/domain/returns"
)

// Service handles PDF generation
type Service struct {
	config *config.Config
}

// NewService creates a new PDF service
func NewService(cfg *config.Config) *Service {
	return &Service{
		config: cfg,
	}
}

// GenerateReturnSlip generates a printable PDF slip for a return request.
// Intended for approved returns; the slip is included in the package the
// customer sends back.
func (s *Service) GenerateReturnSlip(ret *returns.Return) (*bytes.Buffer, error) {
	data := ReturnSlipData{
		SlipNumber:  fmt.Sprintf("RET-%s", ret.OrderNumber),
		StoreName:   s.config.Email.FromName,
		OrderNumber: ret.OrderNumber,
		Email:       ret.CustomerEmail,
		Status:      ret.Status,
		Notes:       ret.AdditionalNotes,
		Items:       ret.Items,
		CreatedAt:   ret.CreatedAt.Format("January 2, 2006"),
	}

	htmlContent, err := s.generateHTML(data)
	if err != nil {
		return nil, fmt.Errorf("failed to generate HTML: %w", err)
	}

	pdfg, err := wkhtmltopdf.NewPDFGenerator()
	if err != nil {
		return nil, fmt.Errorf("failed to create PDF generator: %w", err)
	}

	pdfg.Dpi.Set(300)
	pdfg.Orientation.Set(wkhtmltopdf.OrientationPortrait)
	pdfg.Grayscale.Set(false)

	page := wkhtmltopdf.NewPageReader(bytes.NewReader([]byte(htmlContent)))
	page.FooterRight.Set("[page]")
	page.FooterFontSize.Set(9)
	page.Zoom.Set(0.95)

	pdfg.AddPage(page)

	if err := pdfg.Create(); err != nil {
		return nil, fmt.Errorf("failed to create PDF: %w", err)
	}

	return bytes.NewBuffer(pdfg.Bytes()), nil
}

// generateHTML generates HTML content from template
func (s *Service) generateHTML(data ReturnSlipData) (string, error) {
	tmpl := template.Must(template.New("return_slip").Parse(returnSlipTemplate))

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to execute template: %w", err)
	}

	return buf.String(), nil
}

// ReturnSlipData represents the data passed to the return slip template
type ReturnSlipData struct {
	SlipNumber  string
	StoreName   string
	OrderNumber string
	Email       string
	Status      string
	Notes       string
	Items       []returns.ReturnItem
	CreatedAt   string
}

const returnSlipTemplate = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<style>
  body { font-family: Helvetica, Arial, sans-serif; color: #222; margin: 40px; }
  h1 { font-size: 22px; }
  .meta { margin: 16px 0; font-size: 13px; }
  table { width: 100%; border-collapse: collapse; margin-top: 16px; }
  th, td { border: 1px solid #999; padding: 8px; font-size: 13px; text-align: left; }
  th { background: #f0f0f0; }
  .notes { margin-top: 24px; font-size: 12px; color: #555; }
</style>
</head>
<body>
  <h1>{{.StoreName}} — Return Slip {{.SlipNumber}}</h1>
  <div class="meta">
    <div>Order: <strong>{{.OrderNumber}}</strong></div>
    <div>Customer: {{.Email}}</div>
    <div>Status: {{.Status}}</div>
    <div>Submitted: {{.CreatedAt}}</div>
  </div>
  <table>
    <tr><th>Product</th><th>Variant</th><th>Reason</th><th>Qty</th></tr>
    {{range .Items}}
    <tr><td>{{.ProductName}}</td><td>{{.Variant}}</td><td>{{.Reason}}</td><td>{{.Quantity}}</td></tr>
    {{end}}
  </table>
  {{if .Notes}}<p class="notes">Notes: {{.Notes}}</p>{{end}}
  <p class="notes">Include this slip inside the return package.</p>
</body>
</html>`
