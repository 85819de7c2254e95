// Package report renders the county report delivered with each completed
// batch group: one page per batch, tickets grouped by transaction type, with
// a running estimation-fee total in accounting notation.
package report

import (
	"bytes"
	"fmt"
	"html/template"
	"time"

	"github.com/microcosm-cc/bluemonday"
)

// CheckLine is one reconciled check shown under a ticket.
type CheckLine struct {
	CheckNumber string
	Amount      float64
}

// TicketLine is one ticket row inside a transaction-type group.
type TicketLine struct {
	TicketID      uint
	CustomerName  string
	EstimationFee float64
	Checks        []CheckLine
}

// TransactionGroup bundles a batch's tickets sharing a transaction type,
// in first-seen order.
type TransactionGroup struct {
	TypeName string
	Tickets  []TicketLine
}

// BatchSection is one printed page of the report.
type BatchSection struct {
	BatchID        uint
	CountyName     string
	CountyNumber   string
	CityName       string
	ProcessingType string
	ProcessingDate time.Time
	Comment        string
	Groups         []TransactionGroup
}

// Data is the full report input.
type Data struct {
	GeneratedAt time.Time
	Batches     []BatchSection
}

// Renderer renders county reports to HTML.
type Renderer struct {
	tmpl      *template.Template
	sanitizer *bluemonday.Policy
}

// NewRenderer builds the report renderer. Operator comments pass through a
// strict sanitizer since they are free text rendered into the document.
func NewRenderer() (*Renderer, error) {
	tmpl, err := template.New("county_report").Funcs(template.FuncMap{
		"currency": FormatCurrency,
		"date":     func(t time.Time) string { return t.Format("01/02/2006") },
		"total": func(groups []TransactionGroup) float64 {
			var sum float64
			for _, g := range groups {
				for _, t := range g.Tickets {
					sum += t.EstimationFee
				}
			}
			return sum
		},
	}).Parse(countyReportTemplate)
	if err != nil {
		return nil, fmt.Errorf("failed to parse county report template: %w", err)
	}

	return &Renderer{
		tmpl:      tmpl,
		sanitizer: bluemonday.StrictPolicy(),
	}, nil
}

// Render produces the report document bytes.
func (r *Renderer) Render(data Data) ([]byte, error) {
	for i := range data.Batches {
		data.Batches[i].Comment = r.sanitizer.Sanitize(data.Batches[i].Comment)
	}

	var buf bytes.Buffer
	if err := r.tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("failed to render county report: %w", err)
	}
	return buf.Bytes(), nil
}

const countyReportTemplate = `<!doctype html>
<html lang="en">
<head>
  <meta charset="utf-8" />
  <title>County Report</title>
  <style>
    * { box-sizing: border-box; }
    body {
      margin: 0;
      padding: 24px;
      font-family: "Helvetica Neue", Arial, sans-serif;
      font-size: 13px;
      color: #111827;
    }
    .batch { page-break-after: always; }
    .batch:last-child { page-break-after: auto; }
    .header {
      border-bottom: 2px solid #111827;
      padding-bottom: 8px;
      margin-bottom: 16px;
    }
    .header h1 { margin: 0; font-size: 18px; }
    .header .meta { color: #6b7280; font-size: 12px; margin-top: 4px; }
    .group-title {
      margin: 16px 0 4px;
      font-size: 14px;
      font-weight: 600;
    }
    table { width: 100%; border-collapse: collapse; }
    th, td {
      text-align: left;
      padding: 4px 8px;
      border-bottom: 1px solid #e5e7eb;
    }
    th { font-size: 11px; text-transform: uppercase; color: #6b7280; }
    td.amount, th.amount { text-align: right; }
    .total-row td { font-weight: 700; border-top: 2px solid #111827; }
    .comment { margin-top: 12px; font-style: italic; color: #374151; }
  </style>
</head>
<body>
{{range .Batches}}
  <div class="batch">
    <div class="header">
      <h1>{{.CountyName}} County{{if .CountyNumber}} &mdash; #{{.CountyNumber}}{{end}}</h1>
      <div class="meta">
        {{if .CityName}}{{.CityName}} &middot; {{end}}{{.ProcessingType}} &middot; Processing date {{date .ProcessingDate}} &middot; Batch {{.BatchID}}
      </div>
    </div>
    {{range .Groups}}
    <div class="group-title">{{.TypeName}}</div>
    <table>
      <thead>
        <tr><th>Ticket</th><th>Customer</th><th>Check</th><th class="amount">Estimation Fee</th></tr>
      </thead>
      <tbody>
        {{range .Tickets}}
        <tr>
          <td>{{.TicketID}}</td>
          <td>{{.CustomerName}}</td>
          <td>{{range $i, $c := .Checks}}{{if $i}}, {{end}}{{$c.CheckNumber}}{{end}}</td>
          <td class="amount">{{currency .EstimationFee}}</td>
        </tr>
        {{end}}
      </tbody>
    </table>
    {{end}}
    <table>
      <tbody>
        <tr class="total-row">
          <td>Total</td>
          <td class="amount">{{currency (total .Groups)}}</td>
        </tr>
      </tbody>
    </table>
    {{if .Comment}}<div class="comment">{{.Comment}}</div>{{end}}
  </div>
{{end}}
</body>
</html>`
