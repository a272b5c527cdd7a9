package pdf

import (
	"context"
	"fmt"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/border"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
)

type PDFProvider struct {
	style Style
}

func New() Provider {
	return &PDFProvider{style: DefaultStyle}
}

func (p *PDFProvider) GenerateInvoice(ctx context.Context, data InvoiceData) ([]byte, error) {
	st := p.style

	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		Build()

	m := maroto.New(cfg)

	// Header: shop title left, INVOICE title right
	m.AddRow(12,
		text.NewCol(6, data.ShopName, props.Text{
			Size:  st.ShopTitleSize,
			Style: fontstyle.Bold,
			Color: &st.Accent,
		}),
		text.NewCol(6, "INVOICE", props.Text{
			Size:  st.TitleSize,
			Style: fontstyle.Bold,
			Align: align.Right,
			Color: &st.Accent,
		}),
	)

	m.AddRow(24,
		col.New(6).Add(shopDetails(data, st)...),
		col.New(6).Add(
			text.New("Bill Number: "+data.BillNumber, props.Text{
				Size:  st.BaseSize,
				Style: fontstyle.Bold,
				Align: align.Right,
			}),
			text.New("Date: "+data.IssuedAt.Format("2006-01-02"), props.Text{
				Top:   5,
				Size:  st.BaseSize,
				Align: align.Right,
			}),
		),
	)

	// Customer block only when a customer was recorded on the bill
	if data.CustomerName != "" {
		m.AddRow(24, col.New(12).Add(
			text.New("Bill To:", props.Text{Size: st.BaseSize, Style: fontstyle.Bold}),
			text.New(data.CustomerName, props.Text{Top: 5, Size: st.BaseSize}),
			text.New(data.CustomerAddress, props.Text{Top: 10, Size: st.BaseSize}),
			text.New("Contact: "+data.CustomerContact, props.Text{Top: 15, Size: st.BaseSize}),
		))
	}

	m.AddRow(4, col.New(12))

	// Line-item table header
	m.AddRows(
		row.New(st.LineRowHeight).Add(
			text.NewCol(6, "Item Description", p.headerText(align.Center)),
			text.NewCol(2, "Quantity", p.headerText(align.Center)),
			text.NewCol(2, "Unit Price", p.headerText(align.Center)),
			text.NewCol(2, "Total", p.headerText(align.Center)),
		).WithStyle(&props.Cell{BackgroundColor: &st.Accent}),
	)

	// Zebra-striped item rows, numerics right-aligned
	for i, line := range data.Lines {
		r := row.New(st.LineRowHeight).Add(
			text.NewCol(6, line.Description, props.Text{Size: st.BaseSize, Align: align.Left}),
			text.NewCol(2, fmt.Sprintf("%d", line.Quantity), props.Text{Size: st.BaseSize, Align: align.Right}),
			text.NewCol(2, money(line.UnitPrice), props.Text{Size: st.BaseSize, Align: align.Right}),
			text.NewCol(2, money(line.TotalPrice), props.Text{Size: st.BaseSize, Align: align.Right}),
		)
		if i%2 == 0 {
			r = r.WithStyle(&props.Cell{BackgroundColor: &st.Stripe})
		}
		m.AddRows(r)
	}

	// Financial summary appended under the table
	for _, sr := range summaryRows(data) {
		m.AddRows(p.summaryRow(sr))
	}

	m.AddRow(10, col.New(12))

	// Footer
	m.AddRow(8,
		text.NewCol(12, "Thank you for your business!", props.Text{
			Size:  st.FooterSize,
			Align: align.Center,
			Color: &st.Footer,
		}),
	)

	doc, err := m.Generate()
	if err != nil {
		return nil, err
	}

	return doc.GetBytes(), nil
}

func (p *PDFProvider) headerText(a align.Type) props.Text {
	return props.Text{
		Size:  p.style.BaseSize,
		Style: fontstyle.Bold,
		Align: a,
		Color: &p.style.HeaderText,
	}
}

func (p *PDFProvider) summaryRow(sr summaryRow) core.Row {
	st := p.style

	if sr.Kind == rowSpacer {
		return row.New(st.SummaryRowHeight).Add(col.New(12))
	}

	if sr.Kind == rowTotal {
		return row.New(st.SummaryRowHeight + 3).Add(
			col.New(6),
			text.NewCol(4, sr.Label, props.Text{
				Size:  st.TotalSize,
				Style: fontstyle.Bold,
				Align: align.Right,
			}),
			text.NewCol(2, sr.Amount, props.Text{
				Size:  st.TotalSize,
				Style: fontstyle.Bold,
				Align: align.Right,
			}),
		).WithStyle(&props.Cell{
			BackgroundColor: &st.Stripe,
			BorderColor:     &st.Accent,
			BorderType:      border.Full,
			BorderThickness: 0.5,
		})
	}

	return row.New(st.SummaryRowHeight).Add(
		col.New(6),
		text.NewCol(4, sr.Label, props.Text{Size: st.BaseSize, Align: align.Right}),
		text.NewCol(2, sr.Amount, props.Text{Size: st.BaseSize, Align: align.Right}),
	)
}

func shopDetails(data InvoiceData, st Style) []core.Component {
	details := []core.Component{
		text.New(data.ShopAddress, props.Text{Size: st.BaseSize}),
		text.New("Contact: "+data.ShopContact, props.Text{Top: 5, Size: st.BaseSize}),
	}
	top := 10.0
	if data.ShopEmail != "" {
		details = append(details, text.New("Email: "+data.ShopEmail, props.Text{Top: top, Size: st.BaseSize}))
		top += 5
	}
	if data.ShopTaxNumber != "" {
		details = append(details, text.New("Tax No: "+data.ShopTaxNumber, props.Text{Top: top, Size: st.BaseSize}))
	}
	return details
}
