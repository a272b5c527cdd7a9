package pdf

import "github.com/johnfercher/maroto/v2/pkg/props"

// Style groups the fixed layout constants so the layout logic stays
// free of inline colors and sizes. The rendered document is
// byte-identical in structure across runs for identical input.
type Style struct {
	Accent     props.Color // header bar and titles
	HeaderText props.Color
	Stripe     props.Color // zebra rows and total highlight
	Footer     props.Color

	BaseSize      float64
	ShopTitleSize float64
	TitleSize     float64
	TotalSize     float64
	FooterSize    float64

	LineRowHeight    float64
	SummaryRowHeight float64
}

var DefaultStyle = Style{
	Accent:     props.Color{Red: 0, Green: 51, Blue: 102},
	HeaderText: props.Color{Red: 245, Green: 245, Blue: 245},
	Stripe:     props.Color{Red: 224, Green: 232, Blue: 240},
	Footer:     props.Color{Red: 128, Green: 128, Blue: 128},

	BaseSize:      10,
	ShopTitleSize: 16,
	TitleSize:     22,
	TotalSize:     12,
	FooterSize:    8,

	LineRowHeight:    8,
	SummaryRowHeight: 7,
}
