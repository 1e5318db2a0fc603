// Package pdf genera la planilla de vitrina que acompaña cada envío en consignación.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Nombre de la joyería  │  Código de vitrina + Fecha │
//	│  DISTRIBUIDOR: Nombre / Email / Tel                          │
//	│  TABLA: Cant | Código | Pieza | P.Unit | Total               │
//	│  TOTALES: Piezas / Productos / VALOR TOTAL (₲)               │
//	│  FOOTER: QR con el código + firmas                           │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/code"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/joyeria-api/internal/application/showcase"
	"github.com/jhoicas/joyeria-api/internal/domain/entity"
	"github.com/jhoicas/joyeria-api/internal/domain/inventory"
	"github.com/jhoicas/joyeria-api/pkg/currency"
)

var _ showcase.StatementPDFGenerator = (*MarotoStatementGenerator)(nil)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 122, Green: 92, Blue: 38}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoStatementGenerator implementa showcase.StatementPDFGenerator usando Maroto v2.
type MarotoStatementGenerator struct {
	storeName string
}

// NewMarotoStatementGenerator construye el generador; storeName va en el encabezado.
func NewMarotoStatementGenerator(storeName string) *MarotoStatementGenerator {
	return &MarotoStatementGenerator{storeName: storeName}
}

// GenerateShowcaseStatement genera el PDF y devuelve sus bytes. Montos en guaraníes.
func (g *MarotoStatementGenerator) GenerateShowcaseStatement(
	_ context.Context,
	sum *inventory.ShowcaseSummary,
	distributor *entity.User,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Planilla de vitrina "+sum.Showcase.Code, true).
		WithAuthor(g.storeName, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(g.headerRow(sum))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(distributorRow(distributor))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	m.AddRows(itemRows(sum.Items)...)

	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalsRow(sum))

	m.AddRows(line.NewRow(3))
	m.AddRows(footerRow(sum.Showcase.Code))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func (g *MarotoStatementGenerator) headerRow(sum *inventory.ShowcaseSummary) core.Row {
	return row.New(18).Add(
		col.New(7).Add(
			text.New(g.storeName, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Planilla de vitrina en consignación", props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New(sum.Showcase.Code, props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 2,
			}),
			text.New("Fecha: "+sum.Showcase.CreatedAt.Format("02/01/2006"), props.Text{
				Size: 8, Align: align.Right, Top: 10, Color: colorGray,
			}),
		),
	)
}

func distributorRow(d *entity.User) core.Row {
	return row.New(14).Add(
		col.New(12).Add(
			text.New("DISTRIBUIDOR", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(d.Name, props.Text{Style: fontstyle.Bold, Size: 10, Top: 6}),
			text.New(fmt.Sprintf("Email: %s   |   Tel: %s", d.Email, nonEmpty(d.Phone, "-")),
				props.Text{Size: 8, Top: 12, Color: colorGray}),
		),
	)
}

func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a, Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Cant.", 1, align.Center),
		h("Código", 2, align.Left),
		h("Pieza", 4, align.Left),
		h("Precio Unit.", 2, align.Right),
		h("Total", 3, align.Right),
	)
}

func itemRows(items []inventory.ShowcaseItem) []core.Row {
	out := make([]core.Row, 0, len(items))
	for _, it := range items {
		codeLabel, name := "-", "-"
		if it.Product != nil {
			codeLabel, name = it.Product.Code, it.Product.Name
		}
		out = append(out, row.New(7).Add(
			col.New(1).Add(text.New(fmt.Sprintf("%d", it.Quantity), props.Text{Size: 8, Align: align.Center, Top: 1})),
			col.New(2).Add(text.New(codeLabel, props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(4).Add(text.New(name, props.Text{Size: 8, Top: 1, Left: 1})),
			col.New(2).Add(text.New(pyg(it.UnitPrice), props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
			col.New(3).Add(text.New(pyg(it.Total), props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
		))
	}
	return out
}

func totalsRow(sum *inventory.ShowcaseSummary) core.Row {
	label := func(s string) core.Component {
		return text.New(s, props.Text{Style: fontstyle.Bold, Size: 9, Align: align.Right, Right: 2})
	}
	value := func(s string) core.Component {
		return text.New(s, props.Text{Size: 9, Align: align.Right, Right: 1})
	}
	return row.New(20).Add(
		col.New(6),
		col.New(3).Add(
			label("Piezas:"),
			label("Productos:"),
			text.New("VALOR TOTAL:", props.Text{Style: fontstyle.Bold, Size: 10, Align: align.Right, Color: colorPrimary, Right: 2, Top: 10}),
		),
		col.New(3).Add(
			value(fmt.Sprintf("%d", sum.TotalPieces)),
			text.New(fmt.Sprintf("%d", sum.TotalProducts), props.Text{Size: 9, Align: align.Right, Right: 1, Top: 5}),
			text.New(pyg(sum.TotalValue), props.Text{Style: fontstyle.Bold, Size: 10, Align: align.Right, Color: colorPrimary, Right: 1, Top: 10}),
		),
	)
}

func footerRow(showcaseCode string) core.Row {
	return row.New(40).Add(
		col.New(3).Add(code.NewQr(showcaseCode, props.Rect{Percent: 90, Center: true})),
		col.New(9).Add(
			text.New("Recibí conforme las piezas detalladas.", props.Text{Size: 8, Top: 6, Left: 3, Color: colorGray}),
			text.New("Firma del distribuidor: ______________________", props.Text{Size: 9, Top: 24, Left: 3}),
		),
	)
}

// ── helpers ───────────────────────────────────────────────────────────────────

// pyg convierte un monto en BRL a guaraníes formateados.
func pyg(brl decimal.Decimal) string {
	return currency.FormatPYGInt(currency.ConvertBRLToPYG(brl))
}

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}
