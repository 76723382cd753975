// Package pdf implementa la exportación del reporte de balance usando
// Maroto v2.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Controle de Estoque — Balanço  │  Fecha generación │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTALES: items, valor total, productos/categorías/movs     │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Categoría | Productos | Items | Valor total         │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strconv"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
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

	"github.com/tu-usuario/controle-estoque-front/internal/application/dto"
	"github.com/tu-usuario/controle-estoque-front/internal/application/ports"
)

var _ ports.BalancePDFGenerator = (*MarotoBalanceGenerator)(nil)

var (
	colorPrimary = &props.Color{Red: 45, Green: 53, Blue: 97}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// MarotoBalanceGenerator implementa ports.BalancePDFGenerator con Maroto v2.
type MarotoBalanceGenerator struct{}

// NewMarotoBalanceGenerator construye el generador.
func NewMarotoBalanceGenerator() *MarotoBalanceGenerator { return &MarotoBalanceGenerator{} }

// GenerateBalancePDF genera el reporte y devuelve sus bytes.
func (g *MarotoBalanceGenerator) GenerateBalancePDF(
	_ context.Context,
	balance dto.BalanceDTO,
	rollups []dto.CategoryRollupDTO,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Balanço de Estoque", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow())
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(totalsRows(balance)...)
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(tableHeaderRow())
	for _, r := range rollups {
		m.AddRows(rollupRow(r))
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func headerRow() core.Row {
	fecha := time.Now().Format("02/01/2006 15:04")
	return row.New(14).Add(
		col.New(8).Add(
			text.New("Controle de Estoque — Balanço", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 2,
			}),
		),
		col.New(4).Add(
			text.New("Gerado em "+fecha, props.Text{
				Size: 8, Top: 4, Align: align.Right, Color: colorGray,
			}),
		),
	)
}

func totalsRows(b dto.BalanceDTO) []core.Row {
	label := func(s string) core.Col {
		return col.New(3).Add(text.New(s, props.Text{Size: 8, Color: colorGray}))
	}
	value := func(s string) core.Col {
		return col.New(3).Add(text.New(s, props.Text{Size: 10, Style: fontstyle.Bold}))
	}
	return []core.Row{
		row.New(6).Add(
			label("Total de itens em estoque"),
			value(strconv.FormatInt(b.TotalItems, 10)),
			label("Valor total do estoque"),
			value("R$ "+b.TotalValue.StringFixed(2)),
		),
		row.New(6).Add(
			label("Produtos / Categorias"),
			value(fmt.Sprintf("%d / %d", b.ProductCount, b.CategoryCount)),
			label("Movimentações registradas"),
			value(strconv.Itoa(b.MovementCount)),
		),
		row.New(6).Add(
			label("Média de produtos por categoria"),
			value(b.AverageProductsPerCategory.StringFixed(2)),
			col.New(6),
		),
	}
}

func tableHeaderRow() core.Row {
	header := func(size int, s string, a align.Type) core.Col {
		return col.New(size).Add(text.New(s, props.Text{
			Style: fontstyle.Bold, Size: 9, Align: a, Color: colorPrimary,
		}))
	}
	return row.New(8).Add(
		header(6, "Categoria", align.Left),
		header(2, "Produtos", align.Center),
		header(2, "Itens", align.Right),
		header(2, "Valor total", align.Right),
	)
}

func rollupRow(r dto.CategoryRollupDTO) core.Row {
	cell := func(size int, s string, a align.Type) core.Col {
		return col.New(size).Add(text.New(s, props.Text{Size: 8, Align: a}))
	}
	return row.New(6).Add(
		cell(6, r.CategoryName, align.Left),
		cell(2, strconv.Itoa(r.DistinctProductCount), align.Center),
		cell(2, strconv.FormatInt(r.TotalItems, 10), align.Right),
		cell(2, "R$ "+r.TotalValue.StringFixed(2), align.Right),
	)
}
