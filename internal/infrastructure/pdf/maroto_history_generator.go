// Package pdf implementa la exportación del historial de stock como PDF.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────┐
//	│  HEADER: Historique du stock + fecha de generación  │
//	│  ─────────────────────────────────────────────────  │
//	│  TABLA: Date | Produit | Type | Quantité | Unité    │
//	└─────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
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

	"github.com/jhoicas/StockMarie-api/internal/application/dto"
	apphistory "github.com/jhoicas/StockMarie-api/internal/application/history"
)

var _ apphistory.PDFGenerator = (*MarotoHistoryGenerator)(nil)

var (
	colorPrimary = &props.Color{Red: 234, Green: 88, Blue: 12}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// MarotoHistoryGenerator implementa history.PDFGenerator usando Maroto v2.
type MarotoHistoryGenerator struct{}

// NewMarotoHistoryGenerator construye el generador.
func NewMarotoHistoryGenerator() *MarotoHistoryGenerator { return &MarotoHistoryGenerator{} }

// GenerateHistoryPDF genera el PDF del historial y devuelve sus bytes.
func (g *MarotoHistoryGenerator) GenerateHistoryPDF(_ context.Context, movements []dto.MovementResponse) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Historique du stock", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow())
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(tableHeaderRow())
	for _, mv := range movements {
		m.AddRows(movementRow(mv))
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// headerRow: título (izq) y fecha de generación (der).
func headerRow() core.Row {
	return row.New(12).Add(
		col.New(8).Add(
			text.New("Historique du stock", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
		),
		col.New(4).Add(
			text.New(time.Now().Format("02/01/2006 15:04"), props.Text{
				Size: 9, Top: 3, Align: align.Right, Color: colorGray,
			}),
		),
	)
}

func tableHeaderRow() core.Row {
	header := props.Text{Style: fontstyle.Bold, Size: 9, Top: 1}
	return row.New(7).Add(
		col.New(3).Add(text.New("Date", header)),
		col.New(4).Add(text.New("Produit", header)),
		col.New(2).Add(text.New("Type", header)),
		col.New(2).Add(text.New("Quantité", header)),
		col.New(1).Add(text.New("Unité", header)),
	)
}

func movementRow(mv dto.MovementResponse) core.Row {
	cell := props.Text{Size: 8, Top: 1}
	sign := "+"
	if mv.MovementType != "increment" {
		sign = "-"
	}
	return row.New(6).Add(
		col.New(3).Add(text.New(mv.CreatedAt.Format("02/01/2006 15:04"), cell)),
		col.New(4).Add(text.New(mv.ProductName, cell)),
		col.New(2).Add(text.New(sign, cell)),
		col.New(2).Add(text.New(fmt.Sprintf("%d", mv.Quantity), cell)),
		col.New(1).Add(text.New(mv.ProductUnit, cell)),
	)
}
