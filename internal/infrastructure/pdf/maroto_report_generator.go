// Package pdf genera el informe imprimible del snapshot de métricas del
// dashboard (exportación de GET /api/dashboard/report).
package pdf

import (
	"context"
	"fmt"

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

	"github.com/tu-usuario/asset-ledger/internal/application/dto"
	"github.com/tu-usuario/asset-ledger/internal/application/ledger"
)

var (
	colorPrimary = &props.Color{Red: 27, Green: 54, Blue: 32}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

var _ ledger.ReportGenerator = (*MarotoReportGenerator)(nil)

// MarotoReportGenerator implementa ledger.ReportGenerator usando Maroto v2.
type MarotoReportGenerator struct{}

// NewMarotoReportGenerator construye el generador.
func NewMarotoReportGenerator() *MarotoReportGenerator { return &MarotoReportGenerator{} }

// GenerateSnapshotPDF genera el PDF del snapshot y devuelve sus bytes.
func (g *MarotoReportGenerator) GenerateSnapshotPDF(_ context.Context, snap *dto.MetricsSnapshotDTO) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 10}).
		WithTitle("Informe de movimientos de activos", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(snap))
	m.AddRows(line.NewRow(2, props.Line{Color: colorPrimary, Thickness: 0.5}))

	m.AddRows(metricRow("Saldo de apertura", snap.OpeningBalance))
	m.AddRows(metricRow("Compras", snap.Purchases))
	m.AddRows(metricRow("Transferencias entrantes", snap.TransfersIn))
	m.AddRows(metricRow("Transferencias salientes", snap.TransfersOut))
	m.AddRows(metricRow("Movimiento neto", snap.NetMovement))
	m.AddRows(metricRow("Asignado", snap.Assignments))
	m.AddRows(metricRow("Gastado", snap.Expended))
	m.AddRows(line.NewRow(2, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(metricRow("Saldo de cierre", snap.ClosingBalance))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("generar PDF del snapshot: %w", err)
	}
	return doc.GetBytes(), nil
}

func headerRow(snap *dto.MetricsSnapshotDTO) core.Row {
	base := snap.BaseName
	if base == "" {
		base = "Todas las bases"
	}
	equipment := snap.EquipmentName
	if equipment == "" {
		equipment = "Todo el equipo"
	}
	return row.New(16).Add(
		col.New(8).Add(
			text.New("Informe de movimientos de activos", props.Text{
				Size: 14, Style: fontstyle.Bold, Color: colorPrimary,
			}),
			text.New(fmt.Sprintf("%s — %s", base, equipment), props.Text{
				Top: 7, Size: 10, Color: colorGray,
			}),
		),
		col.New(4).Add(
			text.New(fmt.Sprintf("Ventana: %s a %s", snap.FromDate, snap.ToDate), props.Text{
				Size: 9, Align: align.Right, Color: colorGray,
			}),
		),
	)
}

func metricRow(label string, value int64) core.Row {
	return row.New(7).Add(
		col.New(8).Add(text.New(label, props.Text{Size: 10})),
		col.New(4).Add(text.New(fmt.Sprintf("%d", value), props.Text{
			Size: 10, Align: align.Right, Style: fontstyle.Bold,
		})),
	)
}
