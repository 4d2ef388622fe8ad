// Package pdf implementa la impresión de facturas de compra.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Almacén  │  N° Factura + Fecha                     │
//	│  ─────────────────────────────────────────────────────────  │
//	│  PROVEEDOR: Nombre + forma de pago + estado                 │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Cant | Producto | P.Unit | Total línea               │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TOTAL DE LA FACTURA                                         │
//	│  NOTAS                                                       │
//	└─────────────────────────────────────────────────────────────┘
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

	"github.com/tu-usuario/almacen-pro/internal/domain/entity"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// ── Generator ─────────────────────────────────────────────────────────────────

// MarotoPDFGenerator genera la representación imprimible de una factura de
// compra usando Maroto v2.
type MarotoPDFGenerator struct{}

// NewMarotoPDFGenerator construye el generador.
func NewMarotoPDFGenerator() *MarotoPDFGenerator { return &MarotoPDFGenerator{} }

// GeneratePurchasePDF genera el PDF de la factura y devuelve sus bytes.
// productNames resuelve ID de producto → nombre; los IDs sin entrada se
// imprimen tal cual.
func (g *MarotoPDFGenerator) GeneratePurchasePDF(
	_ context.Context,
	purchase *entity.Purchase,
	productNames map[string]string,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Factura de compra "+purchase.InvoiceNumber, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(purchase))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(supplierRow(purchase))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	// Tabla de líneas
	m.AddRows(tableHeaderRow())
	for _, r := range tableItemRows(purchase.Items, productNames) {
		m.AddRows(r)
	}

	// Total
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))
	m.AddRows(totalRow(purchase))

	if purchase.Notes != "" {
		m.AddRows(notesRow(purchase.Notes))
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

// headerRow: nombre del almacén (izq) y N° de factura + fecha (der).
func headerRow(purchase *entity.Purchase) core.Row {
	fecha := purchase.Date.Format("02/01/2006")

	return row.New(18).Add(
		col.New(7).Add(
			text.New("Almacén Pro", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Registro de compras", props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(5).Add(
			text.New("FACTURA DE COMPRA", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New(purchase.InvoiceNumber, props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Right, Top: 7,
			}),
			text.New("Fecha: "+fecha, props.Text{
				Size: 8, Align: align.Right, Top: 14, Color: colorGray,
			}),
		),
	)
}

// supplierRow: datos del proveedor y condiciones de pago.
func supplierRow(purchase *entity.Purchase) core.Row {
	return row.New(14).Add(
		col.New(12).Add(
			text.New("PROVEEDOR", props.Text{
				Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1,
			}),
			text.New(nonEmpty(purchase.SupplierName, purchase.SupplierID), props.Text{
				Style: fontstyle.Bold, Size: 10, Top: 6,
			}),
			text.New(fmt.Sprintf("Forma de pago: %s   |   Estado: %s",
				paymentTypeLabel(purchase.PaymentType),
				paymentStatusLabel(purchase.PaymentStatus),
			), props.Text{Size: 8, Top: 12, Color: colorGray}),
		),
	)
}

// tableHeaderRow: cabecera de la tabla de líneas.
func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorPrimary, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).Add(
		h("Cant.", 1, align.Center),
		h("Producto", 6, align.Left),
		h("Precio Unit.", 2, align.Right),
		h("Total", 3, align.Right),
	)
}

// tableItemRows: una fila por línea de la factura.
func tableItemRows(items []entity.PurchaseItem, productNames map[string]string) []core.Row {
	result := make([]core.Row, 0, len(items))
	for _, it := range items {
		name := it.ProductID
		if n, ok := productNames[it.ProductID]; ok {
			name = n
		}
		result = append(result, row.New(7).Add(
			col.New(1).Add(text.New(
				fmt.Sprintf("%d", it.Quantity),
				props.Text{Size: 8, Align: align.Center, Top: 1},
			)),
			col.New(6).Add(text.New(
				name,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1},
			)),
			col.New(2).Add(text.New(
				it.UnitPrice.StringFixed(2),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
			col.New(3).Add(text.New(
				it.Total.StringFixed(2),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1},
			)),
		))
	}
	return result
}

// totalRow: total de la factura alineado a la derecha.
func totalRow(purchase *entity.Purchase) core.Row {
	return row.New(12).Add(
		col.New(6),
		col.New(3).Add(text.New("TOTAL:", props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right,
			Color: colorPrimary, Right: 2, Top: 2,
		})),
		col.New(3).Add(text.New(purchase.TotalAmount.StringFixed(2), props.Text{
			Style: fontstyle.Bold, Size: 10, Align: align.Right,
			Color: colorPrimary, Right: 1, Top: 2,
		})),
	)
}

// notesRow: notas libres de la factura.
func notesRow(notes string) core.Row {
	return row.New(12).Add(col.New(12).Add(
		text.New("Notas:", props.Text{
			Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 2,
		}),
		text.New(notes, props.Text{Size: 8, Top: 7, Color: colorGray}),
	))
}

// ── helpers ───────────────────────────────────────────────────────────────────

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}

func paymentTypeLabel(t string) string {
	switch t {
	case entity.PaymentTypeCash:
		return "Contado"
	case entity.PaymentTypeCredit:
		return "Crédito"
	case entity.PaymentTypeTransfer:
		return "Transferencia"
	}
	return t
}

func paymentStatusLabel(s string) string {
	switch s {
	case entity.PaymentStatusPaid:
		return "Pagada"
	case entity.PaymentStatusPartial:
		return "Pago parcial"
	case entity.PaymentStatusUnpaid:
		return "Pendiente"
	}
	return s
}
