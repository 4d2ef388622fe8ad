package usecase_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/almacen-pro/internal/application/dto"
	"github.com/tu-usuario/almacen-pro/internal/application/usecase"
	"github.com/tu-usuario/almacen-pro/internal/domain"
	"github.com/tu-usuario/almacen-pro/internal/domain/entity"
	"github.com/tu-usuario/almacen-pro/internal/domain/purchase"
	"github.com/tu-usuario/almacen-pro/internal/infrastructure/memory"
	"github.com/tu-usuario/almacen-pro/pkg/logger"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

// stubPDF evita generar PDF de verdad en los tests del caso de uso.
type stubPDF struct {
	called bool
}

func (s *stubPDF) GeneratePurchasePDF(_ context.Context, _ *entity.Purchase, _ map[string]string) ([]byte, error) {
	s.called = true
	return []byte("%PDF-stub"), nil
}

// buildUseCase arma el caso de uso sobre repositorios en memoria con los
// datos de demostración.
func buildUseCase(t *testing.T) (*usecase.PurchaseUseCase, *stubPDF) {
	t.Helper()
	pdf := &stubPDF{}
	uc := usecase.NewPurchaseUseCase(
		memory.NewPurchaseRepository(memory.SeedPurchases()),
		memory.NewProductRepository(memory.SeedProducts()),
		memory.NewSupplierRepository(memory.SeedSuppliers()),
		pdf,
		logger.New(logger.Config{Env: "test", Level: "error"}),
	)
	return uc, pdf
}

func setLine(t *testing.T, uc *usecase.PurchaseUseCase, sid, lid, field, value string) *dto.SessionResponse {
	t.Helper()
	out, err := uc.SetLineField(sid, lid, dto.SetLineFieldRequest{Field: field, Value: value})
	require.NoError(t, err)
	return out
}

// ──────────────────────────────────────────────────────────────────────────────
// Flujo completo de la sesión de edición
// ──────────────────────────────────────────────────────────────────────────────

// Factura nueva: seleccionar producto rellena el precio de compra del catálogo,
// el total se mantiene consistente línea a línea y al guardar la factura queda
// en la colección.
func TestSesion_FlujoCompletoDeFacturaNueva(t *testing.T) {
	uc, _ := buildUseCase(t)

	s, err := uc.StartSession("")
	require.NoError(t, err)
	require.Len(t, s.Lines, 1, "la sesión nueva debe abrir con una línea en blanco")
	assert.Equal(t, purchase.StatusEditing, s.Status)

	// Producto 1 (كابل كهرباء): precio de compra 120
	s = setLine(t, uc, s.SessionID, s.Lines[0].ID, "productId", "1")
	assert.True(t, s.Lines[0].UnitPrice.Equal(decimal.NewFromInt(120)),
		"seleccionar producto debe sobreescribir el precio con el del catálogo")

	s = setLine(t, uc, s.SessionID, s.Lines[0].ID, "quantity", "10")
	assert.True(t, s.Lines[0].Total.Equal(decimal.NewFromInt(1200)))
	assert.True(t, s.TotalAmount.Equal(decimal.NewFromInt(1200)))

	// Segunda línea: producto 2, cantidad 4
	s2, err := uc.AddLine(s.SessionID)
	require.NoError(t, err)
	require.Len(t, s2.Lines, 2)
	s2 = setLine(t, uc, s.SessionID, s2.Lines[1].ID, "productId", "2")
	s2 = setLine(t, uc, s.SessionID, s2.Lines[1].ID, "quantity", "4")
	assert.True(t, s2.TotalAmount.Equal(decimal.NewFromInt(1260)),
		"el total debe ser la suma de los totales de línea (1200 + 60)")

	// Cabecera completa → la sesión queda lista para guardar
	s2, err = uc.SetHeader(s.SessionID, dto.SessionHeaderRequest{
		InvoiceNumber: "INV-100",
		SupplierID:    "supplier1",
		Date:          "2023-07-01",
		PaymentType:   entity.PaymentTypeCash,
		PaymentStatus: entity.PaymentStatusPaid,
	})
	require.NoError(t, err)
	assert.Equal(t, purchase.StatusValidForSave, s2.Status)

	saved, err := uc.Save(s.SessionID)
	require.NoError(t, err)
	assert.Equal(t, "INV-100", saved.InvoiceNumber)
	assert.Equal(t, "شركة النور", saved.SupplierName,
		"el nombre del proveedor se resuelve al guardar")
	assert.True(t, saved.TotalAmount.Equal(decimal.NewFromInt(1260)))

	// La sesión se descarta al guardar
	_, err = uc.GetSession(s.SessionID)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	// Y la factura aparece en la colección
	got, err := uc.GetByID(saved.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Len(t, got.Items, 2)
}

// Guardar sin proveedor ni productos falla con las violaciones y la sesión
// queda viva para corregir y reintentar.
func TestSesion_GuardarInvalidoConservaLaSesion(t *testing.T) {
	uc, _ := buildUseCase(t)

	s, err := uc.StartSession("")
	require.NoError(t, err)

	_, err = uc.Save(s.SessionID)
	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr, "guardar sin datos debe fallar con ValidationError")
	assert.NotEmpty(t, verr.Violations)

	// La sesión sigue viva: se corrige y el guardado pasa
	s2 := setLine(t, uc, s.SessionID, s.Lines[0].ID, "productId", "3")
	require.Equal(t, purchase.StatusEditing, s2.Status)
	_, err = uc.SetHeader(s.SessionID, dto.SessionHeaderRequest{
		SupplierID:    "supplier2",
		PaymentType:   entity.PaymentTypeCredit,
		PaymentStatus: entity.PaymentStatusUnpaid,
	})
	require.NoError(t, err)

	saved, err := uc.Save(s.SessionID)
	require.NoError(t, err)
	assert.True(t, saved.TotalAmount.Equal(decimal.NewFromInt(18)),
		"producto 3 precio 18 por cantidad 1 por defecto")
}

// Editar una factura existente siembra la sesión con sus líneas y guardar
// actualiza en lugar de crear.
func TestSesion_EdicionDeFacturaExistente(t *testing.T) {
	uc, _ := buildUseCase(t)

	before, err := uc.List(dto.TableQuery{})
	require.NoError(t, err)
	total := before.Meta.TotalFiltered

	s, err := uc.StartSession("1")
	require.NoError(t, err)
	require.Len(t, s.Lines, 3, "la factura sembrada INV-001 tiene tres líneas")
	assert.Equal(t, "INV-001", s.InvoiceNumber)

	// Subir la cantidad de la primera línea y guardar
	s = setLine(t, uc, s.SessionID, s.Lines[0].ID, "quantity", "20")
	saved, err := uc.Save(s.SessionID)
	require.NoError(t, err)
	assert.Equal(t, "1", saved.ID, "editar no debe cambiar el ID de la factura")

	after, err := uc.List(dto.TableQuery{})
	require.NoError(t, err)
	assert.Equal(t, total, after.Meta.TotalFiltered,
		"guardar una edición no debe crear facturas nuevas")
}

// StartSession con un ID inexistente retorna ErrNotFound.
func TestSesion_EditarFacturaInexistente(t *testing.T) {
	uc, _ := buildUseCase(t)
	_, err := uc.StartSession("no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// Cancel descarta la sesión sin tocar la colección.
func TestSesion_CancelarDescartaSinGuardar(t *testing.T) {
	uc, _ := buildUseCase(t)

	s, err := uc.StartSession("")
	require.NoError(t, err)
	require.NoError(t, uc.Cancel(s.SessionID))

	_, err = uc.GetSession(s.SessionID)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	list, err := uc.List(dto.TableQuery{})
	require.NoError(t, err)
	assert.Equal(t, 3, list.Meta.TotalFiltered, "solo las tres facturas sembradas")
}

// ──────────────────────────────────────────────────────────────────────────────
// Listado tabular e impresión
// ──────────────────────────────────────────────────────────────────────────────

// La búsqueda libre sobre la tabla de compras filtra por cualquier campo.
func TestList_BusquedaPorNumeroDeFactura(t *testing.T) {
	uc, _ := buildUseCase(t)

	out, err := uc.List(dto.TableQuery{Search: "INV-002"})
	require.NoError(t, err)
	require.Len(t, out.Rows, 1)
	assert.Equal(t, "INV-002", out.Rows[0].Purchase.InvoiceNumber)
	assert.False(t, out.Meta.Empty)
}

// PrintPDF delega en el generador con la factura resuelta.
func TestPrintPDF_GeneraBytes(t *testing.T) {
	uc, pdf := buildUseCase(t)

	bytes, err := uc.PrintPDF(context.Background(), "1")
	require.NoError(t, err)
	assert.NotEmpty(t, bytes)
	assert.True(t, pdf.called, "debe delegar en el generador de PDF")
}

// PrintPDF de una factura inexistente retorna ErrNotFound.
func TestPrintPDF_FacturaInexistente(t *testing.T) {
	uc, _ := buildUseCase(t)
	_, err := uc.PrintPDF(context.Background(), "no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
