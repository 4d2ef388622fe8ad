package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/almacen-pro/internal/application/dto"
	"github.com/tu-usuario/almacen-pro/internal/application/usecase"
)

// PurchaseHandler maneja las peticiones HTTP de compras: listado de facturas,
// sesiones de edición y la impresión en PDF (protegido).
type PurchaseHandler struct {
	uc *usecase.PurchaseUseCase
}

// NewPurchaseHandler construye el handler.
func NewPurchaseHandler(uc *usecase.PurchaseUseCase) *PurchaseHandler {
	return &PurchaseHandler{uc: uc}
}

// ── Facturas guardadas ────────────────────────────────────────────────────────

// List presenta las facturas filtradas y paginadas.
// Query params: search (texto libre), page, per_page.
func (h *PurchaseHandler) List(c *fiber.Ctx) error {
	var q dto.TableQuery
	if err := c.QueryParser(&q); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_QUERY", Message: "parámetros inválidos"})
	}
	out, err := h.uc.List(q)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// GetByID obtiene una factura por ID.
func (h *PurchaseHandler) GetByID(c *fiber.Ctx) error {
	id := c.Params("id")
	out, err := h.uc.GetByID(id)
	if err != nil {
		return respondError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "factura no encontrada"})
	}
	return c.JSON(out)
}

// Delete elimina una factura.
func (h *PurchaseHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := h.uc.Delete(id); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// PrintPDF genera la versión imprimible de una factura guardada.
func (h *PurchaseHandler) PrintPDF(c *fiber.Ctx) error {
	id := c.Params("id")
	pdfBytes, err := h.uc.PrintPDF(c.UserContext(), id)
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `inline; filename="factura-`+id+`.pdf"`)
	return c.Send(pdfBytes)
}

// ── Sesiones de edición ───────────────────────────────────────────────────────

// StartSession abre una sesión de edición: factura nueva (purchase_id vacío)
// o edición de una existente.
func (h *PurchaseHandler) StartSession(c *fiber.Ctx) error {
	var in dto.StartSessionRequest
	if err := c.BodyParser(&in); err != nil && len(c.Body()) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.StartSession(in.PurchaseID)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetSession devuelve el snapshot actual de la sesión.
func (h *PurchaseHandler) GetSession(c *fiber.Ctx) error {
	out, err := h.uc.GetSession(c.Params("sid"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// SetHeader actualiza la cabecera de la sesión.
func (h *PurchaseHandler) SetHeader(c *fiber.Ctx) error {
	var in dto.SessionHeaderRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.SetHeader(c.Params("sid"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// AddLine agrega una línea en blanco a la sesión.
func (h *PurchaseHandler) AddLine(c *fiber.Ctx) error {
	out, err := h.uc.AddLine(c.Params("sid"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// RemoveLine elimina una línea de la sesión (no-op si es la única).
func (h *PurchaseHandler) RemoveLine(c *fiber.Ctx) error {
	out, err := h.uc.RemoveLine(c.Params("sid"), c.Params("lid"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// SetLineField edita un campo de una línea con el valor crudo tecleado.
func (h *PurchaseHandler) SetLineField(c *fiber.Ctx) error {
	var in dto.SetLineFieldRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.SetLineField(c.Params("sid"), c.Params("lid"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Save valida, arma la factura y la guarda; la sesión se descarta. Si la
// validación falla responde 422 con las violaciones y la sesión queda viva.
func (h *PurchaseHandler) Save(c *fiber.Ctx) error {
	out, err := h.uc.Save(c.Params("sid"))
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Cancel descarta la sesión sin guardar.
func (h *PurchaseHandler) Cancel(c *fiber.Ctx) error {
	if err := h.uc.Cancel(c.Params("sid")); err != nil {
		return respondError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
