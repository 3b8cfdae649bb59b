package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/stocksync-dashboard/internal/application/report"
)

// ReportHandler descargas PDF.
type ReportHandler struct {
	uc *report.UseCase
}

// NewReportHandler construye el handler.
func NewReportHandler(uc *report.UseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// Inventory godoc
// @Summary      Reporte de inventario en PDF
// @Description  Productos y resumen del dashboard, leídos de la API en el momento.
// @Tags         reports
// @Produce      application/pdf
// @Success      200  {file}    binary
// @Failure      502  {object}  dto.ErrorResponse
// @Router       /reports/inventory.pdf [get]
func (h *ReportHandler) Inventory(c *fiber.Ctx) error {
	pdfBytes, filename, err := h.uc.Download(c.UserContext())
	if err != nil {
		return fail(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(pdfBytes)
}
