package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/masab009/warehouse-api-server-EIS/internal/application/dto"
	"github.com/masab009/warehouse-api-server-EIS/internal/application/usecase"
)

// PackageHandler maneja las peticiones HTTP para paquetes de despacho (solo lectura).
type PackageHandler struct {
	uc *usecase.PackageUseCase
}

// NewPackageHandler construye el handler.
func NewPackageHandler(uc *usecase.PackageUseCase) *PackageHandler {
	return &PackageHandler{uc: uc}
}

// List lista los paquetes.
func (h *PackageHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// GetByID obtiene un paquete por su ID.
func (h *PackageHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "paquete no encontrado"})
	}
	return c.JSON(out)
}
