package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/masab009/warehouse-api-server-EIS/internal/application/dto"
	"github.com/masab009/warehouse-api-server-EIS/internal/application/usecase"
	"github.com/masab009/warehouse-api-server-EIS/internal/domain"
)

// PickListHandler maneja las peticiones HTTP para listas de picking.
type PickListHandler struct {
	uc *usecase.PickListUseCase
}

// NewPickListHandler construye el handler.
func NewPickListHandler(uc *usecase.PickListUseCase) *PickListHandler {
	return &PickListHandler{uc: uc}
}

// List lista las listas de picking.
func (h *PickListHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// GetByID obtiene una lista de picking con sus líneas.
func (h *PickListHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetDetail(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "lista de picking no encontrada"})
	}
	return c.JSON(out)
}

// UpdateStatus avanza la lista de picking (PENDING → ASSIGNED → COMPLETED).
func (h *PickListHandler) UpdateStatus(c *fiber.Ctx) error {
	id := c.Params("id")
	var in dto.StatusUpdateRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Transition(c.UserContext(), id, in.Status, in.AssignedTo)
	if err != nil {
		switch err {
		case domain.ErrInvalidInput:
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "status es requerido; ASSIGNED exige assigned_to"})
		case domain.ErrInvalidStatus:
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_STATUS", Message: "status desconocido para listas de picking"})
		case domain.ErrNotFound:
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "lista de picking no encontrada"})
		case domain.ErrIllegalTransition:
			transitionsRejected.WithLabelValues("pick_list").Inc()
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "ILLEGAL_TRANSITION", Message: "transición de estado no permitida"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	transitionsApplied.WithLabelValues("pick_list", out.Status).Inc()
	return c.JSON(out)
}
