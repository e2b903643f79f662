package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/campus-stock-api/internal/application/dto"
	"github.com/jhoicas/campus-stock-api/internal/application/usecase"
	"github.com/jhoicas/campus-stock-api/internal/domain"
)

// CampusHandler maneja las peticiones HTTP para Campus (protegido; mutaciones solo admin).
type CampusHandler struct {
	uc *usecase.CampusUseCase
}

// NewCampusHandler construye el handler.
func NewCampusHandler(uc *usecase.CampusUseCase) *CampusHandler {
	return &CampusHandler{uc: uc}
}

// Create godoc
// @Summary      Crear campus
// @Tags         campuses
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateCampusRequest  true  "Datos del campus"
// @Success      201   {object}  dto.CampusResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/campuses [post]
func (h *CampusHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateCampusRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Name == "" || in.Code == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "name y code son requeridos"})
	}
	out, err := h.uc.Create(c.Context(), in)
	if err != nil {
		if errors.Is(err, domain.ErrCampusCodeTaken) {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "CODE_TAKEN", Message: "el código de campus ya existe"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar campus
// @Tags         campuses
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.CampusListResponse
// @Router       /api/campuses [get]
func (h *CampusHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener campus por ID
// @Tags         campuses
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del campus"
// @Success      200  {object}  dto.CampusResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/campuses/{id} [get]
func (h *CampusHandler) GetByID(c *fiber.Ctx) error {
	id := c.Params("id")
	out, err := h.uc.GetByID(c.Context(), id)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "campus no encontrado"})
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar campus
// @Tags         campuses
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                   true  "ID del campus"
// @Param        body  body  dto.UpdateCampusRequest  true  "Campos a actualizar"
// @Success      200   {object}  dto.CampusResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/campuses/{id} [put]
func (h *CampusHandler) Update(c *fiber.Ctx) error {
	id := c.Params("id")
	var in dto.UpdateCampusRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(c.Context(), id, in)
	if err != nil {
		if errors.Is(err, domain.ErrCampusCodeTaken) {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "CODE_TAKEN", Message: "el código de campus ya existe"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "campus no encontrado"})
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar campus (el stock asociado cae en cascada)
// @Tags         campuses
// @Security     Bearer
// @Param        id  path  string  true  "ID del campus"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/campuses/{id} [delete]
func (h *CampusHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := h.uc.Delete(c.Context(), id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "campus no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
