package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/inmobiliaria/api-inmobiliaria/internal/dto"
	"github.com/inmobiliaria/api-inmobiliaria/internal/services"
	"github.com/inmobiliaria/api-inmobiliaria/internal/utils"
	"github.com/inmobiliaria/api-inmobiliaria/internal/validation"
)

// VisitaHandler handles the /visitas routes
type VisitaHandler struct {
	Service *services.VisitaService
}

// List handles GET /visitas
// @Summary List visits
// @Description List visits, optionally narrowed by state, start date and minimum rating
// @Tags Visitas
// @Produce json
// @Param estado query string false "Exact visit state" Enums(PENDIENTE, CONFIRMADA, CANCELADA)
// @Param fechaDesde query string false "Scheduled at or after, yyyy-MM-ddTHH:mm:ss"
// @Param valoracionMin query number false "Minimum rating, inclusive"
// @Success 200 {array} dto.VisitaOut
// @Failure 400 {object} utils.ErrorResponseStruct
// @Router /visitas [get]
func (h *VisitaHandler) List(c *fiber.Ctx) error {
	var f services.VisitaFilter
	var err error

	f.Estado = queryString(c, "estado")
	if f.FechaDesde, err = queryDateTime(c, "fechaDesde"); err != nil {
		return utils.BadRequestResponse(c, "El parámetro fechaDesde no es una fecha válida")
	}
	if f.ValoracionMin, err = queryFloat(c, "valoracionMin"); err != nil {
		return utils.BadRequestResponse(c, "El parámetro valoracionMin no es un número")
	}

	result, err := h.Service.FindAll(f)
	if err != nil {
		return serviceError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(result)
}

// Get handles GET /visitas/:id
// @Summary Get one visit
// @Tags Visitas
// @Produce json
// @Param id path int true "Visit ID"
// @Success 200 {object} dto.VisitaOut
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /visitas/{id} [get]
func (h *VisitaHandler) Get(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return utils.BadRequestResponse(c, "El identificador no es válido")
	}

	result, err := h.Service.FindByID(id)
	if err != nil {
		return serviceError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(result)
}

// Create handles POST /visitas. The payload references an existing Cliente
// and Inmueble by id; a missing reference yields a 404.
// @Summary Create a visit
// @Tags Visitas
// @Accept json
// @Produce json
// @Param body body dto.VisitaIn true "Visit payload"
// @Success 201 {object} dto.VisitaOut
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /visitas [post]
func (h *VisitaHandler) Create(c *fiber.Ctx) error {
	var in dto.VisitaIn
	if err := c.BodyParser(&in); err != nil {
		return utils.BadRequestResponse(c, "El cuerpo de la petición no es válido")
	}
	if errs := validation.Struct(in); errs != nil {
		return utils.ValidationErrorResponse(c, errs)
	}

	result, err := h.Service.Add(in)
	if err != nil {
		return serviceError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(result)
}

// Update handles PUT /visitas/:id
// @Summary Replace a visit
// @Tags Visitas
// @Accept json
// @Produce json
// @Param id path int true "Visit ID"
// @Param body body dto.VisitaIn true "Visit payload"
// @Success 200 {object} dto.VisitaOut
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /visitas/{id} [put]
func (h *VisitaHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return utils.BadRequestResponse(c, "El identificador no es válido")
	}

	var in dto.VisitaIn
	if err := c.BodyParser(&in); err != nil {
		return utils.BadRequestResponse(c, "El cuerpo de la petición no es válido")
	}
	if errs := validation.Struct(in); errs != nil {
		return utils.ValidationErrorResponse(c, errs)
	}

	result, err := h.Service.Modify(id, in)
	if err != nil {
		return serviceError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(result)
}

// Delete handles DELETE /visitas/:id
// @Summary Delete a visit
// @Tags Visitas
// @Param id path int true "Visit ID"
// @Success 204
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /visitas/{id} [delete]
func (h *VisitaHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return utils.BadRequestResponse(c, "El identificador no es válido")
	}

	if err := h.Service.Delete(id); err != nil {
		return serviceError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Pasadas handles GET /visitas/pasadas
// @Summary List visits scheduled before now
// @Tags Visitas
// @Produce json
// @Success 200 {array} dto.VisitaOut
// @Router /visitas/pasadas [get]
func (h *VisitaHandler) Pasadas(c *fiber.Ctx) error {
	result, err := h.Service.FindPasadas()
	if err != nil {
		return serviceError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(result)
}
