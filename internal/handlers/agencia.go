package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/inmobiliaria/api-inmobiliaria/internal/dto"
	"github.com/inmobiliaria/api-inmobiliaria/internal/services"
	"github.com/inmobiliaria/api-inmobiliaria/internal/utils"
	"github.com/inmobiliaria/api-inmobiliaria/internal/validation"
)

// AgenciaHandler handles the /agencias routes
type AgenciaHandler struct {
	Service *services.AgenciaService
}

// List handles GET /agencias
// @Summary List agencies
// @Description List agencies, optionally narrowed by name, postal code and Saturday opening
// @Tags Agencias
// @Produce json
// @Param nombre query string false "Name substring, case-insensitive"
// @Param codigoPostal query int false "Exact postal code"
// @Param abiertoSabados query bool false "Open on Saturdays"
// @Success 200 {array} dto.AgenciaOut
// @Failure 400 {object} utils.ErrorResponseStruct
// @Router /agencias [get]
func (h *AgenciaHandler) List(c *fiber.Ctx) error {
	var f services.AgenciaFilter
	var err error

	f.Nombre = queryString(c, "nombre")
	if f.CodigoPostal, err = queryInt(c, "codigoPostal"); err != nil {
		return utils.BadRequestResponse(c, "El parámetro codigoPostal no es un número")
	}
	if f.AbiertoSabados, err = queryBool(c, "abiertoSabados"); err != nil {
		return utils.BadRequestResponse(c, "El parámetro abiertoSabados no es un booleano")
	}

	result, err := h.Service.FindAll(f)
	if err != nil {
		return serviceError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(result)
}

// Get handles GET /agencias/:id
// @Summary Get one agency
// @Tags Agencias
// @Produce json
// @Param id path int true "Agency ID"
// @Success 200 {object} dto.AgenciaOut
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /agencias/{id} [get]
func (h *AgenciaHandler) Get(c *fiber.Ctx) error {
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

// Create handles POST /agencias
// @Summary Create an agency
// @Tags Agencias
// @Accept json
// @Produce json
// @Param body body dto.AgenciaIn true "Agency payload"
// @Success 201 {object} dto.AgenciaOut
// @Failure 400 {object} utils.ErrorResponseStruct
// @Router /agencias [post]
func (h *AgenciaHandler) Create(c *fiber.Ctx) error {
	var in dto.AgenciaIn
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

// Update handles PUT /agencias/:id
// @Summary Replace an agency
// @Tags Agencias
// @Accept json
// @Produce json
// @Param id path int true "Agency ID"
// @Param body body dto.AgenciaIn true "Agency payload"
// @Success 200 {object} dto.AgenciaOut
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /agencias/{id} [put]
func (h *AgenciaHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return utils.BadRequestResponse(c, "El identificador no es válido")
	}

	var in dto.AgenciaIn
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

// Delete handles DELETE /agencias/:id
// @Summary Delete an agency
// @Tags Agencias
// @Param id path int true "Agency ID"
// @Success 204
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /agencias/{id} [delete]
func (h *AgenciaHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return utils.BadRequestResponse(c, "El identificador no es válido")
	}

	if err := h.Service.Delete(id); err != nil {
		return serviceError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// PorFacturacion handles GET /agencias/facturacion
// @Summary List Saturday-opening agencies above a revenue threshold
// @Tags Agencias
// @Produce json
// @Param facturacion query number true "Revenue threshold"
// @Success 200 {array} dto.AgenciaOut
// @Failure 400 {object} utils.ErrorResponseStruct
// @Router /agencias/facturacion [get]
func (h *AgenciaHandler) PorFacturacion(c *fiber.Ctx) error {
	facturacion, err := queryFloat(c, "facturacion")
	if err != nil || facturacion == nil {
		return utils.BadRequestResponse(c, "El parámetro facturacion es obligatorio y debe ser numérico")
	}

	result, err := h.Service.FindPorFacturacion(*facturacion)
	if err != nil {
		return serviceError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(result)
}
