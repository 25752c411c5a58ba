package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/inmobiliaria/api-inmobiliaria/internal/dto"
	"github.com/inmobiliaria/api-inmobiliaria/internal/services"
	"github.com/inmobiliaria/api-inmobiliaria/internal/utils"
	"github.com/inmobiliaria/api-inmobiliaria/internal/validation"
)

// InmuebleHandler handles the /inmuebles routes
type InmuebleHandler struct {
	Service *services.InmuebleService
}

// List handles GET /inmuebles
// @Summary List properties
// @Description List properties, optionally narrowed by max price, min surface and elevator
// @Tags Inmuebles
// @Produce json
// @Param precioMax query number false "Maximum price, inclusive"
// @Param metrosMin query int false "Minimum surface in square meters, inclusive"
// @Param ascensor query bool false "Has an elevator"
// @Success 200 {array} dto.InmuebleOut
// @Failure 400 {object} utils.ErrorResponseStruct
// @Router /inmuebles [get]
func (h *InmuebleHandler) List(c *fiber.Ctx) error {
	var f services.InmuebleFilter
	var err error

	if f.PrecioMax, err = queryFloat(c, "precioMax"); err != nil {
		return utils.BadRequestResponse(c, "El parámetro precioMax no es un número")
	}
	if f.MetrosMin, err = queryInt(c, "metrosMin"); err != nil {
		return utils.BadRequestResponse(c, "El parámetro metrosMin no es un número")
	}
	if f.Ascensor, err = queryBool(c, "ascensor"); err != nil {
		return utils.BadRequestResponse(c, "El parámetro ascensor no es un booleano")
	}

	result, err := h.Service.FindAll(f)
	if err != nil {
		return serviceError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(result)
}

// Get handles GET /inmuebles/:id
// @Summary Get one property
// @Tags Inmuebles
// @Produce json
// @Param id path int true "Property ID"
// @Success 200 {object} dto.InmuebleOut
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /inmuebles/{id} [get]
func (h *InmuebleHandler) Get(c *fiber.Ctx) error {
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

// Create handles POST /inmuebles. The payload references an existing
// Agencia and Propietario by id; a missing reference yields a 404.
// @Summary Create a property
// @Tags Inmuebles
// @Accept json
// @Produce json
// @Param body body dto.InmuebleIn true "Property payload"
// @Success 201 {object} dto.InmuebleOut
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /inmuebles [post]
func (h *InmuebleHandler) Create(c *fiber.Ctx) error {
	var in dto.InmuebleIn
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

// Update handles PUT /inmuebles/:id
// @Summary Replace a property
// @Tags Inmuebles
// @Accept json
// @Produce json
// @Param id path int true "Property ID"
// @Param body body dto.InmuebleIn true "Property payload"
// @Success 200 {object} dto.InmuebleOut
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /inmuebles/{id} [put]
func (h *InmuebleHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return utils.BadRequestResponse(c, "El identificador no es válido")
	}

	var in dto.InmuebleIn
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

// Delete handles DELETE /inmuebles/:id
// @Summary Delete a property
// @Tags Inmuebles
// @Param id path int true "Property ID"
// @Success 204
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /inmuebles/{id} [delete]
func (h *InmuebleHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return utils.BadRequestResponse(c, "El identificador no es válido")
	}

	if err := h.Service.Delete(id); err != nil {
		return serviceError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// RangoPrecio handles GET /inmuebles/rango
// @Summary List properties priced within an inclusive range
// @Tags Inmuebles
// @Produce json
// @Param min query number true "Lower price bound"
// @Param max query number true "Upper price bound"
// @Success 200 {array} dto.InmuebleOut
// @Failure 400 {object} utils.ErrorResponseStruct
// @Router /inmuebles/rango [get]
func (h *InmuebleHandler) RangoPrecio(c *fiber.Ctx) error {
	min, err := queryFloat(c, "min")
	if err != nil || min == nil {
		return utils.BadRequestResponse(c, "El parámetro min es obligatorio y debe ser numérico")
	}
	max, err := queryFloat(c, "max")
	if err != nil || max == nil {
		return utils.BadRequestResponse(c, "El parámetro max es obligatorio y debe ser numérico")
	}

	result, err := h.Service.FindRangoPrecio(*min, *max)
	if err != nil {
		return serviceError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(result)
}
