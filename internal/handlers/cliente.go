package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/inmobiliaria/api-inmobiliaria/internal/dto"
	"github.com/inmobiliaria/api-inmobiliaria/internal/services"
	"github.com/inmobiliaria/api-inmobiliaria/internal/utils"
	"github.com/inmobiliaria/api-inmobiliaria/internal/validation"
)

// ClienteHandler handles the /clientes routes
type ClienteHandler struct {
	Service *services.ClienteService
}

// List handles GET /clientes
// @Summary List clients
// @Description List clients, optionally narrowed by email, phone and subscription
// @Tags Clientes
// @Produce json
// @Param email query string false "Email substring, case-insensitive"
// @Param telefono query string false "Phone substring"
// @Param suscrito query bool false "Subscribed to the newsletter"
// @Success 200 {array} dto.ClienteOut
// @Failure 400 {object} utils.ErrorResponseStruct
// @Router /clientes [get]
func (h *ClienteHandler) List(c *fiber.Ctx) error {
	var f services.ClienteFilter
	var err error

	f.Email = queryString(c, "email")
	f.Telefono = queryString(c, "telefono")
	if f.Suscrito, err = queryBool(c, "suscrito"); err != nil {
		return utils.BadRequestResponse(c, "El parámetro suscrito no es un booleano")
	}

	result, err := h.Service.FindAll(f)
	if err != nil {
		return serviceError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(result)
}

// Get handles GET /clientes/:id
// @Summary Get one client
// @Tags Clientes
// @Produce json
// @Param id path int true "Client ID"
// @Success 200 {object} dto.ClienteOut
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /clientes/{id} [get]
func (h *ClienteHandler) Get(c *fiber.Ctx) error {
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

// Create handles POST /clientes
// @Summary Create a client
// @Tags Clientes
// @Accept json
// @Produce json
// @Param body body dto.ClienteIn true "Client payload"
// @Success 201 {object} dto.ClienteOut
// @Failure 400 {object} utils.ErrorResponseStruct
// @Router /clientes [post]
func (h *ClienteHandler) Create(c *fiber.Ctx) error {
	var in dto.ClienteIn
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

// Update handles PUT /clientes/:id
// @Summary Replace a client
// @Tags Clientes
// @Accept json
// @Produce json
// @Param id path int true "Client ID"
// @Param body body dto.ClienteIn true "Client payload"
// @Success 200 {object} dto.ClienteOut
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /clientes/{id} [put]
func (h *ClienteHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return utils.BadRequestResponse(c, "El identificador no es válido")
	}

	var in dto.ClienteIn
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

// Delete handles DELETE /clientes/:id
// @Summary Delete a client
// @Tags Clientes
// @Param id path int true "Client ID"
// @Success 204
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /clientes/{id} [delete]
func (h *ClienteHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return utils.BadRequestResponse(c, "El identificador no es válido")
	}

	if err := h.Service.Delete(id); err != nil {
		return serviceError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Vip handles GET /clientes/vip
// @Summary List subscribed clients above a budget threshold
// @Tags Clientes
// @Produce json
// @Param presupuesto query number true "Budget threshold"
// @Success 200 {array} dto.ClienteOut
// @Failure 400 {object} utils.ErrorResponseStruct
// @Router /clientes/vip [get]
func (h *ClienteHandler) Vip(c *fiber.Ctx) error {
	presupuesto, err := queryFloat(c, "presupuesto")
	if err != nil || presupuesto == nil {
		return utils.BadRequestResponse(c, "El parámetro presupuesto es obligatorio y debe ser numérico")
	}

	result, err := h.Service.FindVip(*presupuesto)
	if err != nil {
		return serviceError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(result)
}
