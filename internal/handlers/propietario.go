package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/inmobiliaria/api-inmobiliaria/internal/dto"
	"github.com/inmobiliaria/api-inmobiliaria/internal/services"
	"github.com/inmobiliaria/api-inmobiliaria/internal/utils"
	"github.com/inmobiliaria/api-inmobiliaria/internal/validation"
)

// PropietarioHandler handles the /propietarios routes
type PropietarioHandler struct {
	Service *services.PropietarioService
}

// List handles GET /propietarios
// @Summary List owners
// @Description List owners, optionally narrowed by DNI, name and company flag
// @Tags Propietarios
// @Produce json
// @Param dni query string false "DNI substring, case-insensitive"
// @Param nombre query string false "Name substring, case-insensitive"
// @Param esEmpresa query bool false "Owner is a company"
// @Success 200 {array} dto.PropietarioOut
// @Failure 400 {object} utils.ErrorResponseStruct
// @Router /propietarios [get]
func (h *PropietarioHandler) List(c *fiber.Ctx) error {
	var f services.PropietarioFilter
	var err error

	f.Dni = queryString(c, "dni")
	f.Nombre = queryString(c, "nombre")
	if f.EsEmpresa, err = queryBool(c, "esEmpresa"); err != nil {
		return utils.BadRequestResponse(c, "El parámetro esEmpresa no es un booleano")
	}

	result, err := h.Service.FindAll(f)
	if err != nil {
		return serviceError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(result)
}

// Get handles GET /propietarios/:id
// @Summary Get one owner
// @Tags Propietarios
// @Produce json
// @Param id path int true "Owner ID"
// @Success 200 {object} dto.PropietarioOut
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /propietarios/{id} [get]
func (h *PropietarioHandler) Get(c *fiber.Ctx) error {
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

// Create handles POST /propietarios
// @Summary Create an owner
// @Tags Propietarios
// @Accept json
// @Produce json
// @Param body body dto.PropietarioIn true "Owner payload"
// @Success 201 {object} dto.PropietarioOut
// @Failure 400 {object} utils.ErrorResponseStruct
// @Router /propietarios [post]
func (h *PropietarioHandler) Create(c *fiber.Ctx) error {
	var in dto.PropietarioIn
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

// Update handles PUT /propietarios/:id
// @Summary Replace an owner
// @Tags Propietarios
// @Accept json
// @Produce json
// @Param id path int true "Owner ID"
// @Param body body dto.PropietarioIn true "Owner payload"
// @Success 200 {object} dto.PropietarioOut
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /propietarios/{id} [put]
func (h *PropietarioHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return utils.BadRequestResponse(c, "El identificador no es válido")
	}

	var in dto.PropietarioIn
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

// Delete handles DELETE /propietarios/:id
// @Summary Delete an owner
// @Tags Propietarios
// @Param id path int true "Owner ID"
// @Success 204
// @Failure 404 {object} utils.ErrorResponseStruct
// @Router /propietarios/{id} [delete]
func (h *PropietarioHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return utils.BadRequestResponse(c, "El identificador no es válido")
	}

	if err := h.Service.Delete(id); err != nil {
		return serviceError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// Empresas handles GET /propietarios/empresas
// @Summary List owners that are companies
// @Tags Propietarios
// @Produce json
// @Success 200 {array} dto.PropietarioOut
// @Router /propietarios/empresas [get]
func (h *PropietarioHandler) Empresas(c *fiber.Ctx) error {
	result, err := h.Service.FindEmpresas()
	if err != nil {
		return serviceError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(result)
}
