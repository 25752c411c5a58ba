package dto

import (
	"github.com/inmobiliaria/api-inmobiliaria/internal/models"
)

// ClienteIn is the wire input for creating or replacing a Cliente.
type ClienteIn struct {
	Email             string       `json:"email" validate:"required,email,max=100"`
	Password          string       `json:"password" validate:"required"`
	Telefono          string       `json:"telefono" validate:"required,max=20"`
	PresupuestoMaximo *float64     `json:"presupuestoMaximo" validate:"required"`
	Edad              *int         `json:"edad" validate:"required,gte=18"`
	FechaAlta         *models.Date `json:"fechaAlta" validate:"required"`
	Suscrito          *bool        `json:"suscrito" validate:"required"`
}

// ClienteOut is the wire representation of a persisted Cliente.
// Password and fechaAlta are deliberately not exposed.
type ClienteOut struct {
	ID                uint64  `json:"id"`
	Email             string  `json:"email"`
	Telefono          string  `json:"telefono"`
	PresupuestoMaximo float64 `json:"presupuestoMaximo"`
	Edad              int     `json:"edad"`
	Suscrito          bool    `json:"suscrito"`
}

// Apply copies every input field onto the entity. The id is untouched.
func (in ClienteIn) Apply(c *models.Cliente) {
	c.Email = in.Email
	c.Password = in.Password
	c.Telefono = in.Telefono
	c.PresupuestoMaximo = *in.PresupuestoMaximo
	c.Edad = *in.Edad
	c.FechaAlta = *in.FechaAlta
	c.Suscrito = *in.Suscrito
}

// FromCliente converts the entity into its response shape.
func FromCliente(c models.Cliente) ClienteOut {
	return ClienteOut{
		ID:                c.ID,
		Email:             c.Email,
		Telefono:          c.Telefono,
		PresupuestoMaximo: c.PresupuestoMaximo,
		Edad:              c.Edad,
		Suscrito:          c.Suscrito,
	}
}

// FromClientes converts a result set, never returning nil.
func FromClientes(list []models.Cliente) []ClienteOut {
	out := make([]ClienteOut, 0, len(list))
	for _, c := range list {
		out = append(out, FromCliente(c))
	}
	return out
}
