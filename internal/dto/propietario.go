package dto

import (
	"github.com/inmobiliaria/api-inmobiliaria/internal/models"
)

// PropietarioIn is the wire input for creating or replacing a Propietario.
type PropietarioIn struct {
	Dni       string       `json:"dni" validate:"required,max=20"`
	Nombre    string       `json:"nombre" validate:"required,max=100"`
	Telefono  string       `json:"telefono" validate:"required,max=15"`
	Comision  *float64     `json:"comision" validate:"required,gte=0"`
	EsEmpresa *bool        `json:"esEmpresa" validate:"required"`
	FechaAlta *models.Date `json:"fechaAlta" validate:"required"`
}

// PropietarioOut is the wire representation of a persisted Propietario.
type PropietarioOut struct {
	ID        uint64      `json:"id"`
	Dni       string      `json:"dni"`
	Nombre    string      `json:"nombre"`
	Telefono  string      `json:"telefono"`
	Comision  float64     `json:"comision"`
	EsEmpresa bool        `json:"esEmpresa"`
	FechaAlta models.Date `json:"fechaAlta"`
}

// Apply copies every input field onto the entity. The id is untouched.
func (in PropietarioIn) Apply(p *models.Propietario) {
	p.Dni = in.Dni
	p.Nombre = in.Nombre
	p.Telefono = in.Telefono
	p.Comision = *in.Comision
	p.EsEmpresa = *in.EsEmpresa
	p.FechaAlta = *in.FechaAlta
}

// FromPropietario converts the entity into its response shape.
func FromPropietario(p models.Propietario) PropietarioOut {
	return PropietarioOut{
		ID:        p.ID,
		Dni:       p.Dni,
		Nombre:    p.Nombre,
		Telefono:  p.Telefono,
		Comision:  p.Comision,
		EsEmpresa: p.EsEmpresa,
		FechaAlta: p.FechaAlta,
	}
}

// FromPropietarios converts a result set, never returning nil.
func FromPropietarios(list []models.Propietario) []PropietarioOut {
	out := make([]PropietarioOut, 0, len(list))
	for _, p := range list {
		out = append(out, FromPropietario(p))
	}
	return out
}
