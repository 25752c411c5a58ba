package dto

import (
	"github.com/inmobiliaria/api-inmobiliaria/internal/models"
)

// AgenciaIn is the wire input for creating or replacing an Agencia.
// Pointer fields distinguish "absent" from zero values so required
// validation catches missing booleans and numerics.
type AgenciaIn struct {
	Nombre           string       `json:"nombre" validate:"required,max=100"`
	Direccion        string       `json:"direccion" validate:"required,max=200"`
	FacturacionAnual *float64     `json:"facturacionAnual" validate:"required,gte=0"`
	CodigoPostal     *int         `json:"codigoPostal" validate:"required"`
	AbiertoSabados   *bool        `json:"abiertoSabados" validate:"required"`
	FechaFundacion   *models.Date `json:"fechaFundacion" validate:"required,lt"`
}

// AgenciaOut is the wire representation of a persisted Agencia.
type AgenciaOut struct {
	ID               uint64      `json:"id"`
	Nombre           string      `json:"nombre"`
	Direccion        string      `json:"direccion"`
	FacturacionAnual float64     `json:"facturacionAnual"`
	CodigoPostal     int         `json:"codigoPostal"`
	AbiertoSabados   bool        `json:"abiertoSabados"`
	FechaFundacion   models.Date `json:"fechaFundacion"`
}

// Apply copies every input field onto the entity. The id is untouched, so
// modify keeps the original identifier regardless of the payload.
func (in AgenciaIn) Apply(a *models.Agencia) {
	a.Nombre = in.Nombre
	a.Direccion = in.Direccion
	a.FacturacionAnual = *in.FacturacionAnual
	a.CodigoPostal = *in.CodigoPostal
	a.AbiertoSabados = *in.AbiertoSabados
	a.FechaFundacion = *in.FechaFundacion
}

// FromAgencia converts the entity into its response shape.
func FromAgencia(a models.Agencia) AgenciaOut {
	return AgenciaOut{
		ID:               a.ID,
		Nombre:           a.Nombre,
		Direccion:        a.Direccion,
		FacturacionAnual: a.FacturacionAnual,
		CodigoPostal:     a.CodigoPostal,
		AbiertoSabados:   a.AbiertoSabados,
		FechaFundacion:   a.FechaFundacion,
	}
}

// FromAgencias converts a result set, never returning nil so empty result
// sets serialize as [].
func FromAgencias(list []models.Agencia) []AgenciaOut {
	out := make([]AgenciaOut, 0, len(list))
	for _, a := range list {
		out = append(out, FromAgencia(a))
	}
	return out
}
