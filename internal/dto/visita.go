package dto

import (
	"github.com/inmobiliaria/api-inmobiliaria/internal/models"
	"github.com/inmobiliaria/api-inmobiliaria/internal/types"
)

// VisitaIn is the wire input for creating or replacing a Visita. Estado
// defaults to PENDIENTE when omitted.
type VisitaIn struct {
	FechaHora          *models.DateTime `json:"fechaHora" validate:"required"`
	Comentarios        string           `json:"comentarios" validate:"omitempty,max=255"`
	Estado             string           `json:"estado" validate:"omitempty,oneof=PENDIENTE CONFIRMADA CANCELADA"`
	Valoracion         *float64         `json:"valoracion" validate:"omitempty,gte=0,lte=5"`
	DuracionEstimada   *int             `json:"duracionEstimada"`
	RecordatorioActivo *bool            `json:"recordatorioActivo" validate:"required"`
	ClienteID          *types.FlexID    `json:"clienteId" validate:"required"`
	InmuebleID         *types.FlexID    `json:"inmuebleId" validate:"required"`
}

// VisitaOut is the wire representation of a persisted Visita with the
// referenced Cliente and Inmueble flattened to their identifiers.
type VisitaOut struct {
	ID                 uint64          `json:"id"`
	FechaHora          models.DateTime `json:"fechaHora"`
	Comentarios        string          `json:"comentarios"`
	Estado             string          `json:"estado"`
	Valoracion         *float64        `json:"valoracion"`
	DuracionEstimada   *int            `json:"duracionEstimada"`
	RecordatorioActivo bool            `json:"recordatorioActivo"`
	ClienteID          uint64          `json:"clienteId"`
	InmuebleID         uint64          `json:"inmuebleId"`
}

// Apply copies the scalar input fields onto the entity. Ownership links are
// assigned by the service after reference resolution; the id is untouched.
func (in VisitaIn) Apply(v *models.Visita) {
	v.FechaHora = *in.FechaHora
	v.Comentarios = in.Comentarios
	v.Estado = in.Estado
	if v.Estado == "" {
		v.Estado = models.VisitaPendiente
	}
	v.Valoracion = in.Valoracion
	v.DuracionEstimada = in.DuracionEstimada
	v.RecordatorioActivo = *in.RecordatorioActivo
}

// FromVisita converts the entity into its response shape.
func FromVisita(v models.Visita) VisitaOut {
	return VisitaOut{
		ID:                 v.ID,
		FechaHora:          v.FechaHora,
		Comentarios:        v.Comentarios,
		Estado:             v.Estado,
		Valoracion:         v.Valoracion,
		DuracionEstimada:   v.DuracionEstimada,
		RecordatorioActivo: v.RecordatorioActivo,
		ClienteID:          v.ClienteID,
		InmuebleID:         v.InmuebleID,
	}
}

// FromVisitas converts a result set, never returning nil.
func FromVisitas(list []models.Visita) []VisitaOut {
	out := make([]VisitaOut, 0, len(list))
	for _, v := range list {
		out = append(out, FromVisita(v))
	}
	return out
}
