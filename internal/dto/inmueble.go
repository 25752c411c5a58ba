package dto

import (
	"github.com/inmobiliaria/api-inmobiliaria/internal/models"
	"github.com/inmobiliaria/api-inmobiliaria/internal/types"
)

// InmuebleIn is the wire input for creating or replacing an Inmueble.
// The referenced Agencia and Propietario are carried as identifiers and
// resolved by the service before the row is constructed.
type InmuebleIn struct {
	Titulo           string        `json:"titulo" validate:"required,max=150"`
	Precio           *float64      `json:"precio" validate:"required,gt=0"`
	Metros           *int          `json:"metros" validate:"required,gte=1"`
	Latitud          *float64      `json:"latitud" validate:"required"`
	Longitud         *float64      `json:"longitud" validate:"required"`
	Ascensor         *bool         `json:"ascensor" validate:"required"`
	FechaPublicacion *models.Date  `json:"fechaPublicacion" validate:"required,lte"`
	AgenciaID        *types.FlexID `json:"agenciaId" validate:"required"`
	PropietarioID    *types.FlexID `json:"propietarioId" validate:"required"`
}

// InmuebleOut is the wire representation of a persisted Inmueble. The
// referenced entities surface as flattened identifiers, not nested objects.
type InmuebleOut struct {
	ID               uint64      `json:"id"`
	Titulo           string      `json:"titulo"`
	Precio           float64     `json:"precio"`
	Metros           int         `json:"metros"`
	Latitud          float64     `json:"latitud"`
	Longitud         float64     `json:"longitud"`
	Ascensor         bool        `json:"ascensor"`
	FechaPublicacion models.Date `json:"fechaPublicacion"`
	AgenciaID        uint64      `json:"agenciaId"`
	PropietarioID    uint64      `json:"propietarioId"`
}

// Apply copies the scalar input fields onto the entity. Ownership links are
// assigned by the service after reference resolution; the id is untouched.
func (in InmuebleIn) Apply(i *models.Inmueble) {
	i.Titulo = in.Titulo
	i.Precio = *in.Precio
	i.Metros = *in.Metros
	i.Latitud = *in.Latitud
	i.Longitud = *in.Longitud
	i.Ascensor = *in.Ascensor
	i.FechaPublicacion = *in.FechaPublicacion
}

// FromInmueble converts the entity into its response shape.
func FromInmueble(i models.Inmueble) InmuebleOut {
	return InmuebleOut{
		ID:               i.ID,
		Titulo:           i.Titulo,
		Precio:           i.Precio,
		Metros:           i.Metros,
		Latitud:          i.Latitud,
		Longitud:         i.Longitud,
		Ascensor:         i.Ascensor,
		FechaPublicacion: i.FechaPublicacion,
		AgenciaID:        i.AgenciaID,
		PropietarioID:    i.PropietarioID,
	}
}

// FromInmuebles converts a result set, never returning nil.
func FromInmuebles(list []models.Inmueble) []InmuebleOut {
	out := make([]InmuebleOut, 0, len(list))
	for _, i := range list {
		out = append(out, FromInmueble(i))
	}
	return out
}
