package types

import "fmt"

// NotFoundError reports a lookup by id that matched no record.
// Entity names the resource for logging and error dispatch.
type NotFoundError struct {
	Entity  string `json:"entity"`
	Message string `json:"message"`
}

func (e *NotFoundError) Error() string {
	return e.Message
}

// AgenciaNotFound is raised when an Agencia lookup by id fails.
func AgenciaNotFound(id uint64) *NotFoundError {
	return &NotFoundError{Entity: "agencia", Message: fmt.Sprintf("Agencia no encontrada con ID: %d", id)}
}

// ClienteNotFound is raised when a Cliente lookup by id fails.
func ClienteNotFound(id uint64) *NotFoundError {
	return &NotFoundError{Entity: "cliente", Message: fmt.Sprintf("Cliente no encontrado con ID: %d", id)}
}

// PropietarioNotFound is raised when a Propietario lookup by id fails.
func PropietarioNotFound(id uint64) *NotFoundError {
	return &NotFoundError{Entity: "propietario", Message: fmt.Sprintf("Propietario no encontrado con ID: %d", id)}
}

// InmuebleNotFound is raised when an Inmueble lookup by id fails.
func InmuebleNotFound(id uint64) *NotFoundError {
	return &NotFoundError{Entity: "inmueble", Message: fmt.Sprintf("Inmueble no encontrado con ID: %d", id)}
}

// VisitaNotFound is raised when a Visita lookup by id fails.
func VisitaNotFound(id uint64) *NotFoundError {
	return &NotFoundError{Entity: "visita", Message: fmt.Sprintf("Visita no encontrada con ID: %d", id)}
}

// AgenciaRefNotFound is raised when an Inmueble references a missing Agencia.
func AgenciaRefNotFound(id uint64) *NotFoundError {
	return &NotFoundError{Entity: "agencia", Message: fmt.Sprintf("La agencia con ID %d no existe", id)}
}

// PropietarioRefNotFound is raised when an Inmueble references a missing Propietario.
func PropietarioRefNotFound(id uint64) *NotFoundError {
	return &NotFoundError{Entity: "propietario", Message: fmt.Sprintf("El propietario con ID %d no existe", id)}
}

// ClienteRefNotFound is raised when a Visita references a missing Cliente.
func ClienteRefNotFound(id uint64) *NotFoundError {
	return &NotFoundError{Entity: "cliente", Message: fmt.Sprintf("El cliente con ID %d no existe", id)}
}

// InmuebleRefNotFound is raised when a Visita references a missing Inmueble.
func InmuebleRefNotFound(id uint64) *NotFoundError {
	return &NotFoundError{Entity: "inmueble", Message: fmt.Sprintf("El inmueble con ID %d no existe", id)}
}
