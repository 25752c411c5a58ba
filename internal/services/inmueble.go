package services

import (
	"errors"

	"github.com/inmobiliaria/api-inmobiliaria/internal/dto"
	"github.com/inmobiliaria/api-inmobiliaria/internal/models"
	"github.com/inmobiliaria/api-inmobiliaria/internal/types"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// InmuebleFilter carries the optional listing filters.
type InmuebleFilter struct {
	PrecioMax *float64
	MetrosMin *int
	Ascensor  *bool
}

// InmuebleService implements Inmueble business logic. It also resolves the
// Agencia and Propietario references a property links to.
type InmuebleService struct {
	db *gorm.DB
}

// NewInmuebleService wires the service to its database handle.
func NewInmuebleService(db *gorm.DB) *InmuebleService {
	return &InmuebleService{db: db}
}

// FindAll lists properties narrowed by the supplied filters. Numeric range
// filters compare inclusively.
func (s *InmuebleService) FindAll(f InmuebleFilter) ([]dto.InmuebleOut, error) {
	q := s.db.Model(&models.Inmueble{})
	if f.PrecioMax != nil {
		q = q.Where("precio <= ?", *f.PrecioMax)
	}
	if f.MetrosMin != nil {
		q = q.Where("metros >= ?", *f.MetrosMin)
	}
	if f.Ascensor != nil {
		q = q.Where("ascensor = ?", *f.Ascensor)
	}

	var inmuebles []models.Inmueble
	if err := q.Find(&inmuebles).Error; err != nil {
		return nil, err
	}
	return dto.FromInmuebles(inmuebles), nil
}

// FindByID returns one property or a NotFoundError.
func (s *InmuebleService) FindByID(id uint64) (dto.InmuebleOut, error) {
	inmueble, err := s.load(id)
	if err != nil {
		return dto.InmuebleOut{}, err
	}
	return dto.FromInmueble(inmueble), nil
}

// Add resolves the referenced Agencia and Propietario before constructing
// the row. A missing reference fails the whole create, nothing is persisted.
func (s *InmuebleService) Add(in dto.InmuebleIn) (dto.InmuebleOut, error) {
	agencia, propietario, err := s.resolveRefs(in)
	if err != nil {
		return dto.InmuebleOut{}, err
	}

	var inmueble models.Inmueble
	in.Apply(&inmueble)
	inmueble.Agencia = agencia
	inmueble.AgenciaID = agencia.ID
	inmueble.Propietario = propietario
	inmueble.PropietarioID = propietario.ID

	// The references were just loaded; only the property row is written.
	if err := s.db.Omit(clause.Associations).Create(&inmueble).Error; err != nil {
		return dto.InmuebleOut{}, err
	}
	return dto.FromInmueble(inmueble), nil
}

// Modify overlays the full payload onto the stored property, re-resolving
// both references, and forces the identifier back to the path id.
func (s *InmuebleService) Modify(id uint64, in dto.InmuebleIn) (dto.InmuebleOut, error) {
	inmueble, err := s.load(id)
	if err != nil {
		return dto.InmuebleOut{}, err
	}

	agencia, propietario, err := s.resolveRefs(in)
	if err != nil {
		return dto.InmuebleOut{}, err
	}

	in.Apply(&inmueble)
	inmueble.Agencia = agencia
	inmueble.AgenciaID = agencia.ID
	inmueble.Propietario = propietario
	inmueble.PropietarioID = propietario.ID
	inmueble.ID = id

	if err := s.db.Omit(clause.Associations).Save(&inmueble).Error; err != nil {
		return dto.InmuebleOut{}, err
	}
	return dto.FromInmueble(inmueble), nil
}

// Delete removes the property after resolving it.
func (s *InmuebleService) Delete(id uint64) error {
	inmueble, err := s.load(id)
	if err != nil {
		return err
	}
	return s.db.Delete(&inmueble).Error
}

// FindRangoPrecio lists properties priced within [min, max].
func (s *InmuebleService) FindRangoPrecio(min, max float64) ([]dto.InmuebleOut, error) {
	var inmuebles []models.Inmueble
	err := s.db.
		Where("precio BETWEEN ? AND ?", min, max).
		Find(&inmuebles).Error
	if err != nil {
		return nil, err
	}
	return dto.FromInmuebles(inmuebles), nil
}

func (s *InmuebleService) resolveRefs(in dto.InmuebleIn) (models.Agencia, models.Propietario, error) {
	var agencia models.Agencia
	agenciaID := in.AgenciaID.Uint64()
	if err := s.db.First(&agencia, agenciaID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return agencia, models.Propietario{}, types.AgenciaRefNotFound(agenciaID)
		}
		return agencia, models.Propietario{}, err
	}

	var propietario models.Propietario
	propietarioID := in.PropietarioID.Uint64()
	if err := s.db.First(&propietario, propietarioID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return agencia, propietario, types.PropietarioRefNotFound(propietarioID)
		}
		return agencia, propietario, err
	}

	return agencia, propietario, nil
}

func (s *InmuebleService) load(id uint64) (models.Inmueble, error) {
	var inmueble models.Inmueble
	if err := s.db.First(&inmueble, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return inmueble, types.InmuebleNotFound(id)
		}
		return inmueble, err
	}
	return inmueble, nil
}
