package services

import (
	"errors"
	"time"

	"github.com/inmobiliaria/api-inmobiliaria/internal/dto"
	"github.com/inmobiliaria/api-inmobiliaria/internal/models"
	"github.com/inmobiliaria/api-inmobiliaria/internal/types"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// VisitaFilter carries the optional listing filters. Estado matches
// exactly since it is an enumeration.
type VisitaFilter struct {
	Estado        *string
	FechaDesde    *time.Time
	ValoracionMin *float64
}

// VisitaService implements Visita business logic. It also resolves the
// Cliente and Inmueble references a visit links to.
type VisitaService struct {
	db *gorm.DB
}

// NewVisitaService wires the service to its database handle.
func NewVisitaService(db *gorm.DB) *VisitaService {
	return &VisitaService{db: db}
}

// FindAll lists visits narrowed by the supplied filters.
func (s *VisitaService) FindAll(f VisitaFilter) ([]dto.VisitaOut, error) {
	q := s.db.Model(&models.Visita{})
	if f.Estado != nil {
		q = q.Where("estado = ?", *f.Estado)
	}
	if f.FechaDesde != nil {
		q = q.Where("fecha_hora >= ?", *f.FechaDesde)
	}
	if f.ValoracionMin != nil {
		q = q.Where("valoracion >= ?", *f.ValoracionMin)
	}

	var visitas []models.Visita
	if err := q.Find(&visitas).Error; err != nil {
		return nil, err
	}
	return dto.FromVisitas(visitas), nil
}

// FindByID returns one visit or a NotFoundError.
func (s *VisitaService) FindByID(id uint64) (dto.VisitaOut, error) {
	visita, err := s.load(id)
	if err != nil {
		return dto.VisitaOut{}, err
	}
	return dto.FromVisita(visita), nil
}

// Add resolves the referenced Cliente and Inmueble before constructing the
// row. A missing reference fails the whole create, nothing is persisted.
func (s *VisitaService) Add(in dto.VisitaIn) (dto.VisitaOut, error) {
	cliente, inmueble, err := s.resolveRefs(in)
	if err != nil {
		return dto.VisitaOut{}, err
	}

	var visita models.Visita
	in.Apply(&visita)
	visita.Cliente = cliente
	visita.ClienteID = cliente.ID
	visita.Inmueble = inmueble
	visita.InmuebleID = inmueble.ID

	// The references were just loaded; only the visit row is written.
	if err := s.db.Omit(clause.Associations).Create(&visita).Error; err != nil {
		return dto.VisitaOut{}, err
	}
	return dto.FromVisita(visita), nil
}

// Modify overlays the full payload onto the stored visit, re-resolving
// both references, and forces the identifier back to the path id.
func (s *VisitaService) Modify(id uint64, in dto.VisitaIn) (dto.VisitaOut, error) {
	visita, err := s.load(id)
	if err != nil {
		return dto.VisitaOut{}, err
	}

	cliente, inmueble, err := s.resolveRefs(in)
	if err != nil {
		return dto.VisitaOut{}, err
	}

	in.Apply(&visita)
	visita.Cliente = cliente
	visita.ClienteID = cliente.ID
	visita.Inmueble = inmueble
	visita.InmuebleID = inmueble.ID
	visita.ID = id

	if err := s.db.Omit(clause.Associations).Save(&visita).Error; err != nil {
		return dto.VisitaOut{}, err
	}
	return dto.FromVisita(visita), nil
}

// Delete removes the visit after resolving it.
func (s *VisitaService) Delete(id uint64) error {
	visita, err := s.load(id)
	if err != nil {
		return err
	}
	return s.db.Delete(&visita).Error
}

// FindPasadas lists visits whose scheduled time is strictly in the past.
// Kept as raw SQL, mirroring the native query it replaces.
func (s *VisitaService) FindPasadas() ([]dto.VisitaOut, error) {
	var visitas []models.Visita
	err := s.db.Raw("SELECT * FROM visita WHERE fecha_hora < ?", time.Now()).
		Scan(&visitas).Error
	if err != nil {
		return nil, err
	}
	return dto.FromVisitas(visitas), nil
}

func (s *VisitaService) resolveRefs(in dto.VisitaIn) (models.Cliente, models.Inmueble, error) {
	var cliente models.Cliente
	clienteID := in.ClienteID.Uint64()
	if err := s.db.First(&cliente, clienteID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return cliente, models.Inmueble{}, types.ClienteRefNotFound(clienteID)
		}
		return cliente, models.Inmueble{}, err
	}

	var inmueble models.Inmueble
	inmuebleID := in.InmuebleID.Uint64()
	if err := s.db.First(&inmueble, inmuebleID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return cliente, inmueble, types.InmuebleRefNotFound(inmuebleID)
		}
		return cliente, inmueble, err
	}

	return cliente, inmueble, nil
}

func (s *VisitaService) load(id uint64) (models.Visita, error) {
	var visita models.Visita
	if err := s.db.First(&visita, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return visita, types.VisitaNotFound(id)
		}
		return visita, err
	}
	return visita, nil
}
