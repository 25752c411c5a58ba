package services

import (
	"errors"

	"github.com/inmobiliaria/api-inmobiliaria/internal/dto"
	"github.com/inmobiliaria/api-inmobiliaria/internal/models"
	"github.com/inmobiliaria/api-inmobiliaria/internal/types"
	"gorm.io/gorm"
)

// AgenciaFilter carries the optional listing filters. A nil field applies
// no constraint at all, it never means "column is null".
type AgenciaFilter struct {
	Nombre         *string
	CodigoPostal   *int
	AbiertoSabados *bool
}

// AgenciaService implements Agencia business logic over the storage layer.
type AgenciaService struct {
	db *gorm.DB
}

// NewAgenciaService wires the service to its database handle.
func NewAgenciaService(db *gorm.DB) *AgenciaService {
	return &AgenciaService{db: db}
}

// FindAll lists agencies narrowed by the supplied filters. The query starts
// from match-all and each supplied filter ANDs one predicate onto it.
func (s *AgenciaService) FindAll(f AgenciaFilter) ([]dto.AgenciaOut, error) {
	q := s.db.Model(&models.Agencia{})
	if f.Nombre != nil {
		q = q.Where("LOWER(nombre) LIKE ?", likeContains(*f.Nombre))
	}
	if f.CodigoPostal != nil {
		q = q.Where("codigo_postal = ?", *f.CodigoPostal)
	}
	if f.AbiertoSabados != nil {
		q = q.Where("abierto_sabados = ?", *f.AbiertoSabados)
	}

	var agencias []models.Agencia
	if err := q.Find(&agencias).Error; err != nil {
		return nil, err
	}
	return dto.FromAgencias(agencias), nil
}

// FindByID returns one agency or a NotFoundError.
func (s *AgenciaService) FindByID(id uint64) (dto.AgenciaOut, error) {
	agencia, err := s.load(id)
	if err != nil {
		return dto.AgenciaOut{}, err
	}
	return dto.FromAgencia(agencia), nil
}

// Add persists a new agency built from the validated input.
func (s *AgenciaService) Add(in dto.AgenciaIn) (dto.AgenciaOut, error) {
	var agencia models.Agencia
	in.Apply(&agencia)

	if err := s.db.Create(&agencia).Error; err != nil {
		return dto.AgenciaOut{}, err
	}
	return dto.FromAgencia(agencia), nil
}

// Modify overlays the full payload onto the stored agency and forces the
// identifier back to the path id before saving.
func (s *AgenciaService) Modify(id uint64, in dto.AgenciaIn) (dto.AgenciaOut, error) {
	agencia, err := s.load(id)
	if err != nil {
		return dto.AgenciaOut{}, err
	}

	in.Apply(&agencia)
	agencia.ID = id

	if err := s.db.Save(&agencia).Error; err != nil {
		return dto.AgenciaOut{}, err
	}
	return dto.FromAgencia(agencia), nil
}

// Delete removes the agency after resolving it; an unknown id is a
// NotFoundError, never a silent no-op.
func (s *AgenciaService) Delete(id uint64) error {
	agencia, err := s.load(id)
	if err != nil {
		return err
	}
	return s.db.Delete(&agencia).Error
}

// FindPorFacturacion lists agencies billing above the threshold that open
// on Saturdays. Fixed predicate, no optional parts.
func (s *AgenciaService) FindPorFacturacion(facturacion float64) ([]dto.AgenciaOut, error) {
	var agencias []models.Agencia
	err := s.db.
		Where("facturacion_anual > ? AND abierto_sabados = ?", facturacion, true).
		Find(&agencias).Error
	if err != nil {
		return nil, err
	}
	return dto.FromAgencias(agencias), nil
}

func (s *AgenciaService) load(id uint64) (models.Agencia, error) {
	var agencia models.Agencia
	if err := s.db.First(&agencia, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return agencia, types.AgenciaNotFound(id)
		}
		return agencia, err
	}
	return agencia, nil
}
