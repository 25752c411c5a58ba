package services

import (
	"errors"

	"github.com/inmobiliaria/api-inmobiliaria/internal/dto"
	"github.com/inmobiliaria/api-inmobiliaria/internal/models"
	"github.com/inmobiliaria/api-inmobiliaria/internal/types"
	"gorm.io/gorm"
)

// PropietarioFilter carries the optional listing filters.
type PropietarioFilter struct {
	Dni       *string
	Nombre    *string
	EsEmpresa *bool
}

// PropietarioService implements Propietario business logic over the storage layer.
type PropietarioService struct {
	db *gorm.DB
}

// NewPropietarioService wires the service to its database handle.
func NewPropietarioService(db *gorm.DB) *PropietarioService {
	return &PropietarioService{db: db}
}

// FindAll lists owners narrowed by the supplied filters.
func (s *PropietarioService) FindAll(f PropietarioFilter) ([]dto.PropietarioOut, error) {
	q := s.db.Model(&models.Propietario{})
	if f.Dni != nil {
		q = q.Where("LOWER(dni) LIKE ?", likeContains(*f.Dni))
	}
	if f.Nombre != nil {
		q = q.Where("LOWER(nombre) LIKE ?", likeContains(*f.Nombre))
	}
	if f.EsEmpresa != nil {
		q = q.Where("es_empresa = ?", *f.EsEmpresa)
	}

	var propietarios []models.Propietario
	if err := q.Find(&propietarios).Error; err != nil {
		return nil, err
	}
	return dto.FromPropietarios(propietarios), nil
}

// FindByID returns one owner or a NotFoundError.
func (s *PropietarioService) FindByID(id uint64) (dto.PropietarioOut, error) {
	propietario, err := s.load(id)
	if err != nil {
		return dto.PropietarioOut{}, err
	}
	return dto.FromPropietario(propietario), nil
}

// Add persists a new owner built from the validated input.
func (s *PropietarioService) Add(in dto.PropietarioIn) (dto.PropietarioOut, error) {
	var propietario models.Propietario
	in.Apply(&propietario)

	if err := s.db.Create(&propietario).Error; err != nil {
		return dto.PropietarioOut{}, err
	}
	return dto.FromPropietario(propietario), nil
}

// Modify overlays the full payload onto the stored owner, id forced back.
func (s *PropietarioService) Modify(id uint64, in dto.PropietarioIn) (dto.PropietarioOut, error) {
	propietario, err := s.load(id)
	if err != nil {
		return dto.PropietarioOut{}, err
	}

	in.Apply(&propietario)
	propietario.ID = id

	if err := s.db.Save(&propietario).Error; err != nil {
		return dto.PropietarioOut{}, err
	}
	return dto.FromPropietario(propietario), nil
}

// Delete removes the owner after resolving it.
func (s *PropietarioService) Delete(id uint64) error {
	propietario, err := s.load(id)
	if err != nil {
		return err
	}
	return s.db.Delete(&propietario).Error
}

// FindEmpresas lists owners flagged as companies. Kept as raw SQL,
// mirroring the native query it replaces.
func (s *PropietarioService) FindEmpresas() ([]dto.PropietarioOut, error) {
	var propietarios []models.Propietario
	err := s.db.Raw("SELECT * FROM propietario WHERE es_empresa = ?", true).
		Scan(&propietarios).Error
	if err != nil {
		return nil, err
	}
	return dto.FromPropietarios(propietarios), nil
}

func (s *PropietarioService) load(id uint64) (models.Propietario, error) {
	var propietario models.Propietario
	if err := s.db.First(&propietario, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return propietario, types.PropietarioNotFound(id)
		}
		return propietario, err
	}
	return propietario, nil
}
