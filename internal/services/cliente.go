package services

import (
	"errors"

	"github.com/inmobiliaria/api-inmobiliaria/internal/dto"
	"github.com/inmobiliaria/api-inmobiliaria/internal/models"
	"github.com/inmobiliaria/api-inmobiliaria/internal/types"
	"gorm.io/gorm"
)

// ClienteFilter carries the optional listing filters.
type ClienteFilter struct {
	Email    *string
	Telefono *string
	Suscrito *bool
}

// ClienteService implements Cliente business logic over the storage layer.
type ClienteService struct {
	db *gorm.DB
}

// NewClienteService wires the service to its database handle.
func NewClienteService(db *gorm.DB) *ClienteService {
	return &ClienteService{db: db}
}

// FindAll lists clients narrowed by the supplied filters.
func (s *ClienteService) FindAll(f ClienteFilter) ([]dto.ClienteOut, error) {
	q := s.db.Model(&models.Cliente{})
	if f.Email != nil {
		q = q.Where("LOWER(email) LIKE ?", likeContains(*f.Email))
	}
	if f.Telefono != nil {
		q = q.Where("telefono LIKE ?", likeRaw(*f.Telefono))
	}
	if f.Suscrito != nil {
		q = q.Where("suscrito = ?", *f.Suscrito)
	}

	var clientes []models.Cliente
	if err := q.Find(&clientes).Error; err != nil {
		return nil, err
	}
	return dto.FromClientes(clientes), nil
}

// FindByID returns one client or a NotFoundError.
func (s *ClienteService) FindByID(id uint64) (dto.ClienteOut, error) {
	cliente, err := s.load(id)
	if err != nil {
		return dto.ClienteOut{}, err
	}
	return dto.FromCliente(cliente), nil
}

// Add persists a new client built from the validated input.
func (s *ClienteService) Add(in dto.ClienteIn) (dto.ClienteOut, error) {
	var cliente models.Cliente
	in.Apply(&cliente)

	if err := s.db.Create(&cliente).Error; err != nil {
		return dto.ClienteOut{}, err
	}
	return dto.FromCliente(cliente), nil
}

// Modify overlays the full payload onto the stored client, id forced back.
func (s *ClienteService) Modify(id uint64, in dto.ClienteIn) (dto.ClienteOut, error) {
	cliente, err := s.load(id)
	if err != nil {
		return dto.ClienteOut{}, err
	}

	in.Apply(&cliente)
	cliente.ID = id

	if err := s.db.Save(&cliente).Error; err != nil {
		return dto.ClienteOut{}, err
	}
	return dto.FromCliente(cliente), nil
}

// Delete removes the client after resolving it.
func (s *ClienteService) Delete(id uint64) error {
	cliente, err := s.load(id)
	if err != nil {
		return err
	}
	return s.db.Delete(&cliente).Error
}

// FindVip lists subscribed clients whose budget exceeds the threshold.
func (s *ClienteService) FindVip(presupuesto float64) ([]dto.ClienteOut, error) {
	var clientes []models.Cliente
	err := s.db.
		Where("presupuesto_maximo > ? AND suscrito = ?", presupuesto, true).
		Find(&clientes).Error
	if err != nil {
		return nil, err
	}
	return dto.FromClientes(clientes), nil
}

func (s *ClienteService) load(id uint64) (models.Cliente, error) {
	var cliente models.Cliente
	if err := s.db.First(&cliente, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return cliente, types.ClienteNotFound(id)
		}
		return cliente, err
	}
	return cliente, nil
}
