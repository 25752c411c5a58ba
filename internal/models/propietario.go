package models

import "time"

// Propietario represents a property owner, either a person or a company
type Propietario struct {
	ID        uint64  `gorm:"primaryKey;autoIncrement"`
	Dni       string  `gorm:"size:20;not null"`
	Nombre    string  `gorm:"size:100;not null"`
	Telefono  string  `gorm:"size:15;not null"`
	Comision  float64 `gorm:"not null"`
	EsEmpresa bool    `gorm:"column:es_empresa;not null"`
	FechaAlta Date    `gorm:"column:fecha_alta;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName overrides the table name for Propietario
func (Propietario) TableName() string {
	return "propietario"
}
