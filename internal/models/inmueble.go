package models

import "time"

// Inmueble represents a listed property. It belongs to one Agencia and one
// Propietario; the reverse directions are resolved at query time, there are
// no back-reference slices.
type Inmueble struct {
	ID               uint64  `gorm:"primaryKey;autoIncrement"`
	Titulo           string  `gorm:"size:150;not null"`
	Precio           float64 `gorm:"not null"`
	Metros           int     `gorm:"not null"`
	Latitud          float64 `gorm:"not null"`
	Longitud         float64 `gorm:"not null"`
	Ascensor         bool    `gorm:"not null"`
	FechaPublicacion Date    `gorm:"column:fecha_publicacion;not null"`
	AgenciaID        uint64  `gorm:"column:agencia_id;not null"`
	Agencia          Agencia
	PropietarioID    uint64 `gorm:"column:propietario_id;not null"`
	Propietario      Propietario
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// TableName overrides the table name for Inmueble
func (Inmueble) TableName() string {
	return "inmueble"
}
