package models

import "time"

// Agencia represents a brokerage agency
type Agencia struct {
	ID               uint64  `gorm:"primaryKey;autoIncrement"`
	Nombre           string  `gorm:"size:100;not null"`
	Direccion        string  `gorm:"size:200;not null"`
	FacturacionAnual float64 `gorm:"column:facturacion_anual;not null"`
	CodigoPostal     int     `gorm:"column:codigo_postal;not null"`
	AbiertoSabados   bool    `gorm:"column:abierto_sabados;not null"`
	FechaFundacion   Date    `gorm:"column:fecha_fundacion;not null"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// TableName overrides the table name for Agencia
func (Agencia) TableName() string {
	return "agencia"
}
