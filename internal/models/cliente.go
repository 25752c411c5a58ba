package models

import "time"

// Cliente represents a prospective buyer or tenant
type Cliente struct {
	ID                uint64  `gorm:"primaryKey;autoIncrement"`
	Email             string  `gorm:"size:100;not null"`
	Password          string  `gorm:"not null"`
	Telefono          string  `gorm:"size:20;not null"`
	PresupuestoMaximo float64 `gorm:"column:presupuesto_maximo;not null"`
	Edad              int     `gorm:"not null"`
	FechaAlta         Date    `gorm:"column:fecha_alta;not null"`
	Suscrito          bool    `gorm:"not null"`
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// TableName overrides the table name for Cliente
func (Cliente) TableName() string {
	return "cliente"
}
