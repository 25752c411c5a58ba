package models

import "time"

// Visit states
const (
	VisitaPendiente  = "PENDIENTE"
	VisitaConfirmada = "CONFIRMADA"
	VisitaCancelada  = "CANCELADA"
)

// Visita represents a client visit to a property
type Visita struct {
	ID                 uint64   `gorm:"primaryKey;autoIncrement"`
	FechaHora          DateTime `gorm:"column:fecha_hora;not null"`
	Comentarios        string   `gorm:"size:255"`
	Estado             string   `gorm:"size:20;not null;default:PENDIENTE"`
	Valoracion         *float64
	DuracionEstimada   *int   `gorm:"column:duracion_estimada"`
	RecordatorioActivo bool   `gorm:"column:recordatorio_activo;not null"`
	ClienteID          uint64 `gorm:"column:cliente_id;not null"`
	Cliente            Cliente
	InmuebleID         uint64 `gorm:"column:inmueble_id;not null"`
	Inmueble           Inmueble
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// TableName overrides the table name for Visita
func (Visita) TableName() string {
	return "visita"
}
