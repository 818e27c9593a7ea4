package model

import "time"

// Insumo es un material consumible (tinta, vinilo, hilo...) con control de
// stock. Estado pasa a false automáticamente cuando el stock llega a cero.
type Insumo struct {
	InsumoID  int    `gorm:"primaryKey;autoIncrement" json:"InsumoID"`
	Nombre    string `gorm:"size:50;not null;uniqueIndex:uni_insumos_nombre" json:"Nombre"`
	Stock     int    `gorm:"not null;default:0" json:"Stock"`
	Estado    bool   `gorm:"not null;default:true" json:"Estado"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (Insumo) TableName() string { return "insumos" }
