package model

import "time"

// Tecnica de estampado (serigrafía, DTF, bordado...). La imagen es una URL a
// un hosting confiable; nunca se almacena el binario inline.
type Tecnica struct {
	TecnicaID     int    `gorm:"primaryKey;autoIncrement" json:"TecnicaID"`
	Nombre        string `gorm:"size:20;not null;uniqueIndex:uni_tecnicas_nombre" json:"Nombre"`
	ImagenTecnica string `gorm:"size:255;not null" json:"ImagenTecnica"`
	Descripcion   string `gorm:"size:255;not null" json:"Descripcion"`
	Estado        bool   `gorm:"not null;default:true" json:"Estado"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func (Tecnica) TableName() string { return "tecnicas" }
