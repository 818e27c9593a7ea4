package model

import "time"

// Diseno es una composición de estampados sobre partes de una prenda.
// Por ahora la API solo los expone en lectura; se crean desde otra herramienta.
type Diseno struct {
	DisenoID    int     `gorm:"primaryKey;autoIncrement" json:"DisenoID"`
	Nombre      string  `gorm:"size:50;not null" json:"Nombre"`
	Descripcion *string `gorm:"size:255" json:"Descripcion"`
	CreatedAt   time.Time

	Detalles []DetalleDiseno `gorm:"foreignKey:DisenoID" json:"Detalles,omitempty"`
}

func (Diseno) TableName() string { return "disenos" }

// DetalleDiseno ubica una imagen sobre una parte de la prenda.
type DetalleDiseno struct {
	DetalleDisenoID int     `gorm:"primaryKey;autoIncrement" json:"DetalleDisenoID"`
	DisenoID        int     `gorm:"not null;index" json:"DisenoID"`
	ParteID         int     `gorm:"not null;index" json:"ParteID"`
	Imagen          *string `gorm:"size:255" json:"Imagen"`
	CreatedAt       time.Time

	Diseno *Diseno `gorm:"foreignKey:DisenoID" json:"-"`
	Parte  *Parte  `gorm:"foreignKey:ParteID" json:"Parte,omitempty"`
}

func (DetalleDiseno) TableName() string { return "detalle_disenos" }
