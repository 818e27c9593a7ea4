package model

import "time"

// Catálogos básicos del taller: colores, tallas y telas se referencian desde
// productos y variantes; partes se referencia desde los detalles de diseño.

// Color de prenda disponible para variantes.
type Color struct {
	ColorID   int    `gorm:"primaryKey;autoIncrement" json:"ColorID"`
	Nombre    string `gorm:"size:30;not null;uniqueIndex:uni_colores_nombre" json:"Nombre"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (Color) TableName() string { return "colores" }

// Talla (S, M, L, XL...).
type Talla struct {
	TallaID   int    `gorm:"primaryKey;autoIncrement" json:"TallaID"`
	Nombre    string `gorm:"size:4;not null;uniqueIndex:uni_tallas_nombre" json:"Nombre"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (Talla) TableName() string { return "tallas" }

// Tela con la que se confecciona un producto.
type Tela struct {
	TelaID    int    `gorm:"primaryKey;autoIncrement" json:"TelaID"`
	Nombre    string `gorm:"size:40;not null;uniqueIndex:uni_telas_nombre" json:"Nombre"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (Tela) TableName() string { return "telas" }

// Parte de una prenda (manga, espalda, pecho...) usada por los diseños.
type Parte struct {
	ParteID       int     `gorm:"primaryKey;autoIncrement" json:"ParteID"`
	Nombre        string  `gorm:"size:20;not null" json:"Nombre"`
	Observaciones *string `gorm:"size:80" json:"Observaciones"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func (Parte) TableName() string { return "partes" }
