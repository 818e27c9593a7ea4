package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Producto base del catálogo (camiseta, hoodie...). Las combinaciones
// concretas de color/talla viven en ProductoVariante.
type Producto struct {
	ProductoID  int     `gorm:"primaryKey;autoIncrement" json:"ProductoID"`
	Nombre      string  `gorm:"size:50;not null" json:"Nombre"`
	Descripcion *string `gorm:"size:255" json:"Descripcion"`
	TelaID      int     `gorm:"not null;index" json:"TelaID"`
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Tela      *Tela              `gorm:"foreignKey:TelaID" json:"Tela,omitempty"`
	Variantes []ProductoVariante `gorm:"foreignKey:ProductoID" json:"Variantes,omitempty"`
}

func (Producto) TableName() string { return "productos" }

// ProductoVariante es una combinación producto+color+talla con su propio
// stock y precio. La tripleta es única.
type ProductoVariante struct {
	VarianteID int             `gorm:"primaryKey;autoIncrement" json:"VarianteID"`
	ProductoID int             `gorm:"not null;uniqueIndex:idx_variante_combinacion" json:"ProductoID"`
	ColorID    int             `gorm:"not null;uniqueIndex:idx_variante_combinacion" json:"ColorID"`
	TallaID    int             `gorm:"not null;uniqueIndex:idx_variante_combinacion" json:"TallaID"`
	Stock      int             `gorm:"not null;default:0" json:"Stock"`
	Imagen     *string         `gorm:"size:255" json:"Imagen"`
	Precio     decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"Precio"`
	Estado     bool            `gorm:"not null;default:true" json:"Estado"`
	CreatedAt  time.Time
	UpdatedAt  time.Time

	Producto *Producto `gorm:"foreignKey:ProductoID" json:"Producto,omitempty"`
	Color    *Color    `gorm:"foreignKey:ColorID" json:"Color,omitempty"`
	Talla    *Talla    `gorm:"foreignKey:TallaID" json:"Talla,omitempty"`
}

func (ProductoVariante) TableName() string { return "productos_variantes" }
