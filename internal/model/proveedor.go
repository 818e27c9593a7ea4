package model

import "time"

// Proveedor de insumos, identificado por su NIT.
type Proveedor struct {
	Nit       string `gorm:"primaryKey;size:20" json:"Nit"`
	Nombre    string `gorm:"size:50;not null" json:"Nombre"`
	Correo    string `gorm:"size:100;not null" json:"Correo"`
	Telefono  string `gorm:"size:15;not null" json:"Telefono"`
	Direccion string `gorm:"size:155;not null" json:"Direccion"`
	Estado    bool   `gorm:"not null;default:true" json:"Estado"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Pedidos []Pedido `gorm:"foreignKey:Nit;references:Nit" json:"-"`
}

func (Proveedor) TableName() string { return "proveedores" }
