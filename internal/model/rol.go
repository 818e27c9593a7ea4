package model

import "time"

// Nombres de los roles del sistema sembrados al arrancar.
const (
	RolAdministrador = "administrador"
	RolCliente       = "cliente"
)

// Rol de usuario. Las filas con Protegido=true (administrador, cliente) no
// admiten renombre, desactivación ni borrado.
type Rol struct {
	RolID       int    `gorm:"primaryKey;autoIncrement" json:"RolID"`
	Nombre      string `gorm:"size:15;not null;uniqueIndex:uni_roles_nombre" json:"Nombre"`
	Descripcion string `gorm:"size:100;not null" json:"Descripcion"`
	Estado      bool   `gorm:"not null;default:true" json:"Estado"`
	Protegido   bool   `gorm:"not null;default:false" json:"Protegido"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (Rol) TableName() string { return "roles" }
