package model

import "time"

// Usuario del sistema, identificado por su documento. La contraseña se guarda
// como hash bcrypt y nunca viaja en las respuestas.
type Usuario struct {
	DocumentoID    string `gorm:"primaryKey;size:15" json:"DocumentoID"`
	Nombre         string `gorm:"size:50;not null" json:"Nombre"`
	Correo         string `gorm:"size:100;not null;uniqueIndex:uni_usuarios_correo" json:"Correo"`
	Direccion      string `gorm:"size:150;not null" json:"Direccion"`
	Telefono       string `gorm:"size:15;not null" json:"Telefono"`
	ContrasenaHash string `gorm:"column:contrasena_hash;size:100;not null" json:"-"`
	RolID          int    `gorm:"not null;index" json:"RolID"`
	CreatedAt      time.Time
	UpdatedAt      time.Time

	Rol *Rol `gorm:"foreignKey:RolID" json:"Rol,omitempty"`
}

func (Usuario) TableName() string { return "usuarios" }
