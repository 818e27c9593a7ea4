package dto

type CrearUsuarioRequest struct {
	DocumentoID string `json:"DocumentoID" validate:"required,min=5,max=15,numerico"`
	Nombre      string `json:"Nombre" validate:"required,min=3,max=50,letras_espacios"`
	Correo      string `json:"Correo" validate:"required,email,max=100"`
	Direccion   string `json:"Direccion" validate:"required,min=5,max=150"`
	Telefono    string `json:"Telefono" validate:"required,min=7,max=15,numerico"`
	Contrasena  string `json:"Contrasena" validate:"required,min=8,max=100,clave_fuerte"`
	RolID       int    `json:"RolID" validate:"required,gt=0"`
}

type ActualizarUsuarioRequest struct {
	Nombre     *string `json:"Nombre" validate:"omitempty,min=3,max=50,letras_espacios"`
	Correo     *string `json:"Correo" validate:"omitempty,email,max=100"`
	Direccion  *string `json:"Direccion" validate:"omitempty,min=5,max=150"`
	Telefono   *string `json:"Telefono" validate:"omitempty,min=7,max=15,numerico"`
	Contrasena *string `json:"Contrasena" validate:"omitempty,min=8,max=100,clave_fuerte"`
	RolID      *int    `json:"RolID" validate:"omitempty,gt=0"`
}

// UsuarioResponse nunca incluye la contraseña ni su hash.
type UsuarioResponse struct {
	DocumentoID string `json:"DocumentoID"`
	Nombre      string `json:"Nombre"`
	Correo      string `json:"Correo"`
	Direccion   string `json:"Direccion"`
	Telefono    string `json:"Telefono"`
	RolID       int    `json:"RolID"`
	Rol         string `json:"Rol,omitempty"`
}
