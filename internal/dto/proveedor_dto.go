package dto

type CrearProveedorRequest struct {
	Nit       string `json:"Nit" validate:"required,min=5,max=20,numerico"`
	Nombre    string `json:"Nombre" validate:"required,min=3,max=50"`
	Correo    string `json:"Correo" validate:"required,email,max=100"`
	Telefono  string `json:"Telefono" validate:"required,min=7,max=15,numerico"`
	Direccion string `json:"Direccion" validate:"required,min=5,max=155"`
	Estado    *bool  `json:"Estado"`
}

type ActualizarProveedorRequest struct {
	Nombre    *string `json:"Nombre" validate:"omitempty,min=3,max=50"`
	Correo    *string `json:"Correo" validate:"omitempty,email,max=100"`
	Telefono  *string `json:"Telefono" validate:"omitempty,min=7,max=15,numerico"`
	Direccion *string `json:"Direccion" validate:"omitempty,min=5,max=155"`
	Estado    *bool   `json:"Estado"`
}
