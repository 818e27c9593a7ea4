package dto

type CrearRolRequest struct {
	Nombre      string `json:"Nombre" validate:"required,min=3,max=15,solo_letras"`
	Descripcion string `json:"Descripcion" validate:"required,min=20,max=50"`
	Estado      *bool  `json:"Estado"`
}

type ActualizarRolRequest struct {
	Nombre      *string `json:"Nombre" validate:"omitempty,min=3,max=15,solo_letras"`
	Descripcion *string `json:"Descripcion" validate:"omitempty,min=20,max=50"`
	Estado      *bool   `json:"Estado"`
}

// CambiarEstadoRolRequest es el cuerpo de PATCH /roles/:id/estado.
type CambiarEstadoRolRequest struct {
	Estado *bool `json:"Estado" validate:"required"`
}
