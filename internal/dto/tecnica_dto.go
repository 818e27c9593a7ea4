package dto

type CrearTecnicaRequest struct {
	Nombre        string `json:"Nombre" validate:"required,min=4,max=20,letras_espacios"`
	ImagenTecnica string `json:"ImagenTecnica" validate:"required,max=255"`
	Descripcion   string `json:"Descripcion" validate:"required,min=10,max=255"`
	Estado        *bool  `json:"Estado"`
}

type ActualizarTecnicaRequest struct {
	Nombre        *string `json:"Nombre" validate:"omitempty,min=4,max=20,letras_espacios"`
	ImagenTecnica *string `json:"ImagenTecnica" validate:"omitempty,max=255"`
	Descripcion   *string `json:"Descripcion" validate:"omitempty,min=10,max=255"`
	Estado        *bool   `json:"Estado"`
}
