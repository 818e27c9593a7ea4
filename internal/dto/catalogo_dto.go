package dto

// ── Colores ───────────────────────────────────────────────────────────────────

type CrearColorRequest struct {
	Nombre string `json:"Nombre" validate:"required,min=3,max=15,letras_espacios"`
}

type ActualizarColorRequest struct {
	Nombre *string `json:"Nombre" validate:"omitempty,min=3,max=15,letras_espacios"`
}

// ── Tallas ────────────────────────────────────────────────────────────────────

type CrearTallaRequest struct {
	Nombre string `json:"Nombre" validate:"required,min=1,max=4,solo_letras"`
}

type ActualizarTallaRequest struct {
	Nombre *string `json:"Nombre" validate:"omitempty,min=1,max=4,solo_letras"`
}

// ── Telas ─────────────────────────────────────────────────────────────────────

type CrearTelaRequest struct {
	Nombre string `json:"Nombre" validate:"required,min=3,max=40,letras_espacios"`
}

type ActualizarTelaRequest struct {
	Nombre *string `json:"Nombre" validate:"omitempty,min=3,max=40,letras_espacios"`
}

// ── Partes ────────────────────────────────────────────────────────────────────

type CrearParteRequest struct {
	Nombre        string  `json:"Nombre" validate:"required,min=3,max=20,letras_espacios"`
	Observaciones *string `json:"Observaciones" validate:"omitempty,max=80"`
}

type ActualizarParteRequest struct {
	Nombre        *string `json:"Nombre" validate:"omitempty,min=3,max=20,letras_espacios"`
	Observaciones *string `json:"Observaciones" validate:"omitempty,max=80"`
}
