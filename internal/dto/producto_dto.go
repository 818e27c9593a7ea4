package dto

import "github.com/shopspring/decimal"

// ── Productos ─────────────────────────────────────────────────────────────────

type CrearProductoRequest struct {
	Nombre      string  `json:"Nombre" validate:"required,min=3,max=50"`
	Descripcion *string `json:"Descripcion" validate:"omitempty,max=255"`
	TelaID      int     `json:"TelaID" validate:"required,gt=0"`
}

type ActualizarProductoRequest struct {
	Nombre      *string `json:"Nombre" validate:"omitempty,min=3,max=50"`
	Descripcion *string `json:"Descripcion" validate:"omitempty,max=255"`
	TelaID      *int    `json:"TelaID" validate:"omitempty,gt=0"`
}

// ── Variantes ─────────────────────────────────────────────────────────────────

type CrearVarianteRequest struct {
	ProductoID int             `json:"ProductoID" validate:"required,gt=0"`
	ColorID    int             `json:"ColorID" validate:"required,gt=0"`
	TallaID    int             `json:"TallaID" validate:"required,gt=0"`
	Stock      *int            `json:"Stock" validate:"omitempty,min=0"`
	Imagen     *string         `json:"Imagen" validate:"omitempty,max=255"`
	Precio     decimal.Decimal `json:"Precio" validate:"required,gt=0"`
	Estado     *bool           `json:"Estado"`
}

type ActualizarVarianteRequest struct {
	ColorID *int             `json:"ColorID" validate:"omitempty,gt=0"`
	TallaID *int             `json:"TallaID" validate:"omitempty,gt=0"`
	Stock   *int             `json:"Stock" validate:"omitempty,min=0"`
	Imagen  *string          `json:"Imagen" validate:"omitempty,max=255"`
	Precio  *decimal.Decimal `json:"Precio" validate:"omitempty,gt=0"`
	Estado  *bool            `json:"Estado"`
}
