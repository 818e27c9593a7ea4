package dto

// Direcciones aceptadas por el ajuste de stock.
const (
	StockIncremento = "incremento"
	StockDecremento = "decremento"
)

type CrearInsumoRequest struct {
	Nombre string `json:"Nombre" validate:"required,min=4,max=50,alfanum_guion"`
	Stock  *int   `json:"Stock" validate:"omitempty,min=0"`
	Estado *bool  `json:"Estado"`
}

type ActualizarInsumoRequest struct {
	Nombre *string `json:"Nombre" validate:"omitempty,min=4,max=50,alfanum_guion"`
	Stock  *int    `json:"Stock" validate:"omitempty,min=0"`
	Estado *bool   `json:"Estado"`
}

// AjustarStockRequest es el cuerpo de PATCH /insumos/:id/stock.
type AjustarStockRequest struct {
	Cantidad int    `json:"cantidad" validate:"required,gt=0"`
	Tipo     string `json:"tipo" validate:"required,oneof=incremento decremento"`
}

// AjusteStockResponse devuelve la foto antes/después del ajuste.
type AjusteStockResponse struct {
	StockAnterior int         `json:"stockAnterior"`
	StockNuevo    int         `json:"stockNuevo"`
	Cambio        int         `json:"cambio"`
	Tipo          string      `json:"tipo"`
	Insumo        interface{} `json:"insumo"`
}
