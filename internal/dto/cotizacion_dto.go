package dto

type CrearCotizacionRequest struct {
	DocumentoID string  `json:"DocumentoID" validate:"required,min=5,max=15,numerico"`
	Fecha       *string `json:"Fecha" validate:"omitempty,datetime=2006-01-02"`
	Estado      *string `json:"Estado" validate:"omitempty,estado_cotizacion"`
}

type ActualizarCotizacionRequest struct {
	Fecha  *string `json:"Fecha" validate:"omitempty,datetime=2006-01-02"`
	Estado *string `json:"Estado" validate:"omitempty,estado_cotizacion"`
}

type CrearDetalleCotizacionRequest struct {
	CotizacionID        int     `json:"CotizacionID" validate:"required,gt=0"`
	VarianteID          int     `json:"VarianteID" validate:"required,gt=0"`
	TecnicaID           int     `json:"TecnicaID" validate:"required,gt=0"`
	Cantidad            int     `json:"Cantidad" validate:"required,gt=0"`
	PrendaProporcionada bool    `json:"PrendaProporcionada"`
	Descripcion         *string `json:"Descripcion" validate:"omitempty,max=255"`
}

// EnviarCotizacionRequest permite sobreescribir el destinatario; por defecto
// se usa el correo del usuario de la cotización.
type EnviarCotizacionRequest struct {
	Correo *string `json:"Correo" validate:"omitempty,email"`
}
