package dto

type CrearPedidoRequest struct {
	Nit    string  `json:"Nit" validate:"required,min=5,max=20,numerico"`
	Fecha  *string `json:"Fecha" validate:"omitempty,datetime=2006-01-02"`
	Estado *string `json:"Estado" validate:"omitempty,estado_pedido"`
}

type ActualizarPedidoRequest struct {
	Nit    *string `json:"Nit" validate:"omitempty,min=5,max=20,numerico"`
	Fecha  *string `json:"Fecha" validate:"omitempty,datetime=2006-01-02"`
	Estado *string `json:"Estado" validate:"omitempty,estado_pedido"`
}

type CrearDetallePedidoRequest struct {
	PedidoID int `json:"PedidoID" validate:"required,gt=0"`
	InsumoID int `json:"InsumoID" validate:"required,gt=0"`
	Cantidad int `json:"Cantidad" validate:"required,gt=0"`
}
