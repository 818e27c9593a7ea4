package model

import "time"

// Estados válidos de un pedido a proveedor.
const (
	PedidoPendiente  = "Pendiente"
	PedidoEnProceso  = "En Proceso"
	PedidoCompletado = "Completado"
	PedidoCancelado  = "Cancelado"
)

// EstadosPedido respalda el tag de validación estado_pedido.
var EstadosPedido = []string{PedidoPendiente, PedidoEnProceso, PedidoCompletado, PedidoCancelado}

// Pedido es una orden de compra de insumos a un proveedor. No puede
// eliminarse mientras tenga detalles asociados.
type Pedido struct {
	PedidoID  int       `gorm:"primaryKey;autoIncrement" json:"PedidoID"`
	Nit       string    `gorm:"size:20;not null;index" json:"Nit"`
	Fecha     time.Time `gorm:"not null" json:"Fecha"`
	Estado    string    `gorm:"size:20;not null;default:'Pendiente'" json:"Estado"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Proveedor *Proveedor      `gorm:"foreignKey:Nit;references:Nit" json:"Proveedor,omitempty"`
	Detalles  []DetallePedido `gorm:"foreignKey:PedidoID" json:"Detalles,omitempty"`
}

func (Pedido) TableName() string { return "pedidos" }

// DetallePedido es una línea de pedido: un insumo y su cantidad.
type DetallePedido struct {
	DetallePedidoID int `gorm:"primaryKey;autoIncrement" json:"DetallePedidoID"`
	PedidoID        int `gorm:"not null;index" json:"PedidoID"`
	InsumoID        int `gorm:"not null;index" json:"InsumoID"`
	Cantidad        int `gorm:"not null" json:"Cantidad"`
	CreatedAt       time.Time

	Pedido *Pedido `gorm:"foreignKey:PedidoID" json:"-"`
	Insumo *Insumo `gorm:"foreignKey:InsumoID" json:"Insumo,omitempty"`
}

func (DetallePedido) TableName() string { return "detalle_pedidos" }
