package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados válidos de una cotización.
const (
	CotizacionPendiente = "Pendiente"
	CotizacionAprobada  = "Aprobada"
	CotizacionRechazada = "Rechazada"
)

// EstadosCotizacion respalda el tag de validación estado_cotizacion.
var EstadosCotizacion = []string{CotizacionPendiente, CotizacionAprobada, CotizacionRechazada}

// Cotizacion es el presupuesto que se entrega a un cliente. ValorTotal se
// recalcula dentro de la misma transacción cada vez que se agrega un detalle.
type Cotizacion struct {
	CotizacionID int             `gorm:"primaryKey;autoIncrement" json:"CotizacionID"`
	DocumentoID  string          `gorm:"size:15;not null;index" json:"DocumentoID"`
	Fecha        time.Time       `gorm:"not null" json:"Fecha"`
	ValorTotal   decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0" json:"ValorTotal"`
	Estado       string          `gorm:"size:20;not null;default:'Pendiente'" json:"Estado"`
	CreatedAt    time.Time
	UpdatedAt    time.Time

	Usuario  *Usuario             `gorm:"foreignKey:DocumentoID;references:DocumentoID" json:"Usuario,omitempty"`
	Detalles []DetalleCotizacion  `gorm:"foreignKey:CotizacionID" json:"Detalles,omitempty"`
}

func (Cotizacion) TableName() string { return "cotizaciones" }

// DetalleCotizacion es una línea de cotización: variante + técnica de
// estampado, con subtotal = precio de la variante × cantidad.
type DetalleCotizacion struct {
	DetalleID           int             `gorm:"primaryKey;autoIncrement" json:"DetalleID"`
	CotizacionID        int             `gorm:"not null;index" json:"CotizacionID"`
	VarianteID          int             `gorm:"not null;index" json:"VarianteID"`
	TecnicaID           int             `gorm:"not null;index" json:"TecnicaID"`
	Cantidad            int             `gorm:"not null" json:"Cantidad"`
	PrendaProporcionada bool            `gorm:"not null;default:false" json:"PrendaProporcionada"`
	Descripcion         *string         `gorm:"size:255" json:"Descripcion"`
	Subtotal            decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"Subtotal"`
	CreatedAt           time.Time

	Cotizacion *Cotizacion       `gorm:"foreignKey:CotizacionID" json:"-"`
	Variante   *ProductoVariante `gorm:"foreignKey:VarianteID" json:"Variante,omitempty"`
	Tecnica    *Tecnica          `gorm:"foreignKey:TecnicaID" json:"Tecnica,omitempty"`
}

func (DetalleCotizacion) TableName() string { return "detalle_cotizaciones" }
