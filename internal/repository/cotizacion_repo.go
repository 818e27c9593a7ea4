package repository

import (
	"context"

	"github.com/Sebastian-Medina185/BD-STAMPLAB/internal/model"

	"gorm.io/gorm"
)

// ── Cotizaciones ──────────────────────────────────────────────────────────────

type CotizacionRepository interface {
	List(ctx context.Context) ([]model.Cotizacion, error)
	FindByID(ctx context.Context, id int) (*model.Cotizacion, error)
	// FindCompleta trae la cotización con usuario y detalles completamente
	// precargados (variante con producto/color/talla, técnica). Es la vista
	// que consumen el PDF y el correo.
	FindCompleta(ctx context.Context, id int) (*model.Cotizacion, error)
	Create(ctx context.Context, c *model.Cotizacion) error
	Update(ctx context.Context, c *model.Cotizacion) error
	Delete(ctx context.Context, id int) (int64, error)
	CountDetalles(ctx context.Context, id int) (int64, error)
}

type cotizacionRepo struct{ db *gorm.DB }

func NewCotizacionRepository(db *gorm.DB) CotizacionRepository { return &cotizacionRepo{db: db} }

func (r *cotizacionRepo) List(ctx context.Context) ([]model.Cotizacion, error) {
	var cotizaciones []model.Cotizacion
	err := r.db.WithContext(ctx).Preload("Usuario").Order("cotizacion_id").Find(&cotizaciones).Error
	return cotizaciones, err
}

func (r *cotizacionRepo) FindByID(ctx context.Context, id int) (*model.Cotizacion, error) {
	var c model.Cotizacion
	err := r.db.WithContext(ctx).Preload("Usuario").First(&c, "cotizacion_id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *cotizacionRepo) FindCompleta(ctx context.Context, id int) (*model.Cotizacion, error) {
	var c model.Cotizacion
	err := r.db.WithContext(ctx).
		Preload("Usuario").
		Preload("Detalles", func(db *gorm.DB) *gorm.DB { return db.Order("detalle_id") }).
		Preload("Detalles.Variante.Producto").
		Preload("Detalles.Variante.Color").
		Preload("Detalles.Variante.Talla").
		Preload("Detalles.Tecnica").
		First(&c, "cotizacion_id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *cotizacionRepo) Create(ctx context.Context, c *model.Cotizacion) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *cotizacionRepo) Update(ctx context.Context, c *model.Cotizacion) error {
	return r.db.WithContext(ctx).Save(c).Error
}

func (r *cotizacionRepo) Delete(ctx context.Context, id int) (int64, error) {
	res := r.db.WithContext(ctx).Delete(&model.Cotizacion{}, "cotizacion_id = ?", id)
	return res.RowsAffected, res.Error
}

func (r *cotizacionRepo) CountDetalles(ctx context.Context, id int) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.DetalleCotizacion{}).
		Where("cotizacion_id = ?", id).Count(&count).Error
	return count, err
}

// ── Detalles de cotización ────────────────────────────────────────────────────

type DetalleCotizacionRepository interface {
	List(ctx context.Context) ([]model.DetalleCotizacion, error)
	ListByCotizacion(ctx context.Context, cotizacionID int) ([]model.DetalleCotizacion, error)
	FindByID(ctx context.Context, id int) (*model.DetalleCotizacion, error)
	// CreateConTotal inserta el detalle y recalcula ValorTotal de la
	// cotización en la misma transacción. O se ven ambos cambios o ninguno.
	CreateConTotal(ctx context.Context, d *model.DetalleCotizacion) error
	// DeleteConTotal borra el detalle y recalcula el total igual que el alta.
	DeleteConTotal(ctx context.Context, id int) (int64, error)
}

type detalleCotizacionRepo struct{ db *gorm.DB }

func NewDetalleCotizacionRepository(db *gorm.DB) DetalleCotizacionRepository {
	return &detalleCotizacionRepo{db: db}
}

func (r *detalleCotizacionRepo) List(ctx context.Context) ([]model.DetalleCotizacion, error) {
	var detalles []model.DetalleCotizacion
	err := r.db.WithContext(ctx).
		Preload("Variante").Preload("Tecnica").
		Order("detalle_id").Find(&detalles).Error
	return detalles, err
}

func (r *detalleCotizacionRepo) ListByCotizacion(ctx context.Context, cotizacionID int) ([]model.DetalleCotizacion, error) {
	var detalles []model.DetalleCotizacion
	err := r.db.WithContext(ctx).
		Preload("Variante").Preload("Tecnica").
		Where("cotizacion_id = ?", cotizacionID).
		Order("detalle_id").Find(&detalles).Error
	return detalles, err
}

func (r *detalleCotizacionRepo) FindByID(ctx context.Context, id int) (*model.DetalleCotizacion, error) {
	var d model.DetalleCotizacion
	err := r.db.WithContext(ctx).
		Preload("Variante").Preload("Tecnica").
		First(&d, "detalle_id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *detalleCotizacionRepo) CreateConTotal(ctx context.Context, d *model.DetalleCotizacion) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(d).Error; err != nil {
			return err
		}
		return recalcularTotal(tx, d.CotizacionID)
	})
}

func (r *detalleCotizacionRepo) DeleteConTotal(ctx context.Context, id int) (int64, error) {
	var filas int64
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var d model.DetalleCotizacion
		if err := tx.First(&d, "detalle_id = ?", id).Error; err != nil {
			return err
		}
		res := tx.Delete(&model.DetalleCotizacion{}, "detalle_id = ?", id)
		if res.Error != nil {
			return res.Error
		}
		filas = res.RowsAffected
		return recalcularTotal(tx, d.CotizacionID)
	})
	if err != nil {
		return 0, err
	}
	return filas, nil
}

// recalcularTotal suma los subtotales vigentes y los persiste en la cabecera.
// COALESCE cubre la cotización que se queda sin detalles.
func recalcularTotal(tx *gorm.DB, cotizacionID int) error {
	return tx.Exec(`
		UPDATE cotizaciones
		SET valor_total = (
			SELECT COALESCE(SUM(subtotal), 0)
			FROM detalle_cotizaciones
			WHERE cotizacion_id = ?
		)
		WHERE cotizacion_id = ?`, cotizacionID, cotizacionID).Error
}
