package repository

import (
	"context"

	"github.com/Sebastian-Medina185/BD-STAMPLAB/internal/model"

	"gorm.io/gorm"
)

// ── Productos ─────────────────────────────────────────────────────────────────

type ProductoRepository interface {
	List(ctx context.Context) ([]model.Producto, error)
	FindByID(ctx context.Context, id int) (*model.Producto, error)
	FindByNombre(ctx context.Context, nombre string) (*model.Producto, error)
	// FindDetalle trae el producto con tela y variantes (color y talla
	// precargados) para la vista de detalle.
	FindDetalle(ctx context.Context, id int) (*model.Producto, error)
	Create(ctx context.Context, p *model.Producto) error
	Update(ctx context.Context, p *model.Producto) error
	Delete(ctx context.Context, id int) (int64, error)
	CountVariantes(ctx context.Context, id int) (int64, error)
}

type productoRepo struct{ db *gorm.DB }

func NewProductoRepository(db *gorm.DB) ProductoRepository { return &productoRepo{db: db} }

func (r *productoRepo) List(ctx context.Context) ([]model.Producto, error) {
	var productos []model.Producto
	err := r.db.WithContext(ctx).Preload("Tela").Order("producto_id").Find(&productos).Error
	return productos, err
}

func (r *productoRepo) FindByID(ctx context.Context, id int) (*model.Producto, error) {
	var p model.Producto
	err := r.db.WithContext(ctx).Preload("Tela").First(&p, "producto_id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *productoRepo) FindByNombre(ctx context.Context, nombre string) (*model.Producto, error) {
	var p model.Producto
	err := r.db.WithContext(ctx).Where("lower(nombre) = lower(?)", nombre).First(&p).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *productoRepo) FindDetalle(ctx context.Context, id int) (*model.Producto, error) {
	var p model.Producto
	err := r.db.WithContext(ctx).
		Preload("Tela").
		Preload("Variantes", func(db *gorm.DB) *gorm.DB { return db.Order("variante_id") }).
		Preload("Variantes.Color").
		Preload("Variantes.Talla").
		First(&p, "producto_id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *productoRepo) Create(ctx context.Context, p *model.Producto) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *productoRepo) Update(ctx context.Context, p *model.Producto) error {
	return r.db.WithContext(ctx).Save(p).Error
}

func (r *productoRepo) Delete(ctx context.Context, id int) (int64, error) {
	res := r.db.WithContext(ctx).Delete(&model.Producto{}, "producto_id = ?", id)
	return res.RowsAffected, res.Error
}

func (r *productoRepo) CountVariantes(ctx context.Context, id int) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.ProductoVariante{}).
		Where("producto_id = ?", id).Count(&count).Error
	return count, err
}

// ── Variantes ─────────────────────────────────────────────────────────────────

type VarianteRepository interface {
	List(ctx context.Context) ([]model.ProductoVariante, error)
	FindByID(ctx context.Context, id int) (*model.ProductoVariante, error)
	FindByCombinacion(ctx context.Context, productoID, colorID, tallaID int) (*model.ProductoVariante, error)
	Create(ctx context.Context, v *model.ProductoVariante) error
	Update(ctx context.Context, v *model.ProductoVariante) error
	Delete(ctx context.Context, id int) (int64, error)
	CountDetallesCotizacion(ctx context.Context, id int) (int64, error)
}

type varianteRepo struct{ db *gorm.DB }

func NewVarianteRepository(db *gorm.DB) VarianteRepository { return &varianteRepo{db: db} }

func (r *varianteRepo) List(ctx context.Context) ([]model.ProductoVariante, error) {
	var variantes []model.ProductoVariante
	err := r.db.WithContext(ctx).
		Preload("Producto").Preload("Color").Preload("Talla").
		Order("variante_id").Find(&variantes).Error
	return variantes, err
}

func (r *varianteRepo) FindByID(ctx context.Context, id int) (*model.ProductoVariante, error) {
	var v model.ProductoVariante
	err := r.db.WithContext(ctx).
		Preload("Producto").Preload("Color").Preload("Talla").
		First(&v, "variante_id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func (r *varianteRepo) FindByCombinacion(ctx context.Context, productoID, colorID, tallaID int) (*model.ProductoVariante, error) {
	var v model.ProductoVariante
	err := r.db.WithContext(ctx).
		Where("producto_id = ? AND color_id = ? AND talla_id = ?", productoID, colorID, tallaID).
		First(&v).Error
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func (r *varianteRepo) Create(ctx context.Context, v *model.ProductoVariante) error {
	return r.db.WithContext(ctx).Create(v).Error
}

func (r *varianteRepo) Update(ctx context.Context, v *model.ProductoVariante) error {
	return r.db.WithContext(ctx).Save(v).Error
}

func (r *varianteRepo) Delete(ctx context.Context, id int) (int64, error) {
	res := r.db.WithContext(ctx).Delete(&model.ProductoVariante{}, "variante_id = ?", id)
	return res.RowsAffected, res.Error
}

func (r *varianteRepo) CountDetallesCotizacion(ctx context.Context, id int) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.DetalleCotizacion{}).
		Where("variante_id = ?", id).Count(&count).Error
	return count, err
}
