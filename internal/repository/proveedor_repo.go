package repository

import (
	"context"

	"github.com/Sebastian-Medina185/BD-STAMPLAB/internal/model"

	"gorm.io/gorm"
)

// ProveedorRepository opera sobre proveedores, identificados por Nit
// (la cédula tributaria es la clave natural, no hay serial).
type ProveedorRepository interface {
	List(ctx context.Context) ([]model.Proveedor, error)
	FindByNit(ctx context.Context, nit string) (*model.Proveedor, error)
	Create(ctx context.Context, p *model.Proveedor) error
	Update(ctx context.Context, p *model.Proveedor) error
	Delete(ctx context.Context, nit string) (int64, error)
	CountPedidos(ctx context.Context, nit string) (int64, error)
}

type proveedorRepo struct{ db *gorm.DB }

func NewProveedorRepository(db *gorm.DB) ProveedorRepository { return &proveedorRepo{db: db} }

func (r *proveedorRepo) List(ctx context.Context) ([]model.Proveedor, error) {
	var proveedores []model.Proveedor
	err := r.db.WithContext(ctx).Order("nit").Find(&proveedores).Error
	return proveedores, err
}

func (r *proveedorRepo) FindByNit(ctx context.Context, nit string) (*model.Proveedor, error) {
	var p model.Proveedor
	err := r.db.WithContext(ctx).First(&p, "nit = ?", nit).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *proveedorRepo) Create(ctx context.Context, p *model.Proveedor) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *proveedorRepo) Update(ctx context.Context, p *model.Proveedor) error {
	return r.db.WithContext(ctx).Save(p).Error
}

func (r *proveedorRepo) Delete(ctx context.Context, nit string) (int64, error) {
	res := r.db.WithContext(ctx).Delete(&model.Proveedor{}, "nit = ?", nit)
	return res.RowsAffected, res.Error
}

func (r *proveedorRepo) CountPedidos(ctx context.Context, nit string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Pedido{}).
		Where("nit = ?", nit).Count(&count).Error
	return count, err
}
