package repository

import (
	"context"

	"github.com/Sebastian-Medina185/BD-STAMPLAB/internal/model"

	"gorm.io/gorm"
)

// ── Pedidos ───────────────────────────────────────────────────────────────────

type PedidoRepository interface {
	List(ctx context.Context) ([]model.Pedido, error)
	FindByID(ctx context.Context, id int) (*model.Pedido, error)
	Create(ctx context.Context, p *model.Pedido) error
	Update(ctx context.Context, p *model.Pedido) error
	Delete(ctx context.Context, id int) (int64, error)
	CountDetalles(ctx context.Context, id int) (int64, error)
}

type pedidoRepo struct{ db *gorm.DB }

func NewPedidoRepository(db *gorm.DB) PedidoRepository { return &pedidoRepo{db: db} }

func (r *pedidoRepo) List(ctx context.Context) ([]model.Pedido, error) {
	var pedidos []model.Pedido
	err := r.db.WithContext(ctx).Preload("Proveedor").Order("pedido_id").Find(&pedidos).Error
	return pedidos, err
}

func (r *pedidoRepo) FindByID(ctx context.Context, id int) (*model.Pedido, error) {
	var p model.Pedido
	err := r.db.WithContext(ctx).
		Preload("Proveedor").
		Preload("Detalles", func(db *gorm.DB) *gorm.DB { return db.Order("detalle_pedido_id") }).
		Preload("Detalles.Insumo").
		First(&p, "pedido_id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *pedidoRepo) Create(ctx context.Context, p *model.Pedido) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *pedidoRepo) Update(ctx context.Context, p *model.Pedido) error {
	return r.db.WithContext(ctx).Save(p).Error
}

func (r *pedidoRepo) Delete(ctx context.Context, id int) (int64, error) {
	res := r.db.WithContext(ctx).Delete(&model.Pedido{}, "pedido_id = ?", id)
	return res.RowsAffected, res.Error
}

func (r *pedidoRepo) CountDetalles(ctx context.Context, id int) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.DetallePedido{}).
		Where("pedido_id = ?", id).Count(&count).Error
	return count, err
}

// ── Detalles de pedido ────────────────────────────────────────────────────────

type DetallePedidoRepository interface {
	List(ctx context.Context) ([]model.DetallePedido, error)
	ListByPedido(ctx context.Context, pedidoID int) ([]model.DetallePedido, error)
	FindByID(ctx context.Context, id int) (*model.DetallePedido, error)
	Create(ctx context.Context, d *model.DetallePedido) error
	Delete(ctx context.Context, id int) (int64, error)
}

type detallePedidoRepo struct{ db *gorm.DB }

func NewDetallePedidoRepository(db *gorm.DB) DetallePedidoRepository {
	return &detallePedidoRepo{db: db}
}

func (r *detallePedidoRepo) List(ctx context.Context) ([]model.DetallePedido, error) {
	var detalles []model.DetallePedido
	err := r.db.WithContext(ctx).Preload("Insumo").Order("detalle_pedido_id").Find(&detalles).Error
	return detalles, err
}

func (r *detallePedidoRepo) ListByPedido(ctx context.Context, pedidoID int) ([]model.DetallePedido, error) {
	var detalles []model.DetallePedido
	err := r.db.WithContext(ctx).Preload("Insumo").
		Where("pedido_id = ?", pedidoID).Order("detalle_pedido_id").Find(&detalles).Error
	return detalles, err
}

func (r *detallePedidoRepo) FindByID(ctx context.Context, id int) (*model.DetallePedido, error) {
	var d model.DetallePedido
	err := r.db.WithContext(ctx).Preload("Insumo").First(&d, "detalle_pedido_id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *detallePedidoRepo) Create(ctx context.Context, d *model.DetallePedido) error {
	return r.db.WithContext(ctx).Create(d).Error
}

func (r *detallePedidoRepo) Delete(ctx context.Context, id int) (int64, error) {
	res := r.db.WithContext(ctx).Delete(&model.DetallePedido{}, "detalle_pedido_id = ?", id)
	return res.RowsAffected, res.Error
}
