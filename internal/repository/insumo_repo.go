package repository

import (
	"context"
	"errors"

	"github.com/Sebastian-Medina185/BD-STAMPLAB/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ErrStockInsuficiente se devuelve cuando un decremento dejaría el stock
// en negativo. La fila ya está bloqueada cuando se evalúa, así que dos
// decrementos concurrentes nunca pueden pasar ambos.
var ErrStockInsuficiente = errors.New("stock insuficiente")

// AjusteStock es el resultado de un ajuste atómico de inventario.
type AjusteStock struct {
	StockAnterior int
	StockNuevo    int
	Insumo        *model.Insumo
}

type InsumoRepository interface {
	List(ctx context.Context) ([]model.Insumo, error)
	ListActivos(ctx context.Context) ([]model.Insumo, error)
	FindByID(ctx context.Context, id int) (*model.Insumo, error)
	FindByNombre(ctx context.Context, nombre string) (*model.Insumo, error)
	Create(ctx context.Context, i *model.Insumo) error
	Update(ctx context.Context, i *model.Insumo) error
	Delete(ctx context.Context, id int) (int64, error)
	CountDetallesPedido(ctx context.Context, id int) (int64, error)
	AjustarStock(ctx context.Context, id, delta int) (*AjusteStock, error)
}

type insumoRepo struct{ db *gorm.DB }

func NewInsumoRepository(db *gorm.DB) InsumoRepository { return &insumoRepo{db: db} }

func (r *insumoRepo) List(ctx context.Context) ([]model.Insumo, error) {
	var insumos []model.Insumo
	err := r.db.WithContext(ctx).Order("insumo_id").Find(&insumos).Error
	return insumos, err
}

func (r *insumoRepo) ListActivos(ctx context.Context) ([]model.Insumo, error) {
	var insumos []model.Insumo
	err := r.db.WithContext(ctx).Where("estado = ?", true).Order("insumo_id").Find(&insumos).Error
	return insumos, err
}

func (r *insumoRepo) FindByID(ctx context.Context, id int) (*model.Insumo, error) {
	var i model.Insumo
	err := r.db.WithContext(ctx).First(&i, "insumo_id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &i, nil
}

func (r *insumoRepo) FindByNombre(ctx context.Context, nombre string) (*model.Insumo, error) {
	var i model.Insumo
	err := r.db.WithContext(ctx).Where("lower(nombre) = lower(?)", nombre).First(&i).Error
	if err != nil {
		return nil, err
	}
	return &i, nil
}

func (r *insumoRepo) Create(ctx context.Context, i *model.Insumo) error {
	return r.db.WithContext(ctx).Create(i).Error
}

func (r *insumoRepo) Update(ctx context.Context, i *model.Insumo) error {
	return r.db.WithContext(ctx).Save(i).Error
}

func (r *insumoRepo) Delete(ctx context.Context, id int) (int64, error) {
	res := r.db.WithContext(ctx).Delete(&model.Insumo{}, "insumo_id = ?", id)
	return res.RowsAffected, res.Error
}

func (r *insumoRepo) CountDetallesPedido(ctx context.Context, id int) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.DetallePedido{}).
		Where("insumo_id = ?", id).Count(&count).Error
	return count, err
}

// AjustarStock aplica un delta (positivo o negativo) al stock de un insumo
// dentro de una transacción con la fila bloqueada (SELECT ... FOR UPDATE).
// Si el stock queda en cero el insumo se desactiva; un incremento posterior
// NO lo reactiva solo, eso es decisión explícita vía PUT.
func (r *insumoRepo) AjustarStock(ctx context.Context, id, delta int) (*AjusteStock, error) {
	var resultado AjusteStock
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var ins model.Insumo
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&ins, "insumo_id = ?", id).Error; err != nil {
			return err
		}

		nuevo := ins.Stock + delta
		if nuevo < 0 {
			return ErrStockInsuficiente
		}

		resultado.StockAnterior = ins.Stock
		ins.Stock = nuevo
		if nuevo == 0 {
			ins.Estado = false
		}
		if err := tx.Save(&ins).Error; err != nil {
			return err
		}

		resultado.StockNuevo = nuevo
		resultado.Insumo = &ins
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &resultado, nil
}
