package repository

import (
	"context"

	"github.com/Sebastian-Medina185/BD-STAMPLAB/internal/model"

	"gorm.io/gorm"
)

// DisenoRepository es de solo lectura: los diseños se cargan desde la
// herramienta de composición, la API únicamente los consulta.
type DisenoRepository interface {
	List(ctx context.Context) ([]model.Diseno, error)
	FindByID(ctx context.Context, id int) (*model.Diseno, error)
	ListDetalles(ctx context.Context) ([]model.DetalleDiseno, error)
	FindDetalleByID(ctx context.Context, id int) (*model.DetalleDiseno, error)
}

type disenoRepo struct{ db *gorm.DB }

func NewDisenoRepository(db *gorm.DB) DisenoRepository { return &disenoRepo{db: db} }

func (r *disenoRepo) List(ctx context.Context) ([]model.Diseno, error) {
	var disenos []model.Diseno
	err := r.db.WithContext(ctx).Order("diseno_id").Find(&disenos).Error
	return disenos, err
}

func (r *disenoRepo) FindByID(ctx context.Context, id int) (*model.Diseno, error) {
	var d model.Diseno
	err := r.db.WithContext(ctx).
		Preload("Detalles", func(db *gorm.DB) *gorm.DB { return db.Order("detalle_diseno_id") }).
		Preload("Detalles.Parte").
		First(&d, "diseno_id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *disenoRepo) ListDetalles(ctx context.Context) ([]model.DetalleDiseno, error) {
	var detalles []model.DetalleDiseno
	err := r.db.WithContext(ctx).Preload("Parte").
		Order("detalle_diseno_id").Find(&detalles).Error
	return detalles, err
}

func (r *disenoRepo) FindDetalleByID(ctx context.Context, id int) (*model.DetalleDiseno, error) {
	var d model.DetalleDiseno
	err := r.db.WithContext(ctx).Preload("Parte").
		First(&d, "detalle_diseno_id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &d, nil
}
