package repository

import (
	"context"

	"github.com/Sebastian-Medina185/BD-STAMPLAB/internal/model"

	"gorm.io/gorm"
)

type TecnicaRepository interface {
	List(ctx context.Context) ([]model.Tecnica, error)
	FindByID(ctx context.Context, id int) (*model.Tecnica, error)
	FindByNombre(ctx context.Context, nombre string) (*model.Tecnica, error)
	Create(ctx context.Context, t *model.Tecnica) error
	Update(ctx context.Context, t *model.Tecnica) error
	Delete(ctx context.Context, id int) (int64, error)
	CountDetallesCotizacion(ctx context.Context, id int) (int64, error)
}

type tecnicaRepo struct{ db *gorm.DB }

func NewTecnicaRepository(db *gorm.DB) TecnicaRepository { return &tecnicaRepo{db: db} }

func (r *tecnicaRepo) List(ctx context.Context) ([]model.Tecnica, error) {
	var tecnicas []model.Tecnica
	err := r.db.WithContext(ctx).Order("tecnica_id").Find(&tecnicas).Error
	return tecnicas, err
}

func (r *tecnicaRepo) FindByID(ctx context.Context, id int) (*model.Tecnica, error) {
	var t model.Tecnica
	err := r.db.WithContext(ctx).First(&t, "tecnica_id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *tecnicaRepo) FindByNombre(ctx context.Context, nombre string) (*model.Tecnica, error) {
	var t model.Tecnica
	err := r.db.WithContext(ctx).Where("lower(nombre) = lower(?)", nombre).First(&t).Error
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *tecnicaRepo) Create(ctx context.Context, t *model.Tecnica) error {
	return r.db.WithContext(ctx).Create(t).Error
}

func (r *tecnicaRepo) Update(ctx context.Context, t *model.Tecnica) error {
	return r.db.WithContext(ctx).Save(t).Error
}

func (r *tecnicaRepo) Delete(ctx context.Context, id int) (int64, error) {
	res := r.db.WithContext(ctx).Delete(&model.Tecnica{}, "tecnica_id = ?", id)
	return res.RowsAffected, res.Error
}

func (r *tecnicaRepo) CountDetallesCotizacion(ctx context.Context, id int) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.DetalleCotizacion{}).
		Where("tecnica_id = ?", id).Count(&count).Error
	return count, err
}
