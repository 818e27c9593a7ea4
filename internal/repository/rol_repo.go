package repository

import (
	"context"

	"github.com/Sebastian-Medina185/BD-STAMPLAB/internal/model"

	"gorm.io/gorm"
)

type RolRepository interface {
	List(ctx context.Context) ([]model.Rol, error)
	ListActivos(ctx context.Context) ([]model.Rol, error)
	FindByID(ctx context.Context, id int) (*model.Rol, error)
	FindByNombre(ctx context.Context, nombre string) (*model.Rol, error)
	Create(ctx context.Context, rol *model.Rol) error
	Update(ctx context.Context, rol *model.Rol) error
	Delete(ctx context.Context, id int) (int64, error)
	CountUsuarios(ctx context.Context, id int) (int64, error)
}

type rolRepo struct{ db *gorm.DB }

func NewRolRepository(db *gorm.DB) RolRepository { return &rolRepo{db: db} }

func (r *rolRepo) List(ctx context.Context) ([]model.Rol, error) {
	var roles []model.Rol
	err := r.db.WithContext(ctx).Order("rol_id").Find(&roles).Error
	return roles, err
}

func (r *rolRepo) ListActivos(ctx context.Context) ([]model.Rol, error) {
	var roles []model.Rol
	err := r.db.WithContext(ctx).Where("estado = ?", true).Order("rol_id").Find(&roles).Error
	return roles, err
}

func (r *rolRepo) FindByID(ctx context.Context, id int) (*model.Rol, error) {
	var rol model.Rol
	err := r.db.WithContext(ctx).First(&rol, "rol_id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &rol, nil
}

func (r *rolRepo) FindByNombre(ctx context.Context, nombre string) (*model.Rol, error) {
	var rol model.Rol
	err := r.db.WithContext(ctx).Where("lower(nombre) = lower(?)", nombre).First(&rol).Error
	if err != nil {
		return nil, err
	}
	return &rol, nil
}

func (r *rolRepo) Create(ctx context.Context, rol *model.Rol) error {
	return r.db.WithContext(ctx).Create(rol).Error
}

func (r *rolRepo) Update(ctx context.Context, rol *model.Rol) error {
	return r.db.WithContext(ctx).Save(rol).Error
}

func (r *rolRepo) Delete(ctx context.Context, id int) (int64, error) {
	res := r.db.WithContext(ctx).Delete(&model.Rol{}, "rol_id = ?", id)
	return res.RowsAffected, res.Error
}

func (r *rolRepo) CountUsuarios(ctx context.Context, id int) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Usuario{}).
		Where("rol_id = ?", id).Count(&count).Error
	return count, err
}
