package repository

import (
	"context"

	"github.com/Sebastian-Medina185/BD-STAMPLAB/internal/model"

	"gorm.io/gorm"
)

type UsuarioRepository interface {
	List(ctx context.Context) ([]model.Usuario, error)
	FindByDocumento(ctx context.Context, documentoID string) (*model.Usuario, error)
	FindByCorreo(ctx context.Context, correo string) (*model.Usuario, error)
	Create(ctx context.Context, u *model.Usuario) error
	Update(ctx context.Context, u *model.Usuario) error
	Delete(ctx context.Context, documentoID string) (int64, error)
	CountCotizaciones(ctx context.Context, documentoID string) (int64, error)
}

type usuarioRepo struct{ db *gorm.DB }

func NewUsuarioRepository(db *gorm.DB) UsuarioRepository { return &usuarioRepo{db: db} }

func (r *usuarioRepo) List(ctx context.Context) ([]model.Usuario, error) {
	var usuarios []model.Usuario
	err := r.db.WithContext(ctx).Preload("Rol").Order("documento_id").Find(&usuarios).Error
	return usuarios, err
}

func (r *usuarioRepo) FindByDocumento(ctx context.Context, documentoID string) (*model.Usuario, error) {
	var u model.Usuario
	err := r.db.WithContext(ctx).Preload("Rol").First(&u, "documento_id = ?", documentoID).Error
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *usuarioRepo) FindByCorreo(ctx context.Context, correo string) (*model.Usuario, error) {
	var u model.Usuario
	err := r.db.WithContext(ctx).Preload("Rol").
		Where("lower(correo) = lower(?)", correo).First(&u).Error
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *usuarioRepo) Create(ctx context.Context, u *model.Usuario) error {
	return r.db.WithContext(ctx).Create(u).Error
}

func (r *usuarioRepo) Update(ctx context.Context, u *model.Usuario) error {
	return r.db.WithContext(ctx).Save(u).Error
}

func (r *usuarioRepo) Delete(ctx context.Context, documentoID string) (int64, error) {
	res := r.db.WithContext(ctx).Delete(&model.Usuario{}, "documento_id = ?", documentoID)
	return res.RowsAffected, res.Error
}

func (r *usuarioRepo) CountCotizaciones(ctx context.Context, documentoID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Cotizacion{}).
		Where("documento_id = ?", documentoID).Count(&count).Error
	return count, err
}
