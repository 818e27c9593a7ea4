package repository

import (
	"context"

	"github.com/Sebastian-Medina185/BD-STAMPLAB/internal/model"

	"gorm.io/gorm"
)

// Repositorios de los catálogos simples (colores, tallas, telas, partes).
// Todos comparten la misma forma: listado ordenado por PK, búsqueda por
// nombre case-insensitive para los chequeos de unicidad, y un conteo de
// filas dependientes que bloquea el borrado.

// ── Colores ───────────────────────────────────────────────────────────────────

type ColorRepository interface {
	List(ctx context.Context) ([]model.Color, error)
	FindByID(ctx context.Context, id int) (*model.Color, error)
	FindByNombre(ctx context.Context, nombre string) (*model.Color, error)
	Create(ctx context.Context, c *model.Color) error
	Update(ctx context.Context, c *model.Color) error
	Delete(ctx context.Context, id int) (int64, error)
	CountVariantes(ctx context.Context, id int) (int64, error)
}

type colorRepo struct{ db *gorm.DB }

func NewColorRepository(db *gorm.DB) ColorRepository { return &colorRepo{db: db} }

func (r *colorRepo) List(ctx context.Context) ([]model.Color, error) {
	var colores []model.Color
	err := r.db.WithContext(ctx).Order("color_id").Find(&colores).Error
	return colores, err
}

func (r *colorRepo) FindByID(ctx context.Context, id int) (*model.Color, error) {
	var c model.Color
	err := r.db.WithContext(ctx).First(&c, "color_id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *colorRepo) FindByNombre(ctx context.Context, nombre string) (*model.Color, error) {
	var c model.Color
	err := r.db.WithContext(ctx).Where("lower(nombre) = lower(?)", nombre).First(&c).Error
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *colorRepo) Create(ctx context.Context, c *model.Color) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *colorRepo) Update(ctx context.Context, c *model.Color) error {
	return r.db.WithContext(ctx).Save(c).Error
}

func (r *colorRepo) Delete(ctx context.Context, id int) (int64, error) {
	res := r.db.WithContext(ctx).Delete(&model.Color{}, "color_id = ?", id)
	return res.RowsAffected, res.Error
}

func (r *colorRepo) CountVariantes(ctx context.Context, id int) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.ProductoVariante{}).
		Where("color_id = ?", id).Count(&count).Error
	return count, err
}

// ── Tallas ────────────────────────────────────────────────────────────────────

type TallaRepository interface {
	List(ctx context.Context) ([]model.Talla, error)
	FindByID(ctx context.Context, id int) (*model.Talla, error)
	FindByNombre(ctx context.Context, nombre string) (*model.Talla, error)
	Create(ctx context.Context, t *model.Talla) error
	Update(ctx context.Context, t *model.Talla) error
	Delete(ctx context.Context, id int) (int64, error)
	CountVariantes(ctx context.Context, id int) (int64, error)
}

type tallaRepo struct{ db *gorm.DB }

func NewTallaRepository(db *gorm.DB) TallaRepository { return &tallaRepo{db: db} }

func (r *tallaRepo) List(ctx context.Context) ([]model.Talla, error) {
	var tallas []model.Talla
	err := r.db.WithContext(ctx).Order("talla_id").Find(&tallas).Error
	return tallas, err
}

func (r *tallaRepo) FindByID(ctx context.Context, id int) (*model.Talla, error) {
	var t model.Talla
	err := r.db.WithContext(ctx).First(&t, "talla_id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *tallaRepo) FindByNombre(ctx context.Context, nombre string) (*model.Talla, error) {
	var t model.Talla
	err := r.db.WithContext(ctx).Where("lower(nombre) = lower(?)", nombre).First(&t).Error
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *tallaRepo) Create(ctx context.Context, t *model.Talla) error {
	return r.db.WithContext(ctx).Create(t).Error
}

func (r *tallaRepo) Update(ctx context.Context, t *model.Talla) error {
	return r.db.WithContext(ctx).Save(t).Error
}

func (r *tallaRepo) Delete(ctx context.Context, id int) (int64, error) {
	res := r.db.WithContext(ctx).Delete(&model.Talla{}, "talla_id = ?", id)
	return res.RowsAffected, res.Error
}

func (r *tallaRepo) CountVariantes(ctx context.Context, id int) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.ProductoVariante{}).
		Where("talla_id = ?", id).Count(&count).Error
	return count, err
}

// ── Telas ─────────────────────────────────────────────────────────────────────

type TelaRepository interface {
	List(ctx context.Context) ([]model.Tela, error)
	FindByID(ctx context.Context, id int) (*model.Tela, error)
	FindByNombre(ctx context.Context, nombre string) (*model.Tela, error)
	Create(ctx context.Context, t *model.Tela) error
	Update(ctx context.Context, t *model.Tela) error
	Delete(ctx context.Context, id int) (int64, error)
	CountProductos(ctx context.Context, id int) (int64, error)
}

type telaRepo struct{ db *gorm.DB }

func NewTelaRepository(db *gorm.DB) TelaRepository { return &telaRepo{db: db} }

func (r *telaRepo) List(ctx context.Context) ([]model.Tela, error) {
	var telas []model.Tela
	err := r.db.WithContext(ctx).Order("tela_id").Find(&telas).Error
	return telas, err
}

func (r *telaRepo) FindByID(ctx context.Context, id int) (*model.Tela, error) {
	var t model.Tela
	err := r.db.WithContext(ctx).First(&t, "tela_id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *telaRepo) FindByNombre(ctx context.Context, nombre string) (*model.Tela, error) {
	var t model.Tela
	err := r.db.WithContext(ctx).Where("lower(nombre) = lower(?)", nombre).First(&t).Error
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *telaRepo) Create(ctx context.Context, t *model.Tela) error {
	return r.db.WithContext(ctx).Create(t).Error
}

func (r *telaRepo) Update(ctx context.Context, t *model.Tela) error {
	return r.db.WithContext(ctx).Save(t).Error
}

func (r *telaRepo) Delete(ctx context.Context, id int) (int64, error) {
	res := r.db.WithContext(ctx).Delete(&model.Tela{}, "tela_id = ?", id)
	return res.RowsAffected, res.Error
}

func (r *telaRepo) CountProductos(ctx context.Context, id int) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Producto{}).
		Where("tela_id = ?", id).Count(&count).Error
	return count, err
}

// ── Partes ────────────────────────────────────────────────────────────────────

type ParteRepository interface {
	List(ctx context.Context) ([]model.Parte, error)
	FindByID(ctx context.Context, id int) (*model.Parte, error)
	Create(ctx context.Context, p *model.Parte) error
	Update(ctx context.Context, p *model.Parte) error
	Delete(ctx context.Context, id int) (int64, error)
	CountDetallesDiseno(ctx context.Context, id int) (int64, error)
}

type parteRepo struct{ db *gorm.DB }

func NewParteRepository(db *gorm.DB) ParteRepository { return &parteRepo{db: db} }

func (r *parteRepo) List(ctx context.Context) ([]model.Parte, error) {
	var partes []model.Parte
	err := r.db.WithContext(ctx).Order("parte_id").Find(&partes).Error
	return partes, err
}

func (r *parteRepo) FindByID(ctx context.Context, id int) (*model.Parte, error) {
	var p model.Parte
	err := r.db.WithContext(ctx).First(&p, "parte_id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *parteRepo) Create(ctx context.Context, p *model.Parte) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *parteRepo) Update(ctx context.Context, p *model.Parte) error {
	return r.db.WithContext(ctx).Save(p).Error
}

func (r *parteRepo) Delete(ctx context.Context, id int) (int64, error) {
	res := r.db.WithContext(ctx).Delete(&model.Parte{}, "parte_id = ?", id)
	return res.RowsAffected, res.Error
}

func (r *parteRepo) CountDetallesDiseno(ctx context.Context, id int) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.DetalleDiseno{}).
		Where("parte_id = ?", id).Count(&count).Error
	return count, err
}
