package service

import (
	"context"
	"errors"

	"github.com/Sebastian-Medina185/BD-STAMPLAB/internal/apierror"
	"github.com/Sebastian-Medina185/BD-STAMPLAB/internal/model"
	"github.com/Sebastian-Medina185/BD-STAMPLAB/internal/repository"

	"gorm.io/gorm"
)

// DisenoService expone los diseños en solo lectura.
type DisenoService interface {
	Listar(ctx context.Context) ([]model.Diseno, error)
	Obtener(ctx context.Context, id int) (*model.Diseno, error)
	ListarDetalles(ctx context.Context) ([]model.DetalleDiseno, error)
	ObtenerDetalle(ctx context.Context, id int) (*model.DetalleDiseno, error)
}

type disenoService struct {
	repo repository.DisenoRepository
}

func NewDisenoService(repo repository.DisenoRepository) DisenoService {
	return &disenoService{repo: repo}
}

func (s *disenoService) Listar(ctx context.Context) ([]model.Diseno, error) {
	return s.repo.List(ctx)
}

func (s *disenoService) Obtener(ctx context.Context, id int) (*model.Diseno, error) {
	d, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierror.NoEncontrado("El diseño no existe")
		}
		return nil, err
	}
	return d, nil
}

func (s *disenoService) ListarDetalles(ctx context.Context) ([]model.DetalleDiseno, error) {
	return s.repo.ListDetalles(ctx)
}

func (s *disenoService) ObtenerDetalle(ctx context.Context, id int) (*model.DetalleDiseno, error) {
	d, err := s.repo.FindDetalleByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierror.NoEncontrado("El detalle de diseño no existe")
		}
		return nil, err
	}
	return d, nil
}
