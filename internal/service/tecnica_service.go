package service

import (
	"context"
	"errors"

	"github.com/Sebastian-Medina185/BD-STAMPLAB/internal/apierror"
	"github.com/Sebastian-Medina185/BD-STAMPLAB/internal/dto"
	"github.com/Sebastian-Medina185/BD-STAMPLAB/internal/model"
	"github.com/Sebastian-Medina185/BD-STAMPLAB/internal/repository"

	"gorm.io/gorm"
)

type TecnicaService interface {
	Listar(ctx context.Context) ([]model.Tecnica, error)
	Obtener(ctx context.Context, id int) (*model.Tecnica, error)
	Crear(ctx context.Context, req dto.CrearTecnicaRequest) (*model.Tecnica, error)
	Actualizar(ctx context.Context, id int, req dto.ActualizarTecnicaRequest) (*model.Tecnica, error)
	Eliminar(ctx context.Context, id int) (int64, error)
}

type tecnicaService struct {
	repo repository.TecnicaRepository
}

func NewTecnicaService(repo repository.TecnicaRepository) TecnicaService {
	return &tecnicaService{repo: repo}
}

func (s *tecnicaService) Listar(ctx context.Context) ([]model.Tecnica, error) {
	return s.repo.List(ctx)
}

func (s *tecnicaService) Obtener(ctx context.Context, id int) (*model.Tecnica, error) {
	t, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierror.NoEncontrado("La técnica no existe")
		}
		return nil, err
	}
	return t, nil
}

func (s *tecnicaService) Crear(ctx context.Context, req dto.CrearTecnicaRequest) (*model.Tecnica, error) {
	if err := validarURLImagen(req.ImagenTecnica); err != nil {
		return nil, err
	}

	existente, err := s.repo.FindByNombre(ctx, req.Nombre)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	if existente != nil {
		return nil, apierror.Conflicto("La técnica ya existe")
	}

	t := &model.Tecnica{
		Nombre:        req.Nombre,
		ImagenTecnica: req.ImagenTecnica,
		Descripcion:   req.Descripcion,
		Estado:        true,
	}
	if req.Estado != nil {
		t.Estado = *req.Estado
	}
	if err := s.repo.Create(ctx, t); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apierror.Conflicto("La técnica ya existe")
		}
		return nil, err
	}
	return t, nil
}

func (s *tecnicaService) Actualizar(ctx context.Context, id int, req dto.ActualizarTecnicaRequest) (*model.Tecnica, error) {
	if req.Nombre == nil && req.ImagenTecnica == nil && req.Descripcion == nil && req.Estado == nil {
		return nil, apierror.Conflicto("No se proporcionaron campos para actualizar")
	}

	t, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierror.NoEncontrado("La técnica no existe")
		}
		return nil, err
	}

	if req.Nombre != nil {
		existente, err := s.repo.FindByNombre(ctx, *req.Nombre)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		if existente != nil && existente.TecnicaID != id {
			return nil, apierror.Conflicto("Ya existe otra técnica con ese nombre")
		}
		t.Nombre = *req.Nombre
	}
	if req.ImagenTecnica != nil {
		if err := validarURLImagen(*req.ImagenTecnica); err != nil {
			return nil, err
		}
		t.ImagenTecnica = *req.ImagenTecnica
	}
	if req.Descripcion != nil {
		t.Descripcion = *req.Descripcion
	}
	if req.Estado != nil {
		t.Estado = *req.Estado
	}

	if err := s.repo.Update(ctx, t); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apierror.Conflicto("Ya existe otra técnica con ese nombre")
		}
		return nil, err
	}
	return t, nil
}

func (s *tecnicaService) Eliminar(ctx context.Context, id int) (int64, error) {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, apierror.NoEncontrado("La técnica no existe")
		}
		return 0, err
	}

	dependientes, err := s.repo.CountDetallesCotizacion(ctx, id)
	if err != nil {
		return 0, err
	}
	if dependientes > 0 {
		return 0, apierror.Conflicto("No se puede eliminar la técnica porque tiene cotizaciones asociadas")
	}

	return s.repo.Delete(ctx, id)
}
