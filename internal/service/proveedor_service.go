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

type ProveedorService interface {
	Listar(ctx context.Context) ([]model.Proveedor, error)
	Obtener(ctx context.Context, nit string) (*model.Proveedor, error)
	Crear(ctx context.Context, req dto.CrearProveedorRequest) (*model.Proveedor, error)
	Actualizar(ctx context.Context, nit string, req dto.ActualizarProveedorRequest) (*model.Proveedor, error)
	Eliminar(ctx context.Context, nit string) (int64, error)
}

type proveedorService struct {
	repo repository.ProveedorRepository
}

func NewProveedorService(repo repository.ProveedorRepository) ProveedorService {
	return &proveedorService{repo: repo}
}

func (s *proveedorService) Listar(ctx context.Context) ([]model.Proveedor, error) {
	return s.repo.List(ctx)
}

func (s *proveedorService) Obtener(ctx context.Context, nit string) (*model.Proveedor, error) {
	p, err := s.repo.FindByNit(ctx, nit)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierror.NoEncontrado("El proveedor no existe")
		}
		return nil, err
	}
	return p, nil
}

func (s *proveedorService) Crear(ctx context.Context, req dto.CrearProveedorRequest) (*model.Proveedor, error) {
	existente, err := s.repo.FindByNit(ctx, req.Nit)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	if existente != nil {
		return nil, apierror.Conflicto("Ya existe un proveedor con ese NIT")
	}

	p := &model.Proveedor{
		Nit:       req.Nit,
		Nombre:    req.Nombre,
		Correo:    req.Correo,
		Telefono:  req.Telefono,
		Direccion: req.Direccion,
		Estado:    true,
	}
	if req.Estado != nil {
		p.Estado = *req.Estado
	}
	if err := s.repo.Create(ctx, p); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apierror.Conflicto("Ya existe un proveedor con ese NIT")
		}
		return nil, err
	}
	return p, nil
}

func (s *proveedorService) Actualizar(ctx context.Context, nit string, req dto.ActualizarProveedorRequest) (*model.Proveedor, error) {
	if req.Nombre == nil && req.Correo == nil && req.Telefono == nil && req.Direccion == nil && req.Estado == nil {
		return nil, apierror.Conflicto("No se proporcionaron campos para actualizar")
	}

	p, err := s.repo.FindByNit(ctx, nit)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierror.NoEncontrado("El proveedor no existe")
		}
		return nil, err
	}

	if req.Nombre != nil {
		p.Nombre = *req.Nombre
	}
	if req.Correo != nil {
		p.Correo = *req.Correo
	}
	if req.Telefono != nil {
		p.Telefono = *req.Telefono
	}
	if req.Direccion != nil {
		p.Direccion = *req.Direccion
	}
	if req.Estado != nil {
		p.Estado = *req.Estado
	}

	if err := s.repo.Update(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *proveedorService) Eliminar(ctx context.Context, nit string) (int64, error) {
	if _, err := s.repo.FindByNit(ctx, nit); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, apierror.NoEncontrado("El proveedor no existe")
		}
		return 0, err
	}

	dependientes, err := s.repo.CountPedidos(ctx, nit)
	if err != nil {
		return 0, err
	}
	if dependientes > 0 {
		return 0, apierror.Conflicto("No se puede eliminar el proveedor porque tiene pedidos asociados")
	}

	return s.repo.Delete(ctx, nit)
}
