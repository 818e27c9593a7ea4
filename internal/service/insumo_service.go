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

type InsumoService interface {
	Listar(ctx context.Context) ([]model.Insumo, error)
	ListarActivos(ctx context.Context) ([]model.Insumo, error)
	Obtener(ctx context.Context, id int) (*model.Insumo, error)
	Crear(ctx context.Context, req dto.CrearInsumoRequest) (*model.Insumo, error)
	Actualizar(ctx context.Context, id int, req dto.ActualizarInsumoRequest) (*model.Insumo, error)
	Eliminar(ctx context.Context, id int) (int64, error)
	AjustarStock(ctx context.Context, id int, req dto.AjustarStockRequest) (*dto.AjusteStockResponse, error)
}

type insumoService struct {
	repo repository.InsumoRepository
}

func NewInsumoService(repo repository.InsumoRepository) InsumoService {
	return &insumoService{repo: repo}
}

func (s *insumoService) Listar(ctx context.Context) ([]model.Insumo, error) {
	return s.repo.List(ctx)
}

func (s *insumoService) ListarActivos(ctx context.Context) ([]model.Insumo, error) {
	return s.repo.ListActivos(ctx)
}

func (s *insumoService) Obtener(ctx context.Context, id int) (*model.Insumo, error) {
	i, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierror.NoEncontrado("El insumo no existe")
		}
		return nil, err
	}
	return i, nil
}

func (s *insumoService) Crear(ctx context.Context, req dto.CrearInsumoRequest) (*model.Insumo, error) {
	if err := validarNombreInsumo(req.Nombre); err != nil {
		return nil, err
	}

	existente, err := s.repo.FindByNombre(ctx, req.Nombre)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	if existente != nil {
		return nil, apierror.Conflicto("El insumo ya existe")
	}

	i := &model.Insumo{Nombre: req.Nombre, Estado: true}
	if req.Stock != nil {
		i.Stock = *req.Stock
	}
	if req.Estado != nil {
		i.Estado = *req.Estado
	}
	// Un insumo que nace sin stock nace inactivo.
	if i.Stock == 0 {
		i.Estado = false
	}
	if err := s.repo.Create(ctx, i); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apierror.Conflicto("El insumo ya existe")
		}
		return nil, err
	}
	return i, nil
}

func (s *insumoService) Actualizar(ctx context.Context, id int, req dto.ActualizarInsumoRequest) (*model.Insumo, error) {
	if req.Nombre == nil && req.Stock == nil && req.Estado == nil {
		return nil, apierror.Conflicto("No se proporcionaron campos para actualizar")
	}

	i, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierror.NoEncontrado("El insumo no existe")
		}
		return nil, err
	}

	if req.Nombre != nil {
		if err := validarNombreInsumo(*req.Nombre); err != nil {
			return nil, err
		}
		existente, err := s.repo.FindByNombre(ctx, *req.Nombre)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		if existente != nil && existente.InsumoID != id {
			return nil, apierror.Conflicto("Ya existe otro insumo con ese nombre")
		}
		i.Nombre = *req.Nombre
	}
	if req.Stock != nil {
		i.Stock = *req.Stock
	}
	if req.Estado != nil {
		i.Estado = *req.Estado
	}
	if i.Stock == 0 {
		i.Estado = false
	}

	if err := s.repo.Update(ctx, i); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apierror.Conflicto("Ya existe otro insumo con ese nombre")
		}
		return nil, err
	}
	return i, nil
}

func (s *insumoService) Eliminar(ctx context.Context, id int) (int64, error) {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, apierror.NoEncontrado("El insumo no existe")
		}
		return 0, err
	}

	dependientes, err := s.repo.CountDetallesPedido(ctx, id)
	if err != nil {
		return 0, err
	}
	if dependientes > 0 {
		return 0, apierror.Conflicto("No se puede eliminar el insumo porque tiene pedidos asociados")
	}

	return s.repo.Delete(ctx, id)
}

func (s *insumoService) AjustarStock(ctx context.Context, id int, req dto.AjustarStockRequest) (*dto.AjusteStockResponse, error) {
	delta := req.Cantidad
	if req.Tipo == dto.StockDecremento {
		delta = -delta
	}

	ajuste, err := s.repo.AjustarStock(ctx, id, delta)
	if err != nil {
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			return nil, apierror.NoEncontrado("El insumo no existe")
		case errors.Is(err, repository.ErrStockInsuficiente):
			return nil, apierror.Conflicto("No hay suficiente stock disponible")
		default:
			return nil, err
		}
	}

	return &dto.AjusteStockResponse{
		StockAnterior: ajuste.StockAnterior,
		StockNuevo:    ajuste.StockNuevo,
		Cambio:        delta,
		Tipo:          req.Tipo,
		Insumo:        ajuste.Insumo,
	}, nil
}
