package service

import (
	"context"
	"errors"
	"time"

	"github.com/Sebastian-Medina185/BD-STAMPLAB/internal/apierror"
	"github.com/Sebastian-Medina185/BD-STAMPLAB/internal/dto"
	"github.com/Sebastian-Medina185/BD-STAMPLAB/internal/model"
	"github.com/Sebastian-Medina185/BD-STAMPLAB/internal/repository"

	"gorm.io/gorm"
)

// parseFecha interpreta la fecha "YYYY-MM-DD" del request; sin fecha, hoy.
// El formato ya pasó por el validador, un error acá es un bug del DTO.
func parseFecha(valor *string) time.Time {
	if valor == nil {
		return time.Now()
	}
	f, err := time.Parse("2006-01-02", *valor)
	if err != nil {
		return time.Now()
	}
	return f
}

// ── Pedidos ───────────────────────────────────────────────────────────────────

type PedidoService interface {
	Listar(ctx context.Context) ([]model.Pedido, error)
	Obtener(ctx context.Context, id int) (*model.Pedido, error)
	Crear(ctx context.Context, req dto.CrearPedidoRequest) (*model.Pedido, error)
	Actualizar(ctx context.Context, id int, req dto.ActualizarPedidoRequest) (*model.Pedido, error)
	Eliminar(ctx context.Context, id int) (int64, error)
}

type pedidoService struct {
	repo          repository.PedidoRepository
	proveedorRepo repository.ProveedorRepository
}

func NewPedidoService(repo repository.PedidoRepository, proveedorRepo repository.ProveedorRepository) PedidoService {
	return &pedidoService{repo: repo, proveedorRepo: proveedorRepo}
}

func (s *pedidoService) Listar(ctx context.Context) ([]model.Pedido, error) {
	return s.repo.List(ctx)
}

func (s *pedidoService) Obtener(ctx context.Context, id int) (*model.Pedido, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierror.NoEncontrado("El pedido no existe")
		}
		return nil, err
	}
	return p, nil
}

func (s *pedidoService) validarProveedor(ctx context.Context, nit string) error {
	prov, err := s.proveedorRepo.FindByNit(ctx, nit)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apierror.Conflicto("El proveedor del pedido no existe")
		}
		return err
	}
	if !prov.Estado {
		return apierror.Conflicto("El proveedor del pedido está inactivo")
	}
	return nil
}

func (s *pedidoService) Crear(ctx context.Context, req dto.CrearPedidoRequest) (*model.Pedido, error) {
	if err := s.validarProveedor(ctx, req.Nit); err != nil {
		return nil, err
	}

	p := &model.Pedido{
		Nit:    req.Nit,
		Fecha:  parseFecha(req.Fecha),
		Estado: model.PedidoPendiente,
	}
	if req.Estado != nil {
		p.Estado = *req.Estado
	}
	if err := s.repo.Create(ctx, p); err != nil {
		return nil, err
	}
	return s.repo.FindByID(ctx, p.PedidoID)
}

func (s *pedidoService) Actualizar(ctx context.Context, id int, req dto.ActualizarPedidoRequest) (*model.Pedido, error) {
	if req.Nit == nil && req.Fecha == nil && req.Estado == nil {
		return nil, apierror.Conflicto("No se proporcionaron campos para actualizar")
	}

	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierror.NoEncontrado("El pedido no existe")
		}
		return nil, err
	}

	if req.Nit != nil {
		if err := s.validarProveedor(ctx, *req.Nit); err != nil {
			return nil, err
		}
		p.Nit = *req.Nit
		p.Proveedor = nil
	}
	if req.Fecha != nil {
		p.Fecha = parseFecha(req.Fecha)
	}
	if req.Estado != nil {
		p.Estado = *req.Estado
	}

	// Save con la asociación Detalles cargada re-insertaría las líneas.
	p.Detalles = nil
	if err := s.repo.Update(ctx, p); err != nil {
		return nil, err
	}
	return s.repo.FindByID(ctx, id)
}

func (s *pedidoService) Eliminar(ctx context.Context, id int) (int64, error) {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, apierror.NoEncontrado("El pedido no existe")
		}
		return 0, err
	}

	detalles, err := s.repo.CountDetalles(ctx, id)
	if err != nil {
		return 0, err
	}
	if detalles > 0 {
		return 0, apierror.Conflicto("No se puede eliminar el pedido porque tiene detalles asociados")
	}

	return s.repo.Delete(ctx, id)
}

// ── Detalles de pedido ────────────────────────────────────────────────────────

type DetallePedidoService interface {
	Listar(ctx context.Context) ([]model.DetallePedido, error)
	Obtener(ctx context.Context, id int) (*model.DetallePedido, error)
	Crear(ctx context.Context, req dto.CrearDetallePedidoRequest) (*model.DetallePedido, error)
	Eliminar(ctx context.Context, id int) (int64, error)
}

type detallePedidoService struct {
	repo       repository.DetallePedidoRepository
	pedidoRepo repository.PedidoRepository
	insumoRepo repository.InsumoRepository
}

func NewDetallePedidoService(
	repo repository.DetallePedidoRepository,
	pedidoRepo repository.PedidoRepository,
	insumoRepo repository.InsumoRepository,
) DetallePedidoService {
	return &detallePedidoService{repo: repo, pedidoRepo: pedidoRepo, insumoRepo: insumoRepo}
}

func (s *detallePedidoService) Listar(ctx context.Context) ([]model.DetallePedido, error) {
	return s.repo.List(ctx)
}

func (s *detallePedidoService) Obtener(ctx context.Context, id int) (*model.DetallePedido, error) {
	d, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierror.NoEncontrado("El detalle de pedido no existe")
		}
		return nil, err
	}
	return d, nil
}

func (s *detallePedidoService) Crear(ctx context.Context, req dto.CrearDetallePedidoRequest) (*model.DetallePedido, error) {
	if _, err := s.pedidoRepo.FindByID(ctx, req.PedidoID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierror.Conflicto("El pedido del detalle no existe")
		}
		return nil, err
	}
	if _, err := s.insumoRepo.FindByID(ctx, req.InsumoID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierror.Conflicto("El insumo del detalle no existe")
		}
		return nil, err
	}

	d := &model.DetallePedido{
		PedidoID: req.PedidoID,
		InsumoID: req.InsumoID,
		Cantidad: req.Cantidad,
	}
	if err := s.repo.Create(ctx, d); err != nil {
		return nil, err
	}
	return s.repo.FindByID(ctx, d.DetallePedidoID)
}

func (s *detallePedidoService) Eliminar(ctx context.Context, id int) (int64, error) {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, apierror.NoEncontrado("El detalle de pedido no existe")
		}
		return 0, err
	}
	return s.repo.Delete(ctx, id)
}
