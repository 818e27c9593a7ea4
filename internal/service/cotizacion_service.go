package service

import (
	"context"
	"errors"

	"github.com/Sebastian-Medina185/BD-STAMPLAB/internal/apierror"
	"github.com/Sebastian-Medina185/BD-STAMPLAB/internal/config"
	"github.com/Sebastian-Medina185/BD-STAMPLAB/internal/dto"
	"github.com/Sebastian-Medina185/BD-STAMPLAB/internal/infra"
	"github.com/Sebastian-Medina185/BD-STAMPLAB/internal/model"
	"github.com/Sebastian-Medina185/BD-STAMPLAB/internal/repository"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ColaCorreos encola el envío de una cotización por correo; la implementa
// el dispatcher del pool de workers sobre redis.
type ColaCorreos interface {
	EncolarCotizacion(ctx context.Context, cotizacionID int, correo string) error
}

// ── Cotizaciones ──────────────────────────────────────────────────────────────

type CotizacionService interface {
	Listar(ctx context.Context) ([]model.Cotizacion, error)
	Obtener(ctx context.Context, id int) (*model.Cotizacion, error)
	Crear(ctx context.Context, req dto.CrearCotizacionRequest) (*model.Cotizacion, error)
	Actualizar(ctx context.Context, id int, req dto.ActualizarCotizacionRequest) (*model.Cotizacion, error)
	Eliminar(ctx context.Context, id int) (int64, error)
	// GenerarPDF renderiza la cotización y devuelve la ruta del archivo.
	GenerarPDF(ctx context.Context, id int) (string, error)
	// Enviar encola el correo con el PDF adjunto; el destinatario por
	// defecto es el correo del usuario dueño de la cotización.
	Enviar(ctx context.Context, id int, req dto.EnviarCotizacionRequest) (string, error)
}

type cotizacionService struct {
	repo        repository.CotizacionRepository
	usuarioRepo repository.UsuarioRepository
	cola        ColaCorreos
	cfg         *config.Config
}

func NewCotizacionService(
	repo repository.CotizacionRepository,
	usuarioRepo repository.UsuarioRepository,
	cola ColaCorreos,
	cfg *config.Config,
) CotizacionService {
	return &cotizacionService{repo: repo, usuarioRepo: usuarioRepo, cola: cola, cfg: cfg}
}

func (s *cotizacionService) Listar(ctx context.Context) ([]model.Cotizacion, error) {
	return s.repo.List(ctx)
}

func (s *cotizacionService) Obtener(ctx context.Context, id int) (*model.Cotizacion, error) {
	c, err := s.repo.FindCompleta(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierror.NoEncontrado("La cotización no existe")
		}
		return nil, err
	}
	return c, nil
}

func (s *cotizacionService) Crear(ctx context.Context, req dto.CrearCotizacionRequest) (*model.Cotizacion, error) {
	if _, err := s.usuarioRepo.FindByDocumento(ctx, req.DocumentoID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierror.Conflicto("El usuario de la cotización no existe")
		}
		return nil, err
	}

	c := &model.Cotizacion{
		DocumentoID: req.DocumentoID,
		Fecha:       parseFecha(req.Fecha),
		ValorTotal:  decimal.Zero,
		Estado:      model.CotizacionPendiente,
	}
	if req.Estado != nil {
		c.Estado = *req.Estado
	}
	if err := s.repo.Create(ctx, c); err != nil {
		return nil, err
	}
	return s.repo.FindByID(ctx, c.CotizacionID)
}

func (s *cotizacionService) Actualizar(ctx context.Context, id int, req dto.ActualizarCotizacionRequest) (*model.Cotizacion, error) {
	if req.Fecha == nil && req.Estado == nil {
		return nil, apierror.Conflicto("No se proporcionaron campos para actualizar")
	}

	c, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierror.NoEncontrado("La cotización no existe")
		}
		return nil, err
	}

	if req.Fecha != nil {
		c.Fecha = parseFecha(req.Fecha)
	}
	if req.Estado != nil {
		c.Estado = *req.Estado
	}

	c.Detalles = nil
	if err := s.repo.Update(ctx, c); err != nil {
		return nil, err
	}
	return s.repo.FindByID(ctx, id)
}

func (s *cotizacionService) Eliminar(ctx context.Context, id int) (int64, error) {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, apierror.NoEncontrado("La cotización no existe")
		}
		return 0, err
	}

	detalles, err := s.repo.CountDetalles(ctx, id)
	if err != nil {
		return 0, err
	}
	if detalles > 0 {
		return 0, apierror.Conflicto("No se puede eliminar la cotización porque tiene detalles asociados")
	}

	return s.repo.Delete(ctx, id)
}

func (s *cotizacionService) GenerarPDF(ctx context.Context, id int) (string, error) {
	c, err := s.repo.FindCompleta(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", apierror.NoEncontrado("La cotización no existe")
		}
		return "", err
	}
	return infra.GenerateCotizacionPDF(c, s.cfg.PDFStoragePath)
}

func (s *cotizacionService) Enviar(ctx context.Context, id int, req dto.EnviarCotizacionRequest) (string, error) {
	c, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", apierror.NoEncontrado("La cotización no existe")
		}
		return "", err
	}

	correo := ""
	if req.Correo != nil {
		correo = *req.Correo
	} else if c.Usuario != nil {
		correo = c.Usuario.Correo
	}
	if correo == "" {
		return "", apierror.Validacion("La cotización no tiene un correo de destino")
	}

	if err := s.cola.EncolarCotizacion(ctx, id, correo); err != nil {
		return "", apierror.NoDisponible("La cola de envío no está disponible")
	}
	return correo, nil
}

// ── Detalles de cotización ────────────────────────────────────────────────────

type DetalleCotizacionService interface {
	Listar(ctx context.Context) ([]model.DetalleCotizacion, error)
	Obtener(ctx context.Context, id int) (*model.DetalleCotizacion, error)
	Crear(ctx context.Context, req dto.CrearDetalleCotizacionRequest) (*model.DetalleCotizacion, error)
	Eliminar(ctx context.Context, id int) (int64, error)
}

type detalleCotizacionService struct {
	repo           repository.DetalleCotizacionRepository
	cotizacionRepo repository.CotizacionRepository
	varianteRepo   repository.VarianteRepository
	tecnicaRepo    repository.TecnicaRepository
}

func NewDetalleCotizacionService(
	repo repository.DetalleCotizacionRepository,
	cotizacionRepo repository.CotizacionRepository,
	varianteRepo repository.VarianteRepository,
	tecnicaRepo repository.TecnicaRepository,
) DetalleCotizacionService {
	return &detalleCotizacionService{
		repo:           repo,
		cotizacionRepo: cotizacionRepo,
		varianteRepo:   varianteRepo,
		tecnicaRepo:    tecnicaRepo,
	}
}

func (s *detalleCotizacionService) Listar(ctx context.Context) ([]model.DetalleCotizacion, error) {
	return s.repo.List(ctx)
}

func (s *detalleCotizacionService) Obtener(ctx context.Context, id int) (*model.DetalleCotizacion, error) {
	d, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierror.NoEncontrado("El detalle de cotización no existe")
		}
		return nil, err
	}
	return d, nil
}

func (s *detalleCotizacionService) Crear(ctx context.Context, req dto.CrearDetalleCotizacionRequest) (*model.DetalleCotizacion, error) {
	if _, err := s.cotizacionRepo.FindByID(ctx, req.CotizacionID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierror.Conflicto("La cotización del detalle no existe")
		}
		return nil, err
	}

	variante, err := s.varianteRepo.FindByID(ctx, req.VarianteID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierror.Conflicto("La variante del detalle no existe")
		}
		return nil, err
	}
	if !variante.Estado {
		return nil, apierror.Conflicto("La variante del detalle está inactiva")
	}

	tecnica, err := s.tecnicaRepo.FindByID(ctx, req.TecnicaID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierror.Conflicto("La técnica del detalle no existe")
		}
		return nil, err
	}
	if !tecnica.Estado {
		return nil, apierror.Conflicto("La técnica del detalle está inactiva")
	}

	d := &model.DetalleCotizacion{
		CotizacionID:        req.CotizacionID,
		VarianteID:          req.VarianteID,
		TecnicaID:           req.TecnicaID,
		Cantidad:            req.Cantidad,
		PrendaProporcionada: req.PrendaProporcionada,
		Descripcion:         req.Descripcion,
		Subtotal:            variante.Precio.Mul(decimal.NewFromInt(int64(req.Cantidad))),
	}
	// Alta del detalle y recálculo del total en una sola transacción.
	if err := s.repo.CreateConTotal(ctx, d); err != nil {
		return nil, err
	}
	return s.repo.FindByID(ctx, d.DetalleID)
}

func (s *detalleCotizacionService) Eliminar(ctx context.Context, id int) (int64, error) {
	filas, err := s.repo.DeleteConTotal(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, apierror.NoEncontrado("El detalle de cotización no existe")
		}
		return 0, err
	}
	return filas, nil
}
