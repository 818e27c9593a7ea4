package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/Sebastian-Medina185/BD-STAMPLAB/internal/apierror"
	"github.com/Sebastian-Medina185/BD-STAMPLAB/internal/dto"
	"github.com/Sebastian-Medina185/BD-STAMPLAB/internal/model"
	"github.com/Sebastian-Medina185/BD-STAMPLAB/internal/repository"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// ── Cache de detalle de producto ──────────────────────────────────────────────

const detalleCacheTTL = 5 * time.Minute

// ProductoCache guarda la vista de detalle (producto + variantes) en redis.
// El cache es mejor-esfuerzo: si redis falla se sirve desde la base y se
// deja constancia en el log, nunca se corta la petición.
type ProductoCache struct {
	rdb *redis.Client
}

func NewProductoCache(rdb *redis.Client) *ProductoCache {
	return &ProductoCache{rdb: rdb}
}

func (c *ProductoCache) key(productoID int) string {
	return fmt.Sprintf("producto:detalle:%d", productoID)
}

func (c *ProductoCache) Get(ctx context.Context, productoID int) (*model.Producto, bool) {
	if c == nil || c.rdb == nil {
		return nil, false
	}
	raw, err := c.rdb.Get(ctx, c.key(productoID)).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			log.Warn().Err(err).Int("producto_id", productoID).Msg("cache de producto no disponible")
		}
		return nil, false
	}
	var p model.Producto
	if err := json.Unmarshal(raw, &p); err != nil {
		return nil, false
	}
	return &p, true
}

func (c *ProductoCache) Set(ctx context.Context, p *model.Producto) {
	if c == nil || c.rdb == nil {
		return
	}
	raw, err := json.Marshal(p)
	if err != nil {
		return
	}
	if err := c.rdb.Set(ctx, c.key(p.ProductoID), raw, detalleCacheTTL).Err(); err != nil {
		log.Warn().Err(err).Int("producto_id", p.ProductoID).Msg("no se pudo escribir el cache de producto")
	}
}

func (c *ProductoCache) Invalidate(ctx context.Context, productoID int) {
	if c == nil || c.rdb == nil {
		return
	}
	if err := c.rdb.Del(ctx, c.key(productoID)).Err(); err != nil {
		log.Warn().Err(err).Int("producto_id", productoID).Msg("no se pudo invalidar el cache de producto")
	}
}

// ── Productos ─────────────────────────────────────────────────────────────────

type ProductoService interface {
	Listar(ctx context.Context) ([]model.Producto, error)
	Obtener(ctx context.Context, id int) (*model.Producto, error)
	ObtenerDetalle(ctx context.Context, id int) (*model.Producto, error)
	Crear(ctx context.Context, req dto.CrearProductoRequest) (*model.Producto, error)
	Actualizar(ctx context.Context, id int, req dto.ActualizarProductoRequest) (*model.Producto, error)
	Eliminar(ctx context.Context, id int) (int64, error)
}

type productoService struct {
	repo     repository.ProductoRepository
	telaRepo repository.TelaRepository
	cache    *ProductoCache
}

func NewProductoService(repo repository.ProductoRepository, telaRepo repository.TelaRepository, cache *ProductoCache) ProductoService {
	return &productoService{repo: repo, telaRepo: telaRepo, cache: cache}
}

func (s *productoService) Listar(ctx context.Context) ([]model.Producto, error) {
	return s.repo.List(ctx)
}

func (s *productoService) Obtener(ctx context.Context, id int) (*model.Producto, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierror.NoEncontrado("El producto no existe")
		}
		return nil, err
	}
	return p, nil
}

func (s *productoService) ObtenerDetalle(ctx context.Context, id int) (*model.Producto, error) {
	if p, ok := s.cache.Get(ctx, id); ok {
		return p, nil
	}

	p, err := s.repo.FindDetalle(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierror.NoEncontrado("El producto no existe")
		}
		return nil, err
	}

	s.cache.Set(ctx, p)
	return p, nil
}

func (s *productoService) validarTela(ctx context.Context, telaID int) error {
	if _, err := s.telaRepo.FindByID(ctx, telaID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apierror.Conflicto("La tela asignada no existe")
		}
		return err
	}
	return nil
}

func (s *productoService) Crear(ctx context.Context, req dto.CrearProductoRequest) (*model.Producto, error) {
	if err := s.validarTela(ctx, req.TelaID); err != nil {
		return nil, err
	}

	p := &model.Producto{
		Nombre:      req.Nombre,
		Descripcion: req.Descripcion,
		TelaID:      req.TelaID,
	}
	if err := s.repo.Create(ctx, p); err != nil {
		return nil, err
	}
	return s.repo.FindByID(ctx, p.ProductoID)
}

func (s *productoService) Actualizar(ctx context.Context, id int, req dto.ActualizarProductoRequest) (*model.Producto, error) {
	if req.Nombre == nil && req.Descripcion == nil && req.TelaID == nil {
		return nil, apierror.Conflicto("No se proporcionaron campos para actualizar")
	}

	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierror.NoEncontrado("El producto no existe")
		}
		return nil, err
	}

	if req.TelaID != nil {
		if err := s.validarTela(ctx, *req.TelaID); err != nil {
			return nil, err
		}
		p.TelaID = *req.TelaID
		p.Tela = nil
	}
	if req.Nombre != nil {
		p.Nombre = *req.Nombre
	}
	if req.Descripcion != nil {
		p.Descripcion = req.Descripcion
	}

	if err := s.repo.Update(ctx, p); err != nil {
		return nil, err
	}

	s.cache.Invalidate(ctx, id)
	return s.repo.FindByID(ctx, id)
}

func (s *productoService) Eliminar(ctx context.Context, id int) (int64, error) {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, apierror.NoEncontrado("El producto no existe")
		}
		return 0, err
	}

	variantes, err := s.repo.CountVariantes(ctx, id)
	if err != nil {
		return 0, err
	}
	if variantes > 0 {
		return 0, apierror.Conflicto("No se puede eliminar el producto porque tiene variantes asociadas")
	}

	filas, err := s.repo.Delete(ctx, id)
	if err != nil {
		return 0, err
	}
	s.cache.Invalidate(ctx, id)
	return filas, nil
}

// ── Variantes ─────────────────────────────────────────────────────────────────

type VarianteService interface {
	Listar(ctx context.Context) ([]model.ProductoVariante, error)
	Obtener(ctx context.Context, id int) (*model.ProductoVariante, error)
	Crear(ctx context.Context, req dto.CrearVarianteRequest) (*model.ProductoVariante, error)
	Actualizar(ctx context.Context, id int, req dto.ActualizarVarianteRequest) (*model.ProductoVariante, error)
	Eliminar(ctx context.Context, id int) (int64, error)
}

type varianteService struct {
	repo         repository.VarianteRepository
	productoRepo repository.ProductoRepository
	colorRepo    repository.ColorRepository
	tallaRepo    repository.TallaRepository
	cache        *ProductoCache
}

func NewVarianteService(
	repo repository.VarianteRepository,
	productoRepo repository.ProductoRepository,
	colorRepo repository.ColorRepository,
	tallaRepo repository.TallaRepository,
	cache *ProductoCache,
) VarianteService {
	return &varianteService{
		repo:         repo,
		productoRepo: productoRepo,
		colorRepo:    colorRepo,
		tallaRepo:    tallaRepo,
		cache:        cache,
	}
}

func (s *varianteService) Listar(ctx context.Context) ([]model.ProductoVariante, error) {
	return s.repo.List(ctx)
}

func (s *varianteService) Obtener(ctx context.Context, id int) (*model.ProductoVariante, error) {
	v, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierror.NoEncontrado("La variante no existe")
		}
		return nil, err
	}
	return v, nil
}

func (s *varianteService) validarReferencias(ctx context.Context, productoID, colorID, tallaID int) error {
	if _, err := s.productoRepo.FindByID(ctx, productoID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apierror.Conflicto("El producto de la variante no existe")
		}
		return err
	}
	if _, err := s.colorRepo.FindByID(ctx, colorID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apierror.Conflicto("El color de la variante no existe")
		}
		return err
	}
	if _, err := s.tallaRepo.FindByID(ctx, tallaID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apierror.Conflicto("La talla de la variante no existe")
		}
		return err
	}
	return nil
}

func (s *varianteService) Crear(ctx context.Context, req dto.CrearVarianteRequest) (*model.ProductoVariante, error) {
	if req.Imagen != nil {
		if err := validarURLImagen(*req.Imagen); err != nil {
			return nil, err
		}
	}
	if err := s.validarReferencias(ctx, req.ProductoID, req.ColorID, req.TallaID); err != nil {
		return nil, err
	}

	existente, err := s.repo.FindByCombinacion(ctx, req.ProductoID, req.ColorID, req.TallaID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	if existente != nil {
		return nil, apierror.Conflicto("Ya existe una variante con esa combinación de producto, color y talla")
	}

	v := &model.ProductoVariante{
		ProductoID: req.ProductoID,
		ColorID:    req.ColorID,
		TallaID:    req.TallaID,
		Imagen:     req.Imagen,
		Precio:     req.Precio,
		Estado:     true,
	}
	if req.Stock != nil {
		v.Stock = *req.Stock
	}
	if req.Estado != nil {
		v.Estado = *req.Estado
	}
	if err := s.repo.Create(ctx, v); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apierror.Conflicto("Ya existe una variante con esa combinación de producto, color y talla")
		}
		return nil, err
	}

	s.cache.Invalidate(ctx, req.ProductoID)
	return s.repo.FindByID(ctx, v.VarianteID)
}

func (s *varianteService) Actualizar(ctx context.Context, id int, req dto.ActualizarVarianteRequest) (*model.ProductoVariante, error) {
	if req.ColorID == nil && req.TallaID == nil && req.Stock == nil &&
		req.Imagen == nil && req.Precio == nil && req.Estado == nil {
		return nil, apierror.Conflicto("No se proporcionaron campos para actualizar")
	}

	v, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierror.NoEncontrado("La variante no existe")
		}
		return nil, err
	}

	colorID, tallaID := v.ColorID, v.TallaID
	if req.ColorID != nil {
		colorID = *req.ColorID
	}
	if req.TallaID != nil {
		tallaID = *req.TallaID
	}
	if colorID != v.ColorID || tallaID != v.TallaID {
		if err := s.validarReferencias(ctx, v.ProductoID, colorID, tallaID); err != nil {
			return nil, err
		}
		existente, err := s.repo.FindByCombinacion(ctx, v.ProductoID, colorID, tallaID)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		if existente != nil && existente.VarianteID != id {
			return nil, apierror.Conflicto("Ya existe una variante con esa combinación de producto, color y talla")
		}
		v.ColorID, v.TallaID = colorID, tallaID
		v.Color, v.Talla = nil, nil
	}

	if req.Imagen != nil {
		if err := validarURLImagen(*req.Imagen); err != nil {
			return nil, err
		}
		v.Imagen = req.Imagen
	}
	if req.Stock != nil {
		v.Stock = *req.Stock
	}
	if req.Precio != nil {
		v.Precio = *req.Precio
	}
	if req.Estado != nil {
		v.Estado = *req.Estado
	}

	if err := s.repo.Update(ctx, v); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apierror.Conflicto("Ya existe una variante con esa combinación de producto, color y talla")
		}
		return nil, err
	}

	s.cache.Invalidate(ctx, v.ProductoID)
	return s.repo.FindByID(ctx, id)
}

func (s *varianteService) Eliminar(ctx context.Context, id int) (int64, error) {
	v, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, apierror.NoEncontrado("La variante no existe")
		}
		return 0, err
	}

	dependientes, err := s.repo.CountDetallesCotizacion(ctx, id)
	if err != nil {
		return 0, err
	}
	if dependientes > 0 {
		return 0, apierror.Conflicto("No se puede eliminar la variante porque tiene cotizaciones asociadas")
	}

	filas, err := s.repo.Delete(ctx, id)
	if err != nil {
		return 0, err
	}
	s.cache.Invalidate(ctx, v.ProductoID)
	return filas, nil
}
