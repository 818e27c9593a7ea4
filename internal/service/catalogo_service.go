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

// Servicios de los catálogos simples. La regla común: nombre único sin
// distinguir mayúsculas, actualización parcial que exige al menos un campo,
// y borrado bloqueado mientras existan filas dependientes.

// ── Colores ───────────────────────────────────────────────────────────────────

type ColorService interface {
	Listar(ctx context.Context) ([]model.Color, error)
	Obtener(ctx context.Context, id int) (*model.Color, error)
	Crear(ctx context.Context, req dto.CrearColorRequest) (*model.Color, error)
	Actualizar(ctx context.Context, id int, req dto.ActualizarColorRequest) (*model.Color, error)
	Eliminar(ctx context.Context, id int) (int64, error)
}

type colorService struct {
	repo repository.ColorRepository
}

func NewColorService(repo repository.ColorRepository) ColorService {
	return &colorService{repo: repo}
}

func (s *colorService) Listar(ctx context.Context) ([]model.Color, error) {
	return s.repo.List(ctx)
}

func (s *colorService) Obtener(ctx context.Context, id int) (*model.Color, error) {
	c, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierror.NoEncontrado("El color no existe")
		}
		return nil, err
	}
	return c, nil
}

func (s *colorService) Crear(ctx context.Context, req dto.CrearColorRequest) (*model.Color, error) {
	existente, err := s.repo.FindByNombre(ctx, req.Nombre)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	if existente != nil {
		return nil, apierror.Conflicto("El color ya existe")
	}

	c := &model.Color{Nombre: req.Nombre}
	if err := s.repo.Create(ctx, c); err != nil {
		// El índice único es la última palabra ante dos altas simultáneas.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apierror.Conflicto("El color ya existe")
		}
		return nil, err
	}
	return c, nil
}

func (s *colorService) Actualizar(ctx context.Context, id int, req dto.ActualizarColorRequest) (*model.Color, error) {
	if req.Nombre == nil {
		return nil, apierror.Conflicto("No se proporcionaron campos para actualizar")
	}

	c, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierror.NoEncontrado("El color no existe")
		}
		return nil, err
	}

	existente, err := s.repo.FindByNombre(ctx, *req.Nombre)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	if existente != nil && existente.ColorID != id {
		return nil, apierror.Conflicto("Ya existe otro color con ese nombre")
	}

	c.Nombre = *req.Nombre
	if err := s.repo.Update(ctx, c); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apierror.Conflicto("Ya existe otro color con ese nombre")
		}
		return nil, err
	}
	return c, nil
}

func (s *colorService) Eliminar(ctx context.Context, id int) (int64, error) {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, apierror.NoEncontrado("El color no existe")
		}
		return 0, err
	}

	dependientes, err := s.repo.CountVariantes(ctx, id)
	if err != nil {
		return 0, err
	}
	if dependientes > 0 {
		return 0, apierror.Conflicto("No se puede eliminar el color porque tiene variantes de producto asociadas")
	}

	return s.repo.Delete(ctx, id)
}

// ── Tallas ────────────────────────────────────────────────────────────────────

type TallaService interface {
	Listar(ctx context.Context) ([]model.Talla, error)
	Obtener(ctx context.Context, id int) (*model.Talla, error)
	Crear(ctx context.Context, req dto.CrearTallaRequest) (*model.Talla, error)
	Actualizar(ctx context.Context, id int, req dto.ActualizarTallaRequest) (*model.Talla, error)
	Eliminar(ctx context.Context, id int) (int64, error)
}

type tallaService struct {
	repo repository.TallaRepository
}

func NewTallaService(repo repository.TallaRepository) TallaService {
	return &tallaService{repo: repo}
}

func (s *tallaService) Listar(ctx context.Context) ([]model.Talla, error) {
	return s.repo.List(ctx)
}

func (s *tallaService) Obtener(ctx context.Context, id int) (*model.Talla, error) {
	t, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierror.NoEncontrado("La talla no existe")
		}
		return nil, err
	}
	return t, nil
}

func (s *tallaService) Crear(ctx context.Context, req dto.CrearTallaRequest) (*model.Talla, error) {
	existente, err := s.repo.FindByNombre(ctx, req.Nombre)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	if existente != nil {
		return nil, apierror.Conflicto("La talla ya existe")
	}

	t := &model.Talla{Nombre: req.Nombre}
	if err := s.repo.Create(ctx, t); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apierror.Conflicto("La talla ya existe")
		}
		return nil, err
	}
	return t, nil
}

func (s *tallaService) Actualizar(ctx context.Context, id int, req dto.ActualizarTallaRequest) (*model.Talla, error) {
	if req.Nombre == nil {
		return nil, apierror.Conflicto("No se proporcionaron campos para actualizar")
	}

	t, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierror.NoEncontrado("La talla no existe")
		}
		return nil, err
	}

	existente, err := s.repo.FindByNombre(ctx, *req.Nombre)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	if existente != nil && existente.TallaID != id {
		return nil, apierror.Conflicto("Ya existe otra talla con ese nombre")
	}

	t.Nombre = *req.Nombre
	if err := s.repo.Update(ctx, t); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apierror.Conflicto("Ya existe otra talla con ese nombre")
		}
		return nil, err
	}
	return t, nil
}

func (s *tallaService) Eliminar(ctx context.Context, id int) (int64, error) {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, apierror.NoEncontrado("La talla no existe")
		}
		return 0, err
	}

	dependientes, err := s.repo.CountVariantes(ctx, id)
	if err != nil {
		return 0, err
	}
	if dependientes > 0 {
		return 0, apierror.Conflicto("No se puede eliminar la talla porque tiene variantes de producto asociadas")
	}

	return s.repo.Delete(ctx, id)
}

// ── Telas ─────────────────────────────────────────────────────────────────────

type TelaService interface {
	Listar(ctx context.Context) ([]model.Tela, error)
	Obtener(ctx context.Context, id int) (*model.Tela, error)
	Crear(ctx context.Context, req dto.CrearTelaRequest) (*model.Tela, error)
	Actualizar(ctx context.Context, id int, req dto.ActualizarTelaRequest) (*model.Tela, error)
	Eliminar(ctx context.Context, id int) (int64, error)
}

type telaService struct {
	repo repository.TelaRepository
}

func NewTelaService(repo repository.TelaRepository) TelaService {
	return &telaService{repo: repo}
}

func (s *telaService) Listar(ctx context.Context) ([]model.Tela, error) {
	return s.repo.List(ctx)
}

func (s *telaService) Obtener(ctx context.Context, id int) (*model.Tela, error) {
	t, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierror.NoEncontrado("La tela no existe")
		}
		return nil, err
	}
	return t, nil
}

func (s *telaService) Crear(ctx context.Context, req dto.CrearTelaRequest) (*model.Tela, error) {
	existente, err := s.repo.FindByNombre(ctx, req.Nombre)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	if existente != nil {
		return nil, apierror.Conflicto("La tela ya existe")
	}

	t := &model.Tela{Nombre: req.Nombre}
	if err := s.repo.Create(ctx, t); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apierror.Conflicto("La tela ya existe")
		}
		return nil, err
	}
	return t, nil
}

func (s *telaService) Actualizar(ctx context.Context, id int, req dto.ActualizarTelaRequest) (*model.Tela, error) {
	if req.Nombre == nil {
		return nil, apierror.Conflicto("No se proporcionaron campos para actualizar")
	}

	t, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierror.NoEncontrado("La tela no existe")
		}
		return nil, err
	}

	existente, err := s.repo.FindByNombre(ctx, *req.Nombre)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	if existente != nil && existente.TelaID != id {
		return nil, apierror.Conflicto("Ya existe otra tela con ese nombre")
	}

	t.Nombre = *req.Nombre
	if err := s.repo.Update(ctx, t); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apierror.Conflicto("Ya existe otra tela con ese nombre")
		}
		return nil, err
	}
	return t, nil
}

func (s *telaService) Eliminar(ctx context.Context, id int) (int64, error) {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, apierror.NoEncontrado("La tela no existe")
		}
		return 0, err
	}

	dependientes, err := s.repo.CountProductos(ctx, id)
	if err != nil {
		return 0, err
	}
	if dependientes > 0 {
		return 0, apierror.Conflicto("No se puede eliminar la tela porque tiene productos asociados")
	}

	return s.repo.Delete(ctx, id)
}

// ── Partes ────────────────────────────────────────────────────────────────────

// Las partes no exigen nombre único: "Manga izquierda" y "Manga Izquierda"
// conviven porque el catálogo lo administra una sola persona.

type ParteService interface {
	Listar(ctx context.Context) ([]model.Parte, error)
	Obtener(ctx context.Context, id int) (*model.Parte, error)
	Crear(ctx context.Context, req dto.CrearParteRequest) (*model.Parte, error)
	Actualizar(ctx context.Context, id int, req dto.ActualizarParteRequest) (*model.Parte, error)
	Eliminar(ctx context.Context, id int) (int64, error)
}

type parteService struct {
	repo repository.ParteRepository
}

func NewParteService(repo repository.ParteRepository) ParteService {
	return &parteService{repo: repo}
}

func (s *parteService) Listar(ctx context.Context) ([]model.Parte, error) {
	return s.repo.List(ctx)
}

func (s *parteService) Obtener(ctx context.Context, id int) (*model.Parte, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierror.NoEncontrado("La parte no existe")
		}
		return nil, err
	}
	return p, nil
}

func (s *parteService) Crear(ctx context.Context, req dto.CrearParteRequest) (*model.Parte, error) {
	p := &model.Parte{Nombre: req.Nombre, Observaciones: req.Observaciones}
	if err := s.repo.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *parteService) Actualizar(ctx context.Context, id int, req dto.ActualizarParteRequest) (*model.Parte, error) {
	if req.Nombre == nil && req.Observaciones == nil {
		return nil, apierror.Conflicto("No se proporcionaron campos para actualizar")
	}

	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierror.NoEncontrado("La parte no existe")
		}
		return nil, err
	}

	if req.Nombre != nil {
		p.Nombre = *req.Nombre
	}
	if req.Observaciones != nil {
		p.Observaciones = req.Observaciones
	}

	if err := s.repo.Update(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *parteService) Eliminar(ctx context.Context, id int) (int64, error) {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, apierror.NoEncontrado("La parte no existe")
		}
		return 0, err
	}

	dependientes, err := s.repo.CountDetallesDiseno(ctx, id)
	if err != nil {
		return 0, err
	}
	if dependientes > 0 {
		return 0, apierror.Conflicto("No se puede eliminar la parte porque tiene diseños asociados")
	}

	return s.repo.Delete(ctx, id)
}
